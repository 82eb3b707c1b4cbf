// Package perceive holds the two small arithmetic perception passes that
// depend on the rest of the stack: resolving the parser's Default bond
// placeholder, and computing implicit hydrogens/radical electrons from
// kekulized valences (spec.md §4.3, §4.6).
package perceive

import "github.com/cx-luo/go-smiles/molgraph"

// ResolveDefaultBonds replaces every Default-typed bond with Delocalized
// (if both endpoints are delocalized) or Single, per spec.md §4.3. It is
// idempotent: once no Default bonds remain, calling it again is a no-op.
func ResolveDefaultBonds(mol *molgraph.Molecule) {
	for i := range mol.Bonds {
		b := &mol.Bonds[i]
		if b.Type != molgraph.Default {
			continue
		}
		if mol.Atoms[b.A].Delocalized && mol.Atoms[b.B].Delocalized {
			b.Type = molgraph.Delocalized
		} else {
			b.Type = molgraph.Single
		}
	}
}
