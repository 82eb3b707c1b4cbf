package perceive

import (
	"github.com/cx-luo/go-smiles/molgraph"
	"github.com/cx-luo/go-smiles/molgraph/kekulize"
)

// Options tunes PerceiveImplicitH, grounded on the teacher's
// molecule.SmilesLoader{IgnoreBadValence, SmartsMode,
// IgnoreCisTransErrors} option struct (src/molecule/smiles_loader.go).
// SmartsMode and IgnoreCisTransErrors have no counterpart here — this
// library has no SMARTS mode and no cis/trans stereo perception — so
// only the valence-tolerance field carries over.
type Options struct {
	// IgnoreBadValence, if true, makes an atom whose bond order already
	// exceeds its maximum valence report zero implicit hydrogens and
	// zero radical electrons instead of failing with
	// BondOrderExceedsValence. The atom's over-valent state is left
	// visible to the caller via ExplicitValence/MaxValence; this option
	// only changes whether perception itself treats it as fatal.
	IgnoreBadValence bool
}

// PerceiveImplicitH mutates every atom of mol to fill in its implicit
// hydrogen count and radical electron count, per spec.md §4.6, using the
// zero-value (strict) Options. See PerceiveImplicitHWithOptions.
func PerceiveImplicitH(mol *molgraph.Molecule) error {
	return PerceiveImplicitHWithOptions(mol, Options{})
}

// PerceiveImplicitHWithOptions is PerceiveImplicitH with explicit Options.
// It requires mol.Rings to have been populated already (ResolveDefaultBonds
// and the ring perceiver must have run first); mol's own bond types are
// left exactly as they were — the kekulized form used for the arithmetic
// is a throwaway copy, never written back.
func PerceiveImplicitHWithOptions(mol *molgraph.Molecule, opts Options) error {
	if !mol.RingsPerceived {
		return &PerceptionError{Reason: MissingRings}
	}

	kek, err := kekulize.Kekulize(mol)
	if err != nil {
		kerr := err.(*kekulize.Error)
		return &PerceptionError{Reason: KekulizationFailed, Partial: kerr.Partial}
	}

	for i := range mol.Atoms {
		bo := kek.ExplicitValence(i)
		// i ranges over kek.Atoms' own indices, so it always names a real
		// atom in kek; the error return exists only for external callers
		// passing their own index.
		mv, _ := kek.MaxValence(i)
		h := mv - bo
		overValent := h < 0
		if overValent {
			if !opts.IgnoreBadValence {
				return &PerceptionError{Reason: BondOrderExceedsValence, AtomIndex: i}
			}
			h = 0
		}

		a := &mol.Atoms[i]
		switch {
		case overValent:
			// IgnoreBadValence promises zero implicit hydrogens and zero
			// radical electrons for an already over-valent atom, even one
			// that arrived with its own explicit H count set — otherwise
			// RadicalElectrons = h - a.ImplicitH would go negative.
			a.ImplicitH = 0
			a.RadicalElectrons = 0
		case !a.HasImplicitH():
			a.ImplicitH = h
			a.RadicalElectrons = 0
		default:
			a.RadicalElectrons = h - a.ImplicitH
		}
	}
	return nil
}
