package kekulize

import (
	"github.com/cx-luo/go-smiles/molgraph"
	"github.com/cx-luo/go-smiles/molgraph/element"
)

// Delocalize mutates mol in place, the inverse of Kekulize and "much
// simpler" per spec.md §4.5: for every ring where every atom needsDeloc,
// mark the ring's atoms delocalized and its bonds Delocalized. Unlike
// Kekulize it does not clone — there is nothing to roll back, since a ring
// that doesn't qualify is simply left untouched.
func Delocalize(mol *molgraph.Molecule) {
	for _, ring := range mol.Rings {
		if !allNeedDelocalization(mol, ring) {
			continue
		}
		for _, atomIdx := range ring {
			mol.Atoms[atomIdx].Delocalized = true
		}
		for _, e := range ring.Edges() {
			if be, ok, _ := mol.BondBetween(e[0], e[1]); ok {
				mol.Bonds[be].Type = molgraph.Delocalized
			}
		}
	}
}

func allNeedDelocalization(mol *molgraph.Molecule, ring molgraph.Ring) bool {
	for _, atomIdx := range ring {
		if !needsDeloc(mol, atomIdx) {
			return false
		}
	}
	return true
}

// needsDeloc is the opaque atom-level predicate spec.md §4.5 leaves to the
// toolkit: an atom that currently carries exactly the one double bond a
// kekulized aromatic ring atom should have, is a member of the SMILES
// aromatic-eligible element set, and whose explicit valence plus implicit
// hydrogens does not exceed its maximum valence.
func needsDeloc(mol *molgraph.Molecule, atomIdx int) bool {
	a := mol.Atoms[atomIdx]
	if !element.CanBeAromaticLowercase(a.Element) {
		return false
	}
	if mol.DoubleBondCount(atomIdx) != 1 {
		return false
	}
	implicitH := 0
	if a.HasImplicitH() {
		implicitH = a.ImplicitH
	}
	mv, _ := mol.MaxValence(atomIdx)
	return mol.ExplicitValence(atomIdx)+implicitH <= mv
}
