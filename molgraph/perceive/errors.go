package perceive

import (
	"fmt"

	"github.com/cx-luo/go-smiles/molgraph"
)

// PerceptionReason tags a PerceptionError, spec.md §7's PerceptionError
// taxonomy: {MissingRings, BondOrderExceedsValence, KekulizationFailed}.
type PerceptionReason int

const (
	MissingRings PerceptionReason = iota
	BondOrderExceedsValence
	KekulizationFailed
)

func (r PerceptionReason) String() string {
	switch r {
	case MissingRings:
		return "MissingRings"
	case BondOrderExceedsValence:
		return "BondOrderExceedsValence"
	case KekulizationFailed:
		return "KekulizationFailed"
	default:
		return "Unknown"
	}
}

// PerceptionError reports a failure in the default-bond/ring/implicit-H
// perception pipeline. AtomIndex is set for BondOrderExceedsValence;
// Partial carries the offending partially-kekulized clone for
// KekulizationFailed, so a caller holding a SMILES writer can render it
// for diagnosis (spec.md §7).
type PerceptionError struct {
	Reason    PerceptionReason
	AtomIndex int
	Partial   *molgraph.Molecule
}

func (e *PerceptionError) Error() string {
	switch e.Reason {
	case BondOrderExceedsValence:
		return fmt.Sprintf("perceive: bond order exceeds maximum valence at atom %d", e.AtomIndex)
	case KekulizationFailed:
		return "perceive: kekulization failed, unresolved delocalized bonds remain"
	default:
		return fmt.Sprintf("perceive: %s", e.Reason)
	}
}
