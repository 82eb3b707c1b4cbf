// Package ringperception enumerates every simple cycle in a molecular
// graph by path expansion, the exhaustive-cycle-coverage approach
// spec.md §4.2 requires (not a minimal cycle basis): kekulization needs
// overlapping rings visible simultaneously so fused systems can be
// resolved smallest-ring-first. Grounded on the teacher's fixed-length
// cycle finder (src/molecule/aromatizer.go: findSimpleCyclesOfLength,
// dedupCycles, normalizeCycleKey, rotateToMinFirst), generalized here from
// "cycles of exactly length k" to "every simple cycle, any length."
package ringperception

import "github.com/cx-luo/go-smiles/molgraph"

// Perceive populates mol.Rings with every simple cycle in the graph, each
// stored once under a canonical rotation/reversal, sorted by descending
// length (spec.md §4.2, §9 "Ring perception determinism").
func Perceive(mol *molgraph.Molecule) {
	n := len(mol.Atoms)
	if n == 0 {
		mol.Rings = nil
		mol.RingsPerceived = true
		return
	}

	var active []molgraph.Ring
	// n > 0 was just checked above, so atom 0 always exists.
	neighbors0, _ := mol.NeighborAtoms(0)
	for _, v := range neighbors0 {
		active = append(active, molgraph.Ring{0, v})
	}

	var closed []molgraph.Ring

	for len(active) > 0 {
		var nextActive []molgraph.Ring

		for _, p := range active {
			t := p[len(p)-1]
			var prev int
			if len(p) >= 2 {
				prev = p[len(p)-2]
			} else {
				prev = -1
			}

			if repeatAt := firstRepeat(p); repeatAt >= 0 {
				ring := append(molgraph.Ring(nil), p[repeatAt:len(p)-1]...)
				closed = append(closed, ring)
				continue
			}

			var candidates []int
			// t came from the path itself, so it always names a real atom.
			neighborsT, _ := mol.NeighborAtoms(t)
			for _, v := range neighborsT {
				if v != prev {
					candidates = append(candidates, v)
				}
			}
			if len(candidates) == 0 {
				continue // dead end, drop the path
			}

			extended := append(append(molgraph.Ring(nil), p...), candidates[0])
			nextActive = append(nextActive, extended)
			for _, v := range candidates[1:] {
				forked := append(append(molgraph.Ring(nil), p...), v)
				nextActive = append(nextActive, forked)
			}
		}

		active = nextActive
	}

	mol.Rings = dedupAndSort(closed)
	mol.RingsPerceived = true
}

// firstRepeat returns the index of the first atom in p that reappears
// later in p, or -1 if p has no repeat. A repeat means the path has
// closed a cycle: p[repeatAt:len(p)-1] is the ring (the trailing
// duplicate is dropped).
func firstRepeat(p molgraph.Ring) int {
	seen := make(map[int]int, len(p))
	for i, v := range p {
		if first, ok := seen[v]; ok {
			return first
		}
		seen[v] = i
	}
	return -1
}

// dedupAndSort removes rotation/reversal duplicates and sorts the result
// by descending length, matching spec.md §4.2 step 3.
func dedupAndSort(rings []molgraph.Ring) []molgraph.Ring {
	seen := make(map[string]bool, len(rings))
	var out []molgraph.Ring
	for _, r := range rings {
		if len(r) < 3 {
			continue // a 2-atom "cycle" is just the bond itself, not a ring
		}
		key := r.CanonicalKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}

	// simple descending-length insertion sort: ring counts are small
	// (molecular graphs are sparse), so this stays cheap and keeps the
	// sort stable without pulling in sort.Slice for a handful of elements.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && len(out[j]) > len(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

