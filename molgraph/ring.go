package molgraph

// Ring is an ordered sequence of atom indices describing one traversal
// around a simple cycle: consecutive entries (including last→first) are
// bonded. The sequence is meaningful only up to rotation and reversal —
// two Rings naming the same cycle starting at a different atom, or walked
// the other way round, are the same ring (spec.md §3).
type Ring []int

// Edges yields the ring's consecutive atom-index pairs, including the
// wrap-around pair (last, first).
func (r Ring) Edges() [][2]int {
	edges := make([][2]int, len(r))
	for k := range r {
		edges[k] = [2]int{r[k], r[(k+1)%len(r)]}
	}
	return edges
}

// CanonicalKey returns a string identical for any rotation or reversal of
// the same cycle, used to deduplicate the ring perceiver's output. It
// rotates the sequence to start at its minimum atom index, compares that
// against the same rotation of the reversed sequence, and keeps whichever
// orientation sorts first — so `[0,1,2]`, `[1,2,0]`, `[2,1,0]` and
// `[0,2,1]` all produce the same key.
func (r Ring) CanonicalKey() string {
	fwd := rotateToMinFirst(r)
	rev := make(Ring, len(r))
	for k, v := range r {
		rev[len(r)-1-k] = v
	}
	rev = rotateToMinFirst(rev)

	chosen := fwd
	if lessSeq(rev, fwd) {
		chosen = rev
	}
	return seqKey(chosen)
}

// SameRing reports whether a and b describe the same cycle up to rotation
// and reversal.
func SameRing(a, b Ring) bool {
	if len(a) != len(b) {
		return false
	}
	return a.CanonicalKey() == b.CanonicalKey()
}

func rotateToMinFirst(seq Ring) Ring {
	if len(seq) == 0 {
		return seq
	}
	minIdx := 0
	for k, v := range seq {
		if v < seq[minIdx] {
			minIdx = k
		}
	}
	out := make(Ring, len(seq))
	for k := range seq {
		out[k] = seq[(minIdx+k)%len(seq)]
	}
	return out
}

func lessSeq(a, b Ring) bool {
	for k := range a {
		if a[k] != b[k] {
			return a[k] < b[k]
		}
	}
	return false
}

func seqKey(seq Ring) string {
	buf := make([]byte, 0, len(seq)*4)
	for k, v := range seq {
		if k > 0 {
			buf = append(buf, ',')
		}
		buf = appendInt(buf, v)
	}
	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	neg := v < 0
	if neg {
		v = -v
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	if neg {
		buf = append(buf, '-')
	}
	// reverse the digits just appended
	end := len(buf) - 1
	for i, j := start, end; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}
