package shape

// CloseAll returns a collection in which every sub-path of at least 2
// points ends where it starts: when first and last differ beyond
// Tolerance, a copy of the first point is appended. Already closed
// sub-paths and sub-paths with fewer than 2 points pass through
// unchanged, so the operation is idempotent. The input collection is
// not modified.
func CloseAll(c Collection) Collection {
	out := make(Collection, len(c))
	for si, s := range c {
		ns := make(Shape, len(s))
		for pi, sp := range s {
			ns[pi] = closeRing(sp)
		}
		out[si] = ns
	}
	return out
}

func closeRing(sp SubPath) SubPath {
	if len(sp) < 2 || sp.Closed() {
		return sp
	}
	closed := make(SubPath, len(sp)+1)
	copy(closed, sp)
	closed[len(sp)] = sp[0]
	return closed
}
