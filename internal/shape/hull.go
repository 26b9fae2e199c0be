package shape

import (
	"errors"
	"sort"

	"github.com/jbeda/geom"
)

// crossEpsilon is the tolerance for cross product comparisons. Turns
// below this threshold are treated as collinear.
const crossEpsilon = 1e-10

// ErrDegenerateHull reports a point set with no two-dimensional convex
// hull: fewer than 3 distinct points, or all points collinear.
var ErrDegenerateHull = errors.New("hull: degenerate point set")

// Regularize replaces every sub-path of at least 3 points with its
// convex hull. Sub-paths with fewer than 3 points pass through
// unchanged, as does any sub-path whose hull is degenerate, so no
// sub-path ever comes out empty. The input collection is not modified.
func Regularize(c Collection) Collection {
	out := make(Collection, len(c))
	for si, s := range c {
		ns := make(Shape, len(s))
		for pi, sp := range s {
			if len(sp) < 3 {
				ns[pi] = sp
				continue
			}
			hull, err := convexHull(sp)
			if err != nil {
				Logger().Debug("hull fallback, keeping original sub-path",
					"shape", si, "subpath", pi, "points", len(sp), "err", err)
				ns[pi] = sp
				continue
			}
			ns[pi] = hull
		}
		out[si] = ns
	}
	return out
}

// convexHull computes the convex hull of sp with Andrew's monotone
// chain. Vertices come back in counter-clockwise order starting from
// the leftmost-lowest point and are a subset of the input; interior
// points and collinear boundary points are dropped.
func convexHull(sp SubPath) (SubPath, error) {
	sorted := make(SubPath, len(sp))
	copy(sorted, sp)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	var lower SubPath
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= crossEpsilon {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	var upper SubPath
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= crossEpsilon {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Each chain repeats the other's endpoint; drop both.
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(hull) < 3 {
		return nil, ErrDegenerateHull
	}
	return hull, nil
}

// cross is the 2D cross product of the edge vectors o->a and a->b.
// Positive means a counter-clockwise turn at a, negative clockwise,
// near zero collinear.
func cross(o, a, b geom.Coord) float64 {
	e1 := a.Minus(o)
	e2 := b.Minus(a)
	return e1.X*e2.Y - e1.Y*e2.X
}
