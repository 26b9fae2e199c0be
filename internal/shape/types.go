package shape

import (
	"math"

	"github.com/jbeda/geom"
)

// Tolerance is the absolute per-coordinate threshold below which two
// points are considered the same. Shared by the contour closer and the
// SVG writer so both agree on what "already closed" means.
const Tolerance = 1e-8

// SubPath is one ordered contour of planar points.
type SubPath []geom.Coord

// Shape groups the sub-paths that render with one fill color.
type Shape []SubPath

// Collection is every shape parsed from one fragment table, in
// ascending shape id order. Indexes are stable across pipeline stages:
// stage output at [i][j] is the transform of stage input at [i][j].
type Collection []Shape

func floatAlmostEqual(a, b float64) bool {
	return math.Abs(a-b) <= Tolerance
}

// AlmostEqual reports whether two points coincide within Tolerance on
// both coordinates.
func AlmostEqual(a, b geom.Coord) bool {
	return floatAlmostEqual(a.X, b.X) && floatAlmostEqual(a.Y, b.Y)
}

// Closed reports whether the sub-path ends where it starts. Sub-paths
// with fewer than 2 points are never closed.
func (sp SubPath) Closed() bool {
	if len(sp) < 2 {
		return false
	}
	return AlmostEqual(sp[0], sp[len(sp)-1])
}

// NumPoints returns the point count across all sub-paths of the shape.
func (s Shape) NumPoints() int {
	n := 0
	for _, sp := range s {
		n += len(sp)
	}
	return n
}

// NumPoints returns the point count across the whole collection.
func (c Collection) NumPoints() int {
	n := 0
	for _, s := range c {
		n += s.NumPoints()
	}
	return n
}

// NumSubPaths returns the sub-path count across the whole collection.
func (c Collection) NumSubPaths() int {
	n := 0
	for _, s := range c {
		n += len(s)
	}
	return n
}

// Bounds returns the bounding rectangle of every point in the
// collection. ok is false when the collection holds no points.
func (c Collection) Bounds() (r geom.Rect, ok bool) {
	for _, s := range c {
		for _, sp := range s {
			for _, p := range sp {
				if !ok {
					r = geom.Rect{Min: p, Max: p}
					ok = true
					continue
				}
				r.ExpandToContainCoord(p)
			}
		}
	}
	return r, ok
}
