package shape

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jbeda/geom"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func pt(x, y float64) geom.Coord {
	return geom.Coord{X: x, Y: y}
}

func approx(t *testing.T, want, got, tol float64) {
	t.Helper()
	if math.Abs(want-got) > tol {
		t.Errorf("got %v, want %v (tolerance %v)", got, want, tol)
	}
}
