package render

import "fragvec/internal/shape"

// Extent returns the canvas size for a collection: the per-axis
// coordinate maxima padded by 10% and truncated to int. Both dimensions
// are clamped to at least 1 so a degenerate or empty collection still
// yields a drawable canvas.
func Extent(c shape.Collection) (w, h int) {
	maxX, maxY := 0.0, 0.0
	if r, ok := c.Bounds(); ok {
		maxX = r.Max.X
		maxY = r.Max.Y
	}
	w = int(maxX + 0.1*maxX)
	h = int(maxY + 0.1*maxY)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
