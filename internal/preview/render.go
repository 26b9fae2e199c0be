package preview

import (
	"math"
	"strings"

	"github.com/jbeda/geom"

	"fragvec/internal/shape"
)

// viewport captures the spatial parameters of one rendered frame.
type viewport struct {
	zoom    float64
	offsetX int // pan, in cells
	offsetY int
}

// canvas draws the collection onto a w x h cell braille canvas. The
// projection preserves aspect ratio and centers the drawing; sel >= 0
// highlights that shape and dims the rest.
func canvas(c shape.Collection, sel int, vp viewport, w, h int) string {
	if w < 1 || h < 1 {
		return ""
	}
	br := newBrailleBuf(w, h)
	if b, ok := c.Bounds(); ok {
		for si, s := range c {
			for _, sp := range s {
				var prevX, prevY int
				hasPrev := false
				for _, p := range sp {
					mx, my := projectMicro(p, b, vp, w, h)
					if hasPrev {
						br.drawLineMicro(prevX, prevY, mx, my, si)
					} else {
						br.setPixel(mx, my, si)
					}
					prevX, prevY = mx, my
					hasPrev = true
				}
			}
		}
	}

	// Emit rows, styling runs of same-colored cells together.
	var out strings.Builder
	for y := 0; y < h; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		x := 0
		for x < w {
			_, cls := br.cell(x, y)
			var run []rune
			for x < w {
				r, c2 := br.cell(x, y)
				if c2 != cls {
					break
				}
				run = append(run, r)
				x++
			}
			seg := string(run)
			if cls >= 0 {
				style := shapeStyle(cls)
				if sel >= 0 && cls != sel {
					style = dimStyle
				}
				seg = style.Render(seg)
			}
			out.WriteString(seg)
		}
	}
	return out.String()
}

// projectMicro maps a data point into the 2x4 micro-grid of the canvas.
// Y grows upward in data space and downward on screen, and one uniform
// scale serves both axes so shapes keep their proportions.
func projectMicro(p geom.Coord, b geom.Rect, vp viewport, w, h int) (int, int) {
	wMic := w * 2
	hMic := h * 4
	bw := b.Width()
	bh := b.Height()
	if bw <= 0 {
		bw = 1
	}
	if bh <= 0 {
		bh = 1
	}
	scale := min(float64(wMic-1)/bw, float64(hMic-1)/bh) * vp.zoom
	cx := (b.Min.X + b.Max.X) / 2
	cy := (b.Min.Y + b.Max.Y) / 2
	sx := int(math.Round(float64(wMic-1)/2+(p.X-cx)*scale)) + vp.offsetX*2
	sy := int(math.Round(float64(hMic-1)/2-(p.Y-cy)*scale)) + vp.offsetY*4
	return sx, sy
}

// cellToData inverts the projection for a screen cell, returning the
// data coordinates under it.
func cellToData(cellX, cellY int, c shape.Collection, vp viewport, w, h int) (geom.Coord, bool) {
	b, ok := c.Bounds()
	if !ok || w < 1 || h < 1 || vp.zoom <= 0 {
		return geom.Coord{}, false
	}
	wMic := w * 2
	hMic := h * 4
	bw := b.Width()
	bh := b.Height()
	if bw <= 0 {
		bw = 1
	}
	if bh <= 0 {
		bh = 1
	}
	scale := min(float64(wMic-1)/bw, float64(hMic-1)/bh) * vp.zoom
	cx := (b.Min.X + b.Max.X) / 2
	cy := (b.Min.Y + b.Max.Y) / 2
	mx := float64(cellX*2 - vp.offsetX*2)
	my := float64(cellY*4 - vp.offsetY*4)
	x := cx + (mx-float64(wMic-1)/2)/scale
	y := cy - (my-float64(hMic-1)/2)/scale
	return geom.Coord{X: x, Y: y}, true
}
