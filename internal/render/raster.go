package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/vector"

	"fragvec/internal/shape"
)

// ScaleFactor returns the integer magnification for rasterizing a
// canvas of the given extent: max(1, 1024/min(w, h)), so the short side
// of a typical drawing lands near 1024 pixels.
func ScaleFactor(w, h int) int {
	m := min(w, h)
	if m < 1 {
		m = 1
	}
	s := 1024 / m
	if s < 1 {
		return 1
	}
	return s
}

// Rasterize renders the collection into a bitmap: the padded canvas
// extent magnified by the scale factor, white background, each shape
// filled with its palette color. The geometry is the same as the vector
// output with every coordinate multiplied by the scale factor.
func Rasterize(c shape.Collection) *image.RGBA {
	w, h := Extent(c)
	scale := ScaleFactor(w, h)
	dst := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	s := float32(scale)
	for i, sh := range c {
		if sh.NumPoints() == 0 {
			continue
		}
		r := vector.NewRasterizer(w*scale, h*scale)
		for _, sp := range sh {
			if len(sp) == 0 {
				continue
			}
			r.MoveTo(s*float32(sp[0].X), s*float32(sp[0].Y))
			for _, p := range sp[1:] {
				r.LineTo(s*float32(p.X), s*float32(p.Y))
			}
			r.ClosePath()
		}
		r.Draw(dst, dst.Bounds(), image.NewUniform(FillColor(i)), image.Point{})
	}
	return dst
}

// WritePNG encodes the rasterized collection as PNG.
func WritePNG(w io.Writer, c shape.Collection) error {
	return png.Encode(w, Rasterize(c))
}

// SavePNG writes the rasterized collection to a PNG file.
func SavePNG(path string, c shape.Collection) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, Rasterize(c))
}
