package render

import (
	"image/color"
	"strconv"
)

// Palette is the fixed fill cycle: shape i renders with
// Palette[i % len(Palette)] in both the vector and raster output.
var Palette = [...]string{
	"#FF5733",
	"#33FF57",
	"#3357FF",
	"#FF33A1",
	"#FFB833",
	"#8D33FF",
	"#33FFB3",
}

// Fill returns the fill color hex for shape index i.
func Fill(i int) string {
	return Palette[i%len(Palette)]
}

// FillColor returns the fill color for shape index i.
func FillColor(i int) color.NRGBA {
	return hexColor(Fill(i))
}

// hexColor parses "#RGB" or "#RRGGBB" into an opaque color. Anything
// else comes back black.
func hexColor(hex string) color.NRGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	var r, g, b uint64
	switch len(hex) {
	case 3:
		r, _ = strconv.ParseUint(hex[0:1], 16, 8)
		g, _ = strconv.ParseUint(hex[1:2], 16, 8)
		b, _ = strconv.ParseUint(hex[2:3], 16, 8)
		r, g, b = r*17, g*17, b*17
	case 6:
		r, _ = strconv.ParseUint(hex[0:2], 16, 8)
		g, _ = strconv.ParseUint(hex[2:4], 16, 8)
		b, _ = strconv.ParseUint(hex[4:6], 16, 8)
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xFF}
}
