package preview

type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit dot mask
	cls  [][]int   // per-cell color class + 1; 0 means unset
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	cls := make([][]int, h)
	for i := range m {
		m[i] = make([]uint8, w)
		cls[i] = make([]int, w)
	}
	return &brailleBuf{w: w, h: h, m: m, cls: cls}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell) and tags
// the cell with a color class. The last writer of a cell wins the color.
func (b *brailleBuf) setPixel(mx, my, class int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy < 0 || cy >= b.h || cx < 0 || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	b.cls[cy][cx] = class + 1
}

// drawLineMicro draws a line on the microgrid using Bresenham.
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1, class int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, class)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// cell returns the braille rune for a cell and the color class it was
// tagged with. Empty cells come back as a space with class -1.
func (b *brailleBuf) cell(x, y int) (rune, int) {
	mask := b.m[y][x]
	if mask == 0 {
		return ' ', -1
	}
	return rune(0x2800 + int(mask)), b.cls[y][x] - 1
}
