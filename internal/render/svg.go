package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"fragvec/internal/shape"
)

// SVG emits a vector document to an underlying writer. The first write
// error sticks and turns later calls into no-ops; check Err after End.
type SVG struct {
	w   io.Writer
	err error
}

func NewSVG(w io.Writer) *SVG {
	return &SVG{w: w}
}

func (svg *SVG) printf(format string, a ...any) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.w, format, a...)
}

// Start writes the document header and opens the drawing group.
func (svg *SVG) Start(w, h int) {
	svg.printf("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n")
	svg.printf("<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.2\" baseProfile=\"tiny\""+
		" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\" shape-rendering=\"crispEdges\">\n",
		w, h, w, h)
	svg.printf("<g>\n")
}

// Path writes one filled path with no stroke.
func (svg *SVG) Path(d, fill string) {
	svg.printf("  <path d=\"%s\" fill=\"%s\" stroke=\"none\"/>\n", d, fill)
}

// End closes the group and the document.
func (svg *SVG) End() {
	svg.printf("</g>\n</svg>\n")
}

func (svg *SVG) Err() error {
	return svg.err
}

// WriteSVG emits the collection as a filled vector drawing sized to the
// padded canvas extent: one path per shape, fill cycling through the
// palette, no stroke.
func WriteSVG(w io.Writer, c shape.Collection) error {
	width, height := Extent(c)
	svg := NewSVG(w)
	svg.Start(width, height)
	for i, s := range c {
		d := pathData(s)
		if d == "" {
			continue
		}
		svg.Path(d, Fill(i))
	}
	svg.End()
	return svg.Err()
}

// SaveSVG writes the drawing to path.
func SaveSVG(path string, c shape.Collection) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save svg: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return WriteSVG(f, c)
}

// pathData builds the path commands for one shape. Each sub-path opens
// with M at its first point and draws L segments through the rest; Z is
// appended only when the sub-path does not already end on its first
// point.
func pathData(s shape.Shape) string {
	var b strings.Builder
	for _, sp := range s {
		if len(sp) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "M%s,%s", coord(sp[0].X), coord(sp[0].Y))
		for _, p := range sp[1:] {
			fmt.Fprintf(&b, " L%s,%s", coord(p.X), coord(p.Y))
		}
		if !shape.AlmostEqual(sp[0], sp[len(sp)-1]) {
			b.WriteString(" Z")
		}
	}
	return b.String()
}

// coord formats a coordinate with the shortest representation that
// round-trips exactly.
func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
