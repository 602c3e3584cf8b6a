// Package export writes drawings as mm-accurate SVG files for CNC and laser
// software. Each primitive category keeps its own stroke color so downstream
// tooling can route drill, engrave and reference geometry to different
// operations.
package export

import (
	"fmt"
	"io"
	"os"

	"wall-layout/internal/layout"
	"wall-layout/internal/pattern"

	"zappem.net/pub/graphics/svgof"
)

// Stroke colors by operation. These match the common laser-software
// convention of one color per pass.
var categoryColor = map[pattern.Category]string{
	pattern.Drill:     "black",
	pattern.Engrave:   "blue",
	pattern.Reference: "red",
}

func strokeStyle(c pattern.Category, width float64) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%.3f", categoryColor[c], width)
}

// WriteSVG writes a drawing to w. The viewport is declared in millimeters;
// the drawing's y-up wall frame is flipped into SVG's y-down frame.
func WriteSVG(w io.Writer, d layout.Drawing) {
	b := d.Bounds
	flip := func(y float64) float64 {
		return 2*b.Y + b.Height - y
	}

	canvas := svgof.New(w)
	canvas.Decimals = 3
	canvas.StartviewUnit(b.Width, b.Height, "mm", b.X, b.Y, b.Width, b.Height)

	for _, c := range d.Circles {
		canvas.Circle(c.Center.X, flip(c.Center.Y), c.Diameter/2,
			strokeStyle(c.Category, 0.2))
	}
	for _, s := range d.Segments {
		canvas.Line(s.A.X, flip(s.A.Y), s.B.X, flip(s.B.Y),
			strokeStyle(s.Category, s.Width))
	}
	for _, o := range d.Outlines {
		r := o.Rect
		canvas.Rect(r.X, flip(r.Y+r.Height), r.Width, r.Height,
			strokeStyle(o.Category, 0.2))
	}
	for _, l := range d.Labels {
		for i, line := range l.Lines {
			canvas.Text(l.Pos.X, flip(l.Pos.Y)+float64(i)*l.Size*1.2, line,
				fmt.Sprintf("font-size:%.1fpx;fill:%s", l.Size, categoryColor[l.Category]))
		}
	}

	canvas.End()
}

// WriteSVGFile writes a drawing to path.
func WriteSVGFile(path string, d layout.Drawing) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	WriteSVG(f, d)
	return f.Close()
}
