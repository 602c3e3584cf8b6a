// Package render rasterizes drawings into PNG previews for checking a layout
// before committing sheet stock. Previews are approximate; the SVG export is
// the machining source of truth.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"wall-layout/internal/layout"
	"wall-layout/internal/pattern"
	"wall-layout/pkg/geometry"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// circleSides is the polygon resolution used for rasterized holes.
const circleSides = 48

var categoryColor = map[pattern.Category]color.RGBA{
	pattern.Drill:     {R: 0, G: 0, B: 0, A: 255},
	pattern.Engrave:   {R: 0, G: 0, B: 255, A: 255},
	pattern.Reference: {R: 255, G: 0, B: 0, A: 255},
}

// WritePNG rasterizes a drawing at pxPerMM pixels per millimeter and writes
// it as PNG. Holes render as filled disks, engravings as strokes.
func WritePNG(w io.Writer, d layout.Drawing, pxPerMM float64) error {
	if pxPerMM <= 0 {
		return fmt.Errorf("preview scale must be positive, got %g px/mm", pxPerMM)
	}
	width := int(math.Ceil(d.Bounds.Width * pxPerMM))
	height := int(math.Ceil(d.Bounds.Height * pxPerMM))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	// Wall frame (mm, y up) to image frame (px, y down).
	toPx := func(p geometry.Point2D) (float32, float32) {
		x := (p.X - d.Bounds.X) * pxPerMM
		y := (d.Bounds.Y + d.Bounds.Height - p.Y) * pxPerMM
		return float32(x), float32(y)
	}

	for _, c := range d.Circles {
		ring := geometry.GenerateCirclePoints(c.Center.X, c.Center.Y, c.Diameter/2, circleSides)
		fillPolygon(dst, ring, toPx, categoryColor[c.Category])
	}
	for _, s := range d.Segments {
		sw := s.Width
		if sw*pxPerMM < 1 {
			sw = 1 / pxPerMM // keep hairlines visible at low scales
		}
		fillPolygon(dst, segmentQuad(s, sw), toPx, categoryColor[s.Category])
	}
	for _, o := range d.Outlines {
		strokeRect(dst, o.Rect, toPx, pxPerMM, categoryColor[o.Category])
	}

	drawer := &font.Drawer{
		Dst:  dst,
		Face: basicfont.Face7x13,
	}
	for _, l := range d.Labels {
		drawer.Src = image.NewUniform(categoryColor[l.Category])
		x, y := toPx(l.Pos)
		for i, line := range l.Lines {
			drawer.Dot = fixed.P(int(x), int(y)+i*basicfont.Face7x13.Height)
			drawer.DrawString(line)
		}
	}

	return png.Encode(w, dst)
}

// fillPolygon rasterizes a closed polygon given in wall coordinates.
func fillPolygon(dst *image.RGBA, pts []geometry.Point2D, toPx func(geometry.Point2D) (float32, float32), col color.RGBA) {
	if len(pts) < 3 {
		return
	}
	r := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	x, y := toPx(pts[0])
	r.MoveTo(x, y)
	for _, p := range pts[1:] {
		x, y = toPx(p)
		r.LineTo(x, y)
	}
	r.ClosePath()
	r.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{})
}

// segmentQuad expands a segment into the thin quad covering its stroke.
func segmentQuad(s pattern.Segment, width float64) []geometry.Point2D {
	length := s.A.Distance(s.B)
	if length == 0 {
		return nil
	}
	dir := s.B.Sub(s.A)
	// Unit normal scaled to half width.
	n := geometry.Point2D{X: -dir.Y, Y: dir.X}.Scale(width / 2 / length)
	return []geometry.Point2D{
		s.A.Add(n),
		s.B.Add(n),
		s.B.Sub(n),
		s.A.Sub(n),
	}
}

// strokeRect draws a 1px-equivalent rectangle outline as four quads.
func strokeRect(dst *image.RGBA, r geometry.Rect, toPx func(geometry.Point2D) (float32, float32), pxPerMM float64, col color.RGBA) {
	w := 1 / pxPerMM
	corners := []geometry.Point2D{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}
	for i := range corners {
		seg := pattern.Segment{A: corners[i], B: corners[(i+1)%4]}
		fillPolygon(dst, segmentQuad(seg, w), toPx, col)
	}
}
