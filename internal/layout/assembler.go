// Package layout composes hold patterns and panel outlines into named
// drawings: the full wall, single panels, and per-operation views.
package layout

import (
	"fmt"

	"wall-layout/internal/grid"
	"wall-layout/internal/holdmap"
	"wall-layout/internal/panel"
	"wall-layout/internal/pattern"
	"wall-layout/internal/wall"
	"wall-layout/pkg/geometry"
)

// Drawing is a flat collection of categorized primitives with a bounding
// frame, ready for export.
type Drawing struct {
	Name     string
	Bounds   geometry.Rect
	Circles  []pattern.Circle
	Segments []pattern.Segment
	Labels   []pattern.Label
	Outlines []pattern.Outline
}

// Operation selects a per-operation view of a drawing.
type Operation int

const (
	OpAll Operation = iota
	OpHoles
	OpMarkings
	OpOutline
)

func (o Operation) String() string {
	switch o {
	case OpAll:
		return "all"
	case OpHoles:
		return "holes"
	case OpMarkings:
		return "markings"
	case OpOutline:
		return "outline"
	default:
		return "unknown"
	}
}

// Filter returns the view of the drawing for one operation. OpAll returns
// the drawing unchanged. The filters only select by category; geometry is
// never recomputed, so the views of one drawing always align when the
// physical operations are recombined.
func (d Drawing) Filter(op Operation) Drawing {
	switch op {
	case OpHoles:
		out := Drawing{Name: d.Name + "-holes", Bounds: d.Bounds}
		for _, c := range d.Circles {
			if c.Category == pattern.Drill {
				out.Circles = append(out.Circles, c)
			}
		}
		return out
	case OpMarkings:
		out := Drawing{Name: d.Name + "-markings", Bounds: d.Bounds}
		for _, c := range d.Circles {
			if c.Category == pattern.Engrave {
				out.Circles = append(out.Circles, c)
			}
		}
		out.Segments = append(out.Segments, d.Segments...)
		out.Labels = append(out.Labels, d.Labels...)
		return out
	case OpOutline:
		out := Drawing{Name: d.Name + "-outline", Bounds: d.Bounds}
		out.Outlines = append(out.Outlines, d.Outlines...)
		return out
	default:
		return d
	}
}

// Assembler iterates the grid and builds drawings for one wall profile.
type Assembler struct {
	spec   *wall.Spec
	res    *grid.Resolver
	assign *panel.Assigner
	gen    *pattern.Generator
}

// New creates an assembler for a profile and metadata table.
func New(spec *wall.Spec, table *holdmap.Table) *Assembler {
	res := grid.NewResolver(spec)
	return &Assembler{
		spec:   spec,
		res:    res,
		assign: panel.NewAssigner(res),
		gen:    pattern.NewGenerator(res, table),
	}
}

// Spec returns the assembler's wall profile.
func (a *Assembler) Spec() *wall.Spec {
	return a.spec
}

// FullWall builds the whole-wall drawing: every placed hold plus every panel
// outline. Kicker-row holds are unplaced and excluded.
func (a *Assembler) FullWall() Drawing {
	d := Drawing{
		Name:   a.spec.Name() + "-wall",
		Bounds: geometry.NewRect(0, 0, a.spec.WallWidth, a.spec.WallHeight),
	}
	for _, addr := range a.res.Holds() {
		hp, ok := a.gen.Hold(addr)
		if !ok {
			continue
		}
		d.add(hp, geometry.Point2D{})
	}
	for _, p := range a.spec.Panels {
		d.Outlines = append(d.Outlines, pattern.Outline{
			Rect:     geometry.NewRect(p.OffsetX, p.OffsetY, p.Width, p.Height),
			Category: pattern.Reference,
		})
	}
	return d
}

// Panel builds the drawing for one panel in panel-local coordinates. Every
// hold is filtered through the same FitsInPanel predicate used by all other
// passes.
func (a *Assembler) Panel(id int) (Drawing, error) {
	p := a.spec.Panel(id)
	if p == nil {
		return Drawing{}, fmt.Errorf("panel %d is not in the declared set for %s", id, a.spec.Name())
	}

	d := Drawing{
		Name:   fmt.Sprintf("%s-panel%d", a.spec.Name(), id),
		Bounds: geometry.NewRect(0, 0, p.Width, p.Height),
	}
	origin := geometry.Point2D{X: p.OffsetX, Y: p.OffsetY}

	for _, addr := range a.res.Holds() {
		if !a.assign.FitsInPanel(addr, id) {
			continue
		}
		hp, ok := a.gen.Hold(addr)
		if !ok {
			continue
		}
		d.add(hp, origin)
	}

	// The panel's own cutting outline, at the local origin.
	d.Outlines = append(d.Outlines, pattern.Outline{
		Rect:     geometry.NewRect(0, 0, p.Width, p.Height),
		Category: pattern.Reference,
	})
	return d, nil
}

// add appends a hold pattern, translating from the wall frame into the
// drawing frame (origin is the drawing's position on the wall).
func (d *Drawing) add(hp pattern.HoldPattern, origin geometry.Point2D) {
	d.Circles = append(d.Circles, translateCircle(hp.Fastener, origin),
		translateCircle(hp.Accessories[0], origin),
		translateCircle(hp.Accessories[1], origin))
	if hp.Indicator != nil {
		s := *hp.Indicator
		s.A = s.A.Sub(origin)
		s.B = s.B.Sub(origin)
		d.Segments = append(d.Segments, s)
	}
	if hp.Label != nil {
		l := *hp.Label
		l.Pos = l.Pos.Sub(origin)
		d.Labels = append(d.Labels, l)
	}
}

func translateCircle(c pattern.Circle, origin geometry.Point2D) pattern.Circle {
	c.Center = c.Center.Sub(origin)
	return c
}
