// Package pattern generates the geometric primitives for individual holds:
// drilled holes, the engraved orientation indicator, and the engraved label.
package pattern

import (
	"fmt"

	"wall-layout/internal/grid"
	"wall-layout/internal/holdmap"
	"wall-layout/internal/wall"
	"wall-layout/pkg/geometry"
)

// Category routes a primitive to a physical operation downstream.
type Category int

const (
	// Drill primitives become drilled or cut holes.
	Drill Category = iota
	// Engrave primitives become surface engravings.
	Engrave
	// Reference primitives are layout guides (panel outlines) and are not
	// machined.
	Reference
)

func (c Category) String() string {
	switch c {
	case Drill:
		return "drill"
	case Engrave:
		return "engrave"
	case Reference:
		return "reference"
	default:
		return "unknown"
	}
}

// Undefined is the label placeholder for missing metadata.
const Undefined = "undefined"

// Circle is a drilled hole or engraved circle.
type Circle struct {
	Center   geometry.Point2D
	Diameter float64
	Category Category
}

// Segment is a straight engraved line.
type Segment struct {
	A, B     geometry.Point2D
	Width    float64
	Category Category
}

// Label is a block of engraved text lines anchored at Pos.
type Label struct {
	Pos      geometry.Point2D
	Size     float64
	Lines    []string
	Category Category
}

// Outline is a rectangular cutting or reference outline.
type Outline struct {
	Rect     geometry.Rect
	Category Category
}

// HoldPattern is the full set of primitives for one hold position. Indicator
// and Label are nil for holds on unmarked columns; the holes are always
// present since they are structural.
type HoldPattern struct {
	Addr        grid.Address
	Orientation grid.Orientation
	Fastener    Circle
	Accessories [2]Circle
	Indicator   *Segment
	Label       *Label
}

// Generator produces hold patterns for one wall profile and metadata table.
type Generator struct {
	spec  *wall.Spec
	res   *grid.Resolver
	table *holdmap.Table
}

// NewGenerator creates a generator. The table is read-only; a nil table is
// treated as empty.
func NewGenerator(res *grid.Resolver, table *holdmap.Table) *Generator {
	if table == nil {
		table = holdmap.New()
	}
	return &Generator{spec: res.Spec(), res: res, table: table}
}

// Hold generates the pattern for an address. ok is false when the address
// carries no hold (wrong column/row parity). Missing metadata never fails
// the pattern: the angle degrades to 0 and the label to the Undefined
// placeholder, because the holes are structural while the markings are
// advisory.
func (g *Generator) Hold(addr grid.Address) (HoldPattern, bool) {
	orient, ok := addr.Orientation()
	if !ok {
		return HoldPattern{}, false
	}

	center := g.res.Position(addr)
	hp := HoldPattern{
		Addr:        addr,
		Orientation: orient,
		Fastener: Circle{
			Center:   center,
			Diameter: g.spec.FastenerDiam,
			Category: Drill,
		},
	}

	// Accessory holes sit symmetrically about the fastener hole, along X
	// for horizontal holds and along Y for vertical ones.
	var offset geometry.Point2D
	if orient == grid.Horizontal {
		offset = geometry.Point2D{X: g.spec.AccessorySpacingH}
	} else {
		offset = geometry.Point2D{Y: g.spec.AccessorySpacingV}
	}
	hp.Accessories[0] = Circle{
		Center:   center.Sub(offset),
		Diameter: g.spec.AccessoryDiam,
		Category: Drill,
	}
	hp.Accessories[1] = Circle{
		Center:   center.Add(offset),
		Diameter: g.spec.AccessoryDiam,
		Category: Drill,
	}

	if !g.spec.Marked(addr.Col) {
		return hp, true
	}

	stored, hasAngle := g.table.Angle(addr, orient)
	deg := holdmap.ConvertAngle(stored, hasAngle)

	// Indicator: fixed-length segment from the hole center, 0 degrees along
	// +X in the drawing convention.
	tip := geometry.RotationDegrees(deg).
		Apply(geometry.Point2D{X: g.spec.IndicatorLength}).
		Add(center)
	hp.Indicator = &Segment{
		A:        center,
		B:        tip,
		Width:    g.spec.IndicatorWidth,
		Category: Engrave,
	}

	number, hasNumber := g.table.HoldNumber(addr)
	if !hasNumber {
		number = Undefined
	}
	angleText := Undefined
	if hasAngle {
		angleText = fmt.Sprintf("%.0f deg", deg)
	}

	// Label offset below-right of the hole so it never overlaps the bore.
	hp.Label = &Label{
		Pos: center.Add(geometry.Point2D{
			X: g.spec.FastenerDiam,
			Y: -(g.spec.FastenerDiam + g.spec.TextSize),
		}),
		Size:     g.spec.TextSize,
		Lines:    []string{addr.String(), number, angleText},
		Category: Engrave,
	}

	return hp, true
}
