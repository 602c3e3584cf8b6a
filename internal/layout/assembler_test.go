package layout

import (
	"testing"

	"wall-layout/internal/grid"
	"wall-layout/internal/holdmap"
	"wall-layout/internal/pattern"
	"wall-layout/internal/wall"
	"wall-layout/pkg/geometry"
)

func TestFullWallCounts(t *testing.T) {
	spec := wall.HomewallSpec()
	asm := New(spec, nil)
	d := asm.FullWall()

	holds := len(grid.NewResolver(spec).Holds())
	if want := holds * 3; len(d.Circles) != want {
		t.Errorf("full wall circles = %d, want %d (3 per hold)", len(d.Circles), want)
	}
	if len(d.Outlines) != len(spec.Panels) {
		t.Errorf("full wall outlines = %d, want %d", len(d.Outlines), len(spec.Panels))
	}
	if d.Bounds.Width != spec.WallWidth || d.Bounds.Height != spec.WallHeight {
		t.Errorf("full wall bounds = %v", d.Bounds)
	}
	// Markings exist only for the marked column range; there must be some.
	if len(d.Segments) == 0 || len(d.Labels) == 0 {
		t.Errorf("full wall missing markings: %d segments, %d labels",
			len(d.Segments), len(d.Labels))
	}
}

// The panels partition the wall: every hold appears on exactly one panel,
// and the per-panel drawings together carry every full-wall circle.
func TestPanelsPartitionHolds(t *testing.T) {
	for _, name := range wall.ListSpecs() {
		spec := wall.GetSpec(name)
		asm := New(spec, nil)
		t.Run(name, func(t *testing.T) {
			total := 0
			for _, p := range spec.Panels {
				d, err := asm.Panel(p.ID)
				if err != nil {
					t.Fatalf("Panel(%d): %v", p.ID, err)
				}
				total += len(d.Circles)
			}
			full := asm.FullWall()
			if total != len(full.Circles) {
				t.Errorf("panel circles total = %d, full wall = %d", total, len(full.Circles))
			}
		})
	}
}

func TestPanelLocalCoordinates(t *testing.T) {
	spec := wall.HomewallSpec()
	asm := New(spec, nil)

	// Panel 4 is the middle band's right panel, offset (1880, 1220).
	d, err := asm.Panel(4)
	if err != nil {
		t.Fatalf("Panel(4): %v", err)
	}
	p := spec.Panel(4)
	if d.Bounds.Width != p.Width || d.Bounds.Height != p.Height {
		t.Errorf("panel bounds = %v, want %vx%v", d.Bounds, p.Width, p.Height)
	}
	// Fastener and accessory centers must fall inside the panel after
	// translation (accessories can poke past only by their offset).
	frame := geometry.NewRect(-spec.AccessorySpacingH, -spec.AccessorySpacingV,
		p.Width+2*spec.AccessorySpacingH, p.Height+2*spec.AccessorySpacingV)
	for _, c := range d.Circles {
		if c.Category != pattern.Drill {
			continue
		}
		if !frame.Contains(c.Center) {
			t.Fatalf("circle at %v outside panel-local frame", c.Center)
		}
	}
	// Outline sits at the local origin.
	if len(d.Outlines) != 1 || d.Outlines[0].Rect.X != 0 || d.Outlines[0].Rect.Y != 0 {
		t.Errorf("panel outline = %+v, want local origin", d.Outlines)
	}
}

func TestPanelUnknownID(t *testing.T) {
	asm := New(wall.HomewallSpec(), nil)
	if _, err := asm.Panel(99); err == nil {
		t.Errorf("Panel(99) should fail: id is outside the declared set")
	}
}

func TestOperationFilters(t *testing.T) {
	tbl := holdmap.New()
	tbl.Put("5_7", holdmap.Entry{AngleV: 270, HasAngleV: true, HoldNumber: "37"})
	asm := New(wall.HomewallSpec(), tbl)
	d := asm.FullWall()

	holes := d.Filter(OpHoles)
	if len(holes.Circles) != len(d.Circles) {
		t.Errorf("holes view dropped drill circles: %d vs %d", len(holes.Circles), len(d.Circles))
	}
	if len(holes.Segments) != 0 || len(holes.Labels) != 0 || len(holes.Outlines) != 0 {
		t.Errorf("holes view carries non-drill primitives")
	}

	markings := d.Filter(OpMarkings)
	if len(markings.Segments) != len(d.Segments) || len(markings.Labels) != len(d.Labels) {
		t.Errorf("markings view lost primitives")
	}
	if len(markings.Circles) != 0 {
		t.Errorf("markings view carries drill circles")
	}

	outline := d.Filter(OpOutline)
	if len(outline.Outlines) != len(d.Outlines) || len(outline.Circles) != 0 {
		t.Errorf("outline view wrong: %+v", outline)
	}

	// Views never move geometry: bounds are shared, names are suffixed.
	if holes.Bounds != d.Bounds || markings.Bounds != d.Bounds {
		t.Errorf("views changed bounds")
	}
	if holes.Name != d.Name+"-holes" {
		t.Errorf("holes view name = %q", holes.Name)
	}
}

// Kicker holds are unplaced and must not leak into any drawing.
func TestKickerExcluded(t *testing.T) {
	asm := New(wall.HomewallSpec(), nil)
	d := asm.FullWall()
	for _, c := range d.Circles {
		if c.Category == pattern.Drill && c.Center.Y == 0 {
			t.Fatalf("drill circle at y=0: kicker hold leaked into the layout")
		}
	}
}
