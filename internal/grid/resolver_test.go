package grid

import (
	"testing"

	"wall-layout/internal/wall"
)

func TestColumnXMonotonic(t *testing.T) {
	for _, name := range wall.ListSpecs() {
		spec := wall.GetSpec(name)
		r := NewResolver(spec)
		t.Run(name, func(t *testing.T) {
			prev := r.ColumnX(1)
			for col := 2; col <= spec.Columns; col++ {
				x := r.ColumnX(col)
				if x <= prev {
					t.Fatalf("ColumnX(%d) = %v not greater than ColumnX(%d) = %v", col, x, col-1, prev)
				}
				prev = x
			}
		})
	}
}

func TestRowYMonotonicAndKicker(t *testing.T) {
	spec := wall.HomewallSpec()
	r := NewResolver(spec)

	prev := r.RowY(Row(1))
	for row := 2; row <= spec.Rows; row++ {
		y := r.RowY(Row(row))
		if y <= prev {
			t.Fatalf("RowY(%d) = %v not greater than RowY(%d) = %v", row, y, row-1, prev)
		}
		prev = y
	}

	for _, tag := range []string{KickerH, KickerV} {
		if y := r.RowY(Kicker(tag)); y != 0 {
			t.Errorf("RowY(%s) = %v, want 0", tag, y)
		}
	}
}

// Worked scenario from the homewall profile: column 5 sits at
// 250mm + 4x100mm = 650mm, row 7 at 100mm + 6x100mm = 700mm.
func TestHomewallScenarioPosition(t *testing.T) {
	r := NewResolver(wall.HomewallSpec())
	if x := r.ColumnX(5); x != 650 {
		t.Errorf("ColumnX(5) = %v, want 650", x)
	}
	if y := r.RowY(Row(7)); y != 700 {
		t.Errorf("RowY(7) = %v, want 700", y)
	}
}

func TestHoldsEnumeration(t *testing.T) {
	spec := wall.HomewallSpec()
	r := NewResolver(spec)

	holds := r.Holds()
	seen := make(map[string]bool)
	for _, addr := range holds {
		if _, ok := addr.Orientation(); !ok {
			t.Fatalf("enumerated address %v has no orientation", addr)
		}
		if seen[addr.Key()] {
			t.Fatalf("duplicate address %v", addr)
		}
		seen[addr.Key()] = true
	}
	// 13 even columns carry 18 odd rows, 14 odd columns carry 17 even rows.
	if want := 13*18 + 14*17; len(holds) != want {
		t.Errorf("len(Holds()) = %d, want %d", len(holds), want)
	}

	kickers := r.KickerHolds()
	if len(kickers) != spec.Columns {
		t.Errorf("len(KickerHolds()) = %d, want %d", len(kickers), spec.Columns)
	}
	for _, addr := range kickers {
		if _, ok := addr.Orientation(); !ok {
			t.Fatalf("kicker address %v has no orientation", addr)
		}
		if y := r.RowY(addr.Row); y != 0 {
			t.Fatalf("kicker address %v placed at y=%v", addr, y)
		}
	}
}

// Resolving the same address twice must be bit-identical: panel assignment
// and hole placement both recompute positions independently.
func TestResolverReproducible(t *testing.T) {
	r := NewResolver(wall.GymWallSpec())
	for _, addr := range r.Holds() {
		a := r.Position(addr)
		b := r.Position(addr)
		if a != b {
			t.Fatalf("Position(%v) not reproducible: %v vs %v", addr, a, b)
		}
	}
}
