package grid

import (
	"wall-layout/internal/wall"
	"wall-layout/pkg/geometry"
)

// Resolver converts grid addresses to physical millimeter positions for one
// wall profile. All methods are pure; panel assignment and hole placement
// both recompute positions through the same Resolver so the two can never
// drift apart.
type Resolver struct {
	spec *wall.Spec
}

// NewResolver creates a resolver for the given wall profile.
func NewResolver(spec *wall.Spec) *Resolver {
	return &Resolver{spec: spec}
}

// Spec returns the wall profile the resolver is bound to.
func (r *Resolver) Spec() *wall.Spec {
	return r.spec
}

// ColumnX returns the X coordinate of a column center. Strictly increasing
// in the column index; the caller is responsible for staying within the
// declared column range.
func (r *Resolver) ColumnX(col int) float64 {
	return r.spec.ColEdgeMargin + float64(col-1)*r.spec.ColSpacing
}

// RowY returns the Y coordinate of a row center. Kicker rows are not placed
// on the main grid and resolve to 0.
func (r *Resolver) RowY(row RowAddress) float64 {
	if row.IsKicker() {
		return 0
	}
	return r.spec.BottomMargin + float64(row.Num()-1)*r.spec.RowSpacing
}

// Position returns the physical position of an address.
func (r *Resolver) Position(addr Address) geometry.Point2D {
	return geometry.Point2D{X: r.ColumnX(addr.Col), Y: r.RowY(addr.Row)}
}

// Holds enumerates every main-grid hold address in deterministic order:
// columns ascending, rows ascending within a column. Even columns yield odd
// rows (horizontal holds), odd columns even rows (vertical holds).
func (r *Resolver) Holds() []Address {
	var addrs []Address
	for col := 1; col <= r.spec.Columns; col++ {
		start := 2 // odd column: even rows
		if col%2 == 0 {
			start = 1 // even column: odd rows
		}
		for row := start; row <= r.spec.Rows; row += 2 {
			addrs = append(addrs, Address{Col: col, Row: Row(row)})
		}
	}
	return addrs
}

// KickerHolds enumerates the kicker-row addresses: K1 on even columns, K2 on
// odd columns. Kicker rows are currently unplaced (RowY returns 0) and are
// excluded from rendered layouts.
func (r *Resolver) KickerHolds() []Address {
	var addrs []Address
	for col := 1; col <= r.spec.Columns; col++ {
		if col%2 == 0 {
			addrs = append(addrs, Address{Col: col, Row: Kicker(KickerH)})
		} else {
			addrs = append(addrs, Address{Col: col, Row: Kicker(KickerV)})
		}
	}
	return addrs
}
