// Package grid provides logical grid addressing and the coordinate resolver
// that maps addresses to physical positions on the wall.
package grid

import (
	"fmt"
)

// Kicker row tags. K1 carries horizontally oriented holds on even columns,
// K2 vertically oriented holds on odd columns.
const (
	KickerH = "K1"
	KickerV = "K2"
)

// RowAddress identifies a row: either a numbered main-grid row or a kicker
// row below the main grid. The zero value is not a valid address.
type RowAddress struct {
	num int
	tag string
}

// Row returns the address of a numbered main-grid row (1-based).
func Row(n int) RowAddress {
	return RowAddress{num: n}
}

// Kicker returns the address of a kicker row ("K1" or "K2").
func Kicker(tag string) RowAddress {
	return RowAddress{tag: tag}
}

// IsKicker reports whether the row is a kicker row.
func (r RowAddress) IsKicker() bool {
	return r.tag != ""
}

// Num returns the numbered row, or 0 for kicker rows.
func (r RowAddress) Num() int {
	return r.num
}

// Tag returns the kicker tag, or "" for numbered rows.
func (r RowAddress) Tag() string {
	return r.tag
}

// Key returns the row in hold-map key form: "7" for row 7, "K1" for the
// kicker row.
func (r RowAddress) Key() string {
	if r.IsKicker() {
		return r.tag
	}
	return fmt.Sprintf("%d", r.num)
}

func (r RowAddress) String() string {
	if r.IsKicker() {
		return r.tag
	}
	return fmt.Sprintf("R%d", r.num)
}

// Orientation is the fastener-pattern orientation of a hold position.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Address identifies one hold position on the logical grid.
type Address struct {
	Col int
	Row RowAddress
}

func (a Address) String() string {
	return fmt.Sprintf("C%d/%s", a.Col, a.Row)
}

// Key returns the address in hold-map key form, e.g. "5_7" or "2_K1".
func (a Address) Key() string {
	return fmt.Sprintf("%d_%s", a.Col, a.Row.Key())
}

// Orientation returns the hold orientation for the address. Column parity
// decides: even columns pair with odd rows (horizontal holds), odd columns
// with even rows (vertical holds). The two sets tile the grid as a
// checkerboard; every other (col,row) combination carries no hold and ok is
// false.
func (a Address) Orientation() (Orientation, bool) {
	evenCol := a.Col%2 == 0
	if a.Row.IsKicker() {
		switch a.Row.Tag() {
		case KickerH:
			if evenCol {
				return Horizontal, true
			}
		case KickerV:
			if !evenCol {
				return Vertical, true
			}
		}
		return 0, false
	}
	oddRow := a.Row.Num()%2 == 1
	if evenCol && oddRow {
		return Horizontal, true
	}
	if !evenCol && !oddRow {
		return Vertical, true
	}
	return 0, false
}
