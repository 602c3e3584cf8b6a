// Package panel assigns grid positions to physical panels.
package panel

import (
	"math"

	"wall-layout/internal/grid"
	"wall-layout/internal/wall"
)

// Assigner maps grid addresses to panel ids for one wall profile. Assignment
// is total and permissive: an address outside the covered grid still resolves
// arithmetically to some id, with no validity flag. Callers that need strict
// validity check the id against the declared panel set themselves.
type Assigner struct {
	spec *wall.Spec
	res  *grid.Resolver
}

// NewAssigner creates an assigner using the resolver's wall profile.
func NewAssigner(res *grid.Resolver) *Assigner {
	return &Assigner{spec: res.Spec(), res: res}
}

// PanelFor returns the panel id covering an address.
//
// Under SplitBandedLR the wall is cut into horizontal bands of BandHeight;
// floor(y/BandHeight) picks the band, and the position's X against the
// band's split boundary picks the left or right panel. The per-band
// boundaries come straight from the profile, including the middle band's
// swapped narrow side; that asymmetry is layout policy, not an accident.
//
// Under SplitBanded panels are full-width bands: panel p covers
// y in [(p-1)*BandHeight, p*BandHeight). The interval is half-open, so a
// position exactly on a boundary belongs to the band above.
func (a *Assigner) PanelFor(addr grid.Address) int {
	y := a.res.RowY(addr.Row)
	band := int(math.Floor(y / a.spec.BandHeight))

	if a.spec.Split == wall.SplitBanded {
		return band + 1
	}

	split := a.bandSplit(band)
	side := 0
	if a.res.ColumnX(addr.Col) >= split {
		side = 1
	}
	return band*2 + side + 1
}

// bandSplit returns the left/right boundary for a band. Bands beyond the
// declared list reuse the last boundary so assignment stays total.
func (a *Assigner) bandSplit(band int) float64 {
	if band < 0 {
		band = 0
	}
	if band >= len(a.spec.BandSplits) {
		band = len(a.spec.BandSplits) - 1
	}
	return a.spec.BandSplits[band]
}

// FitsInPanel reports whether an address belongs to the given panel. This is
// the one filter predicate shared by the drilling, engraving and outline
// passes; routing every pass through it keeps the three layers spatially
// aligned when recombined.
func (a *Assigner) FitsInPanel(addr grid.Address, panelID int) bool {
	return a.PanelFor(addr) == panelID
}
