package wall

// 10x12 Homewall Profile
//
// Physical characteristics:
// - Wall: 3100mm x 3660mm, built from six 1220mm-tall plywood panels
// - 27 columns x 35 rows, 100mm pitch both ways, plus a kickboard row
// - Each 1220mm band is cut into a narrow and a wide panel; the middle
//   band swaps which side is narrow so vertical seams do not line up

const (
	// Homewall grid dimensions
	HomewallColumns = 27
	HomewallRows    = 35

	HomewallWidth  = 3100.0
	HomewallHeight = 3660.0

	// Grid origin and pitch in mm
	HomewallColMargin    = 250.0
	HomewallBottomMargin = 100.0
	HomewallColSpacing   = 100.0
	HomewallRowSpacing   = 100.0

	// Hole sizes: 11.5mm clears a 3/8" T-nut barrel, 6.5mm passes the
	// accessory LED bezel
	HomewallFastenerDiam  = 11.5
	HomewallAccessoryDiam = 6.5
	HomewallLEDSpacing    = 38.1 // 1.5" center-to-center

	// Plywood sheet height; bands stack bottom to top
	HomewallBandHeight = 1220.0
	// X boundary between the narrow and wide panel of a band
	HomewallNarrowWidth = 1220.0

	// Engraving geometry
	HomewallIndicatorLength = 30.0
	HomewallIndicatorWidth  = 0.5
	HomewallTextSize        = 8.0
)

// HomewallSpec returns the fully specified 10x12 homewall profile.
// Columns 1 and 27 are structural end columns: they are drilled but carry no
// engraved markings.
func HomewallSpec() *Spec {
	wide := HomewallWidth - HomewallNarrowWidth
	return &Spec{
		SpecName:   "homewall-10x12",
		Columns:    HomewallColumns,
		Rows:       HomewallRows,
		WallWidth:  HomewallWidth,
		WallHeight: HomewallHeight,

		ColEdgeMargin: HomewallColMargin,
		BottomMargin:  HomewallBottomMargin,
		ColSpacing:    HomewallColSpacing,
		RowSpacing:    HomewallRowSpacing,

		FastenerDiam:      HomewallFastenerDiam,
		AccessoryDiam:     HomewallAccessoryDiam,
		AccessorySpacingH: HomewallLEDSpacing,
		AccessorySpacingV: HomewallLEDSpacing,

		IndicatorLength: HomewallIndicatorLength,
		IndicatorWidth:  HomewallIndicatorWidth,
		TextSize:        HomewallTextSize,

		MarkedColMin: 2,
		MarkedColMax: 26,

		Split:      SplitBandedLR,
		BandHeight: HomewallBandHeight,
		BandSplits: []float64{
			HomewallNarrowWidth, // bottom band: narrow panel on the left
			wide,                // middle band: narrow panel on the right
			HomewallNarrowWidth, // top band: narrow panel on the left
		},
		Panels: []PanelSpec{
			{ID: 1, Width: HomewallNarrowWidth, Height: HomewallBandHeight, OffsetX: 0, OffsetY: 0},
			{ID: 2, Width: wide, Height: HomewallBandHeight, OffsetX: HomewallNarrowWidth, OffsetY: 0},
			{ID: 3, Width: wide, Height: HomewallBandHeight, OffsetX: 0, OffsetY: HomewallBandHeight},
			{ID: 4, Width: HomewallNarrowWidth, Height: HomewallBandHeight, OffsetX: wide, OffsetY: HomewallBandHeight},
			{ID: 5, Width: HomewallNarrowWidth, Height: HomewallBandHeight, OffsetX: 0, OffsetY: 2 * HomewallBandHeight},
			{ID: 6, Width: wide, Height: HomewallBandHeight, OffsetX: HomewallNarrowWidth, OffsetY: 2 * HomewallBandHeight},
		},
	}
}
