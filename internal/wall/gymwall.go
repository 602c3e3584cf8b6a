package wall

// 8x12 Gym Wall Profile
//
// A simpler commercial-gym variant: three full-width bands, each band one
// panel. Wider pitch and a taller kickboard than the homewall, and every
// column carries markings.

const (
	GymWallColumns = 15
	GymWallRows    = 23

	GymWallWidth  = 2350.0
	GymWallHeight = 3660.0

	GymWallColMargin    = 200.0
	GymWallBottomMargin = 150.0
	GymWallColSpacing   = 150.0
	GymWallRowSpacing   = 150.0

	GymWallFastenerDiam  = 11.5
	GymWallAccessoryDiam = 6.5
	GymWallLEDSpacing    = 44.45 // 1.75" center-to-center

	GymWallBandHeight = 1220.0

	GymWallIndicatorLength = 40.0
	GymWallIndicatorWidth  = 0.5
	GymWallTextSize        = 10.0
)

// GymWallSpec returns the fully specified gym wall profile.
func GymWallSpec() *Spec {
	return &Spec{
		SpecName:   "gymwall-8x12",
		Columns:    GymWallColumns,
		Rows:       GymWallRows,
		WallWidth:  GymWallWidth,
		WallHeight: GymWallHeight,

		ColEdgeMargin: GymWallColMargin,
		BottomMargin:  GymWallBottomMargin,
		ColSpacing:    GymWallColSpacing,
		RowSpacing:    GymWallRowSpacing,

		FastenerDiam:      GymWallFastenerDiam,
		AccessoryDiam:     GymWallAccessoryDiam,
		AccessorySpacingH: GymWallLEDSpacing,
		AccessorySpacingV: GymWallLEDSpacing,

		IndicatorLength: GymWallIndicatorLength,
		IndicatorWidth:  GymWallIndicatorWidth,
		TextSize:        GymWallTextSize,

		MarkedColMin: 1,
		MarkedColMax: GymWallColumns,

		Split:      SplitBanded,
		BandHeight: GymWallBandHeight,
		Panels: []PanelSpec{
			{ID: 1, Width: GymWallWidth, Height: GymWallBandHeight, OffsetX: 0, OffsetY: 0},
			{ID: 2, Width: GymWallWidth, Height: GymWallBandHeight, OffsetX: 0, OffsetY: GymWallBandHeight},
			{ID: 3, Width: GymWallWidth, Height: GymWallBandHeight, OffsetX: 0, OffsetY: 2 * GymWallBandHeight},
		},
	}
}
