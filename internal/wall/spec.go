// Package wall provides wall layout specification definitions and management.
package wall

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// SplitPolicy defines how grid positions are partitioned into panels.
type SplitPolicy string

const (
	// SplitBandedLR divides the wall into horizontal bands of sheet height,
	// each band split into a left and a right panel at a per-band X boundary.
	SplitBandedLR SplitPolicy = "banded-lr"
	// SplitBanded divides the wall into full-width horizontal bands, one
	// panel per band.
	SplitBanded SplitPolicy = "banded"
)

// PanelSpec defines one physical panel cut from sheet stock.
type PanelSpec struct {
	ID      int     `json:"id"`
	Width   float64 `json:"width_mm"`
	Height  float64 `json:"height_mm"`
	OffsetX float64 `json:"offset_x_mm"` // panel origin in the full-wall frame
	OffsetY float64 `json:"offset_y_mm"`
}

// Spec defines a complete wall layout profile. All lengths are millimeters.
// A Spec is immutable after construction; the geometry engine only reads it.
type Spec struct {
	SpecName string `json:"name"`

	// Grid extents. Columns and rows are 1-based; the kicker row sits below
	// row 1 and is addressed separately.
	Columns int `json:"columns"`
	Rows    int `json:"rows"`

	WallWidth  float64 `json:"wall_width_mm"`
	WallHeight float64 `json:"wall_height_mm"`

	// Grid origin and pitch.
	ColEdgeMargin float64 `json:"col_edge_margin_mm"` // left edge to column 1
	BottomMargin  float64 `json:"bottom_margin_mm"`   // bottom edge to row 1
	ColSpacing    float64 `json:"col_spacing_mm"`
	RowSpacing    float64 `json:"row_spacing_mm"`

	// Hole sizes.
	FastenerDiam  float64 `json:"fastener_diam_mm"`
	AccessoryDiam float64 `json:"accessory_diam_mm"`

	// Accessory (LED) hole offsets from the fastener center, along X for
	// horizontally oriented holds and along Y for vertical ones.
	AccessorySpacingH float64 `json:"accessory_spacing_h_mm"`
	AccessorySpacingV float64 `json:"accessory_spacing_v_mm"`

	// Engraved marking geometry.
	IndicatorLength float64 `json:"indicator_length_mm"`
	IndicatorWidth  float64 `json:"indicator_width_mm"`
	TextSize        float64 `json:"text_size_mm"`

	// Columns that carry engraved markings. Columns outside the range still
	// get holes (structural end columns on some walls are unmarked).
	MarkedColMin int `json:"marked_col_min"`
	MarkedColMax int `json:"marked_col_max"`

	// Panel partition policy.
	Split      SplitPolicy `json:"split"`
	BandHeight float64     `json:"band_height_mm"`
	// BandSplits holds the left/right X boundary for each band, bottom band
	// first. Used only by SplitBandedLR.
	BandSplits []float64   `json:"band_splits_mm,omitempty"`
	Panels     []PanelSpec `json:"panels"`
}

// Name returns the profile name.
func (s *Spec) Name() string {
	return s.SpecName
}

// Marked reports whether a column carries engraved markings.
func (s *Spec) Marked(col int) bool {
	return col >= s.MarkedColMin && col <= s.MarkedColMax
}

// Panel returns the panel spec with the given id, or nil if the id is not in
// the declared set.
func (s *Spec) Panel(id int) *PanelSpec {
	for i := range s.Panels {
		if s.Panels[i].ID == id {
			return &s.Panels[i]
		}
	}
	return nil
}

// Validate checks the spec for internal consistency.
func (s *Spec) Validate() error {
	if s.SpecName == "" {
		return fmt.Errorf("wall spec name is required")
	}
	if s.Columns <= 0 || s.Rows <= 0 {
		return fmt.Errorf("grid extents must be positive")
	}
	if s.WallWidth <= 0 || s.WallHeight <= 0 {
		return fmt.Errorf("wall dimensions must be positive")
	}
	if s.ColSpacing <= 0 || s.RowSpacing <= 0 {
		return fmt.Errorf("grid spacing must be positive")
	}
	if s.FastenerDiam <= 0 {
		return fmt.Errorf("fastener hole diameter must be positive")
	}
	switch s.Split {
	case SplitBandedLR:
		bands := len(s.BandSplits)
		if bands == 0 {
			return fmt.Errorf("banded-lr split requires band boundaries")
		}
		if len(s.Panels) != 2*bands {
			return fmt.Errorf("banded-lr split requires 2 panels per band, have %d for %d bands",
				len(s.Panels), bands)
		}
	case SplitBanded:
		if len(s.Panels) == 0 {
			return fmt.Errorf("banded split requires at least one panel")
		}
	default:
		return fmt.Errorf("unknown split policy %q", s.Split)
	}
	if s.BandHeight <= 0 {
		return fmt.Errorf("band height must be positive")
	}
	seen := make(map[int]bool)
	for _, p := range s.Panels {
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("panel %d dimensions must be positive", p.ID)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate panel id %d", p.ID)
		}
		seen[p.ID] = true
	}
	if s.MarkedColMin > s.MarkedColMax {
		return fmt.Errorf("marked column range is empty")
	}
	return nil
}

// SaveToFile saves the spec to a JSON file.
func (s *Spec) SaveToFile(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadFromFile loads a spec from a JSON file.
func LoadFromFile(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var spec Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, err
	}

	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid wall spec: %w", err)
	}

	return &spec, nil
}

// Registry of known wall profiles
var registry = make(map[string]*Spec)

// Register adds a wall profile to the registry.
func Register(spec *Spec) {
	registry[spec.Name()] = spec
}

// GetSpec returns a wall profile by name.
func GetSpec(name string) *Spec {
	if spec, ok := registry[name]; ok {
		return spec
	}
	return nil
}

// ListSpecs returns all registered profile names, sorted.
func ListSpecs() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	// Register built-in wall profiles
	Register(HomewallSpec())
	Register(GymWallSpec())
}
