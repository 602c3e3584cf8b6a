// Package holdmap provides the per-hold metadata table: recorded hold angles
// and hold numbers, keyed by grid position. The table is an external
// collaborator; missing entries are a normal, expected outcome and never an
// error.
package holdmap

import (
	"math"
	"sort"

	"wall-layout/internal/grid"
)

// Entry holds the recorded metadata for one grid position. Angles are stored
// in the hold-map convention: 0 degrees points up the wall, 90 right, 180
// down, 270 left. A position can carry a horizontal angle, a vertical angle,
// or both (the kicker corner positions do).
type Entry struct {
	AngleH     float64
	AngleV     float64
	HasAngleH  bool
	HasAngleV  bool
	HoldNumber string
}

// Table is a read-only angle/hold-number lookup keyed by "col_row" strings
// ("5_7", "2_K1"), the key format of the source hold map.
type Table struct {
	entries map[string]Entry
}

// New returns an empty table.
func New() *Table {
	return &Table{entries: make(map[string]Entry)}
}

// Put stores an entry, replacing any existing one for the key.
func (t *Table) Put(key string, e Entry) {
	t.entries[key] = e
}

// Get returns the raw entry for a key.
func (t *Table) Get(key string) (Entry, bool) {
	e, ok := t.entries[key]
	return e, ok
}

// Len returns the number of positions with recorded metadata.
func (t *Table) Len() int {
	return len(t.entries)
}

// Keys returns all keys in sorted order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Angle returns the recorded angle for an address and orientation, in the
// stored (0=up) convention. ok is false when no angle is recorded.
func (t *Table) Angle(addr grid.Address, o grid.Orientation) (float64, bool) {
	e, found := t.entries[addr.Key()]
	if !found {
		return 0, false
	}
	if o == grid.Horizontal {
		return e.AngleH, e.HasAngleH
	}
	return e.AngleV, e.HasAngleV
}

// HoldNumber returns the recorded hold number for an address, independent of
// orientation. ok is false when none is recorded.
func (t *Table) HoldNumber(addr grid.Address) (string, bool) {
	e, found := t.entries[addr.Key()]
	if !found || e.HoldNumber == "" {
		return "", false
	}
	return e.HoldNumber, true
}

// ConvertAngle converts a stored angle to the drawing convention. The hold
// map stores 0=up/90=right/180=down/270=left; drawings use 0=right/90=up/
// 180=left/270=down, so the remap is (90 - stored) mod 360 with a
// non-negative modulo. An absent angle converts to 0.
func ConvertAngle(stored float64, ok bool) float64 {
	if !ok {
		return 0
	}
	deg := math.Mod(90-stored, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
