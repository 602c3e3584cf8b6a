package holdmap

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet names in the hold map workbook.
const (
	MainSheet = "Main Line Grid" // horizontal holds, even columns
	AuxSheet  = "Aux Grid"       // vertical holds, odd columns
)

// Default stored angles for kicker holds with no recorded data.
const (
	defaultKickerAngleH = 180 // K1: horizontal holds point down
	defaultKickerAngleV = 90  // K2: vertical holds point right
)

var (
	angleRe = regexp.MustCompile(`(\d+)`)
	colRe   = regexp.MustCompile(`C-(\d+)`)
)

// LoadWorkbook reads the hold map workbook and returns the populated table.
// The workbook layout follows the published hold map: the main-line sheet
// carries horizontal holds on even columns, the aux sheet vertical holds on
// odd columns. Angle values appear in "Angle" rows directly below "Hold #"
// rows; row identity comes from an R-n or K-n cell in the ROW column. Kicker
// positions missing from the workbook are filled with the conventional
// default angles so every kicker hold still gets an indicator.
//
// columns is the column count of the wall profile the map is used with; the
// kicker defaults cover columns 1..columns.
func LoadWorkbook(path string, columns int) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open hold map: %w", err)
	}
	defer f.Close()

	t := New()

	main, err := f.GetRows(MainSheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", MainSheet, err)
	}
	parseSheet(t, main, 14, true)

	aux, err := f.GetRows(AuxSheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", AuxSheet, err)
	}
	parseSheet(t, aux, 15, false)

	fillKickerDefaults(t, columns)
	return t, nil
}

// cell returns the trimmed cell value, or "" when the row is short.
func cell(rows [][]string, i, j int) string {
	if i < 0 || i >= len(rows) || j < 0 || j >= len(rows[i]) {
		return ""
	}
	return strings.TrimSpace(rows[i][j])
}

// parseSheet walks one grid sheet. idCol is the sheet column holding the
// R-n / K-n row identifiers; horizontal selects the angle slot entries are
// written to. Data columns 1..n map to wall columns 2,4,6,... on the
// main-line sheet and 1,3,5,... on the aux sheet.
func parseSheet(t *Table, rows [][]string, idCol int, horizontal bool) {
	dataCols := 13 // C-2 .. C-26
	if !horizontal {
		dataCols = 14 // C-1 .. C-27
	}

	rowID := ""
	for i := range rows {
		if id := cell(rows, i, idCol); id != "" {
			if strings.HasPrefix(id, "R-") {
				rowID = id
			} else if strings.HasPrefix(id, "K-") {
				rowID = "K" + id[2:] // K-1 -> K1
			}
		}

		if cell(rows, i, 0) != "Hold #" || cell(rows, i+1, 0) != "Angle" {
			continue
		}

		// In the kickboard section the K-n identifier sits beside or below
		// the Hold #/Angle pair rather than above it.
		id := rowID
		for k := i; k <= i+2; k++ {
			if v := cell(rows, k, idCol); strings.HasPrefix(v, "K-") {
				id = "K" + v[2:]
			}
		}
		rowKey := rowKeyFrom(id)
		if rowKey == "" {
			continue
		}

		for j := 1; j <= dataCols; j++ {
			m := angleRe.FindStringSubmatch(cell(rows, i+1, j))
			if m == nil {
				continue
			}
			angle := parseDigits(m[1])

			col := wallColumn(rows, i, j, horizontal)
			key := fmt.Sprintf("%d_%s", col, rowKey)
			number := cell(rows, i, j)
			if number == "" {
				number = fmt.Sprintf("C%d_R%s", col, rowKey)
			}
			t.mergeAngle(key, horizontal, angle, number)
		}
	}
}

// wallColumn determines the wall column for a data cell. A C-n header within
// the four rows above the Hold # row wins; otherwise the column follows from
// the cell position and sheet parity.
func wallColumn(rows [][]string, i, j int, horizontal bool) int {
	for k := i - 1; k >= 0 && k >= i-4; k-- {
		if m := colRe.FindStringSubmatch(cell(rows, k, j)); m != nil {
			return parseDigits(m[1])
		}
	}
	if horizontal {
		return 2 + (j-1)*2
	}
	return 1 + (j-1)*2
}

// rowKeyFrom converts an R-n / K-n identifier to table key form: "7", "K1".
func rowKeyFrom(id string) string {
	if strings.HasPrefix(id, "R-") {
		return id[2:]
	}
	if strings.HasPrefix(id, "K") {
		return id
	}
	return ""
}

func parseDigits(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

// mergeAngle records an angle in the slot for the given orientation,
// creating the entry if needed. An existing hold number is kept; the
// main-line sheet is parsed first and its numbers win.
func (t *Table) mergeAngle(key string, horizontal bool, angle int, number string) {
	e, ok := t.entries[key]
	if !ok {
		e = Entry{HoldNumber: number}
	}
	if horizontal {
		e.AngleH = float64(angle)
		e.HasAngleH = true
	} else {
		e.AngleV = float64(angle)
		e.HasAngleV = true
	}
	t.entries[key] = e
}

// fillKickerDefaults adds the conventional kicker entries for any column the
// workbook left out: K1 on even columns, K2 on odd columns.
func fillKickerDefaults(t *Table, columns int) {
	for col := 2; col <= columns; col += 2 {
		key := fmt.Sprintf("%d_K1", col)
		if _, ok := t.entries[key]; !ok {
			t.entries[key] = Entry{
				AngleH:     defaultKickerAngleH,
				HasAngleH:  true,
				HoldNumber: "K1",
			}
		}
	}
	for col := 1; col <= columns; col += 2 {
		key := fmt.Sprintf("%d_K2", col)
		if _, ok := t.entries[key]; !ok {
			t.entries[key] = Entry{
				AngleV:     defaultKickerAngleV,
				HasAngleV:  true,
				HoldNumber: "K2",
			}
		}
	}
}
