package export

import (
	"bytes"
	"strings"
	"testing"

	"wall-layout/internal/holdmap"
	"wall-layout/internal/layout"
	"wall-layout/internal/wall"
)

func TestWriteSVGFullWall(t *testing.T) {
	tbl := holdmap.New()
	tbl.Put("2_1", holdmap.Entry{AngleH: 90, HasAngleH: true, HoldNumber: "1"})
	asm := layout.New(wall.HomewallSpec(), tbl)

	var buf bytes.Buffer
	WriteSVG(&buf, asm.FullWall())
	out := buf.String()

	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("output is not an SVG document")
	}
	if !strings.Contains(out, "mm") {
		t.Errorf("viewport is not declared in millimeters")
	}
	for _, want := range []string{"<circle", "<line", "<rect", "<text"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s elements", want)
		}
	}
	// One stroke color per operation so downstream tooling can split passes.
	for _, color := range []string{"black", "blue", "red"} {
		if !strings.Contains(out, color) {
			t.Errorf("output missing %s stroke", color)
		}
	}
}

func TestWriteSVGViewsShareFrame(t *testing.T) {
	asm := layout.New(wall.GymWallSpec(), nil)
	d := asm.FullWall()

	var all, holes bytes.Buffer
	WriteSVG(&all, d)
	WriteSVG(&holes, d.Filter(layout.OpHoles))

	// Same viewport on every view of a drawing; only content differs.
	header := func(s string) string {
		i := strings.Index(s, ">")
		return s[:i+1]
	}
	if header(all.String()) != header(holes.String()) {
		t.Errorf("views have different SVG viewports:\n%s\n%s",
			header(all.String()), header(holes.String()))
	}
}
