// Package main provides the wallplot command: it generates the SVG
// manufacturing files (and optional PNG previews) for a climbing-wall panel
// set from a wall profile and a hold map workbook.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"wall-layout/internal/export"
	"wall-layout/internal/holdmap"
	"wall-layout/internal/layout"
	"wall-layout/internal/project"
	"wall-layout/internal/render"
	"wall-layout/internal/version"
	"wall-layout/internal/wall"
)

const appName = "wallplot"

func main() {
	specName := flag.String("spec", "homewall-10x12", "wall profile name (see -list)")
	specFile := flag.String("spec-file", "", "JSON wall spec file, overrides -spec")
	list := flag.Bool("list", false, "list built-in wall profiles and exit")
	holdMap := flag.String("holdmap", "", "hold map workbook (.xlsx); omitted means no markings data")
	outDir := flag.String("out", ".", "output directory")
	panelSel := flag.String("panel", "all", `"wall" for the full wall only, "all", or a panel id`)
	views := flag.String("views", "all", "comma-separated operations: all,holes,markings,outline")
	preview := flag.Bool("preview", false, "also write a PNG preview per file")
	previewScale := flag.Float64("preview-scale", 0.25, "preview resolution in pixels per mm")
	projectPath := flag.String("project", "", "project file (.wallproj); supplies spec, hold map and output settings")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("%s v%s", appName, version.String())

	if *list {
		for _, name := range wall.ListSpecs() {
			fmt.Println(name)
		}
		return
	}

	if *projectPath != "" {
		proj, err := project.Load(*projectPath)
		if err != nil {
			log.Fatalf("load project: %v", err)
		}
		log.Printf("project: %s", proj.Name)
		if proj.Profile != "" {
			*specName = proj.Profile
		}
		*specFile = proj.GetSpecPath(*projectPath)
		*holdMap = proj.GetHoldMapPath(*projectPath)
		*outDir = proj.GetOutputDir(*projectPath)
		if proj.Settings.Views != "" {
			*views = proj.Settings.Views
		}
		*preview = proj.Settings.Preview
		if proj.Settings.PreviewScale > 0 {
			*previewScale = proj.Settings.PreviewScale
		}
	}

	spec, err := resolveSpec(*specFile, *specName)
	if err != nil {
		log.Fatalf("%v", err)
	}

	var table *holdmap.Table
	if *holdMap != "" {
		table, err = holdmap.LoadWorkbook(*holdMap, spec.Columns)
		if err != nil {
			log.Fatalf("load hold map: %v", err)
		}
		log.Printf("hold map: %d positions with metadata", table.Len())
	} else {
		log.Printf("no hold map given; markings will use placeholder metadata")
	}

	ops, err := parseViews(*views)
	if err != nil {
		log.Fatalf("%v", err)
	}

	asm := layout.New(spec, table)
	drawings, err := selectDrawings(asm, *panelSel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	for _, d := range drawings {
		for _, op := range ops {
			view := d.Filter(op)
			path := filepath.Join(*outDir, view.Name+".svg")
			if err := export.WriteSVGFile(path, view); err != nil {
				log.Fatalf("write %s: %v", path, err)
			}
			log.Printf("wrote %s (%d circles, %d segments, %d labels, %d outlines)",
				path, len(view.Circles), len(view.Segments), len(view.Labels), len(view.Outlines))

			if *preview {
				pngPath := filepath.Join(*outDir, view.Name+".png")
				if err := writePreview(pngPath, view, *previewScale); err != nil {
					log.Fatalf("write %s: %v", pngPath, err)
				}
				log.Printf("wrote %s", pngPath)
			}
		}
	}
}

func resolveSpec(specFile, specName string) (*wall.Spec, error) {
	if specFile != "" {
		return wall.LoadFromFile(specFile)
	}
	spec := wall.GetSpec(specName)
	if spec == nil {
		return nil, fmt.Errorf("unknown wall profile %q (known: %s)",
			specName, strings.Join(wall.ListSpecs(), ", "))
	}
	return spec, nil
}

func parseViews(views string) ([]layout.Operation, error) {
	var ops []layout.Operation
	for _, v := range strings.Split(views, ",") {
		switch strings.TrimSpace(v) {
		case "all":
			ops = append(ops, layout.OpAll)
		case "holes":
			ops = append(ops, layout.OpHoles)
		case "markings":
			ops = append(ops, layout.OpMarkings)
		case "outline":
			ops = append(ops, layout.OpOutline)
		case "":
		default:
			return nil, fmt.Errorf("unknown view %q", v)
		}
	}
	if len(ops) == 0 {
		return nil, fmt.Errorf("no views selected")
	}
	return ops, nil
}

func selectDrawings(asm *layout.Assembler, panelSel string) ([]layout.Drawing, error) {
	switch panelSel {
	case "wall":
		return []layout.Drawing{asm.FullWall()}, nil
	case "all":
		drawings := []layout.Drawing{asm.FullWall()}
		for _, p := range asm.Spec().Panels {
			d, err := asm.Panel(p.ID)
			if err != nil {
				return nil, err
			}
			drawings = append(drawings, d)
		}
		return drawings, nil
	default:
		id, err := strconv.Atoi(panelSel)
		if err != nil {
			return nil, fmt.Errorf("-panel must be \"wall\", \"all\" or a panel id, got %q", panelSel)
		}
		d, err := asm.Panel(id)
		if err != nil {
			return nil, err
		}
		return []layout.Drawing{d}, nil
	}
}

func writePreview(path string, d layout.Drawing, pxPerMM float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WritePNG(f, d, pxPerMM); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
