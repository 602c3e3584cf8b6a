// Command holdmapinfo loads a hold map workbook and prints coverage and
// angle statistics, for verifying a map before generating layouts.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"wall-layout/internal/holdmap"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func main() {
	mapPath := flag.String("holdmap", "", "Path to hold map workbook (.xlsx)")
	columns := flag.Int("columns", 27, "Wall column count (for kicker defaults)")
	flag.Parse()

	if *mapPath == "" {
		fmt.Println("Usage: holdmapinfo -holdmap <path> [-columns 27]")
		os.Exit(1)
	}

	table, err := holdmap.LoadWorkbook(*mapPath, *columns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load hold map: %v\n", err)
		os.Exit(1)
	}

	var anglesH, anglesV []float64
	numbered := 0
	kicker := 0
	for _, key := range table.Keys() {
		e, _ := table.Get(key)
		if e.HasAngleH {
			anglesH = append(anglesH, e.AngleH)
		}
		if e.HasAngleV {
			anglesV = append(anglesV, e.AngleV)
		}
		if strings.Contains(key, "_K") {
			kicker++
		} else {
			numbered++
		}
	}

	fmt.Printf("Loaded %s\n\n", *mapPath)
	fmt.Printf("Positions with metadata: %d\n", table.Len())
	fmt.Printf("  Main grid: %d\n", numbered)
	fmt.Printf("  Kickboard: %d\n", kicker)
	fmt.Printf("Horizontal angles recorded: %d\n", len(anglesH))
	fmt.Printf("Vertical angles recorded:   %d\n", len(anglesV))

	printStats("Horizontal", anglesH)
	printStats("Vertical", anglesV)
}

func printStats(name string, angles []float64) {
	if len(angles) == 0 {
		fmt.Printf("\n%s: no angles recorded\n", name)
		return
	}
	fmt.Printf("\n%s angle distribution (stored convention, degrees):\n", name)
	fmt.Printf("  mean %.1f  stddev %.1f  min %.0f  max %.0f\n",
		stat.Mean(angles, nil), stat.StdDev(angles, nil),
		floats.Min(angles), floats.Max(angles))
}
