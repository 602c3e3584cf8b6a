// Command specdump saves a built-in wall profile to a JSON file, or
// validates one loaded from a file. Useful for deriving a custom profile
// from a built-in one.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"wall-layout/internal/wall"
)

func main() {
	specName := flag.String("spec", "", "Built-in profile to dump")
	out := flag.String("out", "", "Output JSON path (with -spec)")
	in := flag.String("in", "", "JSON spec file to validate")
	flag.Parse()

	switch {
	case *in != "":
		spec, err := wall.LoadFromFile(*in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid spec: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s: ok (%d columns, %d rows, %d panels, split %s)\n",
			spec.Name(), spec.Columns, spec.Rows, len(spec.Panels), spec.Split)

	case *specName != "" && *out != "":
		spec := wall.GetSpec(*specName)
		if spec == nil {
			fmt.Fprintf(os.Stderr, "Unknown profile %q (known: %s)\n",
				*specName, strings.Join(wall.ListSpecs(), ", "))
			os.Exit(1)
		}
		if err := spec.SaveToFile(*out); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", *out, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s to %s\n", spec.Name(), *out)

	default:
		fmt.Println("Usage: specdump -spec <name> -out <file> | specdump -in <file>")
		os.Exit(1)
	}
}
