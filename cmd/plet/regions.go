package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/beetlebugorg/plet/pkg/ospar"
)

func cmdRegions(args []string) error {
	fs := flag.NewFlagSet("regions", flag.ExitOnError)
	fs.Parse(args)

	catalog := ospar.NewCatalog()
	for _, r := range catalog.All() {
		fmt.Printf("%s\t%s\t(%d vertices)\n", r.ID, r.Name, r.VertexCount())
	}
	return nil
}

func cmdWKT(args []string) error {
	fs := flag.NewFlagSet("wkt", flag.ExitOnError)
	region := fs.String("region", "", "COMP area id (required)")
	simplify := fs.Bool("simplify", false, "simplify the boundary for use in query URLs")
	fs.Parse(args)

	if *region == "" {
		return fmt.Errorf("-region is required")
	}

	text, err := ospar.NewCatalog().WKT(*region, *simplify)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

func cmdPlot(args []string) error {
	fs := flag.NewFlagSet("plot", flag.ExitOnError)
	region := fs.String("region", "", "COMP area id (all areas when omitted)")
	out := fs.String("o", "", "output SVG file (required)")
	fs.Parse(args)

	if *out == "" {
		return fmt.Errorf("-o is required")
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := ospar.NewCatalog().PlotSVG(f, *region); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
