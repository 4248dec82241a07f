package main

import (
	"fmt"
	"log"
	"os"

	"github.com/beetlebugorg/plet/pkg/ospar"
)

func main() {
	catalog := ospar.NewCatalog()

	// List the COMP assessment areas
	for _, r := range catalog.All() {
		fmt.Printf("%-5s %-25s %d vertices\n", r.ID, r.Name, r.VertexCount())
	}

	// Simplified WKT fits in a harvest query URL
	wkt, err := catalog.WKT("SNS", true)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nSNS filter (%d chars):\n%s\n", len(wkt), wkt)

	// Which region covers a sampling station?
	idx := ospar.NewIndex(catalog)
	for _, r := range idx.Covering(3.0, 54.0) {
		fmt.Printf("\nStation 3.0E 54.0N lies in: %s (%s)\n", r.Name, r.ID)
	}

	// Render an overview map
	f, err := os.Create("comp-areas.svg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := catalog.PlotSVG(f, ""); err != nil {
		log.Fatal(err)
	}
	fmt.Println("\nWrote: comp-areas.svg")
}
