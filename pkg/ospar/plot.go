package ospar

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// plotWidth is the pixel width of generated maps; height follows the aspect
// ratio of the plotted area.
const plotWidth = 800.0

// PlotSVG renders region boundaries as an SVG map in Web Mercator.
//
// With a region id, only that region is drawn; with id == "" every COMP area
// is overlaid. Returns an *UnknownRegionError for an id not in the table.
//
// Example:
//
//	f, _ := os.Create("sns.svg")
//	defer f.Close()
//	if err := catalog.PlotSVG(f, "SNS"); err != nil {
//	    log.Fatal(err)
//	}
func (c *Catalog) PlotSVG(w io.Writer, id string) error {
	var regions []*Region
	title := "OSPAR COMP areas"

	if id == "" {
		regions = c.All()
	} else {
		r, err := c.Get(id)
		if err != nil {
			return err
		}
		regions = []*Region{r}
		title = fmt.Sprintf("%s (%s)", r.Name, r.ID)
	}

	// Project everything up front so the viewport fits the projected shapes.
	projected := make([]orb.MultiPolygon, len(regions))
	var bound orb.Bound
	for i, r := range regions {
		merc := project.Geometry(orb.Geometry(r.Boundary.Clone()), project.WGS84.ToMercator).(orb.MultiPolygon)
		projected[i] = merc
		if i == 0 {
			bound = merc.Bound()
		} else {
			bound = bound.Union(merc.Bound())
		}
	}

	// 5% padding keeps strokes away from the viewport edge.
	padX := (bound.Max[0] - bound.Min[0]) * 0.05
	padY := (bound.Max[1] - bound.Min[1]) * 0.05
	bound.Min[0] -= padX
	bound.Max[0] += padX
	bound.Min[1] -= padY
	bound.Max[1] += padY

	dx := bound.Max[0] - bound.Min[0]
	dy := bound.Max[1] - bound.Min[1]
	if dx <= 0 || dy <= 0 {
		return fmt.Errorf("degenerate plot bounds for %q", title)
	}
	scale := plotWidth / dx
	height := dy * scale

	toPixel := func(p orb.Point) (float64, float64) {
		return (p[0] - bound.Min[0]) * scale, (bound.Max[1] - p[1]) * scale
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		plotWidth, height, plotWidth, height)
	fmt.Fprintf(bw, "<title>%s</title>\n", title)
	fmt.Fprintf(bw, `<rect width="100%%" height="100%%" fill="white"/>`+"\n")

	for i, mp := range projected {
		var path strings.Builder
		for _, poly := range mp {
			for _, ring := range poly {
				for j, p := range ring {
					x, y := toPixel(p)
					if j == 0 {
						fmt.Fprintf(&path, "M%.1f %.1f", x, y)
					} else {
						fmt.Fprintf(&path, " L%.1f %.1f", x, y)
					}
				}
				path.WriteString(" Z ")
			}
		}
		fmt.Fprintf(bw, `<path d="%s" fill="lightblue" fill-opacity="0.6" fill-rule="evenodd" stroke="black" stroke-width="1">`,
			strings.TrimSpace(path.String()))
		fmt.Fprintf(bw, "<title>%s</title></path>\n", regions[i].ID)
	}

	fmt.Fprintf(bw, `<text x="10" y="20" font-family="sans-serif" font-size="16">%s</text>`+"\n", title)
	fmt.Fprintln(bw, "</svg>")

	return bw.Flush()
}
