package ospar

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Index provides fast spatial queries over the COMP areas.
//
// The index stores each region's bounding box in an R-tree; candidate hits
// from the tree are confirmed against the actual boundary polygon. Useful for
// picking the region covering a sampling station, or the regions visible in
// a map viewport.
//
// Example:
//
//	idx := ospar.NewIndex(ospar.NewCatalog())
//	for _, r := range idx.Covering(3.0, 54.0) {
//	    fmt.Println(r.ID, r.Name)
//	}
type Index struct {
	tree *rtreego.Rtree
}

// indexEntry adapts a region to the rtreego.Spatial interface.
type indexEntry struct {
	region *Region
}

// Bounds converts the region's geographic bounds to an R-tree rectangle.
func (e indexEntry) Bounds() rtreego.Rect {
	b := e.region.Bound()
	point := rtreego.Point{b.Min[0], b.Min[1]}
	lengths := []float64{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1]}

	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// NewIndex builds a spatial index over every region in the catalog.
func NewIndex(c *Catalog) *Index {
	tree := rtreego.NewTree(2, 2, 8)
	for _, r := range c.All() {
		tree.Insert(indexEntry{region: r})
	}
	return &Index{tree: tree}
}

// Covering returns the regions whose boundary contains the given lon/lat
// point, in table order within the candidate set.
func (idx *Index) Covering(lon, lat float64) []*Region {
	point := rtreego.Point{lon, lat}
	rect, _ := rtreego.NewRect(point, []float64{1e-9, 1e-9})

	var result []*Region
	for _, spatial := range idx.tree.SearchIntersect(rect) {
		r := spatial.(indexEntry).region
		if planar.MultiPolygonContains(r.Boundary, orb.Point{lon, lat}) {
			result = append(result, r)
		}
	}
	return result
}

// Intersecting returns the regions whose bounding box intersects b.
// Boundary-level intersection is not checked; callers needing exact results
// should test the returned candidates themselves.
func (idx *Index) Intersecting(b orb.Bound) []*Region {
	point := rtreego.Point{b.Min[0], b.Min[1]}
	lengths := []float64{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1]}
	rect, _ := rtreego.NewRect(point, lengths)

	var result []*Region
	for _, spatial := range idx.tree.SearchIntersect(rect) {
		result = append(result, spatial.(indexEntry).region)
	}
	return result
}
