// Package ospar bundles the OSPAR COMP assessment areas: a fixed set of named
// marine regions in the North-East Atlantic used as predefined spatial
// filters for PLET harvests.
//
// The boundaries are a built-in, read-only table loaded once per process; no
// network access is required. Detailed COMP geometries make harvest query
// URLs too long for the portal, so WKT export supports simplification:
//
//	regions := ospar.NewCatalog()
//	wkt, err := regions.WKT("SNS", true) // simplified Southern North Sea
//
// The resulting string is passed as the spatial filter of a pkg/plet harvest.
package ospar

import (
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// Region is one COMP assessment area: a short unique id, a display name and
// a boundary geometry. Regions are reference data and never mutated.
type Region struct {
	ID       string
	Name     string
	Boundary orb.MultiPolygon
}

// Bound returns the geographic bounding box of the region.
func (r *Region) Bound() orb.Bound {
	return r.Boundary.Bound()
}

// VertexCount returns the total number of boundary vertices.
func (r *Region) VertexCount() int {
	return vertexCount(r.Boundary)
}

// WKT returns the boundary as well-known text. A single-polygon boundary is
// serialized as POLYGON, otherwise MULTIPOLYGON.
func (r *Region) WKT() string {
	return marshalBoundary(r.Boundary)
}

// Catalog is the immutable set of COMP areas.
type Catalog struct {
	regions []*Region
	byID    map[string]*Region
}

// NewCatalog returns a catalog backed by the built-in area table.
func NewCatalog() *Catalog {
	c := &Catalog{byID: make(map[string]*Region, len(compAreas))}
	for i := range compAreas {
		r := &compAreas[i]
		c.regions = append(c.regions, r)
		c.byID[r.ID] = r
	}
	return c
}

// AllIDs returns every region id in table order. The ids are unique.
func (c *Catalog) AllIDs() []string {
	ids := make([]string, len(c.regions))
	for i, r := range c.regions {
		ids[i] = r.ID
	}
	return ids
}

// All returns every region in table order.
func (c *Catalog) All() []*Region {
	return c.regions
}

// Get returns the region with the given id, or an *UnknownRegionError.
// Lookup is case-insensitive on the id.
func (c *Catalog) Get(id string) (*Region, error) {
	if r, ok := c.byID[strings.ToUpper(id)]; ok {
		return r, nil
	}
	return nil, &UnknownRegionError{ID: id}
}

// WKT returns the boundary of a region as well-known text.
//
// With simplify set, the boundary is reduced with Douglas-Peucker until the
// WKT fits in a harvest query URL (see simplifyToLimit); the simplified
// boundary never has more vertices than the original.
func (c *Catalog) WKT(id string, simplify bool) (string, error) {
	r, err := c.Get(id)
	if err != nil {
		return "", err
	}
	if !simplify {
		return marshalBoundary(r.Boundary), nil
	}
	return marshalBoundary(simplifyToLimit(r.Boundary)), nil
}

// marshalBoundary serializes a boundary, unwrapping single-polygon
// multipolygons to plain POLYGON text.
func marshalBoundary(mp orb.MultiPolygon) string {
	if len(mp) == 1 {
		return wkt.MarshalString(mp[0])
	}
	return wkt.MarshalString(mp)
}

// vertexCount counts the vertices of every ring of every polygon.
func vertexCount(mp orb.MultiPolygon) int {
	n := 0
	for _, poly := range mp {
		for _, ring := range poly {
			n += len(ring)
		}
	}
	return n
}
