package ospar

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

const (
	// maxWKTLen keeps simplified boundaries short enough that the harvest
	// query URL stays clear of the portal's HTTP 414 limit.
	maxWKTLen = 5000

	// initialTolerance is deliberately tiny; most areas only need collinear
	// points removed.
	initialTolerance = 0.001

	// maxTolerance stops the loop before a boundary degenerates entirely.
	maxTolerance = 1.0
)

// simplifyToLimit reduces a boundary with Douglas-Peucker, doubling the
// tolerance until the serialized WKT fits in maxWKTLen or the tolerance
// reaches maxTolerance. The input is never mutated.
func simplifyToLimit(mp orb.MultiPolygon) orb.MultiPolygon {
	tolerance := initialTolerance
	reduced := simplifyAt(mp, tolerance)
	for len(marshalBoundary(reduced)) > maxWKTLen && tolerance < maxTolerance {
		tolerance *= 2
		reduced = simplifyAt(mp, tolerance)
	}
	return reduced
}

// simplifyAt runs one Douglas-Peucker pass on a copy of the boundary.
// The simplifier mutates in place, hence the clone.
func simplifyAt(mp orb.MultiPolygon, tolerance float64) orb.MultiPolygon {
	clone := mp.Clone()
	return simplify.DouglasPeucker(tolerance).Simplify(clone).(orb.MultiPolygon)
}
