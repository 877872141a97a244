// Package proximity implements ProximityList, the stop-point spatial index
// consumed (per spec §6) as an external collaborator by the nearest-stop-
// points query. This package provides a concrete, rtree-backed reference
// implementation so the core is exercisable end to end; a production
// deployment may swap in a different ProximityList as long as it satisfies
// the interface.
package proximity

import (
	"github.com/paulmach/orb"
	"github.com/tidwall/rtree"

	"github.com/pbougue/navitia/pkg/geo"
)

// Candidate is one stop point returned by a proximity query.
type Candidate struct {
	Idx   int
	Coord orb.Point
}

// ProximityList answers "which stop points lie within r meters of coord".
type ProximityList interface {
	FindWithin(coord orb.Point, meters float64) []Candidate
}

// RTreeProximityList is a ProximityList backed by github.com/tidwall/rtree.
// Immutable once built; safe for concurrent reads.
type RTreeProximityList struct {
	tree rtree.RTreeG[int]
	pts  []orb.Point
}

// NewRTreeProximityList indexes the given stop-point coordinates. The
// slice index doubles as the StopPointIdx.
func NewRTreeProximityList(points []orb.Point) *RTreeProximityList {
	pl := &RTreeProximityList{pts: append([]orb.Point(nil), points...)}
	for i, p := range points {
		pl.tree.Insert([2]float64{p.Lon(), p.Lat()}, [2]float64{p.Lon(), p.Lat()}, i)
	}
	return pl
}

// FindWithin returns every indexed stop point within meters of coord.
func (pl *RTreeProximityList) FindWithin(coord orb.Point, meters float64) []Candidate {
	min, max := geo.BoundingBox(coord, coord, meters)

	var out []Candidate
	pl.tree.Search(min, max, func(_, _ [2]float64, idx int) bool {
		p := pl.pts[idx]
		if geo.Haversine(coord, p) <= meters {
			out = append(out, Candidate{Idx: idx, Coord: p})
		}
		return true
	})
	return out
}
