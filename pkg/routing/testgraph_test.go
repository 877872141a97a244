package routing

import (
	"testing"
	"time"

	"github.com/paulmach/orb"

	"github.com/pbougue/navitia/pkg/georef"
)

// newLineGeoRef builds a three-vertex walking-only graph bent at c:
//
//	a(0,0) --- c(0.000898,0) --- d(0.000898,0.000898)
//	   ~100m east        ~100m north
//
// Each leg is one way with a straight two-point geometry, 72s in each
// direction (the spec's seed scenario #1 speed).
func newLineGeoRef(t *testing.T) (*georef.GeoRef, georef.VertexIdx, georef.VertexIdx, georef.VertexIdx) {
	t.Helper()
	b := georef.NewBuilder()
	a := b.AddVertex(orb.Point{0, 0})
	c := b.AddVertex(orb.Point{0.000898, 0})
	d := b.AddVertex(orb.Point{0.000898, 0.000898})

	ways := []georef.Way{
		{Name: "First Street", Geoms: []orb.LineString{{orb.Point{0, 0}, orb.Point{0.000898, 0}}}},
		{Name: "Second Street", Geoms: []orb.LineString{{orb.Point{0.000898, 0}, orb.Point{0.000898, 0.000898}}}},
	}

	b.AddEdge(a, c, georef.EdgeData{Duration: 72 * time.Second, WayIdx: 0, GeomIdx: 0, Caracteristic: georef.Walk})
	b.AddEdge(c, a, georef.EdgeData{Duration: 72 * time.Second, WayIdx: 0, GeomIdx: 0, Caracteristic: georef.Walk})
	b.AddEdge(c, d, georef.EdgeData{Duration: 72 * time.Second, WayIdx: 1, GeomIdx: 0, Caracteristic: georef.Walk})
	b.AddEdge(d, c, georef.EdgeData{Duration: 72 * time.Second, WayIdx: 1, GeomIdx: 0, Caracteristic: georef.Walk})

	g := b.Build()
	idx := georef.BuildEdgeIndex(g, 0, g.NumVertices, ways)

	gr := &georef.GeoRef{
		Graph:           g,
		Ways:            ways,
		NumBaseVertices: g.NumVertices,
		DefaultSpeed:    georef.NewDefaultSpeed(),
		Transitions:     georef.DefaultTransitionDurations(),
	}
	gr.EdgeIndexes[georef.Walking] = idx
	return gr, a, c, d
}

// newSingleEdgeGeoRef builds the spec's seed scenario #1/#2: two vertices
// 100m apart joined by a single walking edge (used for the same-edge
// shortcut tests, where both projections must land on one edge).
func newSingleEdgeGeoRef(t *testing.T) (*georef.GeoRef, georef.VertexIdx, georef.VertexIdx) {
	t.Helper()
	b := georef.NewBuilder()
	v0 := b.AddVertex(orb.Point{0, 0})
	v1 := b.AddVertex(orb.Point{0.000898, 0})

	ways := []georef.Way{
		{Name: "Only Street", Geoms: []orb.LineString{{orb.Point{0, 0}, orb.Point{0.000898, 0}}}},
	}
	b.AddEdge(v0, v1, georef.EdgeData{Duration: 72 * time.Second, WayIdx: 0, GeomIdx: 0, Caracteristic: georef.Walk})
	b.AddEdge(v1, v0, georef.EdgeData{Duration: 72 * time.Second, WayIdx: 0, GeomIdx: 0, Caracteristic: georef.Walk})

	g := b.Build()
	idx := georef.BuildEdgeIndex(g, 0, g.NumVertices, ways)

	gr := &georef.GeoRef{
		Graph:           g,
		Ways:            ways,
		NumBaseVertices: g.NumVertices,
		DefaultSpeed:    georef.NewDefaultSpeed(),
		Transitions:     georef.DefaultTransitionDurations(),
	}
	gr.EdgeIndexes[georef.Walking] = idx
	return gr, v0, v1
}
