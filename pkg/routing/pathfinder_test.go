package routing

import (
	"testing"
	"time"

	"github.com/pbougue/navitia/pkg/georef"
)

func TestDijkstraReachesDirectNeighbor(t *testing.T) {
	gr, a, c, _ := newLineGeoRef(t)

	pf := NewPathFinder(gr)
	pf.Init(gr.Graph.Coord[a], georef.Walking, 1.0)
	pf.Dijkstra(DistanceVisitor{Radius: time.Hour})

	d, ok := pf.Dist(c)
	if !ok {
		t.Fatal("expected vertex c to be reached")
	}
	if d < 71*time.Second || d > 73*time.Second {
		t.Errorf("dist(a,c) = %v, want ~72s", d)
	}
}

func TestDijkstraDistanceVisitorStopsAtRadius(t *testing.T) {
	gr, a, _, d := newLineGeoRef(t)

	pf := NewPathFinder(gr)
	pf.Init(gr.Graph.Coord[a], georef.Walking, 1.0)
	pf.Dijkstra(DistanceVisitor{Radius: 80 * time.Second})

	if _, ok := pf.Dist(d); ok {
		t.Error("expected the far vertex to be unreached within an 80s radius")
	}
}

func TestDijkstraSpeedFactorScalesDuration(t *testing.T) {
	gr, a, c, _ := newLineGeoRef(t)

	pf := NewPathFinder(gr)
	pf.Init(gr.Graph.Coord[a], georef.Walking, 2.0)
	pf.Dijkstra(DistanceVisitor{Radius: time.Hour})

	d, ok := pf.Dist(c)
	if !ok {
		t.Fatal("expected vertex c to be reached")
	}
	if d < 35*time.Second || d > 37*time.Second {
		t.Errorf("dist(a,c) at speed_factor=2 = %v, want ~36s", d)
	}
}

func TestDijkstraOnNodeSeedingSkipsUnreachableEndpoint(t *testing.T) {
	gr, a, _, _ := newLineGeoRef(t)

	pf := NewPathFinder(gr)
	pf.Init(gr.Graph.Coord[a], georef.Walking, 1.0)
	if !pf.StartingEdge.IsOnNode(georef.Source) {
		t.Fatal("expected the query coordinate to project exactly onto vertex a")
	}
	pf.Dijkstra(DistanceVisitor{Radius: time.Hour})

	if pf.Pred(a) != a {
		t.Errorf("expected a to be its own predecessor (the seeded vertex), got %d", pf.Pred(a))
	}
}
