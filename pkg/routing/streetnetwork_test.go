package routing

import (
	"testing"
	"time"

	"github.com/paulmach/orb"

	"github.com/pbougue/navitia/pkg/georef"
	"github.com/pbougue/navitia/pkg/proximity"
)

// withStopPoints attaches a projection cache for the given stop coordinates
// to gr (walking mode only, matching newLineGeoRef's single-mode graph).
func withStopPoints(gr *georef.GeoRef, stops []orb.Point) []orb.Point {
	gr.ProjectedStopPoints = make([][georef.ModeCount]georef.ProjectionData, len(stops))
	for i, s := range stops {
		gr.ProjectedStopPoints[i][georef.Walking] = gr.Project(s, georef.Walking)
	}
	return stops
}

func TestFindNearestStopPointsWithinRadius(t *testing.T) {
	gr, a, c, d := newLineGeoRef(t)
	stops := withStopPoints(gr, []orb.Point{gr.Graph.Coord[c], gr.Graph.Coord[d]})
	pl := proximity.NewRTreeProximityList(stops)

	sn := NewStreetNetwork(gr)
	sn.Init(EntryPoint{Coord: gr.Graph.Coord[a], Mode: georef.Walking, SpeedFactor: 1.0}, nil)

	got, err := sn.FindNearestStopPoints(100*time.Second, pl, false)
	if err != nil {
		t.Fatalf("FindNearestStopPoints: %v", err)
	}
	if _, ok := got[0]; !ok {
		t.Errorf("expected stop 0 (at c, ~72s away) within 100s radius, got %v", got)
	}
	if _, ok := got[1]; ok {
		t.Errorf("expected stop 1 (at d, ~144s away) to be excluded from a 100s radius, got %v", got)
	}
}

func TestGetDistanceAndGetPath(t *testing.T) {
	gr, a, c, d := newLineGeoRef(t)
	withStopPoints(gr, []orb.Point{gr.Graph.Coord[d]})

	sn := NewStreetNetwork(gr)
	sn.Init(EntryPoint{Coord: gr.Graph.Coord[a], Mode: georef.Walking, SpeedFactor: 1.0}, nil)

	dist, err := sn.GetDistance(0, false)
	if err != nil {
		t.Fatalf("GetDistance: %v", err)
	}
	if dist < 140*time.Second || dist > 148*time.Second {
		t.Errorf("distance a->d = %v, want ~144s", dist)
	}

	path, err := sn.GetPath(0, false)
	if err != nil {
		t.Fatalf("GetPath: %v", err)
	}
	if len(path.Items) != 2 {
		t.Fatalf("expected 2 items, got %d: %+v", len(path.Items), path.Items)
	}

	_ = c
}

func TestGetPathArrivalInvertsResult(t *testing.T) {
	gr, a, _, d := newLineGeoRef(t)
	withStopPoints(gr, []orb.Point{gr.Graph.Coord[a]})

	sn := NewStreetNetwork(gr)
	end := EntryPoint{Coord: gr.Graph.Coord[d], Mode: georef.Walking, SpeedFactor: 1.0}
	sn.Init(EntryPoint{Coord: gr.Graph.Coord[a], Mode: georef.Walking, SpeedFactor: 1.0}, &end)

	path, err := sn.GetPath(0, true)
	if err != nil {
		t.Fatalf("GetPath(useArrival=true): %v", err)
	}
	if len(path.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(path.Items))
	}
	// Arrival search runs forward from d (the destination) to a (stop 0);
	// inversion should leave the path running from a to d.
	first := path.Items[0].Coordinates[0]
	if first != gr.Graph.Coord[a] {
		t.Errorf("expected the inverted path to start at a, got %v", first)
	}
}

func TestGetDirectPathRespectsMaxDuration(t *testing.T) {
	gr, a, _, d := newLineGeoRef(t)

	sn := NewStreetNetwork(gr)
	origin := EntryPoint{Coord: gr.Graph.Coord[a], Mode: georef.Walking, SpeedFactor: 1.0, MaxDuration: 60 * time.Second}
	dest := EntryPoint{Coord: gr.Graph.Coord[d], Mode: georef.Walking, SpeedFactor: 1.0, MaxDuration: 60 * time.Second}

	_, err := sn.GetDirectPath(origin, dest)
	if err != ErrUnreachable {
		t.Errorf("expected ErrUnreachable when the path (~144s) exceeds the 120s budget, got %v", err)
	}

	origin.MaxDuration = 200 * time.Second
	dest.MaxDuration = 200 * time.Second
	path, err := sn.GetDirectPath(origin, dest)
	if err != nil {
		t.Fatalf("GetDirectPath: %v", err)
	}
	if len(path.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(path.Items))
	}
}
