package routing

import (
	"testing"
	"time"

	"github.com/paulmach/orb"

	"github.com/pbougue/navitia/pkg/georef"
)

func TestInvertReversesOrderAndCoordinates(t *testing.T) {
	transitions := georef.DefaultTransitionDurations()
	path := Path{Items: []PathItem{
		{WayIdx: 0, Duration: 10 * time.Second, Coordinates: orb.LineString{{0, 0}, {1, 0}}, Angle: 0, Transportation: georef.Walk},
		{WayIdx: 1, Duration: 20 * time.Second, Coordinates: orb.LineString{{1, 0}, {1, 1}}, Angle: 45, Transportation: georef.Walk},
		{WayIdx: 2, Duration: 30 * time.Second, Coordinates: orb.LineString{{1, 1}, {2, 1}}, Angle: -30, Transportation: georef.Walk},
	}}
	path.recomputeDuration()

	inv := Invert(path, transitions, 1.0)

	if len(inv.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(inv.Items))
	}
	if inv.Items[0].WayIdx != 2 || inv.Items[1].WayIdx != 1 || inv.Items[2].WayIdx != 0 {
		t.Errorf("expected way order [2,1,0], got [%d,%d,%d]", inv.Items[0].WayIdx, inv.Items[1].WayIdx, inv.Items[2].WayIdx)
	}
	if inv.Items[0].Coordinates[0] != (orb.Point{2, 1}) {
		t.Errorf("expected the inverted path to start at {2,1}, got %v", inv.Items[0].Coordinates[0])
	}
	if inv.Items[0].Angle != 0 {
		t.Errorf("expected the first inverted item's angle to be 0, got %f", inv.Items[0].Angle)
	}
	if inv.Items[1].Angle != 30 {
		t.Errorf("expected the second inverted item's angle to be the negated third original angle (-(-30)=30), got %f", inv.Items[1].Angle)
	}
	if inv.Items[2].Angle != -45 {
		t.Errorf("expected the third inverted item's angle to be the negated second original angle (-45), got %f", inv.Items[2].Angle)
	}
	if inv.Duration != path.Duration {
		t.Errorf("inversion should preserve total duration for non-transition items, got %v want %v", inv.Duration, path.Duration)
	}
}

func TestInvertSwapsBssTransitionsAndDuration(t *testing.T) {
	transitions := georef.DefaultTransitionDurations()
	path := Path{Items: []PathItem{
		{WayIdx: georef.InvalidIdx, Duration: 999 * time.Second, Transportation: georef.BssTake},
	}}
	path.recomputeDuration()

	inv := Invert(path, transitions, 1.0)
	if inv.Items[0].Transportation != georef.BssPutBack {
		t.Errorf("expected BssTake to invert to BssPutBack, got %v", inv.Items[0].Transportation)
	}
	if inv.Items[0].Duration != transitions.BssPutback {
		t.Errorf("expected the inverted transition to use the putback duration %v, got %v", transitions.BssPutback, inv.Items[0].Duration)
	}
}
