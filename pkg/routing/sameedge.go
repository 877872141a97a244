package routing

import (
	"time"

	"github.com/paulmach/orb"

	"github.com/pbougue/navitia/pkg/geo"
	"github.com/pbougue/navitia/pkg/georef"
)

// isSameEdge reports whether origin and destination project onto the same
// undirected edge, compared by way_idx, duration and endpoint pair in
// either orientation (spec §4.4). Deliberately does NOT compare geom_idx —
// see isReversedForSameEdge, which does; this asymmetry mirrors the
// original implementation and is called out in DESIGN.md as a preserved
// inconsistency rather than a bug to fix.
func isSameEdge(p1, p2 georef.ProjectionData) bool {
	sameEndpoints := (p1.Vertex[georef.Source] == p2.Vertex[georef.Source] && p1.Vertex[georef.Target] == p2.Vertex[georef.Target]) ||
		(p1.Vertex[georef.Source] == p2.Vertex[georef.Target] && p1.Vertex[georef.Target] == p2.Vertex[georef.Source])
	return sameEndpoints && p1.Edge.Duration == p2.Edge.Duration && p1.Edge.WayIdx == p2.Edge.WayIdx
}

// isReversedForSameEdge reports whether p2 runs against p1's own source->
// target orientation. This only picks which of p2's two stored distances
// mirrors p1's "distance to target" (see sameEdgeOtherDirection); it does
// NOT by itself decide blade order or whether the clipped result must be
// reversed — that is sameEdgeReverse's job.
func isReversedForSameEdge(p1, p2 georef.ProjectionData) bool {
	return p1.Vertex[georef.Source] != p2.Vertex[georef.Source] ||
		(p1.Vertex[georef.Source] == p1.Vertex[georef.Target] && p1.Edge.GeomIdx != p2.Edge.GeomIdx)
}

// sameEdgeOtherDirection returns which of p2's two stored distances
// mirrors p1's own distance-to-target, following p1's source->target
// orientation (the original's edge_dest_reversed).
func sameEdgeOtherDirection(p1, p2 georef.ProjectionData) georef.Direction {
	if isReversedForSameEdge(p1, p2) {
		return georef.Source
	}
	return georef.Target
}

// sameEdgeReverse reports whether p1 lies farther along the shared edge's
// source->target direction than p2 does — i.e. the along-edge path runs
// from p2 to p1, not p1 to p2 — and so the clipped polyline's blade order
// and final orientation must be reversed (original: `reverse`, distinct
// from and computed after `edge_dest_reversed`/isReversedForSameEdge).
func sameEdgeReverse(p1, p2 georef.ProjectionData) bool {
	other := sameEdgeOtherDirection(p1, p2)
	return p1.Distances[georef.Target] < p2.Distances[other]
}

// pathDurationOnSameEdge computes the duration of covering the shared edge
// directly between two projections that satisfy isSameEdge, rather than
// routing through Dijkstra (spec §4.4). The three legs' distances are
// summed in meters before a single crow-fly conversion at pf.Mode's own
// speed, matching the original implementation's PathFinder::crow_fly_duration
// call over the combined distance rather than three independently-rounded
// durations.
func pathDurationOnSameEdge(pf *PathFinder, p1, p2 georef.ProjectionData) time.Duration {
	other := sameEdgeOtherDirection(p1, p2)
	meters := geo.Haversine(p1.RealCoord, p1.Projected) +
		absFloat(p1.Distances[georef.Target]-p2.Distances[other]) +
		geo.Haversine(p2.Projected, p2.RealCoord)
	return pf.gr.DefaultSpeed.ModeCrowFlyDuration(meters, pf.Mode, pf.SpeedFactor)
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// pathCoordinatesOnSameEdge clips the shared edge's polyline between the
// two projected points (spec §4.4, §4.6). Falls back to the two projected
// points directly when the edge carries no geometry. Blade order and the
// final reversal are driven by the magnitude-based sameEdgeReverse, not by
// the topological isReversedForSameEdge — the two are computed separately
// and can disagree whenever p1 lies farther toward the edge's target than
// p2 does on an edge that isReversedForSameEdge reports as not reversed.
func pathCoordinatesOnSameEdge(p1, p2 georef.ProjectionData, ways []georef.Way) orb.LineString {
	reverse := sameEdgeReverse(p1, p2)
	startBlade, endBlade := p1.Projected, p2.Projected
	if reverse {
		startBlade, endBlade = p2.Projected, p1.Projected
	}

	var result orb.LineString
	if p1.Edge.GeomIdx != georef.InvalidIdx && p1.Edge.WayIdx != georef.InvalidIdx {
		line := ways[p1.Edge.WayIdx].Geoms[p1.Edge.GeomIdx]
		result = splitLineAtPoint(line, startBlade, true)
		result = splitLineAtPoint(result, endBlade, false)
	}
	if len(result) == 0 {
		result = orb.LineString{p1.Projected, p2.Projected}
		return result
	}
	if reverse {
		result = reverseLineString(result)
	}
	return result
}

// SameEdgeShortcut holds the outcome of checking whether a direct
// along-edge path beats the Dijkstra result (spec §4.4).
type SameEdgeShortcut struct {
	Applies     bool
	Duration    time.Duration
	Coordinates orb.LineString
}

// TryShortcut evaluates the same-edge shortcut for an origin/destination
// projection pair given the Dijkstra duration actually found (or a false ok
// if Dijkstra considers the destination unreachable). It applies when
// origin and destination share an edge and the along-edge duration is no
// worse than Dijkstra's — or whenever Dijkstra's own duration is zero,
// since a zero-length Dijkstra path cannot represent genuine movement along
// the edge (spec §4.4).
func TryShortcut(pf *PathFinder, origin, dest georef.ProjectionData, dijkstraDuration time.Duration, dijkstraOK bool, ways []georef.Way) SameEdgeShortcut {
	if !origin.Found || !dest.Found || !isSameEdge(origin, dest) {
		return SameEdgeShortcut{}
	}

	along := pathDurationOnSameEdge(pf, origin, dest)
	if dijkstraOK && dijkstraDuration > 0 && along > dijkstraDuration {
		return SameEdgeShortcut{}
	}

	return SameEdgeShortcut{
		Applies:     true,
		Duration:    along,
		Coordinates: pathCoordinatesOnSameEdge(origin, dest, ways),
	}
}
