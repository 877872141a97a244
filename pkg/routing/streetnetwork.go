// Package routing implements the street-network path-finding core: a
// Dijkstra search with pluggable early-termination visitors, target
// resolution, the same-edge shortcut, path reconstruction with stub
// splicing, and the reverse/arrival adapter, all bound together by
// StreetNetwork — the facade a journey planner calls into.
package routing

import (
	"math"
	"time"

	"github.com/paulmach/orb"

	"github.com/pbougue/navitia/pkg/geo"
	"github.com/pbougue/navitia/pkg/georef"
	"github.com/pbougue/navitia/pkg/proximity"
)

// StopPointIdx indexes a stop point in the proximity list / projection
// cache.
type StopPointIdx = int

// EntryPoint is one side of a query: a real-world coordinate, the mode
// the traveler uses there, the query's speed factor, and the maximum
// duration budget allotted to that side.
type EntryPoint struct {
	Coord       orb.Point
	Mode        georef.Mode
	SpeedFactor float64
	MaxDuration time.Duration
}

// StreetNetwork binds three independent PathFinders — departure, arrival,
// and direct — mirroring the original implementation's StreetNetwork::init,
// which keeps per-direction search state separate so a single query can
// answer both departure- and arrival-direction questions without
// re-projecting (spec §6).
type StreetNetwork struct {
	gr *georef.GeoRef

	departure *PathFinder
	arrival   *PathFinder
	direct    *PathFinder

	start EntryPoint
	end   *EntryPoint
}

// NewStreetNetwork binds a StreetNetwork to a shared, read-only GeoRef.
func NewStreetNetwork(gr *georef.GeoRef) *StreetNetwork {
	return &StreetNetwork{
		gr:        gr,
		departure: NewPathFinder(gr),
		arrival:   NewPathFinder(gr),
		direct:    NewPathFinder(gr),
	}
}

// Init projects start (and end, if given) onto their respective
// sub-graphs, readying the departure and arrival PathFinders for queries.
func (sn *StreetNetwork) Init(start EntryPoint, end *EntryPoint) {
	sn.start = start
	sn.end = end
	sn.departure.Init(start.Coord, start.Mode, start.SpeedFactor)
	if end != nil {
		sn.arrival.Init(end.Coord, end.Mode, end.SpeedFactor)
	}
}

func (sn *StreetNetwork) pathFinderAndEntry(useArrival bool) (*PathFinder, EntryPoint) {
	if useArrival && sn.end != nil {
		return sn.arrival, *sn.end
	}
	return sn.departure, sn.start
}

const sameEdgeSafetyFactor = math.Sqrt2

// FindNearestStopPoints returns every stop point in pl reachable from the
// query's origin (or destination, if useArrival) within radius (spec
// §4.8).
func (sn *StreetNetwork) FindNearestStopPoints(radius time.Duration, pl proximity.ProximityList, useArrival bool) (map[StopPointIdx]time.Duration, error) {
	if radius == 0 {
		return map[StopPointIdx]time.Duration{}, nil
	}

	pf, ep := sn.pathFinderAndEntry(useArrival)
	r := radius.Seconds() * ep.SpeedFactor * sn.gr.DefaultSpeed[ep.Mode]
	candidates := pl.FindWithin(ep.Coord, r)

	result := make(map[StopPointIdx]time.Duration, len(candidates))

	if !pf.StartingEdge.Found {
		if ep.Coord == (orb.Point{0, 0}) {
			return result, nil
		}
		for _, c := range candidates {
			meters := geo.Haversine(ep.Coord, c.Coord)
			dur := sn.gr.DefaultSpeed.ModeCrowFlyDuration(meters, ep.Mode, ep.SpeedFactor)
			if time.Duration(float64(dur)*sameEdgeSafetyFactor) < radius {
				result[c.Idx] = dur
			}
		}
		return result, nil
	}

	pf.Dijkstra(DistanceVisitor{Radius: radius})

	for _, c := range candidates {
		proj := sn.gr.ProjectionFor(c.Idx, ep.Mode)
		if !proj.Found {
			continue
		}
		duration, ok := sn.resolve(pf, proj)
		if !ok {
			continue
		}
		if duration <= radius {
			result[c.Idx] = duration
		}
	}
	return result, nil
}

// FindNearestDestinations is the free-form-coordinate counterpart of
// FindNearestStopPoints: destinations are projected on the fly rather than
// looked up in a precomputed cache, on the walking sub-graph when the
// entry's mode is Car (a car-direct path always ends on foot — spec §4.8).
func (sn *StreetNetwork) FindNearestDestinations(radius time.Duration, destinations []orb.Point, useArrival bool) (map[int]time.Duration, error) {
	if radius == 0 {
		return map[int]time.Duration{}, nil
	}
	pf, ep := sn.pathFinderAndEntry(useArrival)
	projMode := ep.Mode
	if projMode == georef.Car {
		projMode = georef.Walking
	}

	result := make(map[int]time.Duration, len(destinations))
	if !pf.StartingEdge.Found {
		if ep.Coord == (orb.Point{0, 0}) {
			return result, nil
		}
		for i, d := range destinations {
			meters := geo.Haversine(ep.Coord, d)
			dur := sn.gr.DefaultSpeed.ModeCrowFlyDuration(meters, ep.Mode, ep.SpeedFactor)
			if time.Duration(float64(dur)*sameEdgeSafetyFactor) < radius {
				result[i] = dur
			}
		}
		return result, nil
	}

	pf.Dijkstra(DistanceVisitor{Radius: radius})
	for i, d := range destinations {
		proj := sn.gr.Project(d, projMode)
		if !proj.Found {
			continue
		}
		duration, ok := sn.resolve(pf, proj)
		if !ok {
			continue
		}
		if duration <= radius {
			result[i] = duration
		}
	}
	return result, nil
}

// resolve applies the same-edge shortcut where it fires, else target
// resolution, against an already-finished search (used by both
// FindNearestStopPoints/Destinations and GetDistance).
func (sn *StreetNetwork) resolve(pf *PathFinder, dest georef.ProjectionData) (time.Duration, bool) {
	tr := ResolveTarget(pf, dest)
	sc := TryShortcut(pf, pf.StartingEdge, dest, tr.Duration, tr.Reached, sn.gr.Ways)
	if sc.Applies {
		return sc.Duration, true
	}
	return tr.Duration, tr.Reached
}

// GetDistance returns the duration from the query's origin (or
// destination, if useArrival) to stop point sp.
func (sn *StreetNetwork) GetDistance(sp StopPointIdx, useArrival bool) (time.Duration, error) {
	pf, ep := sn.pathFinderAndEntry(useArrival)
	proj := sn.gr.ProjectionFor(sp, ep.Mode)
	if !proj.Found {
		return 0, ErrNotProjected
	}
	pf.Dijkstra(NewTargetAllVisitor(map[georef.VertexIdx]struct{}{
		proj.Vertex[georef.Source]: {},
		proj.Vertex[georef.Target]: {},
	}))
	d, ok := sn.resolve(pf, proj)
	if !ok {
		return 0, ErrUnreachable
	}
	return d, nil
}

// GetPath returns the full Path from the query's origin (or destination,
// if useArrival) to stop point sp, applying the §4.7 reverse adapter when
// useArrival is set.
func (sn *StreetNetwork) GetPath(sp StopPointIdx, useArrival bool) (Path, error) {
	pf, ep := sn.pathFinderAndEntry(useArrival)
	proj := sn.gr.ProjectionFor(sp, ep.Mode)
	if !proj.Found {
		return Path{}, ErrNotProjected
	}
	pf.Dijkstra(NewTargetAllVisitor(map[georef.VertexIdx]struct{}{
		proj.Vertex[georef.Source]: {},
		proj.Vertex[georef.Target]: {},
	}))

	path, err := sn.buildPath(pf, proj)
	if err != nil {
		return Path{}, err
	}
	if useArrival {
		path = Invert(path, sn.gr.Transitions, ep.SpeedFactor)
	}
	return path, nil
}

// buildPath produces the spliced Path from pf's finished search to dest,
// taking the same-edge shortcut when it applies.
func (sn *StreetNetwork) buildPath(pf *PathFinder, dest georef.ProjectionData) (Path, error) {
	tr := ResolveTarget(pf, dest)
	sc := TryShortcut(pf, pf.StartingEdge, dest, tr.Duration, tr.Reached, sn.gr.Ways)
	if sc.Applies {
		return Path{
			Items: []PathItem{{
				WayIdx:         pf.StartingEdge.Edge.WayIdx,
				Duration:       sc.Duration,
				Coordinates:    sc.Coordinates,
				Transportation: pf.StartingEdge.Edge.Caracteristic,
			}},
			Duration: sc.Duration,
		}, nil
	}
	if !tr.Reached {
		return Path{}, ErrUnreachable
	}

	path, originDir, err := ReconstructPath(pf, sn.gr, tr.Vertex)
	if err != nil {
		return Path{}, err
	}
	return SpliceStubs(path, sn.gr, pf.SpeedFactor, pf.StartingEdge, originDir, dest, tr.Which)
}

// GetDirectPath answers a point-to-point query between two free-form
// coordinates (spec §4.9): destination projects on the walking sub-graph
// when origin travels by Car, else on its own mode's sub-graph.
func (sn *StreetNetwork) GetDirectPath(origin, dest EntryPoint) (Path, error) {
	projMode := dest.Mode
	if origin.Mode == georef.Car {
		projMode = georef.Walking
	}
	destProj := sn.gr.Project(dest.Coord, projMode)
	if !destProj.Found {
		return Path{}, ErrNotProjected
	}

	sn.direct.Init(origin.Coord, origin.Mode, origin.SpeedFactor)
	if !sn.direct.StartingEdge.Found {
		return Path{}, ErrNotProjected
	}

	maxTotal := origin.MaxDuration + dest.MaxDuration
	sn.direct.Dijkstra(NewDistanceOrTargetVisitor(maxTotal, map[georef.VertexIdx]struct{}{
		destProj.Vertex[georef.Source]: {},
		destProj.Vertex[georef.Target]: {},
	}))

	path, err := sn.buildPath(sn.direct, destProj)
	if err != nil {
		return Path{}, err
	}
	if path.Duration > maxTotal {
		return Path{}, ErrUnreachable
	}
	return path, nil
}
