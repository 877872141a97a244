package routing

import (
	"time"

	"github.com/pbougue/navitia/pkg/georef"
)

// TargetResolution is the outcome of resolving a destination projection
// against a finished Dijkstra search (spec §4.3).
type TargetResolution struct {
	Reached  bool
	Duration time.Duration
	Vertex   georef.VertexIdx
	Which    georef.Direction
}

// ResolveTarget picks the better of a destination projection's two
// incident vertices, given the finished search pf and the configured
// speed factor (spec §4.3). The crow-fly leg from the chosen vertex to the
// destination's real coordinate always uses walking speed.
func ResolveTarget(pf *PathFinder, t georef.ProjectionData) TargetResolution {
	if !t.Found {
		return TargetResolution{Reached: false}
	}

	distSrc, okSrc := pf.Dist(t.Vertex[georef.Source])
	distTgt, okTgt := pf.Dist(t.Vertex[georef.Target])
	if !okSrc && !okTgt {
		return TargetResolution{Reached: false}
	}

	if t.IsOnNode(georef.Source) {
		if !okSrc {
			return TargetResolution{Reached: false}
		}
		return TargetResolution{Reached: true, Duration: distSrc, Vertex: t.Vertex[georef.Source], Which: georef.Source}
	}
	if t.IsOnNode(georef.Target) {
		if !okTgt {
			return TargetResolution{Reached: false}
		}
		return TargetResolution{Reached: true, Duration: distTgt, Vertex: t.Vertex[georef.Target], Which: georef.Target}
	}

	walkCrowFly := func(meters float64) time.Duration {
		return pf.gr.DefaultSpeed.WalkingCrowFlyDuration(meters, pf.SpeedFactor)
	}

	var (
		best      time.Duration
		bestV     georef.VertexIdx
		bestWhich georef.Direction
		have      bool
	)
	if okSrc {
		dS := distSrc + walkCrowFly(t.Distances[georef.Source])
		best, bestV, bestWhich, have = dS, t.Vertex[georef.Source], georef.Source, true
	}
	if okTgt {
		dT := distTgt + walkCrowFly(t.Distances[georef.Target])
		if !have || dT < best {
			best, bestV, bestWhich = dT, t.Vertex[georef.Target], georef.Target
		}
	}
	return TargetResolution{Reached: true, Duration: best, Vertex: bestV, Which: bestWhich}
}
