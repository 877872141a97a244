package routing

import (
	"time"

	"github.com/pbougue/navitia/pkg/georef"
)

// Visitor is polled at vertex-finish time (after a vertex's final distance
// is set) and signals Dijkstra termination by returning stop=true. This is
// a normal control-flow signal (spec §7), implemented as a polled return
// rather than a panic/exception, so it cannot corrupt the partial distance
// map it inspects.
type Visitor interface {
	Finish(v georef.VertexIdx, dist time.Duration) (stop bool)
}

// DistanceVisitor stops the search once a finished vertex's distance
// exceeds Radius.
type DistanceVisitor struct {
	Radius time.Duration
}

func (dv DistanceVisitor) Finish(_ georef.VertexIdx, dist time.Duration) bool {
	return dist > dv.Radius
}

// TargetAllVisitor stops the search once every vertex in Targets has been
// finished.
type TargetAllVisitor struct {
	Targets  map[georef.VertexIdx]struct{}
	remaining map[georef.VertexIdx]struct{}
}

// NewTargetAllVisitor returns a TargetAllVisitor tracking targets.
func NewTargetAllVisitor(targets map[georef.VertexIdx]struct{}) *TargetAllVisitor {
	remaining := make(map[georef.VertexIdx]struct{}, len(targets))
	for v := range targets {
		remaining[v] = struct{}{}
	}
	return &TargetAllVisitor{Targets: targets, remaining: remaining}
}

func (tv *TargetAllVisitor) Finish(v georef.VertexIdx, _ time.Duration) bool {
	delete(tv.remaining, v)
	return len(tv.remaining) == 0
}

// DistanceOrTargetVisitor stops on whichever of the radius cutoff or the
// target set being fully finished triggers first.
type DistanceOrTargetVisitor struct {
	distance DistanceVisitor
	target   *TargetAllVisitor
}

// NewDistanceOrTargetVisitor builds a combined visitor.
func NewDistanceOrTargetVisitor(radius time.Duration, targets map[georef.VertexIdx]struct{}) *DistanceOrTargetVisitor {
	return &DistanceOrTargetVisitor{
		distance: DistanceVisitor{Radius: radius},
		target:   NewTargetAllVisitor(targets),
	}
}

func (dt *DistanceOrTargetVisitor) Finish(v georef.VertexIdx, dist time.Duration) bool {
	// Evaluate both unconditionally: the target visitor must see every
	// finished vertex to keep its remaining-set accounting correct, even
	// once the distance cutoff alone would be enough to stop.
	targetDone := dt.target.Finish(v, dist)
	return dt.distance.Finish(v, dist) || targetDone
}
