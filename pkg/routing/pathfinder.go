package routing

import (
	"time"

	"github.com/paulmach/orb"

	"github.com/pbougue/navitia/pkg/georef"
)

// PathFinder owns the mutable per-search state for one Dijkstra run: the
// graph itself and the projection cache are shared read-only (spec §5);
// everything in this struct belongs to a single query and must not be
// shared across goroutines.
type PathFinder struct {
	gr *georef.GeoRef

	Mode        georef.Mode
	SpeedFactor float64
	StartCoord  orb.Point

	StartingEdge      georef.ProjectionData
	ComputationLaunch bool

	dist  []time.Duration
	pred  []georef.VertexIdx
	col   []color
	touch []georef.VertexIdx

	pq minHeap
}

// NewPathFinder creates a PathFinder bound to gr. The per-vertex arrays are
// allocated lazily on the first Init call and reused (reallocated
// only if |V| changes — spec §9).
func NewPathFinder(gr *georef.GeoRef) *PathFinder {
	return &PathFinder{gr: gr}
}

func (pf *PathFinder) ensureCapacity() {
	n := int(pf.gr.Graph.NumVertices)
	if len(pf.dist) == n {
		return
	}
	pf.dist = make([]time.Duration, n)
	pf.pred = make([]georef.VertexIdx, n)
	pf.col = make([]color, n)
	pf.touch = pf.touch[:0]
}

// reset clears only the vertices touched by the previous search (spec §9),
// not the whole |V| arrays.
func (pf *PathFinder) reset() {
	for _, v := range pf.touch {
		pf.col[v] = white
	}
	pf.touch = pf.touch[:0]
	pf.pq.Reset()
}

// Init binds this PathFinder to a new query: projects coord onto mode's
// sub-graph. Does not run Dijkstra yet (spec §3: ComputationLaunch tracks
// that separately).
func (pf *PathFinder) Init(coord orb.Point, mode georef.Mode, speedFactor float64) {
	pf.ensureCapacity()
	pf.Mode = mode
	pf.SpeedFactor = speedFactor
	pf.StartCoord = coord
	pf.StartingEdge = pf.gr.Project(coord, mode)
	pf.ComputationLaunch = false
}

func (pf *PathFinder) touchVertex(v georef.VertexIdx) {
	if pf.col[v] == white {
		pf.touch = append(pf.touch, v)
	}
}

func (pf *PathFinder) relax(v georef.VertexIdx, d time.Duration, pred georef.VertexIdx) {
	if pf.col[v] == black {
		return
	}
	if pf.col[v] == gray && d >= pf.dist[v] {
		return
	}
	pf.touchVertex(v)
	pf.dist[v] = d
	pf.pred[v] = pred
	pf.col[v] = gray
	pf.pq.Push(v, d)
}

// Dist returns the current tentative/final distance to v and whether v has
// been reached at all (color != white).
func (pf *PathFinder) Dist(v georef.VertexIdx) (time.Duration, bool) {
	if pf.col[v] == white {
		return 0, false
	}
	return pf.dist[v], true
}

// Pred returns the predecessor of v in the Dijkstra tree.
func (pf *PathFinder) Pred(v georef.VertexIdx) georef.VertexIdx {
	return pf.pred[v]
}

// Dijkstra runs the search from the two endpoints of StartingEdge, stopping
// when v reports stop=true at a vertex-finish event (spec §4.2).
func (pf *PathFinder) Dijkstra(v Visitor) {
	pf.reset()
	pf.ComputationLaunch = true

	if !pf.StartingEdge.Found {
		return
	}

	src := pf.StartingEdge.Vertex[georef.Source]
	tgt := pf.StartingEdge.Vertex[georef.Target]

	seedDist := func(d georef.Direction) time.Duration {
		return pf.gr.DefaultSpeed.WalkingCrowFlyDuration(pf.StartingEdge.Distances[d], pf.SpeedFactor)
	}

	switch {
	case pf.StartingEdge.IsOnNode(georef.Source):
		pf.relax(src, seedDist(georef.Source), src)
		pf.pred[tgt] = src
	case pf.StartingEdge.IsOnNode(georef.Target):
		pf.relax(tgt, seedDist(georef.Target), tgt)
		pf.pred[src] = tgt
	default:
		pf.relax(src, seedDist(georef.Source), src)
		pf.relax(tgt, seedDist(georef.Target), tgt)
	}

	g := pf.gr.Graph
	for pf.pq.Len() > 0 {
		item := pf.pq.Pop()
		u, d := item.vertex, item.dist
		if pf.col[u] == black || d > pf.dist[u] {
			continue // stale heap entry
		}
		pf.col[u] = black

		if v.Finish(u, d) {
			return
		}

		start, end := g.EdgesFrom(u)
		for e := start; e < end; e++ {
			w := g.Head[e]
			cost := georef.Scaled(g.Edge[e].Duration, pf.SpeedFactor)
			pf.relax(w, d+cost, u)
		}
	}
}
