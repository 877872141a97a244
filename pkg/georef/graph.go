package georef

import (
	"sort"
	"time"

	"github.com/paulmach/orb"
)

// VertexIdx is a stable integer vertex index into a Graph.
type VertexIdx = uint32

// NoVertex is the sentinel "no vertex" value.
const NoVertex = ^VertexIdx(0)

// EdgeData is the per-edge payload: duration at reference speed, the way it
// belongs to, which of that way's geometries it uses, and its transport
// caracteristic. Either index is InvalidIdx when absent.
type EdgeData struct {
	Duration      time.Duration
	WayIdx        int32
	GeomIdx       int32
	Caracteristic TransportCaracteristic
}

// Graph is an immutable directed multigraph in CSR (compressed sparse row)
// form. Parallel edges between the same ordered vertex pair are permitted;
// reconstruction always prefers the minimum-duration one. The graph is
// built once (via Builder) and never mutated afterward.
type Graph struct {
	NumVertices uint32
	Coord       []orb.Point // len: NumVertices

	FirstOut []uint32   // len: NumVertices+1
	Head     []VertexIdx // len: NumEdges
	Edge     []EdgeData  // len: NumEdges
}

// EdgesFrom returns the half-open range of edge indices originating at u.
func (g *Graph) EdgesFrom(u VertexIdx) (start, end uint32) {
	return g.FirstOut[u], g.FirstOut[u+1]
}

// FindMinDurationEdge returns the index of the minimum-duration edge from u
// to w, tie-broken by insertion order (spec §4.5 / §9). Returns
// (0, false) if no such edge exists.
func (g *Graph) FindMinDurationEdge(u, w VertexIdx) (uint32, bool) {
	start, end := g.EdgesFrom(u)
	best := uint32(0)
	found := false
	var bestDur time.Duration
	for e := start; e < end; e++ {
		if g.Head[e] != w {
			continue
		}
		d := g.Edge[e].Duration
		if !found || d < bestDur {
			best, bestDur, found = e, d, true
		}
	}
	return best, found
}

// builderEdge is a staging edge prior to CSR compaction.
type builderEdge struct {
	from, to VertexIdx
	data     EdgeData
}

// Builder accumulates vertices and edges and compacts them into an
// immutable Graph. This is the in-scope counterpart of an out-of-scope
// OSM-ingestion build pipeline: callers (graph composition code, or tests)
// add vertices/edges directly.
type Builder struct {
	coord []orb.Point
	edges []builderEdge
}

// NewBuilder creates an empty graph builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddVertex appends a vertex at coord and returns its index.
func (b *Builder) AddVertex(coord orb.Point) VertexIdx {
	b.coord = append(b.coord, coord)
	return VertexIdx(len(b.coord) - 1)
}

// NumVertices returns the number of vertices added so far.
func (b *Builder) NumVertices() uint32 {
	return uint32(len(b.coord))
}

// AddEdge appends a directed edge u->v with the given payload.
func (b *Builder) AddEdge(u, v VertexIdx, data EdgeData) {
	b.edges = append(b.edges, builderEdge{from: u, to: v, data: data})
}

// Build compacts the staged vertices/edges into CSR form, sorted by source
// vertex (stable, so parallel edges keep their insertion order — used as
// the reconstruction tie-break after duration).
func (b *Builder) Build() *Graph {
	n := uint32(len(b.coord))
	g := &Graph{
		NumVertices: n,
		Coord:       append([]orb.Point(nil), b.coord...),
		FirstOut:    make([]uint32, n+1),
	}
	if n == 0 {
		return g
	}

	order := make([]int, len(b.edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return b.edges[order[i]].from < b.edges[order[j]].from
	})

	g.Head = make([]VertexIdx, len(order))
	g.Edge = make([]EdgeData, len(order))
	for pos, idx := range order {
		e := b.edges[idx]
		g.Head[pos] = e.to
		g.Edge[pos] = e.data
		g.FirstOut[e.from+1]++
	}
	for i := uint32(0); i < n; i++ {
		g.FirstOut[i+1] += g.FirstOut[i]
	}
	return g
}
