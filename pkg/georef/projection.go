package georef

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/tidwall/rtree"

	"github.com/pbougue/navitia/pkg/geo"
)

// Direction names the two vertices (and the two stored distances) of a
// ProjectionData.
type Direction int

const (
	Source Direction = iota
	Target
)

// ProjectionData is the result of projecting an arbitrary coordinate onto
// the nearest edge of a mode's sub-graph.
type ProjectionData struct {
	Found     bool
	Vertex    [2]VertexIdx // indexed by Direction
	Projected orb.Point
	RealCoord orb.Point
	Distances [2]float64 // meters, indexed by Direction
	Edge      EdgeData
}

// IsOnNode reports whether the projection coincides with vertex d (within
// geo.OnNodeEpsilonMeters).
func (p ProjectionData) IsOnNode(d Direction) bool {
	return p.Distances[d] < geo.OnNodeEpsilonMeters
}

// EdgeIndex is a spatial index over one mode sub-graph's edges, backed by
// github.com/tidwall/rtree, built once when the graph is loaded and
// immutable thereafter — the "precomputed spatial index" spec §1 hands the
// core as a read-only collaborator.
type EdgeIndex struct {
	tree rtree.RTreeG[uint32] // value: edge index into Graph.Head/Edge
	g    *Graph
}

// edgeIndexMarginMeters bounds how far an edge's bounding box is expanded
// to account for intermediate geometry bulging away from the straight
// vertex-to-vertex line.
const edgeIndexMarginMeters = 50.0

// BuildEdgeIndex indexes every edge in g whose source vertex lies in
// [firstVertex, firstVertex+numVertices) — i.e. one mode's sub-graph — and
// whose caracteristic is a travel-mode edge (not a zero-geometry
// transition, which can never be the nearest edge to a coordinate).
func BuildEdgeIndex(g *Graph, firstVertex, numVertices VertexIdx, ways []Way) *EdgeIndex {
	idx := &EdgeIndex{g: g}
	last := firstVertex + numVertices
	for u := firstVertex; u < last && u < g.NumVertices; u++ {
		start, end := g.EdgesFrom(u)
		for e := start; e < end; e++ {
			data := g.Edge[e]
			if data.Caracteristic.IsTransition() {
				continue
			}
			v := g.Head[e]
			a, b := g.Coord[u], g.Coord[v]
			min, max := geo.BoundingBox(a, b, edgeIndexMarginMeters)
			if data.GeomIdx != InvalidIdx && data.WayIdx != InvalidIdx {
				for _, p := range ways[data.WayIdx].Geoms[data.GeomIdx] {
					pMin, pMax := geo.BoundingBox(p, p, edgeIndexMarginMeters)
					min, max = unionBox(min, max, pMin, pMax)
				}
			}
			idx.tree.Insert(min, max, e)
		}
	}
	return idx
}

func unionBox(min1, max1, min2, max2 [2]float64) (min, max [2]float64) {
	return [2]float64{math.Min(min1[0], min2[0]), math.Min(min1[1], min2[1])},
		[2]float64{math.Max(max1[0], max2[0]), math.Max(max1[1], max2[1])}
}

// maxProjectionDistanceMeters is the edge index's search envelope; a
// coordinate with no edge inside this radius fails to project (Found=false).
const maxProjectionDistanceMeters = 1000.0

// Project maps coord onto the nearest edge known to idx, computing the
// orthogonal projection onto that edge's polyline (or one of its internal
// vertices, whichever is closest) and the walking distances from the
// projected point to each incident vertex.
func Project(coord orb.Point, idx *EdgeIndex, ways []Way) ProjectionData {
	min, max := geo.BoundingBox(coord, coord, maxProjectionDistanceMeters)

	var (
		found            bool
		bestDist         = math.Inf(1)
		bestU, bestV     VertexIdx
		bestProj         orb.Point
		bestData         EdgeData
		bestDistToU      float64
		bestDistToV      float64
	)

	idx.tree.Search(min, max, func(segMin, segMax [2]float64, e uint32) bool {
		u := findEdgeSource(idx.g, e)
		v := idx.g.Head[e]
		data := idx.g.Edge[e]

		segments := edgeSegments(idx.g, u, v, data, ways)
		for _, seg := range segments {
			dist, ratio, proj := geo.PointToSegmentDist(coord, seg.a, seg.b)
			if dist < bestDist {
				bestDist = dist
				found = true
				bestU, bestV = u, v
				bestProj = proj
				bestData = data
				bestDistToU = seg.distFromU + geo.Haversine(seg.a, proj)
				bestDistToV = seg.distToV + geo.Haversine(proj, seg.b)
				_ = ratio
			}
		}
		return true
	})

	if !found || bestDist > maxProjectionDistanceMeters {
		return ProjectionData{Found: false, RealCoord: coord}
	}

	p := ProjectionData{
		Found:     true,
		Vertex:    [2]VertexIdx{bestU, bestV},
		Projected: bestProj,
		RealCoord: coord,
		Edge:      bestData,
	}
	p.Distances[Source] = bestDistToU
	p.Distances[Target] = bestDistToV
	return p
}

type segment struct {
	a, b                 orb.Point
	distFromU, distToV   float64 // cumulative polyline distance from u (resp. to v) to a (resp. from b)
}

// edgeSegments returns the sequence of straight segments making up edge
// u->v, splicing in the way's geometry (oriented from u to v) when present.
func edgeSegments(g *Graph, u, v VertexIdx, data EdgeData, ways []Way) []segment {
	if data.GeomIdx == InvalidIdx || data.WayIdx == InvalidIdx {
		return []segment{{a: g.Coord[u], b: g.Coord[v]}}
	}
	line := ways[data.WayIdx].Geoms[data.GeomIdx]
	if len(line) < 2 {
		return []segment{{a: g.Coord[u], b: g.Coord[v]}}
	}
	if geo.Haversine(line[0], g.Coord[u]) > geo.Haversine(line[len(line)-1], g.Coord[u]) {
		rev := make(orb.LineString, len(line))
		for i, p := range line {
			rev[len(line)-1-i] = p
		}
		line = rev
	}

	segs := make([]segment, 0, len(line)-1)
	cum := 0.0
	for i := 0; i+1 < len(line); i++ {
		a, b := orb.Point(line[i]), orb.Point(line[i+1])
		segs = append(segs, segment{a: a, b: b, distFromU: cum})
		cum += geo.Haversine(a, b)
	}
	total := cum
	run := 0.0
	for i := range segs {
		run += geo.Haversine(segs[i].a, segs[i].b)
		segs[i].distToV = total - run
	}
	return segs
}

// findEdgeSource binary-searches the CSR FirstOut table to recover the
// source vertex of edge index e.
func findEdgeSource(g *Graph, e uint32) VertexIdx {
	lo, hi := uint32(0), g.NumVertices
	for lo < hi {
		mid := (lo + hi) / 2
		if g.FirstOut[mid+1] <= e {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
