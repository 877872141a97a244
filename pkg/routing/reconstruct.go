package routing

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/pbougue/navitia/pkg/geo"
	"github.com/pbougue/navitia/pkg/georef"
)

// vertexSeq walks the predecessor chain from dest back to its origin
// (spec §4.5), stopping at the first self-predecessor (the seeded vertex),
// and returns it in origin->dest order.
func vertexSeq(pf *PathFinder, dest georef.VertexIdx) []georef.VertexIdx {
	seq := []georef.VertexIdx{dest}
	for {
		v := seq[len(seq)-1]
		p := pf.Pred(v)
		if p == v {
			break
		}
		seq = append(seq, p)
	}
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}
	return seq
}

// buildItems turns an ordered vertex sequence into path items (spec §4.5):
// a new item starts whenever the way or the transport caracteristic
// changes, each edge's geometry (or its bare target coordinate, absent a
// geometry) is spliced in, and a turn angle is recorded at every item
// boundary.
func buildItems(gr *georef.GeoRef, speedFactor float64, seq []georef.VertexIdx) ([]PathItem, error) {
	var items []PathItem
	for i := 0; i+1 < len(seq); i++ {
		u, w := seq[i], seq[i+1]
		e, ok := gr.Graph.FindMinDurationEdge(u, w)
		if !ok {
			return nil, ErrMissingEdge
		}
		ed := gr.Graph.Edge[e]

		isNew := len(items) == 0 ||
			items[len(items)-1].WayIdx != ed.WayIdx ||
			items[len(items)-1].Transportation != ed.Caracteristic

		if isNew {
			items = append(items, PathItem{
				WayIdx:         ed.WayIdx,
				Transportation: ed.Caracteristic,
				Coordinates:    orb.LineString{gr.Graph.Coord[u]},
			})
		}
		cur := &items[len(items)-1]
		appendEdgeGeometry(cur, gr, ed, u, w)
		cur.Duration += georef.Scaled(ed.Duration, speedFactor)

		if isNew && len(items) >= 2 {
			prev := &items[len(items)-2]
			cur.Angle = junctionAngle(prev, cur)
		}
	}
	return items, nil
}

// appendEdgeGeometry splices edge (u,w)'s polyline, oriented from u to w,
// onto item's coordinate list (skipping the duplicate leading point), or
// just appends w's coordinate when the edge carries no geometry (spec §4.5,
// §4.6 — transition edges have no geometry).
func appendEdgeGeometry(item *PathItem, gr *georef.GeoRef, ed georef.EdgeData, u, w georef.VertexIdx) {
	if ed.GeomIdx == georef.InvalidIdx || ed.WayIdx == georef.InvalidIdx {
		item.Coordinates = append(item.Coordinates, gr.Graph.Coord[w])
		return
	}
	line := orientLine(gr.Ways[ed.WayIdx].Geoms[ed.GeomIdx], gr.Graph.Coord[u])
	if len(line) > 0 {
		item.Coordinates = append(item.Coordinates, line[1:]...)
	}
}

// orientLine returns line ordered to start as close as possible to start,
// reversing it if its recorded orientation runs the other way.
func orientLine(line orb.LineString, start orb.Point) orb.LineString {
	if len(line) == 0 {
		return line
	}
	if geo.Haversine(line[0], start) <= geo.Haversine(line[len(line)-1], start) {
		return line
	}
	rev := make(orb.LineString, len(line))
	for i, p := range line {
		rev[len(line)-1-i] = p
	}
	return rev
}

// junctionAngle computes the signed turn angle (degrees) where prev meets
// cur: 180 minus the unsigned angle at A formed by the previous item's last
// two coordinates (B, A) and the new item's second coordinate (C), signed
// by the cross product AB x BC (spec §4.5). Zero if any of the three
// coincide.
func junctionAngle(prev, cur *PathItem) float64 {
	if len(prev.Coordinates) < 2 || len(cur.Coordinates) < 2 {
		return 0
	}
	b := prev.Coordinates[len(prev.Coordinates)-2]
	a := prev.Coordinates[len(prev.Coordinates)-1]
	c := cur.Coordinates[1]

	if b == a || a == c || b == c {
		return 0
	}

	magnitude := 180 - geo.AngleBetween(b, a, c)
	sign := geo.CrossProductSign(b, a, c)
	if sign < 0 {
		return -magnitude
	}
	return magnitude
}

// ReconstructPath rebuilds the full Path from dest back to the origin of
// pf's search (spec §4.5), and reports which of StartingEdge's two
// vertices that origin actually is (needed to pick the right stub
// distance in SpliceStubs).
func ReconstructPath(pf *PathFinder, gr *georef.GeoRef, dest georef.VertexIdx) (Path, georef.Direction, error) {
	seq := vertexSeq(pf, dest)
	items, err := buildItems(gr, pf.SpeedFactor, seq)
	if err != nil {
		return Path{}, georef.Source, err
	}
	p := Path{Items: items}
	p.recomputeDuration()

	originDir := georef.Source
	if len(seq) > 0 && seq[0] == pf.StartingEdge.Vertex[georef.Target] {
		originDir = georef.Target
	}
	return p, originDir, nil
}

// splitLineAtPoint clips line at the point on it closest to p, keeping
// either the portion after p (keepAfter) or the portion up to and
// including p. Used to cut a way's geometry down to a stub or to the
// shared span between two same-edge projections (spec §4.4, §4.6).
func splitLineAtPoint(line orb.LineString, p orb.Point, keepAfter bool) orb.LineString {
	if len(line) < 2 {
		return line
	}
	bestIdx := 0
	bestDist := math.Inf(1)
	for i := 0; i+1 < len(line); i++ {
		d, _, _ := geo.PointToSegmentDist(p, line[i], line[i+1])
		if d < bestDist {
			bestDist = d
			bestIdx = i
		}
	}
	if keepAfter {
		out := make(orb.LineString, 0, len(line)-bestIdx)
		out = append(out, p)
		out = append(out, line[bestIdx+1:]...)
		return out
	}
	out := make(orb.LineString, 0, bestIdx+2)
	out = append(out, line[:bestIdx+1]...)
	out = append(out, p)
	return out
}

func reverseLineString(line orb.LineString) orb.LineString {
	out := make(orb.LineString, len(line))
	for i, p := range line {
		out[len(line)-1-i] = p
	}
	return out
}
