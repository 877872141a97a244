package georef

import "github.com/paulmach/orb"

// GeoRef is the read-only, shared collaborator the core is handed: the
// street graph, the ways table, per-mode vertex offsets and spatial
// indices, the four configured transition durations, default speeds, and
// the precomputed stop-point projection cache. Built once by an (external,
// out-of-scope) graph build pipeline; safe for concurrent read-only use.
type GeoRef struct {
	Graph *Graph
	Ways  []Way

	Offsets         Offsets
	NumBaseVertices VertexIdx // number of stop/vertex slots per mode sub-graph

	EdgeIndexes [ModeCount]*EdgeIndex

	DefaultSpeed DefaultSpeed
	Transitions  TransitionDurations

	// ProjectedStopPoints[stopIdx][mode] is the precomputed, immutable
	// projection of stop point stopIdx onto mode's sub-graph.
	ProjectedStopPoints [][ModeCount]ProjectionData
}

// edgeIndexForMode returns the spatial index to project onto for mode m.
// Bss shares the bike sub-graph: the rider is on a bike between the
// BssTake/BssPutBack transitions, and there is no separate Bss edge set.
func (gr *GeoRef) edgeIndexForMode(m Mode) *EdgeIndex {
	if m == Bss {
		return gr.EdgeIndexes[Bike]
	}
	return gr.EdgeIndexes[m]
}

// Project projects coord onto mode's sub-graph.
func (gr *GeoRef) Project(coord orb.Point, m Mode) ProjectionData {
	idx := gr.edgeIndexForMode(m)
	if idx == nil {
		return ProjectionData{Found: false, RealCoord: coord}
	}
	return Project(coord, idx, gr.Ways)
}

// GetCaracteristic returns the transport caracteristic of an edge (spec §6:
// GeoRef.get_caracteristic(edge)).
func (gr *GeoRef) GetCaracteristic(e EdgeData) TransportCaracteristic {
	return e.Caracteristic
}

// ProjectionFor returns the precomputed projection of stop point stopIdx
// onto mode's sub-graph from the projection cache.
func (gr *GeoRef) ProjectionFor(stopIdx int, m Mode) ProjectionData {
	return gr.ProjectedStopPoints[stopIdx][m]
}
