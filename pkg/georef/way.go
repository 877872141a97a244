package georef

import "github.com/paulmach/orb"

// InvalidIdx marks an absent way_idx / geom_idx.
const InvalidIdx = -1

// Way is a named street, carrying one or more polyline geometries. Multiple
// edges can share a way_idx and each references one of its geometries by
// geom_idx.
type Way struct {
	Name  string
	Geoms []orb.LineString
}
