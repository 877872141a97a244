package routing

import (
	"time"

	"github.com/paulmach/orb"

	"github.com/pbougue/navitia/pkg/georef"
)

// PathItem is a contiguous segment of a Path sharing one way and one
// transport caracteristic.
type PathItem struct {
	WayIdx         int32
	Duration       time.Duration
	Coordinates    orb.LineString
	Angle          float64 // turn angle in degrees at the junction with the previous item
	Transportation georef.TransportCaracteristic
}

// Path is an ordered list of path items and their total duration. Built and
// returned by value; never shared across queries.
type Path struct {
	Items    []PathItem
	Duration time.Duration
}

func (p *Path) recomputeDuration() {
	var total time.Duration
	for _, it := range p.Items {
		total += it.Duration
	}
	p.Duration = total
}
