// Package geo provides the coordinate type and planar/geodesic math shared
// by the graph, projection, and path-reconstruction layers.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const earthRadiusMeters = 6_371_000.0

// Haversine returns the great-circle distance in meters between two points.
func Haversine(a, b orb.Point) float64 {
	lat1r := a.Lat() * math.Pi / 180
	lat2r := b.Lat() * math.Pi / 180
	dLat := (b.Lat() - a.Lat()) * math.Pi / 180
	dLon := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1r)*math.Cos(lat2r)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// EquirectangularDist returns an approximate distance in meters.
// ~3x faster than Haversine. Use for candidate filtering, not final
// edge weights or durations.
func EquirectangularDist(a, b orb.Point) float64 {
	x := (b.Lon() - a.Lon()) * math.Cos((a.Lat()+b.Lat())/2*math.Pi/180) * math.Pi / 180
	y := (b.Lat() - a.Lat()) * math.Pi / 180
	return math.Sqrt(x*x+y*y) * earthRadiusMeters
}

// PointToSegmentDist computes the perpendicular distance from point p to
// segment ab, and the projection ratio along ab (clamped to [0,1]) together
// with the projected point itself. dist is in meters.
//
// Works in an equirectangular projection centered on the segment, which is
// accurate enough for street-network edge lengths.
func PointToSegmentDist(p, a, b orb.Point) (dist float64, ratio float64, projected orb.Point) {
	if a == b {
		return Haversine(p, a), 0, a
	}

	cosLat := math.Cos((a.Lat() + b.Lat()) / 2 * math.Pi / 180)

	ax, ay := a.Lon()*cosLat, a.Lat()
	bx, by := b.Lon()*cosLat, b.Lat()
	px, py := p.Lon()*cosLat, p.Lat()

	dx := bx - ax
	dy := by - ay
	lenSq := dx*dx + dy*dy

	if lenSq == 0 {
		return Haversine(p, a), 0, a
	}

	t := ((px-ax)*dx + (py-ay)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	closeLat := a.Lat() + t*(b.Lat()-a.Lat())
	closeLon := a.Lon() + t*(b.Lon()-a.Lon())
	proj := orb.Point{closeLon, closeLat}

	return Haversine(p, proj), t, proj
}

// OnNodeEpsilonMeters is the distance below which a projection is treated
// as coincident with a graph vertex.
const OnNodeEpsilonMeters = 0.01

// BoundingBox returns a tidwall/rtree-style min/max pair covering segment ab,
// expanded by marginMeters on each side.
func BoundingBox(a, b orb.Point, marginMeters float64) (min, max [2]float64) {
	minLon, maxLon := a.Lon(), b.Lon()
	if minLon > maxLon {
		minLon, maxLon = maxLon, minLon
	}
	minLat, maxLat := a.Lat(), b.Lat()
	if minLat > maxLat {
		minLat, maxLat = maxLat, minLat
	}
	degMargin := marginMeters / 111_000.0
	return [2]float64{minLon - degMargin, minLat - degMargin},
		[2]float64{maxLon + degMargin, maxLat + degMargin}
}

// CrossProductSign returns the sign of the 2-D cross product (ab × bc) of
// the segment a→b and b→c, using planar lon/lat coordinates (no latitude
// correction — see DESIGN.md for the preserved limitation this mirrors from
// the original implementation).
func CrossProductSign(a, b, c orb.Point) float64 {
	abx, aby := b.Lon()-a.Lon(), b.Lat()-a.Lat()
	bcx, bcy := c.Lon()-b.Lon(), c.Lat()-b.Lat()
	return abx*bcy - aby*bcx
}

// AngleBetween returns the unsigned angle in degrees at vertex b formed by
// a→b→c, via the law of cosines on planar lon/lat distances.
func AngleBetween(a, b, c orb.Point) float64 {
	abx, aby := a.Lon()-b.Lon(), a.Lat()-b.Lat()
	cbx, cby := c.Lon()-b.Lon(), c.Lat()-b.Lat()

	abLen := math.Hypot(abx, aby)
	cbLen := math.Hypot(cbx, cby)
	if abLen == 0 || cbLen == 0 {
		return 0
	}

	cosAngle := (abx*cbx + aby*cby) / (abLen * cbLen)
	cosAngle = math.Max(-1, math.Min(1, cosAngle))
	return math.Acos(cosAngle) * 180 / math.Pi
}
