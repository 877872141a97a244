package routing

import (
	"github.com/paulmach/orb"

	"github.com/pbougue/navitia/pkg/georef"
)

// SpliceStubs extends a reconstructed path's two ends to the user's real
// coordinates using the origin/destination projections chosen by target
// resolution (spec §4.6). Each stub merges into its neighboring item when
// they share a way, or else becomes a new prepended/appended item whose
// transportation is translated from the neighbor's caracteristic.
func SpliceStubs(path Path, gr *georef.GeoRef, speedFactor float64, origin georef.ProjectionData, originDir georef.Direction, dest georef.ProjectionData, destDir georef.Direction) (Path, error) {
	items := path.Items

	var headNeighbor, tailNeighbor *georef.TransportCaracteristic
	if len(items) > 0 {
		headNeighbor = &items[0].Transportation
		tailNeighbor = &items[len(items)-1].Transportation
	}

	originItem, err := buildStubItem(gr, speedFactor, origin, originDir, true, headNeighbor)
	if err != nil {
		return Path{}, err
	}
	destItem, err := buildStubItem(gr, speedFactor, dest, destDir, false, tailNeighbor)
	if err != nil {
		return Path{}, err
	}

	if originItem.WayIdx != georef.InvalidIdx && len(items) > 0 && originItem.WayIdx == items[0].WayIdx {
		merged := append(orb.LineString{}, originItem.Coordinates[:len(originItem.Coordinates)-1]...)
		items[0].Coordinates = append(merged, items[0].Coordinates...)
		items[0].Duration += originItem.Duration
	} else {
		items = append([]PathItem{originItem}, items...)
	}

	if destItem.WayIdx != georef.InvalidIdx && len(items) > 0 && destItem.WayIdx == items[len(items)-1].WayIdx {
		last := &items[len(items)-1]
		last.Coordinates = append(last.Coordinates, destItem.Coordinates[1:]...)
		last.Duration += destItem.Duration
	} else {
		items = append(items, destItem)
	}

	out := Path{Items: items}
	out.recomputeDuration()
	return out, nil
}

// buildStubItem builds the path item for one end of a path: the clipped
// half of the projected edge's polyline between the projected point and
// the chosen vertex, at walking crow-fly duration.
func buildStubItem(gr *georef.GeoRef, speedFactor float64, p georef.ProjectionData, d georef.Direction, isOrigin bool, neighbor *georef.TransportCaracteristic) (PathItem, error) {
	duration := gr.DefaultSpeed.WalkingCrowFlyDuration(p.Distances[d], speedFactor)

	var coords orb.LineString
	if p.Edge.GeomIdx != georef.InvalidIdx && p.Edge.WayIdx != georef.InvalidIdx {
		line := orientLine(gr.Ways[p.Edge.WayIdx].Geoms[p.Edge.GeomIdx], gr.Graph.Coord[p.Vertex[georef.Source]])
		coords = stubCoordinates(line, p.Projected, d, isOrigin)
	} else {
		vertexCoord := gr.Graph.Coord[p.Vertex[d]]
		if isOrigin {
			coords = orb.LineString{p.Projected, vertexCoord}
		} else {
			coords = orb.LineString{vertexCoord, p.Projected}
		}
	}

	carac, err := stubTransportation(p.Edge.Caracteristic, neighbor, isOrigin)
	if err != nil {
		return PathItem{}, err
	}

	return PathItem{
		WayIdx:         p.Edge.WayIdx,
		Duration:       duration,
		Coordinates:    coords,
		Transportation: carac,
	}, nil
}

// stubCoordinates clips line (oriented source->target) at projected,
// keeping the half that spans [projected, chosen vertex], reversed when
// needed so the result reads monotonically along the eventual path (spec
// §4.6: "reverse ... so the final coordinate list is monotone").
func stubCoordinates(line orb.LineString, projected orb.Point, d georef.Direction, isOrigin bool) orb.LineString {
	switch {
	case d == georef.Source && isOrigin:
		return reverseLineString(splitLineAtPoint(line, projected, false))
	case d == georef.Source && !isOrigin:
		return splitLineAtPoint(line, projected, false)
	case d == georef.Target && isOrigin:
		return splitLineAtPoint(line, projected, true)
	default: // Target, destination stub
		return reverseLineString(splitLineAtPoint(line, projected, true))
	}
}

// stubTransportation translates the adjacent item's transportation into the
// stub's own, per the mode-translation table in spec §4.6. Falls back to
// the stub edge's own caracteristic when there is no neighboring item
// (a path with no Dijkstra items at all).
func stubTransportation(edgeCarac georef.TransportCaracteristic, neighbor *georef.TransportCaracteristic, isOrigin bool) (georef.TransportCaracteristic, error) {
	basis := edgeCarac
	if neighbor != nil {
		basis = *neighbor
	}
	switch basis {
	case georef.Walk, georef.CaracBike, georef.CaracCar:
		return basis, nil
	case georef.BssTake:
		if isOrigin {
			return georef.Walk, nil
		}
		return georef.CaracBike, nil
	case georef.BssPutBack:
		if isOrigin {
			return georef.CaracBike, nil
		}
		return georef.Walk, nil
	case georef.CarLeaveParking:
		if isOrigin {
			return georef.Walk, nil
		}
		return georef.CaracCar, nil
	case georef.CarPark:
		if isOrigin {
			return georef.CaracCar, nil
		}
		return georef.Walk, nil
	default:
		return basis, ErrUnhandledCaracteristic
	}
}
