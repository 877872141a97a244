package routing

import "github.com/pbougue/navitia/pkg/georef"

// Invert transforms a path computed by running the forward search from an
// arrival query's destination coordinate into the path a traveler would
// actually follow to reach it (spec §4.7): item and coordinate order
// reverse, turn angles shift forward one position and negate, and
// transition caracteristics swap to their reverse counterpart with their
// duration re-read from the canonical configuration (pickup and putback,
// or park and leave, take different times).
func Invert(path Path, transitions georef.TransitionDurations, speedFactor float64) Path {
	n := len(path.Items)
	out := Path{Items: make([]PathItem, n)}

	for i, src := range path.Items {
		dst := src
		dst.Coordinates = reverseLineString(src.Coordinates)
		dst.Transportation = src.Transportation.Reversed()
		if dst.Transportation.IsTransition() {
			dst.Duration = georef.Scaled(transitions.ForCaracteristic(dst.Transportation), speedFactor)
		}
		dst.Angle = 0
		out.Items[n-1-i] = dst
	}
	for i := 1; i < n; i++ {
		out.Items[n-i].Angle = -path.Items[i].Angle
	}

	out.recomputeDuration()
	return out
}
