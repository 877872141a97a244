package georef

// Mode is a travel mode on the street network.
type Mode uint8

const (
	Walking Mode = iota
	Bike
	Car
	Bss
	modeCount
)

// ModeCount is the number of travel modes, and the width of the per-mode
// offset / projection-cache tables.
const ModeCount = int(modeCount)

func (m Mode) String() string {
	switch m {
	case Walking:
		return "Walking"
	case Bike:
		return "Bike"
	case Car:
		return "Car"
	case Bss:
		return "Bss"
	default:
		return "Unknown"
	}
}

// EffectiveSpeedMode returns the mode whose default speed should be used
// for "last meters" crow-fly legs: Bss walks on its extremities, because the
// traveler is on foot until they reach (or after they leave) a bike station.
func EffectiveSpeedMode(m Mode) Mode {
	if m == Bss {
		return Walking
	}
	return m
}
