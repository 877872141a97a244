package georef

import "time"

// TransitionDurations holds the four configured transition durations (at
// reference speed_factor=1) consumed from GeoRef (spec §6). They are
// divided by speed_factor at use, same as any other edge duration.
type TransitionDurations struct {
	BssPickup    time.Duration // default_time_bss_pickup
	BssPutback   time.Duration // default_time_bss_putback
	ParkingPark  time.Duration // default_time_parking_park
	ParkingLeave time.Duration // default_time_parking_leave
}

// DefaultTransitionDurations returns representative transition durations.
func DefaultTransitionDurations() TransitionDurations {
	return TransitionDurations{
		BssPickup:    30 * time.Second,
		BssPutback:   45 * time.Second,
		ParkingPark:  60 * time.Second,
		ParkingLeave: 30 * time.Second,
	}
}

// ForCaracteristic returns the configured transition duration for a given
// transport caracteristic at speed_factor 1. Panics if c is not a
// transition caracteristic — callers must check IsTransition first.
func (t TransitionDurations) ForCaracteristic(c TransportCaracteristic) time.Duration {
	switch c {
	case BssTake:
		return t.BssPickup
	case BssPutBack:
		return t.BssPutback
	case CarPark:
		return t.ParkingPark
	case CarLeaveParking:
		return t.ParkingLeave
	default:
		panic("georef: ForCaracteristic called with a non-transition caracteristic")
	}
}

// Scaled returns d adjusted by speed_factor, matching how every other edge
// duration in the graph is scaled.
func Scaled(d time.Duration, speedFactor float64) time.Duration {
	if speedFactor <= 0 {
		return d
	}
	return time.Duration(float64(d) / speedFactor)
}
