package entities

import "math"

// Availability is a number of seats that can be sold. IBP-style models also
// use it as a 0/1 admission flag.
type Availability int64

// MaxAvailability is the neutral element of the minimum over segments
const MaxAvailability Availability = math.MaxInt64

// MinAvailability returns the smaller of two availabilities
func MinAvailability(a, b Availability) Availability {
	if a < b {
		return a
	}
	return b
}
