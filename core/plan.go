package core

import "fmt"

// Zone is the contiguous range [Start, Start+Len) sorted by one worker.
// Adjacent zones overlap by exactly one element: zone i's last index is zone
// i+1's first index.
type Zone struct {
	Index int
	Start int
	Len   int
}

// End returns the index one past the last element of the zone.
func (z Zone) End() int { return z.Start + z.Len }

func (z Zone) String() string {
	return fmt.Sprintf("zone %d [%d,%d)", z.Index, z.Start, z.End())
}

// PlanZones splits an array of n elements into z overlapping zones.
//
// The z-1 shared elements are counted by both neighbours, so the zone
// lengths add up to n+z-1. Each zone gets (n+z-1)/z cells and the first
// (n+z-1)%z zones get one more. A zone must hold at least two cells to be able
// to share both of its ends, hence 1 <= z <= n-1.
func PlanZones(n, z int) ([]Zone, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: array size must be at least 2, got %d", ErrInvalidConfiguration, n)
	}
	if z < 1 || z > n-1 {
		return nil, fmt.Errorf("%w: zone count must be between 1 and %d, got %d", ErrInvalidConfiguration, n-1, z)
	}

	cells := n + z - 1
	size := cells / z
	rem := cells % z

	zones := make([]Zone, z)
	start := 0
	for i := range zones {
		length := size
		if i < rem {
			length++
		}
		zones[i] = Zone{Index: i, Start: start, Len: length}
		start += length - 1
	}
	return zones, nil
}
