package core

import (
	psort "github.com/exascience/pargo/sort"
	"golang.org/x/exp/slices"
)

// IsSorted reports whether tab is non-decreasing. Large arrays are checked
// in parallel.
func IsSorted(tab []int) bool {
	return psort.IntsAreSorted(tab)
}

// SameElements reports whether a and b hold the same multiset of values.
// Neither slice is modified.
func SameElements(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	x, y := slices.Clone(a), slices.Clone(b)
	psort.StableSort(psort.IntSlice(x))
	psort.StableSort(psort.IntSlice(y))
	return slices.Equal(x, y)
}
