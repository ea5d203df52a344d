package core

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slices"
)

func TestSequentialSort(t *testing.T) {
	for _, tc := range [...]struct {
		name string
		tab  []int
	}{
		{`empty`, nil},
		{`single`, []int{4}},
		{`pair`, []int{4, 1}},
		{`example`, []int{5, 2, 8, 1, 9, 3, 7, 4}},
		{`duplicates`, []int{3, 1, 3, 0, 1, 3, 0}},
		{`sorted`, []int{1, 2, 2, 3, 10}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			want := slices.Clone(tc.tab)
			sort.Ints(want)

			stats := SequentialSort(tc.tab, nil)
			assert.Equal(t, want, tc.tab)
			assert.Equal(t, 1, stats.Zones)
			assert.Equal(t, 1, stats.Passes())
			assert.Zero(t, stats.BoundaryChanges())
		})
	}
}

func TestSequentialSort_noSwapsWhenSorted(t *testing.T) {
	tab := []int{0, 0, 1, 5, 5, 9}
	stats := SequentialSort(tab, nil)
	assert.Zero(t, stats.Swaps())
}

func TestSequentialSort_random(t *testing.T) {
	rng := NewRand(99)
	tab := make([]int, 300)
	Fill(tab, MaxValue, rng)
	input := slices.Clone(tab)

	SequentialSort(tab, nil)
	assert.True(t, IsSorted(tab))
	assert.True(t, SameElements(input, tab))
}
