package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanZones(t *testing.T) {
	for _, tc := range [...]struct {
		name  string
		n, z  int
		zones []Zone
	}{
		{`single zone`, 2, 1, []Zone{{0, 0, 2}}},
		{`example`, 8, 3, []Zone{{0, 0, 4}, {1, 3, 3}, {2, 5, 3}}},
		{`maximum zones`, 5, 4, []Zone{{0, 0, 2}, {1, 1, 2}, {2, 2, 2}, {3, 3, 2}}},
		{`even split`, 10, 3, []Zone{{0, 0, 4}, {1, 3, 4}, {2, 6, 4}}},
		{`remainder to first zones`, 10, 4, []Zone{{0, 0, 4}, {1, 3, 3}, {2, 5, 3}, {3, 7, 3}}},
		{`remainder of two`, 11, 4, []Zone{{0, 0, 4}, {1, 3, 4}, {2, 6, 3}, {3, 8, 3}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			zones, err := PlanZones(tc.n, tc.z)
			require.NoError(t, err)
			assert.Equal(t, tc.zones, zones)
		})
	}
}

func TestPlanZones_invalid(t *testing.T) {
	for _, tc := range [...]struct {
		name string
		n, z int
	}{
		{`zones equal size`, 5, 5},
		{`too many zones`, 5, 9},
		{`no zones`, 5, 0},
		{`negative zones`, 5, -1},
		{`single element`, 1, 1},
		{`empty`, 0, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			zones, err := PlanZones(tc.n, tc.z)
			assert.Nil(t, zones)
			assert.True(t, errors.Is(err, ErrInvalidConfiguration), "%v", err)
		})
	}
}

func TestPlanZones_layout(t *testing.T) {
	for n := 2; n <= 60; n++ {
		for z := 1; z < n; z++ {
			zones, err := PlanZones(n, z)
			require.NoError(t, err)
			require.Len(t, zones, z)

			require.Equal(t, 0, zones[0].Start, "n=%d z=%d", n, z)
			require.Equal(t, n, zones[z-1].End(), "n=%d z=%d", n, z)

			lo, hi := zones[0].Len, zones[0].Len
			for i, zone := range zones {
				require.Equal(t, i, zone.Index)
				require.GreaterOrEqual(t, zone.Len, 2, "n=%d z=%d %s", n, z, zone)
				if i > 0 {
					// exactly one shared element with the previous zone
					require.Equal(t, zones[i-1].End()-1, zone.Start, "n=%d z=%d %s", n, z, zone)
					// sizes never grow towards the end of the array
					require.LessOrEqual(t, zone.Len, zones[i-1].Len)
				}
				lo, hi = min(lo, zone.Len), max(hi, zone.Len)
			}
			require.LessOrEqual(t, hi-lo, 1, "n=%d z=%d", n, z)
		}
	}
}

func TestZone_String(t *testing.T) {
	assert.Equal(t, `zone 2 [5,8)`, Zone{Index: 2, Start: 5, Len: 3}.String())
}
