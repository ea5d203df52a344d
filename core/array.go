package core

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// MaxValue is the default upper bound (inclusive) of generated elements.
const MaxValue = 55

// NewRand returns a generator seeded with seed, or with the current time if
// seed is zero.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Fill sets every element of tab to a uniform integer in [0, max].
func Fill(tab []int, max int, rng *rand.Rand) {
	for i := range tab {
		tab[i] = rng.Intn(max + 1)
	}
}

// WriteArray writes tab as |a|b|c| followed by a newline.
func WriteArray(w io.Writer, tab []int) error {
	bw := bufio.NewWriter(w)
	for _, v := range tab {
		bw.WriteByte('|')
		bw.WriteString(strconv.Itoa(v))
	}
	bw.WriteString("|\n")
	return bw.Flush()
}

// ParseArray reads the format written by WriteArray. Surrounding whitespace
// and the outer separators are optional.
func ParseArray(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "|")
	s = strings.TrimSuffix(s, "|")
	if s == "" {
		return nil, nil
	}

	fields := strings.Split(s, "|")
	tab := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		tab[i] = v
	}
	return tab, nil
}
