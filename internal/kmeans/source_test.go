package kmeans

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSourceMatchesSubtractiveSequence(t *testing.T) {
	tests := []struct {
		seed int32
		want []int
	}{
		{0, []int{1559595546, 1755192844, 1649316166}},
		{42, []int{1434747710, 302596119, 269548474}},
	}

	for _, tt := range tests {
		s := NewSource(tt.seed).(*subtractiveSource)
		got := make([]int, len(tt.want))
		for i := range got {
			got[i] = s.next()
		}
		assert.Equal(t, tt.want, got, "seed %d", tt.seed)
	}
}

func TestNewSourceIntN(t *testing.T) {
	s := NewSource(0)
	got := make([]int, 6)
	for i := range got {
		got[i] = s.IntN(2)
	}
	assert.Equal(t, []int{1, 1, 1, 1, 0, 1}, got)
}

func TestNewSourceNegativeSeedMirrorsPositive(t *testing.T) {
	a, b := NewSource(7), NewSource(-7)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000), "draw %d", i)
	}
}

func TestNewSourceStaysInRange(t *testing.T) {
	for _, seed := range []int32{math.MinInt32, -1, 0, math.MaxInt32} {
		s := NewSource(seed)
		for i := 0; i < 500; i++ {
			v := s.IntN(5)
			assert.True(t, v >= 0 && v < 5, "seed %d draw %d = %d", seed, i, v)
		}
	}
}
