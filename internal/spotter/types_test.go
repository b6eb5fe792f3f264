package spotter_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/manifest-network/animalspotter/internal/spotter"
)

func TestUnixSeconds(t *testing.T) {
	tt := []struct {
		name     string
		secs     float64
		expected time.Time
	}{
		{name: "epoch", secs: 0, expected: time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{name: "sighting", secs: 1476381432, expected: time.Date(2016, time.October, 13, 17, 57, 12, 0, time.UTC)},
		{name: "fractional", secs: 1476381432.5, expected: time.Date(2016, time.October, 13, 17, 57, 12, 500000000, time.UTC)},
		{name: "before epoch", secs: -86400, expected: time.Date(1969, time.December, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := spotter.UnixSeconds(tc.secs)
			require.NoError(t, err)
			require.True(t, tc.expected.Equal(actual), "expected %s, got %s", tc.expected, actual)
			require.Equal(t, time.UTC, actual.Location())
		})
	}
}

func TestUnixSeconds_OutOfRange(t *testing.T) {
	for _, secs := range []float64{1e300, -1e300, math.Inf(1), math.Inf(-1), math.NaN(), math.MaxInt64} {
		_, err := spotter.UnixSeconds(secs)
		require.Error(t, err, "%v", secs)
	}
}
