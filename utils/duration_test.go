package utils

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		name  string
		in    int64
		want  Decomposed
		clock string
	}{
		{"zero", 0, Decomposed{0, 0, 0}, "0:00:00"},
		{"one second", 1, Decomposed{0, 0, 1}, "0:00:01"},
		{"one minute", 60, Decomposed{0, 1, 0}, "0:01:00"},
		{"just under an hour", 3599, Decomposed{0, 59, 59}, "0:59:59"},
		{"one hour", 3600, Decomposed{1, 0, 0}, "1:00:00"},
		{"first sample", 3672, Decomposed{1, 1, 12}, "1:01:12"},
		{"second sample", 5000, Decomposed{1, 23, 20}, "1:23:20"},
		{"over a day", 90061, Decomposed{25, 1, 1}, "25:01:01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decompose(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.clock, got.Clock())
		})
	}
}

func TestDecomposeInvariants(t *testing.T) {
	inputs := []int64{0, 1, 59, 61, 3599, 3601, 86399, 86400, 123456789, math.MaxInt64}
	for s := int64(0); s < 7300; s += 7 {
		inputs = append(inputs, s)
	}
	for _, s := range inputs {
		d, err := Decompose(s)
		require.NoError(t, err)
		assert.Equal(t, s, d.Total(), "recombined total for %d", s)
		assert.True(t, d.Minutes >= 0 && d.Minutes < 60, "minutes out of range for %d: %d", s, d.Minutes)
		assert.True(t, d.Seconds >= 0 && d.Seconds < 60, "seconds out of range for %d: %d", s, d.Seconds)
		assert.GreaterOrEqual(t, d.Hours, int64(0))

		again, err := Decompose(s)
		require.NoError(t, err)
		assert.Equal(t, d, again)
	}
}

func TestDecomposeNegative(t *testing.T) {
	for _, s := range []int64{-1, -3600, math.MinInt64} {
		d, err := Decompose(s)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
		assert.Zero(t, d)
	}
}
