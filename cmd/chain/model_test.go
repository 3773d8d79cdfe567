package chain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumwatshade/offcalc/cmd/calcerr"
)

func TestParseQuality(t *testing.T) {
	tests := []struct {
		input   string
		want    Quality
		wantErr bool
	}{
		{"R3", R3, false},
		{"r3s", R3S, false},
		{"R4", R4, false},
		{" r4s", R4S, false},
		{"R5", R5, false},
		{"R6", "", true},
		{"", "", true},
		{"K3", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseQuality(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, calcerr.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_InvalidQuality(t *testing.T) {
	_, err := New("R6", false)
	require.ErrorIs(t, err, calcerr.ErrInvalidArgument)
	assert.Contains(t, err.Error(), `"R6"`)
}

func TestBreakingStrength(t *testing.T) {
	c, err := New("R3", false)
	require.NoError(t, err)

	got, err := c.BreakingStrength(0.1)
	require.NoError(t, err)
	want := 0.0223 * math.Pow(100, 2) * (44 - 0.08*100) * 1000
	assert.InDelta(t, want, got, 1e-6)
	assert.InDelta(t, 8_028_000.0, got, 1e-6)
}

func TestBreakingStrength_IncreasesWithQuality(t *testing.T) {
	prev := 0.0
	for _, q := range Qualities {
		c, err := New(string(q), true)
		require.NoError(t, err)
		mbl, err := c.BreakingStrength(0.076)
		require.NoError(t, err)
		assert.Greater(t, mbl, prev, "quality %s", q)
		prev = mbl
	}
}

func TestDryWeight(t *testing.T) {
	studless, err := New("R4", false)
	require.NoError(t, err)
	studded, err := New("R4", true)
	require.NoError(t, err)

	w, err := studless.DryWeight(0.1)
	require.NoError(t, err)
	assert.InDelta(t, 1962.0, w, 1e-9)

	w, err = studded.DryWeight(0.1)
	require.NoError(t, err)
	assert.InDelta(t, 2148.39, w, 1e-9)
}

func TestInvalidDiameter(t *testing.T) {
	c, err := New("R5", false)
	require.NoError(t, err)

	for _, d := range []float64{0, -0.1, math.NaN()} {
		_, err := c.BreakingStrength(d)
		assert.ErrorIs(t, err, calcerr.ErrInvalidArgument)
		_, err = c.DryWeight(d)
		assert.ErrorIs(t, err, calcerr.ErrInvalidArgument)
	}
}

func TestView(t *testing.T) {
	c, err := New("r3", true)
	require.NoError(t, err)
	out := View(c, 0.1)
	assert.Contains(t, out, "R3 studded")
	assert.Contains(t, out, "8028 kN")
}
