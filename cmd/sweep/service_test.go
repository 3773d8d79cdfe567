package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumwatshade/offcalc/cmd/calcerr"
	"github.com/sumwatshade/offcalc/cmd/floater"
)

func TestRun_CylinderDiameter(t *testing.T) {
	pts, err := Run(CylinderDiameter(1000), 5, 15, 11)
	require.NoError(t, err)
	require.Len(t, pts, 11)

	assert.Equal(t, 5.0, pts[0].X)
	assert.Equal(t, 15.0, pts[10].X)
	assert.Equal(t, 10.0, pts[5].X)
	assert.Equal(t, 8.2, pts[5].Period)

	// a wider waterplane stiffens heave faster than Lamb's added mass grows
	// over this range, so the period falls
	assert.Greater(t, pts[0].Period, pts[10].Period)
}

func TestRun_BargeLength(t *testing.T) {
	build, err := BargeDimension(8200, floater.Dimensions{Width: 20, Draft: 5, Length: 80}, "length")
	require.NoError(t, err)

	pts, err := Run(build, 40, 80, 3)
	require.NoError(t, err)
	require.Len(t, pts, 3)
	assert.Equal(t, 10.3, pts[2].Period)
}

func TestRun_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		n        int
	}{
		{"single point", 1, 10, 1},
		{"reversed range", 10, 1, 5},
		{"zero start", 0, 10, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(CylinderDiameter(1000), tt.from, tt.to, tt.n)
			assert.ErrorIs(t, err, calcerr.ErrInvalidArgument)
		})
	}
}

func TestRun_PropagatesBuilderError(t *testing.T) {
	_, err := Run(CylinderDiameter(-1), 5, 15, 3)
	assert.ErrorIs(t, err, calcerr.ErrInvalidArgument)
}

func TestBargeDimension_Invalid(t *testing.T) {
	_, err := BargeDimension(8200, floater.Dimensions{Width: 20, Draft: 5, Length: 80}, "diameter")
	assert.ErrorIs(t, err, calcerr.ErrInvalidArgument)
}

func TestView(t *testing.T) {
	pts, err := Run(CylinderDiameter(1000), 5, 15, 6)
	require.NoError(t, err)

	out := View(pts, "diameter", 40, 10)
	assert.Contains(t, out, "Heave natural period vs diameter")
	assert.Contains(t, out, "5.0-15.0 m")

	assert.Contains(t, View(pts[:1], "diameter", 40, 10), "Insufficient sweep points")
}

func TestView_FlatSweepLegend(t *testing.T) {
	pts := []Point{{X: 1, Period: 8.2}, {X: 2, Period: 8.2}, {X: 3, Period: 8.2}}

	out := View(pts, "length", 40, 10)
	assert.Contains(t, out, "min 8.2 s / max 8.2 s")
}

func TestBargeDimension_RejectsDiameter(t *testing.T) {
	build, err := BargeDimension(8200, floater.Dimensions{Diameter: 10, Width: 20, Draft: 5}, "length")
	require.NoError(t, err)

	_, err = Run(build, 40, 80, 3)
	assert.ErrorIs(t, err, calcerr.ErrInvalidArgument)
}
