package scaling

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumwatshade/offcalc/cmd/calcerr"
)

func TestFroudeMultiplier(t *testing.T) {
	tests := []struct {
		name                 string
		value, scale, factor float64
		want                 float64
	}{
		{"length", 0.1, 60, 1, 6},
		{"angle", 10.832, 60, 0, 10.832},
		{"force", 0.0234897, 60, 3, 5073.7752},
		{"moment", 0.000864635, 60, 4, 11205.6696},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, FroudeMultiplier(tt.value, tt.scale, tt.factor), 1e-6)
		})
	}
}

func TestScale(t *testing.T) {
	rows, err := Scale(DefaultChannels(), 60)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	heave := rows[0]
	assert.Equal(t, "Heave", heave.Name)
	assert.InDelta(t, 6.0, heave.Max, 1e-9)
	assert.InDelta(t, -5.88, heave.Min, 1e-9)
	assert.Equal(t, 60.0, heave.Scale)

	moment := rows[3]
	assert.Equal(t, 4.0, moment.Factor)
	assert.InDelta(t, 11205.6696, moment.Max, 1e-6)

	// the input is left untouched
	assert.Equal(t, 0.1, DefaultChannels()[0].Max)
}

func TestScale_InvalidDiameter(t *testing.T) {
	for _, d := range []float64{0, -60} {
		_, err := Scale(DefaultChannels(), d)
		assert.ErrorIs(t, err, calcerr.ErrInvalidArgument)
	}
}

func TestRenderPlain(t *testing.T) {
	rows, err := Scale(DefaultChannels(), 60)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(RenderPlain(rows), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "# Name"))
	assert.Contains(t, lines[1], "Heave")
	assert.Contains(t, lines[1], "6.00")
	assert.Contains(t, lines[4], "11205.67")
	assert.Contains(t, lines[5], "5073.78")
}

func TestRender(t *testing.T) {
	rows, err := Scale(DefaultChannels(), 60)
	require.NoError(t, err)

	out := Render(rows)
	for _, want := range []string{"Name", "Bilge box bending moment", "11205.67", "-5.88"} {
		assert.Contains(t, out, want)
	}
}
