package calculate

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumwatshade/offcalc/cmd/calcerr"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m *Model)
		kind    Kind
		summary string
	}{
		{
			name:    "cylinder estimated",
			kind:    KindCylinder,
			setup:   func(m *Model) { m.mass, m.diameter = "1000", "10" },
			summary: "cylinder Tn = 8.2 s",
		},
		{
			name:    "cylinder explicit added mass",
			kind:    KindCylinder,
			setup:   func(m *Model) { m.mass, m.diameter, m.addedMass = "1000", "10", "341.7" },
			summary: "cylinder Tn = 8.2 s",
		},
		{
			name:    "barge estimated",
			kind:    KindBarge,
			setup:   func(m *Model) { m.mass, m.width, m.draft, m.length = "8200", "20", "5", "80" },
			summary: "barge Tn = 10.3 s",
		},
		{
			name:    "chain",
			kind:    KindChain,
			setup:   func(m *Model) { m.quality, m.chainDiameter = "R3", "100" },
			summary: "R3 studless 100mm MBL = 8028 kN",
		},
		{
			name:    "hex encode",
			kind:    KindHex,
			setup:   func(m *Model) { m.hexText = "Sevan" },
			summary: "encoded 536576616e",
		},
		{
			name:    "hex decode",
			kind:    KindHex,
			setup:   func(m *Model) { m.hexMode, m.hexText = "decode", "536576616e" },
			summary: "decoded Sevan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(tt.kind)
			tt.setup(m)
			e, err := m.compute()
			require.NoError(t, err)
			assert.Equal(t, tt.summary, e.Summary)
			assert.Equal(t, string(tt.kind), e.Kind)
			assert.NotEmpty(t, e.ID)
		})
	}
}

func TestCompute_Invalid(t *testing.T) {
	m := NewModel(KindCylinder)
	m.mass, m.diameter = "1000", "0"
	_, err := m.compute()
	assert.ErrorIs(t, err, calcerr.ErrInvalidArgument)

	m = NewModel(KindBarge)
	m.mass, m.width, m.draft, m.length = "8200", "20", "five", "80"
	_, err = m.compute()
	assert.ErrorIs(t, err, calcerr.ErrInvalidArgument)

	m = NewModel(KindHex)
	m.hexMode, m.hexText = "decode", "xyz"
	_, err = m.compute()
	assert.ErrorIs(t, err, calcerr.ErrInvalidArgument)
}

func TestWithChainDefaults(t *testing.T) {
	m := NewModel(KindChain, WithChainDefaults("r4s", true))
	assert.Equal(t, "R4S", m.quality)
	assert.True(t, m.stud)

	m = NewModel(KindChain, WithChainDefaults("R9", false))
	assert.Equal(t, "R3", m.quality)
}

func TestValidators(t *testing.T) {
	assert.Error(t, requiredFloat(""))
	assert.Error(t, requiredFloat("abc"))
	assert.NoError(t, requiredFloat(" 12.5 "))
	assert.NoError(t, optionalFloat(""))
	assert.Error(t, optionalFloat("1,5"))
}

func TestUpdateModel_ResetAfterCompletion(t *testing.T) {
	m := NewModel(KindBarge)
	m.mass, m.width, m.draft, m.length = "8200", "20", "5", "80"
	m.completed = true
	m.entry, m.err = m.compute()
	require.True(t, m.IsDoneAndUnrecorded())

	m.MarkRecorded()
	assert.False(t, m.IsDoneAndUnrecorded())
	assert.Contains(t, View(m), "10.3 s")

	next, _ := UpdateModel(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotSame(t, m, next)
	assert.Equal(t, KindBarge, next.Kind())
	assert.False(t, next.completed)
	assert.Empty(t, next.mass)
}

func TestView_Error(t *testing.T) {
	m := NewModel(KindCylinder)
	m.mass, m.diameter = "1000", "-2"
	m.completed = true
	m.entry, m.err = m.compute()

	assert.False(t, m.IsDoneAndUnrecorded())
	assert.Contains(t, View(m), "diameter must be positive")
}
