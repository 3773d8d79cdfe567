package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumwatshade/offcalc/cmd/calcerr"
	"github.com/sumwatshade/offcalc/cmd/calculate"
)

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir()) // keep a developer's ~/.offcalc.yaml out of tests

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestPeriodCylinder(t *testing.T) {
	out, _, err := run(t, "period", "cylinder", "--mass", "1000", "--diameter", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "8.2 s")
	assert.Contains(t, out, "341.7 t")
	assert.Contains(t, out, "(Lamb)")
}

func TestPeriodCylinder_ExplicitZeroAddedMass(t *testing.T) {
	out, _, err := run(t, "period", "cylinder", "--mass", "1000", "--diameter", "10", "--added-mass", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "0.0 t")
	assert.NotContains(t, out, "(Lamb)")
}

func TestPeriodBarge(t *testing.T) {
	out, _, err := run(t, "period", "barge", "--mass", "8200", "--width", "20", "--draft", "5", "--length", "80")
	require.NoError(t, err)
	assert.Contains(t, out, "10.3 s")
	assert.Contains(t, out, "1600.00")
}

func TestPeriodExplicit(t *testing.T) {
	_, _, err := run(t, "period", "explicit", "--mass", "1000", "--waterplane-area", "0", "--added-mass", "10")
	require.Error(t, err)
	assert.ErrorIs(t, err, calcerr.ErrInvalidArgument)
}

func TestPeriod_InvalidDimension(t *testing.T) {
	_, _, err := run(t, "period", "barge", "--mass", "8200", "--width", "0", "--draft", "5", "--length", "80")
	assert.ErrorIs(t, err, calcerr.ErrInvalidArgument)
}

func TestPeriodEstimate(t *testing.T) {
	out, _, err := run(t, "period", "estimate", "Cylinder", "--mass", "1000", "--diameter", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "8.2 s")

	out, _, err = run(t, "period", "estimate", "barge", "--mass", "8200", "--width", "20", "--draft", "5", "--length", "80")
	require.NoError(t, err)
	assert.Contains(t, out, "10.3 s")

	tests := []struct {
		name string
		args []string
	}{
		{"unknown geometry", []string{"square", "--mass", "1000", "--diameter", "10"}},
		{"cylinder with length", []string{"cylinder", "--mass", "1000", "--diameter", "10", "--length", "80"}},
		{"barge with diameter", []string{"barge", "--mass", "8200", "--diameter", "10", "--width", "20", "--draft", "5", "--length", "80"}},
		{"barge missing draft", []string{"barge", "--mass", "8200", "--width", "20", "--length", "80"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, append([]string{"period", "estimate"}, tt.args...)...)
			assert.ErrorIs(t, err, calcerr.ErrInvalidArgument)
		})
	}
}

func TestChain(t *testing.T) {
	out, _, err := run(t, "chain", "--quality", "r3", "--diameter", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "R3 studless")
	assert.Contains(t, out, "8028 kN")

	_, _, err = run(t, "chain", "--quality", "R6", "--diameter", "100")
	assert.ErrorIs(t, err, calcerr.ErrInvalidArgument)
}

func TestChain_ConfigDefaults(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "offcalc.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("chain:\n  quality: R4\n  stud: true\n"), 0o644))

	out, _, err := run(t, "--config", cfg, "chain", "--diameter", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "R4 studded")

	// flags win over the file
	out, _, err = run(t, "--config", cfg, "chain", "--diameter", "100", "--quality", "R5")
	require.NoError(t, err)
	assert.Contains(t, out, "R5 studded")
}

func TestMissingConfigFile(t *testing.T) {
	_, _, err := run(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "hex", "encode", "x")
	assert.Error(t, err)
}

func TestHex(t *testing.T) {
	out, _, err := run(t, "hex", "encode", "Sevan")
	require.NoError(t, err)
	assert.Equal(t, "536576616e\n", out)

	out, _, err = run(t, "hex", "decode", "536576616e")
	require.NoError(t, err)
	assert.Equal(t, "Sevan\n", out)

	_, _, err = run(t, "hex", "decode", "abc")
	assert.ErrorIs(t, err, calcerr.ErrInvalidArgument)
}

func TestScale(t *testing.T) {
	out, _, err := run(t, "scale", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "11205.67")

	out, _, err = run(t, "scale", "--plain", "--diameter", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "0.10")

	_, _, err = run(t, "scale", "--diameter", "0")
	assert.ErrorIs(t, err, calcerr.ErrInvalidArgument)
}

func TestSweep(t *testing.T) {
	out, _, err := run(t, "sweep", "cylinder", "--mass", "1000", "--from", "5", "--to", "15", "--points", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "Heave natural period vs diameter")

	out, _, err = run(t, "sweep", "barge", "--mass", "8200", "--width", "20", "--draft", "5", "--from", "40", "--to", "80")
	require.NoError(t, err)
	assert.Contains(t, out, "vs length")

	_, _, err = run(t, "sweep", "barge", "--mass", "8200", "--width", "20", "--draft", "5", "--length", "80", "--vary", "beam", "--from", "1", "--to", "2")
	assert.ErrorIs(t, err, calcerr.ErrInvalidArgument)
}

func TestVerboseLogging(t *testing.T) {
	_, stderr, err := run(t, "-v", "period", "cylinder", "--mass", "1000", "--diameter", "10")
	require.NoError(t, err)
	assert.Contains(t, stderr, "natural period in heave")
	assert.Contains(t, stderr, "run=")
}

func TestLoggerFromContext(t *testing.T) {
	assert.Same(t, charmlog.Default(), loggerFromContext(context.Background()))

	l := newLogger(&bytes.Buffer{}, charmlog.InfoLevel)
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
}

func TestModel_TabsAndHistory(t *testing.T) {
	m := initialModel(newApp())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(model)
	assert.Equal(t, calculate.KindCylinder, m.form.Kind())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	m = next.(model)
	assert.Equal(t, calculate.KindBarge, m.form.Kind())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	next, _ = next.(model).Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	m = next.(model)
	assert.Equal(t, calculate.KindHex, m.form.Kind())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	m = next.(model)
	assert.True(t, m.historyFocus)
	assert.Contains(t, m.View(), "No results yet")
}
