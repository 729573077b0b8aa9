package render

import (
	"testing"

	"github.com/katalvlaran/popcontrol/automaton"
	"github.com/katalvlaran/popcontrol/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildNFA() *automaton.Automaton {
	a := automaton.New([]string{"s"}, automaton.WithInitial("s"), automaton.WithAccepting("s"))
	a.AddTransition("s", "s", "a")
	return a
}

func TestRenderPlainIncludesAnswerAndStates(t *testing.T) {
	a := buildNFA()
	v := solver.SolveMaximalStrategy(a)

	out, err := Render(a, v, Plain, "")
	require.NoError(t, err)
	assert.Contains(t, out, "States: { s }")
	assert.Contains(t, out, "Answer: controllable")
}

func TestRenderCSVIncludesControllableHeader(t *testing.T) {
	a := buildNFA()
	v := solver.SolveMaximalStrategy(a)

	out, err := Render(a, v, CSV, "")
	require.NoError(t, err)
	assert.Contains(t, out, "controllable,K")
	assert.Contains(t, out, "true,1")
}

func TestRenderCSVIncludesStateHeaderRow(t *testing.T) {
	a := buildNFA()
	v := solver.SolveMaximalStrategy(a)

	out, err := Render(a, v, CSV, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Σ,s")
}

func TestRenderLatexEscapesOmegaAndNotesTikzSource(t *testing.T) {
	a := buildNFA()
	v := solver.SolveMaximalStrategy(a)

	out, err := Render(a, v, LaTeX, "bottleneck.tikz")
	require.NoError(t, err)
	assert.Contains(t, out, "Derived from TikZ input: bottleneck.tikz")
	assert.NotContains(t, out, "ω")
	assert.Contains(t, out, `\documentclass{article}`)
}

func TestRenderUnknownFormatErrors(t *testing.T) {
	a := buildNFA()
	v := solver.SolveMaximalStrategy(a)

	_, err := Render(a, v, Format("yaml"), "")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
