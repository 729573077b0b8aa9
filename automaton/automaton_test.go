package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreateAndMark mirrors original_source/src/nfa.rs's create test.
func TestCreateAndMark(t *testing.T) {
	a := New([]string{"toto", "titi"})
	a.AddTransition("toto", "titi", "label1")
	a.AddTransition("titi", "toto", "label2")
	a.MarkInitial("toto")
	a.MarkAccepting("titi")

	assert.Equal(t, 2, a.N())
	assert.Equal(t, []int{0}, a.InitialStates())
	assert.Equal(t, []int{1}, a.AcceptingStates())
}

// TestAlphabetOrderAndParity mirrors original_source/src/nfa.rs's parity
// test: a 2-state automaton with 'a' and 'b' self/cross loops.
func TestAlphabetOrderAndParity(t *testing.T) {
	a := New([]string{"0", "1"})
	a.AddTransition("0", "1", "a")
	a.AddTransition("1", "0", "a")
	a.AddTransition("0", "0", "b")
	a.AddTransition("1", "1", "b")
	a.MarkInitial("0")
	a.MarkAccepting("0")

	assert.Equal(t, []string{"a", "b"}, a.Alphabet())
	assert.Equal(t, []int{1}, a.Successors(0, "a"))
}

func TestDuplicateLabelsCollapse(t *testing.T) {
	a := New([]string{"x", "y", "x"})
	assert.Equal(t, 2, a.N())
}

func TestUnknownStatePanics(t *testing.T) {
	a := New([]string{"x"})
	assert.Panics(t, func() { a.AddTransition("x", "nope", "a") })
}

func TestIsCompleteAndComplete(t *testing.T) {
	a := New([]string{"0", "1"})
	a.AddTransition("0", "1", "a")
	// state 1 has no 'a'-successor: incomplete.
	assert.False(t, a.IsComplete())

	completed, addedStates, addedTransitions := a.Complete()
	require.Equal(t, 1, addedStates)
	assert.Greater(t, addedTransitions, 0)
	assert.True(t, completed.IsComplete())
	assert.Equal(t, 3, completed.N())
}

func TestCompleteIsNoOpWhenAlreadyComplete(t *testing.T) {
	a := New([]string{"0"})
	a.AddTransition("0", "0", "a")
	require.True(t, a.IsComplete())
	completed, addedStates, addedTransitions := a.Complete()
	assert.Equal(t, 0, addedStates)
	assert.Equal(t, 0, addedTransitions)
	assert.Same(t, a, completed)
}

func TestGetEdges(t *testing.T) {
	a := New([]string{"0", "1"})
	a.AddTransition("0", "1", "a")
	a.AddTransition("1", "0", "b")
	edges := a.GetEdges()
	require.Contains(t, edges, "a")
	require.Contains(t, edges, "b")
	assert.Equal(t, []int{1}, edges["a"].Successors(0))
}
