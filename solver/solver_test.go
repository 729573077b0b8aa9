package solver

import (
	"testing"

	"github.com/katalvlaran/popcontrol/automaton"
	"github.com/katalvlaran/popcontrol/coef"
	"github.com/katalvlaran/popcontrol/downset"
	"github.com/katalvlaran/popcontrol/ideal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolveMaximalStrategySingleLoopIsControllable builds a one-state
// automaton that is both initial and accepting, with a single letter
// looping on itself. The controller can always play that letter and
// stay in the accepting state forever, so the system is controllable
// regardless of K.
func TestSolveMaximalStrategySingleLoopIsControllable(t *testing.T) {
	a := automaton.New([]string{"s"}, automaton.WithInitial("s"), automaton.WithAccepting("s"))
	a.AddTransition("s", "s", "a")

	v := SolveMaximalStrategy(a)
	assert.True(t, v.Controllable)
	assert.Equal(t, 1, v.K)
	assert.True(t, v.Strategy.IsDefinedOn(omegaIdeal(1, []int{0})))
}

// TestSolveYesNoSingleLoopIsControllable mirrors the maximal-strategy
// case through the yes/no entry point.
func TestSolveYesNoSingleLoopIsControllable(t *testing.T) {
	a := automaton.New([]string{"s"}, automaton.WithInitial("s"), automaton.WithAccepting("s"))
	a.AddTransition("s", "s", "a")

	v := SolveYesNo(a)
	assert.True(t, v.Controllable)
}

// TestSolveEmptyAlphabetControllableWhenInitialIsAccepting covers
// spec.md §4.8's empty-alphabet edge case: no letters at all, so the
// verdict reduces to I ⊆ F.
func TestSolveEmptyAlphabetControllableWhenInitialIsAccepting(t *testing.T) {
	a := automaton.New([]string{"s"}, automaton.WithInitial("s"), automaton.WithAccepting("s"))
	v := SolveMaximalStrategy(a)
	assert.True(t, v.Controllable)
}

// TestSolveEmptyAlphabetUncontrollableWhenInitialIsNotAccepting covers
// the negative side of the same edge case: an initial state that is
// never accepting can never satisfy I ⊆ F with no letters available to
// move away from it.
func TestSolveEmptyAlphabetUncontrollableWhenInitialIsNotAccepting(t *testing.T) {
	a := automaton.New([]string{"s", "t"}, automaton.WithInitial("s"), automaton.WithAccepting("t"))
	v := SolveMaximalStrategy(a)
	assert.False(t, v.Controllable)
}

// TestSolveSingleLetterBranchIsUncontrollable builds a minimal bottleneck
// gadget: state 0 (initial, accepting) has a single available letter
// 'a', and 'a' nondeterministically branches to both 0 and 1 (1 is not
// accepting and, once completed, a dead end routed to the fresh sink).
// Since 'a' is the only letter, the controller cannot avoid playing it,
// and every play leaks population into the non-accepting branch forever
// — the system is uncontrollable regardless of what the semigroup
// closure computes, since no letter choice ever keeps the full
// population inside the accepting set.
func TestSolveSingleLetterBranchIsUncontrollable(t *testing.T) {
	a := automaton.New([]string{"0", "1"}, automaton.WithInitial("0"), automaton.WithAccepting("0"))
	a.AddTransition("0", "0", "a")
	a.AddTransition("0", "1", "a")

	v := SolveMaximalStrategy(a)
	require.NotNil(t, v)
	assert.False(t, v.Controllable)
}

// TestSolveMonoLetterPositive ports spec.md §8 scenario S4: 2 states,
// transitions {(0,a,0),(0,a,1),(1,a,1)}, I={0}, F={1}. Expected verdict
// controllable, with the maximal strategy's single letter left fully
// unrestricted at ↓{(ω,ω)}.
func TestSolveMonoLetterPositive(t *testing.T) {
	a := automaton.New([]string{"0", "1"}, automaton.WithInitial("0"), automaton.WithAccepting("1"))
	a.AddTransition("0", "0", "a")
	a.AddTransition("0", "1", "a")
	a.AddTransition("1", "1", "a")

	v := SolveMaximalStrategy(a)
	require.NotNil(t, v)
	assert.True(t, v.Controllable)

	want := downset.FromIdeals([]ideal.Ideal{ideal.New(2, coef.Omega)})
	assert.True(t, downset.Equal(v.Strategy.DownSetFor("a"), want))
}

// TestSolveMonoLetterNegative ports spec.md §8 scenario S5: 3 states,
// a-edges 0->1, 1->1, 0->2, 2->2, I={0}, F={2}. Expected verdict
// uncontrollable.
func TestSolveMonoLetterNegative(t *testing.T) {
	a := automaton.New([]string{"0", "1", "2"}, automaton.WithInitial("0"), automaton.WithAccepting("2"))
	a.AddTransition("0", "1", "a")
	a.AddTransition("1", "1", "a")
	a.AddTransition("0", "2", "a")
	a.AddTransition("2", "2", "a")

	v := SolveMaximalStrategy(a)
	require.NotNil(t, v)
	assert.False(t, v.Controllable)
}
