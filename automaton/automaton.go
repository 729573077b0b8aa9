package automaton

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/popcontrol/digraph"
)

// Transition is a single (from, letter, to) arc.
type Transition struct {
	From   int
	Letter string
	To     int
}

// NFAAdapter is the interface the solver and ioformat readers program
// against (spec.md §6): n, states, alphabet, per-letter successor lookup,
// initial/accepting sets, completeness check, and completion.
type NFAAdapter interface {
	N() int
	States() []string
	Alphabet() []string
	Successors(state int, letter string) []int
	InitialStates() []int
	AcceptingStates() []int
	GetEdges() map[string]*digraph.Graph
	IsComplete() bool
	Complete() (NFAAdapter, int, int)
}

// Automaton is the concrete NFAAdapter: (S, Σ, Δ, I, F) with n=|S|.
// Safe for concurrent reads; mutation happens only during construction,
// guarded by mu following the teacher's RWMutex-guarded-graph discipline
// (core.Graph in the teacher repo).
type Automaton struct {
	mu          sync.RWMutex
	states      []string
	index       map[string]int
	initial     map[int]struct{}
	accepting   map[int]struct{}
	transitions []Transition
	alphabet    []string
	alphabetSet map[string]struct{}
}

// Option configures an Automaton at construction time, following the
// teacher's functional-options convention (core.GraphOption).
type Option func(*Automaton)

// WithInitial marks label as an initial state. Panics via ErrUnknownState
// (wrapped) if label was not passed to New.
func WithInitial(label string) Option {
	return func(a *Automaton) { a.MarkInitial(label) }
}

// WithAccepting marks label as an accepting state.
func WithAccepting(label string) Option {
	return func(a *Automaton) { a.MarkAccepting(label) }
}

// New builds an Automaton over the given state labels (duplicates
// collapse to one state, per spec.md §6's TikZ reader convention:
// "States with the same label collapse into one").
func New(states []string, opts ...Option) *Automaton {
	a := &Automaton{
		index:       make(map[string]int),
		initial:     make(map[int]struct{}),
		accepting:   make(map[int]struct{}),
		alphabetSet: make(map[string]struct{}),
	}
	for _, label := range states {
		a.internState(label)
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Automaton) internState(label string) int {
	if i, ok := a.index[label]; ok {
		return i
	}
	i := len(a.states)
	a.states = append(a.states, label)
	a.index[label] = i
	return i
}

func (a *Automaton) stateIndex(label string) int {
	i, ok := a.index[label]
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownState, label))
	}
	return i
}

// AddTransition adds an arc between two registered state labels.
func (a *Automaton) AddTransition(from, to, letter string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	t := Transition{From: a.stateIndex(from), Letter: letter, To: a.stateIndex(to)}
	a.transitions = append(a.transitions, t)
	if _, ok := a.alphabetSet[letter]; !ok {
		a.alphabetSet[letter] = struct{}{}
		a.alphabet = append(a.alphabet, letter)
	}
}

// MarkInitial marks label as an initial state.
func (a *Automaton) MarkInitial(label string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.initial[a.stateIndex(label)] = struct{}{}
}

// MarkAccepting marks label as an accepting state.
func (a *Automaton) MarkAccepting(label string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.accepting[a.stateIndex(label)] = struct{}{}
}

// N returns the state count (spec.md §3's n).
func (a *Automaton) N() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.states)
}

// States returns the state labels in index order.
func (a *Automaton) States() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]string, len(a.states))
	copy(out, a.states)
	return out
}

// Alphabet returns the letters in first-seen order (mirrors
// original_source/src/nfa.rs's get_alphabet, which preserves transition
// insertion order rather than sorting).
func (a *Automaton) Alphabet() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]string, len(a.alphabet))
	copy(out, a.alphabet)
	return out
}

// Successors returns the distinct targets reachable from state under
// letter, in ascending order.
func (a *Automaton) Successors(state int, letter string) []int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.GetSupport(letter).Successors(state)
}

// InitialStates returns the initial state indices, ascending.
func (a *Automaton) InitialStates() []int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return sortedKeys(a.initial)
}

// AcceptingStates returns the accepting state indices, ascending.
func (a *Automaton) AcceptingStates() []int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return sortedKeys(a.accepting)
}

// Transitions returns every (from, letter, to) arc in insertion order.
func (a *Automaton) Transitions() []Transition {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]Transition, len(a.transitions))
	copy(out, a.transitions)
	return out
}

// GetSupport builds the per-letter support graph E_a = {(i,j) :
// (i,a,j)∈Δ} (spec.md §4.6).
func (a *Automaton) GetSupport(letter string) *digraph.Graph {
	var edges []digraph.Edge
	for _, t := range a.transitions {
		if t.Letter == letter {
			edges = append(edges, digraph.Edge{From: t.From, To: t.To})
		}
	}
	return digraph.New(len(a.states), edges)
}

// GetEdges returns the per-letter support graph for every letter in the
// alphabet (spec.md §2's "the NFA (C10) yields per-letter graphs (C4)").
func (a *Automaton) GetEdges() map[string]*digraph.Graph {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make(map[string]*digraph.Graph, len(a.alphabet))
	for _, letter := range a.alphabet {
		out[letter] = a.GetSupport(letter)
	}
	return out
}

// IsComplete reports whether every (state, letter) pair has at least one
// successor.
func (a *Automaton) IsComplete() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, letter := range a.alphabet {
		g := a.GetSupport(letter)
		for s := 0; s < len(a.states); s++ {
			if len(g.Successors(s)) == 0 {
				return false
			}
		}
	}
	return true
}

// Complete returns a completed copy: a fresh sink state ⊥ is added (if
// needed) and every missing (state, letter) transition is routed to it.
// Returns the completed adapter plus the number of added states and
// transitions (spec.md §6's complete() contract).
func (a *Automaton) Complete() (NFAAdapter, int, int) {
	a.mu.RLock()
	states := append([]string(nil), a.states...)
	alphabet := append([]string(nil), a.alphabet...)
	transitions := append([]Transition(nil), a.transitions...)
	initial := sortedKeys(a.initial)
	accepting := sortedKeys(a.accepting)
	a.mu.RUnlock()

	supports := make(map[string]*digraph.Graph, len(alphabet))
	for _, letter := range alphabet {
		var edges []digraph.Edge
		for _, t := range transitions {
			if t.Letter == letter {
				edges = append(edges, digraph.Edge{From: t.From, To: t.To})
			}
		}
		supports[letter] = digraph.New(len(states), edges)
	}

	missing := make([][]int, len(states)) // missing[s] = letters (by index) with no successor
	anyMissing := false
	for s := range states {
		for li, letter := range alphabet {
			if len(supports[letter].Successors(s)) == 0 {
				missing[s] = append(missing[s], li)
				anyMissing = true
			}
		}
	}
	if !anyMissing {
		return a, 0, 0
	}

	sinkLabel := freshSinkLabel(states)
	next := New(append(states, sinkLabel))
	next.alphabet = alphabet
	for _, letter := range alphabet {
		next.alphabetSet[letter] = struct{}{}
	}
	for _, t := range transitions {
		next.transitions = append(next.transitions, t)
	}
	for _, i := range initial {
		next.initial[i] = struct{}{}
	}
	for _, i := range accepting {
		next.accepting[i] = struct{}{}
	}

	sinkIdx := len(states)
	addedTransitions := 0
	for s, letterIdxs := range missing {
		for _, li := range letterIdxs {
			next.transitions = append(next.transitions, Transition{From: s, Letter: alphabet[li], To: sinkIdx})
			addedTransitions++
		}
	}
	// The sink must loop on every letter to stay complete.
	for _, letter := range alphabet {
		next.transitions = append(next.transitions, Transition{From: sinkIdx, Letter: letter, To: sinkIdx})
		addedTransitions++
	}

	return next, 1, addedTransitions
}

func freshSinkLabel(existing []string) string {
	taken := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		taken[s] = struct{}{}
	}
	candidate := "⊥" // ⊥
	for {
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
		candidate += "'"
	}
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
