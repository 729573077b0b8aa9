package reorder

import (
	"sort"

	"github.com/katalvlaran/popcontrol/automaton"
)

// Kind selects one of the three state orderings.
type Kind string

const (
	Input        Kind = "input"
	Alphabetical Kind = "alphabetical"
	Topological  Kind = "topological"
)

// Apply returns a with its states reordered per kind. Input returns a
// unchanged. Alphabetical and Topological return a freshly built
// automaton with transitions/initial/accepting remapped to the new
// state indices.
func Apply(a *automaton.Automaton, kind Kind) *automaton.Automaton {
	switch kind {
	case Alphabetical:
		return applyOrder(a, alphabeticalOrder(a))
	case Topological:
		return applyOrder(a, topologicalOrder(a))
	default:
		return a
	}
}

// alphabeticalOrder returns old state indices sorted by label.
func alphabeticalOrder(a *automaton.Automaton) []int {
	states := a.States()
	order := make([]int, len(states))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return states[order[i]] < states[order[j]] })
	return order
}

// topologicalOrder ranks old state index i before j when i reaches j but
// j does not reach i; ties (mutual reachability, or neither reaches the
// other) fall back to alphabetical order. Reachability is computed as a
// fixpoint closure over every transition, mirroring
// original_source/src/nfa.rs's sort_states_topologically.
func topologicalOrder(a *automaton.Automaton) []int {
	n := a.N()
	states := a.States()
	transitions := a.Transitions()

	reaches := make([]map[int]struct{}, n)
	for i := range reaches {
		reaches[i] = map[int]struct{}{i: {}}
	}
	for {
		changed := false
		for _, t := range transitions {
			for _, set := range reaches {
				if _, ok := set[t.From]; ok {
					if _, ok := set[t.To]; !ok {
						set[t.To] = struct{}{}
						changed = true
					}
				}
			}
		}
		if !changed {
			break
		}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(ii, jj int) bool {
		i, j := order[ii], order[jj]
		_, iReachesJ := reaches[i][j]
		_, jReachesI := reaches[j][i]
		switch {
		case iReachesJ && jReachesI:
			return states[i] < states[j]
		case iReachesJ:
			return true
		case jReachesI:
			return false
		default:
			return states[i] < states[j]
		}
	})
	return order
}

// applyOrder builds a new automaton with states in order (order[k] is
// the old index of the state placed at new position k).
func applyOrder(a *automaton.Automaton, order []int) *automaton.Automaton {
	oldStates := a.States()
	initial := toSet(a.InitialStates())
	accepting := toSet(a.AcceptingStates())

	oldToNew := make([]int, len(order))
	newStates := make([]string, len(order))
	for newIdx, oldIdx := range order {
		oldToNew[oldIdx] = newIdx
		newStates[newIdx] = oldStates[oldIdx]
	}

	next := automaton.New(newStates)
	for oldIdx := range initial {
		next.MarkInitial(newStates[oldToNew[oldIdx]])
	}
	for oldIdx := range accepting {
		next.MarkAccepting(newStates[oldToNew[oldIdx]])
	}
	for _, t := range a.Transitions() {
		next.AddTransition(newStates[oldToNew[t.From]], newStates[oldToNew[t.To]], t.Letter)
	}
	return next
}

func toSet(xs []int) map[int]struct{} {
	out := make(map[int]struct{}, len(xs))
	for _, x := range xs {
		out[x] = struct{}{}
	}
	return out
}
