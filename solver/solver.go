package solver

import (
	"github.com/katalvlaran/popcontrol/automaton"
	"github.com/katalvlaran/popcontrol/coef"
	"github.com/katalvlaran/popcontrol/digraph"
	"github.com/katalvlaran/popcontrol/flowmat"
	"github.com/katalvlaran/popcontrol/ideal"
	"github.com/katalvlaran/popcontrol/semigroup"
	"github.com/katalvlaran/popcontrol/strategy"
)

// Verdict is the outcome of a solve: whether the controller wins, the
// last strategy computed (maximal in controllable runs, best-effort
// otherwise), and the K bound that witnessed it. Grounded on
// original_source/src/solution.rs's Solution, trimmed to drop the NFA
// back-reference and LaTeX rendering (those live in ioformat/render).
type Verdict struct {
	Controllable bool
	Strategy     *strategy.Strategy
	K            int
}

// String renders the teacher's Display phrasing (solution.rs: "Answer:
// controllable"/"uncontrollable"), followed by the witnessing strategy.
func (v *Verdict) String() string {
	label := "uncontrollable"
	if v.Controllable {
		label = "controllable"
	}
	return "Answer: " + label + "\nMaximal winning strategy:\n" + v.Strategy.String()
}

// SolveMaximalStrategy runs the fixed-point loop once at K=n (spec.md
// §4.8's maximal-strategy mode): the returned Verdict.Strategy is the
// largest strategy consistent with a K=n-bounded analysis, whether or
// not the initial configuration is actually won by it.
func SolveMaximalStrategy(nfa automaton.NFAAdapter) *Verdict {
	complete, _, _ := ensureComplete(nfa)
	dim := complete.N()
	letters := complete.Alphabet()
	source := omegaIdeal(dim, complete.InitialStates())
	accepting := complete.AcceptingStates()

	if len(letters) == 0 {
		target := omegaIdeal(dim, accepting)
		return &Verdict{Controllable: ideal.LessEqual(source, target), Strategy: strategy.GetMaximal(dim, nil), K: dim}
	}

	edges := complete.GetEdges()
	ok, sigma := runFixedPoint(dim, letters, edges, source, accepting, dim)
	return &Verdict{Controllable: ok, Strategy: sigma, K: dim}
}

// SolveYesNo decides controllability (spec.md §4.8's yes/no mode):
// sweeps K=1,...,n-1 looking for the smallest bound that already wins,
// falling back to the decisive K=n check (sufficient by the
// small-constants property) when no smaller bound succeeds.
func SolveYesNo(nfa automaton.NFAAdapter) *Verdict {
	complete, _, _ := ensureComplete(nfa)
	dim := complete.N()
	letters := complete.Alphabet()
	source := omegaIdeal(dim, complete.InitialStates())
	accepting := complete.AcceptingStates()

	if len(letters) == 0 {
		target := omegaIdeal(dim, accepting)
		return &Verdict{Controllable: ideal.LessEqual(source, target), Strategy: strategy.GetMaximal(dim, nil), K: dim}
	}

	edges := complete.GetEdges()
	for k := 1; k < dim; k++ {
		ok, sigma := runFixedPoint(dim, letters, edges, source, accepting, k)
		if ok {
			return &Verdict{Controllable: true, Strategy: sigma, K: k}
		}
	}
	ok, sigma := runFixedPoint(dim, letters, edges, source, accepting, dim)
	return &Verdict{Controllable: ok, Strategy: sigma, K: dim}
}

// ensureComplete completes nfa if needed, mirroring spec.md §4.8's "missing
// transitions are completed to a fresh sink before solving".
func ensureComplete(nfa automaton.NFAAdapter) (automaton.NFAAdapter, int, int) {
	if nfa.IsComplete() {
		return nfa, 0, 0
	}
	return nfa.Complete()
}

// omegaIdeal returns the n-vector with Omega at each index in indices and
// Zero elsewhere (original_source/src/solver.rs's get_omega_sheep).
func omegaIdeal(dim int, indices []int) ideal.Ideal {
	out := ideal.New(dim, coef.Zero)
	for _, i := range indices {
		out = out.Set(i, coef.Omega)
	}
	return out
}

// runFixedPoint runs the inner loop shared by both solve modes (spec.md
// §4.8): repeatedly build flows from the current strategy, close them
// into a FlowSemigroup bounded by k, compute the winning downset, and
// restrict the strategy to its safe pre-image, until either the
// strategy stops changing (ok reflects whether source is still covered)
// or the strategy becomes undefined on source (ok=false, stop early).
// Grounded directly on original_source/src/solver.rs's solve loop
// ("while result { ...; if !changed break; result =
// is_defined_on(source) }"), which this function subsumes for both the
// fixed-K=n and swept-K callers since the original has no K parameter at
// all.
func runFixedPoint(dim int, letters []string, edgesPerLetter map[string]*digraph.Graph, source ideal.Ideal, accepting []int, k int) (bool, *strategy.Strategy) {
	sigma := strategy.GetMaximal(dim, letters)
	target := omegaIdeal(dim, accepting)

	for {
		flows := collectFlows(sigma, edgesPerLetter)
		sg := semigroup.Compute(flows, k)
		dwin := sg.GetPathProblemSolution(accepting)
		dwin.Insert(target)
		dwin.RoundDown(k)
		dwin.Minimize()

		changed := sigma.RestrictTo(dwin, edgesPerLetter, k)
		if !changed {
			return sigma.IsDefinedOn(source), sigma
		}
		if !sigma.IsDefinedOn(source) {
			return false, sigma
		}
	}
}

// collectFlows enumerates every flow FromDomainAndEdges yields for each
// (letter, ideal-in-that-letter's-downset) pair
// (original_source/src/solver.rs's compute_action_flows),
// deduplicated by Flow.Key since distinct ideals can yield identical
// flows.
func collectFlows(sigma *strategy.Strategy, edgesPerLetter map[string]*digraph.Graph) []flowmat.Flow {
	seen := make(map[string]struct{})
	var out []flowmat.Flow
	for _, a := range sigma.Letters() {
		g := edgesPerLetter[a]
		for _, id := range sigma.DownSetFor(a).Ideals() {
			for _, f := range flowmat.FromDomainAndEdges(id, g) {
				key := f.Key()
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				out = append(out, f)
			}
		}
	}
	return out
}
