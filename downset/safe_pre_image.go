package downset

import (
	"context"
	"runtime"

	"github.com/katalvlaran/popcontrol/coef"
	"github.com/katalvlaran/popcontrol/digraph"
	"github.com/katalvlaran/popcontrol/ideal"
	"github.com/katalvlaran/popcontrol/memo"
	"golang.org/x/sync/errgroup"
)

// SafePreImage computes {x : every adversarial resolution of edges from x
// lands in d's downward closure}, rounding finite components of the
// resulting successor configuration that exceed k up to Omega (spec.md
// §4.3). An empty receiver or a zero-dimension graph yields the empty
// DownSet.
func (d *DownSet) SafePreImage(edges *digraph.Graph, k int) *DownSet {
	dim := edges.Dim()
	if dim == 0 || d.IsEmpty() {
		return New(dim)
	}

	members := d.Ideals()

	// is_omega_possible[i]: some member has Omega on every successor of i,
	// and i actually has successors.
	isOmegaPossible := make([]bool, dim)
	for i := 0; i < dim; i++ {
		succ := edges.Successors(i)
		if len(succ) == 0 {
			continue
		}
		for _, id := range members {
			if id.AllOmega(succ) {
				isOmegaPossible[i] = true
				break
			}
		}
	}

	// maxFiniteCoordsJ[j]: largest finite coordinate appearing at j across
	// members, treating Omega as k (it will be governed by
	// isOmegaPossible instead).
	maxFiniteCoordsJ := make([]int, dim)
	for j := 0; j < dim; j++ {
		best := 0
		for _, id := range members {
			if v := id.Get(j).IntOr(k); v > best {
				best = v
			}
		}
		maxFiniteCoordsJ[j] = best
	}

	maxFiniteCoordsI := make([]int, dim)
	for i := 0; i < dim; i++ {
		best := 0
		for _, j := range edges.Successors(i) {
			v := maxFiniteCoordsJ[j]
			if v > k {
				v = k
			}
			if v > best {
				best = v
			}
		}
		maxFiniteCoordsI[i] = best
	}

	// Candidate coefficients at axis i range over the full {0,...,maxFinite_i}
	// (not just its endpoint), unioned with {Omega} when omega is
	// admissible there — spec.md §4.3's "Candidate coefficients at axis i".
	possibleCoefs := make([][]coef.Coef, dim)
	for i := 0; i < dim; i++ {
		c := maxFiniteCoordsI[i]
		axis := make([]coef.Coef, 0, c+2)
		if isOmegaPossible[i] {
			axis = append(axis, coef.Omega)
		}
		for v := 0; v <= c; v++ {
			axis = append(axis, coef.Value(v))
		}
		possibleCoefs[i] = axis
	}

	candidates := memo.CoefCartesianProduct(possibleCoefs)

	safe := filterSafeCandidates(candidates, d, edges, k)

	result := New(dim)
	for _, c := range safe {
		result.Insert(c)
	}
	result.Minimize()
	return result
}

// filterSafeCandidates evaluates isSafeWithRoundup over candidates using a
// bounded worker pool (spec.md §5: "Safe-pre-image candidate filtering
// ... may be evaluated in parallel"). Each worker is a pure function of
// its candidate; results are merged by the caller, never by a worker.
func filterSafeCandidates(candidates []ideal.Ideal, d *DownSet, edges *digraph.Graph, k int) []ideal.Ideal {
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	if workers > len(candidates) {
		workers = len(candidates)
	}
	if workers <= 1 {
		var out []ideal.Ideal
		for _, c := range candidates {
			if d.isSafeWithRoundup(c, edges, k) {
				out = append(out, c)
			}
		}
		return out
	}

	keep := make([]bool, len(candidates))
	g, _ := errgroup.WithContext(context.Background())
	chunk := (len(candidates) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if start >= len(candidates) {
			break
		}
		if end > len(candidates) {
			end = len(candidates)
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				keep[i] = d.isSafeWithRoundup(candidates[i], edges, k)
			}
			return nil
		})
	}
	_ = g.Wait()

	var out []ideal.Ideal
	for i, ok := range keep {
		if ok {
			out = append(out, candidates[i])
		}
	}
	return out
}

// isSafeWithRoundup reports whether playing candidate is safe: no mass on
// a state with no successors, and every successor configuration reachable
// by distributing candidate's mass over the graph (after rounding finite
// components > k up to Omega) lies in d's downward closure.
func (d *DownSet) isSafeWithRoundup(candidate ideal.Ideal, edges *digraph.Graph, k int) bool {
	dim := edges.Dim()
	for i := 0; i < dim; i++ {
		if candidate.Get(i) != coef.Zero && len(edges.Successors(i)) == 0 {
			return false // losing tokens
		}
	}
	image := getImage(dim, candidate, edges, k)
	for _, im := range image.Ideals() {
		if !d.Contains(im) {
			return false
		}
	}
	return true
}

// getImage enumerates every successor configuration reachable by
// distributing dom's per-axis mass over the graph's edges, rounding
// finite components exceeding k up to Omega, and collects them as a
// DownSet (spec.md §4.3's get_image).
func getImage(dim int, dom ideal.Ideal, edges *digraph.Graph, k int) *DownSet {
	choicesPerAxis := make([][]ideal.Ideal, dom.Dim())
	for i := 0; i < dom.Dim(); i++ {
		choicesPerAxis[i] = memo.Choices(dim, dom.Get(i), edges.Successors(i))
	}

	result := New(dim)
	var rec func(axis int, acc ideal.Ideal)
	rec = func(axis int, acc ideal.Ideal) {
		if axis == len(choicesPerAxis) {
			result.Insert(acc.RoundUp(k))
			return
		}
		for _, choice := range choicesPerAxis[axis] {
			rec(axis+1, ideal.Sum(acc, choice))
		}
	}
	rec(0, ideal.New(dim, coef.Zero))
	return result
}
