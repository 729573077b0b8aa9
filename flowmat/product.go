package flowmat

import "github.com/katalvlaran/popcontrol/coef"

// Product dispatches to the ω-only rule for k<=1 and the finite-aware
// rule for k>=2, per spec.md §4.5's worklist discipline ("for K<=1, use
// ω-only product; for K>=2 use finite-aware get_products").
func Product(a, b Flow, k int) []Flow {
	if k <= 1 {
		return []Flow{OmegaOnlyProduct(a, b)}
	}
	return FiniteAwareProduct(a, b, k)
}

// OmegaOnlyProduct implements the structural rule of spec.md §4.4:
// (F·G)_ij = ω iff some intermediate k has F_ik=ω and G_kj=ω; finite
// entries are ignored (left at Zero).
func OmegaOnlyProduct(a, b Flow) Flow {
	sameDim(a, b)
	dim := a.dim
	out := New(dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if omegaLinked(a, b, i, j) {
				out.entries[i*dim+j] = coef.Omega
			}
		}
	}
	return out
}

func omegaLinked(a, b Flow, i, j int) bool {
	for k := 0; k < a.dim; k++ {
		if a.At(i, k).IsOmega() && b.At(k, j).IsOmega() {
			return true
		}
	}
	return false
}

// TropicalProduct computes the baseline (max, min) product of spec.md
// §3's Data Model ((F·G)[i][k] = max_j min(F[i][j], G[j][k])), carrying
// finite magnitudes through rather than discarding them. This is the
// formula original_source/src/flow.rs's _product implements (there, ω is
// simply a large sentinel integer dominating the min/max); it is used
// here to drive a flow to idempotence before Sharp is applied, since that
// squaring must preserve a flow's real finite structure, not just its
// ω-skeleton.
func TropicalProduct(a, b Flow) Flow {
	sameDim(a, b)
	dim := a.dim
	out := New(dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			best := coef.Zero
			for k := 0; k < dim; k++ {
				m := coef.Min(a.At(i, k), b.At(k, j))
				best = coef.Max(best, m)
			}
			out.entries[i*dim+j] = best
		}
	}
	return out
}

// FiniteAwareProduct implements spec.md §4.5's finite-aware product: the
// ω-part is precomputed structurally, then for each intermediate column k
// in order every valid transport of the finite row-budget L[·][k] against
// the finite column-budget R[k][·] is enumerated and accumulated. A
// candidate whose any entry would finitely exceed k is discarded rather
// than rounded up, to avoid spurious ω-inflation during composition.
func FiniteAwareProduct(a, b Flow, k int) []Flow {
	sameDim(a, b)
	dim := a.dim

	omega := make([]bool, dim*dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			omega[i*dim+j] = omegaLinked(a, b, i, j)
		}
	}

	accumulators := [][]int{make([]int, dim*dim)}
	for m := 0; m < dim; m++ {
		rowBudget := make([]int, dim)
		for i := 0; i < dim; i++ {
			rowBudget[i] = capAt(a.At(i, m).IntOr(k), k)
		}
		colBudget := make([]int, dim)
		for j := 0; j < dim; j++ {
			colBudget[j] = capAt(b.At(m, j).IntOr(k), k)
		}
		transports := enumerateColumnTransports(dim, rowBudget, colBudget)

		next := make([][]int, 0, len(accumulators)*len(transports))
		seen := make(map[string]bool)
		for _, acc := range accumulators {
			for _, t := range transports {
				merged, ok := addCapped(acc, t, k)
				if !ok {
					continue
				}
				key := intsKey(merged)
				if seen[key] {
					continue
				}
				seen[key] = true
				next = append(next, merged)
			}
		}
		accumulators = next
	}

	seen := make(map[string]Flow)
	for _, acc := range accumulators {
		entries := make([]coef.Coef, dim*dim)
		for idx, v := range acc {
			if omega[idx] {
				entries[idx] = coef.Omega
			} else {
				entries[idx] = coef.Value(v)
			}
		}
		f := Flow{dim: dim, entries: entries}
		seen[f.Key()] = f
	}

	out := make([]Flow, 0, len(seen))
	for _, f := range seen {
		out = append(out, f)
	}
	return sortFlows(out)
}

func capAt(v, k int) int {
	if v > k {
		return k
	}
	return v
}

func addCapped(acc, t []int, k int) ([]int, bool) {
	out := make([]int, len(acc))
	for i := range acc {
		sum := acc[i] + t[i]
		if sum > k {
			return nil, false
		}
		out[i] = sum
	}
	return out, true
}

// enumerateColumnTransports enumerates every way to route UP TO
// rowBudget[i] units (for every source i, in ascending order) into
// columns j subject to the shared, progressively-depleted colBudget[j]
// (spec.md §4.5's "row_sum(T,i) <= L[i][k] and col_sum(T,·,j) <=
// R[k][j]" — both are upper bounds, not equalities). A row's budget
// need not be fully placed: two rows can compete for the same column's
// remaining capacity, and forcing exact full usage can make the one
// transport that satisfies both rows' bounds simultaneously
// unreachable.
func enumerateColumnTransports(dim int, rowBudget, colBudget []int) [][]int {
	var rows []int
	for i, v := range rowBudget {
		if v > 0 {
			rows = append(rows, i)
		}
	}

	results := [][]int{make([]int, dim*dim)}
	remaining := append([]int(nil), colBudget...)

	var rec func(idx int, acc []int, remaining []int, out *[][]int)
	rec = func(idx int, acc []int, remaining []int, out *[][]int) {
		if idx == len(rows) {
			*out = append(*out, acc)
			return
		}
		i := rows[idx]
		for _, comp := range boundedCompositions(rowBudget[i], remaining) {
			newAcc := append([]int(nil), acc...)
			newRemaining := append([]int(nil), remaining...)
			for j, c := range comp {
				newAcc[i*dim+j] += c
				newRemaining[j] -= c
			}
			rec(idx+1, newAcc, newRemaining, out)
		}
	}

	if len(rows) == 0 {
		return results
	}
	results = nil
	rec(0, make([]int, dim*dim), remaining, &results)
	return results
}

// boundedCompositions enumerates every length(caps) non-negative integer
// vector with element j capped at caps[j] and total sum at most maxSum
// (a row may leave part of its budget unplaced, per the "≤" bounds
// spec.md §4.5 states for both row and column sums).
func boundedCompositions(maxSum int, caps []int) [][]int {
	n := len(caps)
	if n == 0 {
		return [][]int{{}}
	}
	var results [][]int
	acc := make([]int, n)
	var rec func(idx, remaining int)
	rec = func(idx, remaining int) {
		if idx == n {
			results = append(results, append([]int(nil), acc...))
			return
		}
		max := remaining
		if caps[idx] < max {
			max = caps[idx]
		}
		for c := 0; c <= max; c++ {
			acc[idx] = c
			rec(idx+1, remaining-c)
		}
		acc[idx] = 0
	}
	rec(0, maxSum)
	return results
}

func intsKey(xs []int) string {
	out := make([]byte, 0, len(xs)*4)
	for _, x := range xs {
		out = append(out, byte(x), byte(x>>8), ',')
	}
	return string(out)
}
