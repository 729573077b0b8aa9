package flowmat

import "github.com/katalvlaran/popcontrol/coef"

// IsIdempotent reports whether some flow produced by Product(f, f, k)
// equals f, i.e. f·f=f holds for at least one resolution of the
// (possibly multi-valued, when k>=2) product.
func IsIdempotent(f Flow, k int) bool {
	for _, g := range Product(f, f, k) {
		if Equal(f, g) {
			return true
		}
	}
	return false
}

// IdempotentClosure returns the idempotent power of f under
// TropicalProduct: it walks f, f², f³, ... and returns the first power e
// with e·e = e. Wherever repeated squaring (the original implementation's
// loop, original_source/src/flow.rs _iteration) reaches a fixpoint, that
// fixpoint is this same power, since the powers of f contain exactly one
// idempotent. Unlike OmegaOnlyProduct, TropicalProduct carries finite
// magnitudes through, so the closure preserves f's real structure rather
// than collapsing it to its ω-skeleton. Terminates because every entry of
// every power is Zero or an entry of f, so the powers of f form a finite
// semigroup, and a finite semigroup always holds an idempotent power.
func IdempotentClosure(f Flow) Flow {
	cur := f
	for {
		if Equal(cur, TropicalProduct(cur, cur)) {
			return cur
		}
		cur = TropicalProduct(cur, f)
	}
}

// Sharp computes F^♯ for an idempotent F (spec.md §4.4): F^♯_ij = ω if
// some intermediate s0,t0 has a finite positive F_{s0,t0}, F_{i,s0}=ω and
// F_{t0,j}=ω; otherwise F^♯_ij = F_ij. A single finite edge traversed
// arbitrarily many times transports ω between any ω-reachable ends. Every
// finite-positive (s0,t0) pair contributes its own ω-cells, not just the
// first one found — (i,j) only needs one witnessing pair to become ω, but
// different (i,j) cells can have different witnesses.
func Sharp(f Flow) Flow {
	dim := f.dim

	entries := make([]coef.Coef, len(f.entries))
	copy(entries, f.entries)

	for s0 := 0; s0 < dim; s0++ {
		for t0 := 0; t0 < dim; t0++ {
			c := f.At(s0, t0)
			if !(c.IsFinite() && c.Int() > 0) {
				continue
			}
			for i := 0; i < dim; i++ {
				if !f.At(i, s0).IsOmega() {
					continue
				}
				for j := 0; j < dim; j++ {
					if f.At(t0, j).IsOmega() {
						entries[i*dim+j] = coef.Omega
					}
				}
			}
		}
	}
	return Flow{dim: dim, entries: entries}
}

// Iteration returns the ω-power of f, first driving f to an idempotent
// fixpoint (spec.md §4.4: "for F idempotent, or made idempotent by
// repeatedly squaring until fixpoint") before applying Sharp.
func Iteration(f Flow) Flow {
	return Sharp(IdempotentClosure(f))
}
