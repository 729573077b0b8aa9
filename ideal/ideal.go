package ideal

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/popcontrol/coef"
)

// Ideal is an immutable-by-convention n-vector of coefficients. Callers
// that need to mutate in place use Set, which returns a new Ideal sharing
// no backing array with the receiver.
type Ideal struct {
	coefs []coef.Coef
}

// New returns the n-vector with every coordinate set to v.
func New(n int, v coef.Coef) Ideal {
	cs := make([]coef.Coef, n)
	for i := range cs {
		cs[i] = v
	}
	return Ideal{coefs: cs}
}

// FromSlice copies cs into a new Ideal.
func FromSlice(cs []coef.Coef) Ideal {
	out := make([]coef.Coef, len(cs))
	copy(out, cs)
	return Ideal{coefs: out}
}

// Dim returns the ambient dimension n.
func (id Ideal) Dim() int { return len(id.coefs) }

// Get returns the coefficient at axis i.
func (id Ideal) Get(i int) coef.Coef { return id.coefs[i] }

// Set returns a copy of id with axis i replaced by v.
func (id Ideal) Set(i int, v coef.Coef) Ideal {
	out := make([]coef.Coef, len(id.coefs))
	copy(out, id.coefs)
	out[i] = v
	return Ideal{coefs: out}
}

// Slice returns a defensive copy of the underlying coefficients.
func (id Ideal) Slice() []coef.Coef {
	out := make([]coef.Coef, len(id.coefs))
	copy(out, id.coefs)
	return out
}

func sameDim(a, b Ideal) {
	if len(a.coefs) != len(b.coefs) {
		panic(fmt.Sprintf("ideal: dimension mismatch %d != %d", len(a.coefs), len(b.coefs)))
	}
}

// LessEqual is the componentwise partial order ⊑: a ⊑ b iff every
// coordinate of a is <= the corresponding coordinate of b.
func LessEqual(a, b Ideal) bool {
	sameDim(a, b)
	for i := range a.coefs {
		if !a.coefs[i].LessEqual(b.coefs[i]) {
			return false
		}
	}
	return true
}

// Equal reports componentwise equality.
func Equal(a, b Ideal) bool {
	sameDim(a, b)
	for i := range a.coefs {
		if a.coefs[i] != b.coefs[i] {
			return false
		}
	}
	return true
}

// Sum returns the componentwise saturating sum of a and b.
func Sum(a, b Ideal) Ideal {
	sameDim(a, b)
	out := make([]coef.Coef, len(a.coefs))
	for i := range a.coefs {
		out[i] = coef.Add(a.coefs[i], b.coefs[i])
	}
	return Ideal{coefs: out}
}

// Intersection returns the componentwise min of a and b.
func Intersection(a, b Ideal) Ideal {
	sameDim(a, b)
	out := make([]coef.Coef, len(a.coefs))
	for i := range a.coefs {
		out[i] = coef.Min(a.coefs[i], b.coefs[i])
	}
	return Ideal{coefs: out}
}

// RoundUp promotes every finite coordinate strictly greater than k to Omega.
func (id Ideal) RoundUp(k int) Ideal {
	out := make([]coef.Coef, len(id.coefs))
	for i, c := range id.coefs {
		out[i] = c.RoundUp(k)
	}
	return Ideal{coefs: out}
}

// RoundDown caps every finite coordinate at k.
func (id Ideal) RoundDown(k int) Ideal {
	out := make([]coef.Coef, len(id.coefs))
	for i, c := range id.coefs {
		out[i] = c.RoundDown(k)
	}
	return Ideal{coefs: out}
}

// SomeFiniteCoordinateIsLargerThan reports whether any finite coordinate
// exceeds k (the negation of "already rounded down to k").
func (id Ideal) SomeFiniteCoordinateIsLargerThan(k int) bool {
	for _, c := range id.coefs {
		if c.IsFinite() && c.Int() > k {
			return true
		}
	}
	return false
}

// AllOmega reports whether every coordinate in indices is Omega. Callers
// pass the empty slice only when they have already excluded it (spec.md
// §4.3 requires a non-empty successor set for omega-admissibility).
func (id Ideal) AllOmega(indices []int) bool {
	for _, i := range indices {
		if !id.coefs[i].IsOmega() {
			return false
		}
	}
	return true
}

// CloneAndDecrease produces a strict predecessor on axis i: Omega becomes
// Value(k), and a finite v>0 becomes Value(min(v-1, k)); a zero axis
// stays Value(0). No other package of this module calls it.
func (id Ideal) CloneAndDecrease(i int, k int) Ideal {
	c := id.coefs[i]
	var next coef.Coef
	if c.IsOmega() {
		next = coef.Value(k)
	} else {
		v := c.Int() - 1
		if v < 0 {
			v = 0
		}
		if v > k {
			v = k
		}
		next = coef.Value(v)
	}
	return id.Set(i, next)
}

// FromNonZeroCoefs scatters a partition onto the given indices of an
// n-dimensional all-zero ideal: preds[k] is placed at indices[k].
func FromNonZeroCoefs(n int, indices []int, preds []coef.Coef) Ideal {
	if len(indices) != len(preds) {
		panic("ideal: indices/preds length mismatch")
	}
	out := New(n, coef.Zero)
	for k, idx := range indices {
		out = out.Set(idx, preds[k])
	}
	return out
}

// String renders the ideal as "( c1 , c2 , ... )" per spec.md §6's plain
// serialization.
func (id Ideal) String() string {
	parts := make([]string, len(id.coefs))
	for i, c := range id.coefs {
		parts[i] = c.String()
	}
	return "( " + strings.Join(parts, " , ") + " )"
}

// CSV renders the ideal as comma-separated coefficients, for ioformat/render.
func (id Ideal) CSV() string {
	parts := make([]string, len(id.coefs))
	for i, c := range id.coefs {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

// Key returns a string uniquely identifying id's coefficients, suitable
// as a map/set key (Ideal is not comparable with == because it embeds a
// slice).
func (id Ideal) Key() string {
	return id.CSV()
}
