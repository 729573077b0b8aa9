package coef

import "fmt"

// KHard is the hard upper bound on finite coefficients. The solver never
// needs K above the automaton's state count, and state counts in the
// intended scale (spec.md §9: n <= ~20) comfortably fit below this bound.
const KHard = 127

// Coef is a value in {0, ..., KHard} union {Omega}, ordered with every
// finite value strictly below Omega.
type Coef struct {
	// value holds the finite magnitude when omega is false; it is
	// meaningless (and left at zero) when omega is true.
	value int
	omega bool
}

// Omega is the distinguished top element: "unboundedly many".
var Omega = Coef{omega: true}

// Zero is the additive identity, Value(0).
var Zero = Value(0)

// Value constructs a finite coefficient. Panics if v is negative or
// exceeds KHard, since that is a programming-invariant breach (spec.md §7,
// category 3: capacity overflow).
func Value(v int) Coef {
	if v < 0 {
		panic(fmt.Sprintf("coef: negative value %d", v))
	}
	if v > KHard {
		panic(fmt.Sprintf("coef: value %d exceeds KHard=%d", v, KHard))
	}
	return Coef{value: v}
}

// IsOmega reports whether c is the top element.
func (c Coef) IsOmega() bool { return c.omega }

// IsFinite reports whether c carries a finite magnitude.
func (c Coef) IsFinite() bool { return !c.omega }

// Int returns the finite magnitude of c. Panics if c is Omega; callers
// must guard with IsFinite first.
func (c Coef) Int() int {
	if c.omega {
		panic("coef: Int() called on Omega")
	}
	return c.value
}

// IntOr returns the finite magnitude of c, or def if c is Omega.
func (c Coef) IntOr(def int) int {
	if c.omega {
		return def
	}
	return c.value
}

// Less reports whether c is strictly below other in the total order.
func (c Coef) Less(other Coef) bool {
	switch {
	case c.omega:
		return false
	case other.omega:
		return true
	default:
		return c.value < other.value
	}
}

// LessEqual reports whether c <= other.
func (c Coef) LessEqual(other Coef) bool {
	return c == other || c.Less(other)
}

// Add saturates to Omega whenever either operand is Omega; otherwise it
// is ordinary integer addition. The result is not rounded — callers
// apply RoundUp explicitly where the spec calls for it.
func Add(a, b Coef) Coef {
	if a.omega || b.omega {
		return Omega
	}
	return Coef{value: a.value + b.value}
}

// Sub implements the spec's partial subtraction: Omega-Omega=Omega,
// Omega-finite=Omega, finite-Omega=0, finite-finite=integer subtract
// (never negative; the spec only uses Sub where the minuend dominates).
func Sub(a, b Coef) Coef {
	switch {
	case a.omega && b.omega:
		return Omega
	case a.omega:
		return Omega
	case b.omega:
		return Zero
	default:
		d := a.value - b.value
		if d < 0 {
			d = 0
		}
		return Coef{value: d}
	}
}

// Min returns the smaller of a and b under the total order.
func Min(a, b Coef) Coef {
	if a.Less(b) {
		return a
	}
	return b
}

// Max returns the larger of a and b under the total order.
func Max(a, b Coef) Coef {
	if a.Less(b) {
		return b
	}
	return a
}

// Sum folds Add over a slice, short-circuiting to Omega as soon as one
// operand is Omega (mirrors the original Rust Sum impl in coef.rs).
func Sum(cs []Coef) Coef {
	total := Zero
	for _, c := range cs {
		if c.omega {
			return Omega
		}
		total.value += c.value
	}
	return total
}

// RoundUp promotes any finite value strictly greater than k to Omega;
// Omega and values <= k are returned unchanged.
func (c Coef) RoundUp(k int) Coef {
	if !c.omega && c.value > k {
		return Omega
	}
	return c
}

// RoundDown caps any finite value at k; Omega is returned unchanged.
func (c Coef) RoundDown(k int) Coef {
	if !c.omega && c.value > k {
		return Coef{value: k}
	}
	return c
}

// String renders Omega as "ω", zero as "_", and other finite values as
// their decimal form, matching spec.md §6's plain-text strategy format.
func (c Coef) String() string {
	switch {
	case c.omega:
		return "ω"
	case c.value == 0:
		return "_"
	default:
		return fmt.Sprintf("%d", c.value)
	}
}
