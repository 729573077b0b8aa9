// Package coef implements the sum-semiring used throughout the population
// control solver: a bounded non-negative integer together with a
// distinguished top element Omega meaning "arbitrarily many".
//
// A Coef is either a finite Value in [0, K_hard] or Omega. Addition
// saturates to Omega whenever either operand is Omega; subtraction is
// defined only where the minuend dominates (see Sub). Values compare by
// the total order Value(0) < Value(1) < ... < Omega.
//
// K_hard bounds the width of the finite representation; it must be at
// least the state count n of any automaton the solver processes (spec
// requires K <= n to suffice). A byte-sized backing type is enough, but
// this package uses int for simplicity and relies on callers to keep K
// within K_hard via round_up/round_down.
package coef
