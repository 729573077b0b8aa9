// Package ideal implements the Ideal type (C2): an ordered n-tuple of
// coef.Coef values, viewed as an upper bound on a multiset of token counts
// per automaton state. Ideals within one computation always share the
// same dimension n; mixing dimensions is a programming-invariant breach
// and panics rather than returning an error (spec.md §7, category 2).
package ideal
