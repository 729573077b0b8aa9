package downset

import "errors"

// ErrDimensionMismatch indicates two DownSets (or a DownSet and an Ideal)
// of different dimension were combined. This is a programming-invariant
// breach (spec.md §7 category 2), never a recoverable input error.
var ErrDimensionMismatch = errors.New("downset: dimension mismatch")
