package flowmat

import "errors"

// ErrDimensionMismatch indicates two Flows (or a Flow and a digraph.Graph)
// of different dimension were combined. A programming-invariant breach
// (spec.md §7 category 2), never a recoverable input error.
var ErrDimensionMismatch = errors.New("flowmat: dimension mismatch")
