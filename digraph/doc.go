// Package digraph implements the per-letter support graph (C4): an
// immutable set of directed edges over [0,dim) with successor lookup.
// It is deliberately minimal compared to the teacher's core.Graph —
// the solver only needs successors(i) and dim, never weights, labels,
// or mutation after construction.
package digraph
