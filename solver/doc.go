// Package solver implements the outer fixed-point driver (C8): it
// iterates strategy → flows → semigroup → winning downset → restrict
// strategy until stable, in two modes — a fixed K=n maximal-strategy mode,
// and a yes/no mode sweeping K upward until either the initial
// configuration is won or the small-constants bound K=n is exhausted.
//
// Grounded on original_source/src/solver.rs for the inner loop's shape
// (build per-action flows from the current strategy, close into a
// FlowSemigroup, extract a winning ideal, restrict the strategy, repeat
// until no change); spec.md §4.8 supplies the K parameterization and the
// two distinct entry points the original's single unbounded loop does
// not have.
package solver
