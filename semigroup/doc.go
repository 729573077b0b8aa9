// Package semigroup implements the FlowSemigroup closure (C6): given a
// seed set of flows and a finite bound K, saturate it under product and
// iteration into a minimal antichain modulo ⊑, using the two-queue
// worklist discipline of spec.md §4.5 (mult_queue / iter_queue).
//
// Grounded on original_source/src/arena.rs for the worklist-with-cache
// shape (a pending-work queue draining into a deduplicated accumulator)
// and spec.md §4.5 for the admission/minimization discipline itself,
// which has no direct analogue in original_source (flow.rs's own
// iteration is a single repeated-squaring call with no closure search).
package semigroup
