// Package reorder implements the three state orderings spec.md §6's CLI
// surface names: input (no-op), alphabetical (sort by state label), and
// topological (states sortable so that every transition points from an
// earlier or equal state to a later one, ties broken alphabetically).
//
// Grounded on original_source/src/nfa.rs's sort/apply_reordering/
// sort_states_topologically: the topological order is computed via
// repeated-relaxation reachability closure (not a DFS-based toposort,
// since the support graphs here can have cycles that still admit a
// useful — if only partial — topological tiebreak), exactly mirroring
// the original's fixpoint loop over successor_relation.
package reorder
