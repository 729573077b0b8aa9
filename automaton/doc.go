// Package automaton implements the NFA model (C10): states, an alphabet,
// a transition relation, distinguished initial/accepting sets, and the
// derived per-letter support graphs the solver consumes. An Automaton
// must be made complete (every (state, letter) pair has at least one
// successor) before solving; Complete adds a fresh sink state and routes
// every missing transition to it.
//
// Grounded on original_source/src/nfa.rs for the state/transition model,
// get_alphabet's first-seen ordering, and get_support's per-letter graph
// projection; the Rust Nfa additionally owns its own TikZ/DOT parsing and
// state-reordering logic, which this module deliberately does not carry —
// those are external collaborators per spec.md §1/§6, implemented in
// ioformat/tikz, ioformat/dot, and ioformat/reorder against the
// NFAAdapter interface instead, so the core solver never imports I/O.
package automaton
