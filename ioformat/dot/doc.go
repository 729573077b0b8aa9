// Package dot reads the Graphviz DOT automaton notation: a node's
// `label` attribute names the state, `shape=doublecircle` marks it
// accepting, and an edge from the pseudo-node "init" marks its target
// initial. Edge `label` attributes name the letter(s) of a transition,
// comma-split the same way the TikZ reader splits them.
//
// Grounded on original_source/src/nfa.rs's from_dot, which delegates
// graph structure to the `dot_parser` crate; no DOT-grammar crate
// equivalent appears anywhere in the retrieval pack, so this reader
// is a small hand-rolled line scanner instead (see DESIGN.md for the
// standard-library justification). The recognized subset — "id
// [attr=value, ...]" node statements and "a -> b [attr=value, ...]"
// edge statements, one per line — covers every DOT file nfa.rs itself
// is able to consume, since that reader also only looks at `label` and
// `shape` attributes.
package dot
