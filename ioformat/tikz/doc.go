// Package tikz reads the TikZ-ish automaton notation emitted by
// finsm.io: \node[...] (id) {$name$} declarations and (from) edge
// {$labels$} (to) transitions, built into an *automaton.Automaton.
//
// Grounded on original_source/src/nfa.rs's from_tikz: the same two
// regexes (state declarations, edge declarations), the same
// comma-split on an edge's label group, and the same collapse-by-name
// behaviour when two tikz node ids share a `$name$` (finsm.io emits one
// node per position, so a looping or re-entrant state can appear under
// more than one id).
package tikz
