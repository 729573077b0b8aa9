// Package popcontrol is a symbolic fixed-point solver for the population
// control problem on nondeterministic finite automata.
//
// Given an NFA, population control asks whether a controller — who
// picks one letter at a time but never sees which nondeterministic
// branch the automaton actually took — can bring every token of an
// arbitrarily large ("omega") population into the accepting states,
// with one letter sequence that works for every population size. The solver answers this without ever enumerating runs: it
// closes a finite semigroup of letter-indexed flow matrices over an
// idempotent semiring and reads controllability, and a maximal winning
// strategy when one exists, off antichains of downward-closed ideals
// in that closure.
//
// Subpackages, bottom-up:
//
//	coef/      — the coefficient semiring {0,...,KHard} ∪ {ω} (C1)
//	ideal/     — n-tuple ideals over coef, the controller's population targets (C2)
//	downset/   — antichains of ideals and their preimage under a letter (C3)
//	digraph/   — per-letter support digraphs of an automaton (C4)
//	flowmat/   — n×n coefficient flow matrices and their products/closure (C5)
//	semigroup/ — worklist closure of the flow matrices generated by an automaton (C6)
//	strategy/  — a letter-indexed map of maximal winning downsets (C7)
//	solver/    — the driver: runs the fixed point, decides Yes/No, builds a strategy (C8)
//	memo/      — memoization for repeated fixed-point sub-computations (C9)
//	automaton/ — the NFA model and the NFAAdapter interface it implements (C10)
//	ioformat/  — TikZ and DOT readers, state-reordering, and result rendering
//
// cmd/popcontrol is the command-line entry point wiring these together.
package popcontrol
