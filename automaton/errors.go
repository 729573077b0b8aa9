package automaton

import "errors"

// ErrUnknownState indicates a transition, initial, or accepting marker
// referenced a state label that was never registered (spec.md §7
// category 1: input error).
var ErrUnknownState = errors.New("automaton: unknown state")
