package config

import "errors"

// ErrInvalidStateOrdering indicates a config file named a state-ordering
// value outside {input, alphabetical, topological}.
var ErrInvalidStateOrdering = errors.New("config: invalid state-ordering value")

// ErrInvalidSolverOutput indicates a config file named a solver-output
// value outside {strategy, yesno}.
var ErrInvalidSolverOutput = errors.New("config: invalid solver-output value")
