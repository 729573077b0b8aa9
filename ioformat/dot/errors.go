package dot

import "errors"

// ErrNoStates indicates the input contained no node statements at all.
var ErrNoStates = errors.New("dot: no states found in input")

// ErrDanglingReference indicates an edge referenced a node id that was
// never declared by a node statement.
var ErrDanglingReference = errors.New("dot: edge references undeclared node id")
