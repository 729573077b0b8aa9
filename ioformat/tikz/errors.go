package tikz

import "errors"

// ErrNoStates indicates the input contained no \node[...] declarations
// at all — almost always a sign the wrong format reader was invoked.
var ErrNoStates = errors.New("tikz: no states found in input")

// ErrDanglingReference indicates an edge or loop referenced a tikz node
// id that was never declared by a \node[...] line.
var ErrDanglingReference = errors.New("tikz: edge references undeclared node id")
