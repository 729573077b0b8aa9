package tikz

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFinsmFixture mirrors original_source/src/nfa.rs's own `tikz`
// unit test: six named states (the "wolf" node is declared twice under
// the same tikz id and counts once), one initial state, one accepting
// state, alphabet {a,b}.
const finsmFixture = `
%% Machine generated by https://finsm.io
\begin{center}
\begin{tikzpicture}[]
\node[initial,thick,state] at (-3.175,4.95) (1fa0116c) {$ini$};
\node[thick,state] at (1.275,4.825) (4c126865) {$ready$};
\node[thick,accepting,state] at (6.85,5.1) (b8befb7d) {$barn$};
\node[thick,state] at (4.125,6.2) (316b0ce4) {$left$};
\node[thick,state] at (4.175,3.475) (6e65ff45) {$right$};
\node[thick,state] at (6.5,8) (8a7c360d) {$wolf$};
\node[thick,state] at (6.775,2.075) (8a7c360d) {$wolf$};
\path[->, thick, >=stealth]
(1fa0116c) edge [loop,min distance = 1.25cm,above,in = 121, out = 59] node {$a,b$} (1fa0116c)
(1fa0116c) edge [above,in = 153, out = 24] node {$a$} (4c126865)
(4c126865) edge [loop,min distance = 1.25cm,above,in = 121, out = 59] node {$a$} (4c126865)
(4c126865) edge [below,in = -24, out = -160] node {$a$} (1fa0116c)
(4c126865) edge [right,in = -154, out = 26] node {$b$} (316b0ce4)
(4c126865) edge [left,in = 155, out = -25] node {$b$} (6e65ff45)
(b8befb7d) edge [loop,min distance = 1.25cm,above,in = 121, out = 59] node {$a,b$} (b8befb7d)
(316b0ce4) edge [left,in = 158, out = -22] node {$a$} (b8befb7d)
(316b0ce4) edge [right,in = -143, out = 37] node {$b$} (8a7c360d)
(6e65ff45) edge [right,in = -149, out = 31] node {$b$} (b8befb7d)
(6e65ff45) edge [left,in = 152, out = -28] node {$a$} (8a7c360d)
(8a7c360d) edge [loop,min distance = 1.25cm,above,in = 121, out = 59] node {$a,b$} (8a7c360d)
(8a7c360d) edge [loop,min distance = 1.25cm,above,in = 121, out = 59] node {$a,b$} (8a7c360d)
;
\end{tikzpicture}
\end{center}
`

func TestParseFinsmFixture(t *testing.T) {
	a, err := Parse(finsmFixture)
	require.NoError(t, err)

	states := a.States()
	assert.Len(t, states, 6)
	for _, s := range states {
		assert.Contains(t, []string{"ini", "ready", "barn", "left", "right", "wolf"}, s)
	}

	assert.Len(t, a.InitialStates(), 1)
	assert.Len(t, a.AcceptingStates(), 1)

	alphabet := a.Alphabet()
	sort.Strings(alphabet)
	assert.Equal(t, []string{"a", "b"}, alphabet)

	iniIdx := a.InitialStates()[0]
	succA := a.Successors(iniIdx, "a")
	assert.NotEmpty(t, succA)
}

func TestParseEmptyInputErrors(t *testing.T) {
	_, err := Parse("no states here")
	assert.ErrorIs(t, err, ErrNoStates)
}

func TestParseCommaSeparatedLabelsSplitIntoDistinctTransitions(t *testing.T) {
	a, err := Parse(finsmFixture)
	require.NoError(t, err)

	iniIdx := a.InitialStates()[0]
	succA := a.Successors(iniIdx, "a")
	succB := a.Successors(iniIdx, "b")
	assert.Contains(t, succA, iniIdx)
	assert.Contains(t, succB, iniIdx)
}
