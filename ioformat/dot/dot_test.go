package dot

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `
digraph {
init [shape=point];
s0 [label="ini"];
s1 [label="barn", shape=doublecircle];
init -> s0;
s0 -> s0 [label="a,b"];
s0 -> s1 [label="a"];
s1 -> s1 [label="a,b"];
}
`

func TestParseBasicFixture(t *testing.T) {
	a, err := Parse(fixture)
	require.NoError(t, err)

	assert.Len(t, a.States(), 2)
	assert.Len(t, a.InitialStates(), 1)
	assert.Len(t, a.AcceptingStates(), 1)

	alphabet := a.Alphabet()
	sort.Strings(alphabet)
	assert.Equal(t, []string{"a", "b"}, alphabet)
}

func TestParseNoNodesErrors(t *testing.T) {
	_, err := Parse("digraph {}")
	assert.ErrorIs(t, err, ErrNoStates)
}
