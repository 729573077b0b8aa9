package ideal

import (
	"testing"

	"github.com/katalvlaran/popcontrol/coef"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func v(vals ...int) Ideal {
	cs := make([]coef.Coef, len(vals))
	for i, x := range vals {
		if x < 0 {
			cs[i] = coef.Omega
		} else {
			cs[i] = coef.Value(x)
		}
	}
	return FromSlice(cs)
}

func TestLessEqual(t *testing.T) {
	assert.True(t, LessEqual(v(1, 0), v(1, 1)))
	assert.False(t, LessEqual(v(1, 2), v(1, 1)))
	assert.True(t, LessEqual(v(1, 1), v(-1, -1)))
}

func TestIntersectionSum(t *testing.T) {
	a := v(1, 3)
	b := v(2, 1)
	assert.True(t, Equal(Intersection(a, b), v(1, 1)))
	assert.True(t, Equal(Sum(a, b), v(3, 4)))
}

func TestRoundDownAndRoundUp(t *testing.T) {
	id := v(5, -1, 0)
	assert.True(t, Equal(id.RoundDown(3), v(3, -1, 0)))
	assert.True(t, Equal(v(5, 0).RoundUp(4), v(-1, 0)))
}

func TestCloneAndDecrease(t *testing.T) {
	id := v(-1, 3, 0)
	dec0 := id.CloneAndDecrease(0, 4)
	assert.True(t, Equal(dec0, v(4, 3, 0)))
	dec1 := id.CloneAndDecrease(1, 4)
	assert.True(t, Equal(dec1, v(-1, 2, 0)))
}

func TestDimMismatchPanics(t *testing.T) {
	require.Panics(t, func() { LessEqual(v(1), v(1, 2)) })
}

func TestString(t *testing.T) {
	assert.Equal(t, "( 1 , ω , _ )", v(1, -1, 0).String())
}
