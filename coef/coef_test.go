package coef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	assert.Equal(t, Value(2), Add(Value(1), Value(1)))
	assert.Equal(t, Omega, Add(Omega, Value(1)))
	assert.Equal(t, Omega, Add(Omega, Omega))
}

func TestSub(t *testing.T) {
	assert.Equal(t, Omega, Sub(Omega, Omega))
	assert.Equal(t, Omega, Sub(Omega, Value(3)))
	assert.Equal(t, Zero, Sub(Value(3), Omega))
	assert.Equal(t, Value(2), Sub(Value(5), Value(3)))
}

func TestSum(t *testing.T) {
	assert.Equal(t, Value(3), Sum([]Coef{Value(1), Value(1), Value(1)}))
	assert.Equal(t, Omega, Sum([]Coef{Value(1), Omega, Value(1)}))
}

func TestOrder(t *testing.T) {
	assert.True(t, Value(1).Less(Omega))
	assert.True(t, Zero.Less(Value(1)))
	assert.True(t, Zero.Less(Omega))
	assert.True(t, Value(1).Less(Value(2)))
	assert.False(t, Omega.Less(Omega))
}

func TestRoundUpDown(t *testing.T) {
	assert.Equal(t, Omega, Value(5).RoundUp(4))
	assert.Equal(t, Value(4), Value(4).RoundUp(4))
	assert.Equal(t, Omega, Omega.RoundUp(4))

	assert.Equal(t, Value(4), Value(5).RoundDown(4))
	assert.Equal(t, Omega, Omega.RoundDown(4))
}

func TestString(t *testing.T) {
	assert.Equal(t, "ω", Omega.String())
	assert.Equal(t, "_", Zero.String())
	assert.Equal(t, "3", Value(3).String())
}

func TestValuePanics(t *testing.T) {
	require.Panics(t, func() { Value(-1) })
	require.Panics(t, func() { Value(KHard + 1) })
}
