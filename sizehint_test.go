package cartprod

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddSat(t *testing.T) {
	require.Equal(t, 5, addSat(2, 3))
	require.Equal(t, math.MaxInt, addSat(math.MaxInt, 1))
	require.Equal(t, math.MaxInt, addSat(math.MaxInt-1, 2))
	require.Equal(t, math.MaxInt, addSat(math.MaxInt, math.MaxInt))
}

func TestMulSat(t *testing.T) {
	require.Equal(t, 6, mulSat(2, 3))
	require.Equal(t, 0, mulSat(0, math.MaxInt))
	require.Equal(t, math.MaxInt, mulSat(math.MaxInt, 1))
	require.Equal(t, math.MaxInt, mulSat(math.MaxInt, 2))
	require.Equal(t, math.MaxInt, mulSat(math.MaxInt, math.MaxInt))
}

func TestRemaining(t *testing.T) {
	require.Equal(t, 3, remaining(5, 2))
	require.Equal(t, 0, remaining(5, 5))
	// A factor lower bound may undershoot what was actually pulled; the
	// result clamps at zero instead of going negative.
	require.Equal(t, 0, remaining(2, 5))
}
