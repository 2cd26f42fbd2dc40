package cartprod

import (
	"math"
	"math/bits"
)

// Shared arithmetic for the product size hints. All inputs are element
// counts, so everything is non-negative; results clamp at math.MaxInt
// instead of wrapping.

func addSat(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func mulSat(a, b int) int {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		return math.MaxInt
	}
	return int(lo)
}

// remaining subtracts the number of values already pulled from a bound on
// a full traversal, clamping at zero so an undersized lower bound can
// never push the hint negative.
func remaining(full, taken int) int {
	if taken >= full {
		return 0
	}
	return full - taken
}
