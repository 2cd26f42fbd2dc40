package cartprod_test

import (
	"testing"

	cartprod "github.com/JohnScience/cart-prod"

	"github.com/stretchr/testify/require"
)

func TestTriple_YieldsLexicographicOrder(t *testing.T) {
	p := cartprod.NewTriple(
		cartprod.Range(0, 2),
		cartprod.Range(0, 2),
		cartprod.Range(0, 2),
	)

	expected := [][3]int{
		{0, 0, 0}, {0, 0, 1},
		{0, 1, 0}, {0, 1, 1},
		{1, 0, 0}, {1, 0, 1},
		{1, 1, 0}, {1, 1, 1},
	}
	require.Equal(t, expected, collectTriples(p))

	_, ok := p.Next()
	require.False(t, ok)
}

func TestTriple_EqualsNestedLoops(t *testing.T) {
	const m, n, o = 4, 3, 2

	var expected [][3]int
	for x := range m {
		for y := range n {
			for z := range o {
				expected = append(expected, [3]int{x, y, z})
			}
		}
	}

	p := cartprod.NewTriple(
		cartprod.Range(0, m),
		cartprod.Range(0, n),
		cartprod.Range(0, o),
	)
	require.Equal(t, expected, collectTriples(p))
}

func TestTriple_EmptyOutermost(t *testing.T) {
	p := cartprod.NewTriple(
		cartprod.Range(0, 0),
		cartprod.Range(0, 3),
		cartprod.Range(0, 2),
	)

	_, ok := p.Next()
	require.False(t, ok)
}

func TestTriple_EmptyMiddle(t *testing.T) {
	p := cartprod.NewTriple(
		cartprod.Range(0, 4),
		cartprod.Range(0, 0),
		cartprod.Range(0, 2),
	)

	_, ok := p.Next()
	require.False(t, ok)
}

func TestTriple_EmptyInnermost(t *testing.T) {
	p := cartprod.NewTriple(
		cartprod.Range(0, 4),
		cartprod.Range(0, 3),
		cartprod.Range(0, 0),
	)

	_, ok := p.Next()
	require.False(t, ok)
}

func TestTriple_Cardinality(t *testing.T) {
	p := cartprod.NewTriple(
		cartprod.Range(0, 3),
		cartprod.Range(0, 4),
		cartprod.Range(0, 5),
	)
	require.Len(t, collectTriples(p), 3*4*5)
}

func TestTriple_ExhaustionIsSticky(t *testing.T) {
	p := cartprod.NewTriple(
		cartprod.Range(0, 2),
		cartprod.Range(0, 2),
		cartprod.Range(0, 2),
	)
	collectTriples(p)

	for range 3 {
		_, ok := p.Next()
		require.False(t, ok)
	}
}

func TestTriple_StopForcesExhaustion(t *testing.T) {
	p := cartprod.NewTriple(
		cartprod.Range(0, 2),
		cartprod.Range(0, 2),
		cartprod.Range(0, 2),
	)

	_, ok := p.Next()
	require.True(t, ok)

	p.Stop()
	p.Stop() // idempotent

	_, ok = p.Next()
	require.False(t, ok)
}

func TestTriple_ValuesResumesAfterBreak(t *testing.T) {
	p := cartprod.NewTriple(
		cartprod.Range(0, 2),
		cartprod.Range(0, 1),
		cartprod.Range(0, 2),
	)

	var first [][3]int
	for triple := range p.Values() {
		first = append(first, triple)
		if len(first) == 1 {
			break
		}
	}
	require.Equal(t, [][3]int{{0, 0, 0}}, first)

	require.Equal(t, [][3]int{{0, 0, 1}, {1, 0, 0}, {1, 0, 1}}, collectTriples(p))
}

func TestTriple_SizeHint_Unprimed(t *testing.T) {
	p := cartprod.NewTriple(
		cartprod.Range(0, 2),
		cartprod.Range(0, 2),
		cartprod.Range(0, 3),
	)

	lo, hi, hiKnown := p.SizeHint()
	require.True(t, hiKnown)
	require.Equal(t, 12, lo)
	require.Equal(t, 12, hi)
}

func TestTriple_SizeHint_ExactAtEveryStep(t *testing.T) {
	const m, n, o = 3, 2, 4
	p := cartprod.NewTriple(
		cartprod.Range(0, m),
		cartprod.Range(0, n),
		cartprod.Range(0, o),
	)

	for produced := 0; ; produced++ {
		lo, hi, hiKnown := p.SizeHint()
		require.True(t, hiKnown)
		require.Equal(t, m*n*o-produced, lo)
		require.Equal(t, lo, hi)

		if _, ok := p.Next(); !ok {
			break
		}
	}

	lo, hi, hiKnown := p.SizeHint()
	require.Zero(t, lo)
	require.Zero(t, hi)
	require.True(t, hiKnown)
}

func TestTriple_SizeHint_UnknownSizes(t *testing.T) {
	p := cartprod.NewTriple(
		cartprod.From(seqOf(1, 2)),
		cartprod.Range(0, 2),
		cartprod.From(seqOf(3)),
	)

	remaining := 2 * 2 * 1
	for {
		lo, _, hiKnown := p.SizeHint()
		require.False(t, hiKnown)
		require.LessOrEqual(t, lo, remaining)

		if _, ok := p.Next(); !ok {
			break
		}
		remaining--
	}
	require.Zero(t, remaining)
}

func TestNewTriple_PanicsOnZeroFactor(t *testing.T) {
	var zero cartprod.Factor[int]
	r := cartprod.Range(0, 1)

	require.Panics(t, func() { cartprod.NewTriple(zero, r, r) })
	require.Panics(t, func() { cartprod.NewTriple(r, zero, r) })
	require.Panics(t, func() { cartprod.NewTriple(r, r, zero) })
}
