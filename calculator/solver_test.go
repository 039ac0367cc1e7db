package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 构造 Mixed(a) = 1 - a，阈值 1 - r，根为 r
func linearSplit(r float64) SplitBalance {
	return SplitBalance{
		Quality:     1,
		HDrainMain:  0,
		HMainSteam:  1,
		HReheatExit: 1,
		HSeparator:  1 - r,
	}
}

func TestGridSearch_First(t *testing.T) {
	g := GridSearch{Origin: 10, Coarse: 1, CoarseSteps: 10, Fine: 0.1, FineSteps: 10}

	v, err := g.First(func(v float64) bool { return v > 13.25 })
	require.NoError(t, err)
	assert.InDelta(t, 13.3, v, 1e-9)

	v, err = g.First(func(v float64) bool { return v > 0 })
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)

	_, err = g.First(func(v float64) bool { return v > 25 })
	assert.ErrorIs(t, err, ErrRootNotBracketed)
}

func TestSolveSplit_Resolution(t *testing.T) {
	for _, r := range []float64{0.00005, 0.0123, 0.1234567, 0.5, 0.98765} {
		a, err := SolveSplit(linearSplit(r))
		require.NoError(t, err, "root %g", r)
		assert.GreaterOrEqual(t, a, r-1e-12, "root %g", r)
		assert.InDelta(t, r, a, 1e-4+1e-9, "root %g", r)
	}
}

func TestSolveSplit_SatisfiedAtOrigin(t *testing.T) {
	a, err := SolveSplit(linearSplit(-0.2))
	require.NoError(t, err)
	assert.Equal(t, 0.0, a)
}

func TestSolveSplit_NotBracketed(t *testing.T) {
	_, err := SolveSplit(linearSplit(1.5))
	assert.ErrorIs(t, err, ErrRootNotBracketed)
}

func TestSolveMix_Resolution(t *testing.T) {
	cases := []MixBalance{
		{Fraction: 0, HDrain: 1200, HCondensate: 250},
		{Fraction: 0.112, HDrain: 1203.4, HCondensate: 250.6},
		{Fraction: 0.3, HDrain: 1000, HCondensate: 123.456},
	}
	for _, b := range cases {
		root := b.Target() / (1 + b.Fraction)
		h, err := SolveMix(b)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, h, root-1e-9)
		assert.InDelta(t, root, h, 0.01+1e-9)
		assert.Greater(t, (1+b.Fraction)*h, b.Target())
	}
}

func TestSolveMix_NotBracketed(t *testing.T) {
	_, err := SolveMix(MixBalance{Fraction: 0.05, HDrain: 1200, HCondensate: 640})
	assert.ErrorIs(t, err, ErrRootNotBracketed)
}
