package steam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// IAPWS-IF97 校验值
func TestRegion1(t *testing.T) {
	cases := []struct {
		p, t, h, s float64
	}{
		{3, 300, 0.115331273e3, 0.392294792},
		{80, 300, 0.184142828e3, 0.368563852},
		{3, 500, 0.975542239e3, 0.258041912e1},
	}
	for _, c := range cases {
		h, s := region1(c.p, c.t)
		assert.InDelta(t, c.h, h, 1e-5)
		assert.InDelta(t, c.s, s, 1e-7)
	}
}

func TestRegion2(t *testing.T) {
	cases := []struct {
		p, t, h, s float64
	}{
		{0.0035, 300, 0.254991145e4, 0.852238967e1},
		{0.0035, 700, 0.333568375e4, 0.101749996e2},
		{30, 700, 0.263149474e4, 0.517540298e1},
	}
	for _, c := range cases {
		h, s := region2(c.p, c.t)
		assert.InDelta(t, c.h, h, 1e-4)
		assert.InDelta(t, c.s, s, 1e-6)
	}
}

func TestRegion4(t *testing.T) {
	assert.InDelta(t, 0.353658941e-2, psat4(300), 1e-10)
	assert.InDelta(t, 0.263889776e1, psat4(500), 1e-7)
	assert.InDelta(t, 0.123443146e2, psat4(600), 1e-6)

	assert.InDelta(t, 0.372755919e3, tsat4(0.1), 1e-5)
	assert.InDelta(t, 0.453035632e3, tsat4(1), 1e-5)
	assert.InDelta(t, 0.584149488e3, tsat4(10), 1e-5)
}

func TestTable_Saturation(t *testing.T) {
	tb := NewTable()

	ts, err := tb.Tsat(1.01325)
	require.NoError(t, err)
	assert.InDelta(t, 99.97, ts, 0.01)

	p, err := tb.Psat(ts)
	require.NoError(t, err)
	assert.InDelta(t, 1.01325, p, 1e-5)

	hL, err := tb.HPX(10, 0)
	require.NoError(t, err)
	hV, err := tb.HPX(10, 1)
	require.NoError(t, err)
	assert.InDelta(t, 762.7, hL, 0.5)
	assert.InDelta(t, 2777.1, hV, 0.5)

	h, err := tb.HTX(ts, 0.5)
	require.NoError(t, err)
	hL1, _ := tb.HPX(1.01325, 0)
	hV1, _ := tb.HPX(1.01325, 1)
	assert.InDelta(t, (hL1+hV1)/2, h, 1e-3)

	sL, err := tb.SLT(ts)
	require.NoError(t, err)
	sV, err := tb.SVT(ts)
	require.NoError(t, err)
	assert.InDelta(t, 1.307, sL, 0.002)
	assert.InDelta(t, 7.354, sV, 0.002)
}

// 饱和水焓覆盖 1 区在低压（π 较大）和高压两端的取值
func TestTable_SaturatedLiquid(t *testing.T) {
	tb := NewTable()
	cases := []struct {
		p, hL float64
	}{
		{0.0728, 165.8},
		{1, 417.4},
		{56.9, 1196.0},
		{150, 1610.2},
	}
	for _, c := range cases {
		h, err := tb.HPX(c.p, 0)
		require.NoError(t, err)
		assert.InDelta(t, c.hL, h, 1, "p %g", c.p)

		ts, err := tb.Tsat(c.p)
		require.NoError(t, err)
		h, err = tb.HPT(c.p, ts-20)
		require.NoError(t, err)
		tt, err := tb.TPH(c.p, h)
		require.NoError(t, err)
		assert.InDelta(t, ts-20, tt, 1e-6, "p %g", c.p)
	}
}

func TestTable_BackwardLookups(t *testing.T) {
	tb := NewTable()

	// 过热
	h, err := tb.HPT(5, 250)
	require.NoError(t, err)
	s, err := tb.SPT(5, 250)
	require.NoError(t, err)
	tt, err := tb.TPH(5, h)
	require.NoError(t, err)
	assert.InDelta(t, 250, tt, 1e-6)
	tt, err = tb.TPS(5, s)
	require.NoError(t, err)
	assert.InDelta(t, 250, tt, 1e-6)
	hs, err := tb.HPS(5, s)
	require.NoError(t, err)
	assert.InDelta(t, h, hs, 1e-5)
	x, err := tb.XPS(5, s)
	require.NoError(t, err)
	assert.Equal(t, 1.0, x)

	// 过冷
	h, err = tb.HPT(56.9, 80)
	require.NoError(t, err)
	tt, err = tb.TPH(56.9, h)
	require.NoError(t, err)
	assert.InDelta(t, 80, tt, 1e-6)
	x, err = tb.XPH(56.9, h)
	require.NoError(t, err)
	assert.Equal(t, 0.0, x)

	// 两相
	hL, _ := tb.HPX(0.0728, 0)
	hV, _ := tb.HPX(0.0728, 1)
	hm := hL + 0.3*(hV-hL)
	x, err = tb.XPH(0.0728, hm)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, x, 1e-12)
	sm, err := tb.SPH(0.0728, hm)
	require.NoError(t, err)
	x, err = tb.XPS(0.0728, sm)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, x, 1e-9)
	ts, _ := tb.Tsat(0.0728)
	tt, err = tb.TPH(0.0728, hm)
	require.NoError(t, err)
	assert.InDelta(t, ts, tt, 1e-9)
}

func TestTable_OutOfRange(t *testing.T) {
	tb := NewTable()

	_, err := tb.Tsat(250)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = tb.HPX(10, -0.1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = tb.HPX(10, 1.1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = tb.HPT(10, 900)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = tb.Psat(360)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = tb.SPH(10, 1e5)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = tb.SPH(10, -100)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
