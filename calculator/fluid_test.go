package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rankine/plant"
)

// idealFluid 解析形式的简化工质，各查询互为精确反函数：
// 饱和温度 t = 100 + 30 ln p，过冷水 h = cpL t + vL p，过热蒸汽 h = hV + cpV (t - tsat)
type idealFluid struct{}

const (
	cpL = 4.2
	cpV = 2.0
	vL  = 0.1
)

var errIdealRange = errors.New("ideal fluid: out of range")

type idealSat struct {
	t, tk, hL, hV, sL, sV float64
}

func idealSaturation(p float64) (idealSat, error) {
	if !(p > 0) {
		return idealSat{}, errIdealRange
	}
	t := 100 + 30*math.Log(p)
	tk := t + 273.15
	hL := cpL*t + vL*p
	hV := 2500 + t
	sL := cpL * math.Log(tk/273.15)
	return idealSat{t: t, tk: tk, hL: hL, hV: hV, sL: sL, sV: sL + (hV-hL)/tk}, nil
}

func idealPsat(t float64) float64 {
	return math.Exp((t - 100) / 30)
}

func (idealFluid) Tsat(p float64) (float64, error) {
	sat, err := idealSaturation(p)
	return sat.t, err
}

func (idealFluid) pt(p, t float64) (h, s float64, err error) {
	sat, err := idealSaturation(p)
	if err != nil {
		return 0, 0, err
	}
	tk := t + 273.15
	if t < sat.t {
		return cpL*t + vL*p, cpL * math.Log(tk/273.15), nil
	}
	return sat.hV + cpV*(t-sat.t), sat.sV + cpV*math.Log(tk/sat.tk), nil
}

func (f idealFluid) HPT(p, t float64) (float64, error) {
	h, _, err := f.pt(p, t)
	return h, err
}

func (f idealFluid) SPT(p, t float64) (float64, error) {
	_, s, err := f.pt(p, t)
	return s, err
}

func (idealFluid) HPX(p, x float64) (float64, error) {
	sat, err := idealSaturation(p)
	return sat.hL + x*(sat.hV-sat.hL), err
}

func (f idealFluid) HTX(t, x float64) (float64, error) {
	return f.HPX(idealPsat(t), x)
}

// state 返回温度、焓、熵和未截断的干度
func (idealFluid) state(p, v float64, byEntropy bool) (t, h, s, x float64, err error) {
	sat, err := idealSaturation(p)
	if err != nil {
		return
	}
	lo, hi := sat.hL, sat.hV
	if byEntropy {
		lo, hi = sat.sL, sat.sV
	}
	x = (v - lo) / (hi - lo)
	switch {
	case x >= 0 && x <= 1:
		return sat.t, sat.hL + x*(sat.hV-sat.hL), sat.sL + x*(sat.sV-sat.sL), x, nil
	case x < 0 && byEntropy:
		t = 273.15*math.Exp(v/cpL) - 273.15
		return t, cpL*t + vL*p, v, x, nil
	case x < 0:
		t = (v - vL*p) / cpL
		return t, v, cpL * math.Log((t+273.15)/273.15), x, nil
	case byEntropy:
		t = sat.tk*math.Exp((v-sat.sV)/cpV) - 273.15
		return t, sat.hV + cpV*(t-sat.t), v, x, nil
	default:
		t = sat.t + (v-sat.hV)/cpV
		return t, v, sat.sV + cpV*math.Log((t+273.15)/sat.tk), x, nil
	}
}

func (f idealFluid) SPH(p, h float64) (float64, error) {
	_, _, s, _, err := f.state(p, h, false)
	return s, err
}

func (f idealFluid) TPH(p, h float64) (float64, error) {
	t, _, _, _, err := f.state(p, h, false)
	return t, err
}

func (f idealFluid) XPH(p, h float64) (float64, error) {
	_, _, _, x, err := f.state(p, h, false)
	return math.Max(0, math.Min(1, x)), err
}

func (f idealFluid) TPS(p, s float64) (float64, error) {
	t, _, _, _, err := f.state(p, s, true)
	return t, err
}

func (f idealFluid) XPS(p, s float64) (float64, error) {
	_, _, _, x, err := f.state(p, s, true)
	return math.Max(0, math.Min(1, x)), err
}

func (f idealFluid) HPS(p, s float64) (float64, error) {
	_, h, _, _, err := f.state(p, s, true)
	return h, err
}

func (idealFluid) SLT(t float64) (float64, error) {
	sat, err := idealSaturation(idealPsat(t))
	return sat.sL, err
}

func (idealFluid) SVT(t float64) (float64, error) {
	sat, err := idealSaturation(idealPsat(t))
	return sat.sV, err
}

// 用解析工质检查各状态点、两个求解器的根和能量守恒
func TestStateGraph_IdealFluid(t *testing.T) {
	f := idealFluid{}
	params := plant.NewCycleParameters()
	c, err := NewStateGraph(f, params).Evaluate()
	require.NoError(t, err)

	p1, p2, p4 := params.SteamGeneratorPressure, params.SeparatorPressure, params.CondenserPressure
	pump := params.PumpEfficiency
	h := func(id PointID) float64 { return c.Point(id).Enthalpy }

	t1, _ := f.Tsat(p1)
	assert.Equal(t, t1, c.Point(MainSteam).Temperature)
	hV1, _ := f.HPX(p1, 1)
	assert.Equal(t, hV1, h(MainSteam))

	// 水的等熵压缩只改变压力项
	assert.InDelta(t, vL*(p2-p4)/pump, h(CEP1Outlet)-h(CondenserOutlet), 1e-9)
	assert.InDelta(t, vL*(p1-p2)/pump, h(CEP2Outlet)-h(CEP2Inlet), 1e-9)
	assert.InDelta(t, vL*(params.FeedwaterPressure()-p1)/pump, h(FeedpumpOutlet)-h(FeedpumpInlet), 1e-9)

	// 抽汽份额的解析根 a* = x2 (h3 - hV2) / (h1 - hw1)
	x2, a := c.SeparatorQuality, c.ExtractionFraction
	hw1, _ := f.HPX(p1, 0)
	hV2, _ := f.HPX(p2, 1)
	root := x2 * (h(LPInlet) - hV2) / (h(MainSteam) - hw1)
	assert.Greater(t, root, 0.0)
	assert.GreaterOrEqual(t, a, root-1e-9)
	assert.LessOrEqual(t, a-root, 1e-4+1e-9)

	h9 := (a*hw1 + h(CEP2Outlet)) / (1 + a)
	assert.GreaterOrEqual(t, h(FeedpumpInlet), h9-1e-9)
	assert.LessOrEqual(t, h(FeedpumpInlet)-h9, 0.01+1e-9)

	perf := Aggregate(c)
	bound := 1e-4*(h(MainSteam)-hw1) + (1+a)*0.01
	assert.Less(t, math.Abs(perf.EnergyImbalance()), bound+1e-9)
	assert.InDelta(t, perf.CondenserDuty, perf.HeatInput-perf.NetWork(), bound+1e-9)
	assert.Greater(t, perf.Efficiency, 0.0)
	assert.Less(t, perf.Efficiency, 1.0)
	assert.InDelta(t, 3600/perf.Efficiency, perf.HeatRate, 1e-9)
}
