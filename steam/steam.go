// Package steam 提供水和水蒸气的物性查询（IAPWS-IF97 的 1、2、4 区）。
// 对外单位：压力 bar，温度 ℃，焓 kJ/kg，熵 kJ/(kg·K)。
package steam

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange 查询参数超出物性表的适用范围
var ErrOutOfRange = errors.New("steam: property out of range")

const (
	barToMPa = 0.1
	kelvin   = 273.15

	// PMax 1、2 区与饱和线相接的最高压力，bar
	PMax = pRegion4Max * 10
	// PMin 三相点压力，bar
	PMin = pTriple * 10
	// TSatMax 本表可给出饱和物性的最高温度，℃
	TSatMax = tRegion1Max - kelvin
	// TMax 2 区适用的最高温度，℃
	TMax = tRegion2Max - kelvin
)

// Table 物性表，无内部状态，可并发复用
type Table struct{}

func NewTable() *Table {
	return &Table{}
}

func outOfRange(lookup string, a, b float64) error {
	return fmt.Errorf("%w: %s(%g, %g)", ErrOutOfRange, lookup, a, b)
}

func checkP(lookup string, p, other float64) error {
	if math.IsNaN(p) || p < PMin || p > PMax {
		return outOfRange(lookup, p, other)
	}
	return nil
}

func checkT(lookup string, t, other float64) error {
	if math.IsNaN(t) || t < 0 || t > TMax {
		return outOfRange(lookup, t, other)
	}
	return nil
}

func checkX(lookup string, x, other float64) error {
	if math.IsNaN(x) || x < 0 || x > 1 {
		return outOfRange(lookup, other, x)
	}
	return nil
}

// 饱和状态，pm MPa，tk K
type saturation struct {
	tk, hL, hV, sL, sV float64
}

func saturationAt(pm float64) saturation {
	tk := tsat4(pm)
	hL, sL := region1(pm, tk)
	hV, sV := region2(pm, tk)
	return saturation{tk: tk, hL: hL, hV: hV, sL: sL, sV: sV}
}

// Tsat 饱和温度
func (tb *Table) Tsat(p float64) (float64, error) {
	if err := checkP("Tsat", p, 0); err != nil {
		return 0, err
	}
	return tsat4(p*barToMPa) - kelvin, nil
}

// Psat 饱和压力
func (tb *Table) Psat(t float64) (float64, error) {
	if math.IsNaN(t) || t < 0 || t > TSatMax {
		return 0, outOfRange("Psat", t, 0)
	}
	return psat4(t+kelvin) / barToMPa, nil
}

// pt 按温度高低选择 1 区或 2 区
func (tb *Table) pt(lookup string, p, t float64) (h, s float64, err error) {
	if err = checkP(lookup, p, t); err != nil {
		return
	}
	if err = checkT(lookup, t, p); err != nil {
		return
	}
	pm, tk := p*barToMPa, t+kelvin
	if tk < tsat4(pm) {
		h, s = region1(pm, tk)
	} else {
		h, s = region2(pm, tk)
	}
	return
}

// HPT 由压力、温度求焓
func (tb *Table) HPT(p, t float64) (float64, error) {
	h, _, err := tb.pt("HPT", p, t)
	return h, err
}

// SPT 由压力、温度求熵
func (tb *Table) SPT(p, t float64) (float64, error) {
	_, s, err := tb.pt("SPT", p, t)
	return s, err
}

// HPX 由压力、干度求焓
func (tb *Table) HPX(p, x float64) (float64, error) {
	if err := checkP("HPX", p, x); err != nil {
		return 0, err
	}
	if err := checkX("HPX", x, p); err != nil {
		return 0, err
	}
	sat := saturationAt(p * barToMPa)
	return sat.hL + x*(sat.hV-sat.hL), nil
}

// HTX 由温度、干度求焓
func (tb *Table) HTX(t, x float64) (float64, error) {
	p, err := tb.Psat(t)
	if err != nil {
		return 0, err
	}
	if err := checkX("HTX", x, t); err != nil {
		return 0, err
	}
	sat := saturationAt(p * barToMPa)
	return sat.hL + x*(sat.hV-sat.hL), nil
}

// state 由压力和焓（或熵）确定状态，返回温度 K、焓、熵和未截断的干度
func (tb *Table) state(lookup string, p, v float64, byEntropy bool) (tk, h, s, x float64, err error) {
	if err = checkP(lookup, p, v); err != nil {
		return
	}
	if math.IsNaN(v) {
		err = outOfRange(lookup, p, v)
		return
	}
	pm := p * barToMPa
	sat := saturationAt(pm)
	lo, hi := sat.hL, sat.hV
	pick := func(h, s float64) float64 { return h }
	if byEntropy {
		lo, hi = sat.sL, sat.sV
		pick = func(h, s float64) float64 { return s }
	}
	x = (v - lo) / (hi - lo)

	switch {
	case x >= 0 && x <= 1:
		return sat.tk, sat.hL + x*(sat.hV-sat.hL), sat.sL + x*(sat.sV-sat.sL), x, nil
	case x < 0:
		h0, s0 := region1(pm, tTriple)
		if v < pick(h0, s0) {
			err = outOfRange(lookup, p, v)
			return
		}
		tk = bisect(func(t float64) float64 { return pick(region1(pm, t)) }, v, tTriple, sat.tk)
		h, s = region1(pm, tk)
	default:
		h1, s1 := region2(pm, tRegion2Max)
		if v > pick(h1, s1) {
			err = outOfRange(lookup, p, v)
			return
		}
		tk = bisect(func(t float64) float64 { return pick(region2(pm, t)) }, v, sat.tk, tRegion2Max)
		h, s = region2(pm, tk)
	}
	return
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// SPH 由压力、焓求熵
func (tb *Table) SPH(p, h float64) (float64, error) {
	_, _, s, _, err := tb.state("SPH", p, h, false)
	return s, err
}

// TPH 由压力、焓求温度
func (tb *Table) TPH(p, h float64) (float64, error) {
	tk, _, _, _, err := tb.state("TPH", p, h, false)
	return tk - kelvin, err
}

// XPH 由压力、焓求干度，单相区截断到 0 或 1
func (tb *Table) XPH(p, h float64) (float64, error) {
	_, _, _, x, err := tb.state("XPH", p, h, false)
	return clamp01(x), err
}

// TPS 由压力、熵求温度
func (tb *Table) TPS(p, s float64) (float64, error) {
	tk, _, _, _, err := tb.state("TPS", p, s, true)
	return tk - kelvin, err
}

// XPS 由压力、熵求干度，单相区截断到 0 或 1
func (tb *Table) XPS(p, s float64) (float64, error) {
	_, _, _, x, err := tb.state("XPS", p, s, true)
	return clamp01(x), err
}

// HPS 由压力、熵求焓
func (tb *Table) HPS(p, s float64) (float64, error) {
	_, h, _, _, err := tb.state("HPS", p, s, true)
	return h, err
}

// SLT 饱和水熵
func (tb *Table) SLT(t float64) (float64, error) {
	p, err := tb.Psat(t)
	if err != nil {
		return 0, err
	}
	return saturationAt(p * barToMPa).sL, nil
}

// SVT 饱和蒸汽熵
func (tb *Table) SVT(t float64) (float64, error) {
	p, err := tb.Psat(t)
	if err != nil {
		return 0, err
	}
	return saturationAt(p * barToMPa).sV, nil
}
