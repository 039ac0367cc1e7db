package calculator

import (
	"fmt"
	"math"
)

// Expansion 汽轮机级的膨胀模型
// 出口实际焓 = 入口焓 - 效率 * (入口焓 - 等熵出口焓)
type Expansion struct {
	oracle PropertyOracle
}

func NewExpansion(oracle PropertyOracle) Expansion {
	return Expansion{oracle: oracle}
}

// 膨胀允许效率为 0（不做功）
func checkExpansionEfficiency(eff float64) error {
	if math.IsNaN(eff) || eff < 0 || eff > 1 {
		return fmt.Errorf("%w: expansion efficiency %g not in [0, 1]", ErrInvalidEfficiency, eff)
	}
	return nil
}

// FromSaturatedVapor 入口为 pIn 下的饱和蒸汽
func (e Expansion) FromSaturatedVapor(pIn, pOut, eff float64) (float64, error) {
	if err := checkExpansionEfficiency(eff); err != nil {
		return 0, err
	}
	t0, err := e.oracle.Tsat(pIn)
	if err != nil {
		return 0, property(err)
	}
	h0, err := e.oracle.HTX(t0, 1)
	if err != nil {
		return 0, property(err)
	}
	s0, err := e.oracle.SPH(pIn, h0)
	if err != nil {
		return 0, property(err)
	}
	// 等熵膨胀到 pOut
	t1, err := e.oracle.Tsat(pOut)
	if err != nil {
		return 0, property(err)
	}
	x1, err := e.oracle.XPS(pOut, s0)
	if err != nil {
		return 0, property(err)
	}
	h1, err := e.oracle.HTX(t1, x1)
	if err != nil {
		return 0, property(err)
	}
	return h0 - (h0-h1)*eff, nil
}

// FromPressureTemperature 入口为 (pIn, tIn) 的过热蒸汽
func (e Expansion) FromPressureTemperature(pIn, tIn, pOut, eff float64) (float64, error) {
	if err := checkExpansionEfficiency(eff); err != nil {
		return 0, err
	}
	h0, err := e.oracle.HPT(pIn, tIn)
	if err != nil {
		return 0, property(err)
	}
	s0, err := e.oracle.SPT(pIn, tIn)
	if err != nil {
		return 0, property(err)
	}
	t1, err := e.oracle.TPS(pOut, s0)
	if err != nil {
		return 0, property(err)
	}
	x1, err := e.oracle.XPS(pOut, s0)
	if err != nil {
		return 0, property(err)
	}
	h1, err := e.oracle.HTX(t1, x1)
	if err != nil {
		return 0, property(err)
	}
	return h0 - (h0-h1)*eff, nil
}
