package calculator

import (
	"fmt"
	"math"
)

// Compression 泵的压缩模型
// 出口实际焓 = 入口焓 + (等熵出口焓 - 入口焓) / 效率
type Compression struct {
	oracle PropertyOracle
}

func NewCompression(oracle PropertyOracle) Compression {
	return Compression{oracle: oracle}
}

func checkCompressionEfficiency(eff float64) error {
	if math.IsNaN(eff) || eff <= 0 || eff > 1 {
		return fmt.Errorf("%w: compression efficiency %g not in (0, 1]", ErrInvalidEfficiency, eff)
	}
	return nil
}

// FromSaturatedLiquid 入口为 pIn 下的饱和水
func (c Compression) FromSaturatedLiquid(pIn, pOut, eff float64) (float64, error) {
	if err := checkCompressionEfficiency(eff); err != nil {
		return 0, err
	}
	h0, err := c.oracle.HPX(pIn, 0)
	if err != nil {
		return 0, property(err)
	}
	s0, err := c.oracle.SPH(pIn, h0)
	if err != nil {
		return 0, property(err)
	}
	return c.finish(h0, s0, pOut, eff)
}

// FromPressureTemperature 入口为 (pIn, tIn) 的过冷水
func (c Compression) FromPressureTemperature(pIn, tIn, pOut, eff float64) (float64, error) {
	if err := checkCompressionEfficiency(eff); err != nil {
		return 0, err
	}
	h0, err := c.oracle.HPT(pIn, tIn)
	if err != nil {
		return 0, property(err)
	}
	s0, err := c.oracle.SPT(pIn, tIn)
	if err != nil {
		return 0, property(err)
	}
	return c.finish(h0, s0, pOut, eff)
}

func (c Compression) finish(h0, s0, pOut, eff float64) (float64, error) {
	h1, err := c.oracle.HPS(pOut, s0)
	if err != nil {
		return 0, property(err)
	}
	return h0 + (h1-h0)/eff, nil
}
