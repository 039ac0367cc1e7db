package plant

import (
	"errors"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"rankine/model"
)

// 核电二回路参数：一个汽水分离再热器，高低压两级汽轮机，凝结水泵 + 给水泵

// 单位
// 1. 压力 bar
// 2. 温度 ℃
// 3. 效率为 0~1 的小数

// 默认工况
const (
	DefaultSteamGeneratorPressure = 56.9   // p1
	DefaultSeparatorPressure      = 5.0    // p2
	DefaultCondenserPressure      = 0.0728 // p4
	DefaultLPInletTemperature     = 250.0  // t3
	DefaultFeedwaterMargin        = 0.05
	DefaultHPEfficiency           = 0.89
	DefaultLPEfficiency           = 0.86
	DefaultPumpEfficiency         = 0.8
)

var ErrInvalidParameters = errors.New("plant: invalid cycle parameters")

type CycleParameters struct {
	SteamGeneratorPressure float64 // 蒸汽发生器出口压力
	SeparatorPressure      float64 // 汽水分离器入口压力
	CondenserPressure      float64 // 凝汽器压力
	LPInletTemperature     float64 // 低压缸入口温度
	FeedwaterMargin        float64 // 给水压力高出蒸汽发生器压力的比例

	HPEfficiency   float64 // 高压缸等熵效率
	LPEfficiency   float64 // 低压缸等熵效率
	PumpEfficiency float64 // 泵效率
}

func NewCycleParameters() CycleParameters {
	return CycleParameters{
		SteamGeneratorPressure: DefaultSteamGeneratorPressure,
		SeparatorPressure:      DefaultSeparatorPressure,
		CondenserPressure:      DefaultCondenserPressure,
		LPInletTemperature:     DefaultLPInletTemperature,
		FeedwaterMargin:        DefaultFeedwaterMargin,
		HPEfficiency:           DefaultHPEfficiency,
		LPEfficiency:           DefaultLPEfficiency,
		PumpEfficiency:         DefaultPumpEfficiency,
	}
}

// FeedwaterPressure 给水泵出口压力 p10
func (c CycleParameters) FeedwaterPressure() float64 {
	return (1 + c.FeedwaterMargin) * c.SteamGeneratorPressure
}

// Validate 只检查压力次序，效率由膨胀、压缩模型自行检查
func (c CycleParameters) Validate() error {
	for _, v := range []float64{c.SteamGeneratorPressure, c.SeparatorPressure, c.CondenserPressure,
		c.LPInletTemperature, c.FeedwaterMargin} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value", ErrInvalidParameters)
		}
	}
	if c.CondenserPressure <= 0 {
		return fmt.Errorf("%w: condenser pressure %g bar", ErrInvalidParameters, c.CondenserPressure)
	}
	if !(c.SteamGeneratorPressure > c.SeparatorPressure && c.SeparatorPressure > c.CondenserPressure) {
		return fmt.Errorf("%w: pressures must satisfy p1 > p2 > p4, got %g, %g, %g",
			ErrInvalidParameters, c.SteamGeneratorPressure, c.SeparatorPressure, c.CondenserPressure)
	}
	if c.FeedwaterMargin < 0 {
		return fmt.Errorf("%w: feedwater margin %g", ErrInvalidParameters, c.FeedwaterMargin)
	}
	return nil
}

// SetFromEnv 用客户端参数覆盖，nil 字段保持不变
func (c *CycleParameters) SetFromEnv(env model.Env) {
	setters := []struct {
		v   *float64
		set func(float64)
	}{
		{env.SteamGeneratorPressure, c.SetSteamGeneratorPressure},
		{env.SeparatorPressure, c.SetSeparatorPressure},
		{env.CondenserPressure, c.SetCondenserPressure},
		{env.LPInletTemperature, c.SetLPInletTemperature},
		{env.FeedwaterMargin, c.SetFeedwaterMargin},
		{env.HPEfficiency, c.SetHPEfficiency},
		{env.LPEfficiency, c.SetLPEfficiency},
		{env.PumpEfficiency, c.SetPumpEfficiency},
	}
	for _, s := range setters {
		if s.v != nil {
			s.set(*s.v)
		}
	}
	log.WithFields(c.Fields()).Debug("循环参数")
}

func (c *CycleParameters) SetSteamGeneratorPressure(p float64) {
	c.SteamGeneratorPressure = p
	log.WithField("SteamGeneratorPressure", p).Info("设置蒸汽发生器出口压力")
}

func (c *CycleParameters) SetSeparatorPressure(p float64) {
	c.SeparatorPressure = p
	log.WithField("SeparatorPressure", p).Info("设置汽水分离器压力")
}

func (c *CycleParameters) SetCondenserPressure(p float64) {
	c.CondenserPressure = p
	log.WithField("CondenserPressure", p).Info("设置凝汽器压力")
}

func (c *CycleParameters) SetLPInletTemperature(t float64) {
	c.LPInletTemperature = t
	log.WithField("LPInletTemperature", t).Info("设置低压缸入口温度")
}

func (c *CycleParameters) SetFeedwaterMargin(m float64) {
	c.FeedwaterMargin = m
	log.WithFields(log.Fields{
		"FeedwaterMargin":   m,
		"FeedwaterPressure": c.FeedwaterPressure(),
	}).Info("设置给水压力裕量")
}

func (c *CycleParameters) SetHPEfficiency(eff float64) {
	c.HPEfficiency = eff
	log.WithField("HPEfficiency", eff).Info("设置高压缸效率")
}

func (c *CycleParameters) SetLPEfficiency(eff float64) {
	c.LPEfficiency = eff
	log.WithField("LPEfficiency", eff).Info("设置低压缸效率")
}

func (c *CycleParameters) SetPumpEfficiency(eff float64) {
	c.PumpEfficiency = eff
	log.WithField("PumpEfficiency", eff).Info("设置泵效率")
}

func (c CycleParameters) Fields() log.Fields {
	return log.Fields{
		"SteamGeneratorPressure": c.SteamGeneratorPressure,
		"SeparatorPressure":      c.SeparatorPressure,
		"CondenserPressure":      c.CondenserPressure,
		"LPInletTemperature":     c.LPInletTemperature,
		"FeedwaterPressure":      c.FeedwaterPressure(),
		"HPEfficiency":           c.HPEfficiency,
		"LPEfficiency":           c.LPEfficiency,
		"PumpEfficiency":         c.PumpEfficiency,
	}
}
