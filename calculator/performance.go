package calculator

// Performance 循环性能指标，单位 kJ/kg（按高压缸单位流量计）
type Performance struct {
	HPWork        float64 // 高压缸做功
	LPWork        float64 // 低压缸做功，只有分离后的干蒸汽进入低压缸
	PumpWork      float64 // 三台泵耗功
	HeatInput     float64 // 蒸汽发生器吸热，含再热抽汽
	CondenserDuty float64 // 凝汽器放热
	Efficiency    float64 // 热效率
	HeatRate      float64 // 热耗率 kJ/kWh
}

// Aggregate 由已算出的状态点汇总性能，各段按该段的相对流量加权
func Aggregate(c *Cycle) Performance {
	p := func(id PointID) StatePoint { return c.Point(id) }

	var perf Performance
	perf.PumpWork = p(CEP1Outlet).Flow*(p(CEP1Outlet).Enthalpy-p(CondenserOutlet).Enthalpy) +
		p(CEP2Outlet).Flow*(p(CEP2Outlet).Enthalpy-p(CEP2Inlet).Enthalpy) +
		p(FeedpumpOutlet).Flow*(p(FeedpumpOutlet).Enthalpy-p(FeedpumpInlet).Enthalpy)
	perf.HPWork = p(SeparatorInlet).Flow * (p(MainSteam).Enthalpy - p(SeparatorInlet).Enthalpy)
	perf.LPWork = p(LPExhaust).Flow * (p(LPInlet).Enthalpy - p(LPExhaust).Enthalpy)
	perf.HeatInput = p(FeedpumpOutlet).Flow * (p(MainSteam).Enthalpy - p(FeedpumpOutlet).Enthalpy)
	perf.CondenserDuty = p(CondenserOutlet).Flow * (p(LPExhaust).Enthalpy - p(CondenserOutlet).Enthalpy)

	perf.Efficiency = perf.NetWork() / perf.HeatInput
	perf.HeatRate = 3600 / perf.Efficiency
	return perf
}

// TurbineWork 两级汽轮机总功
func (p Performance) TurbineWork() float64 {
	return p.HPWork + p.LPWork
}

// NetWork 净功
func (p Performance) NetWork() float64 {
	return p.TurbineWork() - p.PumpWork
}

// EnergyImbalance 吸热 - 净功 - 放热，两个网格搜索的分辨率决定了它的大小
func (p Performance) EnergyImbalance() float64 {
	return p.HeatInput - p.NetWork() - p.CondenserDuty
}
