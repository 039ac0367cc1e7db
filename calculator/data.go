package calculator

import (
	"github.com/shopspring/decimal"
	"rankine/model"
)

// 推送给前端的数据，数值只为显示而取整，不参与后续计算

type PointData struct {
	Index       int      `json:"index"`
	Name        string   `json:"name"`
	Pressure    float64  `json:"pressure"`          // bar
	Temperature float64  `json:"temperature"`       // ℃
	Enthalpy    float64  `json:"enthalpy"`          // kJ/kg
	Entropy     float64  `json:"entropy"`           // kJ/(kg·K)
	Quality     *float64 `json:"quality,omitempty"` // 仅两相点
}

type SummaryData struct {
	HPWork             float64 `json:"hp_work"`
	LPWork             float64 `json:"lp_work"`
	PumpWork           float64 `json:"pump_work"`
	HeatInput          float64 `json:"heat_input"`
	CondenserDuty      float64 `json:"condenser_duty"`
	ExtractionFraction float64 `json:"extraction_fraction"` // %
	Efficiency         float64 `json:"efficiency"`          // %
	HeatRate           float64 `json:"heat_rate"`           // kJ/kWh
}

type ReportData struct {
	Run     string      `json:"run"`
	Points  []PointData `json:"points"`
	Summary SummaryData `json:"summary"`
}

// Vertex T-s 图上的一个点
type Vertex struct {
	S float64 `json:"s"`
	T float64 `json:"t"`
}

type DiagramData struct {
	Run             string   `json:"run"`
	SaturatedLiquid []Vertex `json:"saturated_liquid"`
	SaturatedVapor  []Vertex `json:"saturated_vapor"`
	Cycle           []Vertex `json:"cycle"`
}

func round(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// 低于 1 bar 的压力和给水压力多保留几位
func pressurePlaces(id PointID, p float64) int32 {
	if p < 1 || id == FeedpumpOutlet {
		return model.LowPressurePlaces
	}
	return model.PressurePlaces
}

// BuildReport 生成各状态点和汇总的显示数据
func BuildReport(c *Cycle, perf Performance) ReportData {
	points := make([]PointData, 0, len(c.Points))
	for _, sp := range c.Points {
		pd := PointData{
			Index:       int(sp.ID),
			Name:        sp.ID.String(),
			Pressure:    round(sp.Pressure, pressurePlaces(sp.ID, sp.Pressure)),
			Temperature: round(sp.Temperature, model.TemperaturePlaces),
			Enthalpy:    round(sp.Enthalpy, model.EnthalpyPlaces),
			Entropy:     round(sp.Entropy, model.EntropyPlaces),
		}
		if x, ok := sp.Quality(); ok {
			q := round(x, model.EntropyPlaces)
			pd.Quality = &q
		}
		points = append(points, pd)
	}
	return ReportData{
		Run:    c.ID.String(),
		Points: points,
		Summary: SummaryData{
			HPWork:             round(perf.HPWork, model.EnthalpyPlaces),
			LPWork:             round(perf.LPWork, model.EnthalpyPlaces),
			PumpWork:           round(perf.PumpWork, model.EnthalpyPlaces),
			HeatInput:          round(perf.HeatInput, model.EnthalpyPlaces),
			CondenserDuty:      round(perf.CondenserDuty, model.EnthalpyPlaces),
			ExtractionFraction: round(c.ExtractionFraction*100, model.PercentPlaces),
			Efficiency:         round(perf.Efficiency*100, model.PercentPlaces),
			HeatRate:           round(perf.HeatRate, model.EnthalpyPlaces),
		},
	}
}

// 循环在 T-s 图上的走向：10 → 1a → 1 → 2 → 2a → 3 → 4 → 5 → 10
// 1a 为 p1 下的饱和水，2a 为 p2 下的饱和蒸汽
func cyclePath(oracle PropertyOracle, c *Cycle) ([]Vertex, error) {
	at := func(id PointID) Vertex {
		sp := c.Point(id)
		return Vertex{S: sp.Entropy, T: sp.Temperature}
	}
	saturated := func(id PointID, x float64) (Vertex, error) {
		sp := c.Point(id)
		t, err := oracle.Tsat(sp.Pressure)
		if err != nil {
			return Vertex{}, property(err)
		}
		h, err := oracle.HPX(sp.Pressure, x)
		if err != nil {
			return Vertex{}, property(err)
		}
		s, err := oracle.SPH(sp.Pressure, h)
		if err != nil {
			return Vertex{}, property(err)
		}
		return Vertex{S: s, T: t}, nil
	}
	v1a, err := saturated(MainSteam, 0)
	if err != nil {
		return nil, err
	}
	v2a, err := saturated(SeparatorInlet, 1)
	if err != nil {
		return nil, err
	}
	return []Vertex{
		at(FeedpumpOutlet), v1a, at(MainSteam), at(SeparatorInlet), v2a,
		at(LPInlet), at(LPExhaust), at(CondenserOutlet), at(FeedpumpOutlet),
	}, nil
}

// BuildDiagram 饱和线在 [0, maxT] 上等分取 samples 个点
func BuildDiagram(oracle PropertyOracle, c *Cycle, samples int, maxT float64) (DiagramData, error) {
	if samples < 2 {
		samples = 2
	}
	d := DiagramData{
		Run:             c.ID.String(),
		SaturatedLiquid: make([]Vertex, 0, samples),
		SaturatedVapor:  make([]Vertex, 0, samples),
	}
	for i := 0; i < samples; i++ {
		t := maxT * float64(i) / float64(samples-1)
		sL, err := oracle.SLT(t)
		if err != nil {
			return DiagramData{}, &CycleError{Stage: StageDiagram, Err: property(err)}
		}
		sV, err := oracle.SVT(t)
		if err != nil {
			return DiagramData{}, &CycleError{Stage: StageDiagram, Err: property(err)}
		}
		d.SaturatedLiquid = append(d.SaturatedLiquid, Vertex{S: sL, T: t})
		d.SaturatedVapor = append(d.SaturatedVapor, Vertex{S: sV, T: t})
	}
	path, err := cyclePath(oracle, c)
	if err != nil {
		return DiagramData{}, &CycleError{Stage: StageDiagram, Err: err}
	}
	d.Cycle = path
	return d, nil
}
