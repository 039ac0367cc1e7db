package calculator

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"rankine/model"
	"rankine/plant"
)

// 饱和线上的点（x 为 0 或 1）允许的舍入误差
const qualityTolerance = 1e-9

// Cycle 一次循环计算的全部结果
type Cycle struct {
	ID                 uuid.UUID
	Parameters         plant.CycleParameters
	Points             [model.PointCount]StatePoint
	ExtractionFraction float64 // 抽往再热器的主蒸汽份额 a
	SeparatorQuality   float64 // 分离器入口干度 x2
}

// Point 按编号取状态点
func (c *Cycle) Point(id PointID) StatePoint {
	return c.Points[id-1]
}

// node 状态图中的一个计算步骤
type node struct {
	stage         string
	id            PointID // 0 表示该步骤不产生状态点
	needs         []PointID
	needsFraction bool
	eval          func(g *StateGraph) error
}

// 计算顺序，每一步只依赖之前已经算出的状态点
var evaluationOrder = []node{
	{stage: pointStage(MainSteam), id: MainSteam, eval: (*StateGraph).mainSteam},
	{stage: pointStage(SeparatorInlet), id: SeparatorInlet, needs: []PointID{MainSteam}, eval: (*StateGraph).separatorInlet},
	{stage: pointStage(LPInlet), id: LPInlet, needs: []PointID{SeparatorInlet}, eval: (*StateGraph).lpInlet},
	{stage: pointStage(LPExhaust), id: LPExhaust, needs: []PointID{LPInlet}, eval: (*StateGraph).lpExhaust},
	{stage: pointStage(CondenserOutlet), id: CondenserOutlet, needs: []PointID{LPExhaust}, eval: (*StateGraph).condenserOutlet},
	{stage: StageExtraction, needs: []PointID{MainSteam, SeparatorInlet, LPInlet}, eval: (*StateGraph).extraction},
	{stage: pointStage(CEP1Outlet), id: CEP1Outlet, needs: []PointID{CondenserOutlet}, eval: (*StateGraph).cep1Outlet},
	{stage: pointStage(CEP2Inlet), id: CEP2Inlet, needs: []PointID{SeparatorInlet, CEP1Outlet}, eval: (*StateGraph).cep2Inlet},
	{stage: pointStage(CEP2Outlet), id: CEP2Outlet, needs: []PointID{CEP2Inlet}, eval: (*StateGraph).cep2Outlet},
	{stage: pointStage(FeedpumpInlet), id: FeedpumpInlet, needs: []PointID{CEP2Outlet}, needsFraction: true, eval: (*StateGraph).feedpumpInlet},
	{stage: pointStage(FeedpumpOutlet), id: FeedpumpOutlet, needs: []PointID{FeedpumpInlet}, needsFraction: true, eval: (*StateGraph).feedpumpOutlet},
}

// StateGraph 按固定依赖顺序计算十个状态点
type StateGraph struct {
	oracle      PropertyOracle
	expansion   Expansion
	compression Compression
	params      plant.CycleParameters

	cycle       Cycle
	done        [model.PointCount + 1]bool
	hasFraction bool
}

func NewStateGraph(oracle PropertyOracle, params plant.CycleParameters) *StateGraph {
	return &StateGraph{
		oracle:      oracle,
		expansion:   NewExpansion(oracle),
		compression: NewCompression(oracle),
		params:      params,
	}
}

// Order 返回计算步骤的顺序
func (g *StateGraph) Order() []string {
	stages := make([]string, 0, len(evaluationOrder))
	for _, n := range evaluationOrder {
		stages = append(stages, n.stage)
	}
	return stages
}

// Evaluate 完成一次循环计算，任一步失败即中止并返回 *CycleError
func (g *StateGraph) Evaluate() (*Cycle, error) {
	g.cycle = Cycle{ID: uuid.New(), Parameters: g.params}
	g.done = [model.PointCount + 1]bool{}
	g.hasFraction = false

	for _, n := range evaluationOrder {
		for _, id := range n.needs {
			if !g.done[id] {
				panic(fmt.Sprintf("calculator: %s evaluated before %s", n.stage, pointStage(id)))
			}
		}
		if n.needsFraction && !g.hasFraction {
			panic(fmt.Sprintf("calculator: %s evaluated before %s", n.stage, StageExtraction))
		}
		if err := n.eval(g); err != nil {
			return nil, &CycleError{Stage: n.stage, Err: err}
		}
		if n.id != 0 {
			g.done[n.id] = true
			p := g.cycle.Point(n.id)
			log.WithFields(log.Fields{
				"run":  g.cycle.ID,
				"P":    p.Pressure,
				"T":    p.Temperature,
				"H":    p.Enthalpy,
				"S":    p.Entropy,
				"flow": p.Flow,
			}).Debugf("状态点 %d %s", int(n.id), n.id)
		}
	}
	c := g.cycle
	return &c, nil
}

func (g *StateGraph) point(id PointID) StatePoint {
	if !g.done[id] {
		panic(fmt.Sprintf("calculator: %s read before it was evaluated", pointStage(id)))
	}
	return g.cycle.Point(id)
}

func (g *StateGraph) fraction() float64 {
	if !g.hasFraction {
		panic("calculator: extraction fraction read before it was evaluated")
	}
	return g.cycle.ExtractionFraction
}

// store 由 (p, t, h) 补全熵和干度后保存状态点
func (g *StateGraph) store(id PointID, p, t, h, flow float64) error {
	s, err := g.oracle.SPH(p, h)
	if err != nil {
		return property(err)
	}
	sp := StatePoint{ID: id, Pressure: p, Temperature: t, Enthalpy: h, Entropy: s, Flow: flow}
	if sp.quality, sp.twoPhase, err = g.quality(p, h); err != nil {
		return err
	}
	g.cycle.Points[id-1] = sp
	return nil
}

// quality 只有落在饱和线之间的点才有干度
func (g *StateGraph) quality(p, h float64) (float64, bool, error) {
	hL, err := g.oracle.HPX(p, 0)
	if err != nil {
		return 0, false, property(err)
	}
	hV, err := g.oracle.HPX(p, 1)
	if err != nil {
		return 0, false, property(err)
	}
	x := (h - hL) / (hV - hL)
	if x < -qualityTolerance || x > 1+qualityTolerance {
		return 0, false, nil
	}
	return math.Max(0, math.Min(1, x)), true, nil
}

// storePH 温度由 (p, h) 反算
func (g *StateGraph) storePH(id PointID, p, h, flow float64) error {
	t, err := g.oracle.TPH(p, h)
	if err != nil {
		return property(err)
	}
	return g.store(id, p, t, h, flow)
}

func (g *StateGraph) mainSteam() error {
	p1 := g.params.SteamGeneratorPressure
	t1, err := g.oracle.Tsat(p1)
	if err != nil {
		return property(err)
	}
	h1, err := g.oracle.HPX(p1, 1)
	if err != nil {
		return property(err)
	}
	return g.store(MainSteam, p1, t1, h1, 1)
}

func (g *StateGraph) separatorInlet() error {
	p1, p2 := g.point(MainSteam).Pressure, g.params.SeparatorPressure
	h2, err := g.expansion.FromSaturatedVapor(p1, p2, g.params.HPEfficiency)
	if err != nil {
		return err
	}
	t2, err := g.oracle.Tsat(p2)
	if err != nil {
		return property(err)
	}
	x2, err := g.oracle.XPH(p2, h2)
	if err != nil {
		return property(err)
	}
	g.cycle.SeparatorQuality = x2
	return g.store(SeparatorInlet, p2, t2, h2, 1)
}

func (g *StateGraph) lpInlet() error {
	p3, t3 := g.point(SeparatorInlet).Pressure, g.params.LPInletTemperature
	h3, err := g.oracle.HPT(p3, t3)
	if err != nil {
		return property(err)
	}
	return g.store(LPInlet, p3, t3, h3, g.cycle.SeparatorQuality)
}

func (g *StateGraph) lpExhaust() error {
	in := g.point(LPInlet)
	p4 := g.params.CondenserPressure
	h4, err := g.expansion.FromPressureTemperature(in.Pressure, in.Temperature, p4, g.params.LPEfficiency)
	if err != nil {
		return err
	}
	return g.storePH(LPExhaust, p4, h4, in.Flow)
}

func (g *StateGraph) condenserOutlet() error {
	exhaust := g.point(LPExhaust)
	p5 := exhaust.Pressure
	h5, err := g.oracle.HPX(p5, 0)
	if err != nil {
		return property(err)
	}
	t5, err := g.oracle.Tsat(p5)
	if err != nil {
		return property(err)
	}
	return g.store(CondenserOutlet, p5, t5, h5, exhaust.Flow)
}

func (g *StateGraph) extraction() error {
	p1, p2 := g.point(MainSteam), g.point(SeparatorInlet)
	hw1, err := g.oracle.HPX(p1.Pressure, 0)
	if err != nil {
		return property(err)
	}
	hw2, err := g.oracle.HPX(p2.Pressure, 0)
	if err != nil {
		return property(err)
	}
	a, err := SolveSplit(SplitBalance{
		Quality:     g.cycle.SeparatorQuality,
		HDrainMain:  hw1,
		HDrainSep:   hw2,
		HMainSteam:  p1.Enthalpy,
		HSeparator:  p2.Enthalpy,
		HReheatExit: g.point(LPInlet).Enthalpy,
	})
	if err != nil {
		return err
	}
	g.cycle.ExtractionFraction = a
	g.hasFraction = true
	return nil
}

func (g *StateGraph) cep1Outlet() error {
	in := g.point(CondenserOutlet)
	p6 := g.params.SeparatorPressure
	h6, err := g.compression.FromSaturatedLiquid(in.Pressure, p6, g.params.PumpEfficiency)
	if err != nil {
		return err
	}
	return g.storePH(CEP1Outlet, p6, h6, in.Flow)
}

// cep2Inlet 一级泵出口凝结水与分离器疏水混合
func (g *StateGraph) cep2Inlet() error {
	sep, cep1 := g.point(SeparatorInlet), g.point(CEP1Outlet)
	x2 := g.cycle.SeparatorQuality
	hw2, err := g.oracle.HPX(sep.Pressure, 0)
	if err != nil {
		return property(err)
	}
	h7 := x2*cep1.Enthalpy + (1-x2)*hw2
	return g.storePH(CEP2Inlet, cep1.Pressure, h7, 1)
}

func (g *StateGraph) cep2Outlet() error {
	in := g.point(CEP2Inlet)
	p8 := g.params.SteamGeneratorPressure
	h8, err := g.compression.FromPressureTemperature(in.Pressure, in.Temperature, p8, g.params.PumpEfficiency)
	if err != nil {
		return err
	}
	return g.storePH(CEP2Outlet, p8, h8, in.Flow)
}

// feedpumpInlet 凝结水与再热器疏水混合
func (g *StateGraph) feedpumpInlet() error {
	in := g.point(CEP2Outlet)
	a := g.fraction()
	hw1, err := g.oracle.HPX(in.Pressure, 0)
	if err != nil {
		return property(err)
	}
	h9, err := SolveMix(MixBalance{Fraction: a, HDrain: hw1, HCondensate: in.Enthalpy})
	if err != nil {
		return err
	}
	return g.storePH(FeedpumpInlet, in.Pressure, h9, in.Flow+a)
}

func (g *StateGraph) feedpumpOutlet() error {
	in := g.point(FeedpumpInlet)
	p10 := g.params.FeedwaterPressure()
	h10, err := g.compression.FromPressureTemperature(in.Pressure, in.Temperature, p10, g.params.PumpEfficiency)
	if err != nil {
		return err
	}
	return g.storePH(FeedpumpOutlet, p10, h10, in.Flow)
}
