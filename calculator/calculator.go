package calculator

import (
	"encoding/json"

	log "github.com/sirupsen/logrus"
	"rankine/model"
	"rankine/plant"
)

// calculator 的接口定义

type Calculator interface {
	// 设置循环参数，Content 为 model.Env 的 JSON
	SetEnv(content string) error
	// 当前循环参数
	Parameters() plant.CycleParameters

	// 运行
	Run() (*Cycle, error)

	// 构建推送给前端的数据，需先 Run
	BuildReport() (ReportData, error)
	BuildDiagram() (DiagramData, error)
}

type calculator struct {
	oracle PropertyOracle
	params plant.CycleParameters

	diagramSamples int
	diagramMaxT    float64

	cycle *Cycle
	perf  Performance
}

func NewCalculator(oracle PropertyOracle, cfg Config) Calculator {
	return &calculator{
		oracle:         oracle,
		params:         cfg.Cycle,
		diagramSamples: cfg.DiagramSamples,
		diagramMaxT:    cfg.DiagramMaxTemperature,
	}
}

func (c *calculator) SetEnv(content string) error {
	var env model.Env
	if err := json.Unmarshal([]byte(content), &env); err != nil {
		return err
	}
	next := c.params
	next.SetFromEnv(env)
	if err := next.Validate(); err != nil {
		return err
	}
	c.params = next
	// 参数变化后旧结果作废
	c.cycle = nil
	return nil
}

func (c *calculator) Parameters() plant.CycleParameters {
	return c.params
}

func (c *calculator) Run() (*Cycle, error) {
	if err := c.params.Validate(); err != nil {
		return nil, err
	}
	cycle, err := NewStateGraph(c.oracle, c.params).Evaluate()
	if err != nil {
		log.WithField("params", c.params.Fields()).Error("循环计算失败: ", err)
		return nil, err
	}
	c.cycle = cycle
	c.perf = Aggregate(cycle)
	log.WithFields(log.Fields{
		"run":        cycle.ID,
		"extraction": cycle.ExtractionFraction,
		"efficiency": c.perf.Efficiency,
		"heatRate":   c.perf.HeatRate,
		"imbalance":  c.perf.EnergyImbalance(),
	}).Info("循环计算完成")
	return cycle, nil
}

func (c *calculator) BuildReport() (ReportData, error) {
	if c.cycle == nil {
		return ReportData{}, ErrNotEvaluated
	}
	return BuildReport(c.cycle, c.perf), nil
}

func (c *calculator) BuildDiagram() (DiagramData, error) {
	if c.cycle == nil {
		return DiagramData{}, ErrNotEvaluated
	}
	return BuildDiagram(c.oracle, c.cycle, c.diagramSamples, c.diagramMaxT)
}
