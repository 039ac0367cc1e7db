package model

// 客户端下发的循环参数，nil 字段保持不变，零值也会被设置
type Env struct {
	SteamGeneratorPressure *float64 `json:"steam_generator_pressure,omitempty"` // 蒸汽发生器出口压力 bar
	SeparatorPressure      *float64 `json:"separator_pressure,omitempty"`       // 汽水分离器压力 bar
	CondenserPressure      *float64 `json:"condenser_pressure,omitempty"`       // 凝汽器压力 bar
	LPInletTemperature     *float64 `json:"lp_inlet_temperature,omitempty"`     // 低压缸入口温度 ℃
	FeedwaterMargin        *float64 `json:"feedwater_margin,omitempty"`         // 给水压力裕量，p10 = (1 + margin) * p1
	HPEfficiency           *float64 `json:"hp_efficiency,omitempty"`            // 高压缸等熵效率
	LPEfficiency           *float64 `json:"lp_efficiency,omitempty"`            // 低压缸等熵效率
	PumpEfficiency         *float64 `json:"pump_efficiency,omitempty"`          // 泵效率
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// 消息类型
const (
	TypeEnv     = "env"
	TypeEnvSet  = "envSet"
	TypeStart   = "start"
	TypeReport  = "report"
	TypeDiagram = "diagram"
	TypeStop    = "stop"
	TypeStopped = "stopped"
	TypeError   = "error"
)
