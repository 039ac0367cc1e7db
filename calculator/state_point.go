package calculator

import "fmt"

// PointID 状态点编号，与热力系统图上的编号一致
type PointID int

const (
	MainSteam       PointID = iota + 1 // 1 蒸汽发生器出口 / 高压缸入口
	SeparatorInlet                     // 2 高压缸排汽 / 汽水分离器入口
	LPInlet                            // 3 再热后低压缸入口
	LPExhaust                          // 4 低压缸排汽
	CondenserOutlet                    // 5 凝汽器出口
	CEP1Outlet                         // 6 一级凝结水泵出口
	CEP2Inlet                          // 7 二级凝结水泵入口（混入分离器疏水）
	CEP2Outlet                         // 8 二级凝结水泵出口
	FeedpumpInlet                      // 9 给水泵入口（混入再热器疏水）
	FeedpumpOutlet                     // 10 给水泵出口
)

var pointNames = [...]string{
	MainSteam:       "main steam",
	SeparatorInlet:  "separator inlet",
	LPInlet:         "LP turbine inlet",
	LPExhaust:       "LP turbine exhaust",
	CondenserOutlet: "condenser outlet",
	CEP1Outlet:      "CEP 1 outlet",
	CEP2Inlet:       "CEP 2 inlet",
	CEP2Outlet:      "CEP 2 outlet",
	FeedpumpInlet:   "feedpump inlet",
	FeedpumpOutlet:  "feedpump outlet",
}

func (id PointID) String() string {
	if id < MainSteam || id > FeedpumpOutlet {
		return fmt.Sprintf("PointID(%d)", int(id))
	}
	return pointNames[id]
}

// StatePoint 一个状态点，创建后不再修改
type StatePoint struct {
	ID          PointID
	Pressure    float64 // bar
	Temperature float64 // ℃
	Enthalpy    float64 // kJ/kg
	Entropy     float64 // kJ/(kg·K)
	Flow        float64 // 相对主蒸汽流量

	quality  float64
	twoPhase bool
}

// Quality 两相点返回干度，单相点 ok 为 false
func (sp StatePoint) Quality() (x float64, ok bool) {
	return sp.quality, sp.twoPhase
}
