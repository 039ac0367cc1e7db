package calculator

import "fmt"

// GridSearch 两级网格搜索：先按粗步长找到第一个满足条件的点，
// 再在前一个粗步长区间内按细步长找第一个满足条件的点。
// 要求条件单调：一旦成立，之后一直成立。返回值偏向第一个越过阈值的网格点。
type GridSearch struct {
	Origin      float64 // 搜索起点
	Coarse      float64 // 粗步长
	CoarseSteps int     // 粗搜索点数，范围 [Origin, Origin + CoarseSteps*Coarse)
	Fine        float64 // 细步长
	FineSteps   int     // 每个粗区间内的细搜索点数
}

var (
	// 抽汽份额，分辨率 1e-4
	fractionSearch = GridSearch{Origin: 0, Coarse: 0.01, CoarseSteps: 100, Fine: 0.0001, FineSteps: 100}
	// 混合焓，kJ/kg，分辨率 0.01
	enthalpySearch = GridSearch{Origin: 0, Coarse: 1, CoarseSteps: 500, Fine: 0.01, FineSteps: 100}
)

// First 返回第一个使 cond 成立的网格点
func (g GridSearch) First(cond func(v float64) bool) (float64, error) {
	for i := 0; i < g.CoarseSteps; i++ {
		v := g.Origin + float64(i)*g.Coarse
		if !cond(v) {
			continue
		}
		if i == 0 {
			return v, nil
		}
		lo := g.Origin + float64(i-1)*g.Coarse
		for j := 0; j < g.FineSteps; j++ {
			c := lo + float64(j)*g.Fine
			if cond(c) {
				return c, nil
			}
		}
		return v, nil
	}
	return 0, fmt.Errorf("%w: no crossing in [%g, %g)", ErrRootNotBracketed,
		g.Origin, g.Origin+float64(g.CoarseSteps)*g.Coarse)
}
