package calculator

// SplitBalance 汽水分离再热器节点的能量平衡。
// 抽出份额 a 的主蒸汽加热分离后的干蒸汽，自身凝结为 p1 下的饱和水。
type SplitBalance struct {
	Quality     float64 // 分离器入口干度 x2
	HDrainMain  float64 // p1 下饱和水焓 hw1
	HDrainSep   float64 // p2 下饱和水焓 hw2
	HMainSteam  float64 // 主蒸汽焓 h1
	HSeparator  float64 // 分离器入口焓 h2
	HReheatExit float64 // 低压缸入口焓 h3
}

// Mixed 抽汽份额为 a 时节点的混合焓
func (b SplitBalance) Mixed(a float64) float64 {
	return (1-b.Quality)*b.HDrainSep + a*b.HDrainMain + b.Quality*b.HReheatExit - a*b.HMainSteam
}

// SolveSplit 求满足 Mixed(a) < h2 的最小抽汽份额，分辨率 1e-4
func SolveSplit(b SplitBalance) (float64, error) {
	return fractionSearch.First(func(a float64) bool {
		return b.Mixed(a) < b.HSeparator
	})
}

// MixBalance 给水泵入口的混合：1 份凝结水 + Fraction 份再热器疏水
type MixBalance struct {
	Fraction    float64 // 抽汽份额 a
	HDrain      float64 // 再热器疏水焓 hw1
	HCondensate float64 // 凝结水泵出口焓 h8
}

// Target 混合点的总焓
func (b MixBalance) Target() float64 {
	return b.Fraction*b.HDrain + b.HCondensate
}

// SolveMix 求满足 (1 + a) * h9 > Target 的最小 h9，分辨率 0.01 kJ/kg
func SolveMix(b MixBalance) (float64, error) {
	target := b.Target()
	return enthalpySearch.First(func(h float64) bool {
		return (1+b.Fraction)*h > target
	})
}
