package model

// 状态点个数
const PointCount = 10

// 显示精度（小数位数），仅用于输出
const (
	PressurePlaces    = 1
	LowPressurePlaces = 4 // 凝汽器、给水等需要更多位数的压力
	TemperaturePlaces = 1
	EnthalpyPlaces    = 1
	EntropyPlaces     = 3
	PercentPlaces     = 2
)

// T-s 图饱和线采样
const (
	DiagramSamples        = 400
	DiagramMaxTemperature = 350.0 // ℃
)
