package calculator

// PropertyOracle 水蒸气物性查询，单位 bar、℃、kJ/kg、kJ/(kg·K)
// steam.Table 为默认实现
type PropertyOracle interface {
	Tsat(p float64) (float64, error)
	HPT(p, t float64) (float64, error)
	SPT(p, t float64) (float64, error)
	HPX(p, x float64) (float64, error)
	HTX(t, x float64) (float64, error)
	SPH(p, h float64) (float64, error)
	XPH(p, h float64) (float64, error)
	TPH(p, h float64) (float64, error)
	XPS(p, s float64) (float64, error)
	TPS(p, s float64) (float64, error)
	HPS(p, s float64) (float64, error)
	SLT(t float64) (float64, error)
	SVT(t float64) (float64, error)
}
