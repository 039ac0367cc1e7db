package steam

import "math"

// IAPWS-IF97 基本方程，内部单位：p MPa，T K，h kJ/kg，s kJ/(kg·K)

const (
	r = 0.461526 // 水的比气体常数 kJ/(kg·K)

	// 1区、2区与饱和线的适用上限
	tRegion1Max = 623.15
	pRegion4Max = 16.529164252605 // 623.15K 对应的饱和压力
	pCritical   = 22.064
	tCritical   = 647.096
	pTriple     = 0.000611657
	tTriple     = 273.15
	tRegion2Max = 1073.15
)

// 1区：过冷水
var (
	i1 = [34]float64{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 3, 3, 3, 4, 4, 4, 5, 8, 8, 21, 23, 29, 30, 31, 32}
	j1 = [34]float64{-2, -1, 0, 1, 2, 3, 4, 5, -9, -7, -1, 0, 1, 3, -3, 0, 1, 3, 17, -4, 0, 6, -5, -2, 10, -8, -11, -6, -29, -31, -38, -39, -40, -41}
	n1 = [34]float64{
		0.14632971213167, -0.84548187169114, -0.37563603672040e1, 0.33855169168385e1,
		-0.95791963387872, 0.15772038513228, -0.16616417199501e-1, 0.81214629983568e-3,
		0.28319080123804e-3, -0.60706301565874e-3, -0.18990068218419e-1, -0.32529748770505e-1,
		-0.21841717175414e-1, -0.52838357969930e-4, -0.47184321073267e-3, -0.30001780793026e-3,
		0.47661393906987e-4, -0.44141845330846e-5, -0.72694996297594e-15, -0.31679644845054e-4,
		-0.28270797985312e-5, -0.85205128120103e-9, -0.22425281908000e-5, -0.65171222895601e-6,
		-0.14341729937924e-12, -0.40516996860117e-6, -0.12734301741641e-8, -0.17424871230634e-9,
		-0.68762131295531e-18, 0.14478307828521e-19, 0.26335781662795e-22, -0.11947622640071e-22,
		0.18228094581404e-23, -0.93537087292458e-25,
	}
)

// 2区理想气体部分
var (
	j0 = [9]float64{0, 1, -5, -4, -3, -2, -1, 2, 3}
	n0 = [9]float64{
		-0.96927686500217e1, 0.10086655968018e2, -0.56087911283020e-2,
		0.71452738081455e-1, -0.40710498223928, 0.14240819171444e1,
		-0.43839511319450e1, -0.28408632460772, 0.21268463753307e-1,
	}
)

// 2区剩余部分
var (
	ir = [43]float64{1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 3, 3, 3, 3, 3, 4, 4, 4, 5, 6, 6, 6, 7, 7, 7, 8, 8, 9, 10, 10, 10, 16, 16, 18, 20, 20, 20, 21, 22, 23, 24, 24, 24}
	jr = [43]float64{0, 1, 2, 3, 6, 1, 2, 4, 7, 36, 0, 1, 3, 6, 35, 1, 2, 3, 7, 3, 16, 35, 0, 11, 25, 8, 36, 13, 4, 10, 14, 29, 50, 57, 20, 35, 48, 21, 53, 39, 26, 40, 58}
	nr = [43]float64{
		-0.17731742473213e-2, -0.17834862292358e-1, -0.45996013696365e-1, -0.57581259083432e-1,
		-0.50325278727930e-1, -0.33032641670203e-4, -0.18948987516315e-3, -0.39392777243355e-2,
		-0.43797295650573e-1, -0.26674547914087e-4, 0.20481737692309e-7, 0.43870667284435e-6,
		-0.32277677238570e-4, -0.15033924542148e-2, -0.40668253562649e-1, -0.78847309559367e-9,
		0.12790717852285e-7, 0.48225372718507e-6, 0.22922076337661e-5, -0.16714766451061e-10,
		-0.21171472321355e-2, -0.23895741934104e2, -0.59059564324270e-18, -0.12621808899101e-5,
		-0.38946842435739e-1, 0.11256211360459e-10, -0.82311340897998e1, 0.19809712802088e-7,
		0.10406965210174e-18, -0.10234747095929e-12, -0.10018179379511e-8, -0.80882908646985e-10,
		0.10693031879409, -0.33662250574171, 0.89185845355421e-24, 0.30629316876232e-12,
		-0.42002467698208e-5, -0.59056029685639e-25, 0.37826947613457e-5, -0.12768608934681e-14,
		0.73087610595061e-28, 0.55414715350778e-16, -0.94369707241210e-6,
	}
)

// 4区：饱和线
var n4 = [11]float64{
	0,
	0.11670521452767e4, -0.72421316703206e6, -0.17073846940092e2,
	0.12020824702470e5, -0.32325550322333e7, 0.14915108613530e2,
	-0.48232657361591e4, 0.40511340542057e6, -0.23855557567849,
	0.65017534844798e3,
}

// region1 返回过冷水的焓和熵
func region1(p, t float64) (h, s float64) {
	pi := 7.1 - p/16.53
	tau := 1386.0 / t
	b := tau - 1.222
	var g, gt float64
	for k := range n1 {
		a := math.Pow(pi, i1[k])
		g += n1[k] * a * math.Pow(b, j1[k])
		gt += n1[k] * a * j1[k] * math.Pow(b, j1[k]-1)
	}
	h = r * t * tau * gt
	s = r * (tau*gt - g)
	return
}

// region2 返回过热蒸汽的焓和熵
func region2(p, t float64) (h, s float64) {
	pi := p
	tau := 540.0 / t
	g0 := math.Log(pi)
	var g0t float64
	for k := range n0 {
		g0 += n0[k] * math.Pow(tau, j0[k])
		g0t += n0[k] * j0[k] * math.Pow(tau, j0[k]-1)
	}
	b := tau - 0.5
	var gr, grt float64
	for k := range nr {
		a := math.Pow(pi, ir[k])
		gr += nr[k] * a * math.Pow(b, jr[k])
		grt += nr[k] * a * jr[k] * math.Pow(b, jr[k]-1)
	}
	h = r * t * tau * (g0t + grt)
	s = r * (tau*(g0t+grt) - (g0 + gr))
	return
}

// psat4 饱和压力 MPa
func psat4(t float64) float64 {
	theta := t + n4[9]/(t-n4[10])
	a := theta*theta + n4[1]*theta + n4[2]
	b := n4[3]*theta*theta + n4[4]*theta + n4[5]
	c := n4[6]*theta*theta + n4[7]*theta + n4[8]
	return math.Pow(2*c/(-b+math.Sqrt(b*b-4*a*c)), 4)
}

// tsat4 饱和温度 K
func tsat4(p float64) float64 {
	beta := math.Pow(p, 0.25)
	e := beta*beta + n4[3]*beta + n4[6]
	f := n4[1]*beta*beta + n4[4]*beta + n4[7]
	g := n4[2]*beta*beta + n4[5]*beta + n4[8]
	d := 2 * g / (-f - math.Sqrt(f*f-4*e*g))
	return (n4[10] + d - math.Sqrt((n4[10]+d)*(n4[10]+d)-4*(n4[9]+n4[10]*d))) / 2
}

// bisect 在 [lo, hi] 内求 f(t) = target，f 随 t 单调递增
func bisect(f func(t float64) float64, target, lo, hi float64) float64 {
	for k := 0; k < 200 && hi-lo > 1e-10; k++ {
		mid := (lo + hi) / 2
		if f(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
