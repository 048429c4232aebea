package simd

import (
	"math"

	"golang.org/x/image/math/f32"
)

// rcp and rsqrt are the initial estimates refined below. Zero inputs are
// not guarded; they produce Inf and then NaN after refinement.
func rcp(x float32) float32   { return 1 / x }
func rsqrt(x float32) float32 { return float32(1 / math.Sqrt(float64(x))) }

// Rcp1 returns 1/x refined by a single Newton-Raphson step,
//
//	x0 * (2 - x*x0)
func Rcp1(x float32) float32 {
	x0 := rcp(x)
	return x0 * (2 - x*x0)
}

// Rsqrt1 returns 1/sqrt(x) refined by a single Newton-Raphson step,
//
//	0.5 * x0 * (3 - x*x0*x0)
func Rsqrt1(x float32) float32 {
	x0 := rsqrt(x)
	return 0.5 * x0 * (3 - x*x0*x0)
}

// Rcp is the lane-wise reciprocal estimate.
func Rcp(a f32.Vec4) f32.Vec4 {
	return f32.Vec4{rcp(a[0]), rcp(a[1]), rcp(a[2]), rcp(a[3])}
}

// Rsqrt is the lane-wise reciprocal square root estimate.
func Rsqrt(a f32.Vec4) f32.Vec4 {
	return f32.Vec4{rsqrt(a[0]), rsqrt(a[1]), rsqrt(a[2]), rsqrt(a[3])}
}

// RcpNR1 is the lane-wise form of Rcp1.
func RcpNR1(a f32.Vec4) f32.Vec4 {
	return f32.Vec4{Rcp1(a[0]), Rcp1(a[1]), Rcp1(a[2]), Rcp1(a[3])}
}

// RsqrtNR1 is the lane-wise form of Rsqrt1.
func RsqrtNR1(a f32.Vec4) f32.Vec4 {
	return f32.Vec4{Rsqrt1(a[0]), Rsqrt1(a[1]), Rsqrt1(a[2]), Rsqrt1(a[3])}
}
