package simd

import "golang.org/x/image/math/f32"

// Dp returns the dot product over all four lanes.
func Dp(a, b f32.Vec4) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// DpBC broadcasts Dp(a, b) to all lanes.
func DpBC(a, b f32.Vec4) f32.Vec4 { return Set1(Dp(a, b)) }

// DpSS places Dp(a, b) in lane 0; the other lanes are zero.
func DpSS(a, b f32.Vec4) f32.Vec4 { return SetSS(Dp(a, b)) }

// HiDp returns the dot product of lanes 1, 2 and 3, ignoring lane 0.
func HiDp(a, b f32.Vec4) float32 {
	return a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// HiDpBC broadcasts HiDp(a, b) to all lanes.
func HiDpBC(a, b f32.Vec4) f32.Vec4 { return Set1(HiDp(a, b)) }

// HiDpSS places HiDp(a, b) in lane 0; the other lanes are zero.
func HiDpSS(a, b f32.Vec4) f32.Vec4 { return SetSS(HiDp(a, b)) }
