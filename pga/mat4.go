package pga

import (
	"dasa.cc/ga/internal/simd"
	"golang.org/x/image/math/f32"
)

// mat4 lays out the point sandwich as a column-major 4x4 matrix acting on
// (x, y, z, w) column vectors.
func mat4(r f32.Mat3, a2 float32, t f32.Vec4) f32.Mat4 {
	// +0 +4 +8 12
	// +1 +5 +9 13
	// +2 +6 10 14
	// +3 +7 11 15
	return f32.Mat4{
		r[0], r[3], r[6], 0,
		r[1], r[4], r[7], 0,
		r[2], r[5], r[8], 0,
		t[1], t[2], t[3], a2,
	}
}

// Mat4 returns the column-major matrix moving points the way m does.
func (m Motor) Mat4() f32.Mat4 {
	return mat4(swRot(m.P1), simd.Dp(m.P1, m.P1), swPointT(m.P1, m.P2))
}

// Mat4 returns the column-major rotation matrix of r.
func (r Rotor) Mat4() f32.Mat4 {
	return mat4(swRot(r.P1), simd.Dp(r.P1, r.P1), f32.Vec4{})
}

// Mat4 returns the column-major translation matrix of t.
func (t Translator) Mat4() f32.Mat4 {
	return mat4(f32.Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}, 1, simd.Scale(t.P2, -2))
}
