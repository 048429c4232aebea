package pga

import (
	"fmt"

	"dasa.cc/ga/internal/simd"
	"golang.org/x/image/math/f32"
)

// Motor is a rigid motion, a screw about a line. Any composition of rotors
// and translators is a motor.
type Motor struct {
	P1 f32.Vec4 // (scalar, e23, e31, e12)
	P2 f32.Vec4 // (e0123, e01, e02, e03)
}

// NewMotor returns a + b e23 + c e31 + d e12 + e e01 + f e02 + g e03 + h e0123.
func NewMotor(a, b, c, d, e, f, g, h float32) Motor {
	return Motor{f32.Vec4{a, b, c, d}, f32.Vec4{h, e, f, g}}
}

// NewMotorScrew returns the motor turning by angle about l while moving
// distance along it.
func NewMotorScrew(angle, distance float32, l Line) Motor {
	return Dual{0.5 * angle, 0.5 * distance}.MulLine(l.Normalized()).Exp()
}

func (m Motor) Scalar() float32 { return m.P1[0] }
func (m Motor) E23() float32    { return m.P1[1] }
func (m Motor) E31() float32    { return m.P1[2] }
func (m Motor) E12() float32    { return m.P1[3] }
func (m Motor) E01() float32    { return m.P2[1] }
func (m Motor) E02() float32    { return m.P2[2] }
func (m Motor) E03() float32    { return m.P2[3] }
func (m Motor) E0123() float32  { return m.P2[0] }

// Rotor returns the rotational part of m, dropping P2.
func (m Motor) Rotor() Rotor { return Rotor{m.P1} }

// Normalize scales m in place so that m~m = 1.
//
// m~m is the dual number |a|² + 2(a0 b0 - a·b)e0123 for a = P1 and
// b = P2, and its inverse square root is s + t e0123 with s = 1/|a| and
// t = (a·b - a0 b0)/|a|³. Multiplying m by it keeps a·b = a0 b0.
func (m *Motor) Normalize() {
	a2 := simd.DpBC(m.P1, m.P1)
	s := simd.RsqrtNR1(a2)
	bc := simd.HiDp(m.P1, m.P2) - m.P1[0]*m.P2[0]
	t := simd.Mul(simd.Scale(simd.RcpNR1(a2), bc), s)
	t = simd.FlipSigns(t, simd.Hi)

	m.P2 = simd.Add(simd.Mul(m.P2, s), simd.Mul(m.P1, t))
	m.P1 = simd.Mul(m.P1, s)
}

func (m Motor) Normalized() Motor {
	m.Normalize()
	return m
}

// Invert sets m to ~m/(m~m).
func (m *Motor) Invert() {
	a2 := simd.Dp(m.P1, m.P1)
	s := simd.Rcp1(a2)
	bc := simd.HiDp(m.P1, m.P2) - m.P1[0]*m.P2[0]
	t := 2 * bc * s * s

	m.P2 = simd.Add(simd.Scale(simd.FlipSigns(m.P2, simd.Hi), s), simd.Scale(m.P1, t))
	m.P1 = simd.Scale(simd.FlipSigns(m.P1, simd.Hi), s)
}

func (m Motor) Inverse() Motor {
	m.Invert()
	return m
}

// Rev negates the bivector lanes, keeping the scalar and pseudoscalar.
func (m Motor) Rev() Motor {
	return Motor{simd.FlipSigns(m.P1, simd.Hi), simd.FlipSigns(m.P2, simd.Hi)}
}

// Constrained returns whichever of m and -m has a nonnegative scalar.
func (m Motor) Constrained() Motor {
	if m.P1[0] < 0 {
		return Motor{simd.Neg(m.P1), simd.Neg(m.P2)}
	}
	return m
}

// Sqrt returns the motor moving halfway along the screw of the normalized
// m.
func (m Motor) Sqrt() Motor {
	m.P1[0] += 1
	return m.Normalized()
}

// Log returns the line whose exponential is the normalized m.
func (m Motor) Log() Line {
	var l Line
	l.P1, l.P2 = log(m.P1, m.P2)
	return l
}

// Pow returns m raised to t, moving the fraction t along its screw.
func (m Motor) Pow(t float32) Motor { return m.Log().Scale(t).Exp() }

// Interpolate returns the motion t of the way from m to n, m(~m n)^t. Both
// motors are expected normalized.
func (m Motor) Interpolate(n Motor, t float32) Motor {
	d := m.Rev().MulMotor(n).Constrained()
	return m.MulMotor(d.Pow(t))
}

func (m Motor) Neg() Motor            { return Motor{simd.Neg(m.P1), simd.Neg(m.P2)} }
func (m Motor) Add(n Motor) Motor     { return Motor{simd.Add(m.P1, n.P1), simd.Add(m.P2, n.P2)} }
func (m Motor) Sub(n Motor) Motor     { return Motor{simd.Sub(m.P1, n.P1), simd.Sub(m.P2, n.P2)} }
func (m Motor) Scale(s float32) Motor { return Motor{simd.Scale(m.P1, s), simd.Scale(m.P2, s)} }
func (m Motor) Quo(s float32) Motor   { return m.Scale(simd.Rcp1(s)) }

func (m Motor) Equal(n Motor) bool { return m.P1 == n.P1 && m.P2 == n.P2 }

func (m Motor) ApproxEqual(n Motor, eps float32) bool {
	return approx4(m.P1, n.P1, eps) && approx4(m.P2, n.P2, eps)
}

func (m Motor) String() string {
	return fmt.Sprintf("Motor(%v %+g e23 %+g e31 %+g e12 %+g e01 %+g e02 %+g e03 %+g e0123)",
		m.Scalar(), m.E23(), m.E31(), m.E12(), m.E01(), m.E02(), m.E03(), m.E0123())
}
