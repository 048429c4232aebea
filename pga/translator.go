package pga

import (
	"fmt"

	"dasa.cc/ga/internal/simd"
	"golang.org/x/image/math/f32"
)

// Translator is a translation, the exponential of a Horizon. Only the ideal
// part is stored; the scalar part is always one.
type Translator struct {
	P2 f32.Vec4 // (0, e01, e02, e03)
}

// NewTranslator returns the translator moving by distance along the axis
// (x, y, z). The axis need not be normalized.
func NewTranslator(distance, x, y, z float32) Translator {
	s := -0.5 * distance * simd.Rsqrt1(x*x+y*y+z*z)
	return Translator{f32.Vec4{0, s * x, s * y, s * z}}
}

func (t Translator) E01() float32 { return t.P2[1] }
func (t Translator) E02() float32 { return t.P2[2] }
func (t Translator) E03() float32 { return t.P2[3] }

// Motor widens t.
func (t Translator) Motor() Motor { return Motor{f32.Vec4{1}, t.P2} }

// Inverse translates back by the same amount.
func (t Translator) Inverse() Translator { return Translator{simd.Neg(t.P2)} }

func (t *Translator) Invert() { t.P2 = simd.Neg(t.P2) }

// Normalized returns t; a translator with a unit scalar is always
// normalized.
func (t Translator) Normalized() Translator { return t }

func (t Translator) Rev() Translator { return t.Inverse() }

// Constrained returns t; the scalar is never negative.
func (t Translator) Constrained() Translator { return t }

// Sqrt returns the translator moving half as far.
func (t Translator) Sqrt() Translator { return Translator{simd.Scale(t.P2, 0.5)} }

// Log returns the horizon whose exponential is t.
func (t Translator) Log() Horizon { return Horizon{simd.Keep(t.P2, simd.Hi)} }

// Neg returns -t. Its scalar is -1, so the result is a Motor.
func (t Translator) Neg() Motor {
	return Motor{f32.Vec4{-1}, simd.Neg(simd.Keep(t.P2, simd.Hi))}
}

// Scale stretches the distance moved by s.
func (t Translator) Scale(s float32) Translator { return Translator{simd.Scale(t.P2, s)} }

func (t Translator) Equal(u Translator) bool { return t.P2 == u.P2 }

func (t Translator) ApproxEqual(u Translator, eps float32) bool { return approx4(t.P2, u.P2, eps) }

func (t Translator) String() string {
	return fmt.Sprintf("Translator(1 %+g e01 %+g e02 %+g e03)", t.E01(), t.E02(), t.E03())
}
