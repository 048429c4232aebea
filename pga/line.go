package pga

import (
	"fmt"

	"dasa.cc/ga/internal/simd"
	"golang.org/x/image/math/f32"
)

// Line is a general bivector given by its six Plücker coordinates: a
// Euclidean part in P1 and an ideal part in P2. Sums of lines are not
// always lines, which only matters to Exp.
type Line struct {
	P1 f32.Vec4 // (0, e23, e31, e12)
	P2 f32.Vec4 // (0, e01, e02, e03)
}

// NewLine returns a e01 + b e02 + c e03 + d e23 + e e31 + f e12.
func NewLine(a, b, c, d, e, f float32) Line {
	return Line{f32.Vec4{0, d, e, f}, f32.Vec4{0, a, b, c}}
}

func (l Line) E23() float32 { return l.P1[1] }
func (l Line) E31() float32 { return l.P1[2] }
func (l Line) E12() float32 { return l.P1[3] }
func (l Line) E01() float32 { return l.P2[1] }
func (l Line) E02() float32 { return l.P2[2] }
func (l Line) E03() float32 { return l.P2[3] }

func (l Line) Branch() Branch   { return Branch{l.P1} }
func (l Line) Horizon() Horizon { return Horizon{l.P2} }

// SquaredNorm is the squared magnitude of the Euclidean part. For the join
// of two normalized points it is their squared distance.
func (l Line) SquaredNorm() float32 { return simd.HiDp(l.P1, l.P1) }

func (l Line) Norm() float32 { return sqrt(l.SquaredNorm()) }

// Normalize scales l in place so that l~l = 1.
//
// With l = b + c, l~l = |b|² - 2(b·c)e0123 and its inverse square root is
// s + t e0123 where s = 1/|b| and t = (b·c)/|b|³.
func (l *Line) Normalize() {
	b2 := simd.HiDpBC(l.P1, l.P1)
	s := simd.RsqrtNR1(b2)
	bc := simd.HiDpBC(l.P1, l.P2)
	t := simd.Mul(simd.Mul(bc, simd.RcpNR1(b2)), s)

	l.P2 = simd.Sub(simd.Mul(l.P2, s), simd.Mul(l.P1, t))
	l.P1 = simd.Mul(l.P1, s)
}

func (l Line) Normalized() Line {
	l.Normalize()
	return l
}

// Invert sets l to ~l/(l~l), inverting the dual number l~l.
func (l *Line) Invert() {
	b2 := simd.HiDpBC(l.P1, l.P1)
	s := simd.RcpNR1(b2)
	bc := simd.HiDpBC(l.P1, l.P2)
	t := simd.Scale(simd.Mul(bc, simd.Mul(s, s)), 2)

	l.P2 = simd.Sub(simd.Mul(l.P1, t), simd.Mul(l.P2, s))
	l.P1 = simd.Neg(simd.Mul(l.P1, s))
}

func (l Line) Inverse() Line {
	l.Invert()
	return l
}

// Rev negates every bivector coefficient.
func (l Line) Rev() Line { return Line{simd.Neg(l.P1), simd.Neg(l.P2)} }

// Dual swaps the Euclidean and ideal parts.
func (l Line) Dual() Line { return Line{l.P2, l.P1} }

func (l Line) Neg() Line            { return l.Rev() }
func (l Line) Add(m Line) Line      { return Line{simd.Add(l.P1, m.P1), simd.Add(l.P2, m.P2)} }
func (l Line) Sub(m Line) Line      { return Line{simd.Sub(l.P1, m.P1), simd.Sub(l.P2, m.P2)} }
func (l Line) Scale(s float32) Line { return Line{simd.Scale(l.P1, s), simd.Scale(l.P2, s)} }
func (l Line) Quo(s float32) Line   { return l.Scale(simd.Rcp1(s)) }

// Exp returns the motor e^l. A non-simple l is decomposed into commuting
// Euclidean and ideal parts first.
func (l Line) Exp() Motor {
	var m Motor
	m.P1, m.P2 = exp(l.P1, l.P2)
	return m
}

func (l Line) Equal(m Line) bool { return l.P1 == m.P1 && l.P2 == m.P2 }

func (l Line) ApproxEqual(m Line, eps float32) bool {
	return approx4(l.P1, m.P1, eps) && approx4(l.P2, m.P2, eps)
}

func (l Line) String() string {
	return fmt.Sprintf("Line(%v e01 %+g e02 %+g e03 %+g e23 %+g e31 %+g e12)",
		l.E01(), l.E02(), l.E03(), l.E23(), l.E31(), l.E12())
}

// Branch is a Euclidean bivector, a line through the origin.
type Branch struct {
	P1 f32.Vec4 // (0, e23, e31, e12)
}

// NewBranch returns a e23 + b e31 + c e12.
func NewBranch(a, b, c float32) Branch { return Branch{f32.Vec4{0, a, b, c}} }

func (b Branch) E23() float32 { return b.P1[1] }
func (b Branch) E31() float32 { return b.P1[2] }
func (b Branch) E12() float32 { return b.P1[3] }

func (b Branch) Line() Line { return Line{P1: b.P1} }

func (b Branch) SquaredNorm() float32 { return simd.HiDp(b.P1, b.P1) }

func (b Branch) Norm() float32 { return sqrt(b.SquaredNorm()) }

func (b *Branch) Normalize() {
	b.P1 = simd.Mul(b.P1, simd.RsqrtNR1(simd.HiDpBC(b.P1, b.P1)))
}

func (b Branch) Normalized() Branch {
	b.Normalize()
	return b
}

// Invert sets b to ~b/|b|².
func (b *Branch) Invert() {
	s := simd.RcpNR1(simd.HiDpBC(b.P1, b.P1))
	b.P1 = simd.Neg(simd.Mul(b.P1, s))
}

func (b Branch) Inverse() Branch {
	b.Invert()
	return b
}

func (b Branch) Rev() Branch { return Branch{simd.Neg(b.P1)} }

func (b Branch) Dual() Horizon { return Horizon{b.P1} }

func (b Branch) Neg() Branch            { return b.Rev() }
func (b Branch) Add(c Branch) Branch    { return Branch{simd.Add(b.P1, c.P1)} }
func (b Branch) Sub(c Branch) Branch    { return Branch{simd.Sub(b.P1, c.P1)} }
func (b Branch) Scale(s float32) Branch { return Branch{simd.Scale(b.P1, s)} }
func (b Branch) Quo(s float32) Branch   { return b.Scale(simd.Rcp1(s)) }
func (b Branch) Equal(c Branch) bool    { return b.P1 == c.P1 }

func (b Branch) ApproxEqual(c Branch, eps float32) bool { return approx4(b.P1, c.P1, eps) }

// Exp returns the rotor cos|b| + sin|b| b/|b|. The zero branch maps to the
// identity exactly.
func (b Branch) Exp() Rotor {
	if simd.IsZero(b.P1, simd.Hi) {
		return Rotor{f32.Vec4{1}}
	}
	b2 := simd.HiDp(b.P1, b.P1)
	r := simd.Rsqrt1(b2)
	sin, cos := sincos(b2 * r)
	p1 := simd.Scale(b.P1, sin*r)
	p1[0] = cos
	return Rotor{p1}
}

func (b Branch) String() string {
	return fmt.Sprintf("Branch(%v e23 %+g e31 %+g e12)", b.E23(), b.E31(), b.E12())
}

// Horizon is an ideal bivector, a line at infinity.
type Horizon struct {
	P2 f32.Vec4 // (0, e01, e02, e03)
}

// IdealLine is an alias of Horizon.
type IdealLine = Horizon

// NewHorizon returns a e01 + b e02 + c e03.
func NewHorizon(a, b, c float32) Horizon { return Horizon{f32.Vec4{0, a, b, c}} }

func (h Horizon) E01() float32 { return h.P2[1] }
func (h Horizon) E02() float32 { return h.P2[2] }
func (h Horizon) E03() float32 { return h.P2[3] }

func (h Horizon) Line() Line { return Line{P2: h.P2} }

// SquaredIdealNorm is the squared magnitude of the ideal coefficients.
// Every ideal bivector squares to zero, so this is not h~h.
func (h Horizon) SquaredIdealNorm() float32 { return simd.HiDp(h.P2, h.P2) }

// IdealNorm measures h; for the logarithm of a translator it is half the
// distance translated.
func (h Horizon) IdealNorm() float32 { return sqrt(h.SquaredIdealNorm()) }

func (h Horizon) Rev() Horizon { return Horizon{simd.Neg(h.P2)} }

func (h Horizon) Dual() Branch { return Branch{h.P2} }

func (h Horizon) Neg() Horizon            { return h.Rev() }
func (h Horizon) Add(g Horizon) Horizon   { return Horizon{simd.Add(h.P2, g.P2)} }
func (h Horizon) Sub(g Horizon) Horizon   { return Horizon{simd.Sub(h.P2, g.P2)} }
func (h Horizon) Scale(s float32) Horizon { return Horizon{simd.Scale(h.P2, s)} }
func (h Horizon) Quo(s float32) Horizon   { return h.Scale(simd.Rcp1(s)) }
func (h Horizon) Equal(g Horizon) bool    { return h.P2 == g.P2 }

func (h Horizon) ApproxEqual(g Horizon, eps float32) bool { return approx4(h.P2, g.P2, eps) }

// Exp returns the translator 1 + h; the series ends after the linear term.
func (h Horizon) Exp() Translator { return Translator{simd.Keep(h.P2, simd.Hi)} }

func (h Horizon) String() string {
	return fmt.Sprintf("Horizon(%v e01 %+g e02 %+g e03)", h.E01(), h.E02(), h.E03())
}
