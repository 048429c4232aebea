package pga

import (
	"dasa.cc/ga/internal/simd"
	"golang.org/x/image/math/f32"
)

// exp returns the motor e^(a+b) for the Euclidean part a and ideal part b
// of a bivector. Only lanes 1..3 of a and b are read.
//
// A bivector with nonzero a splits into commuting parts (u + v I) n where
// n is a normalized line, u = |a| and v = -(a·b)/|a|. Then
//
//	e^((u + v I) n) = cos u + sin u n - v sin u I + v cos u n I
func exp(a, b f32.Vec4) (p1, p2 f32.Vec4) {
	if simd.IsZero(a, simd.Hi) {
		// ideal bivectors square to zero
		return f32.Vec4{1}, simd.Keep(b, simd.Hi)
	}

	a2 := simd.HiDp(a, a)
	ab := simd.HiDp(a, b)
	r := simd.Rsqrt1(a2)
	u := a2 * r
	mv := ab * r // minus v

	nr := simd.Keep(simd.Scale(a, r), simd.Hi)
	ni := simd.Keep(simd.Sub(simd.Scale(b, r), simd.Scale(a, ab*r*simd.Rcp1(a2))), simd.Hi)

	sin, cos := sincos(u)
	p1 = simd.Scale(nr, sin)
	p1[0] = cos
	p2 = simd.Add(simd.Scale(ni, sin), simd.Scale(nr, mv*cos))
	p2[0] = mv * sin
	return p1, p2
}

// log returns the bivector whose exponential is the normalized motor
// (p1, p2), as a Euclidean part a and ideal part b.
//
// The angle is recovered from atan2(|a|, p) on every branch. The scalar is
// cos u and the pseudoscalar is -v sin u, so v is read from whichever of
// the two has the larger denominator; near half a turn that is the
// pseudoscalar.
func log(p1, p2 f32.Vec4) (a, b f32.Vec4) {
	if simd.IsZero(p1, simd.Hi) {
		return f32.Vec4{}, simd.Keep(p2, simd.Hi)
	}
	bv1 := simd.Keep(p1, simd.Hi)
	bv2 := simd.Keep(p2, simd.Hi)

	a2 := simd.HiDp(bv1, bv1)
	ab := simd.HiDp(bv1, bv2)
	r := simd.Rsqrt1(a2)
	s := a2 * r
	t := -ab * r
	p, q := p1[0], p2[0]

	u := atan2(s, p)
	var v float32
	if abs(p) < s {
		v = -q * simd.Rcp1(s)
	} else {
		v = t * simd.Rcp1(p)
	}

	nr := simd.Scale(bv1, r)
	ni := simd.Sub(simd.Scale(bv2, r), simd.Scale(bv1, ab*r*simd.Rcp1(a2)))

	a = simd.Scale(nr, u)
	b = simd.Sub(simd.Scale(ni, u), simd.Scale(nr, v))
	return a, b
}
