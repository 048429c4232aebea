package pga

import (
	"fmt"
	"math"

	"dasa.cc/ga/internal/simd"
	"golang.org/x/image/math/f32"
)

// Rotor is a rotation about a line through the origin, the exponential of
// a Branch. r and -r rotate alike.
type Rotor struct {
	P1 f32.Vec4 // (scalar, e23, e31, e12)
}

// NewRotor returns the rotor turning by angle radians about the axis
// (x, y, z). The axis need not be normalized.
func NewRotor(angle, x, y, z float32) Rotor {
	n := simd.Rsqrt1(x*x + y*y + z*z)
	sin, cos := sincos(angle / 2)
	s := sin * n
	return Rotor{f32.Vec4{cos, s * x, s * y, s * z}}
}

// EulerAngles are intrinsic rotations in radians applied yaw first about
// z, then pitch about y, then roll about x.
type EulerAngles struct {
	Roll, Pitch, Yaw float32
}

// NewRotorEuler returns the rotor for the given angles.
func NewRotorEuler(e EulerAngles) Rotor {
	sr, cr := sincos(e.Roll / 2)
	sp, cp := sincos(e.Pitch / 2)
	sy, cy := sincos(e.Yaw / 2)
	return Rotor{f32.Vec4{
		cr*cp*cy + sr*sp*sy,
		sr*cp*cy - cr*sp*sy,
		cr*sp*cy + sr*cp*sy,
		cr*cp*sy - sr*sp*cy,
	}}
}

// Euler returns the angles of a normalized rotor. Pitch is clamped to
// [-π/2, π/2] at the poles.
func (r Rotor) Euler() EulerAngles {
	w, x, y, z := r.P1[0], r.P1[1], r.P1[2], r.P1[3]
	var e EulerAngles
	e.Roll = atan2(2*(w*x+y*z), 1-2*(x*x+y*y))
	sp := 2 * (w*y - z*x)
	switch {
	case sp >= 1:
		e.Pitch = math.Pi / 2
	case sp <= -1:
		e.Pitch = -math.Pi / 2
	default:
		e.Pitch = float32(math.Asin(float64(sp)))
	}
	e.Yaw = atan2(2*(w*z+x*y), 1-2*(y*y+z*z))
	return e
}

func (r Rotor) Scalar() float32 { return r.P1[0] }
func (r Rotor) E23() float32    { return r.P1[1] }
func (r Rotor) E31() float32    { return r.P1[2] }
func (r Rotor) E12() float32    { return r.P1[3] }

// Branch returns the bivector part of r.
func (r Rotor) Branch() Branch { return Branch{simd.Keep(r.P1, simd.Hi)} }

// Motor widens r.
func (r Rotor) Motor() Motor { return Motor{P1: r.P1} }

// Normalize scales r in place so that r~r = 1.
func (r *Rotor) Normalize() {
	r.P1 = simd.Mul(r.P1, simd.RsqrtNR1(simd.DpBC(r.P1, r.P1)))
}

func (r Rotor) Normalized() Rotor {
	r.Normalize()
	return r
}

// Invert sets r to ~r/(r~r).
func (r *Rotor) Invert() {
	s := simd.RcpNR1(simd.DpBC(r.P1, r.P1))
	r.P1 = simd.Mul(simd.FlipSigns(r.P1, simd.Hi), s)
}

func (r Rotor) Inverse() Rotor {
	r.Invert()
	return r
}

// Rev negates the bivector part.
func (r Rotor) Rev() Rotor { return Rotor{simd.FlipSigns(r.P1, simd.Hi)} }

// Constrained returns whichever of r and -r has a nonnegative scalar, the
// rotation along the shorter arc.
func (r Rotor) Constrained() Rotor {
	if r.P1[0] < 0 {
		return Rotor{simd.Neg(r.P1)}
	}
	return r
}

// Sqrt returns the rotor turning half as far as the normalized r.
func (r Rotor) Sqrt() Rotor {
	r.P1[0] += 1
	return r.Normalized()
}

// Log returns the branch whose exponential is the normalized r.
func (r Rotor) Log() Branch {
	if simd.IsZero(r.P1, simd.Hi) {
		return Branch{}
	}
	b := simd.Keep(r.P1, simd.Hi)
	b2 := simd.HiDp(b, b)
	s := simd.Rsqrt1(b2)
	u := atan2(b2*s, r.P1[0])
	return Branch{simd.Scale(b, u*s)}
}

// Neg returns -r, the same rotation on the other sheet of the double cover.
func (r Rotor) Neg() Rotor            { return Rotor{simd.Neg(r.P1)} }
func (r Rotor) Add(s Rotor) Rotor     { return Rotor{simd.Add(r.P1, s.P1)} }
func (r Rotor) Scale(s float32) Rotor { return Rotor{simd.Scale(r.P1, s)} }
func (r Rotor) Quo(s float32) Rotor   { return r.Scale(simd.Rcp1(s)) }

func (r Rotor) Equal(s Rotor) bool { return r.P1 == s.P1 }

func (r Rotor) ApproxEqual(s Rotor, eps float32) bool { return approx4(r.P1, s.P1, eps) }

func (r Rotor) String() string {
	return fmt.Sprintf("Rotor(%v %+g e23 %+g e31 %+g e12)", r.Scalar(), r.E23(), r.E31(), r.E12())
}
