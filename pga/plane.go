package pga

import (
	"fmt"

	"dasa.cc/ga/internal/simd"
	"golang.org/x/image/math/f32"
)

// Plane is the grade 1 element d e0 + x e1 + y e2 + z e3, the set of points
// satisfying x*X + y*Y + z*Z + d = 0.
type Plane struct {
	P0 f32.Vec4
}

// NewPlane returns the plane a*x + b*y + c*z + d = 0.
func NewPlane(a, b, c, d float32) Plane { return Plane{f32.Vec4{d, a, b, c}} }

func (p Plane) X() float32 { return p.P0[1] }
func (p Plane) Y() float32 { return p.P0[2] }
func (p Plane) Z() float32 { return p.P0[3] }
func (p Plane) D() float32 { return p.P0[0] }

func (p Plane) E0() float32 { return p.P0[0] }
func (p Plane) E1() float32 { return p.P0[1] }
func (p Plane) E2() float32 { return p.P0[2] }
func (p Plane) E3() float32 { return p.P0[3] }

// Norm is the length of the plane normal.
func (p Plane) Norm() float32 {
	return sqrt(simd.HiDp(p.P0, p.P0))
}

// Normalize scales p in place so its normal has unit length; the distance
// to the origin is scaled with it.
func (p *Plane) Normalize() {
	p.P0 = simd.Mul(p.P0, simd.RsqrtNR1(simd.HiDpBC(p.P0, p.P0)))
}

func (p Plane) Normalized() Plane {
	p.Normalize()
	return p
}

// Invert sets p to p/(p|p).
func (p *Plane) Invert() {
	s := simd.RsqrtNR1(simd.HiDpBC(p.P0, p.P0))
	p.P0 = simd.Mul(s, simd.Mul(s, p.P0))
}

func (p Plane) Inverse() Plane {
	p.Invert()
	return p
}

// Rev is the identity on grade 1 elements.
func (p Plane) Rev() Plane { return p }

// Dual returns the point with the same lanes.
func (p Plane) Dual() Point { return Point{p.P0} }

func (p Plane) Neg() Plane            { return Plane{simd.Neg(p.P0)} }
func (p Plane) Add(q Plane) Plane     { return Plane{simd.Add(p.P0, q.P0)} }
func (p Plane) Sub(q Plane) Plane     { return Plane{simd.Sub(p.P0, q.P0)} }
func (p Plane) Scale(s float32) Plane { return Plane{simd.Scale(p.P0, s)} }

// Quo divides p by s.
func (p Plane) Quo(s float32) Plane { return Plane{simd.Scale(p.P0, simd.Rcp1(s))} }

func (p Plane) Equal(q Plane) bool { return p.P0 == q.P0 }

func (p Plane) ApproxEqual(q Plane, eps float32) bool { return approx4(p.P0, q.P0, eps) }

func (p Plane) String() string {
	return fmt.Sprintf("Plane(%v*x %+g*y %+g*z %+g)", p.X(), p.Y(), p.Z(), p.D())
}
