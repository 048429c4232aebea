package pga

import (
	"dasa.cc/ga/internal/simd"
	"golang.org/x/image/math/f32"
)

// Exterior product kernels. The meet of two elements is their exterior
// product, and the join is the exterior product of their duals dualized
// back.

// ext00 meets two planes in a line.
func ext00(a, b f32.Vec4) (p1, p2 f32.Vec4) {
	p1 = f32.Vec4{
		0,
		a[2]*b[3] - a[3]*b[2],
		-a[1]*b[3] + a[3]*b[1],
		a[1]*b[2] - a[2]*b[1],
	}
	p2 = f32.Vec4{
		0,
		a[0]*b[1] - a[1]*b[0],
		a[0]*b[2] - a[2]*b[0],
		a[0]*b[3] - a[3]*b[0],
	}
	return p1, p2
}

// ext01 meets a plane with the Euclidean part of a line.
func ext01(a, b f32.Vec4) f32.Vec4 {
	return f32.Vec4{
		a[1]*b[1] + a[2]*b[2] + a[3]*b[3],
		-a[0] * b[1],
		-a[0] * b[2],
		-a[0] * b[3],
	}
}

func ext10(a, b f32.Vec4) f32.Vec4 {
	return f32.Vec4{
		a[1]*b[1] + a[2]*b[2] + a[3]*b[3],
		-a[1] * b[0],
		-a[2] * b[0],
		-a[3] * b[0],
	}
}

// ext02 meets a plane with the ideal part of a line.
func ext02(a, b f32.Vec4) f32.Vec4 {
	return f32.Vec4{
		0,
		a[2]*b[3] - a[3]*b[2],
		-a[1]*b[3] + a[3]*b[1],
		a[1]*b[2] - a[2]*b[1],
	}
}

func ext20(a, b f32.Vec4) f32.Vec4 {
	return f32.Vec4{
		0,
		-a[2]*b[3] + a[3]*b[2],
		a[1]*b[3] - a[3]*b[1],
		-a[1]*b[2] + a[2]*b[1],
	}
}

// ext03 returns the e0123 coefficient of a plane meeting a point; the
// reverse order negates it.
func ext03(a, b f32.Vec4) float32 { return simd.Dp(a, b) }

// extLL returns the e0123 coefficient of two lines meeting.
func extLL(a1, a2, b1, b2 f32.Vec4) float32 { return simd.HiDp(a1, b2) + simd.HiDp(a2, b1) }

// WedgePlane returns the line where p and q intersect.
func (p Plane) WedgePlane(q Plane) Line {
	var l Line
	l.P1, l.P2 = ext00(p.P0, q.P0)
	return l
}

// WedgeLine returns the point where l crosses p.
func (p Plane) WedgeLine(l Line) Point {
	return Point{simd.Add(ext01(p.P0, l.P1), ext02(p.P0, l.P2))}
}

func (p Plane) WedgeBranch(b Branch) Point { return Point{ext01(p.P0, b.P1)} }

func (p Plane) WedgeHorizon(h Horizon) Point { return Point{ext02(p.P0, h.P2)} }

// WedgePoint returns the pseudoscalar p^a, zero when a lies on p.
func (p Plane) WedgePoint(a Point) Dual { return Dual{0, ext03(p.P0, a.P3)} }

func (l Line) WedgePlane(p Plane) Point {
	return Point{simd.Add(ext10(l.P1, p.P0), ext20(l.P2, p.P0))}
}

// WedgeLine returns the pseudoscalar l^k, zero when the lines are coplanar.
func (l Line) WedgeLine(k Line) Dual { return Dual{0, extLL(l.P1, l.P2, k.P1, k.P2)} }

func (b Branch) WedgePlane(p Plane) Point { return Point{ext10(b.P1, p.P0)} }

func (b Branch) WedgeHorizon(h Horizon) Dual { return Dual{0, simd.HiDp(b.P1, h.P2)} }

func (h Horizon) WedgePlane(p Plane) Point { return Point{ext20(h.P2, p.P0)} }

func (h Horizon) WedgeBranch(b Branch) Dual { return Dual{0, simd.HiDp(b.P1, h.P2)} }

func (a Point) WedgePlane(p Plane) Dual { return Dual{0, -ext03(p.P0, a.P3)} }

// JoinPoint returns the line through a and b. The squared norm of the line
// is the squared distance between normalized points.
func (a Point) JoinPoint(b Point) Line { return a.Dual().WedgePlane(b.Dual()).Dual() }

// JoinLine returns the plane containing a and l.
func (a Point) JoinLine(l Line) Plane { return a.Dual().WedgeLine(l.Dual()).Dual() }

func (a Point) JoinPlane(p Plane) Dual { return a.Dual().WedgePoint(p.Dual()).Dual() }

func (l Line) JoinPoint(a Point) Plane { return l.Dual().WedgePlane(a.Dual()).Dual() }

// JoinLine returns the scalar l&k; the lines are coplanar when it is zero.
func (l Line) JoinLine(k Line) Dual { return l.Dual().WedgeLine(k.Dual()).Dual() }

func (p Plane) JoinPoint(a Point) Dual { return p.Dual().WedgePlane(a.Dual()).Dual() }

// Join3 returns the plane through a, b and c.
func Join3(a, b, c Point) Plane { return a.JoinPoint(b).JoinPoint(c) }
