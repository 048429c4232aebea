package pga

import (
	"dasa.cc/ga/internal/simd"
	"golang.org/x/image/math/f32"
)

// Inner product kernels. a|b is the grade |j-k| part of the geometric
// product of a j-vector and a k-vector; it is symmetric for equal grades.

// dot03 returns the line through a point perpendicular to a plane.
func dot03(a, b f32.Vec4) (p1, p2 f32.Vec4) {
	p1 = f32.Vec4{
		0,
		a[1] * b[0],
		a[2] * b[0],
		a[3] * b[0],
	}
	p2 = f32.Vec4{
		0,
		-a[2]*b[3] + a[3]*b[2],
		a[1]*b[3] - a[3]*b[1],
		-a[1]*b[2] + a[2]*b[1],
	}
	return p1, p2
}

func dot30(a, b f32.Vec4) (p1, p2 f32.Vec4) {
	p1 = f32.Vec4{
		0,
		a[0] * b[1],
		a[0] * b[2],
		a[0] * b[3],
	}
	p2 = f32.Vec4{
		0,
		a[2]*b[3] - a[3]*b[2],
		-a[1]*b[3] + a[3]*b[1],
		a[1]*b[2] - a[2]*b[1],
	}
	return p1, p2
}

// dotPL returns the plane containing a line perpendicular to a plane.
func dotPL(a, b1, b2 f32.Vec4) f32.Vec4 {
	return f32.Vec4{
		-a[1]*b2[1] - a[2]*b2[2] - a[3]*b2[3],
		-a[2]*b1[3] + a[3]*b1[2],
		a[1]*b1[3] - a[3]*b1[1],
		-a[1]*b1[2] + a[2]*b1[1],
	}
}

func dotLP(a1, a2, b f32.Vec4) f32.Vec4 {
	return f32.Vec4{
		a2[1]*b[1] + a2[2]*b[2] + a2[3]*b[3],
		-a1[2]*b[3] + a1[3]*b[2],
		a1[1]*b[3] - a1[3]*b[1],
		-a1[1]*b[2] + a1[2]*b[1],
	}
}

// dotPtL returns the plane through a point perpendicular to a line.
func dotPtL(a, b f32.Vec4) f32.Vec4 {
	return f32.Vec4{
		a[1]*b[1] + a[2]*b[2] + a[3]*b[3],
		-a[0] * b[1],
		-a[0] * b[2],
		-a[0] * b[3],
	}
}

func dotLPt(a, b f32.Vec4) f32.Vec4 {
	return f32.Vec4{
		a[1]*b[1] + a[2]*b[2] + a[3]*b[3],
		-a[1] * b[0],
		-a[2] * b[0],
		-a[3] * b[0],
	}
}

// DotPlane returns the cosine of the angle between normalized planes.
func (p Plane) DotPlane(q Plane) float32 { return simd.HiDp(p.P0, q.P0) }

func (p Plane) DotPoint(a Point) Line {
	var l Line
	l.P1, l.P2 = dot03(p.P0, a.P3)
	return l
}

func (p Plane) DotLine(l Line) Plane { return Plane{dotPL(p.P0, l.P1, l.P2)} }

// DotPlane returns the line through a perpendicular to p.
func (a Point) DotPlane(p Plane) Line {
	var l Line
	l.P1, l.P2 = dot30(a.P3, p.P0)
	return l
}

// DotPoint returns -wa wb; the metric ignores everything but the weights.
func (a Point) DotPoint(b Point) float32 { return -a.P3[0] * b.P3[0] }

// DotLine returns the plane through a perpendicular to l.
func (a Point) DotLine(l Line) Plane { return Plane{dotPtL(a.P3, l.P1)} }

func (l Line) DotLine(k Line) float32 { return -simd.HiDp(l.P1, k.P1) }

func (l Line) DotPlane(p Plane) Plane { return Plane{dotLP(l.P1, l.P2, p.P0)} }

func (l Line) DotPoint(a Point) Plane { return Plane{dotLPt(l.P1, a.P3)} }

func (b Branch) DotBranch(c Branch) float32 { return -simd.HiDp(b.P1, c.P1) }

// ProjectPlane returns the point on p closest to a, (a|p)^p.
func (a Point) ProjectPlane(p Plane) Point { return a.DotPlane(p).WedgePlane(p) }

// ProjectLine returns the point on l closest to a, (a|l)^l.
func (a Point) ProjectLine(l Line) Point { return a.DotLine(l).WedgeLine(l) }

// ProjectPlane returns the orthogonal projection of l onto p, (l|p)^p.
func (l Line) ProjectPlane(p Plane) Line { return l.DotPlane(p).WedgePlane(p) }

// ProjectPoint returns the line through a parallel to l, (l|a)|a.
func (l Line) ProjectPoint(a Point) Line { return l.DotPoint(a).DotPoint(a) }

// ProjectPoint returns the plane through a parallel to p, (p|a)|a.
func (p Plane) ProjectPoint(a Point) Plane { return p.DotPoint(a).DotPoint(a) }
