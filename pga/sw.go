package pga

import (
	"dasa.cc/ga/internal/simd"
	"golang.org/x/image/math/f32"
)

// Closed forms of g x ~g. Expanding the sandwich of a motor with Euclidean
// part a and ideal part b leaves a 3x3 block R(a), scaled by a~a, acting on
// the Euclidean lanes of x, plus terms linear in b that carry the
// translation. R is built once per call and shared by every target type.

// swRot returns R(a) in row major order.
func swRot(a f32.Vec4) f32.Mat3 {
	a0, a1, a2, a3 := a[0], a[1], a[2], a[3]
	// 0 1 2
	// 3 4 5
	// 6 7 8
	return f32.Mat3{
		a0*a0 + a1*a1 - a2*a2 - a3*a3,
		2 * (a0*a3 + a1*a2),
		2 * (a1*a3 - a0*a2),

		2 * (a1*a2 - a0*a3),
		a0*a0 - a1*a1 + a2*a2 - a3*a3,
		2 * (a0*a1 + a2*a3),

		2 * (a0*a2 + a1*a3),
		2 * (a2*a3 - a0*a1),
		a0*a0 - a1*a1 - a2*a2 + a3*a3,
	}
}

// mul9v applies m to lanes 1..3 of x; lane 0 of the result is zero.
func mul9v(m f32.Mat3, x f32.Vec4) f32.Vec4 {
	return f32.Vec4{
		0,
		m[0]*x[1] + m[1]*x[2] + m[2]*x[3],
		m[3]*x[1] + m[4]*x[2] + m[5]*x[3],
		m[6]*x[1] + m[7]*x[2] + m[8]*x[3],
	}
}

// swPointT returns the translation a motor adds to a point of unit weight.
func swPointT(a, b f32.Vec4) f32.Vec4 {
	a0, a1, a2, a3 := a[0], a[1], a[2], a[3]
	b0, b1, b2, b3 := b[0], b[1], b[2], b[3]
	return f32.Vec4{
		0,
		2 * (-a0*b1 - a1*b0 + a2*b3 - a3*b2),
		2 * (-a0*b2 - a1*b3 - a2*b0 + a3*b1),
		2 * (-a0*b3 + a1*b2 - a2*b1 - a3*b0),
	}
}

// swPlaneU returns the row a motor uses to move the plane offset.
func swPlaneU(a, b f32.Vec4) f32.Vec4 {
	a0, a1, a2, a3 := a[0], a[1], a[2], a[3]
	b0, b1, b2, b3 := b[0], b[1], b[2], b[3]
	return f32.Vec4{
		0,
		2 * (a0*b1 + a1*b0 + a2*b3 - a3*b2),
		2 * (a0*b2 - a1*b3 + a2*b0 + a3*b1),
		2 * (a0*b3 + a1*b2 - a2*b1 + a3*b0),
	}
}

// swLineD returns the block mapping the Euclidean part of a line onto the
// ideal part of its image.
func swLineD(a, b f32.Vec4) f32.Mat3 {
	a0, a1, a2, a3 := a[0], a[1], a[2], a[3]
	b0, b1, b2, b3 := b[0], b[1], b[2], b[3]
	return f32.Mat3{
		2 * (-a0*b0 + a1*b1 - a2*b2 - a3*b3),
		2 * (a0*b3 + a1*b2 + a2*b1 - a3*b0),
		2 * (-a0*b2 + a1*b3 + a2*b0 + a3*b1),

		2 * (-a0*b3 + a1*b2 + a2*b1 + a3*b0),
		2 * (-a0*b0 - a1*b1 + a2*b2 - a3*b3),
		2 * (a0*b1 - a1*b0 + a2*b3 + a3*b2),

		2 * (a0*b2 + a1*b3 - a2*b0 + a3*b1),
		2 * (-a0*b1 + a1*b0 + a2*b3 + a3*b2),
		2 * (-a0*b0 - a1*b1 - a2*b2 + a3*b3),
	}
}

func swPoint(r f32.Mat3, a2 float32, t, x f32.Vec4) f32.Vec4 {
	y := simd.Add(mul9v(r, x), simd.Scale(t, x[0]))
	y[0] = a2 * x[0]
	return y
}

func swPlane(r f32.Mat3, a2 float32, u, x f32.Vec4) f32.Vec4 {
	y := mul9v(r, x)
	y[0] = a2*x[0] + simd.HiDp(u, x)
	return y
}

func swLine(r, d f32.Mat3, x1, x2 f32.Vec4) (p1, p2 f32.Vec4) {
	return mul9v(r, x1), simd.Add(mul9v(r, x2), mul9v(d, x1))
}

// cross returns the cross product of lanes 1..3.
func cross(a, b f32.Vec4) f32.Vec4 {
	return f32.Vec4{
		0,
		a[2]*b[3] - a[3]*b[2],
		a[3]*b[1] - a[1]*b[3],
		a[1]*b[2] - a[2]*b[1],
	}
}

// Transform is implemented by Rotor, Translator and Motor.
type Transform interface {
	ApplyPlane(Plane) Plane
	ApplyPoint(Point) Point
	ApplyLine(Line) Line
	ApplyDirection(Direction) Direction
	ApplyOrigin() Point
}

// Apply returns g x ~g. Origin is not a type parameter since its image is a
// Point; use Transform.ApplyOrigin.
func Apply[T Plane | Point | Line | Direction](g Transform, x T) T {
	var y any
	switch x := any(x).(type) {
	case Plane:
		y = g.ApplyPlane(x)
	case Point:
		y = g.ApplyPoint(x)
	case Line:
		y = g.ApplyLine(x)
	case Direction:
		y = g.ApplyDirection(x)
	}
	return y.(T)
}

var (
	_ Transform = Rotor{}
	_ Transform = Translator{}
	_ Transform = Motor{}
)

func (m Motor) ApplyPlane(p Plane) Plane {
	return Plane{swPlane(swRot(m.P1), simd.Dp(m.P1, m.P1), swPlaneU(m.P1, m.P2), p.P0)}
}

// ApplyPlanes writes the image of each plane in src to dst, which must be
// at least as long.
func (m Motor) ApplyPlanes(dst, src []Plane) {
	r, a2, u := swRot(m.P1), simd.Dp(m.P1, m.P1), swPlaneU(m.P1, m.P2)
	for i, p := range src {
		dst[i] = Plane{swPlane(r, a2, u, p.P0)}
	}
}

func (m Motor) ApplyPoint(a Point) Point {
	return Point{swPoint(swRot(m.P1), simd.Dp(m.P1, m.P1), swPointT(m.P1, m.P2), a.P3)}
}

// ApplyPoints writes the image of each point in src to dst, which must be
// at least as long.
func (m Motor) ApplyPoints(dst, src []Point) {
	r, a2, t := swRot(m.P1), simd.Dp(m.P1, m.P1), swPointT(m.P1, m.P2)
	for i, a := range src {
		dst[i] = Point{swPoint(r, a2, t, a.P3)}
	}
}

func (m Motor) ApplyLine(l Line) Line {
	var k Line
	k.P1, k.P2 = swLine(swRot(m.P1), swLineD(m.P1, m.P2), l.P1, l.P2)
	return k
}

// ApplyLines writes the image of each line in src to dst, which must be
// at least as long.
func (m Motor) ApplyLines(dst, src []Line) {
	r, d := swRot(m.P1), swLineD(m.P1, m.P2)
	for i, l := range src {
		dst[i].P1, dst[i].P2 = swLine(r, d, l.P1, l.P2)
	}
}

// ApplyDirection rotates d; directions are not translated.
func (m Motor) ApplyDirection(d Direction) Direction {
	return Direction{mul9v(swRot(m.P1), d.P3)}
}

// ApplyOrigin returns the image of the origin.
func (m Motor) ApplyOrigin() Point {
	t := swPointT(m.P1, m.P2)
	t[0] = simd.Dp(m.P1, m.P1)
	return Point{t}
}

func (r Rotor) ApplyPlane(p Plane) Plane {
	x := mul9v(swRot(r.P1), p.P0)
	x[0] = simd.Dp(r.P1, r.P1) * p.P0[0]
	return Plane{x}
}

func (r Rotor) ApplyPoint(a Point) Point {
	x := mul9v(swRot(r.P1), a.P3)
	x[0] = simd.Dp(r.P1, r.P1) * a.P3[0]
	return Point{x}
}

func (r Rotor) ApplyPoints(dst, src []Point) {
	m, a2 := swRot(r.P1), simd.Dp(r.P1, r.P1)
	for i, a := range src {
		x := mul9v(m, a.P3)
		x[0] = a2 * a.P3[0]
		dst[i] = Point{x}
	}
}

func (r Rotor) ApplyLine(l Line) Line {
	m := swRot(r.P1)
	return Line{mul9v(m, l.P1), mul9v(m, l.P2)}
}

func (r Rotor) ApplyBranch(b Branch) Branch { return Branch{mul9v(swRot(r.P1), b.P1)} }

func (r Rotor) ApplyDirection(d Direction) Direction {
	return Direction{mul9v(swRot(r.P1), d.P3)}
}

// ApplyOrigin returns the origin scaled by r~r; rotors fix it.
func (r Rotor) ApplyOrigin() Point { return Point{f32.Vec4{simd.Dp(r.P1, r.P1)}} }

// ApplyPlane shifts the plane offset by twice the dot of its normal with
// the ideal part of t.
func (t Translator) ApplyPlane(p Plane) Plane {
	p.P0[0] += 2 * simd.HiDp(t.P2, p.P0)
	return p
}

func (t Translator) ApplyPoint(a Point) Point {
	return Point{simd.Sub(a.P3, simd.Scale(simd.Keep(t.P2, simd.Hi), 2*a.P3[0]))}
}

func (t Translator) ApplyPoints(dst, src []Point) {
	d := simd.Scale(simd.Keep(t.P2, simd.Hi), 2)
	for i, a := range src {
		dst[i] = Point{simd.Sub(a.P3, simd.Scale(d, a.P3[0]))}
	}
}

func (t Translator) ApplyLine(l Line) Line {
	return Line{l.P1, simd.Add(l.P2, simd.Scale(cross(l.P1, t.P2), 2))}
}

// ApplyDirection returns d unchanged.
func (t Translator) ApplyDirection(d Direction) Direction { return d }

func (t Translator) ApplyOrigin() Point {
	o := simd.Scale(simd.Keep(t.P2, simd.Hi), -2)
	o[0] = 1
	return Point{o}
}

// Reflections in a plane, p x p. The result is scaled by |p|² for an
// unnormalized p.

// ReflectPlane returns q mirrored in p.
func (p Plane) ReflectPlane(q Plane) Plane {
	n2 := simd.HiDp(p.P0, p.P0)
	nq := simd.HiDp(p.P0, q.P0)
	y := simd.Sub(simd.Scale(p.P0, 2*nq), simd.Scale(q.P0, n2))
	y[0] = -n2*q.P0[0] + 2*p.P0[0]*nq
	return Plane{y}
}

// ReflectPoint returns a mirrored in p.
func (p Plane) ReflectPoint(a Point) Point {
	n2 := simd.HiDp(p.P0, p.P0)
	na := simd.HiDp(p.P0, a.P3)
	y := simd.Sub(simd.Scale(a.P3, n2), simd.Scale(p.P0, 2*(na+p.P0[0]*a.P3[0])))
	y[0] = n2 * a.P3[0]
	return Point{y}
}

// ReflectLine returns l mirrored in p.
func (p Plane) ReflectLine(l Line) Line {
	a0, a1, a2, a3 := p.P0[0], p.P0[1], p.P0[2], p.P0[3]
	x1, x2 := l.P1, l.P2
	n2 := simd.HiDp(p.P0, p.P0)
	p1 := simd.Keep(simd.Sub(simd.Scale(p.P0, 2*simd.HiDp(p.P0, x1)), simd.Scale(x1, n2)), simd.Hi)
	p2 := f32.Vec4{
		0,
		-2*a0*a3*x1[2] + 2*a0*a2*x1[3] + (-a1*a1+a2*a2+a3*a3)*x2[1] - 2*a1*a2*x2[2] - 2*a1*a3*x2[3],
		2*a0*a3*x1[1] - 2*a0*a1*x1[3] - 2*a1*a2*x2[1] + (a1*a1-a2*a2+a3*a3)*x2[2] - 2*a2*a3*x2[3],
		-2*a0*a2*x1[1] + 2*a0*a1*x1[2] - 2*a1*a3*x2[1] - 2*a2*a3*x2[2] + (a1*a1+a2*a2-a3*a3)*x2[3],
	}
	return Line{p1, p2}
}
