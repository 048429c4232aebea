package pga

import (
	"dasa.cc/ga/internal/simd"
	"golang.org/x/image/math/f32"
)

// Geometric product kernels. Partitions follow the layouts in the package
// documentation; p1 is (scalar, e23, e31, e12) and p2 is (e0123, e01, e02, e03)
// unless stated otherwise.

// gp00 multiplies two planes.
func gp00(a, b f32.Vec4) (p1, p2 f32.Vec4) {
	p1 = f32.Vec4{
		a[1]*b[1] + a[2]*b[2] + a[3]*b[3],
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

// gp03 multiplies a plane with a point.
func gp03(a, b f32.Vec4) (p1, p2 f32.Vec4) {
	p1 = f32.Vec4{
		0,
		a[1] * b[0],
		a[2] * b[0],
		a[3] * b[0],
	}
	p2 = f32.Vec4{
		a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3],
		-a[2]*b[3] + a[3]*b[2],
		a[1]*b[3] - a[3]*b[1],
		-a[1]*b[2] + a[2]*b[1],
	}
	return p1, p2
}

// gp30 multiplies a point with a plane.
func gp30(a, b f32.Vec4) (p1, p2 f32.Vec4) {
	p1 = f32.Vec4{
		0,
		a[0] * b[1],
		a[0] * b[2],
		a[0] * b[3],
	}
	p2 = f32.Vec4{
		-a[0]*b[0] - a[1]*b[1] - a[2]*b[2] - a[3]*b[3],
		a[2]*b[3] - a[3]*b[2],
		-a[1]*b[3] + a[3]*b[1],
		a[1]*b[2] - a[2]*b[1],
	}
	return p1, p2
}

// gp33 multiplies two points. The product is
//
//	-a0 b0 + (a1 b0 - a0 b1) e01 + (a2 b0 - a0 b2) e02 + (a3 b0 - a0 b3) e03
//
// and is returned divided through by its scalar so it reads as a
// translator.
func gp33(a, b f32.Vec4) f32.Vec4 {
	s := simd.Rcp1(-a[0] * b[0])
	return f32.Vec4{
		0,
		(a[1]*b[0] - a[0]*b[1]) * s,
		(a[2]*b[0] - a[0]*b[2]) * s,
		(a[3]*b[0] - a[0]*b[3]) * s,
	}
}

// gp11 multiplies two p1 partitions; rotors, branches or the Euclidean part
// of lines.
func gp11(a, b f32.Vec4) f32.Vec4 {
	return f32.Vec4{
		a[0]*b[0] - a[1]*b[1] - a[2]*b[2] - a[3]*b[3],
		a[0]*b[1] + a[1]*b[0] - a[2]*b[3] + a[3]*b[2],
		a[0]*b[2] + a[1]*b[3] + a[2]*b[0] - a[3]*b[1],
		a[0]*b[3] - a[1]*b[2] + a[2]*b[1] + a[3]*b[0],
	}
}

// gp12 multiplies a p1 partition with a p2 partition. The product of two p2
// partitions always vanishes, so motor products are built from gp11, gp12
// and gp21 alone.
func gp12(a, b f32.Vec4) f32.Vec4 {
	return f32.Vec4{
		a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3],
		a[0]*b[1] - a[1]*b[0] - a[2]*b[3] + a[3]*b[2],
		a[0]*b[2] + a[1]*b[3] - a[2]*b[0] - a[3]*b[1],
		a[0]*b[3] - a[1]*b[2] + a[2]*b[1] - a[3]*b[0],
	}
}

// gp21 multiplies a p2 partition with a p1 partition.
func gp21(a, b f32.Vec4) f32.Vec4 {
	return f32.Vec4{
		a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3],
		-a[0]*b[1] + a[1]*b[0] - a[2]*b[3] + a[3]*b[2],
		-a[0]*b[2] + a[1]*b[3] + a[2]*b[0] - a[3]*b[1],
		-a[0]*b[3] - a[1]*b[2] + a[2]*b[1] + a[3]*b[0],
	}
}

// gpMM multiplies two motors.
func gpMM(a1, a2, b1, b2 f32.Vec4) (p1, p2 f32.Vec4) {
	return gp11(a1, b1), simd.Add(gp12(a1, b2), gp21(a2, b1))
}

// MulPlane returns the motor pq, the reflection in q followed by the
// reflection in p.
func (p Plane) MulPlane(q Plane) Motor {
	var m Motor
	m.P1, m.P2 = gp00(p.P0, q.P0)
	return m
}

func (p Plane) MulPoint(a Point) Motor {
	var m Motor
	m.P1, m.P2 = gp03(p.P0, a.P3)
	return m
}

func (p Plane) DivPlane(q Plane) Motor { return p.MulPlane(q.Inverse()) }

func (a Point) MulPlane(p Plane) Motor {
	var m Motor
	m.P1, m.P2 = gp30(a.P3, p.P0)
	return m
}

// MulPoint returns the translator ab, which moves points by 2(a-b) when a
// and b are normalized.
func (a Point) MulPoint(b Point) Translator { return Translator{gp33(a.P3, b.P3)} }

func (a Point) DivPoint(b Point) Translator { return a.MulPoint(b.Inverse()) }

func (b Branch) MulBranch(c Branch) Rotor { return Rotor{gp11(b.P1, c.P1)} }

func (b Branch) DivBranch(c Branch) Rotor { return b.MulBranch(c.Inverse()) }

func (l Line) MulLine(k Line) Motor {
	var m Motor
	m.P1, m.P2 = gpMM(l.P1, l.P2, k.P1, k.P2)
	return m
}

func (l Line) DivLine(k Line) Motor { return l.MulLine(k.Inverse()) }

// MulLine returns (P + Q e0123) l.
func (a Dual) MulLine(l Line) Line {
	return Line{
		simd.Scale(l.P1, a.P),
		simd.Sub(simd.Scale(l.P2, a.P), simd.Scale(l.P1, a.Q)),
	}
}

func (r Rotor) MulRotor(s Rotor) Rotor { return Rotor{gp11(r.P1, s.P1)} }

func (r Rotor) DivRotor(s Rotor) Rotor { return r.MulRotor(s.Inverse()) }

func (r Rotor) MulTranslator(t Translator) Motor { return Motor{r.P1, gp12(r.P1, t.P2)} }

func (r Rotor) MulMotor(m Motor) Motor { return Motor{gp11(r.P1, m.P1), gp12(r.P1, m.P2)} }

// MulTranslator composes two translations; the product of their ideal parts
// vanishes.
func (t Translator) MulTranslator(u Translator) Translator {
	return Translator{simd.Add(t.P2, u.P2)}
}

func (t Translator) DivTranslator(u Translator) Translator { return t.MulTranslator(u.Inverse()) }

func (t Translator) MulRotor(r Rotor) Motor { return Motor{r.P1, gp21(t.P2, r.P1)} }

func (t Translator) MulMotor(m Motor) Motor {
	return Motor{m.P1, simd.Add(m.P2, gp21(t.P2, m.P1))}
}

func (m Motor) MulMotor(n Motor) Motor {
	var o Motor
	o.P1, o.P2 = gpMM(m.P1, m.P2, n.P1, n.P2)
	return o
}

func (m Motor) DivMotor(n Motor) Motor { return m.MulMotor(n.Inverse()) }

func (m Motor) MulRotor(r Rotor) Motor { return Motor{gp11(m.P1, r.P1), gp21(m.P2, r.P1)} }

func (m Motor) DivRotor(r Rotor) Motor { return m.MulRotor(r.Inverse()) }

func (m Motor) MulTranslator(t Translator) Motor {
	return Motor{m.P1, simd.Add(m.P2, gp12(m.P1, t.P2))}
}

func (m Motor) DivTranslator(t Translator) Motor { return m.MulTranslator(t.Inverse()) }
