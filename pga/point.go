package pga

import (
	"fmt"

	"dasa.cc/ga/internal/simd"
	"golang.org/x/image/math/f32"
)

// Point is the grade 3 element w e123 + x e032 + y e013 + z e021.
type Point struct {
	P3 f32.Vec4
}

// NewPoint returns the Euclidean point (x, y, z) with unit weight.
func NewPoint(x, y, z float32) Point { return Point{f32.Vec4{1, x, y, z}} }

func (a Point) X() float32 { return a.P3[1] }
func (a Point) Y() float32 { return a.P3[2] }
func (a Point) Z() float32 { return a.P3[3] }
func (a Point) W() float32 { return a.P3[0] }

func (a Point) E123() float32 { return a.P3[0] }
func (a Point) E032() float32 { return a.P3[1] }
func (a Point) E013() float32 { return a.P3[2] }
func (a Point) E021() float32 { return a.P3[3] }

// Normalize divides a in place by its weight so that W is one.
func (a *Point) Normalize() {
	a.P3 = simd.Mul(a.P3, simd.RcpNR1(simd.Dup(a.P3, 0)))
}

func (a Point) Normalized() Point {
	a.Normalize()
	return a
}

// Invert sets a to ~a/w², the inverse under the geometric product since a
// point squares to -w².
func (a *Point) Invert() {
	s := simd.Rcp1(a.P3[0])
	a.P3 = simd.Scale(a.P3, -s*s)
}

func (a Point) Inverse() Point {
	a.Invert()
	return a
}

// Rev negates every trivector coefficient.
func (a Point) Rev() Point { return Point{simd.Neg(a.P3)} }

// Dual returns the plane with the same lanes.
func (a Point) Dual() Plane { return Plane{a.P3} }

func (a Point) Neg() Point            { return Point{simd.Neg(a.P3)} }
func (a Point) Add(b Point) Point     { return Point{simd.Add(a.P3, b.P3)} }
func (a Point) Sub(b Point) Point     { return Point{simd.Sub(a.P3, b.P3)} }
func (a Point) Scale(s float32) Point { return Point{simd.Scale(a.P3, s)} }
func (a Point) Quo(s float32) Point   { return Point{simd.Scale(a.P3, simd.Rcp1(s))} }

func (a Point) Equal(b Point) bool { return a.P3 == b.P3 }

func (a Point) ApproxEqual(b Point, eps float32) bool { return approx4(a.P3, b.P3, eps) }

func (a Point) String() string {
	return fmt.Sprintf("Point(%v, %v, %v; %v)", a.X(), a.Y(), a.Z(), a.W())
}

// Direction is an ideal point, x e032 + y e013 + z e021, unaffected by
// translation.
type Direction struct {
	P3 f32.Vec4
}

func NewDirection(x, y, z float32) Direction { return Direction{f32.Vec4{0, x, y, z}} }

func (d Direction) X() float32 { return d.P3[1] }
func (d Direction) Y() float32 { return d.P3[2] }
func (d Direction) Z() float32 { return d.P3[3] }

// Normalize scales d in place to unit length.
func (d *Direction) Normalize() {
	d.P3 = simd.Mul(d.P3, simd.RsqrtNR1(simd.HiDpBC(d.P3, d.P3)))
}

func (d Direction) Normalized() Direction {
	d.Normalize()
	return d
}

func (d Direction) Neg() Direction            { return Direction{simd.Neg(d.P3)} }
func (d Direction) Add(e Direction) Direction { return Direction{simd.Add(d.P3, e.P3)} }
func (d Direction) Sub(e Direction) Direction { return Direction{simd.Sub(d.P3, e.P3)} }
func (d Direction) Scale(s float32) Direction { return Direction{simd.Scale(d.P3, s)} }
func (d Direction) Quo(s float32) Direction   { return d.Scale(simd.Rcp1(s)) }

func (d Direction) Equal(e Direction) bool { return d.P3 == e.P3 }

func (d Direction) ApproxEqual(e Direction, eps float32) bool { return approx4(d.P3, e.P3, eps) }

func (d Direction) String() string {
	return fmt.Sprintf("Direction(%v, %v, %v)", d.X(), d.Y(), d.Z())
}

// Origin is the point e123. Transforms apply to it with fewer operations
// than to a general point.
type Origin struct{}

func (Origin) Point() Point { return Point{f32.Vec4{1}} }
