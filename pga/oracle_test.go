package pga

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"dasa.cc/ga/gma"
	"golang.org/x/image/math/f32"
)

// lanes is a partition with every entry in [-2, 2).
type lanes f32.Vec4

func (lanes) Generate(r *rand.Rand, size int) reflect.Value {
	var v lanes
	for i := range v {
		v[i] = 4*r.Float32() - 2
	}
	return reflect.ValueOf(v)
}

// hi zeroes lane 0.
func (v lanes) hi() f32.Vec4 { return f32.Vec4{0, v[1], v[2], v[3]} }

func (v lanes) vec() f32.Vec4 { return f32.Vec4(v) }

// weighted sets lane 0 away from zero so points can be divided by it.
func (v lanes) weighted() f32.Vec4 {
	w := v
	w[0] = 1 + float32(math.Abs(float64(v[0])))/2
	return f32.Vec4(w)
}

// basis maps each lane of a partition onto a gma blade and the sign
// between the named blade and its canonical bitmap.
type basis [4]gma.Blade

var (
	basisP0 = basis{{Scalar: 1, Basis: gma.E0}, {Scalar: 1, Basis: gma.E1}, {Scalar: 1, Basis: gma.E2}, {Scalar: 1, Basis: gma.E3}}
	basisP3 = basis{
		{Scalar: 1, Basis: gma.E1 | gma.E2 | gma.E3},
		{Scalar: -1, Basis: gma.E0 | gma.E2 | gma.E3},
		{Scalar: 1, Basis: gma.E0 | gma.E1 | gma.E3},
		{Scalar: -1, Basis: gma.E0 | gma.E1 | gma.E2},
	}
	basisP1 = basis{{Scalar: 1, Basis: 0}, {Scalar: 1, Basis: gma.E2 | gma.E3}, {Scalar: -1, Basis: gma.E1 | gma.E3}, {Scalar: 1, Basis: gma.E1 | gma.E2}}
	basisP2 = basis{{Scalar: 1, Basis: gma.I.Basis}, {Scalar: 1, Basis: gma.E0 | gma.E1}, {Scalar: 1, Basis: gma.E0 | gma.E2}, {Scalar: 1, Basis: gma.E0 | gma.E3}}
)

func (b basis) mv(x f32.Vec4) gma.Multivector {
	var m gma.Multivector
	for i, v := range b {
		m = append(m, gma.Blade{Scalar: v.Scalar * float64(x[i]), Basis: v.Basis})
	}
	return m.Add(nil)
}

func (b basis) lanes(m gma.Multivector) f32.Vec4 {
	var x f32.Vec4
	for i, v := range b {
		x[i] = float32(v.Scalar * m.ScalarOf(v.Basis))
	}
	return x
}

func mvPlane(p Plane) gma.Multivector { return basisP0.mv(p.P0) }
func mvPoint(a Point) gma.Multivector { return basisP3.mv(a.P3) }
func mvLine(l Line) gma.Multivector   { return basisP1.mv(l.P1).Add(basisP2.mv(l.P2)) }
func mvRotor(r Rotor) gma.Multivector { return basisP1.mv(r.P1) }
func mvMotor(m Motor) gma.Multivector { return basisP1.mv(m.P1).Add(basisP2.mv(m.P2)) }
func mvDual(d Dual) gma.Multivector {
	return gma.Multivector{gma.Scalar(float64(d.P)), {Scalar: float64(d.Q), Basis: gma.I.Basis}}.Add(nil)
}

func mvTranslator(t Translator) gma.Multivector {
	return gma.Multivector{gma.Scalar(1)}.Add(basisP2.mv(t.P2))
}

// tolerance scales eps by the largest coefficient of want.
func tolerance(want gma.Multivector, eps float64) float64 {
	m := 1.0
	for _, v := range want {
		m = math.Max(m, math.Abs(v.Scalar))
	}
	return eps * m
}

// agrees reports whether got matches want within a single precision
// tolerance and logs both when it does not.
func agrees(t *testing.T, name string, want, got gma.Multivector) bool {
	t.Helper()
	if !want.Equal(got, tolerance(want, 1e-4)) {
		t.Logf("%s: want %v, have %v", name, want, got)
		return false
	}
	return true
}
