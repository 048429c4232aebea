package pga

import (
	"testing"
	"testing/quick"

	"dasa.cc/ga/gma"
)

func TestGeometricProduct(t *testing.T) {
	cfg := &quick.Config{MaxCount: 1 << 8}

	tests := []struct {
		name string
		f    interface{}
	}{
		{"Plane.MulPlane", func(a, b lanes) bool {
			p, q := Plane{a.vec()}, Plane{b.vec()}
			return agrees(t, "pq", mvPlane(p).Mul(mvPlane(q)), mvMotor(p.MulPlane(q)))
		}},
		{"Plane.MulPoint", func(a, b lanes) bool {
			p, x := Plane{a.vec()}, Point{b.vec()}
			return agrees(t, "px", mvPlane(p).Mul(mvPoint(x)), mvMotor(p.MulPoint(x)))
		}},
		{"Point.MulPlane", func(a, b lanes) bool {
			x, p := Point{a.vec()}, Plane{b.vec()}
			return agrees(t, "xp", mvPoint(x).Mul(mvPlane(p)), mvMotor(x.MulPlane(p)))
		}},
		{"Point.MulPoint", func(a, b lanes) bool {
			x, y := Point{a.weighted()}, Point{b.weighted()}
			want := mvPoint(x).Mul(mvPoint(y))
			want = want.Scale(1 / want.Scalar())
			return agrees(t, "xy", want, mvTranslator(x.MulPoint(y)))
		}},
		{"Branch.MulBranch", func(a, b lanes) bool {
			c, d := Branch{a.hi()}, Branch{b.hi()}
			return agrees(t, "cd", basisP1.mv(c.P1).Mul(basisP1.mv(d.P1)), mvRotor(c.MulBranch(d)))
		}},
		{"Line.MulLine", func(a, b, c, d lanes) bool {
			l, k := Line{a.hi(), b.hi()}, Line{c.hi(), d.hi()}
			return agrees(t, "lk", mvLine(l).Mul(mvLine(k)), mvMotor(l.MulLine(k)))
		}},
		{"Rotor.MulRotor", func(a, b lanes) bool {
			r, s := Rotor{a.vec()}, Rotor{b.vec()}
			return agrees(t, "rs", mvRotor(r).Mul(mvRotor(s)), mvRotor(r.MulRotor(s)))
		}},
		{"Rotor.MulTranslator", func(a, b lanes) bool {
			r, u := Rotor{a.vec()}, Translator{b.hi()}
			return agrees(t, "ru", mvRotor(r).Mul(mvTranslator(u)), mvMotor(r.MulTranslator(u)))
		}},
		{"Rotor.MulMotor", func(a, b, c lanes) bool {
			r, m := Rotor{a.vec()}, Motor{b.vec(), c.vec()}
			return agrees(t, "rm", mvRotor(r).Mul(mvMotor(m)), mvMotor(r.MulMotor(m)))
		}},
		{"Translator.MulTranslator", func(a, b lanes) bool {
			u, v := Translator{a.hi()}, Translator{b.hi()}
			return agrees(t, "uv", mvTranslator(u).Mul(mvTranslator(v)), mvTranslator(u.MulTranslator(v)))
		}},
		{"Translator.MulRotor", func(a, b lanes) bool {
			u, r := Translator{a.hi()}, Rotor{b.vec()}
			return agrees(t, "ur", mvTranslator(u).Mul(mvRotor(r)), mvMotor(u.MulRotor(r)))
		}},
		{"Translator.MulMotor", func(a, b, c lanes) bool {
			u, m := Translator{a.hi()}, Motor{b.vec(), c.vec()}
			return agrees(t, "um", mvTranslator(u).Mul(mvMotor(m)), mvMotor(u.MulMotor(m)))
		}},
		{"Motor.MulMotor", func(a, b, c, d lanes) bool {
			m, n := Motor{a.vec(), b.vec()}, Motor{c.vec(), d.vec()}
			return agrees(t, "mn", mvMotor(m).Mul(mvMotor(n)), mvMotor(m.MulMotor(n)))
		}},
		{"Motor.MulRotor", func(a, b, c lanes) bool {
			m, r := Motor{a.vec(), b.vec()}, Rotor{c.vec()}
			return agrees(t, "mr", mvMotor(m).Mul(mvRotor(r)), mvMotor(m.MulRotor(r)))
		}},
		{"Motor.MulTranslator", func(a, b, c lanes) bool {
			m, u := Motor{a.vec(), b.vec()}, Translator{c.hi()}
			return agrees(t, "mu", mvMotor(m).Mul(mvTranslator(u)), mvMotor(m.MulTranslator(u)))
		}},
		{"Dual.MulLine", func(a, b, c lanes) bool {
			d, l := Dual{a[0], a[1]}, Line{b.hi(), c.hi()}
			return agrees(t, "dl", mvDual(d).Mul(mvLine(l)), mvLine(d.MulLine(l)))
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := quick.Check(tc.f, cfg); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestDivision(t *testing.T) {
	one := gma.Multivector{gma.Scalar(1)}
	cfg := &quick.Config{MaxCount: 1 << 8}

	f := func(a, b, c, d lanes) bool {
		m, n := Motor{a.vec(), b.vec()}, Motor{c.vec(), d.vec()}
		if !agrees(t, "n/n", one, mvMotor(n.MulMotor(n.Inverse()))) {
			return false
		}
		// (m/n)n = m
		return agrees(t, "(m/n)n", mvMotor(m), mvMotor(m.DivMotor(n).MulMotor(n)))
	}
	if err := quick.Check(f, cfg); err != nil {
		t.Error(err)
	}

	g := func(a, b lanes) bool {
		p, l := Plane{a.vec()}, Line{a.hi(), b.hi()}
		return agrees(t, "p/p", one, mvMotor(p.DivPlane(p))) &&
			agrees(t, "l/l", one, mvMotor(l.DivLine(l))) &&
			agrees(t, "b/b", one, mvRotor(l.Branch().DivBranch(l.Branch())))
	}
	if err := quick.Check(g, cfg); err != nil {
		t.Error(err)
	}

	x := NewPoint(1, 2, 3)
	if u := x.DivPoint(x); !u.ApproxEqual(Translator{}, 1e-6) {
		t.Errorf("x/x = %v", u)
	}
	r := NewRotor(0.3, 1, 2, 3)
	if s := r.DivRotor(r); !s.ApproxEqual(Rotor{[4]float32{1}}, 1e-6) {
		t.Errorf("r/r = %v", s)
	}
	u := NewTranslator(2, 0, 1, 0)
	if v := u.DivTranslator(u); !v.ApproxEqual(Translator{}, 1e-6) {
		t.Errorf("u/u = %v", v)
	}
}
