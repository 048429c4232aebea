// Package gma provides naive primitives for the projective geometric
// algebra R(3,0,1).
//
// Blades are bitmaps over the basis vectors e0, e1, e2, e3 where e0 is the
// degenerate direction (e0e0 = 0) and the rest square to one. Products loop
// over blades instead of using closed forms, which makes the package slow
// but easy to check by hand; package pga tests its kernels against it.
package gma

import (
	"fmt"
	"math"
	"math/bits"
	"sort"
)

var (
	E0 = uint8(1)
	E1 = uint8(1 << 1)
	E2 = uint8(1 << 2)
	E3 = uint8(1 << 3)

	// I is the pseudoscalar e0123.
	I = Blade{1, E0 ^ E1 ^ E2 ^ E3}

	ZB = Blade{}
)

// metric is the square of each basis vector.
var metric = [4]float64{0, 1, 1, 1}

// Scalar returns a 0-grade Blade.
func Scalar(x float64) Blade { return Blade{Scalar: x} }

type Blade struct {
	Scalar float64

	// Basis is a bitmap of independent vectors, if any; vectors must be in
	// canonical ordering so account for sign changes of Scalar when specifying.
	Basis uint8
}

// Grade returns the number of independent vectors of Blade.
func (a Blade) Grade() int {
	return bits.OnesCount8(a.Basis)
}

// Wedge returns the outer product of a^b; a zero product if a and b are
// dependent, otherwise the geometric product.
func (a Blade) Wedge(b Blade) Blade {
	if a.Basis&b.Basis != 0 {
		return ZB
	}
	return a.Mul(b)
}

// Mul returns the geometric product of ab; shared vectors contract through
// the metric, so any product repeating e0 vanishes.
func (a Blade) Mul(b Blade) Blade {
	s := signOf(a.Basis, b.Basis) * a.Scalar * b.Scalar
	for i, m := range metric {
		if a.Basis&b.Basis&(1<<i) != 0 {
			s *= m
		}
	}
	if s == 0 {
		return ZB
	}
	return Blade{s, a.Basis ^ b.Basis}
}

// Dot returns the grade |j-k| part of the geometric product of a j-blade and
// a k-blade.
func (a Blade) Dot(b Blade) Blade {
	c := a.Mul(b)
	if d := a.Grade() - b.Grade(); c.Grade() != d && c.Grade() != -d {
		return ZB
	}
	return c
}

func (a Blade) Rev() Blade {
	if a.Grade()%4 > 1 {
		a.Scalar *= -1
	}
	return a
}

func (a Blade) String() string {
	return fmt.Sprintf("Blade(%v, %04b)", a.Scalar, a.Basis)
}

func signOf(a, b uint8) float64 {
	a = a >> 1
	n := 0
	for a != 0 {
		n += bits.OnesCount8(a & b)
		a = a >> 1
	}
	if n&1 == 0 {
		return 1
	}
	return -1
}

type Multivector []Blade

func (a Multivector) Wedge(b Multivector) Multivector {
	var c Multivector
	for _, b0 := range a {
		for _, b1 := range b {
			c = append(c, b0.Wedge(b1))
		}
	}
	return simplify(c)
}

func (a Multivector) Mul(b Multivector) Multivector {
	var c Multivector
	for _, b0 := range a {
		for _, b1 := range b {
			c = append(c, b0.Mul(b1))
		}
	}
	return simplify(c)
}

func (a Multivector) Dot(b Multivector) Multivector {
	var c Multivector
	for _, b0 := range a {
		for _, b1 := range b {
			c = append(c, b0.Dot(b1))
		}
	}
	return simplify(c)
}

// Sandwich returns g a ~g.
func (a Multivector) Sandwich(g Multivector) Multivector {
	return g.Mul(a).Mul(g.Rev())
}

func (a Multivector) Add(b Multivector) Multivector {
	c := make(Multivector, len(a))
	copy(c, a)
	return simplify(append(c, b...))
}

func (a Multivector) Scale(x float64) Multivector {
	var b Multivector
	for _, v := range a {
		v.Scalar *= x
		b = append(b, v)
	}
	return simplify(b)
}

func (a Multivector) Rev() Multivector {
	var b Multivector
	for _, v := range a {
		b = append(b, v.Rev())
	}
	return b
}

// Exp sums the first n terms of the Taylor series of a.
func (a Multivector) Exp(n int) Multivector {
	sum := Multivector{Scalar(1)}
	term := Multivector{Scalar(1)}
	for i := 1; i < n; i++ {
		term = term.Mul(a).Scale(1 / float64(i))
		sum = sum.Add(term)
	}
	return sum
}

// Grade returns the grade k part of a.
func (a Multivector) Grade(k int) Multivector {
	var b Multivector
	for _, v := range a {
		if v.Grade() == k {
			b = append(b, v)
		}
	}
	return b
}

func simplify(a Multivector) Multivector {
	m := make(map[uint8]float64)
	for _, v := range a {
		m[v.Basis] += v.Scalar
	}

	var b Multivector
	for k, v := range m {
		if v != 0 {
			b = append(b, Blade{Scalar: v, Basis: k})
		}
	}

	sort.Slice(b, func(i, j int) bool {
		return b[i].Basis < b[j].Basis
	})
	return b
}

// Equal reports whether a and b agree on every blade within eps.
func (a Multivector) Equal(b Multivector, eps float64) bool {
	d := a.Add(b.Scale(-1))
	for _, v := range d {
		if math.Abs(v.Scalar) > eps {
			return false
		}
	}
	return true
}

func (a Multivector) ScalarOf(basis uint8) float64 {
	for _, v := range a {
		if v.Basis == basis {
			return v.Scalar
		}
	}
	return 0
}

func (a Multivector) Scalar() float64 { return a.ScalarOf(0) }
