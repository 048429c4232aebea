package pga

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/f32"
)

func TestExp(t *testing.T) {
	cfg := &quick.Config{MaxCount: 1 << 6}
	f := func(a, b lanes) bool {
		l := Line{a.hi(), b.hi()}
		return agrees(t, "exp", mvLine(l).Exp(40), mvMotor(l.Exp()))
	}
	if err := quick.Check(f, cfg); err != nil {
		t.Error(err)
	}

	g := func(a lanes) bool {
		b := Branch{a.hi()}
		return agrees(t, "exp", mvLine(b.Line()).Exp(40), mvRotor(b.Exp()))
	}
	if err := quick.Check(g, cfg); err != nil {
		t.Error(err)
	}
}

func TestExpIdeal(t *testing.T) {
	// a purely ideal line takes the exact branch
	l := NewLine(1, -2, 3, 0, 0, 0)
	m := l.Exp()
	assert.Equal(t, Motor{f32.Vec4{1, 0, 0, 0}, f32.Vec4{0, 1, -2, 3}}, m)

	h := NewHorizon(1, -2, 3)
	assert.Equal(t, Translator{f32.Vec4{0, 1, -2, 3}}, h.Exp())
	assert.Equal(t, h, h.Exp().Log())

	assert.Equal(t, Rotor{f32.Vec4{1}}, Branch{}.Exp())
	assert.Equal(t, Line{P2: m.P2}.Horizon(), m.Log().Horizon())
	assert.Equal(t, Branch{}, m.Log().Branch())
}

func TestLog(t *testing.T) {
	cfg := &quick.Config{MaxCount: 1 << 10}
	f := func(a, b lanes) bool {
		m := Motor{a.vec(), b.vec()}.Normalized()
		return m.Log().Exp().ApproxEqual(m, 0.02)
	}
	if err := quick.Check(f, cfg); err != nil {
		t.Error(err)
	}

	g := func(a lanes) bool {
		r := Rotor{a.vec()}.Normalized()
		return r.Log().Exp().ApproxEqual(r, 0.02)
	}
	if err := quick.Check(g, cfg); err != nil {
		t.Error(err)
	}

	h := func(a lanes) bool {
		u := Translator{a.hi()}
		return u.Log().Exp().ApproxEqual(u, 1e-6)
	}
	if err := quick.Check(h, cfg); err != nil {
		t.Error(err)
	}
}

func TestLogHalfTurn(t *testing.T) {
	for _, angle := range []float32{math.Pi, -math.Pi, math.Pi - 1e-4} {
		m := NewRotor(angle, 0, 0, 1).MulTranslator(NewTranslator(2, 1, 2, 3))
		assert.True(t, m.Log().Exp().ApproxEqual(m, 0.02), "angle %v: %v", angle, m.Log().Exp())
	}
}

func TestLogScrew(t *testing.T) {
	axis := NewPoint(1, 0, 0).JoinPoint(NewPoint(1, 0, 1))
	m := NewMotorScrew(math.Pi/2, 2, axis)
	l := m.Log()
	// the log is (angle/2 + distance/2 I) along the normalized axis
	want := Dual{math.Pi / 4, 1}.MulLine(axis.Normalized())
	assert.True(t, l.ApproxEqual(want, 1e-5), "%v", l)
}

func TestSqrt(t *testing.T) {
	cfg := &quick.Config{MaxCount: 1 << 10}
	f := func(a, b lanes) bool {
		m := Motor{a.vec(), b.vec()}.Normalized().Constrained()
		s := m.Sqrt()
		return s.MulMotor(s).ApproxEqual(m, 0.02)
	}
	if err := quick.Check(f, cfg); err != nil {
		t.Error(err)
	}

	g := func(a lanes) bool {
		r := Rotor{a.vec()}.Normalized().Constrained()
		s := r.Sqrt()
		return s.MulRotor(s).ApproxEqual(r, 0.02)
	}
	if err := quick.Check(g, cfg); err != nil {
		t.Error(err)
	}

	u := NewTranslator(3, 1, 1, 0)
	assert.True(t, u.Sqrt().MulTranslator(u.Sqrt()).ApproxEqual(u, 1e-6))
}
