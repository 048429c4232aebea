package pga

import "fmt"

// Dual is the dual number P + Q e0123. Since e0123 squares to zero these
// behave like dual numbers under the geometric product.
type Dual struct {
	P, Q float32
}

func NewDual(p, q float32) Dual { return Dual{p, q} }

func (a Dual) Scalar() float32 { return a.P }
func (a Dual) E0123() float32  { return a.Q }

func (a Dual) Add(b Dual) Dual      { return Dual{a.P + b.P, a.Q + b.Q} }
func (a Dual) Sub(b Dual) Dual      { return Dual{a.P - b.P, a.Q - b.Q} }
func (a Dual) Scale(s float32) Dual { return Dual{a.P * s, a.Q * s} }

// Mul returns (a.P + a.Q I)(b.P + b.Q I) = a.P b.P + (a.P b.Q + a.Q b.P) I.
func (a Dual) Mul(b Dual) Dual { return Dual{a.P * b.P, a.P*b.Q + a.Q*b.P} }

// Rev is the identity; grades 0 and 4 are unchanged by reversion.
func (a Dual) Rev() Dual { return a }

// Dual exchanges the scalar and pseudoscalar.
func (a Dual) Dual() Dual { return Dual{a.Q, a.P} }

func (a Dual) ApproxEqual(b Dual, eps float32) bool {
	return equaleps(a.P, b.P, eps) && equaleps(a.Q, b.Q, eps)
}

func (a Dual) String() string { return fmt.Sprintf("Dual(%v %+g e0123)", a.P, a.Q) }
