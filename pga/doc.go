// Package pga implements single precision 3D projective geometric algebra,
// R(3,0,1).
//
// Planes, points and lines are grade 1, 3 and 2 elements; rotations,
// translations and rigid motions are even elements built by exponentiating
// lines. Every type is a small value made of one or two four lane
// partitions stored as golang.org/x/image/math/f32.Vec4:
//
//	Plane       P0 = (d, x, y, z)          d e0 + x e1 + y e2 + z e3
//	Point       P3 = (w, x, y, z)          w e123 + x e032 + y e013 + z e021
//	Branch      P1 = (0, e23, e31, e12)
//	Horizon     P2 = (0, e01, e02, e03)
//	Line        P1 = (0, e23, e31, e12), P2 = (0, e01, e02, e03)
//	Rotor       P1 = (scalar, e23, e31, e12)
//	Translator  P2 = (0, e01, e02, e03)    scalar part fixed to 1
//	Motor       P1 = (scalar, e23, e31, e12), P2 = (e0123, e01, e02, e03)
//	Dual        (scalar, e0123)
//
// # Products
//
// Go has no operator overloading, so each product is a method named after
// the operator family and the right operand:
//
//	Mul<T>    *  geometric product
//	Div<T>    /  multiplication by the inverse
//	Wedge<T>  ^  exterior product (meet)
//	Dot<T>    |  inner product
//	Join<T>   &  regressive product (join)
//	Dual      !  Poincaré dual, a relabeling of lanes
//	Rev       ~  reversion
//
// Only grade pairs with a kernel exist as methods, so an unsupported product
// is a compile error rather than a runtime failure.
//
// # Transforms
//
// Rotor, Translator and Motor implement Transform and apply themselves to a
// primitive with the closed form of g x ~g. Apply is the generic entry point:
//
//	m := pga.NewRotor(math.Pi/2, 0, 0, 1).MulTranslator(pga.NewTranslator(1, 1, 0, 0))
//	p := pga.Apply(m, pga.NewPoint(1, 0, 0))
//
// # Degenerate input
//
// Divisions go through Newton-Raphson refined reciprocals. Normalizing or
// inverting a zero element is not guarded and yields NaN or Inf.
package pga
