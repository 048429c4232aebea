// Package simd provides the 4-lane float32 primitives the pga kernels are
// written against.
//
// # Lanes
//
// Every value is a golang.org/x/image/math/f32.Vec4 and lane i is simply
// index i. Shuffles take lane indices explicitly, so
//
//	Swizzle(a, 3, 2, 1, 0)
//
// reverses a.
//
// # Operations
//
//   - Construction: Set, Set1, SetSS
//   - Shuffles: Swizzle, Dup
//   - Arithmetic: Add, Sub, Mul, Scale, Neg, FlipSigns, Keep
//   - Reductions: Dp, DpBC, DpSS, HiDp, HiDpBC, HiDpSS
//   - Division: Rcp, Rsqrt and their Newton-Raphson refined forms
//
// This is the portable implementation; nothing here is tied to an
// instruction set, and an accelerated build only needs to replace this
// package.
package simd
