package simd

import "golang.org/x/image/math/f32"

// Mask selects lanes; bit i refers to lane i.
type Mask uint8

const (
	Lane0 Mask = 1 << iota
	Lane1
	Lane2
	Lane3

	// Hi selects lanes 1, 2 and 3, the bivector or vector part of most
	// partitions.
	Hi  = Lane1 | Lane2 | Lane3
	All = Lane0 | Hi
)

// Set returns the vector with lane i set to xi.
func Set(x0, x1, x2, x3 float32) f32.Vec4 { return f32.Vec4{x0, x1, x2, x3} }

// Set1 broadcasts x to all lanes.
func Set1(x float32) f32.Vec4 { return f32.Vec4{x, x, x, x} }

// SetSS places x in lane 0 and zeroes the rest.
func SetSS(x float32) f32.Vec4 { return f32.Vec4{x} }

// Swizzle returns the vector whose lane k is a[ik].
func Swizzle(a f32.Vec4, i0, i1, i2, i3 int) f32.Vec4 {
	return f32.Vec4{a[i0], a[i1], a[i2], a[i3]}
}

// Dup broadcasts lane i of a to all lanes.
func Dup(a f32.Vec4, i int) f32.Vec4 { return Set1(a[i]) }

func Add(a, b f32.Vec4) f32.Vec4 {
	return f32.Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func Sub(a, b f32.Vec4) f32.Vec4 {
	return f32.Vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// Mul is the lane-wise product.
func Mul(a, b f32.Vec4) f32.Vec4 {
	return f32.Vec4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

func Scale(a f32.Vec4, s float32) f32.Vec4 {
	return f32.Vec4{a[0] * s, a[1] * s, a[2] * s, a[3] * s}
}

func Neg(a f32.Vec4) f32.Vec4 { return f32.Vec4{-a[0], -a[1], -a[2], -a[3]} }

// FlipSigns negates the lanes selected by m.
func FlipSigns(a f32.Vec4, m Mask) f32.Vec4 {
	for i := 0; i < 4; i++ {
		if m&(1<<i) != 0 {
			a[i] = -a[i]
		}
	}
	return a
}

// Keep zeroes every lane not selected by m.
func Keep(a f32.Vec4, m Mask) f32.Vec4 {
	for i := 0; i < 4; i++ {
		if m&(1<<i) == 0 {
			a[i] = 0
		}
	}
	return a
}

// IsZero reports whether every lane selected by m compares equal to zero.
func IsZero(a f32.Vec4, m Mask) bool {
	for i := 0; i < 4; i++ {
		if m&(1<<i) != 0 && a[i] != 0 {
			return false
		}
	}
	return true
}
