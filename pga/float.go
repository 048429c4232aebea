package pga

import (
	"math"

	"golang.org/x/exp/constraints"
	"golang.org/x/image/math/f32"
)

func abs[T constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func equaleps[T constraints.Float](a, b, eps T) bool {
	return (a-b) < eps && (b-a) < eps
}

// approx4 compares every lane of a and b within eps.
func approx4(a, b f32.Vec4, eps float32) bool {
	return equaleps(a[0], b[0], eps) &&
		equaleps(a[1], b[1], eps) &&
		equaleps(a[2], b[2], eps) &&
		equaleps(a[3], b[3], eps)
}

func sqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }

func sincos(x float32) (sin, cos float32) {
	s, c := math.Sincos(float64(x))
	return float32(s), float32(c)
}

func atan2(y, x float32) float32 { return float32(math.Atan2(float64(y), float64(x))) }
