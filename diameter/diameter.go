package diameter

import (
	"cmp"
	"errors"
	"math"
)

// ErrDimensionMismatch is returned by Euclidean for vectors of different length.
var ErrDimensionMismatch = errors.New("diameter: vectors have different lengths")

// Number is the set of built-in numeric types accepted by AbsDiff.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Diameter returns the maximum of dist(items[i], items[j]) over all i < j.
// ok is false when len(items) < 2.
func Diameter[T any, D cmp.Ordered](items []T, dist func(a, b T) D) (d D, ok bool) {
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			v := dist(items[i], items[j])
			if !ok || v > d {
				d, ok = v, true
			}
		}
	}

	return d, ok
}

// OrZero is Diameter with the undefined case mapped to the zero value of D.
func OrZero[T any, D cmp.Ordered](items []T, dist func(a, b T) D) D {
	d, _ := Diameter(items, dist)
	return d
}

// AbsDiff is the distance |a − b| on numbers.
// Operands are converted to float64 before subtracting, so the result never
// wraps for integer types.
func AbsDiff[N Number](a, b N) float64 {
	return math.Abs(float64(a) - float64(b))
}

// Euclidean is the L2 distance between two vectors of equal length.
func Euclidean(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return math.Sqrt(sum), nil
}
