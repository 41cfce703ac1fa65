package diameter_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/diameter"
)

// ExampleDiameter shows both the defined and the undefined case.
func ExampleDiameter() {
	d, ok := diameter.Diameter([]int{1, 2, 3, 4, 5}, diameter.AbsDiff[int])
	fmt.Println(d, ok)

	_, ok = diameter.Diameter([]int{9}, diameter.AbsDiff[int])
	fmt.Println(ok)
	// Output:
	// 4 true
	// false
}

// ExampleWarp compares a series with a slowed-down copy of itself.
func ExampleWarp() {
	dtw := diameter.Warp(0, 0)
	fmt.Println(dtw([]float64{0, 1, 2}, []float64{0, 0, 1, 1, 2}))
	fmt.Println(dtw([]float64{0, 1, 2}, []float64{5, 6, 7}))
	// Output:
	// 0
	// 15
}
