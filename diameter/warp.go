package diameter

import "math"

// Warp returns the dynamic time warping distance between two series, for use
// as the metric of Diameter or cluster.MaxDiameter when items are time series
// sampled at different speeds.
//
// Each aligned pair (i, j) costs |a[i] − b[j]|; every step that advances only
// one of the series adds penalty on top. With window > 0 only pairs with
// |i − j| ≤ window may be aligned (Sakoe–Chiba band); window ≤ 0 means no
// band.
//
// Two empty series are at distance 0. An empty and a non-empty series, or
// series whose lengths differ by more than window, are at +Inf.
//
// Complexity: O(len(a)·len(b)) time, O(len(b)) memory.
func Warp(window int, penalty float64) func(a, b []float64) float64 {
	return func(a, b []float64) float64 {
		return warp(a, b, window, penalty)
	}
}

func warp(a, b []float64, window int, penalty float64) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	// prev/curr hold rows i-1 and i of the (n+1)×(m+1) accumulated cost table.
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if window > 0 && (i-j > window || j-i > window) {
				curr[j] = inf
				continue
			}
			step := min(prev[j-1], prev[j]+penalty, curr[j-1]+penalty)
			curr[j] = math.Abs(a[i-1]-b[j-1]) + step
		}
		prev, curr = curr, prev
	}

	return prev[m]
}
