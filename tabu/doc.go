// Package tabu implements a generic tabu search minimizer.
//
// 🚀 What is tabu search?
//
//	A local search that always moves to the best neighbor of the current
//	state, even when that neighbor is worse, while forbidding ("tabu") a
//	bounded history of recently left states. Uphill moves let the walk leave
//	a local minimum; the tabu list keeps it from sliding straight back in.
//
// ✨ Key features:
//   - any state type: Search for comparable states, SearchKeyed with a
//     caller-supplied identity key for everything else
//   - lazy neighborhoods via iter.Seq; each neighbor is costed exactly once
//   - aspiration: a tabu neighbor is accepted when it beats the best cost so far
//   - deterministic: ties go to the first neighbor in sequence order
//   - bounded memory: the tabu list is a FIFO set of fixed capacity
//   - OnStep hook for progress reporting without logging in the library
//
// ⚙️ Usage:
//
//	neighbors := func(x int) iter.Seq[int] {
//		return func(yield func(int) bool) {
//			_ = yield(x-1) && yield(x+1)
//		}
//	}
//	cost := func(x int) float64 { return float64((x - 7) * (x - 7)) }
//
//	res, err := tabu.Search(0, neighbors, cost, 100,
//		tabu.WithStoppingCost(0),
//		tabu.WithTabuCapacity(16),
//	)
//	// res.Best == 7, res.Stop == tabu.StopStoppingCost
//
// Termination:
//   - maxIterations transitions have been made (0 ⇒ the initial state is returned);
//   - the best cost is ≤ the stopping cost, checked before the first iteration too;
//   - the current state has no neighbors (dead end).
//
// The engine is single-threaded and keeps no state between calls. It has no
// cancellation primitive; bound a run with maxIterations or a stopping cost.
//
// Complexity per iteration: O(|N|·(c+h)) where |N| is the neighborhood size,
// c the cost of one evaluation and h the cost of one key computation.
// Memory: O(capacity) keys plus one neighbor at a time.
package tabu
