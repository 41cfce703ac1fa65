package tabu

import (
	"fmt"
	"math"
)

// candidate is a neighbor picked during one neighborhood scan.
type candidate[S any] struct {
	state S
	cost  float64
	tabu  bool
	ok    bool
}

// offer keeps the first-encountered lowest-cost neighbor.
func (c *candidate[S]) offer(s S, cost float64, tabu bool) {
	if c.ok && !lower(cost, c.cost) {
		return
	}
	c.state, c.cost, c.tabu, c.ok = s, cost, tabu, true
}

// lower reports a < b, ranking NaN above every number.
func lower(a, b float64) bool {
	if math.IsNaN(b) {
		return !math.IsNaN(a)
	}

	return a < b
}

// Search minimizes cost over the states reachable from initial, using the
// states themselves as tabu keys.
//
// At most maxIterations transitions are made. The run also ends when the best
// cost drops to the WithStoppingCost threshold, or when the current state has
// no neighbors. The returned Result always carries the best state seen, which
// is not necessarily the last current state.
//
// Returns ErrNilNeighborFunc, ErrNilCostFunc, ErrNegativeIterations or
// ErrOptionViolation before any iteration for invalid input. Panics raised by
// neighbors or cost propagate unchanged.
func Search[S comparable](
	initial S,
	neighbors NeighborFunc[S],
	cost CostFunc[S],
	maxIterations int,
	opts ...Option,
) (Result[S], error) {
	return SearchKeyed(initial, func(s S) S { return s }, neighbors, cost, maxIterations, opts...)
}

// SearchKeyed is Search for state types that are not comparable. key maps
// every state to its identity key, which is what the tabu list stores.
//
// Selection rule per iteration:
//  1. Neighbors are evaluated in sequence order; each cost is computed once.
//  2. A neighbor whose key is tabu is admissible only if its cost is strictly
//     below the best-so-far cost (aspiration).
//  3. The cheapest admissible neighbor wins; ties go to the first one seen.
//  4. If nothing is admissible, the cheapest tabu neighbor is taken.
//  5. The state being left is added to the tabu list.
func SearchKeyed[S any, K comparable](
	initial S,
	key KeyFunc[S, K],
	neighbors NeighborFunc[S],
	cost CostFunc[S],
	maxIterations int,
	opts ...Option,
) (Result[S], error) {
	var res Result[S]
	switch {
	case neighbors == nil:
		return res, ErrNilNeighborFunc
	case cost == nil:
		return res, ErrNilCostFunc
	case key == nil:
		return res, ErrNilKeyFunc
	case maxIterations < 0:
		return res, fmt.Errorf("%w (%d)", ErrNegativeIterations, maxIterations)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return res, err
	}
	tabuList, err := NewList[K](o.TabuCapacity)
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrOptionViolation, err)
	}

	current := initial
	currentCost := cost(initial)
	res = Result[S]{
		Best:        initial,
		Cost:        currentCost,
		Evaluations: 1,
		Stop:        StopMaxIterations,
	}
	if o.HasStoppingCost && res.Cost <= o.StoppingCost {
		res.Stop = StopStoppingCost
		return res, nil
	}

	for iter := 1; iter <= maxIterations; iter++ {
		var (
			pick     candidate[S] // best admissible neighbor
			fallback candidate[S] // best tabu neighbor
			seen     int
			tabuSeen int
		)
		seq := neighbors(current)
		if seq == nil {
			res.Stop = StopDeadEnd
			return res, nil
		}
		for nb := range seq {
			seen++
			c := cost(nb)
			res.Evaluations++
			if !tabuList.Contains(key(nb)) {
				pick.offer(nb, c, false)
				continue
			}
			tabuSeen++
			if c < res.Cost {
				pick.offer(nb, c, true)
				continue
			}
			fallback.offer(nb, c, true)
		}

		if seen == 0 {
			res.Stop = StopDeadEnd
			return res, nil
		}
		if !pick.ok {
			pick = fallback
		}

		tabuList.Add(key(current))
		current, currentCost = pick.state, pick.cost
		res.Iterations = iter

		improved := currentCost < res.Cost
		if improved {
			res.Best, res.Cost = current, currentCost
		}
		o.OnStep(Step{
			Iteration:   iter,
			CurrentCost: currentCost,
			BestCost:    res.Cost,
			Neighbors:   seen,
			Tabu:        tabuSeen,
			Aspirated:   pick.tabu,
			Improved:    improved,
		})

		if o.HasStoppingCost && res.Cost <= o.StoppingCost {
			res.Stop = StopStoppingCost
			return res, nil
		}
	}

	return res, nil
}
