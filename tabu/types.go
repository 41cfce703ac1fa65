// Package tabu defines the function types, options, results and sentinel
// errors used by the tabu search engine.
package tabu

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

// DefaultTabuCapacity is the tabu list size used when WithTabuCapacity is not given.
const DefaultTabuCapacity = 100

// Sentinel errors for search configuration. All of them are reported before
// the first iteration runs.
var (
	// ErrNilNeighborFunc is returned when the neighbor function is nil.
	ErrNilNeighborFunc = errors.New("tabu: neighbor function is nil")

	// ErrNilCostFunc is returned when the cost function is nil.
	ErrNilCostFunc = errors.New("tabu: cost function is nil")

	// ErrNilKeyFunc is returned by SearchKeyed when the key function is nil.
	ErrNilKeyFunc = errors.New("tabu: key function is nil")

	// ErrNegativeIterations is returned when maxIterations < 0.
	ErrNegativeIterations = errors.New("tabu: max iterations must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tabu: invalid option supplied")

	// ErrInvalidCapacity is returned by NewList for capacity < 1.
	ErrInvalidCapacity = errors.New("tabu: capacity must be positive")
)

// NeighborFunc produces the candidate successors of a state. The sequence is
// ranged once per iteration; order and duplicates are up to the caller.
type NeighborFunc[S any] func(state S) iter.Seq[S]

// CostFunc evaluates a state. Lower is better.
type CostFunc[S any] func(state S) float64

// KeyFunc maps a state to its identity key. Two states must be equal
// exactly when their keys are equal.
type KeyFunc[S any, K comparable] func(state S) K

// StopReason tells why a search run ended.
type StopReason int

const (
	// StopMaxIterations: the iteration budget was spent.
	StopMaxIterations StopReason = iota

	// StopStoppingCost: the best cost reached the stopping threshold.
	StopStoppingCost

	// StopDeadEnd: the current state had no neighbors.
	StopDeadEnd
)

// String implements fmt.Stringer.
func (r StopReason) String() string {
	switch r {
	case StopMaxIterations:
		return "max-iterations"
	case StopStoppingCost:
		return "stopping-cost"
	case StopDeadEnd:
		return "dead-end"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// Result holds the outcome of a search run.
//
//   - Best: lowest-cost state that was current at some point (initial state included).
//   - Cost: cost of Best.
//   - Iterations: number of state transitions performed.
//   - Evaluations: number of cost function calls.
//   - Stop: the termination condition that ended the run.
type Result[S any] struct {
	Best        S
	Cost        float64
	Iterations  int
	Evaluations int
	Stop        StopReason
}

// Step describes one completed iteration and is passed to the OnStep hook.
type Step struct {
	// Iteration is 1-based.
	Iteration int

	// CurrentCost is the cost of the state selected in this iteration.
	CurrentCost float64

	// BestCost is the best-so-far cost after this iteration.
	BestCost float64

	// Neighbors is the number of neighbors generated.
	Neighbors int

	// Tabu is how many of those neighbors were on the tabu list.
	Tabu int

	// Aspirated reports that the selected state was tabu.
	Aspirated bool

	// Improved reports that BestCost dropped in this iteration.
	Improved bool
}

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Search.
type Option func(*Options)

// Options holds the tunable parameters of a search run.
type Options struct {
	// StoppingCost ends the run once the best cost is <= it.
	// Only honored when HasStoppingCost is true.
	StoppingCost    float64
	HasStoppingCost bool

	// TabuCapacity bounds the tabu list.
	TabuCapacity int

	// OnStep is called after every completed iteration.
	OnStep func(Step)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no stopping cost, DefaultTabuCapacity
// and a no-op OnStep hook.
func DefaultOptions() Options {
	return Options{
		TabuCapacity: DefaultTabuCapacity,
		OnStep:       func(Step) {},
	}
}

// WithStoppingCost stops the search as soon as the best cost is <= c.
// NaN is rejected.
func WithStoppingCost(c float64) Option {
	return func(o *Options) {
		if math.IsNaN(c) {
			o.err = fmt.Errorf("%w: stopping cost is NaN", ErrOptionViolation)
			return
		}
		o.StoppingCost = c
		o.HasStoppingCost = true
	}
}

// WithTabuCapacity sets the tabu list capacity.
//
//	n >= 1: keep the n most recent distinct states
//	n <  1: invalid option → ErrOptionViolation
func WithTabuCapacity(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: tabu capacity must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.TabuCapacity = n
	}
}

// WithOnStep registers a per-iteration observer. A nil fn is ignored.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// buildOptions applies opts over DefaultOptions and reports the first violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
		if o.err != nil {
			return o, o.err
		}
	}

	return o, nil
}
