package cluster

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/diameter"
	"github.com/katalvlaran/lvsearch/tabu"
)

// Sentinel errors for clustering input.
var (
	// ErrInvalidK is returned when k < 1.
	ErrInvalidK = errors.New("cluster: group count k must be >= 1")

	// ErrNilCost is returned when the partition cost function is nil.
	ErrNilCost = errors.New("cluster: partition cost function is nil")

	// ErrItemOutOfRange is returned by Partition methods for a bad item index.
	ErrItemOutOfRange = errors.New("cluster: item index out of range")

	// ErrGroupOutOfRange is returned by Partition methods for a bad group index.
	ErrGroupOutOfRange = errors.New("cluster: group index out of range")
)

// PartitionCost scores a whole clustering. groups always has k entries.
type PartitionCost[T any] func(groups [][]T) float64

// Result holds the best clustering of a run together with search statistics.
type Result[T any] struct {
	Groups      [][]T
	Partition   Partition
	Cost        float64
	Iterations  int
	Evaluations int
	Stop        tabu.StopReason
}

// Cluster splits items into k groups minimizing cost and returns the groups
// of the best partition found within maxIterations moves.
// See ClusterResult for the search statistics.
func Cluster[T any](items []T, cost PartitionCost[T], k, maxIterations int, opts ...tabu.Option) ([][]T, error) {
	res, err := ClusterResult(items, cost, k, maxIterations, opts...)
	if err != nil {
		return nil, err
	}

	return res.Groups, nil
}

// ClusterResult runs the tabu search behind Cluster and reports the full outcome.
//
// Errors: ErrInvalidK, ErrNilCost, or any tabu configuration error
// (tabu.ErrNegativeIterations, tabu.ErrOptionViolation). All are returned
// before the search starts.
func ClusterResult[T any](items []T, cost PartitionCost[T], k, maxIterations int, opts ...tabu.Option) (Result[T], error) {
	if cost == nil {
		return Result[T]{}, ErrNilCost
	}
	seed, err := Seed(len(items), k)
	if err != nil {
		return Result[T]{}, err
	}

	res, err := tabu.SearchKeyed(
		seed,
		Partition.Key,
		Partition.Neighbors,
		func(p Partition) float64 { return cost(Groups(p, items)) },
		maxIterations,
		opts...,
	)
	if err != nil {
		return Result[T]{}, fmt.Errorf("cluster: %w", err)
	}

	return Result[T]{
		Groups:      Groups(res.Best, items),
		Partition:   res.Best,
		Cost:        res.Cost,
		Iterations:  res.Iterations,
		Evaluations: res.Evaluations,
		Stop:        res.Stop,
	}, nil
}

// MaxDiameter scores a partition by its largest group diameter under dist.
// Groups with fewer than two items have no diameter and are ignored; a
// partition where no group has one scores −Inf.
func MaxDiameter[T any](dist func(a, b T) float64) PartitionCost[T] {
	return func(groups [][]T) float64 {
		worst := math.Inf(-1)
		for _, g := range groups {
			if d, ok := diameter.Diameter(g, dist); ok && d > worst {
				worst = d
			}
		}

		return worst
	}
}
