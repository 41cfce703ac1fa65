package cluster_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/cluster"
	"github.com/katalvlaran/lvsearch/diameter"
	"github.com/katalvlaran/lvsearch/tabu"
)

// ExampleCluster separates two runs of nearby numbers.
func ExampleCluster() {
	items := []float64{1, 2, 3, 10, 11, 12}
	cost := cluster.MaxDiameter(diameter.AbsDiff[float64])

	groups, err := cluster.Cluster(items, cost, 2, 100)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(groups)
	// Output:
	// [[10 11 12] [1 2 3]]
}

// ExampleClusterResult stops as soon as the largest diameter is small enough.
func ExampleClusterResult() {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	cost := cluster.MaxDiameter(diameter.AbsDiff[int])

	res, err := cluster.ClusterResult(items, cost, 2, 100, tabu.WithStoppingCost(4))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("cost=%.0f iterations=%d stop=%s sizes=%v\n",
		res.Cost, res.Iterations, res.Stop, res.Partition.Sizes())
	// Output:
	// cost=4 iterations=5 stop=stopping-cost sizes=[5 5]
}
