// Package cluster partitions items into k groups by tabu search.
//
// A clustering is a Partition: every item assigned to exactly one of k
// groups, some of which may be empty. The search starts from the seed that
// puts every item in group 0 and moves one item to another group per step.
// The caller scores whole partitions with a PartitionCost, lower is better;
// MaxDiameter builds the common "smallest largest group diameter" objective.
//
// ⚙️ Usage:
//
//	items := []float64{1, 2, 3, 10, 11, 12}
//	cost := cluster.MaxDiameter(diameter.AbsDiff[float64])
//	groups, err := cluster.Cluster(items, cost, 2, 100)
//	// groups == [[10 11 12] [1 2 3]]
//
// Every run is a single tabu.SearchKeyed call; tabu options such as
// tabu.WithStoppingCost and tabu.WithTabuCapacity pass straight through.
//
// Complexity per iteration: n·(k−1) neighbors, each costing one PartitionCost
// call on freshly built groups (O(n) to build).
package cluster
