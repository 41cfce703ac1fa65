package cluster_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/cluster"
	"github.com/katalvlaran/lvsearch/diameter"
	"github.com/katalvlaran/lvsearch/tabu"
)

// sortedGroups sorts each group and then the groups themselves.
func sortedGroups(groups [][]int) [][]int {
	out := make([][]int, len(groups))
	for i, g := range groups {
		out[i] = slices.Clone(g)
		slices.Sort(out[i])
	}
	slices.SortFunc(out, slices.Compare[[]int])

	return out
}

// TestCluster_DiameterSplit splits 1..10 into the two halves.
func TestCluster_DiameterSplit(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	cost := cluster.MaxDiameter(diameter.AbsDiff[int])

	groups, err := cluster.Cluster(items, cost, 2, 100)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, [][]int{{1, 2, 3, 4, 5}, {6, 7, 8, 9, 10}}, sortedGroups(groups))
}

// TestClusterResult_Stats reports how the diameter split was reached.
func TestClusterResult_Stats(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	cost := cluster.MaxDiameter(diameter.AbsDiff[int])

	res, err := cluster.ClusterResult(items, cost, 2, 100, tabu.WithStoppingCost(4))
	require.NoError(t, err)
	assert.Equal(t, 4.0, res.Cost)
	assert.Equal(t, 5, res.Iterations, "one item peeled off per step")
	assert.Equal(t, tabu.StopStoppingCost, res.Stop)
	assert.Equal(t, [][]int{{6, 7, 8, 9, 10}, {1, 2, 3, 4, 5}}, res.Groups)
	assert.Equal(t, []int{5, 5}, res.Partition.Sizes())
}

// TestCluster_SingleGroup returns all items in one group.
func TestCluster_SingleGroup(t *testing.T) {
	items := []string{"x", "y", "z"}
	calls := 0
	cost := func(groups [][]string) float64 { calls++; return 0 }

	res, err := cluster.ClusterResult(items, cost, 1, 50)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"x", "y", "z"}}, res.Groups)
	assert.Equal(t, tabu.StopDeadEnd, res.Stop)
	assert.Equal(t, 1, calls)
}

// TestCluster_MoreGroupsThanItems keeps k groups, some of them empty.
func TestCluster_MoreGroupsThanItems(t *testing.T) {
	items := []int{3, 30}
	cost := cluster.MaxDiameter(diameter.AbsDiff[int])

	groups, err := cluster.Cluster(items, cost, 4, 20, tabu.WithStoppingCost(0))
	require.NoError(t, err)
	require.Len(t, groups, 4)
	total := 0
	for _, g := range groups {
		assert.NotNil(t, g)
		assert.LessOrEqual(t, len(g), 1, "3 and 30 end up apart")
		total += len(g)
	}
	assert.Equal(t, 2, total)
}

// TestCluster_NoItems yields k empty groups.
func TestCluster_NoItems(t *testing.T) {
	groups, err := cluster.Cluster([]int{}, cluster.MaxDiameter(diameter.AbsDiff[int]), 3, 10)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{}, {}, {}}, groups)
}

// TestCluster_ZeroIterations returns the seed layout.
func TestCluster_ZeroIterations(t *testing.T) {
	items := []int{4, 8, 15}
	groups, err := cluster.Cluster(items, cluster.MaxDiameter(diameter.AbsDiff[int]), 2, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{4, 8, 15}, {}}, groups)
}

// TestCluster_InvalidInput rejects bad configuration before searching.
func TestCluster_InvalidInput(t *testing.T) {
	items := []int{1, 2, 3}
	calls := 0
	cost := func([][]int) float64 { calls++; return 0 }

	_, err := cluster.Cluster(items, cost, 0, 10)
	assert.ErrorIs(t, err, cluster.ErrInvalidK)

	_, err = cluster.Cluster[int](items, nil, 2, 10)
	assert.ErrorIs(t, err, cluster.ErrNilCost)

	_, err = cluster.Cluster(items, cost, 2, -5)
	assert.ErrorIs(t, err, tabu.ErrNegativeIterations)

	_, err = cluster.Cluster(items, cost, 2, 10, tabu.WithTabuCapacity(-1))
	assert.ErrorIs(t, err, tabu.ErrOptionViolation)

	assert.Zero(t, calls)
}

// TestCluster_CostSeesKGroups always hands the cost function exactly k groups
// covering every item once.
func TestCluster_CostSeesKGroups(t *testing.T) {
	items := []int{5, 1, 9, 7, 3}
	cost := func(groups [][]int) float64 {
		require.Len(t, groups, 3)
		var all []int
		for _, g := range groups {
			all = append(all, g...)
		}
		slices.Sort(all)
		require.Equal(t, []int{1, 3, 5, 7, 9}, all)

		return cluster.MaxDiameter(diameter.AbsDiff[int])(groups)
	}

	_, err := cluster.Cluster(items, cost, 3, 40)
	require.NoError(t, err)
}

// TestCluster_Deterministic repeats a run and expects the same grouping.
func TestCluster_Deterministic(t *testing.T) {
	items := []int{14, 2, 33, 8, 21, 5, 40, 17, 29, 11, 36, 1}
	cost := cluster.MaxDiameter(diameter.AbsDiff[int])

	first, err := cluster.Cluster(items, cost, 3, 60, tabu.WithTabuCapacity(10))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := cluster.Cluster(items, cost, 3, 60, tabu.WithTabuCapacity(10))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestMaxDiameter ignores singleton and empty groups.
func TestMaxDiameter(t *testing.T) {
	cost := cluster.MaxDiameter(diameter.AbsDiff[int])
	assert.Equal(t, 6.0, cost([][]int{{1, 7}, {100}, {}, {2, 4}}))
	assert.True(t, math.IsInf(cost([][]int{{1}, {}}), -1), "no defined diameter scores -Inf")
}

// TestCluster_SeriesByWarp groups time series by shape under a warping metric.
func TestCluster_SeriesByWarp(t *testing.T) {
	series := [][]float64{
		{0, 1, 2},
		{0, 0, 1, 2},
		{5, 6, 7},
		{5, 5, 6, 7},
	}
	res, err := cluster.ClusterResult(series, cluster.MaxDiameter(diameter.Warp(0, 0)), 2, 50,
		tabu.WithStoppingCost(0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Cost)
	assert.Equal(t, 2, res.Iterations)
	assert.Equal(t, [][][]float64{
		{{5, 6, 7}, {5, 5, 6, 7}},
		{{0, 1, 2}, {0, 0, 1, 2}},
	}, res.Groups)
}
