// Package lvsearch is a small toolbox for local search: a generic tabu
// search engine, a set-diameter helper and partition clustering built on
// top of both.
//
// 🚀 What is lvsearch?
//
//	A dependency-light library plus a CLI that brings together:
//		• Tabu search: minimize any cost over any state space you can enumerate
//		• Diameter: the largest pairwise distance inside a collection
//		• Clustering: split items into k groups with the narrowest widest group
//
// ✨ Why choose lvsearch?
//
//   - Generic – states are plain Go values, neighbors are iter.Seq
//   - Deterministic – same inputs, same result, no hidden randomness
//   - Observable – per-iteration hooks (WithOnStep) for logging or metrics
//
// Packages:
//
//	tabu/         Search, SearchKeyed, the bounded FIFO tabu List, options
//	diameter/     Diameter over a collection with a caller-supplied metric
//	cluster/      Partition, Cluster, ClusterResult, MaxDiameter
//	cmd/lvsearch  command line: cluster, sweep, grid
//
// Quick example:
//
//	groups, _ := cluster.Cluster([]float64{1, 2, 3, 10, 11, 12},
//		cluster.MaxDiameter(diameter.AbsDiff[float64]), 2, 100)
//	// groups == [[10 11 12] [1 2 3]]
//
//	go install github.com/katalvlaran/lvsearch/cmd/lvsearch@latest
package lvsearch
