// Package kmedoids implements k-medoids clustering with the Partitioning
// Around Medoids (PAM) algorithm.
//
// PAM partitions n points into k clusters, each represented by one of the
// original data points (a medoid), minimizing the total distance from every
// point to its assigned medoid. It builds the full pairwise distance matrix
// once, then runs a best-improvement local search that repeatedly tries
// swapping each medoid for a non-medoid candidate, keeping strictly
// improving swaps until a full sweep changes nothing.
//
// Basic usage:
//
//	cfg := kmedoids.DefaultConfig()
//	cfg.Seed = 42
//	result, err := kmedoids.Cluster(data, 3, cfg)
//	// result.Medoids are the k chosen point indices (sorted ascending)
//	// result.Assignments[i] is the medoid index point i belongs to
//	// result.Labels[i] is the 0-indexed cluster ID of point i
//	// result.Cost is the total distance from points to assigned medoids
//
// For precomputed distance matrices:
//
//	result, err := kmedoids.ClusterPrecomputed(distMatrix, n, k, cfg)
//
// # Determinism and parallelism
//
// A run is fully deterministic for a fixed Seed (or fixed InitialMedoids).
// The distance matrix build and the candidate evaluation fan out across
// Config.Workers goroutines, but swap adoption is always a sequential
// reduction, so parallelism changes wall-clock time only, never the result.
package kmedoids
