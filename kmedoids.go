package kmedoids

import (
	"fmt"
	"math/rand/v2"
	"runtime"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// initStream is the fixed second PCG state word; the caller-visible Seed
// is the first, so equal seeds give equal initial medoids.
const initStream = 0x9e3779b97f4a7c15

// Config controls k-medoids clustering behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Metric is the distance function used to build the pairwise distance
	// matrix. Built-in: EuclideanMetric, ManhattanMetric, CosineMetric,
	// ChebyshevMetric, MinkowskiMetric. Use DistanceFunc to wrap a custom
	// function. Default: EuclideanMetric.
	Metric DistanceMetric

	// MaxIterations bounds the number of full swap sweeps. When the bound
	// is reached before the medoid set stabilizes, the run returns its
	// current state with Result.Converged == false instead of looping
	// further. 0 means no bound. Default: 0.
	MaxIterations int

	// Workers controls the number of goroutines for the distance matrix
	// build and candidate evaluation. Parallelism never changes the
	// result. 0 means use runtime.NumCPU(). Default: 0 (auto).
	Workers int

	// Seed seeds the PRNG that draws the initial medoids. Two runs with
	// the same Seed, data, and config produce identical results. 0 means
	// draw a fresh random seed. Default: 0.
	Seed uint64

	// InitialMedoids, when non-nil, fixes the initial medoid set instead
	// of drawing it from Seed. Must hold exactly k distinct indices into
	// the data. Default: nil.
	InitialMedoids []int
}

// Result contains the output of a k-medoids run.
type Result struct {
	// Medoids is the converged medoid set: k distinct point indices,
	// sorted ascending.
	Medoids []int

	// Assignments holds, for each point, the index of its nearest medoid.
	// Values are drawn from Medoids; distance ties go to the lowest
	// medoid index.
	Assignments []int

	// Labels holds, for each point, the position of its assigned medoid
	// in Medoids (0-indexed cluster ID).
	Labels []int

	// Cost is the sum over all points of the distance to their assigned
	// medoid.
	Cost float64

	// Iterations is the number of full swap sweeps performed.
	Iterations int

	// Converged reports whether the medoid set stabilized before
	// MaxIterations was reached. Always true when MaxIterations is 0.
	Converged bool
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Metric: EuclideanMetric{},
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
}

// Cluster partitions data into k clusters using Partitioning Around
// Medoids (PAM). Each element of data is a point (float64 slice); all
// points must have the same dimensionality and contain no NaN values.
// Returns an error wrapping ErrInvalidInput when the data, k, or cfg
// violates the preconditions; no clustering work happens in that case.
func Cluster(data [][]float64, k int, cfg Config) (*Result, error) {
	n, dims, err := validateData(data)
	if err != nil {
		return nil, err
	}

	flat := make([]float64, n*dims)
	for i, row := range data {
		copy(flat[i*dims:], row)
	}

	return clusterFlat(flat, n, dims, k, cfg)
}

// ClusterMatrix is Cluster for gonum matrices: rows are points, columns
// are features.
func ClusterMatrix(data mat.Matrix, k int, cfg Config) (*Result, error) {
	n, dims := data.Dims()
	if n == 0 || dims == 0 {
		return nil, fmt.Errorf("%w: data matrix is empty (%d×%d)", ErrInvalidInput, n, dims)
	}

	flat := make([]float64, n*dims)
	for i := 0; i < n; i++ {
		for j := 0; j < dims; j++ {
			flat[i*dims+j] = data.At(i, j)
		}
	}
	if floats.HasNaN(flat) {
		return nil, fmt.Errorf("%w: data matrix contains NaN values (handle missing data before clustering)", ErrInvalidInput)
	}

	return clusterFlat(flat, n, dims, k, cfg)
}

// ClusterPrecomputed runs PAM on a precomputed distance matrix. distMatrix
// is a flat []float64 of length n*n in row-major order, where
// distMatrix[i*n+j] is the distance between points i and j. The
// Config.Metric field is ignored since distances are already computed.
func ClusterPrecomputed(distMatrix []float64, n, k int, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if len(distMatrix) != n*n {
		return nil, fmt.Errorf("%w: distMatrix length %d does not match n*n = %d (n=%d)", ErrInvalidInput, len(distMatrix), n*n, n)
	}
	if floats.HasNaN(distMatrix) {
		return nil, fmt.Errorf("%w: distMatrix contains NaN values", ErrInvalidInput)
	}
	if err := validateConfig(&cfg, n, k); err != nil {
		return nil, err
	}

	return clusterFromDistMatrix(distMatrix, n, k, cfg)
}

// clusterFlat validates the config, builds the pairwise distance matrix
// once, and runs the optimization from it.
func clusterFlat(flat []float64, n, dims, k int, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg, n, k); err != nil {
		return nil, err
	}

	dist := PairwiseDistancesParallel(flat, n, dims, cfg.Metric, cfg.Workers)
	return clusterFromDistMatrix(dist, n, k, cfg)
}

// clusterFromDistMatrix draws the initial medoids, runs the swap optimizer
// to convergence, and finalizes assignments from the converged set.
func clusterFromDistMatrix(dist []float64, n, k int, cfg Config) (*Result, error) {
	var initial []int
	if cfg.InitialMedoids != nil {
		initial = slices.Clone(cfg.InitialMedoids)
	} else {
		rng := rand.New(rand.NewPCG(cfg.Seed, initStream))
		initial = rng.Perm(n)[:k]
	}

	opt := newOptimizer(dist, n, initial, cfg.Workers)
	iterations, converged := opt.run(cfg.MaxIterations)

	medoids := opt.medoidSet()
	assignments, labels, cost := Assign(dist, n, medoids)

	return &Result{
		Medoids:     medoids,
		Assignments: assignments,
		Labels:      labels,
		Cost:        cost,
		Iterations:  iterations,
		Converged:   converged,
	}, nil
}
