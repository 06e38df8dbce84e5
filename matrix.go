package kmedoids

import "golang.org/x/sync/errgroup"

// PairwiseDistances computes the full n×n distance matrix.
// data is flat row-major with n rows and dims columns.
// Returns a flat []float64 of length n×n, symmetric with a zero diagonal:
// each pair is measured once and mirrored, so the stored matrix is exactly
// symmetric regardless of metric or computation order.
func PairwiseDistances(data []float64, n, dims int, metric DistanceMetric) []float64 {
	result := make([]float64, n*n)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := metric.Distance(data[i*dims:(i+1)*dims], data[j*dims:(j+1)*dims])
			result[i*n+j] = d
			result[j*n+i] = d
		}
	}

	return result
}

// PairwiseDistancesParallel computes the full n×n distance matrix using
// multiple goroutines. numWorkers controls the degree of parallelism; if
// <= 1, it falls back to single-threaded PairwiseDistances.
//
// Each worker owns a disjoint range of source rows and computes dist(i,j)
// for all j > i in that range, so writes never overlap and the result is
// bitwise identical to PairwiseDistances.
func PairwiseDistancesParallel(data []float64, n, dims int, metric DistanceMetric, numWorkers int) []float64 {
	if numWorkers <= 1 || n <= 1 {
		return PairwiseDistances(data, n, dims, metric)
	}

	result := make([]float64, n*n)

	var g errgroup.Group
	g.SetLimit(numWorkers)

	rowsPerWorker := (n + numWorkers - 1) / numWorkers
	for start := 0; start < n; start += rowsPerWorker {
		end := min(start+rowsPerWorker, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				for j := i + 1; j < n; j++ {
					d := metric.Distance(data[i*dims:(i+1)*dims], data[j*dims:(j+1)*dims])
					result[i*n+j] = d
					result[j*n+i] = d
				}
			}
			return nil
		})
	}

	// Workers never return errors; Wait is only a barrier here.
	_ = g.Wait()
	return result
}
