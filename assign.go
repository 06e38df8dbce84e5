package kmedoids

import "gonum.org/v1/gonum/floats"

// Assign gives every point its nearest medoid from the converged set and
// computes the total cost. distMatrix is flat n×n row-major; medoids must
// be non-empty with valid indices.
//
// assignments[i] is the medoid index point i belongs to; labels[i] is the
// position of that medoid in medoids (the 0-indexed cluster ID). Distance
// ties go to the earliest medoid in the slice, so a sorted slice yields
// the lowest medoid index. Pure function of its inputs: calling it again
// on the same matrix and medoids returns identical results.
func Assign(distMatrix []float64, n int, medoids []int) (assignments, labels []int, cost float64) {
	assignments = make([]int, n)
	labels = make([]int, n)
	minDists := make([]float64, n)

	for i := 0; i < n; i++ {
		row := distMatrix[i*n : (i+1)*n]
		bestLabel := 0
		best := row[medoids[0]]
		for j, m := range medoids[1:] {
			if d := row[m]; d < best {
				best = d
				bestLabel = j + 1
			}
		}
		labels[i] = bestLabel
		assignments[i] = medoids[bestLabel]
		minDists[i] = best
	}

	return assignments, labels, floats.Sum(minDists)
}
