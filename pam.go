package kmedoids

import (
	"slices"

	"golang.org/x/sync/errgroup"
)

// optimizer holds the working state of one PAM run: the read-only distance
// matrix, the current medoid set with O(1) membership, and the best cost
// seen so far. It never touches the original points.
type optimizer struct {
	dist     []float64 // n×n row-major, read-only
	n        int
	medoids  []int
	isMedoid []bool
	cost     float64
	workers  int
}

// newOptimizer starts from the given initial medoid set. The initial cost
// is the sum over all points of the minimum distance to any initial medoid.
func newOptimizer(dist []float64, n int, initial []int, workers int) *optimizer {
	o := &optimizer{
		dist:     dist,
		n:        n,
		medoids:  slices.Clone(initial),
		isMedoid: make([]bool, n),
		workers:  workers,
	}
	for _, m := range o.medoids {
		o.isMedoid[m] = true
	}
	o.cost = o.setCost(o.medoids)
	return o
}

// run sweeps until a full pass over the medoids adopts no swap, or until
// maxIterations sweeps have run (0 means no bound). Reports the number of
// sweeps performed and whether the medoid set stabilized.
//
// Termination without a bound is guaranteed: every adopted swap strictly
// decreases the cost, the number of distinct k-subsets is finite, and a
// sweep with no adopted swap exits the loop.
func (o *optimizer) run(maxIterations int) (iterations int, converged bool) {
	for {
		swapped := o.sweep()
		iterations++
		if !swapped {
			return iterations, true
		}
		if maxIterations > 0 && iterations >= maxIterations {
			return iterations, false
		}
	}
}

// sweep runs one full pass: for each medoid present at the start of the
// pass, scan every non-medoid candidate as a replacement and apply the
// winning swap (a no-op when no candidate strictly improves the cost).
// Reports whether any swap was adopted.
//
// A swap adopted earlier in the pass is visible to later medoids in the
// same pass, both in the candidate exclusion and in the trial sets. The
// snapshot's medoids all survive until their own turn: a swap only ever
// removes the medoid under scan and adds a non-member.
func (o *optimizer) sweep() bool {
	snapshot := slices.Clone(o.medoids)
	swapped := false
	for _, m := range snapshot {
		pos := slices.Index(o.medoids, m)
		best := o.bestReplacement(pos, m)
		if best != m {
			o.medoids[pos] = best
			o.isMedoid[m] = false
			o.isMedoid[best] = true
			swapped = true
		}
	}
	return swapped
}

// bestReplacement scans the candidates for the medoid at position pos in
// ascending index order and returns the chosen replacement (m itself when
// nothing improves). o.cost is updated to match the choice.
//
// The running best cost carries across the whole run and a candidate is
// adopted only on strict improvement, so on equal-cost candidates the one
// adopted first stays. This matches an incremental keep-if-strictly-better
// scan, not a global argmin with tie-breaking.
func (o *optimizer) bestReplacement(pos, m int) int {
	costs := o.trialCosts(pos)
	best := m
	for c := 0; c < o.n; c++ {
		if o.isMedoid[c] {
			continue
		}
		if costs[c] < o.cost {
			o.cost = costs[c]
			best = c
		}
	}
	return best
}

// trialCosts computes, for every non-medoid candidate c, the total cost of
// the current medoid set with position pos replaced by c. Entries for
// current medoids are left at zero and never read. Candidates are
// independent, so they are evaluated on a bounded worker pool; adoption
// stays sequential in bestReplacement, which keeps the result identical to
// a fully sequential scan.
func (o *optimizer) trialCosts(pos int) []float64 {
	costs := make([]float64, o.n)

	if o.workers <= 1 || o.n < 2 {
		trial := slices.Clone(o.medoids)
		for c := 0; c < o.n; c++ {
			if o.isMedoid[c] {
				continue
			}
			trial[pos] = c
			costs[c] = o.setCost(trial)
		}
		return costs
	}

	var g errgroup.Group
	g.SetLimit(o.workers)

	chunk := (o.n + o.workers - 1) / o.workers
	for start := 0; start < o.n; start += chunk {
		end := min(start+chunk, o.n)
		g.Go(func() error {
			trial := slices.Clone(o.medoids)
			for c := start; c < end; c++ {
				if o.isMedoid[c] {
					continue
				}
				trial[pos] = c
				costs[c] = o.setCost(trial)
			}
			return nil
		})
	}

	_ = g.Wait()
	return costs
}

// setCost is the total cost of an arbitrary medoid set: for every point,
// the minimum distance to any of the medoids, summed. Pure lookup into the
// distance matrix; raw point distances are never recomputed.
func (o *optimizer) setCost(medoids []int) float64 {
	var total float64
	for i := 0; i < o.n; i++ {
		row := o.dist[i*o.n : (i+1)*o.n]
		best := row[medoids[0]]
		for _, m := range medoids[1:] {
			if d := row[m]; d < best {
				best = d
			}
		}
		total += best
	}
	return total
}

// medoidSet returns the current medoids as a sorted copy.
func (o *optimizer) medoidSet() []int {
	m := slices.Clone(o.medoids)
	slices.Sort(m)
	return m
}
