// Package linkage implements agglomerative single-linkage hierarchical
// clustering over Euclidean distance.
package linkage

import (
	"context"
	"errors"
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrInvalidTarget = errors.New("target cluster count must be at least 1")
	ErrNoVectors     = errors.New("no vectors to cluster")
)

// Level is one partition in the merge sequence. The first level holds every
// vector index as a singleton; each later level is obtained from the
// previous one by merging exactly two clusters at Distance.
type Level struct {
	Distance float64
	Clusters [][]int
}

// Levels runs the merge sequence from all singletons down to target
// clusters and returns every intermediate partition, ordered by decreasing
// cluster count. A target of len(vectors) or more short-circuits to the
// all-singleton level alone.
//
// Cluster-to-cluster distance is single linkage: the minimum Euclidean
// distance over any member pair. When several cluster pairs tie at the
// minimum, the pair with the lexicographically smallest (i, j) indices
// merges, so the sequence is reproducible. Single linkage makes the merge
// distances non-decreasing from one level to the next.
//
// Every merge rescans all cluster pairs against a precomputed vector
// distance matrix, O(n²) per merge and O(n³) overall. The explicit scan is
// the point: the sequence stays auditable, and the cost is acceptable up to
// a few thousand vectors.
func Levels(ctx context.Context, vectors [][]float64, target int) ([]Level, error) {
	if target < 1 {
		return nil, ErrInvalidTarget
	}
	n := len(vectors)
	if n == 0 {
		return nil, ErrNoVectors
	}

	clusters := make([][]int, n)
	for i := range clusters {
		clusters[i] = []int{i}
	}
	levels := []Level{{Distance: 0, Clusters: copyClusters(clusters)}}
	if target >= n {
		return levels, nil
	}

	dist := distanceMatrix(vectors)
	for len(clusters) > target {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		bi, bj := -1, -1
		best := math.Inf(1)
		for i := 0; i < len(clusters); i++ {
			for j := i + 1; j < len(clusters); j++ {
				// Strict < keeps the first minimum found, which is the
				// lowest (i, j) pair in this scan order.
				if d := clusterDistance(dist, clusters[i], clusters[j]); d < best {
					best, bi, bj = d, i, j
				}
			}
		}
		clusters[bi] = append(clusters[bi], clusters[bj]...)
		clusters = append(clusters[:bj], clusters[bj+1:]...)
		levels = append(levels, Level{Distance: best, Clusters: copyClusters(clusters)})
	}
	return levels, nil
}

// clusterDistance is the single-linkage distance: the minimum vector
// distance across the two member sets.
func clusterDistance(dist *mat.SymDense, a, b []int) float64 {
	best := math.Inf(1)
	for _, i := range a {
		for _, j := range b {
			if d := dist.At(i, j); d < best {
				best = d
			}
		}
	}
	return best
}

// distanceMatrix fills the symmetric vector-to-vector Euclidean distance
// matrix. Rows are striped across workers; each worker writes a disjoint
// cell set, so the join is the only synchronization needed and the result
// is identical to the sequential fill.
func distanceMatrix(vectors [][]float64) *mat.SymDense {
	n := len(vectors)
	dist := mat.NewSymDense(n, nil)
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := w; i < n; i += workers {
				for j := i + 1; j < n; j++ {
					dist.SetSym(i, j, floats.Distance(vectors[i], vectors[j], 2))
				}
			}
		}(w)
	}
	wg.Wait()
	return dist
}

func copyClusters(clusters [][]int) [][]int {
	out := make([][]int, len(clusters))
	for i, c := range clusters {
		out[i] = append([]int(nil), c...)
	}
	return out
}
