package kmeans

import (
	"slices"

	"gonum.org/v1/gonum/floats"
)

// RefineMembership moves every row to its nearest centroid.
//
// Ties go to the lowest cluster index. The input slice is never modified: a
// new slice is returned when at least one row moved and every cluster is
// still populated. Otherwise the input is returned with changed == false,
// so a move that would empty a cluster counts as no change.
func RefineMembership(data, centroids [][]float64, membership []int) (_ []int, changed bool) {
	next := slices.Clone(membership)
	distances := make([]float64, len(centroids))

	for i, row := range data {
		for c, centroid := range centroids {
			distances[c] = floats.Distance(row, centroid, 2)
		}
		if nearest := floats.MinIdx(distances); nearest != next[i] {
			next[i] = nearest
			changed = true
		}
	}

	if !changed {
		return membership, false
	}
	for _, n := range clusterCounts(next, len(centroids)) {
		if n == 0 {
			return membership, false
		}
	}
	return next, true
}
