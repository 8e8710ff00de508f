package kmeans

import "gonum.org/v1/gonum/floats"

// EstimateCentroids returns the mean of each cluster's rows.
// It reports false, and computes nothing, when any of the k clusters is empty.
func EstimateCentroids(data [][]float64, membership []int, k int) ([][]float64, bool) {
	counts := clusterCounts(membership, k)
	for _, n := range counts {
		if n == 0 {
			return nil, false
		}
	}

	centroids := make([][]float64, k)
	for c := range centroids {
		centroids[c] = make([]float64, len(data[0]))
	}
	for i, row := range data {
		floats.Add(centroids[membership[i]], row)
	}
	for c, centroid := range centroids {
		for j := range centroid {
			centroid[j] /= float64(counts[c])
		}
	}
	return centroids, true
}
