package kmeans

// Source is the random stream used to place points beyond the first k.
// *rand.Rand from math/rand/v2 satisfies it as well as NewSource.
type Source interface {
	IntN(n int) int
}

// InitialMembership seeds a membership array of length n.
//
// Points 0..k-1 go to clusters 0..k-1 so every cluster starts with a member;
// the remaining points draw a cluster from rng. The caller guarantees
// 1 <= k <= n.
func InitialMembership(n, k int, rng Source) []int {
	membership := make([]int, n)
	for i := 0; i < k; i++ {
		membership[i] = i
	}
	for i := k; i < n; i++ {
		membership[i] = rng.IntN(k)
	}
	return membership
}

func clusterCounts(membership []int, k int) []int {
	counts := make([]int, k)
	for _, c := range membership {
		counts[c]++
	}
	return counts
}
