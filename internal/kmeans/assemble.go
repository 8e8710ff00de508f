package kmeans

// Assemble groups items by membership. Group i holds, in input order, every
// item whose membership is i. items and membership are index-aligned.
func Assemble[T any](items []T, membership []int, k int) [][]T {
	groups := make([][]T, k)
	for i, item := range items {
		c := membership[i]
		groups[c] = append(groups[c], item)
	}
	return groups
}
