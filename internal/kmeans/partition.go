// Package kmeans partitions geo-located items into k spatial groups.
//
// Coordinates are z-score normalized per dimension, seeded deterministically
// and refined with Lloyd's algorithm. Item identity is carried by position,
// so items sharing coordinates are still returned exactly once. Every call
// works on its own slices; the package holds no shared state.
package kmeans

import "fmt"

// Result is the partition of a batch of items.
type Result[T any] struct {
	Groups     [][]T
	Membership []int
	State      State
	Iterations int
}

// Partition splits items into k groups using a generator seeded with seed.
// The same items, k and seed always produce the same result.
func Partition[T any](items []T, locate func(T) Point, k int, seed int32) (Result[T], error) {
	return PartitionWith(items, locate, k, NewSource(seed))
}

// PartitionWith is Partition with a caller-supplied random source.
func PartitionWith[T any](items []T, locate func(T) Point, k int, rng Source) (Result[T], error) {
	if k < 1 || k > len(items) {
		return Result[T]{}, fmt.Errorf("%w: k=%d items=%d", ErrInvalidClusterCount, k, len(items))
	}

	points := make([]Point, len(items))
	for i, item := range items {
		points[i] = locate(item)
	}

	data, err := Normalize(points)
	if err != nil {
		return Result[T]{}, err
	}

	out := Run(data, k, rng)

	return Result[T]{
		Groups:     Assemble(items, out.Membership, k),
		Membership: out.Membership,
		State:      out.State,
		Iterations: out.Iterations,
	}, nil
}
