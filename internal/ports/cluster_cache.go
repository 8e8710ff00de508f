package ports

import (
	"container-cluster-service/internal/domain"
	"context"
)

// Contract for storing computed clusterings.
// Clustering is deterministic for a given (vehicle, cluster count, seed),
// so a hit can be returned as-is.
type ClusterCache interface {
	// Return the cached clustering and whether the key was present.
	Get(ctx context.Context, key string) (*domain.ContainerClustering, bool, error)
	// Store a clustering under key.
	Put(ctx context.Context, key string, c *domain.ContainerClustering) error
}
