package ports

import (
	"container-cluster-service/internal/domain"
	"context"
)

// Port: a boundary for retrieving Container entities from a data source.
type ContainerRepository interface {
	// Retrieve every stored container ordered by id.
	ListContainers(ctx context.Context) ([]*domain.Container, error)
	// Retrieve the containers owned by one vehicle ordered by id.
	ListContainersByVehicle(ctx context.Context, vehicleID int64) ([]*domain.Container, error)
}
