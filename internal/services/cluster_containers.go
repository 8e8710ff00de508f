package services

import (
	"container-cluster-service/internal/domain"
	"container-cluster-service/internal/kmeans"
	"container-cluster-service/internal/platform/obs"
	"container-cluster-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"log"
)

type ClusterContainersRequest struct {
	VehicleID    int64
	ClusterCount int
	Seed         int32
}

// Cache key for a request. Results are deterministic per (vehicle, k, seed).
func ClusterCacheKey(req ClusterContainersRequest) string {
	return fmt.Sprintf("clusters:v1:%d:%d:%d", req.VehicleID, req.ClusterCount, req.Seed)
}

// ClusterContainers groups one vehicle's containers into ClusterCount
// spatial clusters using k-means over normalized coordinates.
//
// Owner filtering is done by the repository. Stalled or capped runs are
// still returned as results; only invalid input and infrastructure failures
// produce errors. The cache is optional and its failures only cost a
// recomputation.
func ClusterContainers(
	ctx context.Context,
	req ClusterContainersRequest,
	repo ports.ContainerRepository,
	cache ports.ClusterCache,
) (_ *domain.ContainerClustering, err error) {
	defer obs.Time(ctx, "services.ClusterContainers")(&err)

	if req.ClusterCount < 1 {
		return nil, fmt.Errorf("cluster containers: vehicle_id=%d k=%d: %w", req.VehicleID, req.ClusterCount, kmeans.ErrInvalidClusterCount)
	}

	key := ClusterCacheKey(req)
	if cache != nil {
		cached, ok, err := cache.Get(ctx, key)
		if err != nil {
			log.Printf("req_id=%s cluster cache lookup failed key=%s err=%v", obs.RequestID(ctx), key, err)
		} else if ok {
			return cached, nil
		}
	}

	containers, err := repo.ListContainersByVehicle(ctx, req.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("cluster containers: list containers: %w", err)
	}

	res, err := kmeans.Partition(containers, locateContainer, req.ClusterCount, req.Seed)
	if err != nil {
		return nil, fmt.Errorf("cluster containers: vehicle_id=%d: %w", req.VehicleID, err)
	}

	// Best effort: a stalled or capped run is accepted but worth seeing in logs.
	if res.State != kmeans.Converged {
		log.Printf(
			"req_id=%s cluster containers: vehicle_id=%d k=%d state=%s iterations=%d",
			obs.RequestID(ctx), req.VehicleID, req.ClusterCount, res.State, res.Iterations,
		)
	}

	out := &domain.ContainerClustering{
		VehicleID:    req.VehicleID,
		ClusterCount: req.ClusterCount,
		Seed:         req.Seed,
		State:        res.State.String(),
		Iterations:   res.Iterations,
		Groups:       res.Groups,
	}

	if cache != nil {
		if err := cache.Put(ctx, key, out); err != nil {
			log.Printf("req_id=%s cluster cache store failed key=%s err=%v", obs.RequestID(ctx), key, err)
		}
	}

	return out, nil
}

// IsInputError reports whether err was caused by the request itself rather
// than by the infrastructure.
func IsInputError(err error) bool {
	return errors.Is(err, kmeans.ErrInvalidClusterCount) ||
		errors.Is(err, kmeans.ErrDegenerateColumn) ||
		errors.Is(err, kmeans.ErrNonFiniteCoordinate)
}

func locateContainer(c *domain.Container) kmeans.Point {
	loc := c.Coordinates()
	return kmeans.Point{Lat: loc.Lat, Lon: loc.Lon}
}
