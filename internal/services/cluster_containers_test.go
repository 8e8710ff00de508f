package services

import (
	"container-cluster-service/internal/adapters/cache"
	"container-cluster-service/internal/domain"
	"container-cluster-service/internal/kmeans"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	containers []*domain.Container
	err        error
	calls      int
}

func (f *fakeRepo) ListContainers(ctx context.Context) ([]*domain.Container, error) {
	return f.containers, f.err
}

func (f *fakeRepo) ListContainersByVehicle(ctx context.Context, vehicleID int64) ([]*domain.Container, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Container
	for _, c := range f.containers {
		if c.VehicleID == vehicleID {
			out = append(out, c)
		}
	}
	return out, nil
}

func vehicleContainers() []*domain.Container {
	return []*domain.Container{
		{ContainerID: 1, Name: "a", Lat: 40.981, Lon: 29.026, VehicleID: 1},
		{ContainerID: 2, Name: "b", Lat: 41.043, Lon: 29.007, VehicleID: 1},
		{ContainerID: 3, Name: "c", Lat: 40.990, Lon: 29.023, VehicleID: 1},
		{ContainerID: 4, Name: "d", Lat: 41.047, Lon: 29.011, VehicleID: 1},
		{ContainerID: 5, Name: "e", Lat: 40.987, Lon: 29.036, VehicleID: 1},
		{ContainerID: 9, Name: "other", Lat: 39.9, Lon: 32.8, VehicleID: 2},
	}
}

func groupIDs(c *domain.ContainerClustering) [][]int64 {
	out := make([][]int64, len(c.Groups))
	for i, g := range c.Groups {
		for _, ct := range g {
			out[i] = append(out[i], ct.ContainerID)
		}
	}
	return out
}

func TestClusterContainersOnlyUsesVehicleContainers(t *testing.T) {
	repo := &fakeRepo{containers: vehicleContainers()}

	got, err := ClusterContainers(context.Background(), ClusterContainersRequest{VehicleID: 1, ClusterCount: 2}, repo, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(1), got.VehicleID)
	assert.Equal(t, 2, got.ClusterCount)
	assert.Len(t, got.Groups, 2)
	assert.Equal(t, 5, got.Size())
	for _, g := range got.Groups {
		assert.NotEmpty(t, g)
		for _, c := range g {
			assert.Equal(t, int64(1), c.VehicleID)
		}
	}
}

func TestClusterContainersOneCluster(t *testing.T) {
	repo := &fakeRepo{containers: vehicleContainers()}

	got, err := ClusterContainers(context.Background(), ClusterContainersRequest{VehicleID: 1, ClusterCount: 1}, repo, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{1, 2, 3, 4, 5}}, groupIDs(got))
	assert.Equal(t, "converged", got.State)
}

func TestClusterContainersInputErrors(t *testing.T) {
	repo := &fakeRepo{containers: vehicleContainers()}
	ctx := context.Background()

	_, err := ClusterContainers(ctx, ClusterContainersRequest{VehicleID: 1, ClusterCount: 0}, repo, nil)
	assert.ErrorIs(t, err, kmeans.ErrInvalidClusterCount)
	assert.True(t, IsInputError(err))
	assert.Zero(t, repo.calls, "invalid k must be rejected before loading")

	_, err = ClusterContainers(ctx, ClusterContainersRequest{VehicleID: 1, ClusterCount: 6}, repo, nil)
	assert.ErrorIs(t, err, kmeans.ErrInvalidClusterCount)

	// Unknown vehicle: no containers, so any k is too large.
	_, err = ClusterContainers(ctx, ClusterContainersRequest{VehicleID: 42, ClusterCount: 1}, repo, nil)
	assert.ErrorIs(t, err, kmeans.ErrInvalidClusterCount)

	// A single container has no spread in either dimension.
	_, err = ClusterContainers(ctx, ClusterContainersRequest{VehicleID: 2, ClusterCount: 1}, repo, nil)
	assert.ErrorIs(t, err, kmeans.ErrDegenerateColumn)
	assert.True(t, IsInputError(err))
}

func TestClusterContainersRepositoryFailure(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection refused")}

	_, err := ClusterContainers(context.Background(), ClusterContainersRequest{VehicleID: 1, ClusterCount: 2}, repo, nil)
	assert.ErrorContains(t, err, "connection refused")
	assert.False(t, IsInputError(err))
}

func TestClusterContainersUsesCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	clusterCache := cache.NewRedisClusterCache(client, time.Minute)

	repo := &fakeRepo{containers: vehicleContainers()}
	req := ClusterContainersRequest{VehicleID: 1, ClusterCount: 2, Seed: 5}
	ctx := context.Background()

	first, err := ClusterContainers(ctx, req, repo, clusterCache)
	require.NoError(t, err)
	assert.True(t, mr.Exists(ClusterCacheKey(req)))

	second, err := ClusterContainers(ctx, req, repo, clusterCache)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls, "second call must be served from cache")
	assert.Equal(t, groupIDs(first), groupIDs(second))

	// A broken cache degrades to recomputation.
	mr.Close()
	third, err := ClusterContainers(ctx, req, repo, clusterCache)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
	assert.Equal(t, groupIDs(first), groupIDs(third))
}

func TestClusterCacheKey(t *testing.T) {
	assert.Equal(t, "clusters:v1:7:3:11", ClusterCacheKey(ClusterContainersRequest{VehicleID: 7, ClusterCount: 3, Seed: 11}))
}
