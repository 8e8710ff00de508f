package dto

import "container-cluster-service/internal/domain"

type ClusterResponse struct {
	VehicleID    int64                 `json:"vehicle_id"`
	ClusterCount int                   `json:"cluster_count"`
	Seed         int32                 `json:"seed"`
	State        string                `json:"state"`
	Iterations   int                   `json:"iterations"`
	Clusters     [][]ContainerResponse `json:"clusters"`
}

func NewClusterResponse(c *domain.ContainerClustering) ClusterResponse {
	clusters := make([][]ContainerResponse, 0, len(c.Groups))
	for _, g := range c.Groups {
		group := make([]ContainerResponse, 0, len(g))
		for _, ct := range g {
			group = append(group, NewContainerResponse(ct))
		}
		clusters = append(clusters, group)
	}

	return ClusterResponse{
		VehicleID:    c.VehicleID,
		ClusterCount: c.ClusterCount,
		Seed:         c.Seed,
		State:        c.State,
		Iterations:   c.Iterations,
		Clusters:     clusters,
	}
}
