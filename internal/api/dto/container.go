package dto

import "container-cluster-service/internal/domain"

type ContainerResponse struct {
	ContainerID int64   `json:"container_id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	VehicleID   int64   `json:"vehicle_id"`
}

type ListContainersResponse struct {
	Containers []ContainerResponse `json:"containers"`
}

func NewContainerResponse(c *domain.Container) ContainerResponse {
	return ContainerResponse{
		ContainerID: c.ContainerID,
		Name:        c.Name,
		Latitude:    c.Lat,
		Longitude:   c.Lon,
		VehicleID:   c.VehicleID,
	}
}
