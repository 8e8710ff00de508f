package domain

// Represents a waste container collected by a single vehicle.
// Containers are the items that get grouped into collection clusters.
type Container struct {
	ContainerID int64
	Name        string
	Lat         float64
	Lon         float64
	VehicleID   int64
}

// Return the container location.
func (c *Container) Coordinates() Coordinates {
	return Coordinates{Lat: c.Lat, Lon: c.Lon}
}
