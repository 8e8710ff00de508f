package domain

// Represents one vehicle's containers split into spatial groups.
// Groups are ordered by cluster index and every container of the vehicle
// appears in exactly one group. State and Iterations describe how the
// clustering run ended ("converged", "stalled" or "capped").
type ContainerClustering struct {
	VehicleID    int64
	ClusterCount int
	Seed         int32
	State        string
	Iterations   int
	Groups       [][]*Container
}

// Return the number of containers across all groups.
func (c *ContainerClustering) Size() int {
	n := 0
	for _, g := range c.Groups {
		n += len(g)
	}
	return n
}
