package repositories

import (
	"container-cluster-service/internal/domain"
	"database/sql"
	"fmt"
)

func scanContainers(rows *sql.Rows) ([]*domain.Container, error) {
	containers := make([]*domain.Container, 0, 64)
	for rows.Next() {
		c := &domain.Container{}
		if err := rows.Scan(&c.ContainerID, &c.Name, &c.Lat, &c.Lon, &c.VehicleID); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		containers = append(containers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration: %w", err)
	}

	return containers, nil
}
