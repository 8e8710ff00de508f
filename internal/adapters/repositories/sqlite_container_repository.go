package repositories

import (
	"container-cluster-service/internal/domain"
	"container-cluster-service/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLite-backed implementation of the ContainerRepository port.
type SqliteContainerRepository struct{ DB *sql.DB }

func NewSqliteContainerRepository(db *sql.DB) *SqliteContainerRepository {
	return &SqliteContainerRepository{DB: db}
}

// Return all containers stored in the database.
func (s *SqliteContainerRepository) ListContainers(ctx context.Context) (_ []*domain.Container, err error) {
	defer obs.Time(ctx, "containers.sqlite.ListContainers")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite container repository: DB is nil")
	}

	query := `
	SELECT
		container_id,
		name,
		latitude,
		longitude,
		vehicle_id
	FROM containers
	ORDER BY container_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list containers: query containers table: %w", err)
	}
	defer rows.Close()

	containers, err := scanContainers(rows)
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}
	return containers, nil
}

// Return the containers that belong to vehicleID.
func (s *SqliteContainerRepository) ListContainersByVehicle(ctx context.Context, vehicleID int64) (_ []*domain.Container, err error) {
	defer obs.Time(ctx, "containers.sqlite.ListContainersByVehicle")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite container repository: DB is nil")
	}

	query := `
	SELECT
		container_id,
		name,
		latitude,
		longitude,
		vehicle_id
	FROM containers
	WHERE vehicle_id = ?
	ORDER BY container_id;
	`
	rows, err := s.DB.QueryContext(ctx, query, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("list containers by vehicle %d: query containers table: %w", vehicleID, err)
	}
	defer rows.Close()

	containers, err := scanContainers(rows)
	if err != nil {
		return nil, fmt.Errorf("list containers by vehicle %d: %w", vehicleID, err)
	}
	return containers, nil
}
