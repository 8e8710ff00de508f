package repositories

import (
	"container-cluster-service/internal/domain"
	"container-cluster-service/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Postgres-backed implementation of the ContainerRepository port (pgx driver).
type PostgresContainerRepository struct{ DB *sql.DB }

func NewPostgresContainerRepository(db *sql.DB) *PostgresContainerRepository {
	return &PostgresContainerRepository{DB: db}
}

func (p *PostgresContainerRepository) ListContainers(ctx context.Context) (_ []*domain.Container, err error) {
	defer obs.Time(ctx, "containers.postgres.ListContainers")(&err)

	if p.DB == nil {
		return nil, errors.New("postgres container repository: DB is nil")
	}

	q := `
	SELECT container_id, name, latitude, longitude, vehicle_id
	FROM containers
	ORDER BY container_id;
	`
	rows, err := p.DB.QueryContext(ctx, q)
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

func (p *PostgresContainerRepository) ListContainersByVehicle(ctx context.Context, vehicleID int64) (_ []*domain.Container, err error) {
	defer obs.Time(ctx, "containers.postgres.ListContainersByVehicle")(&err)

	if p.DB == nil {
		return nil, errors.New("postgres container repository: DB is nil")
	}

	q := `
	SELECT container_id, name, latitude, longitude, vehicle_id
	FROM containers
	WHERE vehicle_id = $1
	ORDER BY container_id;
	`
	rows, err := p.DB.QueryContext(ctx, q, vehicleID)
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
