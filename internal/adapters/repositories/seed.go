package repositories

import (
	"container-cluster-service/internal/platform/db"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
)

type ContainerSeed struct {
	ContainerID int64   `json:"container_id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	VehicleID   int64   `json:"vehicle_id"`
}

var upsertContainerQuery = map[db.Dialect]string{
	db.SQLite: `
	INSERT OR REPLACE INTO containers (
		container_id,
		name,
		latitude,
		longitude,
		vehicle_id
	)
	VALUES (?, ?, ?, ?, ?);
	`,
	db.Postgres: `
	INSERT INTO containers (
		container_id,
		name,
		latitude,
		longitude,
		vehicle_id
	)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (container_id) DO UPDATE SET
		name = EXCLUDED.name,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude,
		vehicle_id = EXCLUDED.vehicle_id;
	`,
}

// Populate the database with container data from a JSON file.
func SeedFromJSON(sqlDB *sql.DB, jsonPath string, dialect db.Dialect) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed containers: read %q: %w", jsonPath, err)
	}

	var data []ContainerSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed containers: parse json: %w", err)
	}

	return SeedContainers(sqlDB, data, dialect)
}

// Validate and upsert containers in a single transaction.
func SeedContainers(sqlDB *sql.DB, data []ContainerSeed, dialect db.Dialect) error {
	if sqlDB == nil {
		return errors.New("seed containers: DB is nil")
	}

	query, ok := upsertContainerQuery[dialect]
	if !ok {
		return fmt.Errorf("seed containers: unsupported dialect %q", dialect)
	}

	rows := make([]ContainerSeed, 0, len(data))
	for i, item := range data {
		if item.ContainerID <= 0 {
			return fmt.Errorf("seed containers: invalid container_id at index %d: %d", i+1, item.ContainerID)
		}
		if item.VehicleID <= 0 {
			return fmt.Errorf("seed containers: invalid vehicle_id at index %d: %d", i+1, item.VehicleID)
		}
		if !validLatLon(item.Latitude, item.Longitude) {
			return fmt.Errorf("seed containers: coordinates out of range at index %d: lat=%v lon=%v", i+1, item.Latitude, item.Longitude)
		}

		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			item.Name = fmt.Sprintf("container-%d", item.ContainerID)
		}
		rows = append(rows, item)
	}

	tx, err := sqlDB.Begin()
	if err != nil {
		return fmt.Errorf("seed containers: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed containers: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range rows {
		if _, err := stmt.Exec(c.ContainerID, c.Name, c.Latitude, c.Longitude, c.VehicleID); err != nil {
			return fmt.Errorf("seed containers: insert container_id=%d: %w", c.ContainerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed containers: commit tx: %w", err)
	}

	return nil
}

func validLatLon(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
