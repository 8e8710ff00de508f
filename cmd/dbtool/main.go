package main

import (
	"container-cluster-service/internal/adapters/repositories"
	"container-cluster-service/internal/config"
	"container-cluster-service/internal/platform/db"
	"database/sql"
	"flag"
	"fmt"
	"log"
)

func main() {
	config.Load()

	driver := flag.String("driver", config.Get("DB_DRIVER", string(db.Postgres)), "database driver: sqlite or postgres")
	seedPath := flag.String("seed", config.Get("SEED_PATH", "data/seeds/containers.json"), "container seed JSON file")
	skipSeed := flag.Bool("skip-seed", false, "only run migrations")
	flag.Parse()

	dialect, err := db.ParseDialect(*driver)
	if err != nil {
		log.Fatal(err)
	}

	dsn := config.Get("DATABASE_URL", "")
	if dialect == db.SQLite {
		dsn = config.Get("DB_PATH", "data/app.db")
	}
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(dialect, dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	if err := initAndSeed(sqlDB, dialect, *seedPath, *skipSeed); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(sqlDB *sql.DB, dialect db.Dialect, seedPath string, skipSeed bool) error {
	log.Println("Migrating database schema...")
	if err := db.Migrate(sqlDB, dialect); err != nil {
		return fmt.Errorf("init and seed: migrate: %w", err)
	}

	version, dirty, err := db.MigrationVersion(sqlDB, dialect)
	if err != nil {
		return fmt.Errorf("init and seed: read schema version: %w", err)
	}
	log.Printf("Schema ready version=%d dirty=%t", version, dirty)

	if skipSeed {
		return nil
	}

	log.Println("Seeding database...")
	if err := repositories.SeedFromJSON(sqlDB, seedPath, dialect); err != nil {
		return fmt.Errorf("init and seed: seed %s: %w", seedPath, err)
	}
	log.Println("Seeding complete.")

	return nil
}
