package main

import (
	"container-cluster-service/internal/adapters/cache"
	"container-cluster-service/internal/adapters/repositories"
	"container-cluster-service/internal/api"
	"container-cluster-service/internal/config"
	"container-cluster-service/internal/platform/db"
	"container-cluster-service/internal/ports"
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (SQLite/Postgres, Redis) behind ports and starts the HTTP server.
func main() {
	config.Load()

	dialect, err := db.ParseDialect(config.Get("DB_DRIVER", string(db.SQLite)))
	if err != nil {
		log.Fatal(err)
	}

	seedPath := config.Get("SEED_PATH", "data/seeds/containers.json")
	port, err := config.Int("PORT", 8080)
	if err != nil {
		log.Fatal(err)
	}
	if port < 1 || port > 65535 {
		log.Fatalf("PORT=%d is out of range", port)
	}

	cacheTTL, err := config.Duration("CLUSTER_CACHE_TTL", 10*time.Minute)
	if err != nil {
		log.Fatal(err)
	}

	sqlDB, err := db.Connect(dialect, dsnFor(dialect))
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	// Migrate and seed demo data on startup for local runs.
	if err := initAndSeed(sqlDB, dialect, seedPath); err != nil {
		log.Fatal(err)
	}

	repo := newContainerRepository(sqlDB, dialect)

	var clusterCache ports.ClusterCache
	if addr := config.Get("REDIS_ADDR", ""); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		defer client.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := client.Ping(ctx).Err()
		cancel()
		if err != nil {
			log.Fatalf("connect redis addr=%s: %v", addr, err)
		}

		clusterCache = cache.NewRedisClusterCache(client, cacheTTL)
		log.Printf("Cluster cache enabled addr=%s ttl=%s", addr, cacheTTL)
	}

	router := api.NewRouter(repo, clusterCache, sqlDB)

	log.Printf("Server listening addr=:%d driver=%s", port, dialect)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func dsnFor(dialect db.Dialect) string {
	if dialect == db.Postgres {
		url := config.Get("DATABASE_URL", "")
		if url == "" {
			log.Fatal("DATABASE_URL is required when DB_DRIVER=postgres")
		}
		return url
	}
	return config.Get("DB_PATH", "data/app.db")
}

func newContainerRepository(sqlDB *sql.DB, dialect db.Dialect) ports.ContainerRepository {
	if dialect == db.Postgres {
		return repositories.NewPostgresContainerRepository(sqlDB)
	}
	return repositories.NewSqliteContainerRepository(sqlDB)
}

func initAndSeed(sqlDB *sql.DB, dialect db.Dialect, seedPath string) error {
	if err := db.Migrate(sqlDB, dialect); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if _, err := os.Stat(seedPath); err != nil {
		log.Printf("No seed file at %s, skipping seeding", seedPath)
		return nil
	}

	if err := repositories.SeedFromJSON(sqlDB, seedPath, dialect); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
