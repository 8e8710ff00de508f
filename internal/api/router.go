package api

import (
	"container-cluster-service/internal/api/handlers"
	"container-cluster-service/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// cache may be nil to disable result caching; db may be nil to skip the
// database check in /health.
func NewRouter(repo ports.ContainerRepository, cache ports.ClusterCache, db handlers.Pinger) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{DB: db}
	containerHandler := &handlers.ContainerHandler{Repo: repo}
	clusterHandler := &handlers.ClusterHandler{
		Repo:  repo,
		Cache: cache,
	}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/containers", containerHandler.List)
	mux.HandleFunc("/clusters", clusterHandler.Cluster)

	return requestIDMiddleware(loggingMiddleware(mux))
}
