package handlers

import (
	"container-cluster-service/internal/api/dto"
	"container-cluster-service/internal/domain"
	"container-cluster-service/internal/platform/obs"
	"container-cluster-service/internal/ports"
	"log"
	"net/http"
)

// ContainerHandler exposes read-only container retrieval endpoints.
type ContainerHandler struct {
	Repo ports.ContainerRepository
}

// List returns all containers, or only one vehicle's when vehicle_id is given.
func (h *ContainerHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var (
		containers []*domain.Container
		err        error
	)
	if r.URL.Query().Has("vehicle_id") {
		vehicleID, perr := queryInt64(r, "vehicle_id")
		if perr != nil {
			writeError(w, r, http.StatusBadRequest, perr.Error())
			return
		}
		containers, err = h.Repo.ListContainersByVehicle(r.Context(), vehicleID)
	} else {
		containers, err = h.Repo.ListContainers(r.Context())
	}
	if err != nil {
		log.Printf("req_id=%s list containers failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListContainersResponse{
		Containers: make([]dto.ContainerResponse, 0, len(containers)),
	}
	for _, c := range containers {
		res.Containers = append(res.Containers, dto.NewContainerResponse(c))
	}

	writeJSON(w, r, http.StatusOK, res)
}
