package handlers

import (
	"container-cluster-service/internal/api/dto"
	"container-cluster-service/internal/platform/obs"
	"container-cluster-service/internal/ports"
	"container-cluster-service/internal/services"
	"log"
	"net/http"
)

type ClusterHandler struct {
	Repo  ports.ContainerRepository
	Cache ports.ClusterCache
}

// Cluster groups the containers of vehicle_id into cluster_count groups.
// Responses are wrapped in a dto.Result envelope: input problems are 400,
// infrastructure failures 500, both with the same user-facing message.
func (h *ClusterHandler) Cluster(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	vehicleID, err := queryInt64(r, "vehicle_id")
	if err != nil {
		writeFailure(w, r, http.StatusBadRequest, err.Error())
		return
	}

	clusterCount, err := queryInt64(r, "cluster_count")
	if err != nil {
		writeFailure(w, r, http.StatusBadRequest, err.Error())
		return
	}

	seed, err := queryInt32(r, "seed", 0)
	if err != nil {
		writeFailure(w, r, http.StatusBadRequest, err.Error())
		return
	}

	req := services.ClusterContainersRequest{
		VehicleID:    vehicleID,
		ClusterCount: int(clusterCount),
		Seed:         seed,
	}

	clustering, err := services.ClusterContainers(r.Context(), req, h.Repo, h.Cache)
	if err != nil {
		if services.IsInputError(err) {
			writeFailure(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("req_id=%s cluster containers failed: %v", obs.RequestID(r.Context()), err)
		writeFailure(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.Result{
		Success: true,
		Message: MsgContainersClustered,
		Data:    dto.NewClusterResponse(clustering),
	})
}

func writeFailure(w http.ResponseWriter, r *http.Request, status int, detail string) {
	writeJSON(w, r, status, dto.Result{
		Success: false,
		Message: MsgCheckInputs,
		Error:   detail,
	})
}
