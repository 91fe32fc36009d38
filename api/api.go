package api

import (
	"encoding/json"
	"net/http"

	"github.com/casaverde/casa-verde-api/models"
)

// HealthCheckHandler reports process liveness
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{Alive: true})
	_, _ = w.Write(b)
}
