package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/casaverde/casa-verde-api/api"
	"github.com/casaverde/casa-verde-api/config"
	"github.com/casaverde/casa-verde-api/databases"
	"github.com/casaverde/casa-verde-api/models"
)

// Feed represents the unified report feed handler
type Feed struct {
	DB databases.FeedDatabase
}

// emptyToAbsent treats a missing or empty query parameter as no filter at all
func emptyToAbsent(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// FeedHandler aggregates every report table into one feed, filtered by the
// pacienteId, data and tipo query parameters and sorted newest first
func (h Feed) FeedHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	q := r.URL.Query()
	filters := models.FeedFilters{
		Data: emptyToAbsent(q.Get("data")),
		Tipo: emptyToAbsent(q.Get("tipo")),
	}

	if raw := emptyToAbsent(q.Get("pacienteId")); raw != nil {
		id, err := strconv.ParseInt(*raw, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: `Parâmetro "pacienteId" inválido.`})
			return
		}
		filters.PacienteID = &id
	}

	if filters.Data != nil {
		if _, err := time.Parse("2006-01-02", *filters.Data); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: `Parâmetro "data" inválido. Use o formato YYYY-MM-DD.`})
			return
		}
	}

	if filters.Tipo != nil && !models.KnownFeedKind(*filters.Tipo) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: `Parâmetro "tipo" inválido.`})
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	rows, err := h.DB.ListFeed(ctx, filters)
	if err != nil {
		config.ErrorStatus("Erro ao buscar relatórios.", http.StatusInternalServerError, w, err)
		return
	}

	_ = json.NewEncoder(w).Encode(rows)
}
