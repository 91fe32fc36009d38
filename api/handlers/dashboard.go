package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/casaverde/casa-verde-api/api"
	"github.com/casaverde/casa-verde-api/config"
	"github.com/casaverde/casa-verde-api/databases"
	"github.com/casaverde/casa-verde-api/models"
)

// Dashboard represents the daily status projection handler
type Dashboard struct {
	DB       databases.DashboardDatabase
	Location *time.Location
}

// DailyStatusHandler projects, for every active resident, whether a daily
// report exists on the requested date. When no date is given the facility's
// current day is used.
func (h Dashboard) DailyStatusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")

	requested := emptyToAbsent(r.URL.Query().Get("date"))
	if requested != nil {
		if _, err := time.Parse("2006-01-02", *requested); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: `Parâmetro "date" inválido. Use o formato YYYY-MM-DD.`})
			return
		}
	}

	date := ""
	if requested != nil {
		date = *requested
	} else {
		date = time.Now().In(h.Location).Format("2006-01-02")
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	rows, err := h.DB.DailyStatus(ctx, date)
	if err != nil {
		config.ErrorStatus("Erro ao buscar o status diário.", http.StatusInternalServerError, w, err)
		return
	}

	_ = json.NewEncoder(w).Encode(models.DailyStatusResponse{
		Date:  requested,
		Count: len(rows),
		Data:  rows,
	})
}
