package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/casaverde/casa-verde-api/api"
	"github.com/casaverde/casa-verde-api/config"
	"github.com/casaverde/casa-verde-api/databases"
	"github.com/casaverde/casa-verde-api/models"
)

// DailyReport represents the daily report handler
type DailyReport struct {
	DB databases.DailyReportDatabase
}

// ReportsByResidentHandler returns the daily reports for one resident, newest first
func (h DailyReport) ReportsByResidentHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := residentIDFromRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "ID de residente inválido."})
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	reports, err := h.DB.FindByResident(ctx, id)
	if err != nil {
		config.ErrorStatus("Erro ao buscar relatórios.", http.StatusInternalServerError, w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(reports)
}

// CreateReportHandler files a new daily report for one resident
func (h DailyReport) CreateReportHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := residentIDFromRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "ID de residente inválido."})
		return
	}

	var in models.DailyReportInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		config.ErrorStatus("Corpo da requisição inválido.", http.StatusBadRequest, w, err)
		return
	}
	if in.Data == "" || in.Periodo == "" || in.Hora == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: `Os campos "data", "periodo" e "hora" são obrigatórios.`})
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	report, err := h.DB.Insert(ctx, id, in)
	if err != nil {
		config.ErrorStatus("Erro ao cadastrar relatório.", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(report)
}
