package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/casaverde/casa-verde-api/api"
	"github.com/casaverde/casa-verde-api/config"
	"github.com/casaverde/casa-verde-api/databases"
	"github.com/casaverde/casa-verde-api/models"
)

// Hygiene represents the hygiene log handler
type Hygiene struct {
	DB databases.HygieneDatabase
}

// LogsByResidentHandler returns the hygiene logs for one resident, newest first
func (h Hygiene) LogsByResidentHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := residentIDFromRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "ID de residente inválido."})
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	logs, err := h.DB.FindByResident(ctx, id)
	if err != nil {
		config.ErrorStatus("Erro ao buscar relatórios de higiene.", http.StatusInternalServerError, w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(logs)
}

// CreateLogHandler files a hygiene log with the author taken from the
// verified claims
func (h Hygiene) CreateLogHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := residentIDFromRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "ID de residente inválido."})
		return
	}

	claims, ok := api.ClaimsFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Token não fornecido."})
		return
	}

	var in models.HygieneLogInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		config.ErrorStatus("Corpo da requisição inválido.", http.StatusBadRequest, w, err)
		return
	}
	if in.DataOcorrencia == "" || in.HoraOcorrencia == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: `Os campos "data_ocorrencia" e "hora_ocorrencia" são obrigatórios.`})
		return
	}

	log := models.HygieneLog{
		ResidenteID:     id,
		UsuarioID:       claims.UserID,
		DataOcorrencia:  in.DataOcorrencia,
		HoraOcorrencia:  in.HoraOcorrencia,
		BanhoCorporal:   in.BanhoCorporal,
		BanhoParcial:    in.BanhoParcial,
		HigieneIntima:   in.HigieneIntima,
		Observacoes:     in.Observacoes,
		ResponsavelNome: claims.Nome,
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	created, err := h.DB.Insert(ctx, log)
	if err != nil {
		config.ErrorStatus("Erro interno ao salvar relatório de higiene.", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(created)
}
