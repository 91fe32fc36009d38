package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/casaverde/casa-verde-api/api"
	"github.com/casaverde/casa-verde-api/config"
	"github.com/casaverde/casa-verde-api/databases"
	"github.com/casaverde/casa-verde-api/models"
)

// Resident represents the resident handler
type Resident struct {
	DB databases.ResidentDatabase
}

// residentIDFromRequest parses the {id} path variable
func residentIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// ListResidentsHandler returns the active residents ordered by name
func (h Resident) ListResidentsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	residents, err := h.DB.FindAllActive(ctx)
	if err != nil {
		config.ErrorStatus("Erro ao buscar residentes.", http.StatusInternalServerError, w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(residents)
}

// ResidentByIDHandler returns a single resident
func (h Resident) ResidentByIDHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := residentIDFromRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "ID de residente inválido."})
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	resident, err := h.DB.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Residente não encontrado."})
			return
		}
		config.ErrorStatus("Erro ao buscar residente.", http.StatusInternalServerError, w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(resident)
}

// CreateResidentHandler registers a new resident
func (h Resident) CreateResidentHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var in models.ResidentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		config.ErrorStatus("Corpo da requisição inválido.", http.StatusBadRequest, w, err)
		return
	}
	if in.Nome == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: `O campo "nome" é obrigatório.`})
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	resident, err := h.DB.Insert(ctx, in)
	if err != nil {
		config.ErrorStatus("Erro ao cadastrar residente.", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(resident)
}

// UpdateResidentHandler updates an existing resident
func (h Resident) UpdateResidentHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := residentIDFromRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "ID de residente inválido."})
		return
	}

	var in models.ResidentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		config.ErrorStatus("Corpo da requisição inválido.", http.StatusBadRequest, w, err)
		return
	}
	if in.Nome == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: `O campo "nome" é obrigatório.`})
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	resident, err := h.DB.Update(ctx, id, in)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Residente não encontrado para atualização."})
			return
		}
		config.ErrorStatus("Erro ao atualizar residente.", http.StatusInternalServerError, w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(resident)
}

// DeleteResidentHandler removes a resident permanently. The route is gated
// behind the admin role.
func (h Resident) DeleteResidentHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := residentIDFromRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "ID de residente inválido."})
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	deleted, err := h.DB.Delete(ctx, id)
	if err != nil {
		config.ErrorStatus("Erro ao deletar residente.", http.StatusInternalServerError, w, err)
		return
	}
	if deleted == 0 {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Residente não encontrado para deleção."})
		return
	}

	_ = json.NewEncoder(w).Encode(models.MessageResponse{
		Message: fmt.Sprintf("Residente com ID %d deletado com sucesso!", id),
	})
}
