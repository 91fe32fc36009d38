package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/casaverde/casa-verde-api/api"
	"github.com/casaverde/casa-verde-api/config"
	"github.com/casaverde/casa-verde-api/databases"
	"github.com/casaverde/casa-verde-api/models"
)

// TechnicianEvolution represents the technician evolution handler
type TechnicianEvolution struct {
	DB databases.TechnicianEvolutionDatabase
}

// EvolutionsByResidentHandler returns the technician evolutions for one resident, newest first
func (h TechnicianEvolution) EvolutionsByResidentHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := residentIDFromRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "ID de residente inválido."})
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	evolutions, err := h.DB.FindByResident(ctx, id)
	if err != nil {
		config.ErrorStatus("Erro ao buscar evoluções do técnico.", http.StatusInternalServerError, w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(evolutions)
}

// CreateEvolutionHandler files a technician evolution with the author taken
// from the verified claims
func (h TechnicianEvolution) CreateEvolutionHandler(w http.ResponseWriter, r *http.Request) {
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

	var in models.TechnicianEvolutionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		config.ErrorStatus("Corpo da requisição inválido.", http.StatusBadRequest, w, err)
		return
	}

	ev := models.TechnicianEvolution{
		ResidenteID:          id,
		UsuarioID:            claims.UserID,
		DataOcorrencia:       in.DataOcorrencia,
		Turno:                in.Turno,
		NivelConsciencia:     in.NivelConsciencia,
		PeleMucosa:           in.PeleMucosa,
		LppLocal:             in.LppLocal,
		PadraoRespiratorio:   in.PadraoRespiratorio,
		Fr:                   in.Fr,
		EmUsoO2:              in.EmUsoO2,
		Tosse:                in.Tosse,
		AlimentacaoVia:       in.AlimentacaoVia,
		AlimentacaoAceitacao: in.AlimentacaoAceitacao,
		SonoRepouso:          in.SonoRepouso,
		CuidadoBanho:         in.CuidadoBanho,
		CuidadoDeambulacao:   in.CuidadoDeambulacao,
		CuidadoCurativo:      in.CuidadoCurativo,
		CurativoLocal:        in.CurativoLocal,
		CuidadosOutros:       in.CuidadosOutros,
		Observacoes:          in.Observacoes,
		ResponsavelNome:      claims.Nome,
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	created, err := h.DB.Insert(ctx, ev)
	if err != nil {
		config.ErrorStatus("Erro interno ao salvar evolução do técnico.", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(created)
}
