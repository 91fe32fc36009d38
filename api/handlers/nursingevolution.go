package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/casaverde/casa-verde-api/api"
	"github.com/casaverde/casa-verde-api/config"
	"github.com/casaverde/casa-verde-api/databases"
	"github.com/casaverde/casa-verde-api/models"
)

// NursingEvolution represents the nursing evolution handler
type NursingEvolution struct {
	DB databases.NursingEvolutionDatabase
}

// EvolutionsByResidentHandler returns the nursing evolutions for one resident, newest first
func (h NursingEvolution) EvolutionsByResidentHandler(w http.ResponseWriter, r *http.Request) {
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
		config.ErrorStatus("Erro ao buscar evoluções de enfermagem.", http.StatusInternalServerError, w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(evolutions)
}

// CreateEvolutionHandler files a nursing evolution. The responsible party and
// author come from the verified claims, never from the request body.
func (h NursingEvolution) CreateEvolutionHandler(w http.ResponseWriter, r *http.Request) {
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

	var in models.NursingEvolutionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		config.ErrorStatus("Corpo da requisição inválido.", http.StatusBadRequest, w, err)
		return
	}

	ev := models.NursingEvolution{
		PacienteID:              id,
		UsuarioID:               claims.UserID,
		DataOcorrencia:          in.DataOcorrencia,
		GrauDependencia:         in.GrauDependencia,
		Mobilidade:              in.Mobilidade,
		NivelConsciencia:        in.NivelConsciencia,
		PeleEMucosa:             in.PeleEMucosa,
		LesaoPressaoLocal:       in.LesaoPressaoLocal,
		PadraoRespiratorio:      in.PadraoRespiratorio,
		AlteracoesRespiratorias: in.AlteracoesRespiratorias,
		Tosse:                   in.Tosse,
		AlimentacaoVia:          in.AlimentacaoVia,
		AlimentacaoAceitacao:    in.AlimentacaoAceitacao,
		EliminacaoVesical:       in.EliminacaoVesical,
		EliminacaoIntestinal:    in.EliminacaoIntestinal,
		ConstipacaoDias:         parseOptionalInt(in.ConstipacaoDias),
		SonoRepouso:             in.SonoRepouso,
		EstadoGeral:             in.EstadoGeral,
		DorStatus:               in.DorStatus,
		DorGrau:                 parseOptionalInt(in.DorGrau),
		DorLocal:                in.DorLocal,
		Observacoes:             in.Observacoes,
		ResponsavelNome:         claims.Nome,
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	created, err := h.DB.Insert(ctx, ev)
	if err != nil {
		config.ErrorStatus("Erro interno ao salvar evolução de enfermagem.", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(created)
}

// parseOptionalInt maps the form convention where numeric checklist fields
// arrive as strings and empty means absent
func parseOptionalInt(s *string) *int {
	if s == nil || *s == "" {
		return nil
	}
	n, err := strconv.Atoi(*s)
	if err != nil {
		return nil
	}
	return &n
}
