package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/casaverde/casa-verde-api/api"
	"github.com/casaverde/casa-verde-api/config"
	"github.com/casaverde/casa-verde-api/databases"
	"github.com/casaverde/casa-verde-api/models"
	"github.com/casaverde/casa-verde-api/storage"
)

// Archive represents the resident archival handler. Archiving a resident
// snapshots their full report history into object storage and flips the
// resident to the archived status, which removes them from the active lists.
type Archive struct {
	RDB      databases.ResidentDatabase
	DRDB     databases.DailyReportDatabase
	NEDB     databases.NursingEvolutionDatabase
	TEDB     databases.TechnicianEvolutionDatabase
	HDB      databases.HygieneDatabase
	Uploader storage.Uploader
}

// ArchiveResidentHandler is admin-only, wired behind RequireAdmin
func (h Archive) ArchiveResidentHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := residentIDFromRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "ID de residente inválido."})
		return
	}

	if h.Uploader == nil {
		config.ErrorStatus("Serviço de arquivamento não configurado.", http.StatusInternalServerError, w,
			errors.New("no uploader configured"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	resident, err := h.RDB.FindByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Residente não encontrado."})
		return
	}
	if err != nil {
		config.ErrorStatus("Erro ao buscar residente.", http.StatusInternalServerError, w, err)
		return
	}
	if resident.Status == models.ResidentStatusArchived {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Residente já está arquivado."})
		return
	}

	doc, err := h.buildHistoryDocument(r.Context(), resident)
	if err != nil {
		config.ErrorStatus("Erro ao montar o histórico do residente.", http.StatusInternalServerError, w, err)
		return
	}

	name := fmt.Sprintf("historico_%d_%s", resident.ID, slug(resident.Nome))
	url, err := h.Uploader.UploadDocument(r.Context(), name, doc)
	if err != nil {
		config.ErrorStatus("Erro ao enviar o histórico para o armazenamento.", http.StatusInternalServerError, w, err)
		return
	}

	if err := h.RDB.SetStatus(ctx, id, models.ResidentStatusArchived); err != nil {
		config.ErrorStatus("Erro ao arquivar residente.", http.StatusInternalServerError, w, err)
		return
	}

	_ = json.NewEncoder(w).Encode(archiveResponse{
		Message:    fmt.Sprintf("Residente %s arquivado com sucesso!", resident.Nome),
		ArquivoURL: url,
	})
}

type archiveResponse struct {
	Message    string `json:"message"`
	ArquivoURL string `json:"arquivo_url"`
}

// buildHistoryDocument renders every report table for the resident into one
// plain-text document, newest entries first within each section
func (h Archive) buildHistoryDocument(ctx context.Context, resident *models.Resident) (string, error) {
	qctx, cancel := api.WithQueryTimeout(ctx)
	defer cancel()

	reports, err := h.DRDB.FindByResident(qctx, resident.ID)
	if err != nil {
		return "", err
	}
	nursing, err := h.NEDB.FindByResident(qctx, resident.ID)
	if err != nil {
		return "", err
	}
	technician, err := h.TEDB.FindByResident(qctx, resident.ID)
	if err != nil {
		return "", err
	}
	hygiene, err := h.HDB.FindByResident(qctx, resident.ID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "HISTÓRICO DO RESIDENTE: %s (ID %d)\n", resident.Nome, resident.ID)
	fmt.Fprintf(&b, "Quarto: %s | Diagnóstico: %s\n", orDash(resident.Quarto), orDash(resident.Diagnostico))
	fmt.Fprintf(&b, "Data de internação: %s\n", orDash(resident.DataInternacao))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	fmt.Fprintf(&b, "RELATÓRIOS DIÁRIOS (%d)\n", len(reports))
	for _, rep := range reports {
		fmt.Fprintf(&b, "- %s %s [%s] alimentação: %s, temperatura: %s, pressão: %s, obs: %s (por %s)\n",
			rep.Data, rep.Hora, rep.Periodo,
			orDash(rep.Alimentacao), orDash(rep.Temperatura), orDash(rep.Pressao),
			orDash(rep.Observacoes), orDash(rep.Responsavel))
	}

	fmt.Fprintf(&b, "\nEVOLUÇÕES DE ENFERMAGEM (%d)\n", len(nursing))
	for _, ev := range nursing {
		fmt.Fprintf(&b, "- %s estado geral: %s, consciência: %s, obs: %s (por %s)\n",
			ev.DataOcorrencia, orDash(ev.EstadoGeral), orDash(ev.NivelConsciencia),
			orDash(ev.Observacoes), ev.ResponsavelNome)
	}

	fmt.Fprintf(&b, "\nEVOLUÇÕES DO TÉCNICO (%d)\n", len(technician))
	for _, ev := range technician {
		fmt.Fprintf(&b, "- %s turno: %s, consciência: %s, obs: %s (por %s)\n",
			ev.DataOcorrencia, orDash(ev.Turno), orDash(ev.NivelConsciencia),
			orDash(ev.Observacoes), ev.ResponsavelNome)
	}

	fmt.Fprintf(&b, "\nRELATÓRIOS DE HIGIENE (%d)\n", len(hygiene))
	for _, lg := range hygiene {
		fmt.Fprintf(&b, "- %s %s banho corporal: %t, banho parcial: %t, higiene íntima: %t, obs: %s (por %s)\n",
			lg.DataOcorrencia, lg.HoraOcorrencia,
			lg.BanhoCorporal, lg.BanhoParcial, lg.HigieneIntima,
			orDash(lg.Observacoes), lg.ResponsavelNome)
	}

	return b.String(), nil
}

func orDash(v *string) string {
	if v == nil || *v == "" {
		return "—"
	}
	return *v
}

// slug flattens a resident name into a storage-safe public id fragment
func slug(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r == ' ', r == '-', r == '_':
			out = append(out, '_')
		}
	}
	return strings.Trim(string(out), "_")
}
