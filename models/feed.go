package models

// Feed kinds, one per report variant. These are the values accepted by the
// tipo query parameter of /api/relatorios.
const (
	FeedKindDailyReport         = "relatorio_diario"
	FeedKindNursingEvolution    = "evolucao_enfermagem"
	FeedKindTechnicianEvolution = "evolucao_tecnico"
	FeedKindHygiene             = "higiene"
)

// KnownFeedKind reports whether kind names one of the four report variants.
func KnownFeedKind(kind string) bool {
	switch kind {
	case FeedKindDailyReport, FeedKindNursingEvolution, FeedKindTechnicianEvolution, FeedKindHygiene:
		return true
	}
	return false
}

// FeedRow is the common projection every report variant is normalized to for
// the unified feed. It is derived per query and never stored. PacienteNome is
// nil when the report references a resident that no longer exists; Hora is nil
// for variants without a time of occurrence.
type FeedRow struct {
	Tipo         string  `json:"tipo"`
	ID           int64   `json:"id"`
	PacienteID   int64   `json:"paciente_id"`
	PacienteNome *string `json:"paciente_nome"`
	Data         *string `json:"data"`
	Hora         *string `json:"hora"`
	Observacoes  *string `json:"observacoes"`
	Responsavel  *string `json:"responsavel"`
}

// FeedFilters carries the optional feed predicates. A nil field means
// unfiltered; handlers normalize empty query strings to nil before reaching
// the store.
type FeedFilters struct {
	PacienteID *int64
	Data       *string
	Tipo       *string
}
