package models

// NursingEvolution holds a row of the evolucao_enfermagem table. The checklist
// fields mirror the nursing assessment form one to one.
type NursingEvolution struct {
	ID                      int64   `json:"id"`
	PacienteID              int64   `json:"paciente_id"`
	UsuarioID               int64   `json:"usuario_id"`
	DataOcorrencia          string  `json:"data_ocorrencia"`
	GrauDependencia         *string `json:"grau_dependencia"`
	Mobilidade              *string `json:"mobilidade"`
	NivelConsciencia        *string `json:"nivel_consciencia"`
	PeleEMucosa             *string `json:"pele_e_mucosa"`
	LesaoPressaoLocal       *string `json:"lesao_pressao_local"`
	PadraoRespiratorio      *string `json:"padrao_respiratorio"`
	AlteracoesRespiratorias *string `json:"alteracoes_respiratorias"`
	Tosse                   *string `json:"tosse"`
	AlimentacaoVia          *string `json:"alimentacao_via"`
	AlimentacaoAceitacao    *string `json:"alimentacao_aceitacao"`
	EliminacaoVesical       *string `json:"eliminacao_vesical"`
	EliminacaoIntestinal    *string `json:"eliminacao_intestinal"`
	ConstipacaoDias         *int    `json:"constipacao_dias"`
	SonoRepouso             *string `json:"sono_repouso"`
	EstadoGeral             *string `json:"estado_geral"`
	DorStatus               *string `json:"dor_status"`
	DorGrau                 *int    `json:"dor_grau"`
	DorLocal                *string `json:"dor_local"`
	Observacoes             *string `json:"observacoes"`
	ResponsavelNome         string  `json:"responsavel_nome"`
}

// NursingEvolutionInput is the create payload for a nursing evolution. The two
// numeric checklist fields arrive as strings from the form and may be empty,
// which maps to null.
type NursingEvolutionInput struct {
	DataOcorrencia          string  `json:"data_ocorrencia"`
	GrauDependencia         *string `json:"grau_dependencia"`
	Mobilidade              *string `json:"mobilidade"`
	NivelConsciencia        *string `json:"nivel_consciencia"`
	PeleEMucosa             *string `json:"pele_e_mucosa"`
	LesaoPressaoLocal       *string `json:"lesao_pressao_local"`
	PadraoRespiratorio      *string `json:"padrao_respiratorio"`
	AlteracoesRespiratorias *string `json:"alteracoes_respiratorias"`
	Tosse                   *string `json:"tosse"`
	AlimentacaoVia          *string `json:"alimentacao_via"`
	AlimentacaoAceitacao    *string `json:"alimentacao_aceitacao"`
	EliminacaoVesical       *string `json:"eliminacao_vesical"`
	EliminacaoIntestinal    *string `json:"eliminacao_intestinal"`
	ConstipacaoDias         *string `json:"constipacao_dias"`
	SonoRepouso             *string `json:"sono_repouso"`
	EstadoGeral             *string `json:"estado_geral"`
	DorStatus               *string `json:"dor_status"`
	DorGrau                 *string `json:"dor_grau"`
	DorLocal                *string `json:"dor_local"`
	Observacoes             *string `json:"observacoes"`
}
