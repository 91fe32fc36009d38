package models

// TechnicianEvolution holds a row of the evolucao_tecnico table
type TechnicianEvolution struct {
	ID                   int64   `json:"id"`
	ResidenteID          int64   `json:"residente_id"`
	UsuarioID            int64   `json:"usuario_id"`
	DataOcorrencia       string  `json:"data_ocorrencia"`
	Turno                *string `json:"turno"`
	NivelConsciencia     *string `json:"nivel_consciencia"`
	PeleMucosa           *string `json:"pele_mucosa"`
	LppLocal             *string `json:"lpp_local"`
	PadraoRespiratorio   *string `json:"padrao_respiratorio"`
	Fr                   *string `json:"fr"`
	EmUsoO2              *string `json:"em_uso_o2"`
	Tosse                *string `json:"tosse"`
	AlimentacaoVia       *string `json:"alimentacao_via"`
	AlimentacaoAceitacao *string `json:"alimentacao_aceitacao"`
	SonoRepouso          *string `json:"sono_repouso"`
	CuidadoBanho         *string `json:"cuidado_banho"`
	CuidadoDeambulacao   *string `json:"cuidado_deambulacao"`
	CuidadoCurativo      *string `json:"cuidado_curativo"`
	CurativoLocal        *string `json:"curativo_local"`
	CuidadosOutros       *string `json:"cuidados_outros"`
	Observacoes          *string `json:"observacoes"`
	ResponsavelNome      string  `json:"responsavel_nome"`
}

// TechnicianEvolutionInput is the create payload for a technician evolution
type TechnicianEvolutionInput struct {
	DataOcorrencia       string  `json:"data_ocorrencia"`
	Turno                *string `json:"turno"`
	NivelConsciencia     *string `json:"nivel_consciencia"`
	PeleMucosa           *string `json:"pele_mucosa"`
	LppLocal             *string `json:"lpp_local"`
	PadraoRespiratorio   *string `json:"padrao_respiratorio"`
	Fr                   *string `json:"fr"`
	EmUsoO2              *string `json:"em_uso_o2"`
	Tosse                *string `json:"tosse"`
	AlimentacaoVia       *string `json:"alimentacao_via"`
	AlimentacaoAceitacao *string `json:"alimentacao_aceitacao"`
	SonoRepouso          *string `json:"sono_repouso"`
	CuidadoBanho         *string `json:"cuidado_banho"`
	CuidadoDeambulacao   *string `json:"cuidado_deambulacao"`
	CuidadoCurativo      *string `json:"cuidado_curativo"`
	CurativoLocal        *string `json:"curativo_local"`
	CuidadosOutros       *string `json:"cuidados_outros"`
	Observacoes          *string `json:"observacoes"`
}
