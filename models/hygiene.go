package models

// HygieneLog holds a row of the higiene_relatorios table
type HygieneLog struct {
	ID             int64   `json:"id"`
	ResidenteID    int64   `json:"residente_id"`
	UsuarioID      int64   `json:"usuario_id"`
	DataOcorrencia string  `json:"data_ocorrencia"`
	HoraOcorrencia string  `json:"hora_ocorrencia"`
	BanhoCorporal  bool    `json:"banho_corporal"`
	BanhoParcial   bool    `json:"banho_parcial"`
	HigieneIntima  bool    `json:"higiene_intima"`
	Observacoes    *string `json:"observacoes"`
	ResponsavelNome string `json:"responsavel_nome"`
}

// HygieneLogInput is the create payload for a hygiene log
type HygieneLogInput struct {
	DataOcorrencia string  `json:"data_ocorrencia"`
	HoraOcorrencia string  `json:"hora_ocorrencia"`
	BanhoCorporal  bool    `json:"banho_corporal"`
	BanhoParcial   bool    `json:"banho_parcial"`
	HigieneIntima  bool    `json:"higiene_intima"`
	Observacoes    *string `json:"observacoes"`
}
