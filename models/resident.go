package models

// Resident statuses as stored in the pacientes table.
const (
	ResidentStatusActive   = "ativo"
	ResidentStatusArchived = "arquivado"
)

// Resident holds a row of the pacientes table
type Resident struct {
	ID                         int64   `json:"id"`
	Nome                       string  `json:"nome"`
	Idade                      *int    `json:"idade"`
	Quarto                     *string `json:"quarto"`
	Diagnostico                *string `json:"diagnostico"`
	Medicamentos               *string `json:"medicamentos"`
	ContatoEmergencia          *string `json:"contato_emergencia"`
	DataInternacao             *string `json:"data_internacao"`
	ResponsavelFamiliarNome    *string `json:"responsavel_familiar_nome"`
	ResponsavelFamiliarContato *string `json:"responsavel_familiar_contato"`
	LinkMedicamentos           *string `json:"link_medicamentos"`
	Status                     string  `json:"status"`
}

// ResidentInput is the create/update payload for a resident
type ResidentInput struct {
	Nome                       string  `json:"nome"`
	Idade                      *int    `json:"idade"`
	Quarto                     *string `json:"quarto"`
	Diagnostico                *string `json:"diagnostico"`
	Medicamentos               *string `json:"medicamentos"`
	ContatoEmergencia          *string `json:"contato_emergencia"`
	DataInternacao             *string `json:"data_internacao"`
	ResponsavelFamiliarNome    *string `json:"responsavel_familiar_nome"`
	ResponsavelFamiliarContato *string `json:"responsavel_familiar_contato"`
	LinkMedicamentos           *string `json:"link_medicamentos"`
}
