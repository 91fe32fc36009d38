package models

// DailyReport holds a row of the relatorios_diarios table (vitals/meals report)
type DailyReport struct {
	ID          int64   `json:"id"`
	PacienteID  int64   `json:"paciente_id"`
	Data        string  `json:"data"`
	Hora        string  `json:"hora"`
	Periodo     string  `json:"periodo"`
	Alimentacao *string `json:"alimentacao"`
	Temperatura *string `json:"temperatura"`
	Pressao     *string `json:"pressao"`
	Observacoes *string `json:"observacoes"`
	Responsavel *string `json:"responsavel"`
}

// DailyReportInput is the create payload for a daily report
type DailyReportInput struct {
	Data        string  `json:"data"`
	Hora        string  `json:"hora"`
	Periodo     string  `json:"periodo"`
	Alimentacao *string `json:"alimentacao"`
	Temperatura *string `json:"temperatura"`
	Pressao     *string `json:"pressao"`
	Observacoes *string `json:"observacoes"`
	Responsavel *string `json:"responsavel"`
}
