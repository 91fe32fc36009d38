package databases

import (
	"context"
	"database/sql"

	"github.com/casaverde/casa-verde-api/models"
)

const dailyReportColumns = `id, paciente_id, to_char(data, 'YYYY-MM-DD'), hora::text, periodo,
	alimentacao, temperatura, pressao, observacoes, responsavel`

// DailyReportDatabase contains the methods to use with the relatorios_diarios table
type DailyReportDatabase interface {
	FindByResident(ctx context.Context, residentID int64) ([]models.DailyReport, error)
	Insert(ctx context.Context, residentID int64, in models.DailyReportInput) (*models.DailyReport, error)
}

type dailyReportDatabase struct {
	db *sql.DB
}

// NewDailyReportDatabase initializes a new instance of daily report database with the provided db connection
func NewDailyReportDatabase(db *sql.DB) DailyReportDatabase {
	return &dailyReportDatabase{db: db}
}

func scanDailyReport(row interface{ Scan(...interface{}) error }) (*models.DailyReport, error) {
	r := &models.DailyReport{}
	err := row.Scan(&r.ID, &r.PacienteID, &r.Data, &r.Hora, &r.Periodo,
		&r.Alimentacao, &r.Temperatura, &r.Pressao, &r.Observacoes, &r.Responsavel)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (c *dailyReportDatabase) FindByResident(ctx context.Context, residentID int64) ([]models.DailyReport, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT `+dailyReportColumns+` FROM relatorios_diarios
		 WHERE paciente_id = $1 ORDER BY data DESC, hora DESC`, residentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := []models.DailyReport{}
	for rows.Next() {
		r, err := scanDailyReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *r)
	}
	return reports, rows.Err()
}

func (c *dailyReportDatabase) Insert(ctx context.Context, residentID int64, in models.DailyReportInput) (*models.DailyReport, error) {
	return scanDailyReport(c.db.QueryRowContext(ctx,
		`INSERT INTO relatorios_diarios (paciente_id, data, hora, periodo, alimentacao, temperatura, pressao, observacoes, responsavel)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+dailyReportColumns,
		residentID, in.Data, in.Hora, in.Periodo, in.Alimentacao, in.Temperatura, in.Pressao,
		in.Observacoes, in.Responsavel))
}
