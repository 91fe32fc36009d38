package databases

import (
	"context"
	"database/sql"

	"github.com/casaverde/casa-verde-api/models"
)

// DashboardDatabase contains the daily-status projection over pacientes and
// relatorios_diarios
type DashboardDatabase interface {
	DailyStatus(ctx context.Context, date string) ([]models.DailyStatusRow, error)
}

type dashboardDatabase struct {
	db *sql.DB
}

// NewDashboardDatabase initializes a new instance of dashboard database with the provided db connection
func NewDashboardDatabase(db *sql.DB) DashboardDatabase {
	return &dashboardDatabase{db: db}
}

// DailyStatus lists active residents and whether a daily report exists for the
// given date. When a resident has more than one report on that date the lateral
// pick keeps only the highest id, so a resident never appears twice.
func (c *dashboardDatabase) DailyStatus(ctx context.Context, date string) ([]models.DailyStatusRow, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT
			p.id,
			p.nome,
			rd.id              AS report_id,
			(rd.id IS NOT NULL) AS has_daily
		FROM pacientes p
		LEFT JOIN LATERAL (
			SELECT r.id
			FROM relatorios_diarios r
			WHERE r.paciente_id = p.id
			  AND r.data = $1::date
			ORDER BY r.id DESC
			LIMIT 1
		) rd ON TRUE
		WHERE p.status = 'ativo'
		ORDER BY p.nome`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := []models.DailyStatusRow{}
	for rows.Next() {
		var s models.DailyStatusRow
		if err := rows.Scan(&s.ID, &s.Nome, &s.ReportID, &s.HasDaily); err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}
