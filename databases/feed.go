package databases

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/casaverde/casa-verde-api/models"
)

// FeedDatabase aggregates the four report tables into the unified feed
type FeedDatabase interface {
	ListFeed(ctx context.Context, filters models.FeedFilters) ([]models.FeedRow, error)
}

type feedDatabase struct {
	db *sql.DB
}

// NewFeedDatabase initializes a new instance of feed database with the provided db connection
func NewFeedDatabase(db *sql.DB) FeedDatabase {
	return &feedDatabase{db: db}
}

// feedVariant describes how one report table projects onto the normalized
// feed row. The LEFT JOIN keeps reports whose resident no longer exists;
// those come back with a null paciente_nome rather than being dropped.
type feedVariant struct {
	tipo        string
	table       string
	residentCol string
	dateCol     string
	timeExpr    string
	notesCol    string
	respCol     string
}

var feedVariants = []feedVariant{
	{
		tipo:        models.FeedKindDailyReport,
		table:       "relatorios_diarios",
		residentCol: "paciente_id",
		dateCol:     "data",
		timeExpr:    "r.hora::text",
		notesCol:    "observacoes",
		respCol:     "responsavel",
	},
	{
		tipo:        models.FeedKindNursingEvolution,
		table:       "evolucao_enfermagem",
		residentCol: "paciente_id",
		dateCol:     "data_ocorrencia",
		timeExpr:    "NULL",
		notesCol:    "observacoes",
		respCol:     "responsavel_nome",
	},
	{
		tipo:        models.FeedKindTechnicianEvolution,
		table:       "evolucao_tecnico",
		residentCol: "residente_id",
		dateCol:     "data_ocorrencia",
		timeExpr:    "NULL",
		notesCol:    "observacoes",
		respCol:     "responsavel_nome",
	},
	{
		tipo:        models.FeedKindHygiene,
		table:       "higiene_relatorios",
		residentCol: "residente_id",
		dateCol:     "data_ocorrencia",
		timeExpr:    "r.hora_ocorrencia::text",
		notesCol:    "observacoes",
		respCol:     "responsavel_nome",
	},
}

// ListFeed projects each report variant onto the normalized row, applying the
// resident and date predicates per variant, then filters by kind across the
// concatenated set and sorts by date desc, id desc (null dates last).
func (c *feedDatabase) ListFeed(ctx context.Context, filters models.FeedFilters) ([]models.FeedRow, error) {
	all := []models.FeedRow{}
	for _, v := range feedVariants {
		rows, err := c.queryVariant(ctx, v, filters)
		if err != nil {
			return nil, fmt.Errorf("feed query %s: %w", v.table, err)
		}
		all = append(all, rows...)
	}
	all = filterFeedByKind(all, filters.Tipo)
	sortFeed(all)
	return all, nil
}

func (c *feedDatabase) queryVariant(ctx context.Context, v feedVariant, filters models.FeedFilters) ([]models.FeedRow, error) {
	query := fmt.Sprintf(
		`SELECT r.id, r.%s, p.nome, to_char(r.%s, 'YYYY-MM-DD'), %s, r.%s, r.%s
		 FROM %s r
		 LEFT JOIN pacientes p ON p.id = r.%s`,
		v.residentCol, v.dateCol, v.timeExpr, v.notesCol, v.respCol, v.table, v.residentCol)

	args := []interface{}{}
	if filters.PacienteID != nil {
		args = append(args, *filters.PacienteID)
		query += fmt.Sprintf(" WHERE r.%s = $%d", v.residentCol, len(args))
	}
	if filters.Data != nil {
		args = append(args, *filters.Data)
		clause := " WHERE"
		if len(args) > 1 {
			clause = " AND"
		}
		query += fmt.Sprintf("%s r.%s = $%d", clause, v.dateCol, len(args))
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.FeedRow{}
	for rows.Next() {
		row := models.FeedRow{Tipo: v.tipo}
		if err := rows.Scan(&row.ID, &row.PacienteID, &row.PacienteNome, &row.Data,
			&row.Hora, &row.Observacoes, &row.Responsavel); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// filterFeedByKind applies the tipo predicate after concatenation. A nil kind
// leaves the set untouched.
func filterFeedByKind(rows []models.FeedRow, kind *string) []models.FeedRow {
	if kind == nil {
		return rows
	}
	out := rows[:0]
	for _, r := range rows {
		if r.Tipo == *kind {
			out = append(out, r)
		}
	}
	return out
}

// sortFeed orders rows by date descending, tie-broken by id descending. Rows
// without a date sort last. Dates are YYYY-MM-DD strings so lexicographic
// comparison matches chronological order.
func sortFeed(rows []models.FeedRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch {
		case a.Data == nil && b.Data == nil:
			return a.ID > b.ID
		case a.Data == nil:
			return false
		case b.Data == nil:
			return true
		case *a.Data != *b.Data:
			return *a.Data > *b.Data
		}
		return a.ID > b.ID
	})
}
