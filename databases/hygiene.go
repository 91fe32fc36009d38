package databases

import (
	"context"
	"database/sql"

	"github.com/casaverde/casa-verde-api/models"
)

const hygieneColumns = `id, residente_id, usuario_id, to_char(data_ocorrencia, 'YYYY-MM-DD'),
	hora_ocorrencia::text, banho_corporal, banho_parcial, higiene_intima, observacoes, responsavel_nome`

// HygieneDatabase contains the methods to use with the higiene_relatorios table
type HygieneDatabase interface {
	FindByResident(ctx context.Context, residentID int64) ([]models.HygieneLog, error)
	Insert(ctx context.Context, log models.HygieneLog) (*models.HygieneLog, error)
}

type hygieneDatabase struct {
	db *sql.DB
}

// NewHygieneDatabase initializes a new instance of hygiene database with the provided db connection
func NewHygieneDatabase(db *sql.DB) HygieneDatabase {
	return &hygieneDatabase{db: db}
}

func scanHygieneLog(row interface{ Scan(...interface{}) error }) (*models.HygieneLog, error) {
	l := &models.HygieneLog{}
	err := row.Scan(&l.ID, &l.ResidenteID, &l.UsuarioID, &l.DataOcorrencia, &l.HoraOcorrencia,
		&l.BanhoCorporal, &l.BanhoParcial, &l.HigieneIntima, &l.Observacoes, &l.ResponsavelNome)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (c *hygieneDatabase) FindByResident(ctx context.Context, residentID int64) ([]models.HygieneLog, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT `+hygieneColumns+` FROM higiene_relatorios
		 WHERE residente_id = $1 ORDER BY data_ocorrencia DESC, hora_ocorrencia DESC`, residentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []models.HygieneLog{}
	for rows.Next() {
		l, err := scanHygieneLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *l)
	}
	return logs, rows.Err()
}

func (c *hygieneDatabase) Insert(ctx context.Context, log models.HygieneLog) (*models.HygieneLog, error) {
	return scanHygieneLog(c.db.QueryRowContext(ctx,
		`INSERT INTO higiene_relatorios (residente_id, usuario_id, data_ocorrencia, hora_ocorrencia,
			banho_corporal, banho_parcial, higiene_intima, observacoes, responsavel_nome)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+hygieneColumns,
		log.ResidenteID, log.UsuarioID, log.DataOcorrencia, log.HoraOcorrencia, log.BanhoCorporal,
		log.BanhoParcial, log.HigieneIntima, log.Observacoes, log.ResponsavelNome))
}
