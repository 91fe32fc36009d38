package databases

import (
	"context"
	"database/sql"

	"github.com/casaverde/casa-verde-api/models"
)

const residentColumns = `id, nome, idade, quarto, diagnostico, medicamentos, contato_emergencia,
	to_char(data_internacao, 'YYYY-MM-DD'), responsavel_familiar_nome, responsavel_familiar_contato,
	link_medicamentos, status`

// ResidentDatabase contains the methods to use with the pacientes table
type ResidentDatabase interface {
	FindAllActive(ctx context.Context) ([]models.Resident, error)
	FindByID(ctx context.Context, id int64) (*models.Resident, error)
	Insert(ctx context.Context, in models.ResidentInput) (*models.Resident, error)
	Update(ctx context.Context, id int64, in models.ResidentInput) (*models.Resident, error)
	Delete(ctx context.Context, id int64) (int64, error)
	SetStatus(ctx context.Context, id int64, status string) error
}

type residentDatabase struct {
	db *sql.DB
}

// NewResidentDatabase initializes a new instance of resident database with the provided db connection
func NewResidentDatabase(db *sql.DB) ResidentDatabase {
	return &residentDatabase{db: db}
}

func scanResident(row interface{ Scan(...interface{}) error }) (*models.Resident, error) {
	r := &models.Resident{}
	err := row.Scan(&r.ID, &r.Nome, &r.Idade, &r.Quarto, &r.Diagnostico, &r.Medicamentos,
		&r.ContatoEmergencia, &r.DataInternacao, &r.ResponsavelFamiliarNome,
		&r.ResponsavelFamiliarContato, &r.LinkMedicamentos, &r.Status)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (c *residentDatabase) FindAllActive(ctx context.Context) ([]models.Resident, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT `+residentColumns+` FROM pacientes WHERE status = 'ativo' ORDER BY nome`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	residents := []models.Resident{}
	for rows.Next() {
		r, err := scanResident(rows)
		if err != nil {
			return nil, err
		}
		residents = append(residents, *r)
	}
	return residents, rows.Err()
}

func (c *residentDatabase) FindByID(ctx context.Context, id int64) (*models.Resident, error) {
	return scanResident(c.db.QueryRowContext(ctx,
		`SELECT `+residentColumns+` FROM pacientes WHERE id = $1`, id))
}

func (c *residentDatabase) Insert(ctx context.Context, in models.ResidentInput) (*models.Resident, error) {
	return scanResident(c.db.QueryRowContext(ctx,
		`INSERT INTO pacientes (nome, idade, quarto, diagnostico, medicamentos, contato_emergencia,
			data_internacao, responsavel_familiar_nome, responsavel_familiar_contato, link_medicamentos)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+residentColumns,
		in.Nome, in.Idade, in.Quarto, in.Diagnostico, in.Medicamentos, in.ContatoEmergencia,
		in.DataInternacao, in.ResponsavelFamiliarNome, in.ResponsavelFamiliarContato, in.LinkMedicamentos))
}

func (c *residentDatabase) Update(ctx context.Context, id int64, in models.ResidentInput) (*models.Resident, error) {
	return scanResident(c.db.QueryRowContext(ctx,
		`UPDATE pacientes
		 SET nome = $1, idade = $2, quarto = $3, diagnostico = $4, medicamentos = $5,
			contato_emergencia = $6, data_internacao = $7, responsavel_familiar_nome = $8,
			responsavel_familiar_contato = $9, link_medicamentos = $10
		 WHERE id = $11
		 RETURNING `+residentColumns,
		in.Nome, in.Idade, in.Quarto, in.Diagnostico, in.Medicamentos, in.ContatoEmergencia,
		in.DataInternacao, in.ResponsavelFamiliarNome, in.ResponsavelFamiliarContato,
		in.LinkMedicamentos, id))
}

func (c *residentDatabase) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := c.db.ExecContext(ctx, `DELETE FROM pacientes WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (c *residentDatabase) SetStatus(ctx context.Context, id int64, status string) error {
	_, err := c.db.ExecContext(ctx, `UPDATE pacientes SET status = $1 WHERE id = $2`, status, id)
	return err
}
