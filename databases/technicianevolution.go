package databases

import (
	"context"
	"database/sql"

	"github.com/casaverde/casa-verde-api/models"
)

const technicianEvolutionColumns = `id, residente_id, usuario_id, to_char(data_ocorrencia, 'YYYY-MM-DD'),
	turno, nivel_consciencia, pele_mucosa, lpp_local, padrao_respiratorio, fr, em_uso_o2, tosse,
	alimentacao_via, alimentacao_aceitacao, sono_repouso, cuidado_banho, cuidado_deambulacao,
	cuidado_curativo, curativo_local, cuidados_outros, observacoes, responsavel_nome`

// TechnicianEvolutionDatabase contains the methods to use with the evolucao_tecnico table
type TechnicianEvolutionDatabase interface {
	FindByResident(ctx context.Context, residentID int64) ([]models.TechnicianEvolution, error)
	Insert(ctx context.Context, ev models.TechnicianEvolution) (*models.TechnicianEvolution, error)
}

type technicianEvolutionDatabase struct {
	db *sql.DB
}

// NewTechnicianEvolutionDatabase initializes a new instance of technician evolution database with the provided db connection
func NewTechnicianEvolutionDatabase(db *sql.DB) TechnicianEvolutionDatabase {
	return &technicianEvolutionDatabase{db: db}
}

func scanTechnicianEvolution(row interface{ Scan(...interface{}) error }) (*models.TechnicianEvolution, error) {
	e := &models.TechnicianEvolution{}
	err := row.Scan(&e.ID, &e.ResidenteID, &e.UsuarioID, &e.DataOcorrencia, &e.Turno,
		&e.NivelConsciencia, &e.PeleMucosa, &e.LppLocal, &e.PadraoRespiratorio, &e.Fr, &e.EmUsoO2,
		&e.Tosse, &e.AlimentacaoVia, &e.AlimentacaoAceitacao, &e.SonoRepouso, &e.CuidadoBanho,
		&e.CuidadoDeambulacao, &e.CuidadoCurativo, &e.CurativoLocal, &e.CuidadosOutros,
		&e.Observacoes, &e.ResponsavelNome)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (c *technicianEvolutionDatabase) FindByResident(ctx context.Context, residentID int64) ([]models.TechnicianEvolution, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT `+technicianEvolutionColumns+` FROM evolucao_tecnico
		 WHERE residente_id = $1 ORDER BY data_ocorrencia DESC, id DESC`, residentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	evolutions := []models.TechnicianEvolution{}
	for rows.Next() {
		e, err := scanTechnicianEvolution(rows)
		if err != nil {
			return nil, err
		}
		evolutions = append(evolutions, *e)
	}
	return evolutions, rows.Err()
}

func (c *technicianEvolutionDatabase) Insert(ctx context.Context, ev models.TechnicianEvolution) (*models.TechnicianEvolution, error) {
	return scanTechnicianEvolution(c.db.QueryRowContext(ctx,
		`INSERT INTO evolucao_tecnico (
			residente_id, usuario_id, data_ocorrencia, turno, nivel_consciencia, pele_mucosa, lpp_local,
			padrao_respiratorio, fr, em_uso_o2, tosse, alimentacao_via, alimentacao_aceitacao,
			sono_repouso, cuidado_banho, cuidado_deambulacao, cuidado_curativo, curativo_local,
			cuidados_outros, observacoes, responsavel_nome
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		 RETURNING `+technicianEvolutionColumns,
		ev.ResidenteID, ev.UsuarioID, ev.DataOcorrencia, ev.Turno, ev.NivelConsciencia, ev.PeleMucosa,
		ev.LppLocal, ev.PadraoRespiratorio, ev.Fr, ev.EmUsoO2, ev.Tosse, ev.AlimentacaoVia,
		ev.AlimentacaoAceitacao, ev.SonoRepouso, ev.CuidadoBanho, ev.CuidadoDeambulacao,
		ev.CuidadoCurativo, ev.CurativoLocal, ev.CuidadosOutros, ev.Observacoes, ev.ResponsavelNome))
}
