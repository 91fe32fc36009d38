package databases

import (
	"context"
	"database/sql"

	"github.com/casaverde/casa-verde-api/models"
)

const nursingEvolutionColumns = `id, paciente_id, usuario_id, to_char(data_ocorrencia, 'YYYY-MM-DD'),
	grau_dependencia, mobilidade, nivel_consciencia, pele_e_mucosa, lesao_pressao_local,
	padrao_respiratorio, alteracoes_respiratorias, tosse, alimentacao_via, alimentacao_aceitacao,
	eliminacao_vesical, eliminacao_intestinal, constipacao_dias, sono_repouso, estado_geral,
	dor_status, dor_grau, dor_local, observacoes, responsavel_nome`

// NursingEvolutionDatabase contains the methods to use with the evolucao_enfermagem table
type NursingEvolutionDatabase interface {
	FindByResident(ctx context.Context, residentID int64) ([]models.NursingEvolution, error)
	Insert(ctx context.Context, ev models.NursingEvolution) (*models.NursingEvolution, error)
}

type nursingEvolutionDatabase struct {
	db *sql.DB
}

// NewNursingEvolutionDatabase initializes a new instance of nursing evolution database with the provided db connection
func NewNursingEvolutionDatabase(db *sql.DB) NursingEvolutionDatabase {
	return &nursingEvolutionDatabase{db: db}
}

func scanNursingEvolution(row interface{ Scan(...interface{}) error }) (*models.NursingEvolution, error) {
	e := &models.NursingEvolution{}
	err := row.Scan(&e.ID, &e.PacienteID, &e.UsuarioID, &e.DataOcorrencia,
		&e.GrauDependencia, &e.Mobilidade, &e.NivelConsciencia, &e.PeleEMucosa, &e.LesaoPressaoLocal,
		&e.PadraoRespiratorio, &e.AlteracoesRespiratorias, &e.Tosse, &e.AlimentacaoVia,
		&e.AlimentacaoAceitacao, &e.EliminacaoVesical, &e.EliminacaoIntestinal, &e.ConstipacaoDias,
		&e.SonoRepouso, &e.EstadoGeral, &e.DorStatus, &e.DorGrau, &e.DorLocal, &e.Observacoes,
		&e.ResponsavelNome)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (c *nursingEvolutionDatabase) FindByResident(ctx context.Context, residentID int64) ([]models.NursingEvolution, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT `+nursingEvolutionColumns+` FROM evolucao_enfermagem
		 WHERE paciente_id = $1 ORDER BY data_ocorrencia DESC, id DESC`, residentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	evolutions := []models.NursingEvolution{}
	for rows.Next() {
		e, err := scanNursingEvolution(rows)
		if err != nil {
			return nil, err
		}
		evolutions = append(evolutions, *e)
	}
	return evolutions, rows.Err()
}

func (c *nursingEvolutionDatabase) Insert(ctx context.Context, ev models.NursingEvolution) (*models.NursingEvolution, error) {
	return scanNursingEvolution(c.db.QueryRowContext(ctx,
		`INSERT INTO evolucao_enfermagem (
			paciente_id, usuario_id, data_ocorrencia, grau_dependencia, mobilidade, nivel_consciencia,
			pele_e_mucosa, lesao_pressao_local, padrao_respiratorio, alteracoes_respiratorias, tosse,
			alimentacao_via, alimentacao_aceitacao, eliminacao_vesical, eliminacao_intestinal,
			constipacao_dias, sono_repouso, estado_geral, dor_status, dor_grau, dor_local,
			observacoes, responsavel_nome
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		 RETURNING `+nursingEvolutionColumns,
		ev.PacienteID, ev.UsuarioID, ev.DataOcorrencia, ev.GrauDependencia, ev.Mobilidade,
		ev.NivelConsciencia, ev.PeleEMucosa, ev.LesaoPressaoLocal, ev.PadraoRespiratorio,
		ev.AlteracoesRespiratorias, ev.Tosse, ev.AlimentacaoVia, ev.AlimentacaoAceitacao,
		ev.EliminacaoVesical, ev.EliminacaoIntestinal, ev.ConstipacaoDias, ev.SonoRepouso,
		ev.EstadoGeral, ev.DorStatus, ev.DorGrau, ev.DorLocal, ev.Observacoes, ev.ResponsavelNome))
}
