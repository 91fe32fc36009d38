package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/casaverde/casa-verde-api/databases/mocks"
	"github.com/casaverde/casa-verde-api/models"
)

type fakeUploader struct {
	lastName    string
	lastContent string
	url         string
	err         error
}

func (f *fakeUploader) UploadDocument(_ context.Context, name, content string) (string, error) {
	f.lastName = name
	f.lastContent = content
	return f.url, f.err
}

func archiveWithMocks(t *testing.T, uploader *fakeUploader) (Archive, *mocks.ResidentDatabase) {
	t.Helper()
	rdb := mocks.NewResidentDatabase(t)
	drdb := mocks.NewDailyReportDatabase(t)
	nedb := mocks.NewNursingEvolutionDatabase(t)
	tedb := mocks.NewTechnicianEvolutionDatabase(t)
	hdb := mocks.NewHygieneDatabase(t)

	drdb.On("FindByResident", mock.Anything, mock.AnythingOfType("int64")).Return([]models.DailyReport{
		{ID: 1, PacienteID: 3, Data: "2026-08-27", Hora: "08:00", Periodo: "manhã"},
	}, nil).Maybe()
	nedb.On("FindByResident", mock.Anything, mock.AnythingOfType("int64")).Return([]models.NursingEvolution{}, nil).Maybe()
	tedb.On("FindByResident", mock.Anything, mock.AnythingOfType("int64")).Return([]models.TechnicianEvolution{}, nil).Maybe()
	hdb.On("FindByResident", mock.Anything, mock.AnythingOfType("int64")).Return([]models.HygieneLog{}, nil).Maybe()

	arch := Archive{RDB: rdb, DRDB: drdb, NEDB: nedb, TEDB: tedb, HDB: hdb}
	if uploader != nil {
		arch.Uploader = uploader
	}
	return arch, rdb
}

func archiveRequest(id string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest("POST", "/api/pacientes/"+id+"/arquivar", nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	return req, httptest.NewRecorder()
}

func TestArchiveResidentHandler(t *testing.T) {
	uploader := &fakeUploader{url: "https://res.cloudinary.com/casaverde/raw/historico_3_dona_cida.txt"}
	arch, rdb := archiveWithMocks(t, uploader)

	rdb.On("FindByID", mock.Anything, int64(3)).Return(&models.Resident{
		ID: 3, Nome: "Dona Cida", Status: models.ResidentStatusActive,
	}, nil)
	rdb.On("SetStatus", mock.Anything, int64(3), models.ResidentStatusArchived).Return(nil)

	req, w := archiveRequest("3")
	arch.ArchiveResidentHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "arquivado com sucesso")
	assert.Contains(t, w.Body.String(), uploader.url)
	assert.Contains(t, uploader.lastName, "historico_3")
	assert.Contains(t, uploader.lastContent, "HISTÓRICO DO RESIDENTE: Dona Cida")
	assert.Contains(t, uploader.lastContent, "RELATÓRIOS DIÁRIOS (1)")
}

func TestArchiveResidentHandlerNotFound(t *testing.T) {
	arch, rdb := archiveWithMocks(t, &fakeUploader{})

	rdb.On("FindByID", mock.Anything, int64(99)).Return(nil, sql.ErrNoRows)

	req, w := archiveRequest("99")
	arch.ArchiveResidentHandler(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Residente não encontrado.")
}

func TestArchiveResidentHandlerAlreadyArchived(t *testing.T) {
	arch, rdb := archiveWithMocks(t, &fakeUploader{})

	rdb.On("FindByID", mock.Anything, int64(3)).Return(&models.Resident{
		ID: 3, Nome: "Dona Cida", Status: models.ResidentStatusArchived,
	}, nil)

	req, w := archiveRequest("3")
	arch.ArchiveResidentHandler(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Residente já está arquivado.")
}

func TestArchiveResidentHandlerUploaderNotConfigured(t *testing.T) {
	arch, _ := archiveWithMocks(t, nil)

	req, w := archiveRequest("3")
	arch.ArchiveResidentHandler(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Serviço de arquivamento não configurado.")
}

func TestArchiveResidentHandlerUploadFailureKeepsResidentActive(t *testing.T) {
	arch, rdb := archiveWithMocks(t, &fakeUploader{err: assert.AnError})

	rdb.On("FindByID", mock.Anything, int64(3)).Return(&models.Resident{
		ID: 3, Nome: "Dona Cida", Status: models.ResidentStatusActive,
	}, nil)
	// SetStatus must not be called when the upload fails

	req, w := archiveRequest("3")
	arch.ArchiveResidentHandler(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	rdb.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
}
