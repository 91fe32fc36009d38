package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/casaverde/casa-verde-api/api"
	"github.com/casaverde/casa-verde-api/databases/mocks"
	"github.com/casaverde/casa-verde-api/models"
)

func requestWithClaims(method, target string, body string, claims *models.Claims) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if claims != nil {
		req = req.WithContext(api.WithClaims(req.Context(), claims))
	}
	return req
}

func TestCreateEvolutionHandlerAuthorFromClaims(t *testing.T) {
	claims := &models.Claims{UserID: 7, Nome: "Maria Souza", Email: "maria@casaverde.app", Role: models.RoleUser}

	mockDB := mocks.NewNursingEvolutionDatabase(t)
	mockDB.On("Insert", mock.Anything, mock.MatchedBy(func(ev models.NursingEvolution) bool {
		return ev.PacienteID == 1 &&
			ev.UsuarioID == 7 &&
			ev.ResponsavelNome == "Maria Souza" &&
			ev.ConstipacaoDias != nil && *ev.ConstipacaoDias == 3 &&
			ev.DorGrau == nil
	})).Return(&models.NursingEvolution{ID: 11, PacienteID: 1, UsuarioID: 7, ResponsavelNome: "Maria Souza"}, nil)

	handler := NursingEvolution{DB: mockDB}

	body := `{"data_ocorrencia": "2026-08-27", "estado_geral": "estável", "constipacao_dias": "3", "dor_grau": ""}`
	req := requestWithClaims("POST", "/api/pacientes/1/evolucoes-enfermagem", body, claims)
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	w := httptest.NewRecorder()

	handler.CreateEvolutionHandler(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var got models.NursingEvolution
	err := json.NewDecoder(w.Body).Decode(&got)
	assert.NoError(t, err)
	assert.Equal(t, int64(11), got.ID)
}

func TestCreateEvolutionHandlerWithoutClaims(t *testing.T) {
	mockDB := mocks.NewNursingEvolutionDatabase(t)

	handler := NursingEvolution{DB: mockDB}

	req := requestWithClaims("POST", "/api/pacientes/1/evolucoes-enfermagem", `{"data_ocorrencia": "2026-08-27"}`, nil)
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	w := httptest.NewRecorder()

	handler.CreateEvolutionHandler(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestParseOptionalInt(t *testing.T) {
	assert.Nil(t, parseOptionalInt(nil))
	assert.Nil(t, parseOptionalInt(strPtr("")))
	assert.Nil(t, parseOptionalInt(strPtr("abc")))

	got := parseOptionalInt(strPtr("5"))
	assert.NotNil(t, got)
	assert.Equal(t, 5, *got)
}
