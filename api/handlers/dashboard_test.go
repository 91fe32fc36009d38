package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/casaverde/casa-verde-api/databases/mocks"
	"github.com/casaverde/casa-verde-api/models"
)

func TestDailyStatusHandlerExplicitDate(t *testing.T) {
	rows := []models.DailyStatusRow{
		{ID: 1, Nome: "Dona Cida", ReportID: int64Ptr(42), HasDaily: true},
		{ID: 2, Nome: "Seu João", ReportID: nil, HasDaily: false},
	}

	mockDB := mocks.NewDashboardDatabase(t)
	mockDB.On("DailyStatus", mock.Anything, "2026-08-27").Return(rows, nil)

	handler := Dashboard{DB: mockDB, Location: time.UTC}

	req := httptest.NewRequest("GET", "/api/dashboard/daily-status?date=2026-08-27", nil)
	w := httptest.NewRecorder()

	handler.DailyStatusHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Cache-Control"), "no-store")

	var resp models.DailyStatusResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.NotNil(t, resp.Date)
	assert.Equal(t, "2026-08-27", *resp.Date)
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Data, 2)
	assert.True(t, resp.Data[0].HasDaily)
	assert.False(t, resp.Data[1].HasDaily)
}

func TestDailyStatusHandlerDefaultsToFacilityToday(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	assert.NoError(t, err)

	mockDB := mocks.NewDashboardDatabase(t)
	// the default date is computed at request time, so match any well-formed date
	mockDB.On("DailyStatus", mock.Anything, mock.MatchedBy(func(date string) bool {
		_, err := time.Parse("2006-01-02", date)
		return err == nil
	})).Return([]models.DailyStatusRow{}, nil)

	handler := Dashboard{DB: mockDB, Location: loc}

	req := httptest.NewRequest("GET", "/api/dashboard/daily-status", nil)
	w := httptest.NewRecorder()

	handler.DailyStatusHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.DailyStatusResponse
	err = json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	// date is null in the envelope when the facility default was used
	assert.Nil(t, resp.Date)
	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Data)
}

func TestDailyStatusHandlerRejectsMalformedDate(t *testing.T) {
	mockDB := mocks.NewDashboardDatabase(t)

	handler := Dashboard{DB: mockDB, Location: time.UTC}

	req := httptest.NewRequest("GET", "/api/dashboard/daily-status?date=27-08-2026", nil)
	w := httptest.NewRecorder()

	handler.DailyStatusHandler(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var got models.ErrorResponse
	err := json.NewDecoder(w.Body).Decode(&got)
	assert.NoError(t, err)
	assert.Equal(t, `Parâmetro "date" inválido. Use o formato YYYY-MM-DD.`, got.Error)
}

func TestDailyStatusHandlerStoreError(t *testing.T) {
	mockDB := mocks.NewDashboardDatabase(t)
	mockDB.On("DailyStatus", mock.Anything, "2026-08-27").Return(nil, assert.AnError)

	handler := Dashboard{DB: mockDB, Location: time.UTC}

	req := httptest.NewRequest("GET", "/api/dashboard/daily-status?date=2026-08-27", nil)
	w := httptest.NewRecorder()

	handler.DailyStatusHandler(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
