package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/casaverde/casa-verde-api/config"
)

var a App

func executeRequest(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)
	return rr
}

func checkResponseCode(t *testing.T, expected, actual int) {
	if expected != actual {
		t.Errorf("Expected response code %d. Got %d\n", expected, actual)
	}
}

func newTestRouter() {
	a.Config = config.Config{JWTSecret: "unit-test-secret"}
	a.Location = time.UTC
	a.Router = a.New()
}

func TestUnknownRoute(t *testing.T) {
	newTestRouter()
	req, _ := http.NewRequest("GET", "/asdf", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusNotFound, response.Code)
}

func TestHealthCheckRoute(t *testing.T) {
	newTestRouter()
	req, _ := http.NewRequest("GET", "/health", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusOK, response.Code)

	if !strings.Contains(response.Body.String(), "alive") {
		t.Errorf("Expected 'alive' in the response. Got '%s'", response.Body.String())
	}
}

func TestResidentsRouteUnauthorized(t *testing.T) {
	newTestRouter()
	req, _ := http.NewRequest("GET", "/api/pacientes", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusUnauthorized, response.Code)
}

func TestFeedRouteUnauthorized(t *testing.T) {
	newTestRouter()
	req, _ := http.NewRequest("GET", "/api/relatorios", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusUnauthorized, response.Code)
}

func TestDailyStatusRouteUnauthorized(t *testing.T) {
	newTestRouter()
	req, _ := http.NewRequest("GET", "/api/dashboard/daily-status", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusUnauthorized, response.Code)
}
