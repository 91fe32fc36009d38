package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/casaverde/casa-verde-api/models"
)

var testSecret = []byte("unit-test-secret")

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	assert.NoError(t, err)
	return signed
}

func validClaims(role string, ttl time.Duration) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"id":    int64(7),
		"nome":  "Maria Souza",
		"email": "maria@casaverde.app",
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
}

func TestMiddleware(t *testing.T) {
	auth := Auth{Secret: testSecret}

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "missing header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "header without bearer prefix",
			authHeader:     "Token abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "garbage token",
			authHeader:     "Bearer not-a-token",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "token signed with wrong secret",
			authHeader:     "Bearer " + signToken(t, []byte("other-secret"), validClaims("user", time.Hour)),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer " + signToken(t, testSecret, validClaims("user", -time.Hour)),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "unknown role",
			authHeader:     "Bearer " + signToken(t, testSecret, validClaims("superuser", time.Hour)),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "valid user token",
			authHeader:     "Bearer " + signToken(t, testSecret, validClaims("user", time.Hour)),
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "valid admin token",
			authHeader:     "Bearer " + signToken(t, testSecret, validClaims("admin", time.Hour)),
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				claims, ok := ClaimsFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, int64(7), claims.UserID)
				assert.Equal(t, "Maria Souza", claims.Nome)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/api/pacientes", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			auth.Middleware(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Contains(t, w.Body.String(), "Token não fornecido.")
			}
			if tt.expectedStatus == http.StatusForbidden {
				assert.Contains(t, w.Body.String(), "Token inválido.")
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	auth := Auth{Secret: testSecret}

	tests := []struct {
		name           string
		role           string
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "admin passes",
			role:           "admin",
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "user is denied",
			role:           "user",
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("DELETE", "/api/pacientes/1", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, validClaims(tt.role, time.Hour)))
			w := httptest.NewRecorder()

			auth.RequireAdmin(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
			if !tt.expectNext {
				assert.Contains(t, w.Body.String(), "Acesso negado. Permissão de administrador necessária.")
			}
		})
	}
}

func TestVerifyRejectsUnexpectedAlgorithm(t *testing.T) {
	auth := Auth{Secret: testSecret}

	// unsigned token, alg none
	token := jwt.NewWithClaims(jwt.SigningMethodNone, validClaims("admin", time.Hour))
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = auth.Verify(signed)
	assert.Error(t, err)
}

func TestRoleSatisfies(t *testing.T) {
	assert.True(t, models.RoleAdmin.Satisfies(models.RoleAdmin))
	assert.True(t, models.RoleAdmin.Satisfies(models.RoleUser))
	assert.True(t, models.RoleUser.Satisfies(models.RoleUser))
	assert.False(t, models.RoleUser.Satisfies(models.RoleAdmin))
	assert.False(t, models.Role("superuser").Valid())
}
