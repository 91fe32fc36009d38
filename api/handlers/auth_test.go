package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/casaverde/casa-verde-api/databases"
	"github.com/casaverde/casa-verde-api/databases/mocks"
	"github.com/casaverde/casa-verde-api/models"
)

var testSecret = []byte("unit-test-secret")

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockUser       *models.User
		mockError      error
		expectInsert   bool
		expectedStatus int
		expectedBody   string
	}{
		{
			name:         "successful registration",
			body:         `{"nome": "Maria Souza", "email": "Maria@CasaVerde.app", "senha": "s3nh4"}`,
			mockUser:     &models.User{ID: 1, Nome: "Maria Souza", Email: "maria@casaverde.app", Role: models.RoleUser},
			expectInsert: true,

			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing fields",
			body:           `{"email": "maria@casaverde.app"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Todos os campos (nome, email, senha) são obrigatórios.",
		},
		{
			name:           "duplicate email",
			body:           `{"nome": "Maria Souza", "email": "maria@casaverde.app", "senha": "s3nh4"}`,
			mockError:      databases.ErrDuplicateEmail,
			expectInsert:   true,
			expectedStatus: http.StatusConflict,
			expectedBody:   "Este email já está em uso.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := mocks.NewUserDatabase(t)
			if tt.expectInsert {
				// emails are normalized to lower case before hitting the store
				mockDB.On("Insert", mock.Anything, "Maria Souza", "maria@casaverde.app", mock.AnythingOfType("string")).
					Return(tt.mockUser, tt.mockError)
			}

			handler := AuthHandler{DB: mockDB, Secret: testSecret}

			req := httptest.NewRequest("POST", "/api/usuarios/registrar", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.RegisterHandler(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			if tt.expectedStatus == http.StatusCreated {
				var got models.User
				err := json.NewDecoder(w.Body).Decode(&got)
				assert.NoError(t, err)
				assert.Equal(t, "maria@casaverde.app", got.Email)
				// the password hash never leaves the server
				assert.NotContains(t, w.Body.String(), "senha")
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3nh4"), bcrypt.MinCost)
	assert.NoError(t, err)

	user := &models.User{
		ID:        1,
		Nome:      "Maria Souza",
		Email:     "maria@casaverde.app",
		SenhaHash: string(hash),
		Role:      models.RoleUser,
	}

	tests := []struct {
		name           string
		body           string
		mockUser       *models.User
		mockError      error
		expectFind     bool
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "successful login",
			body:           `{"email": "maria@casaverde.app", "senha": "s3nh4"}`,
			mockUser:       user,
			expectFind:     true,
			expectedStatus: http.StatusOK,
			expectedBody:   "Login bem-sucedido!",
		},
		{
			name:           "unknown email",
			body:           `{"email": "nobody@casaverde.app", "senha": "s3nh4"}`,
			mockError:      sql.ErrNoRows,
			expectFind:     true,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Email ou senha inválidos.",
		},
		{
			name:           "wrong password",
			body:           `{"email": "maria@casaverde.app", "senha": "wrong"}`,
			mockUser:       user,
			expectFind:     true,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Email ou senha inválidos.",
		},
		{
			name:           "missing fields",
			body:           `{"email": "maria@casaverde.app"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Email e senha são obrigatórios.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := mocks.NewUserDatabase(t)
			if tt.expectFind {
				mockDB.On("FindByEmail", mock.Anything, mock.AnythingOfType("string")).
					Return(tt.mockUser, tt.mockError)
			}

			handler := AuthHandler{DB: mockDB, Secret: testSecret}

			req := httptest.NewRequest("POST", "/api/usuarios/login", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.LoginHandler(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestLoginHandlerTokenClaims(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3nh4"), bcrypt.MinCost)
	assert.NoError(t, err)

	mockDB := mocks.NewUserDatabase(t)
	mockDB.On("FindByEmail", mock.Anything, "maria@casaverde.app").Return(&models.User{
		ID:        7,
		Nome:      "Maria Souza",
		Email:     "maria@casaverde.app",
		SenhaHash: string(hash),
		Role:      models.RoleAdmin,
	}, nil)

	handler := AuthHandler{DB: mockDB, Secret: testSecret}

	req := httptest.NewRequest("POST", "/api/usuarios/login",
		bytes.NewBufferString(`{"email": "maria@casaverde.app", "senha": "s3nh4"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.LoginHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token   string         `json:"token"`
		Usuario *models.Claims `json:"usuario"`
	}
	err = json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(7), resp.Usuario.UserID)
	assert.Equal(t, models.RoleAdmin, resp.Usuario.Role)

	// the token must verify against the same secret and carry the identity
	parsed, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
		return testSecret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	assert.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, float64(7), claims["id"])
	assert.Equal(t, "admin", claims["role"])
}
