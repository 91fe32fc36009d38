package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/casaverde/casa-verde-api/api"
	"github.com/casaverde/casa-verde-api/config"
	"github.com/casaverde/casa-verde-api/databases"
	"github.com/casaverde/casa-verde-api/models"
)

// tokenTTL matches the original contract: sessions last one shift plus slack.
const tokenTTL = 8 * time.Hour

// AuthHandler handles registration and login
type AuthHandler struct {
	DB     databases.UserDatabase
	Secret []byte
}

type registerRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginResponse struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	Usuario *models.Claims `json:"usuario"`
}

// RegisterHandler creates a new user with the default role
func (h AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("Todos os campos (nome, email, senha) são obrigatórios.", http.StatusBadRequest, w, err)
		return
	}
	if req.Nome == "" || req.Email == "" || req.Senha == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Todos os campos (nome, email, senha) são obrigatórios."})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		config.ErrorStatus("Erro interno ao registrar usuário.", http.StatusInternalServerError, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	user, err := h.DB.Insert(ctx, req.Nome, strings.TrimSpace(strings.ToLower(req.Email)), string(hash))
	if err != nil {
		if errors.Is(err, databases.ErrDuplicateEmail) {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Este email já está em uso."})
			return
		}
		config.ErrorStatus("Erro interno ao registrar usuário.", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(user)
}

// LoginHandler verifies the credentials and returns a signed token
func (h AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("Email e senha são obrigatórios.", http.StatusBadRequest, w, err)
		return
	}
	if req.Email == "" || req.Senha == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Email e senha são obrigatórios."})
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	user, err := h.DB.FindByEmail(ctx, strings.TrimSpace(strings.ToLower(req.Email)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Email ou senha inválidos."})
			return
		}
		config.ErrorStatus("Erro interno no servidor.", http.StatusInternalServerError, w, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(req.Senha)); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Email ou senha inválidos."})
		return
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"id":    user.ID,
		"nome":  user.Nome,
		"email": user.Email,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.Secret)
	if err != nil {
		config.ErrorStatus("Erro interno no servidor.", http.StatusInternalServerError, w, err)
		return
	}

	zap.S().Infow("user logged in", "userId", user.ID)
	_ = json.NewEncoder(w).Encode(loginResponse{
		Message: "Login bem-sucedido!",
		Token:   signed,
		Usuario: &models.Claims{UserID: user.ID, Nome: user.Nome, Email: user.Email, Role: user.Role},
	})
}
