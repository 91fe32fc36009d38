package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/casaverde/casa-verde-api/models"
)

// Auth verifies bearer tokens and enforces the role policy. Verification is
// stateless: every request is checked independently against the shared secret,
// nothing is stored server-side.
type Auth struct {
	Secret []byte
}

// Middleware rejects requests without a valid bearer token and attaches the
// verified claims to the request context for downstream handlers.
func (a Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		token := bearerToken(r)
		if token == "" {
			writeAuthError(w, http.StatusUnauthorized, "Token não fornecido.")
			return
		}

		claims, err := a.Verify(token)
		if err != nil {
			zap.S().Debugw("token rejected", "url", r.URL.Path, "error", err)
			writeAuthError(w, http.StatusForbidden, "Token inválido.")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// RequireAdmin gates an operation behind the admin role. It must wrap a
// handler already behind Middleware; the wrapped handler is never invoked for
// a caller whose role is insufficient.
func (a Auth) RequireAdmin(next http.Handler) http.Handler {
	return a.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			writeAuthError(w, http.StatusForbidden, "Acesso negado. Permissão de administrador necessária.")
			return
		}
		if !claims.Role.Satisfies(models.RoleAdmin) {
			zap.S().Infow("admin access denied", "url", r.URL.Path, "role", claims.Role)
			writeAuthError(w, http.StatusForbidden, "Acesso negado. Permissão de administrador necessária.")
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// Verify checks the token signature and expiry and extracts the identity
// claims. It accepts only HS256, the method the login handler signs with.
func (a Auth) Verify(tokenString string) (*models.Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.Secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	claims := &models.Claims{}
	if id, ok := mapClaims["id"].(float64); ok {
		claims.UserID = int64(id)
	}
	if nome, ok := mapClaims["nome"].(string); ok {
		claims.Nome = nome
	}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = models.Role(role)
	}
	if !claims.Role.Valid() {
		return nil, fmt.Errorf("unknown role %q", claims.Role)
	}
	return claims, nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: message})
}
