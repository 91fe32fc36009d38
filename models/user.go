package models

import "time"

// Role is the closed set of access levels. Admin satisfies every requirement,
// user satisfies only user-level requirements.
type Role string

// The two roles known to the system.
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Satisfies reports whether r meets the required role.
func (r Role) Satisfies(required Role) bool {
	if r == RoleAdmin {
		return true
	}
	return r == required
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User holds a row of the usuarios table
type User struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	SenhaHash string    `json:"-"`
	Role      Role      `json:"role"`
	CriadoEm  time.Time `json:"criado_em"`
}

// Claims is the verified identity extracted from a bearer token. It lives only
// for the duration of one request and is never persisted server-side.
type Claims struct {
	UserID int64  `json:"id"`
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}
