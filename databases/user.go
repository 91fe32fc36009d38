package databases

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/casaverde/casa-verde-api/models"
)

// ErrDuplicateEmail is returned when a register hits the usuarios email
// unique constraint.
var ErrDuplicateEmail = errors.New("email already in use")

// UserDatabase contains the methods to use with the usuarios table
type UserDatabase interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, nome, email, senhaHash string) (*models.User, error)
}

type userDatabase struct {
	db *sql.DB
}

// NewUserDatabase initializes a new instance of user database with the provided db connection
func NewUserDatabase(db *sql.DB) UserDatabase {
	return &userDatabase{db: db}
}

func (u *userDatabase) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := u.db.QueryRowContext(ctx,
		`SELECT id, nome, email, senha_hash, role, criado_em FROM usuarios WHERE email = $1`,
		email,
	).Scan(&user.ID, &user.Nome, &user.Email, &user.SenhaHash, &user.Role, &user.CriadoEm)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userDatabase) Insert(ctx context.Context, nome, email, senhaHash string) (*models.User, error) {
	user := &models.User{}
	err := u.db.QueryRowContext(ctx,
		`INSERT INTO usuarios (nome, email, senha_hash, role) VALUES ($1, $2, $3, 'user')
		 RETURNING id, nome, email, senha_hash, role, criado_em`,
		nome, email, senhaHash,
	).Scan(&user.ID, &user.Nome, &user.Email, &user.SenhaHash, &user.Role, &user.CriadoEm)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return user, nil
}
