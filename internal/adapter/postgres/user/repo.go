// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/circulation-backend/internal/adapter/postgres"
	"github.com/heartmarshall/circulation-backend/internal/domain"
)

const table = "users"

var columns = []string{"id", "name", "surname", "email", "role", "password_hash", "created_at"}

type row struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Surname      string    `db:"surname"`
	Email        string    `db:"email"`
	Role         string    `db:"role"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Name:         r.Name,
		Surname:      r.Surname,
		Email:        r.Email,
		Role:         domain.UserRole(r.Role),
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := r.getBy(ctx, squirrel.Eq{"id": id})
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := r.getBy(ctx, squirrel.Eq{"email": email})
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}
	return u, nil
}

func (r *Repo) getBy(ctx context.Context, pred squirrel.Eq) (*domain.User, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// Create inserts a new user and returns the persisted domain.User.
// A taken email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("name", "surname", "email", "role", "password_hash").
		Values(u.Name, u.Surname, u.Email, u.Role.String(), u.PasswordHash).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}
	return out.toDomain(), nil
}
