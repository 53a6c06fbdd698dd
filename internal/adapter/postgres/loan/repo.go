// Package loan implements the Loan repository using PostgreSQL.
package loan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/circulation-backend/internal/adapter/postgres"
	"github.com/heartmarshall/circulation-backend/internal/domain"
)

const table = "loans"

var columns = []string{"id", "book_id", "user_id", "loan_date", "status", "returned_at"}

type row struct {
	ID         int64      `db:"id"`
	BookID     int64      `db:"book_id"`
	UserID     int64      `db:"user_id"`
	LoanDate   time.Time  `db:"loan_date"`
	Status     string     `db:"status"`
	ReturnedAt *time.Time `db:"returned_at"`
}

func (r row) toDomain() domain.Loan {
	return domain.Loan{
		ID:         r.ID,
		BookID:     r.BookID,
		UserID:     r.UserID,
		LoanDate:   r.LoanDate,
		Status:     domain.LoanStatus(r.Status),
		ReturnedAt: r.ReturnedAt,
	}
}

// Repo provides loan persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new loan repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts l and returns it with its id.
func (r *Repo) Create(ctx context.Context, l domain.Loan) (*domain.Loan, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("book_id", "user_id", "loan_date", "status").
		Values(l.BookID, l.UserID, l.LoanDate, l.Status.String()).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert loan: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "loan", 0)
	}

	result := out.toDomain()
	return &result, nil
}

// GetByID returns a loan by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Loan, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select loan: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "loan", id)
	}

	result := out.toDomain()
	return &result, nil
}

// MarkReturned moves a loan to RETURNED at returnedAt. The update only
// matches loans not yet returned, so of two concurrent returns exactly one
// succeeds; the other gets domain.ErrLoanAlreadyReturned.
func (r *Repo) MarkReturned(ctx context.Context, id int64, returnedAt time.Time) (*domain.Loan, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("status", domain.LoanStatusReturned.String()).
		Set("returned_at", returnedAt).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"status": domain.LoanStatusReturned.String()}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build return loan: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("loan %d: %w", id, domain.ErrLoanAlreadyReturned)
		}
		return nil, postgres.MapError(err, "loan", id)
	}

	result := out.toDomain()
	return &result, nil
}

// ListByUser returns one page of the user's loans, newest first, plus the
// user's total loan count.
func (r *Repo) ListByUser(ctx context.Context, q domain.LoanHistoryQuery) ([]domain.Loan, int, error) {
	db := postgres.QuerierFromCtx(ctx, r.db)
	byUser := squirrel.Eq{"user_id": q.UserID}

	countSQL, countArgs, err := postgres.Builder().
		Select("COUNT(*)").
		From(table).
		Where(byUser).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count loans: %w", err)
	}

	var total int64
	if err := db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "loans of user", q.UserID)
	}

	listSQL, listArgs, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(byUser).
		OrderBy("loan_date DESC", "id DESC").
		Limit(uint64(q.Limit)).
		Offset(uint64(q.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list loans: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, db, &rows, listSQL, listArgs...); err != nil {
		return nil, 0, postgres.MapError(err, "loans of user", q.UserID)
	}

	loans := make([]domain.Loan, len(rows))
	for i, rw := range rows {
		loans[i] = rw.toDomain()
	}
	return loans, int(total), nil
}
