// Package book implements the Book repository using PostgreSQL.
package book

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

const table = "books"

var columns = []string{"id", "title", "author", "isbn", "publication_year", "number_of_copies", "created_at"}

type row struct {
	ID              int64     `db:"id"`
	Title           string    `db:"title"`
	Author          string    `db:"author"`
	ISBN            string    `db:"isbn"`
	PublicationYear int       `db:"publication_year"`
	NumberOfCopies  int       `db:"number_of_copies"`
	CreatedAt       time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Book {
	return domain.Book{
		ID:              r.ID,
		Title:           r.Title,
		Author:          r.Author,
		ISBN:            r.ISBN,
		PublicationYear: r.PublicationYear,
		NumberOfCopies:  r.NumberOfCopies,
		CreatedAt:       r.CreatedAt,
	}
}

// Repo provides book persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new book repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a book and returns it with id and created_at filled.
// A taken ISBN yields domain.ErrDuplicateISBN.
func (r *Repo) Create(ctx context.Context, b domain.Book) (*domain.Book, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("title", "author", "isbn", "publication_year", "number_of_copies").
		Values(b.Title, b.Author, b.ISBN, b.PublicationYear, b.NumberOfCopies).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert book: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		if postgres.IsUniqueViolation(err, postgres.ConstraintBooksISBN) {
			return nil, fmt.Errorf("book isbn %s: %w", b.ISBN, domain.ErrDuplicateISBN)
		}
		return nil, postgres.MapError(err, "book", 0)
	}

	result := out.toDomain()
	return &result, nil
}

// GetByID returns a book by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select book: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "book", id)
	}

	result := out.toDomain()
	return &result, nil
}

// ExistsByISBN reports whether a book with exactly this ISBN exists.
func (r *Repo) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	sql, args, err := postgres.Builder().
		Select("1").
		From(table).
		Where(squirrel.Eq{"isbn": isbn}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists book: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "book", 0)
	}
	return exists, nil
}

// List returns one page of books matching f ordered by title, plus the
// total number of matches.
func (r *Repo) List(ctx context.Context, f domain.BookFilter) ([]domain.Book, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	where := filterClause(f)

	countSQL, countArgs, err := postgres.Builder().
		Select("COUNT(*)").
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count books: %w", err)
	}

	var total int64
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "books", 0)
	}

	listSQL, listArgs, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("title ASC", "id ASC").
		Limit(uint64(domain.BooksPageSize)).
		Offset(uint64(f.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list books: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, listSQL, listArgs...); err != nil {
		return nil, 0, postgres.MapError(err, "books", 0)
	}

	books := make([]domain.Book, len(rows))
	for i, rw := range rows {
		books[i] = rw.toDomain()
	}
	return books, int(total), nil
}

// filterClause builds the WHERE conditions for f. Title and author match
// case-insensitive substrings; ISBN and year match exactly.
func filterClause(f domain.BookFilter) squirrel.And {
	where := squirrel.And{}
	if f.Title != "" {
		where = append(where, squirrel.ILike{"title": "%" + escapeLike(f.Title) + "%"})
	}
	if f.Author != "" {
		where = append(where, squirrel.ILike{"author": "%" + escapeLike(f.Author) + "%"})
	}
	if f.ISBN != "" {
		where = append(where, squirrel.Eq{"isbn": f.ISBN})
	}
	if f.Year != 0 {
		where = append(where, squirrel.Eq{"publication_year": f.Year})
	}
	return where
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
