package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/circulation-backend/internal/cache"
	"github.com/heartmarshall/circulation-backend/internal/domain"
)

// CreateBook adds a book to the catalog. Librarians only.
// Side effects run in order: persist, invalidate catalog caches, publish BookCreated.
func (s *Service) CreateBook(ctx context.Context, input CreateBookInput) (*domain.Book, error) {
	requester, err := principalFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := domain.CanManageCatalog(requester); err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var book *domain.Book
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		exists, err := s.books.ExistsByISBN(ctx, input.ISBN)
		if err != nil {
			return fmt.Errorf("check isbn: %w", err)
		}
		if exists {
			return domain.ErrDuplicateISBN
		}

		book, err = s.books.Create(ctx, domain.Book{
			Title:           input.Title,
			Author:          input.Author,
			ISBN:            input.ISBN,
			PublicationYear: input.Year,
			NumberOfCopies:  input.Copies,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateISBN) {
			return nil, domain.ErrDuplicateISBN
		}
		return nil, fmt.Errorf("catalog.CreateBook: %w", err)
	}

	s.invalidate(ctx, book.ID)
	s.events.Publish(ctx, domain.BookCreated{EventMeta: domain.NewEventMeta(s.now()), Book: *book})

	s.log.InfoContext(ctx, "book created",
		slog.Int64("book_id", book.ID),
		slog.Int64("librarian_id", requester.UserID),
	)

	return book, nil
}

// invalidate purges the catalog anchors, every tagged list page and the
// book's detail. Failures are logged; the book is already committed.
func (s *Service) invalidate(ctx context.Context, bookID int64) {
	if err := s.cache.Delete(ctx, cache.BookMutationKeys(bookID)...); err != nil {
		s.log.ErrorContext(ctx, "catalog cache invalidation failed",
			slog.Int64("book_id", bookID),
			slog.String("error", err.Error()),
		)
	}
	if err := s.cache.InvalidateTag(ctx, cache.BooksListTag); err != nil {
		s.log.ErrorContext(ctx, "catalog list invalidation failed",
			slog.Int64("book_id", bookID),
			slog.String("error", err.Error()),
		)
	}
}
