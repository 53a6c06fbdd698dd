package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/circulation-backend/internal/cache"
	"github.com/heartmarshall/circulation-backend/internal/domain"
)

// GetBook returns one book, cached under its detail key.
// Missing books are not cached.
func (s *Service) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be positive")
	}

	book, err := cache.GetOrCompute(ctx, s.cache, cache.BookDetailKey(id), s.ttl.BookDetailTTL,
		func(ctx context.Context) (domain.Book, error) {
			b, err := s.books.GetByID(ctx, id)
			if err != nil {
				return domain.Book{}, err
			}
			return *b, nil
		})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("catalog.GetBook: %w", err)
	}

	return &book, nil
}
