package catalog

import (
	"context"
	"fmt"

	"github.com/heartmarshall/circulation-backend/internal/cache"
	"github.com/heartmarshall/circulation-backend/internal/domain"
)

// ListBooks returns one page of the catalog. Results are cached per filter
// combination and tagged for invalidation on catalog changes.
func (s *Service) ListBooks(ctx context.Context, f domain.BookFilter) (*domain.BookPage, error) {
	if err := ValidateFilter(f); err != nil {
		return nil, err
	}

	page, err := cache.GetOrCompute(ctx, s.cache, cache.BooksListKey(f), s.ttl.BooksListTTL,
		func(ctx context.Context) (domain.BookPage, error) {
			books, total, err := s.books.List(ctx, f)
			if err != nil {
				return domain.BookPage{}, err
			}
			return domain.BookPage{
				Books:       books,
				TotalCount:  total,
				CurrentPage: f.PageNumber(),
				TotalPages:  domain.TotalPages(total, domain.BooksPageSize),
			}, nil
		}, cache.BooksListTag)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListBooks: %w", err)
	}

	return &page, nil
}
