package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/circulation-backend/internal/domain"
)

// BookCreated announces a catalog addition. Librarians are informed through
// the log stream only.
func (s *Service) BookCreated(ctx context.Context, e domain.BookCreated) {
	b := e.Book
	s.log.InfoContext(ctx,
		fmt.Sprintf("New book added: %q by %s (ISBN: %s)", b.Title, b.Author, b.ISBN),
		slog.String("event", e.Name()),
		slog.Int64("book_id", b.ID),
		slog.String("title", b.Title),
		slog.String("author", b.Author),
		slog.String("isbn", b.ISBN),
		slog.Int("copies", b.NumberOfCopies),
	)
}
