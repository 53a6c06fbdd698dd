package notification

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/circulation-backend/internal/domain"
)

// mailer delivers one outbound email.
type mailer interface {
	Send(ctx context.Context, msg Email) error
}

// Email is one outbound message.
type Email struct {
	To      string
	Subject string
	Body    string
}

// Service turns circulation events into notifications.
type Service struct {
	log    *slog.Logger
	mailer mailer
}

// NewService creates a notification service. A nil mailer logs emails
// instead of sending them.
func NewService(logger *slog.Logger, m mailer) *Service {
	log := logger.With("service", "notification")
	if m == nil {
		m = NewLogMailer(log)
	}
	return &Service{log: log, mailer: m}
}

// Handle dispatches e to the matching notification. Unknown events are ignored.
func (s *Service) Handle(ctx context.Context, e domain.Event) error {
	switch ev := e.(type) {
	case domain.LoanCreated:
		return s.LoanCreated(ctx, ev)
	case domain.LoanReturned:
		return s.LoanReturned(ctx, ev)
	case domain.BookCreated:
		s.BookCreated(ctx, ev)
		return nil
	default:
		s.log.DebugContext(ctx, "no notification for event", slog.String("event", e.Name()))
		return nil
	}
}
