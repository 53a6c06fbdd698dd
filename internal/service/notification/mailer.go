package notification

import (
	"context"
	"log/slog"
)

// bodyPreviewLen bounds the logged body excerpt.
const bodyPreviewLen = 100

// LogMailer records emails in the log instead of delivering them.
type LogMailer struct {
	log *slog.Logger
}

func NewLogMailer(log *slog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(ctx context.Context, msg Email) error {
	m.log.InfoContext(ctx, "Mock email sent",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("body_preview", Preview(msg.Body)),
	)
	return nil
}

// Preview returns the first bodyPreviewLen runes of body followed by "...".
func Preview(body string) string {
	r := []rune(body)
	if len(r) > bodyPreviewLen {
		r = r[:bodyPreviewLen]
	}
	return string(r) + "..."
}
