package mailer

import (
	"context"
	"log/slog"

	"giftexchange/internal/core/ports"
)

// ConsoleMessageID is reported for every notice the console notifier handles.
const ConsoleMessageID = "console"

var _ ports.Notifier = (*ConsoleNotifier)(nil)

// ConsoleNotifier logs messages instead of sending them. Used when no SMTP host is configured.
type ConsoleNotifier struct {
	logger *slog.Logger
}

func NewConsoleNotifier(logger *slog.Logger) *ConsoleNotifier {
	return &ConsoleNotifier{logger: logger.With("component", "console_notifier")}
}

func (n *ConsoleNotifier) Notify(ctx context.Context, notices []ports.GroupNotice) []ports.NotificationResult {
	return notifyAll(ctx, notices, 1, func(ctx context.Context, notice ports.GroupNotice) (string, error) {
		n.logger.InfoContext(ctx, "Would send email",
			"to", notice.Email,
			"subject", Subject(notice.Group),
			"body", PlainBody(notice),
		)
		return ConsoleMessageID, nil
	})
}
