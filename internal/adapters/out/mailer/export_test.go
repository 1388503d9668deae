package mailer

import "log/slog"

// NewSMTPNotifierWithSender lets tests replace the SMTP client.
func NewSMTPNotifierWithSender(client sender, from string, logger *slog.Logger) *SMTPNotifier {
	return newSMTPNotifier(client, from, logger)
}
