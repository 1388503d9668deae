package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"giftexchange/internal/core/domain/model/kernel"
	"giftexchange/internal/core/ports"
	"giftexchange/internal/pkg/errs"

	"github.com/wneessen/go-mail"
)

var _ ports.Notifier = (*SMTPNotifier)(nil)

// DefaultSMTPPort is used when SMTPConfig.Port is zero.
const DefaultSMTPPort = 587

// SMTPConfig holds the relay settings. Username may be empty for relays without auth.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// sender is the part of *mail.Client the notifier uses.
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPNotifier sends one message per group through an SMTP relay.
type SMTPNotifier struct {
	client      sender
	from        string
	concurrency int
	logger      *slog.Logger
}

// NewSMTPNotifier builds a go-mail client for cfg. STARTTLS is used when the
// server offers it.
func NewSMTPNotifier(cfg SMTPConfig, logger *slog.Logger) (*SMTPNotifier, error) {
	if cfg.Host == "" {
		return nil, errs.NewValueIsRequiredError("smtp host")
	}
	if cfg.From == "" {
		return nil, errs.NewValueIsRequiredError("mail from")
	}

	port := cfg.Port
	if port == 0 {
		port = DefaultSMTPPort
	}

	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return newSMTPNotifier(client, cfg.From, logger), nil
}

func newSMTPNotifier(client sender, from string, logger *slog.Logger) *SMTPNotifier {
	return &SMTPNotifier{
		client:      client,
		from:        from,
		concurrency: DefaultConcurrency,
		logger:      logger.With("component", "smtp_notifier"),
	}
}

func (n *SMTPNotifier) Notify(ctx context.Context, notices []ports.GroupNotice) []ports.NotificationResult {
	return notifyAll(ctx, notices, n.concurrency, n.send)
}

func (n *SMTPNotifier) send(ctx context.Context, notice ports.GroupNotice) (string, error) {
	msg, id, err := n.message(notice)
	if err != nil {
		return "", err
	}

	if err = n.client.DialAndSendWithContext(ctx, msg); err != nil {
		n.logger.ErrorContext(ctx, "Failed to send assignments", "group", notice.Group, "email", notice.Email, "error", err)
		return "", err
	}

	n.logger.InfoContext(ctx, "Assignments sent", "group", notice.Group, "email", notice.Email, "message_id", id)
	return id, nil
}

func (n *SMTPNotifier) message(notice ports.GroupNotice) (*mail.Msg, string, error) {
	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return nil, "", fmt.Errorf("invalid sender %q: %w", n.from, err)
	}
	if err := msg.To(notice.Email); err != nil {
		return nil, "", fmt.Errorf("invalid recipient %q: %w", notice.Email, err)
	}

	html, err := HTMLBody(notice)
	if err != nil {
		return nil, "", err
	}

	id := kernel.NewUUID().String() + "@giftexchange"
	msg.SetMessageIDWithValue(id)
	msg.Subject(Subject(notice.Group))
	msg.SetBodyString(mail.TypeTextPlain, PlainBody(notice))
	msg.AddAlternativeString(mail.TypeTextHTML, html)

	return msg, id, nil
}
