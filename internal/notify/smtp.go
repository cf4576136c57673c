package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
)

const pkg = "notify/"

type Notifier interface {
	SendDocumentStatusUpdate(ctx context.Context, email string, doc *models.Document) error
	SendApplicationStatusUpdate(ctx context.Context, email string, status models.ApplicationStatus) error
}

// SMTPNotifier delivers plain-text status notifications. Callers invoke it
// fire-and-forget: a delivery failure is logged and never propagated into
// the triggering operation.
type SMTPNotifier struct {
	log  *slog.Logger
	addr string
	from string
}

func NewSMTP(log *slog.Logger, addr string, from string) *SMTPNotifier {
	return &SMTPNotifier{
		log:  log,
		addr: addr,
		from: from,
	}
}

func (n *SMTPNotifier) SendDocumentStatusUpdate(ctx context.Context, email string, doc *models.Document) error {
	spec, _ := models.DocumentTypeSpecFor(doc.DocumentType)

	subject := fmt.Sprintf("Update on your document: %s", spec.Description)

	body := fmt.Sprintf("Your document %q is now %s.", spec.Description, doc.Status)
	if doc.ValidationNotes != nil {
		body += fmt.Sprintf("\nNotes: %s", *doc.ValidationNotes)
	}

	return n.send(ctx, email, subject, body)
}

func (n *SMTPNotifier) SendApplicationStatusUpdate(ctx context.Context, email string, status models.ApplicationStatus) error {
	subject := fmt.Sprintf("Update on your application status: %s", status)
	body := fmt.Sprintf("Your application is now %s.", status)

	return n.send(ctx, email, subject, body)
}

func (n *SMTPNotifier) send(ctx context.Context, to string, subject string, body string) error {
	op := pkg + "send"

	log := n.log.With(slog.String("op", op))

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	msg := []byte("From: " + n.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n")

	if err := smtp.SendMail(n.addr, nil, n.from, []string{to}, msg); err != nil {
		log.Error("failed to send mail", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Debug("mail sent", slog.String("to", to))

	return nil
}

// NoopNotifier is used when mail delivery is disabled by config.
type NoopNotifier struct{}

func NewNoop() *NoopNotifier { return &NoopNotifier{} }

func (NoopNotifier) SendDocumentStatusUpdate(context.Context, string, *models.Document) error {
	return nil
}

func (NoopNotifier) SendApplicationStatusUpdate(context.Context, string, models.ApplicationStatus) error {
	return nil
}
