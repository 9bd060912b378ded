// Package notify sends submission notifications to the operator address
// through the configured mail relay.
package notify

import (
	"context"
	"fmt"

	"github.com/tupelotree/contact-backend/config"
	"github.com/tupelotree/contact-backend/models"
	"github.com/tupelotree/contact-backend/services"
	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

const subject = "New Contact Form Submission - tupelotree.services"

// relay is the slice of the go-mail client the mailer uses; tests substitute
// a fake.
type relay interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// Mailer sends one email per validated submission
type Mailer struct {
	client   relay
	operator string
	logger   *zap.Logger
}

// New creates a Mailer backed by an SMTP client with implicit TLS
func New(cfg config.MailConfig, logger *zap.Logger) (*Mailer, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTimeout(cfg.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("create mail client: %w", err)
	}
	return &Mailer{client: client, operator: cfg.Operator, logger: logger}, nil
}

// Send builds and synchronously delivers the notification message. The
// sender is the submitter's normalized address, the recipient and subject
// are fixed. A relay failure is fatal to the pipeline.
func (m *Mailer) Send(ctx context.Context, sub models.Submission) error {
	msg := mail.NewMsg()
	if err := msg.From(sub.Email); err != nil {
		return services.NewDomainError(services.ErrorTypeDownstream, "mail relay error", err)
	}
	if err := msg.To(m.operator); err != nil {
		return services.NewDomainError(services.ErrorTypeDownstream, "mail relay error", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body(sub))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		m.logger.Error("mail relay send failed",
			zap.String("operator", m.operator),
			zap.Error(err))
		return services.NewDomainError(services.ErrorTypeDownstream, "mail relay error", err)
	}

	m.logger.Info("notification sent", zap.String("operator", m.operator))
	return nil
}

func body(sub models.Submission) string {
	return fmt.Sprintf("You have a new message from:\nName: %s\nEmail: %s\nMessage: %s\n",
		sub.Name, sub.Email, sub.Message)
}
