// Package mail provides the SMTP implementation of the outgoing mail
// transport used for transactional email.
package mail

import (
	"context"

	"storefront/config"
	"storefront/internal/domain/service"

	gomail "github.com/wneessen/go-mail"
	"github.com/pkg/errors"
)

// smtpMailer implements the service.Mailer interface over SMTP.
type smtpMailer struct {
	client *gomail.Client
	from   string
}

// NewSMTPMailer creates a new SMTP mailer from the configured server settings.
// This function will be used as an Fx provider.
func NewSMTPMailer(cfg *config.Config) (service.Mailer, error) {
	smtpCfg := cfg.SMTP
	if smtpCfg == nil {
		return nil, errors.New("smtp config is required")
	}

	options := []gomail.Option{
		gomail.WithPort(smtpCfg.Port),
	}
	if smtpCfg.Username != "" {
		options = append(options,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(smtpCfg.Username),
			gomail.WithPassword(smtpCfg.Password),
		)
	}

	client, err := gomail.NewClient(smtpCfg.Host, options...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	return &smtpMailer{
		client: client,
		from:   smtpCfg.From,
	}, nil
}

// Send delivers one message over SMTP. The call blocks until the server
// accepts or rejects the message.
func (m *smtpMailer) Send(ctx context.Context, mail *service.Mail) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errors.Wrap(err, "failed to set sender address")
	}
	if err := msg.To(mail.To); err != nil {
		return errors.Wrap(err, "failed to set recipient address")
	}
	msg.Subject(mail.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, mail.HTMLBody)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	return nil
}
