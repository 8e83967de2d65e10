// Package smtp implements mailer.Sender over SMTP with STARTTLS, the
// transport office mail providers expect for app-password submission.
package smtp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	mail "github.com/wneessen/go-mail"

	"github.com/dmitrymomot/mailroom/pkg/mailer"
)

const dialTimeout = 30 * time.Second

// Sender implements mailer.Sender over an SMTP submission endpoint.
type Sender struct {
	client *mail.Client
	config Config
}

// New creates a new SMTP sender. The connection is established per send;
// provider rate limits make connection reuse pointless for this workload.
func New(cfg Config) (*Sender, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(cfg.Sender),
		mail.WithPassword(cfg.Secret),
		mail.WithTimeout(dialTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp: failed to create client: %w", err)
	}
	return &Sender{client: client, config: cfg}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}

	msg := mail.NewMsg()

	from := email.From
	if from == "" {
		from = s.config.Sender
	}
	if err := msg.From(from); err != nil {
		return fmt.Errorf("smtp: invalid sender address: %w", err)
	}
	if err := msg.To(email.To...); err != nil {
		return fmt.Errorf("smtp: invalid recipient address: %w", err)
	}

	msg.Subject(email.Subject)
	msg.SetBodyString(mail.TypeTextPlain, email.Text)

	for _, a := range email.Attachments {
		if err := msg.AttachReader(a.Filename, bytes.NewReader(a.Content)); err != nil {
			return fmt.Errorf("smtp: failed to attach %s: %w", a.Filename, err)
		}
	}

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Join(mailer.ErrSendFailed, err)
	}
	return nil
}
