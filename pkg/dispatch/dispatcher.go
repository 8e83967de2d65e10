package dispatch

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/mailroom/pkg/logger"
	"github.com/dmitrymomot/mailroom/pkg/mailer"
)

// Dispatcher sends one message per entry through an injected transport.
// Configure it once via options and reuse it across runs.
type Dispatcher struct {
	sender   mailer.Sender
	delay    time.Duration
	observer Observer
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures the dispatcher.
type Option func(*Dispatcher)

// WithDelay sets the pause between successive sends. The pause applies
// between sends only, not before the first and not after the last. Callers
// validate the operator-facing 1-10s range; zero disables throttling.
func WithDelay(d time.Duration) Option {
	return func(dp *Dispatcher) {
		if d > 0 {
			dp.delay = d
		}
	}
}

// WithObserver sets the progress callback invoked after each attempt.
func WithObserver(fn Observer) Option {
	return func(dp *Dispatcher) {
		if fn != nil {
			dp.observer = fn
		}
	}
}

// WithLogger sets the dispatcher logger.
func WithLogger(l *slog.Logger) Option {
	return func(dp *Dispatcher) {
		if l != nil {
			dp.logger = l
		}
	}
}

// New creates a dispatcher sending through the given transport.
func New(sender mailer.Sender, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		logger: logger.NewNope(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run processes entries strictly in order and returns one Outcome per
// attempted entry. A transport failure is recorded and the loop continues;
// only cancellation stops the run early, and then only between entries;
// an in-flight send always completes.
func (d *Dispatcher) Run(ctx context.Context, entries []Entry, tmpl *mailer.Template) []Outcome {
	runID := uuid.NewString()
	log := d.logger.With(slog.String("run_id", runID), slog.Int("total", len(entries)))
	log.InfoContext(ctx, "dispatch run started")

	outcomes := make([]Outcome, 0, len(entries))
	for i, entry := range entries {
		if i > 0 && !d.pause(ctx) {
			log.WarnContext(ctx, "dispatch cancelled during pause", slog.Int("attempted", i))
			break
		}
		if ctx.Err() != nil {
			log.WarnContext(ctx, "dispatch cancelled", slog.Int("attempted", i))
			break
		}

		outcome := d.send(ctx, entry, tmpl)
		outcomes = append(outcomes, outcome)

		attrs := []any{
			slog.String("document", entry.DocumentID),
			slog.String("email", entry.Contact.Email),
			slog.Int("attempt", i+1),
		}
		if outcome.Status == StatusSent {
			log.InfoContext(ctx, "message sent", attrs...)
		} else {
			log.ErrorContext(ctx, "message failed", append(attrs, slog.String("detail", outcome.Detail))...)
		}

		if d.observer != nil {
			d.observer(i+1, len(entries))
		}
	}

	log.InfoContext(ctx, "dispatch run finished", slog.Int("attempted", len(outcomes)))
	return outcomes
}

// send builds and delivers the message for one entry. All failures,
// template rendering included, are folded into the outcome; nothing
// propagates out of the run.
func (d *Dispatcher) send(ctx context.Context, entry Entry, tmpl *mailer.Template) Outcome {
	outcome := Outcome{
		DocumentID: entry.DocumentID,
		Email:      entry.Contact.Email,
		Timestamp:  d.now(),
	}

	subject, body, err := tmpl.Render(mailer.Data{
		Name:     entry.Contact.Name,
		Address:  entry.Contact.Address,
		Document: entry.DocumentID,
	})
	if err == nil {
		email := &mailer.Email{
			To:          []string{entry.Contact.Email},
			Subject:     subject,
			Text:        body,
			Attachments: []mailer.Attachment{mailer.PDFAttachment(entry.DocumentID, entry.Attachment)},
		}
		// The transport gets a detached context: cancellation stops the
		// run between entries, never a send already dispatched.
		err = d.sender.Send(context.WithoutCancel(ctx), email)
	}

	if err != nil {
		outcome.Status = StatusError
		outcome.Detail = err.Error()
	} else {
		outcome.Status = StatusSent
	}
	return outcome
}

// pause blocks for the configured delay. Returns false when the context is
// cancelled before the delay elapses.
func (d *Dispatcher) pause(ctx context.Context) bool {
	if d.delay <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
