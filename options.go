package mailroom

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/mailroom/pkg/dispatch"
)

// Option configures the pipeline.
type Option func(*Pipeline)

// WithThreshold sets the minimum similarity score a candidate must reach to
// count as a match. Defaults to match.DefaultThreshold.
func WithThreshold(t int) Option {
	return func(p *Pipeline) {
		if t > 0 {
			p.threshold = t
		}
	}
}

// WithParallelism caps the number of documents matched concurrently.
// Defaults to the number of CPUs.
func WithParallelism(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.parallelism = n
		}
	}
}

// WithDelay sets the pause between consecutive sends.
// Defaults to 2 seconds.
func WithDelay(d time.Duration) Option {
	return func(p *Pipeline) {
		if d > 0 {
			p.delay = d
		}
	}
}

// WithTemplates sets the subject and body templates used for every message.
// Both accept {{.Name}}, {{.Address}} and {{.Document}} placeholders.
func WithTemplates(subject, body string) Option {
	return func(p *Pipeline) {
		if subject != "" {
			p.subject = subject
		}
		if body != "" {
			p.body = body
		}
	}
}

// WithObserver registers a progress callback invoked after each send attempt.
func WithObserver(fn dispatch.Observer) Option {
	return func(p *Pipeline) {
		if fn != nil {
			p.observer = fn
		}
	}
}

// WithLogger sets the pipeline logger.
// If not set, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}
