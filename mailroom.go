package mailroom

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/mailroom/pkg/dispatch"
	"github.com/dmitrymomot/mailroom/pkg/logger"
	"github.com/dmitrymomot/mailroom/pkg/mailer"
	"github.com/dmitrymomot/mailroom/pkg/match"
	"github.com/dmitrymomot/mailroom/pkg/report"
	"github.com/dmitrymomot/mailroom/pkg/review"
)

// DefaultDelay is the pause between consecutive sends when none is set.
const DefaultDelay = 2 * time.Second

var (
	// ErrNoDocuments indicates the pipeline was created without documents.
	ErrNoDocuments = errors.New("mailroom: no documents to process")

	// ErrNoContacts indicates the pipeline was created without contacts.
	ErrNoContacts = errors.New("mailroom: no contacts to match against")

	// ErrNoSender indicates the pipeline was created without a transport.
	ErrNoSender = errors.New("mailroom: no mail sender configured")

	// ErrNoTemplate indicates subject or body templates are missing.
	ErrNoTemplate = errors.New("mailroom: subject and body templates are required")

	// ErrNotMatched indicates Dispatch was called before Match.
	ErrNotMatched = errors.New("mailroom: matching has not run yet")
)

// Pipeline orchestrates one match-and-send run over a fixed set of documents
// and contacts. Create it with New, run Match, let the operator adjust the
// returned selection, then run Dispatch. Run does all three with the default
// selection. A Pipeline is not safe for concurrent use.
type Pipeline struct {
	docs     []match.Document
	contacts []match.Contact
	sender   mailer.Sender
	template *mailer.Template

	threshold   int
	parallelism int
	delay       time.Duration
	subject     string
	body        string
	observer    dispatch.Observer
	logger      *slog.Logger

	selection *review.Set
}

// New creates a pipeline over the given documents, contacts and transport.
// Subject and body templates must be supplied via WithTemplates; they are
// parsed eagerly so a broken template fails here, not mid-run.
func New(docs []match.Document, contacts []match.Contact, sender mailer.Sender, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		docs:      docs,
		contacts:  contacts,
		sender:    sender,
		threshold: match.DefaultThreshold,
		delay:     DefaultDelay,
		logger:    logger.NewNope(),
	}
	for _, opt := range opts {
		opt(p)
	}

	switch {
	case len(p.docs) == 0:
		return nil, ErrNoDocuments
	case len(p.contacts) == 0:
		return nil, ErrNoContacts
	case p.sender == nil:
		return nil, ErrNoSender
	case p.subject == "" || p.body == "":
		return nil, ErrNoTemplate
	}

	tmpl, err := mailer.NewTemplate(p.subject, p.body)
	if err != nil {
		return nil, err
	}
	p.template = tmpl
	return p, nil
}

// Match resolves every document against the contact list and returns the
// reviewable selection. Matched documents start included, misses excluded.
// Calling Match again reruns matching and resets any selection edits.
func (p *Pipeline) Match(ctx context.Context) (*review.Set, error) {
	results, err := match.Match(ctx, p.docs, p.contacts, match.Options{
		Threshold:   p.threshold,
		Parallelism: p.parallelism,
	})
	if err != nil {
		return nil, err
	}
	p.selection = review.NewSet(results)

	matched := 0
	for _, r := range results {
		if r.Matched() {
			matched++
		}
	}
	p.logger.InfoContext(ctx, "matching finished",
		slog.Int("documents", len(results)),
		slog.Int("matched", matched),
		slog.Int("threshold", p.threshold))

	return p.selection, nil
}

// Selection returns the current selection, or nil before Match has run.
// The returned set is live: edits made through it affect the next Dispatch.
func (p *Pipeline) Selection() *review.Set {
	return p.selection
}

// Dispatch sends the currently selected documents in order and returns the
// outcome log. Individual send failures are recorded in the log; only a
// missing selection is an error.
func (p *Pipeline) Dispatch(ctx context.Context) (*report.Log, error) {
	if p.selection == nil {
		return nil, ErrNotMatched
	}

	content := make(map[string][]byte, len(p.docs))
	for _, d := range p.docs {
		content[d.ID] = d.Content
	}

	selected := p.selection.Selected()
	entries := make([]dispatch.Entry, 0, len(selected))
	for _, e := range selected {
		entries = append(entries, dispatch.Entry{
			DocumentID: e.DocumentID,
			Contact:    *e.Contact,
			Attachment: content[e.DocumentID],
		})
	}

	d := dispatch.New(p.sender,
		dispatch.WithDelay(p.delay),
		dispatch.WithObserver(p.observer),
		dispatch.WithLogger(p.logger),
	)
	log := report.New()
	log.Append(d.Run(ctx, entries, p.template)...)
	return log, nil
}

// Run executes the whole pipeline with the default selection: match, keep
// every confident match included, dispatch, and return the outcome log.
func (p *Pipeline) Run(ctx context.Context) (*report.Log, error) {
	if _, err := p.Match(ctx); err != nil {
		return nil, err
	}
	return p.Dispatch(ctx)
}
