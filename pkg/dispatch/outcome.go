package dispatch

import (
	"time"

	"github.com/dmitrymomot/mailroom/pkg/match"
)

// Status is the terminal state of one attempted send.
type Status string

const (
	StatusSent  Status = "sent"
	StatusError Status = "error"
)

// Outcome records one attempted send. Outcomes are append-only: one per
// attempted entry, in send order, never mutated after creation.
type Outcome struct {
	DocumentID string
	Email      string
	Status     Status
	Detail     string // human-readable failure detail, empty when sent
	Timestamp  time.Time
}

// Entry is one unit of work for the dispatcher: the matched contact plus the
// document bytes to attach. The selection layer guarantees the contact email
// is present.
type Entry struct {
	DocumentID string
	Contact    match.Contact
	Attachment []byte
}

// Observer receives progress notifications after each attempt. done counts
// attempted entries, total the entries in the run. Purely informational;
// the loop never waits on it.
type Observer func(done, total int)
