// Package review holds the operator-reviewable selection of match results.
//
// A Set wraps the matcher's output with a per-entry inclusion flag. High and
// medium confidence matches start included; unmatched entries start excluded
// and can never be included, which guarantees the dispatcher always has a
// destination address. The Set is meant to be driven by a single review
// surface (CLI flags, a form) and is not safe for concurrent mutation.
package review

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/mailroom/pkg/match"
)

var (
	// ErrUnknownDocument indicates no entry exists for the document.
	ErrUnknownDocument = errors.New("review: unknown document")

	// ErrUnmatched indicates an attempt to include an entry without a
	// matched contact.
	ErrUnmatched = errors.New("review: entry has no matched contact")
)

// Entry is one match result plus its inclusion flag.
type Entry struct {
	match.Result
	Included bool
}

// Set is the mutable selection over a matching run. Entry order mirrors the
// original document order.
type Set struct {
	entries []Entry
	index   map[string]int
}

// NewSet builds a selection from match results. High and medium tier
// entries default to included; unmatched-tier entries default to excluded,
// including low-scoring matches accepted under a lowered threshold, which
// the operator must opt into explicitly.
func NewSet(results []match.Result) *Set {
	s := &Set{
		entries: make([]Entry, len(results)),
		index:   make(map[string]int, len(results)),
	}
	for i, r := range results {
		s.entries[i] = Entry{Result: r, Included: r.Tier() != match.TierUnmatched}
		s.index[r.DocumentID] = i
	}
	return s
}

// SetIncluded flips the inclusion flag for one document. Including an
// unmatched entry is rejected; excluding it is a no-op.
func (s *Set) SetIncluded(documentID string, included bool) error {
	i, ok := s.index[documentID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDocument, documentID)
	}
	if included && !s.entries[i].Matched() {
		return fmt.Errorf("%w: %s", ErrUnmatched, documentID)
	}
	s.entries[i].Included = included
	return nil
}

// SetAllIncluded flips the inclusion flag on every matched entry. Unmatched
// entries are left excluded.
func (s *Set) SetAllIncluded(included bool) {
	for i := range s.entries {
		if s.entries[i].Matched() {
			s.entries[i].Included = included
		}
	}
}

// Entries returns a copy of all entries in document order, for rendering.
func (s *Set) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Selected returns the entries marked for sending, in document order. Every
// returned entry has a non-nil matched contact.
func (s *Set) Selected() []Entry {
	var out []Entry
	for _, e := range s.entries {
		if e.Included && e.Matched() {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of entries in the set.
func (s *Set) Len() int { return len(s.entries) }
