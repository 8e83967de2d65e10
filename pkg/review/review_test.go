package review_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailroom/pkg/match"
	"github.com/dmitrymomot/mailroom/pkg/review"
)

func sampleResults() []match.Result {
	acme := &match.Contact{Name: "Acme Corp", Email: "a@x.com"}
	globex := &match.Contact{Name: "Globex", Email: "b@x.com"}
	return []match.Result{
		{DocumentID: "acme", Contact: acme, ContactIndex: 0, Score: 100, Field: match.FieldName},
		{DocumentID: "globex", Contact: globex, ContactIndex: 1, Score: 85, Field: match.FieldAddress},
		{DocumentID: "mystery", ContactIndex: -1, Score: 42, Field: match.FieldNone},
	}
}

func TestNewSetDefaults(t *testing.T) {
	t.Parallel()

	s := review.NewSet(sampleResults())
	entries := s.Entries()
	require.Len(t, entries, 3)

	assert.True(t, entries[0].Included, "high confidence starts included")
	assert.True(t, entries[1].Included, "medium confidence starts included")
	assert.False(t, entries[2].Included, "unmatched starts excluded")
}

func TestNewSetLowScoreMatchStartsExcluded(t *testing.T) {
	t.Parallel()

	// A lowered threshold can accept a score under 80; such a match must
	// start excluded and only go out when the operator opts in.
	contact := &match.Contact{Name: "Acme Corp", Email: "a@x.com"}
	s := review.NewSet([]match.Result{
		{DocumentID: "acme", Contact: contact, ContactIndex: 0, Score: 60, Field: match.FieldName},
	})

	require.False(t, s.Entries()[0].Included)
	require.Empty(t, s.Selected())

	require.NoError(t, s.SetIncluded("acme", true))
	require.Len(t, s.Selected(), 1)
}

func TestSetIncluded(t *testing.T) {
	t.Parallel()

	t.Run("deselect and reselect", func(t *testing.T) {
		t.Parallel()
		s := review.NewSet(sampleResults())

		require.NoError(t, s.SetIncluded("acme", false))
		assert.Len(t, s.Selected(), 1)

		require.NoError(t, s.SetIncluded("acme", true))
		assert.Len(t, s.Selected(), 2)
	})

	t.Run("including unmatched entry is rejected", func(t *testing.T) {
		t.Parallel()
		s := review.NewSet(sampleResults())

		err := s.SetIncluded("mystery", true)
		require.ErrorIs(t, err, review.ErrUnmatched)
		assert.Len(t, s.Selected(), 2)
	})

	t.Run("excluding unmatched entry is a no-op", func(t *testing.T) {
		t.Parallel()
		s := review.NewSet(sampleResults())
		require.NoError(t, s.SetIncluded("mystery", false))
	})

	t.Run("unknown document", func(t *testing.T) {
		t.Parallel()
		s := review.NewSet(sampleResults())
		require.ErrorIs(t, s.SetIncluded("nope", true), review.ErrUnknownDocument)
	})
}

func TestSetAllIncluded(t *testing.T) {
	t.Parallel()

	s := review.NewSet(sampleResults())

	s.SetAllIncluded(false)
	assert.Empty(t, s.Selected())

	s.SetAllIncluded(true)
	selected := s.Selected()
	assert.Len(t, selected, 2, "select-all never includes unmatched entries")
}

func TestSelectedNeverReturnsNilContact(t *testing.T) {
	t.Parallel()

	s := review.NewSet(sampleResults())
	s.SetAllIncluded(true)

	for _, e := range s.Selected() {
		require.NotNil(t, e.Contact)
		assert.NotEmpty(t, e.Contact.Email)
	}
}

func TestSelectedPreservesOrder(t *testing.T) {
	t.Parallel()

	s := review.NewSet(sampleResults())
	selected := s.Selected()
	require.Len(t, selected, 2)
	assert.Equal(t, "acme", selected[0].DocumentID)
	assert.Equal(t, "globex", selected[1].DocumentID)
}
