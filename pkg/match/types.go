package match

// Document is one client letter awaiting delivery. ID is derived from the
// source filename and is the key fuzzy matching runs on.
type Document struct {
	ID      string
	Content []byte
}

// Contact is one row of the contact sheet. Email is guaranteed non-empty by
// the loaders; rows without a usable email are dropped at load time.
type Contact struct {
	Name    string
	Email   string
	Address string
}

// Field identifies which contact attribute produced an accepted match.
type Field string

const (
	FieldNone    Field = "none"
	FieldName    Field = "name"
	FieldAddress Field = "address"
)

// Tier is the confidence band of a match, derived from its score.
type Tier string

// Tier cut-offs are fixed, not threshold-relative: a run with a lowered
// threshold can accept a score below 80, and that match still bands as
// unmatched so it starts excluded from the selection.
const (
	TierHigh      Tier = "high"      // score >= 90
	TierMedium    Tier = "medium"    // score 80-89
	TierUnmatched Tier = "unmatched" // score < 80 or no candidate
)

// Result pairs one document with its best contact candidate. Contact is nil
// and ContactIndex is -1 when no candidate cleared the threshold; Score then
// holds the best score observed for operator visibility.
type Result struct {
	DocumentID   string
	Contact      *Contact
	ContactIndex int
	Score        int
	Field        Field
}

// Matched reports whether the result carries an accepted contact.
func (r Result) Matched() bool {
	return r.Field != FieldNone && r.Contact != nil
}

// Tier returns the confidence band for the result.
func (r Result) Tier() Tier {
	switch {
	case !r.Matched() || r.Score < 80:
		return TierUnmatched
	case r.Score >= 90:
		return TierHigh
	default:
		return TierMedium
	}
}
