package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	punctuation = regexp.MustCompile(`[.,;:()\-_/\\]+`)
	spaces      = regexp.MustCompile(`\s+`)
)

// legalSuffixes are Spanish legal-entity forms matched as complete token
// runs after punctuation has been folded into spaces, so "S.L.", "S. L."
// and "SL" all reduce to the same shape. Longer runs come first so "s l u"
// is not consumed as "s l" + stray token.
var legalSuffixes = [][]string{
	{"s", "l", "u"},
	{"s", "l", "l"},
	{"slu"},
	{"sll"},
	{"s", "l"},
	{"s", "a"},
	{"s", "c"},
	{"sl"},
	{"sa"},
	{"sc"},
}

// stripAccents removes combining marks after NFD decomposition, so "á"
// compares equal to "a". On transform failure the input is returned as-is;
// comparison quality degrades but normalization stays total.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes text for fuzzy comparison. The steps, in order:
// case folding, diacritic removal, punctuation folded to spaces, legal-entity
// suffix removal, whitespace collapse and trim.
func Normalize(text string) string {
	text = strings.ToLower(text)

	if folded, _, err := transform.String(stripAccents, text); err == nil {
		text = folded
	}

	text = punctuation.ReplaceAllString(text, " ")
	text = spaces.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	tokens := dropLegalSuffixes(strings.Split(text, " "))
	return strings.Join(tokens, " ")
}

// dropLegalSuffixes removes every occurrence of a legal-suffix token run.
func dropLegalSuffixes(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); {
		if n := suffixRunAt(tokens, i); n > 0 {
			i += n
			continue
		}
		out = append(out, tokens[i])
		i++
	}
	return out
}

// suffixRunAt reports the length of the legal-suffix run starting at i,
// or 0 if none starts there.
func suffixRunAt(tokens []string, i int) int {
	for _, run := range legalSuffixes {
		if i+len(run) > len(tokens) {
			continue
		}
		matched := true
		for j, want := range run {
			if tokens[i+j] != want {
				matched = false
				break
			}
		}
		if matched {
			return len(run)
		}
	}
	return 0
}
