// Package textmatch scores string similarity on a 0-100 scale for fuzzy
// record matching.
//
// TokenSortRatio is order-insensitive: tokens are sorted before comparison,
// so "corp acme" and "acme corp" score 100. Identical strings always score
// 100 and fully disjoint strings score near 0, which is the monotonicity
// the matcher's threshold relies on.
package textmatch

import (
	"math"
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// lev is a reusable Levenshtein metric instance. Inputs are lowercased
// before scoring, so case sensitivity never triggers.
var lev = metrics.NewLevenshtein()

// TokenSortRatio returns the similarity of a and b in [0, 100] after
// sorting their whitespace-separated tokens. Two empty strings score 0:
// an empty identifier must never be treated as a perfect match.
func TokenSortRatio(a, b string) int {
	a = sortTokens(a)
	b = sortTokens(b)
	if a == "" && b == "" {
		return 0
	}
	return int(math.Round(strutil.Similarity(a, b, lev) * 100))
}

// sortTokens lowercases s and rejoins its fields in sorted order.
func sortTokens(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	slices.Sort(fields)
	return strings.Join(fields, " ")
}
