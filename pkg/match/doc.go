// Package match resolves client documents against contact records by fuzzy
// name comparison.
//
// Each document identifier (typically a PDF filename without extension) is
// normalized and scored against every contact's normalized name. The best
// name score wins when it clears the threshold; otherwise the contact
// addresses are tried as a fallback. Documents that clear neither field are
// reported as unmatched, keeping the best score observed so an operator can
// see how close the nearest candidate was.
//
// Results come back in document input order, one per document, and ties are
// broken deterministically in favor of the earliest contact in input order.
package match
