// Package normalize canonicalizes free-text company names and postal
// addresses so fuzzy comparison is meaningful.
//
// Canonicalization lowercases, folds punctuation into spaces, strips Spanish
// legal-entity suffixes ("S.L.", "SA", "S.L.U.", ...) and removes diacritics.
// The result is intended for comparison only; keep the original string for
// display.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/mailroom/pkg/normalize"
//
//	normalize.Normalize("ACME CORP, S.L.")
//	// Output: "acme corp"
//
//	normalize.Normalize("Café Ibérico S.A.")
//	// Output: "cafe iberico"
//
// Normalize is pure, total and idempotent: it never fails, the empty string
// maps to the empty string, and Normalize(Normalize(x)) == Normalize(x).
package normalize
