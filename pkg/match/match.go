package match

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/mailroom/pkg/normalize"
	"github.com/dmitrymomot/mailroom/pkg/textmatch"
)

// DefaultThreshold is the minimum score accepted as a match.
const DefaultThreshold = 80

// Options configures a matching run.
type Options struct {
	// Threshold is the minimum accepted score. Zero means DefaultThreshold.
	Threshold int
	// Parallelism bounds concurrent document scoring. Zero means NumCPU.
	Parallelism int
}

func (o Options) withDefaults() Options {
	if o.Threshold <= 0 {
		o.Threshold = DefaultThreshold
	}
	if o.Parallelism <= 0 {
		o.Parallelism = runtime.NumCPU()
	}
	return o
}

// Match scores every document against every contact and returns exactly one
// Result per document, in document input order. Scoring across documents
// runs in parallel; each comparison is pure, so only the result slot for the
// document is written. The only error condition is context cancellation.
func Match(ctx context.Context, docs []Document, contacts []Contact, opts Options) ([]Result, error) {
	opts = opts.withDefaults()

	// Normalize contact fields once; the scoring loop is O(docs*contacts).
	names := make([]string, len(contacts))
	addresses := make([]string, len(contacts))
	for i, c := range contacts {
		names[i] = normalize.Normalize(c.Name)
		addresses[i] = normalize.Normalize(c.Address)
	}

	results := make([]Result, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)
	for i, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = matchOne(doc, contacts, names, addresses, opts.Threshold)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// matchOne resolves a single document: name field first, address fallback.
func matchOne(doc Document, contacts []Contact, names, addresses []string, threshold int) Result {
	miss := Result{DocumentID: doc.ID, ContactIndex: -1, Field: FieldNone}

	query := normalize.Normalize(doc.ID)
	if query == "" {
		return miss
	}

	nameIdx, nameScore := best(query, names)
	if nameScore >= threshold {
		return Result{
			DocumentID:   doc.ID,
			Contact:      &contacts[nameIdx],
			ContactIndex: nameIdx,
			Score:        nameScore,
			Field:        FieldName,
		}
	}

	addrIdx, addrScore := best(query, addresses)
	if addrScore >= threshold {
		return Result{
			DocumentID:   doc.ID,
			Contact:      &contacts[addrIdx],
			ContactIndex: addrIdx,
			Score:        addrScore,
			Field:        FieldAddress,
		}
	}

	// Keep the best score observed so the operator sees near misses.
	miss.Score = max(nameScore, addrScore)
	return miss
}

// best returns the index and score of the highest-scoring candidate.
// Ties keep the earliest index, which makes runs reproducible.
func best(query string, candidates []string) (int, int) {
	bestIdx, bestScore := -1, 0
	for i, c := range candidates {
		if score := textmatch.TokenSortRatio(query, c); score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	return bestIdx, bestScore
}
