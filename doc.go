// Package mailroom matches client PDF letters to contact records and bulk
// sends each matched letter as an email attachment.
//
// The pipeline has two halves with a human in the middle. Matching resolves
// every document against the contact sheet by fuzzy name comparison (address
// as fallback) and produces a reviewable selection: confident matches start
// selected, misses start excluded and can never be sent. Dispatch then walks
// the selection strictly in order, one message at a time through an injected
// transport, pausing between sends and recording a per-recipient outcome.
// A failed send is logged and skipped, never fatal.
//
// Typical usage:
//
//	transport, err := smtp.New(cfg.SMTP)
//	if err != nil {
//		return err
//	}
//
//	p, err := mailroom.New(docs, contacts, transport,
//		mailroom.WithTemplates(cfg.SubjectTemplate, cfg.BodyTemplate),
//		mailroom.WithDelay(cfg.Delay()),
//		mailroom.WithThreshold(cfg.Threshold),
//	)
//	if err != nil {
//		return err
//	}
//
//	selection, err := p.Match(ctx)
//	if err != nil {
//		return err
//	}
//	// ... operator reviews selection ...
//	log, err := p.Dispatch(ctx)
//
// All state lives in memory for the duration of one run; re-running with the
// same selection is how an operator retries failed sends.
package mailroom
