// Package dispatch drives the sequential, throttled, cancellable send loop.
//
// One message goes out per selected entry, in selection order, through an
// injected mailer.Sender. A transport failure is recorded and the run
// continues; nothing is retried within a run. Between successive sends the
// loop pauses for the configured delay to respect provider rate limits; the
// pause is a blocking wait in the loop, never a background timer, so there is
// at most one in-flight send at any time.
//
// Cancellation is checked between entries and during the pause, never
// mid-send: a message already handed to the transport always completes, and
// outcomes recorded before cancellation stay valid.
package dispatch
