package mailer

import "errors"

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates no text body was provided.
	ErrNoContent = errors.New("email must have a text body")

	// ErrBadTemplate indicates the subject or body template failed to parse.
	ErrBadTemplate = errors.New("invalid message template")

	// ErrRenderFailed indicates placeholder substitution failed.
	ErrRenderFailed = errors.New("failed to render template")

	// ErrSendFailed indicates email sending failed.
	ErrSendFailed = errors.New("failed to send email")
)
