package mailer

import "fmt"

// Email represents a fully-prepared message ready for sending.
type Email struct {
	From        string // Override default sender (if provider allows)
	To          []string
	Subject     string
	Text        string // Plain text body
	Attachments []Attachment
}

// Attachment represents a file attached to an email.
type Attachment struct {
	Filename    string // Display name for the attachment
	ContentType string // MIME type (e.g., "application/pdf")
	Content     []byte // Raw file content
}

// PDFAttachment builds a PDF attachment from a document identifier and its
// raw bytes. The identifier gains a .pdf extension for the recipient.
func PDFAttachment(documentID string, content []byte) Attachment {
	return Attachment{
		Filename:    documentID + ".pdf",
		ContentType: "application/pdf",
		Content:     content,
	}
}

// Validate checks the message is sendable: at least one recipient, a
// subject and a text body.
func (e *Email) Validate() error {
	switch {
	case len(e.To) == 0:
		return ErrNoRecipient
	case e.Subject == "":
		return ErrNoSubject
	case e.Text == "":
		return ErrNoContent
	}
	return nil
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
