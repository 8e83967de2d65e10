package mailer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailroom/pkg/mailer"
)

func TestEmailValidate(t *testing.T) {
	t.Parallel()

	valid := func() *mailer.Email {
		return &mailer.Email{
			To:      []string{"client@example.com"},
			Subject: "Modelo 347",
			Text:    "Estimado cliente,",
		}
	}

	require.NoError(t, valid().Validate())

	e := valid()
	e.To = nil
	assert.ErrorIs(t, e.Validate(), mailer.ErrNoRecipient)

	e = valid()
	e.Subject = ""
	assert.ErrorIs(t, e.Validate(), mailer.ErrNoSubject)

	e = valid()
	e.Text = ""
	assert.ErrorIs(t, e.Validate(), mailer.ErrNoContent)
}

func TestPDFAttachment(t *testing.T) {
	t.Parallel()

	a := mailer.PDFAttachment("Acme Corp", []byte("%PDF-1.4"))
	assert.Equal(t, "Acme Corp.pdf", a.Filename)
	assert.Equal(t, "application/pdf", a.ContentType)
	assert.Equal(t, []byte("%PDF-1.4"), a.Content)
}

func TestRecipient(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Acme <acme@example.com>", mailer.Recipient("Acme", "acme@example.com"))
	assert.Equal(t, "acme@example.com", mailer.Recipient("", "acme@example.com"))
}
