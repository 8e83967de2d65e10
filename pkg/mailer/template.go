package mailer

import (
	"errors"
	"strings"
	texttemplate "text/template"
)

// Data holds the per-recipient values available to subject and body
// templates as {{.Name}}, {{.Address}} and {{.Document}}.
type Data struct {
	Name     string
	Address  string
	Document string
}

// Template performs placeholder substitution for one subject/body pair.
// Parsing happens once; Render is then cheap per recipient.
type Template struct {
	subject *texttemplate.Template
	body    *texttemplate.Template
}

// NewTemplate parses the subject and body templates. Plain strings without
// placeholders are valid templates, so static subjects just work.
func NewTemplate(subject, body string) (*Template, error) {
	st, err := texttemplate.New("subject").Option("missingkey=error").Parse(subject)
	if err != nil {
		return nil, errors.Join(ErrBadTemplate, err)
	}
	bt, err := texttemplate.New("body").Option("missingkey=error").Parse(body)
	if err != nil {
		return nil, errors.Join(ErrBadTemplate, err)
	}
	return &Template{subject: st, body: bt}, nil
}

// Render substitutes data into the subject and body.
func (t *Template) Render(data Data) (subject, body string, err error) {
	var sb, bb strings.Builder
	if err := t.subject.Execute(&sb, data); err != nil {
		return "", "", errors.Join(ErrRenderFailed, err)
	}
	if err := t.body.Execute(&bb, data); err != nil {
		return "", "", errors.Join(ErrRenderFailed, err)
	}
	return sb.String(), bb.String(), nil
}
