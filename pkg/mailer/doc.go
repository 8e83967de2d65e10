// Package mailer defines the outbound email message model and the transport
// capability the dispatcher sends through.
//
// The [Sender] interface is the only wire contract: providers under
// mailer/smtp and mailer/resend implement it, and tests inject fakes.
// [Template] covers subject/body placeholder substitution ({{.Name}},
// {{.Address}} and {{.Document}} resolved per recipient) and nothing more.
package mailer
