// Package commands wires the mailroom pipeline into a CLI.
//
// `match` previews how documents resolve against the contact sheet without
// touching a mail server. `send` runs the full pipeline: match, apply
// operator exclusions, dispatch with throttling, and write the send log.
// Ctrl-C stops the run between sends; the in-flight message completes and
// the partial log is still written.
package commands
