// Package ingest loads the pipeline's two inputs, client letters as PDFs
// and the contact sheet, into the typed records the matcher operates on.
//
// Letters arrive either as a ZIP of individual PDFs or as one combined PDF
// with all letters back to back, which SplitLetters cuts apart using a
// marker string (the sender's tax ID printed on each letter's first page).
// Contacts come from an XLSX sheet with tolerant column aliases; rows
// without a usable email are dropped here, so downstream code never sees a
// contact it cannot write to.
package ingest
