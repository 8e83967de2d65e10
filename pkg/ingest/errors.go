package ingest

import "errors"

var (
	// ErrBadArchive indicates the uploaded file is not a readable ZIP.
	ErrBadArchive = errors.New("ingest: not a valid ZIP archive")

	// ErrBadWorkbook indicates the contact sheet could not be opened.
	ErrBadWorkbook = errors.New("ingest: not a valid XLSX workbook")

	// ErrMissingColumns indicates the contact sheet lacks required columns.
	ErrMissingColumns = errors.New("ingest: contact sheet is missing required columns")

	// ErrBadPDF indicates the combined letter PDF could not be parsed.
	ErrBadPDF = errors.New("ingest: not a valid PDF")

	// ErrMarkerNotFound indicates no page of the combined PDF contains the
	// configured letter marker.
	ErrMarkerNotFound = errors.New("ingest: letter marker not found in PDF")
)
