package ingest_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dmitrymomot/mailroom/pkg/ingest"
	"github.com/dmitrymomot/mailroom/pkg/match"
)

func buildZIP(t *testing.T, files map[string][]byte) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return bytes.NewReader(buf.Bytes())
}

func TestFromZIP(t *testing.T) {
	t.Parallel()

	r := buildZIP(t, map[string][]byte{
		"cartas/Acme Corp S.L..pdf": []byte("%PDF-1.4 acme"),
		"Globex SA.PDF":             []byte("%PDF-1.4 globex"),
		"notas.txt":                 []byte("ignore me"),
		"__MACOSX/._Acme.pdf":       []byte("resource fork"),
	})

	docs, skipped, err := ingest.FromZIP(r, r.Size())
	require.NoError(t, err)
	require.Len(t, docs, 2)

	byID := make(map[string][]byte)
	for _, d := range docs {
		byID[d.ID] = d.Content
	}
	assert.Equal(t, []byte("%PDF-1.4 acme"), byID["Acme Corp S.L."], "ID is the base name without extension")
	assert.Equal(t, []byte("%PDF-1.4 globex"), byID["Globex SA"], "extension match is case-insensitive")
	assert.Equal(t, []string{"notas.txt"}, skipped)
}

func TestFromZIPDuplicateBaseNames(t *testing.T) {
	t.Parallel()

	// Same client filename in two year folders must stay two distinct
	// documents, each keeping its own bytes.
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, entry := range []struct {
		name    string
		content string
	}{
		{"2024/Acme Corp.pdf", "%PDF-1.4 carta 2024"},
		{"2025/Acme Corp.pdf", "%PDF-1.4 carta 2025"},
	} {
		w, err := zw.Create(entry.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(entry.content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	r := bytes.NewReader(buf.Bytes())

	docs, skipped, err := ingest.FromZIP(r, r.Size())
	require.NoError(t, err)
	require.Empty(t, skipped)
	require.Len(t, docs, 2)

	assert.Equal(t, "Acme Corp", docs[0].ID)
	assert.Equal(t, []byte("%PDF-1.4 carta 2024"), docs[0].Content)
	assert.Equal(t, "Acme Corp (2)", docs[1].ID)
	assert.Equal(t, []byte("%PDF-1.4 carta 2025"), docs[1].Content)
}

func TestFromZIPRejectsGarbage(t *testing.T) {
	t.Parallel()

	r := bytes.NewReader([]byte("this is not a zip"))
	_, _, err := ingest.FromZIP(r, r.Size())
	require.ErrorIs(t, err, ingest.ErrBadArchive)
}

func buildWorkbook(t *testing.T, header []string, rows [][]string) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

func TestContactsFromXLSX(t *testing.T) {
	t.Parallel()

	t.Run("canonical columns", func(t *testing.T) {
		t.Parallel()
		r := buildWorkbook(t,
			[]string{"Nombre", "Email", "Dirección"},
			[][]string{
				{"ACME CORP, S.L.", "a@x.com", "Calle Gran Vía 12"},
				{"Globex S.A.", "b@x.com", ""},
				{"Sin Correo SL", "", "Av. del Puerto 3"},
			})

		contacts, err := ingest.ContactsFromXLSX(r)
		require.NoError(t, err)
		require.Len(t, contacts, 2, "rows without email are dropped")
		assert.Equal(t, match.Contact{Name: "ACME CORP, S.L.", Email: "a@x.com", Address: "Calle Gran Vía 12"}, contacts[0])
		assert.Equal(t, match.Contact{Name: "Globex S.A.", Email: "b@x.com"}, contacts[1])
	})

	t.Run("aliased columns", func(t *testing.T) {
		t.Parallel()
		r := buildWorkbook(t,
			[]string{"Cliente", "Correo", "Direccion"},
			[][]string{{"Acme", "a@x.com", "C/ Mayor 1"}})

		contacts, err := ingest.ContactsFromXLSX(r)
		require.NoError(t, err)
		require.Len(t, contacts, 1)
		assert.Equal(t, "a@x.com", contacts[0].Email)
		assert.Equal(t, "C/ Mayor 1", contacts[0].Address)
	})

	t.Run("address column is optional", func(t *testing.T) {
		t.Parallel()
		r := buildWorkbook(t,
			[]string{"Nombre", "Email"},
			[][]string{{"Acme", "a@x.com"}})

		contacts, err := ingest.ContactsFromXLSX(r)
		require.NoError(t, err)
		require.Len(t, contacts, 1)
		assert.Empty(t, contacts[0].Address)
	})

	t.Run("missing required columns", func(t *testing.T) {
		t.Parallel()
		r := buildWorkbook(t,
			[]string{"Nombre", "Teléfono"},
			[][]string{{"Acme", "600000000"}})

		_, err := ingest.ContactsFromXLSX(r)
		require.ErrorIs(t, err, ingest.ErrMissingColumns)
	})

	t.Run("values are trimmed", func(t *testing.T) {
		t.Parallel()
		r := buildWorkbook(t,
			[]string{"Nombre", "Email"},
			[][]string{{"  Acme  ", "  a@x.com  "}})

		contacts, err := ingest.ContactsFromXLSX(r)
		require.NoError(t, err)
		assert.Equal(t, "Acme", contacts[0].Name)
		assert.Equal(t, "a@x.com", contacts[0].Email)
	})
}

func TestWriteUnmatchedXLSX(t *testing.T) {
	t.Parallel()

	contact := &match.Contact{Name: "Acme", Email: "a@x.com"}
	results := []match.Result{
		{DocumentID: "Acme Corp", Contact: contact, Score: 95, Field: match.FieldName},
		{DocumentID: "Misterio Uno", ContactIndex: -1, Score: 40, Field: match.FieldNone},
		{DocumentID: "Misterio Dos", ContactIndex: -1, Score: 12, Field: match.FieldNone},
	}

	var buf bytes.Buffer
	require.NoError(t, ingest.WriteUnmatchedXLSX(results, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Unmatched")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Unmatched Document", rows[0][0])
	assert.Equal(t, "Misterio Uno.pdf", rows[1][0])
	assert.Equal(t, "Misterio Dos.pdf", rows[2][0])
}
