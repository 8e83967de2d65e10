package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/dmitrymomot/mailroom/pkg/match"
)

// columnAliases maps tolerated header spellings to canonical fields, so the
// sheet works whether the accountant labels the column "Email", "Correo" or
// "E-mail".
var columnAliases = map[string]string{
	"nombre":    "name",
	"name":      "name",
	"cliente":   "name",
	"email":     "email",
	"e-mail":    "email",
	"correo":    "email",
	"dirección": "address",
	"direccion": "address",
	"address":   "address",
}

// ContactsFromXLSX loads contacts from the first sheet of an XLSX workbook.
// The header row is resolved through columnAliases; name and email columns
// are required, address is optional. Rows with an empty email are dropped;
// every returned contact can be written to.
func ContactsFromXLSX(r io.Reader) ([]match.Contact, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadWorkbook, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadWorkbook, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: name, email", ErrMissingColumns)
	}

	cols := make(map[string]int)
	for i, h := range rows[0] {
		if field, ok := columnAliases[strings.ToLower(strings.TrimSpace(h))]; ok {
			if _, dup := cols[field]; !dup {
				cols[field] = i
			}
		}
	}
	var missing []string
	for _, required := range []string{"name", "email"} {
		if _, ok := cols[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	var contacts []match.Contact
	for _, row := range rows[1:] {
		c := match.Contact{
			Name:  cell(row, cols["name"]),
			Email: cell(row, cols["email"]),
		}
		if addrIdx, ok := cols["address"]; ok {
			c.Address = cell(row, addrIdx)
		}
		if c.Email == "" {
			continue // unusable row, excluded from the working set
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}

// cell returns the trimmed value at idx; excelize omits trailing empty cells,
// so short rows read as empty strings.
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
