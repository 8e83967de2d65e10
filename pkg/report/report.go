// Package report accumulates send outcomes into an exportable table.
//
// The table has fixed columns (document, destination email, status, error
// detail, timestamp) and keeps chronological send order; nothing is ever
// re-sorted. Exports are CSV (round-trippable via ReadCSV) and XLSX for the
// operator download.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dmitrymomot/mailroom/pkg/dispatch"
)

// Columns is the fixed export header, in order.
var Columns = []string{"Document", "Email", "Status", "Error", "Timestamp"}

// TimeLayout is the timestamp format used in exports.
const TimeLayout = "2006-01-02 15:04:05"

var (
	// ErrBadHeader indicates a CSV import whose header does not match Columns.
	ErrBadHeader = errors.New("report: unexpected CSV header")

	// ErrBadRow indicates a CSV row that cannot be parsed back into an outcome.
	ErrBadRow = errors.New("report: malformed CSV row")
)

// Log accumulates outcomes in send order. Append-only.
type Log struct {
	outcomes []dispatch.Outcome
}

// New creates an empty log.
func New() *Log {
	return &Log{}
}

// Append adds outcomes to the log in the order given.
func (l *Log) Append(outcomes ...dispatch.Outcome) {
	l.outcomes = append(l.outcomes, outcomes...)
}

// Outcomes returns a copy of the accumulated outcomes in send order.
func (l *Log) Outcomes() []dispatch.Outcome {
	out := make([]dispatch.Outcome, len(l.outcomes))
	copy(out, l.outcomes)
	return out
}

// Len returns the number of recorded outcomes.
func (l *Log) Len() int { return len(l.outcomes) }

// Rows renders the outcomes as string cells matching Columns.
func (l *Log) Rows() [][]string {
	rows := make([][]string, len(l.outcomes))
	for i, o := range l.outcomes {
		rows[i] = []string{
			o.DocumentID,
			o.Email,
			string(o.Status),
			o.Detail,
			o.Timestamp.Format(TimeLayout),
		}
	}
	return rows
}

// Summary holds per-status counts for operator feedback.
type Summary struct {
	Sent   int
	Failed int
}

// Summary counts outcomes by status.
func (l *Log) Summary() Summary {
	var s Summary
	for _, o := range l.outcomes {
		if o.Status == dispatch.StatusSent {
			s.Sent++
		} else {
			s.Failed++
		}
	}
	return s
}

// WriteCSV exports the log, header included, preserving send order.
func (l *Log) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("report: failed to write CSV header: %w", err)
	}
	for _, row := range l.Rows() {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a previously exported log. Rows come back in file order,
// which is send order.
func ReadCSV(r io.Reader) (*Log, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Columns)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("report: failed to read CSV header: %w", err)
	}
	for i, col := range Columns {
		if header[i] != col {
			return nil, fmt.Errorf("%w: got %v", ErrBadHeader, header)
		}
	}

	log := New()
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return log, nil
		}
		if err != nil {
			return nil, fmt.Errorf("report: failed to read CSV row: %w", err)
		}

		ts, err := time.ParseInLocation(TimeLayout, row[4], time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadRow, err)
		}
		status := dispatch.Status(row[2])
		if status != dispatch.StatusSent && status != dispatch.StatusError {
			return nil, fmt.Errorf("%w: unknown status %q", ErrBadRow, row[2])
		}

		log.Append(dispatch.Outcome{
			DocumentID: row[0],
			Email:      row[1],
			Status:     status,
			Detail:     row[3],
			Timestamp:  ts,
		})
	}
}
