package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mailroom/pkg/ingest"
	"github.com/dmitrymomot/mailroom/pkg/match"
	"github.com/dmitrymomot/mailroom/pkg/review"
)

// input flags shared by match and send.
var (
	zipPath      string
	lettersPath  string
	marker       string
	contactsPath string
)

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&zipPath, "zip", "", "ZIP archive of per-client PDF letters")
	cmd.Flags().StringVar(&lettersPath, "letters", "", "combined PDF to split into per-client letters")
	cmd.Flags().StringVar(&marker, "marker", "", "text marking the first page of each letter (with --letters)")
	cmd.Flags().StringVar(&contactsPath, "contacts", "", "XLSX contact sheet (name, email, optional address)")
	_ = cmd.MarkFlagRequired("contacts")
	cmd.MarkFlagsMutuallyExclusive("zip", "letters")
	cmd.MarkFlagsOneRequired("zip", "letters")
}

// loadDocuments reads letters from whichever source flag was given.
func loadDocuments() ([]match.Document, error) {
	if zipPath != "" {
		f, err := os.Open(zipPath)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", zipPath, err)
		}
		defer f.Close()
		st, err := f.Stat()
		if err != nil {
			return nil, err
		}
		docs, skipped, err := ingest.FromZIP(f, st.Size())
		if err != nil {
			return nil, err
		}
		for _, name := range skipped {
			fmt.Fprintf(os.Stderr, "skipping non-PDF entry: %s\n", name)
		}
		return docs, nil
	}

	if marker == "" {
		return nil, fmt.Errorf("--letters requires --marker (or LETTER_MARKER)")
	}
	raw, err := os.ReadFile(lettersPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", lettersPath, err)
	}
	return ingest.SplitLetters(raw, marker)
}

func loadContacts() ([]match.Contact, error) {
	f, err := os.Open(contactsPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", contactsPath, err)
	}
	defer f.Close()
	return ingest.ContactsFromXLSX(f)
}

// printSelection renders the reviewable match table.
func printSelection(w io.Writer, set *review.Set) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DOCUMENT\tCONTACT\tEMAIL\tSCORE\tVIA\tTIER")
	for _, e := range set.Entries() {
		if e.Matched() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
				e.DocumentID, e.Contact.Name, e.Contact.Email, e.Score, e.Field, e.Tier())
		} else {
			fmt.Fprintf(tw, "%s\t-\t-\t%d\t-\t%s\n", e.DocumentID, e.Score, e.Tier())
		}
	}
	tw.Flush()
}

func writeUnmatched(path string, set *review.Set) error {
	var results []match.Result
	for _, e := range set.Entries() {
		results = append(results, e.Result)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return ingest.WriteUnmatchedXLSX(results, f)
}
