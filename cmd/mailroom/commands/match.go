package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mailroom/pkg/match"
	"github.com/dmitrymomot/mailroom/pkg/review"
)

// match: preview document-to-contact resolution without sending anything.
func matchCmd() *cobra.Command {
	var (
		threshold     int
		unmatchedPath string
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Preview how documents resolve against the contact sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := loadDocuments()
			if err != nil {
				return err
			}
			contacts, err := loadContacts()
			if err != nil {
				return err
			}

			results, err := match.Match(cmd.Context(), docs, contacts, match.Options{Threshold: threshold})
			if err != nil {
				return err
			}
			set := review.NewSet(results)
			printSelection(os.Stdout, set)

			matched := 0
			for _, r := range results {
				if r.Matched() {
					matched++
				}
			}
			fmt.Printf("\n%d of %d documents matched (threshold %d)\n", matched, len(results), threshold)

			if unmatchedPath != "" && matched < len(results) {
				if err := writeUnmatched(unmatchedPath, set); err != nil {
					return err
				}
				fmt.Printf("unmatched list written to %s\n", unmatchedPath)
			}
			return nil
		},
	}

	addInputFlags(cmd)
	cmd.Flags().IntVar(&threshold, "threshold", match.DefaultThreshold, "minimum accepted match score (1-100)")
	cmd.Flags().StringVar(&unmatchedPath, "unmatched", "", "write unmatched documents to this XLSX file")
	return cmd
}
