package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mailroom"
	"github.com/dmitrymomot/mailroom/pkg/config"
	"github.com/dmitrymomot/mailroom/pkg/logger"
	"github.com/dmitrymomot/mailroom/pkg/mailer"
	"github.com/dmitrymomot/mailroom/pkg/mailer/resend"
	"github.com/dmitrymomot/mailroom/pkg/mailer/smtp"
)

// send: match, confirm, dispatch and write the send log.
func sendCmd() *cobra.Command {
	var (
		excludes      []string
		yes           bool
		logPath       string
		xlsxPath      string
		unmatchedPath string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Match documents to contacts and send them as email attachments",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cfg.Sentry.DSN != "" {
				log = logger.NewWithSentry(cfg.Sentry)
			}
			if marker == "" {
				marker = cfg.Marker
			}

			docs, err := loadDocuments()
			if err != nil {
				return err
			}
			contacts, err := loadContacts()
			if err != nil {
				return err
			}
			sender, err := buildSender(cfg)
			if err != nil {
				return err
			}

			pipeline, err := mailroom.New(docs, contacts, sender,
				mailroom.WithTemplates(cfg.SubjectTemplate, cfg.BodyTemplate),
				mailroom.WithThreshold(cfg.Threshold),
				mailroom.WithDelay(cfg.Delay()),
				mailroom.WithLogger(log),
				mailroom.WithObserver(func(done, total int) {
					fmt.Printf("[%d/%d] processed\n", done, total)
				}),
			)
			if err != nil {
				return err
			}

			selection, err := pipeline.Match(cmd.Context())
			if err != nil {
				return err
			}
			for _, id := range excludes {
				if err := selection.SetIncluded(id, false); err != nil {
					return err
				}
			}

			printSelection(os.Stdout, selection)
			if unmatchedPath != "" {
				if err := writeUnmatched(unmatchedPath, selection); err != nil {
					return err
				}
			}

			selected := selection.Selected()
			if len(selected) == 0 {
				fmt.Println("nothing to send")
				return nil
			}
			if !yes && !confirm(len(selected)) {
				fmt.Println("aborted")
				return nil
			}

			outcomeLog, err := pipeline.Dispatch(cmd.Context())
			if err != nil {
				return err
			}

			f, err := os.Create(logPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", logPath, err)
			}
			defer f.Close()
			if err := outcomeLog.WriteCSV(f); err != nil {
				return err
			}
			if xlsxPath != "" {
				xf, err := os.Create(xlsxPath)
				if err != nil {
					return fmt.Errorf("create %s: %w", xlsxPath, err)
				}
				defer xf.Close()
				if err := outcomeLog.WriteXLSX(xf); err != nil {
					return err
				}
			}

			summary := outcomeLog.Summary()
			fmt.Printf("\ndone: %d sent, %d failed, log written to %s\n", summary.Sent, summary.Failed, logPath)
			if cmd.Context().Err() != nil {
				fmt.Printf("run cancelled after %d of %d messages\n", outcomeLog.Len(), len(selected))
			}
			return nil
		},
	}

	addInputFlags(cmd)
	cmd.Flags().StringArrayVar(&excludes, "exclude", nil, "document ID to exclude from sending (repeatable)")
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	cmd.Flags().StringVar(&logPath, "log", "send-log.csv", "path of the CSV send log")
	cmd.Flags().StringVar(&xlsxPath, "log-xlsx", "", "also write the send log as XLSX")
	cmd.Flags().StringVar(&unmatchedPath, "unmatched", "", "write unmatched documents to this XLSX file")
	return cmd
}

func buildSender(cfg config.Config) (mailer.Sender, error) {
	switch cfg.Provider {
	case "resend":
		return resend.New(cfg.Resend), nil
	default:
		return smtp.New(cfg.SMTP)
	}
}

func confirm(n int) bool {
	fmt.Printf("send %d messages? [y/N]: ", n)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
