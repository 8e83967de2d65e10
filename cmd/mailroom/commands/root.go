package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mailroom/pkg/logger"
)

var (
	configPath string
	verbose    bool

	log *slog.Logger
)

// Execute runs the CLI. The context carries signal cancellation: Ctrl-C
// stops a send run between messages.
func Execute(ctx context.Context) error {
	root := &cobra.Command{
		Use:          "mailroom",
		Short:        "Match client PDF letters to contacts and bulk send them by email",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log = logger.New()
			} else {
				log = logger.NewNope()
			}
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file overriding environment values")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable structured logging to stdout")

	root.AddCommand(matchCmd(), sendCmd())
	return root.ExecuteContext(ctx)
}
