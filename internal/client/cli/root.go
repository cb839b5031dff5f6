package cli

import (
	"bufio"
	"context"

	"github.com/dmitrijs2005/carswipe/internal/client/config"
	"github.com/spf13/cobra"
)

// Root greets the user and runs the REPL until exit.
func (a *App) Root(ctx context.Context) {
	a.printf("Welcome to carswipe messages (type 'help' for commands)\n")

	go a.StartOnlineStatusWatcher(ctx, a.config.PollInterval)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader), a.printf)
}

// NewRootCommand is the process entry point. Settings come from cfg, which
// config.LoadConfig has already resolved from the same command line, so the
// short flags it handles pass through here untouched.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "carswipe",
		Short: "End-to-end encrypted buyer/seller messaging",
		Long: `End-to-end encrypted buyer/seller messaging.

Flags handled by the config loader:
  -a string   server address
  -k string   key cache file
  -i int      poll interval in seconds`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := NewApp(cfg)
			if err != nil {
				return err
			}
			app.Run(cmd.Context())
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (.json or .toml)")

	return root
}
