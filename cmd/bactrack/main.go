package main

import (
	"os"

	"github.com/KirkDiggler/bactrack/internal/common/log"
	"github.com/KirkDiggler/bactrack/internal/config"
	"github.com/spf13/cobra"
)

// rootOptions is shared by every subcommand
type rootOptions struct {
	envFile string
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "bactrack",
		Short:         "Drinking session tracker with BAC-aware drink suggestions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var files []string
			if opts.envFile != "" {
				files = append(files, opts.envFile)
			}

			cfg, err := config.Load(files...)
			if err != nil {
				return err
			}
			opts.cfg = cfg

			log.Configure(log.Config{
				Level:  cfg.LogLevel,
				Output: cmd.ErrOrStderr(),
				Pretty: cfg.LogPretty,
			})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "path to a .env file (defaults to ./.env when present)")

	root.AddCommand(
		newServeCmd(opts),
		newCatalogCmd(opts),
		newEstimateCmd(),
		newSensorCmd(opts),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger := log.Base()
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
