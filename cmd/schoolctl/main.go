package main

import (
	"fmt"
	"os"
	"school-directory-service/internal/config"
	"school-directory-service/internal/platform/obs"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	source   string
	logLevel string

	logger *zap.Logger
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "schoolctl",
		Short: "Inspect the school directory from the command line",
		Long: `schoolctl loads the school directory from the configured source
(beacon, file, sqlite or postgres) and prints it in the same order the
web page would show it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = obs.NewLogger(logLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&source, "source", "", "directory source: beacon, file, sqlite, postgres (defaults to SCHOOL_SOURCE)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newKeysCmd())

	return rootCmd
}

// loadConfig applies the --source override on top of the environment.
func loadConfig() (config.Config, error) {
	cfg := config.Defaults()
	if source != "" {
		cfg.Source = config.Source(strings.ToLower(source))
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func main() {
	config.LoadDotEnv()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
