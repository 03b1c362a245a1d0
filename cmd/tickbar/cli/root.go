// Package cli implements the tickbar command-line interface.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meigma/tickbar"
	"github.com/meigma/tickbar/cmd/tickbar/cli/config"
)

// Build information set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	progressFlag string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "tickbar",
	Short: "Render terminal progress bars over element sequences",
	Long: `Tickbar renders a single-line terminal progress indicator while a
sequence of elements is consumed.

Bounded mode shows a percentage and a filled/unfilled bar when the total
element count is known in advance; unbounded mode shows the running count
and elapsed time.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return loadConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&progressFlag, "progress", "auto", "Progress display mode: auto, tty, or plain")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose debug logging")
	//nolint:errcheck // flag was registered above
	viper.BindPFlag("progress", rootCmd.PersistentFlags().Lookup("progress"))
	rootCmd.Version = version
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
	}
	return err
}

// loadConfig loads the optional config file into Viper.
// A missing file is not an error; flags and defaults still apply.
func loadConfig() error {
	configDir, err := config.Dir()
	if err != nil {
		// No resolvable home directory; run on flags alone.
		return nil
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	// Reject files with mistyped values up front rather than at first use.
	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// logger returns a stderr logger honoring the verbose flag.
func logger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// formatError converts tickbar errors to user-friendly messages.
func formatError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, tickbar.ErrNoLength):
		return "Error: source does not report its length (bounded mode unavailable)"
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
