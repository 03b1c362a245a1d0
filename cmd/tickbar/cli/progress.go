package cli

import (
	"io"
	"os"

	"github.com/spf13/viper"
	"golang.org/x/term"
)

// progressMode returns the configured progress mode: "auto", "tty", or "plain".
func progressMode() string {
	mode := viper.GetString("progress")
	switch mode {
	case "auto", "tty", "plain":
		return mode
	default:
		return "auto"
	}
}

// shouldShowProgress reports whether status lines should be rendered to f.
func shouldShowProgress(f *os.File) bool {
	mode := progressMode()

	// Plain mode disables progress
	if mode == "plain" {
		return false
	}

	// TTY mode forces progress regardless of terminal detection
	if mode == "tty" {
		return true
	}

	// Auto mode: show progress only if connected to a TTY
	return term.IsTerminal(int(f.Fd()))
}

// progressWriter returns f when progress should render there, io.Discard
// otherwise.
func progressWriter(f *os.File) io.Writer {
	if shouldShowProgress(f) {
		return f
	}
	return io.Discard
}
