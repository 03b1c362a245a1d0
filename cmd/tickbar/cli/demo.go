package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meigma/tickbar"
)

var (
	demoDelims    string
	demoUnbounded bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render a synthetic progress run",
	Long: `Demo drives a progress bar over a synthetic element sequence.

Examples:
  tickbar demo --items 50 --delay 25ms
  tickbar demo --items 10 --delims "<>"
  tickbar demo --unbounded --items 20`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().Int("items", 50, "Number of elements to consume")
	demoCmd.Flags().Duration("delay", 25*time.Millisecond, "Pause between elements")
	demoCmd.Flags().StringVar(&demoDelims, "delims", "", "Two-character delimiter pair, e.g. \"<>\"")
	demoCmd.Flags().BoolVar(&demoUnbounded, "unbounded", false, "Hide the total and render in unbounded mode")
	//nolint:errcheck // flags were registered above
	viper.BindPFlag("demo.items", demoCmd.Flags().Lookup("items"))
	//nolint:errcheck // flags were registered above
	viper.BindPFlag("demo.delay", demoCmd.Flags().Lookup("delay"))
	rootCmd.AddCommand(demoCmd)
}

func runDemo(_ *cobra.Command, _ []string) error {
	items := viper.GetInt("demo.items")
	delay := viper.GetDuration("demo.delay")
	if items < 0 {
		return fmt.Errorf("items must be non-negative, got %d", items)
	}

	log := logger()
	log.Debug("starting demo", "items", items, "delay", delay, "unbounded", demoUnbounded)

	values := make([]int, items)
	for i := range values {
		values[i] = i
	}
	out := progressWriter(os.Stdout)

	if demoUnbounded {
		bar := tickbar.New(tickbar.FromSlice(values), tickbar.WithWriter(out))
		for range bar.All() {
			time.Sleep(delay)
		}
		return nil
	}

	bar, err := tickbar.New(tickbar.FromSlice(values), tickbar.WithWriter(out)).WithBounds()
	if err != nil {
		return err
	}
	if demoDelims != "" {
		open, closing, parseErr := parseDelims(demoDelims)
		if parseErr != nil {
			return parseErr
		}
		bar.WithDelims(open, closing)
	}
	for range bar.All() {
		time.Sleep(delay)
	}
	return nil
}

// parseDelims splits a two-rune delimiter argument into its pair.
func parseDelims(s string) (open, closing rune, err error) {
	runes := []rune(s)
	if len(runes) != 2 {
		return 0, 0, fmt.Errorf("delims must be exactly two characters, got %q", s)
	}
	return runes[0], runes[1], nil
}
