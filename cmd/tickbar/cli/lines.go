package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/meigma/tickbar"
)

var linesCmd = &cobra.Command{
	Use:   "lines [file]",
	Short: "Count lines under an unbounded progress bar",
	Long: `Lines counts the lines of a file, or of stdin when no file is given,
while rendering an unbounded progress bar on stderr.

Examples:
  tickbar lines access.log
  cat access.log | tickbar lines`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLines,
}

func init() {
	rootCmd.AddCommand(linesCmd)
}

func runLines(_ *cobra.Command, args []string) error {
	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	scanner := bufio.NewScanner(in)
	bar := tickbar.New(tickbar.FromFunc(func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	}), tickbar.WithWriter(progressWriter(os.Stderr)))

	count := 0
	for range bar.All() {
		count++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	fmt.Printf("%s lines\n", humanize.Comma(int64(count)))
	return nil
}
