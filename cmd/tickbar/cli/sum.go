package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/meigma/tickbar"
)

var sumDelims string

var sumCmd = &cobra.Command{
	Use:   "sum <directory>",
	Short: "Total file sizes under a bounded progress bar",
	Long: `Sum walks a directory, then sizes every regular file while rendering
a bounded progress bar on stderr. The file list is collected up front so the
bar knows its total.

Examples:
  tickbar sum ./data
  tickbar sum --delims "<>" /var/log`,
	Args: cobra.ExactArgs(1),
	RunE: runSum,
}

func init() {
	sumCmd.Flags().StringVar(&sumDelims, "delims", "", "Two-character delimiter pair, e.g. \"<>\"")
	rootCmd.AddCommand(sumCmd)
}

func runSum(_ *cobra.Command, args []string) error {
	log := logger()

	var paths []string
	err := filepath.WalkDir(args[0], func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk %s: %w", args[0], err)
	}
	log.Debug("collected files", "count", len(paths))

	bar, err := tickbar.New(
		tickbar.FromSlice(paths),
		tickbar.WithWriter(progressWriter(os.Stderr)),
	).WithBounds()
	if err != nil {
		return err
	}
	if sumDelims != "" {
		open, closing, parseErr := parseDelims(sumDelims)
		if parseErr != nil {
			return parseErr
		}
		bar.WithDelims(open, closing)
	}

	var total int64
	for path := range bar.All() {
		info, statErr := os.Stat(path)
		if statErr != nil {
			return statErr
		}
		total += info.Size()
	}

	fmt.Printf("%d files, %s\n", len(paths), humanize.Bytes(uint64(total)))
	return nil
}
