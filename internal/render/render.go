// Package render formats progress status lines.
package render

import (
	"fmt"
	"strings"
)

// Clear erases from the cursor to the end of the screen and moves the cursor
// up one line, so the next status line overwrites the previous one.
const Clear = "\x1b[0J\x1b[1A"

// barWidth is the column count bars are scaled to once the total no longer
// fits at full resolution.
const barWidth = 30

const (
	filledGlyph = "▓"
	emptyGlyph  = "░"
)

// Delims is the delimiter pair drawn around a bounded bar.
type Delims struct {
	Open  rune
	Close rune
}

// DefaultDelims is the delimiter pair used until overridden.
var DefaultDelims = Delims{Open: '[', Close: ']'}

// Unbounded formats the status line for a bar with no known total.
func Unbounded(count int, elapsed float64) string {
	return fmt.Sprintf("[%d in %.4f Secs]", count, elapsed)
}

// Bounded formats the status line for a bar with a known total.
// A zero total renders as complete rather than dividing by zero.
func Bounded(count, total int, d Delims, elapsed float64) string {
	percent := 100
	if total > 0 {
		percent = count * 100 / total
	}
	filled, empty := barCells(count, total, percent)
	return fmt.Sprintf("%3d%% %c%s%s%c %d/%d %.4f Secs",
		percent,
		d.Open,
		strings.Repeat(filledGlyph, filled),
		strings.Repeat(emptyGlyph, empty),
		d.Close,
		count,
		total,
		elapsed,
	)
}

// barCells returns the filled and empty cell counts. Totals below barWidth
// draw one cell per element; larger totals scale to barWidth columns.
// Retrievals past exhaustion keep counting, so cells clamp to keep the bar
// from over- or underflowing.
func barCells(count, total, percent int) (filled, empty int) {
	if total < barWidth {
		if count > total {
			count = total
		}
		return count, total - count
	}
	if percent > 100 {
		percent = 100
	}
	filled = barWidth * percent / 100
	return filled, barWidth - filled
}
