package tickbar

import "io"

// Option configures a Bar at construction time.
type Option func(*config)

// config holds construction-time settings shared by both bar modes.
type config struct {
	out io.Writer
}

// WithWriter sets where status lines are written.
// Default: os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		c.out = w
	}
}
