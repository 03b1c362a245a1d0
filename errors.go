package tickbar

import "errors"

// Sentinel errors for common failure conditions.
var (
	// ErrNoLength indicates the wrapped source cannot report an exact
	// remaining element count, so bounded mode is unavailable.
	ErrNoLength = errors.New("source does not report its length")
)
