package tickbar

import (
	"fmt"
	"io"
	"iter"
	"os"
	"time"

	"github.com/meigma/tickbar/internal/render"
)

// Bar decorates a Source with a progress status line while the total element
// count is unknown. Every retrieval renders the line first, then forwards to
// the wrapped source; yielded values pass through unchanged.
type Bar[T any] struct {
	src   Source[T]
	count int
	start time.Time
	out   io.Writer
	now   func() time.Time
}

// New wraps src in an unbounded progress bar. The bar takes ownership of
// src; nothing else should consume it. One blank line is emitted immediately
// to reserve the row that each render overwrites.
func New[T any](src Source[T], opts ...Option) *Bar[T] {
	cfg := config{out: os.Stdout}
	for _, opt := range opts {
		opt(&cfg)
	}
	b := &Bar[T]{
		src: src,
		out: cfg.out,
		now: time.Now,
	}
	b.start = b.now()
	fmt.Fprintln(b.out)
	return b
}

// Next renders the status line, then retrieves the next element from the
// wrapped source. The returned value and ok flag are exactly what the source
// yields. Render happens once per call, including the call that discovers
// exhaustion.
func (b *Bar[T]) Next() (T, bool) {
	b.render()
	b.count++
	return b.src.Next()
}

// All returns a range-over-func view that drives Next until exhaustion.
func (b *Bar[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := b.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Count reports how many retrievals have been performed so far.
func (b *Bar[T]) Count() int {
	return b.count
}

// WithBounds switches the bar to bounded mode, capturing the source's exact
// remaining length as the fixed total. The elapsed-time baseline restarts;
// the retrieval count carries over. The transition is one-way.
//
// Returns ErrNoLength if the wrapped source does not implement SizedSource.
func (b *Bar[T]) WithBounds() (*BoundedBar[T], error) {
	sized, ok := b.src.(SizedSource[T])
	if !ok {
		return nil, ErrNoLength
	}
	return &BoundedBar[T]{
		src:    b.src,
		count:  b.count,
		total:  sized.Len(),
		start:  b.now(),
		out:    b.out,
		now:    b.now,
		delims: render.DefaultDelims,
	}, nil
}

func (b *Bar[T]) render() {
	elapsed := b.now().Sub(b.start).Seconds()
	fmt.Fprintln(b.out, render.Clear+render.Unbounded(b.count, elapsed))
}

// BoundedBar decorates a Source with a percentage and a fixed-width bar.
// Obtained from Bar.WithBounds; there is no way back to unbounded mode.
type BoundedBar[T any] struct {
	src    Source[T]
	count  int
	total  int
	start  time.Time
	out    io.Writer
	now    func() time.Time
	delims render.Delims
}

// WithDelims overrides the delimiter pair drawn around the bar. The default
// is '[' and ']'. Delimiters are re-read on every render, so overriding
// mid-run takes effect on the next line.
func (b *BoundedBar[T]) WithDelims(open, close rune) *BoundedBar[T] {
	b.delims = render.Delims{Open: open, Close: close}
	return b
}

// Next renders the status line, then retrieves the next element from the
// wrapped source. See Bar.Next.
func (b *BoundedBar[T]) Next() (T, bool) {
	b.render()
	b.count++
	return b.src.Next()
}

// All returns a range-over-func view that drives Next until exhaustion.
func (b *BoundedBar[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := b.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Count reports how many retrievals have been performed so far.
func (b *BoundedBar[T]) Count() int {
	return b.count
}

// Total reports the element count captured when bounds were attached.
func (b *BoundedBar[T]) Total() int {
	return b.total
}

func (b *BoundedBar[T]) render() {
	elapsed := b.now().Sub(b.start).Seconds()
	fmt.Fprintln(b.out, render.Clear+render.Bounded(b.count, b.total, b.delims, elapsed))
}
