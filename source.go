package tickbar

import "iter"

// Source yields a forward-only sequence of elements on demand.
type Source[T any] interface {
	// Next returns the next element; ok is false once the sequence is
	// exhausted. Sources are not restartable.
	Next() (v T, ok bool)
}

// SizedSource is a Source that can report its exact remaining element count
// without consuming anything. Only sized sources support bounded mode.
type SizedSource[T any] interface {
	Source[T]
	// Len reports the number of elements remaining.
	Len() int
}

// SliceSource yields the elements of a slice in order.
// It implements SizedSource.
type SliceSource[T any] struct {
	items []T
	pos   int
}

// FromSlice returns a sized source over items.
func FromSlice[T any](items []T) *SliceSource[T] {
	return &SliceSource[T]{items: items}
}

// Next implements Source.
func (s *SliceSource[T]) Next() (T, bool) {
	if s.pos >= len(s.items) {
		var zero T
		return zero, false
	}
	v := s.items[s.pos]
	s.pos++
	return v, true
}

// Len implements SizedSource.
func (s *SliceSource[T]) Len() int {
	return len(s.items) - s.pos
}

// SeqSource adapts an iter.Seq to a Source.
type SeqSource[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

// FromSeq returns a source draining seq via iter.Pull. The pull iterator is
// released when the sequence is exhausted or Stop is called.
func FromSeq[T any](seq iter.Seq[T]) *SeqSource[T] {
	next, stop := iter.Pull(seq)
	return &SeqSource[T]{next: next, stop: stop}
}

// Next implements Source.
func (s *SeqSource[T]) Next() (T, bool) {
	if s.done {
		var zero T
		return zero, false
	}
	v, ok := s.next()
	if !ok {
		s.done = true
		s.stop()
	}
	return v, ok
}

// Stop releases the underlying pull iterator before exhaustion.
// Safe to call more than once.
func (s *SeqSource[T]) Stop() {
	if s.done {
		return
	}
	s.done = true
	s.stop()
}

// ChanSource yields values received from a channel until it is closed.
type ChanSource[T any] struct {
	ch <-chan T
}

// FromChan returns a source that drains ch.
func FromChan[T any](ch <-chan T) *ChanSource[T] {
	return &ChanSource[T]{ch: ch}
}

// Next implements Source. It blocks until a value arrives or ch is closed.
func (s *ChanSource[T]) Next() (T, bool) {
	v, ok := <-s.ch
	return v, ok
}

// FuncSource adapts a plain function to a Source. Useful for unbounded
// feeds such as generators and scanners.
type FuncSource[T any] func() (T, bool)

// FromFunc returns a source backed by fn.
func FromFunc[T any](fn func() (T, bool)) FuncSource[T] {
	return FuncSource[T](fn)
}

// Next implements Source.
func (f FuncSource[T]) Next() (T, bool) {
	return f()
}
