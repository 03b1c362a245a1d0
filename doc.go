// Package tickbar renders a single-line terminal progress indicator while a
// sequence of elements is consumed.
//
// A bar wraps a Source and forwards every retrieval unchanged; the only side
// effect is a status line redrawn in place before each retrieval. When the
// wrapped source reports its exact remaining length, the bar can switch to
// bounded mode and show a percentage and a filled/unfilled bar.
//
// # Basic Usage
//
// Wrap a source and drive it like any iterator:
//
//	bar := tickbar.New(tickbar.FromSlice(items))
//	for item := range bar.All() {
//	    process(item)
//	}
//
// # Bounded Mode
//
// Sized sources can show a percentage and a bar:
//
//	bar, err := tickbar.New(tickbar.FromSlice(items)).WithBounds()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for item := range bar.WithDelims('<', '>').All() {
//	    process(item)
//	}
//
// WithDelims exists only on BoundedBar, so delimiters cannot be set before
// bounds are attached. The transition is one-way.
//
// # Output
//
// Status lines go to os.Stdout by default; override with WithWriter. Each
// line is preceded by a VT100 erase-and-rewind escape sequence so it
// overwrites the previous one. Terminals without escape support show garbled
// output rather than failing.
package tickbar
