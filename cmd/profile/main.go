//go:build profiling
// +build profiling

// Command profile benchmarks tickbar rendering throughput and writes
// cpu/fgprof/trace/heap profiles for analysis.
// Run with: go run -tags profiling ./cmd/profile
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"time"

	"github.com/felixge/fgprof"

	"github.com/meigma/tickbar"
)

type profileKind string

const (
	profileCPU   profileKind = "cpu"
	profileFG    profileKind = "fgprof"
	profileTrace profileKind = "trace"
	profileNone  profileKind = "none"
)

func main() {
	var (
		items   = flag.Int("items", 1000000, "number of elements to render")
		bounded = flag.Bool("bounded", true, "render in bounded mode")
		profile = flag.String("profile", "cpu", "profile type: cpu, fgprof, trace, none")
		outDir  = flag.String("out", "profiles", "output directory for profiles")
	)
	flag.Parse()

	kind := profileKind(*profile)
	if !isValidProfile(kind) {
		log.Fatalf("invalid profile %q (expected cpu, fgprof, trace, none)", *profile)
	}
	if *items < 1 {
		log.Fatalf("items must be >= 1")
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create profile output dir: %v", err)
	}
	label := time.Now().UTC().Format("20060102T150405Z")

	stopProfile, err := startProfile(kind, *outDir, label)
	if err != nil {
		log.Fatalf("start profile: %v", err)
	}

	start := time.Now()
	n := run(*items, *bounded)
	elapsed := time.Since(start)
	log.Printf("rendered %d status lines in %s (%.0f lines/s)",
		n, elapsed, float64(n)/elapsed.Seconds())

	if stopErr := stopProfile(); stopErr != nil {
		log.Fatalf("stop profile: %v", stopErr)
	}
	if err := writeHeapProfile(*outDir, label); err != nil {
		log.Fatalf("write heap profile: %v", err)
	}
}

// run drives a bar over items synthetic elements against io.Discard and
// returns the number of renders performed.
func run(items int, bounded bool) int {
	values := make([]int, items)
	bar := tickbar.New(tickbar.FromSlice(values), tickbar.WithWriter(io.Discard))

	if bounded {
		bb, err := bar.WithBounds()
		if err != nil {
			log.Fatalf("attach bounds: %v", err)
		}
		for range bb.All() {
		}
		return bb.Count()
	}
	for range bar.All() {
	}
	return bar.Count()
}

func isValidProfile(kind profileKind) bool {
	switch kind {
	case profileCPU, profileFG, profileTrace, profileNone:
		return true
	default:
		return false
	}
}

func startProfile(kind profileKind, outDir, label string) (func() error, error) {
	switch kind {
	case profileCPU:
		path := filepath.Join(outDir, "cpu_"+label+".pprof")
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return nil, err
		}
		return func() error {
			pprof.StopCPUProfile()
			return f.Close()
		}, nil
	case profileFG:
		path := filepath.Join(outDir, "fgprof_"+label+".pprof")
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		return func() error {
			stopErr := stop()
			closeErr := f.Close()
			return errors.Join(stopErr, closeErr)
		}, nil
	case profileTrace:
		path := filepath.Join(outDir, "trace_"+label+".out")
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		if err := trace.Start(f); err != nil {
			_ = f.Close()
			return nil, err
		}
		return func() error {
			trace.Stop()
			return f.Close()
		}, nil
	case profileNone:
		return func() error { return nil }, nil
	default:
		return nil, fmt.Errorf("unknown profile type: %s", kind)
	}
}

func writeHeapProfile(outDir, label string) error {
	path := filepath.Join(outDir, "heap_"+label+".pprof")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	runtime.GC()
	return pprof.WriteHeapProfile(f)
}
