// Package pipeline runs the scan: it streams each source line by line,
// scores every line against the query, and drives the context accumulators
// so that before/after context is captured in a single forward pass.
package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fzgrep/fzgrep/internal/collect"
	"github.com/fzgrep/fzgrep/internal/fuzzy"
	"github.com/fzgrep/fzgrep/internal/match"
	"github.com/fzgrep/fzgrep/internal/source"
)

// maxLineSize caps the length of a single input line (1 MiB). Lines beyond
// this surface as a scan error on the offending source.
const maxLineSize = 1 << 20

// Options controls what a scan records besides the matching lines.
type Options struct {
	// BeforeContext is the number of leading context lines to capture.
	BeforeContext int

	// AfterContext is the number of trailing context lines to capture.
	AfterContext int

	// TrackLineNumbers records the 1-based line number of each match.
	TrackLineNumbers bool

	// TrackSourceNames records the source display name on each match.
	TrackSourceNames bool

	// CacheSize overrides the line-score cache capacity when positive.
	CacheSize int
}

// Engine scans sources sequentially and feeds one Collector, so all sources
// contribute to a single global ranking. It is not safe for concurrent use.
type Engine struct {
	scorer    *fuzzy.Scorer
	opts      Options
	collector collect.Collector
}

// NewEngine builds an Engine for query. The collector is injected and owned
// by the caller; it spans the whole run.
func NewEngine(query string, opts Options, collector collect.Collector) (*Engine, error) {
	cacheSize := opts.CacheSize
	if cacheSize <= 0 {
		cacheSize = fuzzy.DefaultCacheSize
	}
	scorer, err := fuzzy.NewScorer(query, cacheSize)
	if err != nil {
		return nil, err
	}
	return &Engine{scorer: scorer, opts: opts, collector: collector}, nil
}

// Scan processes a single source from start to EOF.
//
// For every line, in order: open accumulators are fed first (a line is
// trailing context for earlier matches before anything else), then the line
// is scored, then a hit spawns a new accumulator seeded with a snapshot of
// the leading window, and finally the line enters the window itself — so a
// matching line never appears in its own context. At EOF any accumulator
// still waiting for trailing lines is finalized with what it has.
//
// An I/O error abandons the source's in-flight matches and is returned;
// records already completed remain in the collector.
func (e *Engine) Scan(src *source.Source) error {
	scanner := bufio.NewScanner(src.Reader())
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	window := match.NewWindow(e.opts.BeforeContext)
	var open []*match.Accumulator
	lineNumber := 0

	for scanner.Scan() {
		line := scanner.Text()
		lineNumber++

		open = e.feedOpen(open, line)

		if m := e.scorer.Score(line); m != nil {
			acc := match.NewAccumulator(line, *m, e.location(src, lineNumber),
				window.Snapshot(), e.opts.AfterContext)
			if acc.Ready() {
				e.collector.Add(acc.Record())
			} else {
				open = append(open, acc)
			}
		}

		window.Push(line)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", src.DisplayName(), err)
	}

	for _, acc := range open {
		e.collector.Add(acc.Finalize())
	}
	return nil
}

// feedOpen gives line to every pending accumulator in insertion order,
// emitting and dropping the ones that become ready.
func (e *Engine) feedOpen(open []*match.Accumulator, line string) []*match.Accumulator {
	remaining := open[:0]
	for _, acc := range open {
		acc.Feed(line)
		if acc.Ready() {
			e.collector.Add(acc.Record())
		} else {
			remaining = append(remaining, acc)
		}
	}
	return remaining
}

func (e *Engine) location(src *source.Source, lineNumber int) match.Location {
	var loc match.Location
	if e.opts.TrackSourceNames {
		loc.SourceName = src.Name()
	}
	if e.opts.TrackLineNumbers {
		loc.LineNumber = lineNumber
	}
	return loc
}

// Run scans every source in order and returns the collector's ranking.
//
// A failing source is logged and skipped; the error comes back joined with
// the other failures so the caller can report them and pick the exit code,
// but it never hides results from the sources that did scan.
func Run(query string, sources []*source.Source, opts Options, collector collect.Collector) ([]match.Record, error) {
	engine, err := NewEngine(query, opts, collector)
	if err != nil {
		return nil, err
	}

	var errs []error
	for _, src := range sources {
		slog.Debug("scanning source", slog.String("source", src.DisplayName()))
		if err := engine.Scan(src); err != nil {
			slog.Warn("source failed", slog.String("source", src.DisplayName()),
				slog.String("error", err.Error()))
			errs = append(errs, err)
		}
		if err := src.Close(); err != nil {
			slog.Debug("failed to close source", slog.String("source", src.DisplayName()))
		}
	}

	return collector.Ranked(), errors.Join(errs...)
}
