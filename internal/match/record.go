// Package match defines the match record produced by a scan and the context
// accumulation machinery that fills in the lines around a match during a
// single forward pass over a source.
package match

import "github.com/fzgrep/fzgrep/internal/fuzzy"

// Location identifies where a match was found. Both fields are optional:
// tracking is configured per run, and stdin has no source name.
type Location struct {
	// SourceName is the display name of the source, empty when untracked or
	// when the source is the standard input.
	SourceName string

	// LineNumber is the 1-based matching line number, 0 when untracked.
	LineNumber int
}

// Context holds the lines surrounding a matching line. Nil slices mean the
// corresponding side was not requested; a non-nil slice may hold fewer lines
// than requested when the source boundary cut it short.
type Context struct {
	Before []string
	After  []string
}

// Record is one completed match: the line, its fuzzy score, and the optional
// location and context metadata. Records are immutable once emitted.
type Record struct {
	Line     string
	Match    fuzzy.Match
	Location Location
	Context  Context
}

// Less reports whether r ranks below other. Ordering is defined solely by
// the fuzzy score; records with equal scores are considered equivalent no
// matter what line or location they carry.
func (r *Record) Less(other *Record) bool {
	return r.Match.Score < other.Match.Score
}
