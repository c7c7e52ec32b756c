// Package source abstracts the inputs of a scan: files on disk, directories
// to descend into, and the standard input. It owns target expansion and
// include/exclude filtering; the scan pipeline only ever sees (name, lines).
package source

import (
	"fmt"
	"io"
	"os"
)

// StdinDisplayName is used when the standard input shows up in logs or
// diagnostics. Match locations keep an empty name for stdin.
const StdinDisplayName = "(standard input)"

// Source is one logical stream of lines with an optional display name.
type Source struct {
	name   string
	reader io.Reader
	closer io.Closer
}

// File opens path as a Source named after it.
func File(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return &Source{name: path, reader: f, closer: f}, nil
}

// Stdin wraps the standard input. Its name is empty: stdin matches carry no
// source name.
func Stdin() *Source {
	return &Source{reader: os.Stdin}
}

// NewSource builds a Source from an arbitrary reader, mainly for tests.
func NewSource(name string, r io.Reader) *Source {
	return &Source{name: name, reader: r}
}

// Name returns the display name, empty for the standard input.
func (s *Source) Name() string {
	return s.name
}

// DisplayName returns the name to show in logs, substituting a placeholder
// for the standard input.
func (s *Source) DisplayName() string {
	if s.name == "" {
		return StdinDisplayName
	}
	return s.name
}

// Reader returns the underlying line stream.
func (s *Source) Reader() io.Reader {
	return s.reader
}

// Close releases the underlying file, if any.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
