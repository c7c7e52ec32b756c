package source

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter decides which file paths participate in a recursive scan based on
// include and exclude glob patterns. Patterns use doublestar syntax, so
// "**/*.go" works as expected across directory levels.
//
// An empty include list admits everything; excludes are then applied on top.
// Patterns match against both the full slash-separated path and its base
// name, so "--include '*.txt'" catches nested files the way grep users
// expect.
type Filter struct {
	include []string
	exclude []string
}

// NewFilter validates the patterns and builds a Filter.
func NewFilter(include, exclude []string) (*Filter, error) {
	for _, pattern := range append(append([]string{}, include...), exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid glob pattern: %q", pattern)
		}
	}
	return &Filter{include: include, exclude: exclude}, nil
}

// Match reports whether path passes the filter.
func (f *Filter) Match(path string) bool {
	if f == nil {
		return true
	}

	slashed := filepath.ToSlash(path)
	if len(f.include) > 0 && !matchAny(f.include, slashed) {
		return false
	}
	return !matchAny(f.exclude, slashed)
}

func matchAny(patterns []string, path string) bool {
	base := filepath.Base(path)
	for _, pattern := range patterns {
		// Patterns are pre-validated, so the error can only be nil here.
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, base); ok {
			return true
		}
	}
	return false
}
