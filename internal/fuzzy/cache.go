package fuzzy

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the number of memoized lines. Real-world inputs
// repeat lines constantly (blank lines, braces, license headers), so even a
// small cache absorbs most of the DP work.
const DefaultCacheSize = 4096

// Scorer scores lines against a fixed query, memoizing results per line.
// It is not safe for concurrent use.
type Scorer struct {
	query string
	cache *lru.Cache[string, *Match]
}

// NewScorer creates a Scorer for query with the given cache size.
// Returns an error only if the cache cannot be created.
func NewScorer(query string, cacheSize int) (*Scorer, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, *Match](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create score cache: %w", err)
	}
	return &Scorer{query: query, cache: cache}, nil
}

// Query returns the query this scorer was built for.
func (s *Scorer) Query() string {
	return s.query
}

// Score scores line against the query, consulting the cache first.
// Negative outcomes (no match) are cached as well.
func (s *Scorer) Score(line string) *Match {
	if m, ok := s.cache.Get(line); ok {
		return m
	}
	m := MatchLine(s.query, line)
	s.cache.Add(line, m)
	return m
}
