// Package collect provides the result-collection strategies for a scan:
// keep everything, or keep only the top-K records under a hard memory cap.
package collect

import (
	"sort"

	"github.com/fzgrep/fzgrep/internal/match"
)

// Collector accumulates completed match records and hands them back ranked
// by score, best first. One Collector instance spans a whole run; every
// source feeds the same ranking.
type Collector interface {
	// Add transfers ownership of rec to the collector.
	Add(rec match.Record)

	// Ranked returns the retained records sorted by descending score.
	// The collector must not be used after Ranked is called.
	Ranked() []match.Record
}

// Unbounded retains every record and sorts once at the end. This is the
// default strategy and the cheaper one when the match volume is moderate.
type Unbounded struct {
	records []match.Record
}

// NewUnbounded creates an empty unbounded collector.
func NewUnbounded() *Unbounded {
	return &Unbounded{}
}

// Add appends rec.
func (c *Unbounded) Add(rec match.Record) {
	c.records = append(c.records, rec)
}

// Ranked sorts the records by descending score. The sort is stable, so
// equal-score records keep their insertion order; that order is an artifact,
// not a contract.
func (c *Unbounded) Ranked() []match.Record {
	sort.SliceStable(c.records, func(i, j int) bool {
		return c.records[j].Less(&c.records[i])
	})
	return c.records
}

// TopBracket retains at most K records, always kept sorted by descending
// score. It pays extra sort work per insertion in exchange for a hard memory
// ceiling, which wins when the expected match volume dwarfs K.
type TopBracket struct {
	capacity int
	records  []match.Record
}

// NewTopBracket creates a collector that keeps the capacity highest-scoring
// records. A capacity of 0 retains nothing.
func NewTopBracket(capacity int) *TopBracket {
	return &TopBracket{
		capacity: capacity,
		records:  make([]match.Record, 0, capacity),
	}
}

// Push inserts rec if it beats the current lowest-scoring record (or if there
// is spare capacity). Ties lose to records already held, so earlier arrivals
// win. Returns whether the record was retained.
func (c *TopBracket) Push(rec match.Record) bool {
	if len(c.records) == c.capacity {
		if c.capacity == 0 || !c.records[len(c.records)-1].Less(&rec) {
			return false
		}
		c.records = c.records[:len(c.records)-1]
	}

	c.records = append(c.records, rec)
	sort.SliceStable(c.records, func(i, j int) bool {
		return c.records[j].Less(&c.records[i])
	})
	return true
}

// Add implements Collector.
func (c *TopBracket) Add(rec match.Record) {
	c.Push(rec)
}

// Ranked returns the retained records; they are already sorted.
func (c *TopBracket) Ranked() []match.Record {
	return c.records
}
