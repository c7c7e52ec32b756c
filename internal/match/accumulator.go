package match

import "github.com/fzgrep/fzgrep/internal/fuzzy"

// Accumulator collects the trailing ("after") context of a single in-flight
// match. It starts Pending with a fixed number of slots and becomes Ready
// either when the slots fill up or when Finalize is called at the source
// boundary with slots still open.
//
// Feeding or finalizing a Ready accumulator is a contract violation by the
// caller and panics: the scan loop must emit an accumulator the moment it
// becomes Ready.
type Accumulator struct {
	record    Record
	remaining int
	ready     bool
}

// NewAccumulator starts accumulating context for a match on line.
//
// before is a snapshot of the leading window at the time of the match (nil
// when before-context is not requested). afterSize is the number of trailing
// lines to collect; with afterSize == 0 the accumulator is born Ready and
// carries no trailing context.
func NewAccumulator(line string, m fuzzy.Match, loc Location, before []string, afterSize int) *Accumulator {
	a := &Accumulator{
		record: Record{
			Line:     line,
			Match:    m,
			Location: loc,
			Context:  Context{Before: before},
		},
		remaining: afterSize,
	}
	if afterSize == 0 {
		a.ready = true
	} else {
		a.record.Context.After = make([]string, 0, afterSize)
	}
	return a
}

// Ready reports whether the trailing context is complete.
func (a *Accumulator) Ready() bool {
	return a.ready
}

// Feed appends line to the trailing context. Exactly one Feed call consumes
// one slot; the accumulator becomes Ready when the last slot fills.
func (a *Accumulator) Feed(line string) {
	if a.ready {
		panic("match: accumulator fed after completion")
	}
	a.record.Context.After = append(a.record.Context.After, line)
	a.remaining--
	if a.remaining == 0 {
		a.ready = true
	}
}

// Finalize completes a Pending accumulator early, returning the record with
// however many trailing lines were collected. This is the end-of-source path.
func (a *Accumulator) Finalize() Record {
	if a.ready {
		panic("match: accumulator finalized after completion")
	}
	a.ready = true
	return a.record
}

// Record returns the completed record. Only valid once Ready.
func (a *Accumulator) Record() Record {
	if !a.ready {
		panic("match: record taken from a pending accumulator")
	}
	return a.record
}
