package match

// Window is a FIFO ring of the most recent lines read from the current
// source, used to seed the leading ("before") context of new matches.
// A zero capacity window stores nothing and snapshots to nil.
type Window struct {
	capacity int
	lines    []string
}

// NewWindow creates a Window holding at most capacity lines.
func NewWindow(capacity int) *Window {
	w := &Window{capacity: capacity}
	if capacity > 0 {
		w.lines = make([]string, 0, capacity)
	}
	return w
}

// Push appends line, evicting the oldest stored line when at capacity.
func (w *Window) Push(line string) {
	if w.capacity == 0 {
		return
	}
	if len(w.lines) == w.capacity {
		copy(w.lines, w.lines[1:])
		w.lines = w.lines[:len(w.lines)-1]
	}
	w.lines = append(w.lines, line)
}

// Snapshot returns an independent copy of the stored lines, oldest first.
// Returns nil for a zero-capacity window so downstream consumers can tell
// "no before-context requested" apart from "requested but none available".
func (w *Window) Snapshot() []string {
	if w.capacity == 0 {
		return nil
	}
	snap := make([]string, len(w.lines))
	copy(snap, w.lines)
	return snap
}
