// Package render turns ranked match records into the text a run prints.
// Output follows the grep convention: an optional source name and line
// number prefix, the matching line with its matched characters highlighted,
// and the surrounding context lines when context was requested.
package render

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"

	"github.com/fzgrep/fzgrep/internal/match"
)

// Mode selects when colored output is produced.
type Mode string

const (
	// ModeAuto colors the output only when it goes to a terminal.
	ModeAuto Mode = "auto"

	// ModeAlways colors the output unconditionally.
	ModeAlways Mode = "always"

	// ModeNever leaves the output plain.
	ModeNever Mode = "never"
)

// ParseMode converts a --color flag value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAuto, ModeAlways, ModeNever:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
}

// Enabled reports whether color should be applied when writing to out.
func (m Mode) Enabled(out io.Writer) bool {
	switch m {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		f, ok := out.(*os.File)
		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	}
}

// Renderer writes match records to an output stream using a style set.
type Renderer struct {
	out    io.Writer
	styles Styles
}

// New builds a Renderer writing to out with the given styles.
func New(out io.Writer, styles Styles) *Renderer {
	return &Renderer{out: out, styles: styles}
}

// Render writes every record in order: leading context, then the matching
// line, then trailing context. Context lines carry the same source name as
// the match and line numbers derived from the match's own.
func (r *Renderer) Render(records []match.Record) error {
	for _, rec := range records {
		for i, line := range rec.Context.Before {
			number := 0
			if rec.Location.LineNumber > 0 {
				number = rec.Location.LineNumber - len(rec.Context.Before) + i
			}
			if err := r.contextLine(rec.Location.SourceName, number, line); err != nil {
				return err
			}
		}

		if err := r.selectedLine(rec); err != nil {
			return err
		}

		for i, line := range rec.Context.After {
			number := 0
			if rec.Location.LineNumber > 0 {
				number = rec.Location.LineNumber + i + 1
			}
			if err := r.contextLine(rec.Location.SourceName, number, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) contextLine(sourceName string, number int, line string) error {
	_, err := fmt.Fprintln(r.out, r.prefix(sourceName, number)+r.styles.Context.Render(line))
	return err
}

// selectedLine highlights the matched characters. Adjacent match positions
// are grouped into runs so each run is styled as one piece.
func (r *Renderer) selectedLine(rec match.Record) error {
	var out string

	runes := []rune(rec.Line)
	cursor := 0
	for _, run := range groupPositions(rec.Match.Positions) {
		if run.start > cursor {
			out += r.styles.SelectedLine.Render(string(runes[cursor:run.start]))
		}
		out += r.styles.SelectedMatch.Render(string(runes[run.start:run.end]))
		cursor = run.end
	}
	if cursor < len(runes) {
		out += r.styles.SelectedLine.Render(string(runes[cursor:]))
	}

	_, err := fmt.Fprintln(r.out, r.prefix(rec.Location.SourceName, rec.Location.LineNumber)+out)
	return err
}

// prefix builds the "name:line:" location prefix. Either part is omitted
// when it was not tracked for this run.
func (r *Renderer) prefix(sourceName string, number int) string {
	var out string
	if sourceName != "" {
		out += r.styles.SourceName.Render(sourceName) + r.styles.Separator.Render(":")
	}
	if number > 0 {
		out += r.styles.LineNumber.Render(strconv.Itoa(number)) + r.styles.Separator.Render(":")
	}
	return out
}

// span is a half-open range of rune indices within the matching line.
type span struct {
	start int
	end   int
}

// groupPositions collapses sorted match positions into contiguous spans.
func groupPositions(positions []int) []span {
	if len(positions) == 0 {
		return nil
	}

	var spans []span
	current := span{start: positions[0], end: positions[0] + 1}
	for _, pos := range positions[1:] {
		if pos == current.end {
			current.end++
			continue
		}
		spans = append(spans, current)
		current = span{start: pos, end: pos + 1}
	}
	return append(spans, current)
}
