package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles applied to each piece of the output.
type Styles struct {
	// SourceName styles the file name part of the location prefix.
	SourceName lipgloss.Style

	// LineNumber styles the line number part of the location prefix.
	LineNumber lipgloss.Style

	// Separator styles the ":" between prefix parts and the line.
	Separator lipgloss.Style

	// SelectedLine styles the non-matching characters of a matching line.
	SelectedLine lipgloss.Style

	// SelectedMatch styles the matched characters of a matching line.
	SelectedMatch lipgloss.Style

	// Context styles leading and trailing context lines.
	Context lipgloss.Style
}

// DefaultStyles returns the colored style set, mirroring the palette grep
// users expect: magenta names, green numbers, bold red matches.
func DefaultStyles() Styles {
	return Styles{
		SourceName:    lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		LineNumber:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Separator:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		SelectedLine:  lipgloss.NewStyle(),
		SelectedMatch: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Context:       lipgloss.NewStyle().Faint(true),
	}
}

// PlainStyles returns a style set that leaves every piece untouched.
func PlainStyles() Styles {
	return Styles{}
}

// StylesFor picks the style set for the given mode and output stream.
func StylesFor(mode Mode, out io.Writer) Styles {
	if mode.Enabled(out) {
		return DefaultStyles()
	}
	return PlainStyles()
}
