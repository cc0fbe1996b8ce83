package ui

import (
	"io"
)

// Severity classifies the visual weight of a piece of inline text. The print
// layer maps each value to a terminal style; RecordingUI sees plain text.
type Severity uint8

const (
	SeverityInfo    Severity = iota // plain — no colour emphasis
	SeveritySuccess                 // green  — available / positive
	SeverityWarn                    // yellow — not configured / uncertain
	SeverityError                   // red    — unavailable / failed
)

// StyledText pairs a plain string with a Severity annotation.
type StyledText struct {
	Text     string
	Severity Severity
}

// UI provides all terminal interaction for enslens commands.
//
// It abstracts output and the one interactive flow (picking a graph node for
// a deep lookup) so that production code uses TerminalUI while tests use
// RecordingUI with scripted inputs and a captured entry log.
type UI interface {
	// Style returns the text from t coloured according to its Severity.
	// When colours are disabled (piped output, RecordingUI) the plain text
	// comes back unchanged.
	Style(t StyledText) string

	// Info writes a neutral status line (no prefix, no color).
	Info(format string, args ...any)

	// Success writes a positive outcome in green.
	Success(format string, args ...any)

	// Warn writes a non-fatal warning in yellow — a field that is absent
	// because its provider is unconfigured or down.
	Warn(format string, args ...any)

	// Error writes a failure in red.
	// This does NOT exit or return an error — callers decide what to do next.
	Error(format string, args ...any)

	// Section writes a visual separator centred around a title.
	// Example: "===== Token Holdings ====="
	Section(title string)

	// KeyValue renders an aligned 2-column block — label on the left,
	// value on the right — with all values left-aligned to the same column.
	// Use for compact profile metadata like Address/Balance/Value.
	KeyValue(rows [][2]string)

	// Table renders a full bordered table with a header row followed by
	// data rows. Use for inherently tabular data (transactions, holdings).
	Table(headers []string, rows [][]string)

	// Spinner starts an animated spinner with the given message and
	// returns a stop function:
	//
	//	stop := u.Spinner("Resolving name...")
	//	defer stop()
	//
	// In RecordingUI and non-terminal contexts the stop function is a no-op.
	Spinner(msg string) func()

	// Ask displays a "> " prompt and reads a line. It loops until validate
	// returns nil; pass nil to accept any input.
	Ask(validate func(string) error) string

	// Choose prints a numbered list of options, prompts for a selection,
	// and returns the 0-based index of the chosen option.
	Choose(prompt string, options []string) int

	// Indent returns a child UI with indent level increased by one,
	// sharing the same underlying writer and reader as the parent.
	Indent() UI

	// Writer returns an io.Writer that prepends the current indentation
	// to every line.
	Writer() io.Writer
}
