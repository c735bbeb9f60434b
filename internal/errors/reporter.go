package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"nire/internal/ast"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError is one classified diagnostic: a coded front-end error
// with its source location and optional follow-up advice.
type CompilerError struct {
	Level       ErrorLevel
	Code        string       // error code like E0101
	Message     string       // primary error message
	Position    ast.Position // location in source
	Length      int          // how many characters the marker covers
	Suggestions []Suggestion // suggested fixes
	Notes       []string     // additional context notes
	HelpText    string       // help text for the error
}

// Suggestion is one way the user might fix the problem.
type Suggestion struct {
	Message string
}

// ErrorReporter renders diagnostics against one file's source text.
type ErrorReporter struct {
	filename string
	source   string
	lines    []string
}

// NewErrorReporter creates a reporter for a file
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		source:   source,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError renders one diagnostic: a coded header, the offending
// source line in a small window, a caret marker under the problem, and
// any advice the error carries.
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var out strings.Builder

	levelColor := er.getLevelColor(err.Level)
	dim := color.New(color.Faint).SprintFunc()

	// Header: error[E0101]: message
	if err.Code != "" {
		fmt.Fprintf(&out, "%s[%s]: %s\n", levelColor(string(err.Level)), err.Code, err.Message)
	} else {
		fmt.Fprintf(&out, "%s: %s\n", levelColor(string(err.Level)), err.Message)
	}

	width := er.lineNumberWidth(err.Position.Line)
	gutter := strings.Repeat(" ", width)

	// Location line: --> filename:line:column
	fmt.Fprintf(&out, "%s %s %s:%d:%d\n",
		gutter, dim("-->"), er.filename, err.Position.Line, err.Position.Column)
	fmt.Fprintf(&out, "%s %s\n", gutter, dim("│"))

	er.writeSourceWindow(&out, err, width)
	er.writeAdvice(&out, err, gutter)

	out.WriteString("\n")
	return out.String()
}

// writeSourceWindow prints the line before the error (when there is
// one), the offending line with a caret marker, and the line after.
func (er *ErrorReporter) writeSourceWindow(out *strings.Builder, err CompilerError, width int) {
	line := err.Position.Line
	if line < 1 || line > len(er.lines) {
		return
	}

	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	gutter := strings.Repeat(" ", width)

	if line > 1 {
		fmt.Fprintf(out, "%s %s %s\n",
			dim(fmt.Sprintf("%*d", width, line-1)), dim("│"), er.lines[line-2])
	}

	fmt.Fprintf(out, "%s %s %s\n",
		bold(fmt.Sprintf("%*d", width, line)), dim("│"), er.lines[line-1])
	fmt.Fprintf(out, "%s %s %s\n",
		gutter, dim("│"), er.createMarker(err.Position.Column, err.Length, err.Level))

	if line < len(er.lines) {
		fmt.Fprintf(out, "%s %s %s\n",
			dim(fmt.Sprintf("%*d", width, line+1)), dim("│"), er.lines[line])
	}
}

// writeAdvice prints the error's suggestions, notes, and help text
// under the source window.
func (er *ErrorReporter) writeAdvice(out *strings.Builder, err CompilerError, gutter string) {
	dim := color.New(color.Faint).SprintFunc()

	if len(err.Suggestions) > 0 {
		cyan := color.New(color.FgCyan).SprintFunc()
		fmt.Fprintf(out, "%s %s\n", gutter, dim("│"))
		for _, s := range err.Suggestions {
			fmt.Fprintf(out, "%s %s %s\n", gutter, cyan("help:"), s.Message)
		}
	}

	for _, note := range err.Notes {
		blue := color.New(color.FgBlue).SprintFunc()
		fmt.Fprintf(out, "%s %s %s %s\n", gutter, dim("│"), blue("note:"), note)
	}

	if err.HelpText != "" {
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(out, "%s %s %s %s\n", gutter, dim("│"), green("help:"), err.HelpText)
	}
}

// getLevelColor returns the color function for an error level
func (er *ErrorReporter) getLevelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Error:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// createMarker builds the caret underline for an error
func (er *ErrorReporter) createMarker(column, length int, level ErrorLevel) string {
	if length <= 0 {
		length = 1
	}
	spaces := strings.Repeat(" ", max(0, column-1))

	markerColor := color.New(color.FgRed, color.Bold).SprintFunc()
	if level == Warning {
		markerColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	}
	return spaces + markerColor(strings.Repeat("^", length))
}

// lineNumberWidth is the gutter width needed for line numbers, with a
// floor of 3 for visual alignment.
func (er *ErrorReporter) lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3
	}
	return width
}
