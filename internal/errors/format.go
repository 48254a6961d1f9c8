package errors

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiBlue   = "\033[34m"
	ansiCyan   = "\033[36m"
	ansiGray   = "\033[90m"
	ansiBold   = "\033[1m"
	detailWrap = 70
)

var colorEnabled = true

// DisableColors turns off ANSI escapes in Format output.
func DisableColors() { colorEnabled = false }

// EnableColors turns ANSI escapes back on.
func EnableColors() { colorEnabled = true }

func paint(code, text string) string {
	if !colorEnabled {
		return text
	}
	return code + text + ansiReset
}

// Format renders the error for a terminal: a header, the offending source
// lines when known, then detail, hint and node.
func (e *Error) Format() string {
	var b strings.Builder

	b.WriteString("\n")
	e.writeHeader(&b)
	b.WriteString("\n\n")

	if e.Location != nil {
		fmt.Fprintf(&b, "  %s\n\n", paint(ansiCyan, e.Location.String()))
		if len(e.Context) > 0 {
			e.writeSource(&b)
			b.WriteString("\n")
		}
	}

	if e.Detail != "" {
		for _, line := range wrapText(e.Detail, detailWrap) {
			fmt.Fprintf(&b, "  %s\n", line)
		}
		b.WriteString("\n")
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "  %s%s\n\n", paint(ansiCyan, "Hint: "), e.Suggestion)
	}
	if e.Node != "" {
		fmt.Fprintf(&b, "  %s%s\n", paint(ansiGray, "Node: "), paint(ansiBlue, e.Node))
	}
	return b.String()
}

func (e *Error) writeHeader(b *strings.Builder) {
	label := "ERROR: "
	if e.Code != "" {
		label = "ERROR " + e.Code + ": "
	}
	b.WriteString(paint(ansiRed+ansiBold, label))
	b.WriteString(e.Message)
}

// writeSource prints the context lines around the error line, with an
// arrow on that line and a caret under the column.
func (e *Error) writeSource(b *strings.Builder) {
	first, _ := contextWindow(e.Location.Line)
	bar := paint(ansiGray, " │ ")
	for i, line := range e.Context {
		n := first + i
		if n != e.Location.Line {
			fmt.Fprintf(b, "    %4d%s%s\n", n, bar, line)
			continue
		}
		fmt.Fprintf(b, "  %s%4d%s%s\n", paint(ansiRed, "→ "), n, bar, line)
		if col := e.Location.Column; col > 0 {
			fmt.Fprintf(b, "       %s%s%s\n", paint(ansiGray, "│ "), strings.Repeat(" ", col-1), paint(ansiRed, "^"))
		}
	}
}

// FormatCompact returns "file:line:col: CODE: message" on one line.
func (e *Error) FormatCompact() string {
	var parts []string
	if e.Location != nil {
		parts = append(parts, e.Location.String())
	}
	if e.Code != "" {
		parts = append(parts, e.Code)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

type jsonLocation struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

type jsonError struct {
	Code       string        `json:"code,omitempty"`
	Category   Category      `json:"category"`
	Message    string        `json:"message"`
	Detail     string        `json:"detail,omitempty"`
	Location   *jsonLocation `json:"location,omitempty"`
	Suggestion string        `json:"suggestion,omitempty"`
	Node       string        `json:"node,omitempty"`
}

// FormatJSON returns the error as a single-line JSON object.
func (e *Error) FormatJSON() string {
	out := jsonError{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Suggestion: e.Suggestion,
		Node:       e.Node,
	}
	if l := e.Location; l != nil {
		out.Location = &jsonLocation{File: l.File, Line: l.Line, Column: l.Column}
	}
	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Sprintf(`{"message":%q}`, e.Message)
	}
	return string(data)
}

func wrapText(text string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// Flatten splits an error built with errors.Join into its parts. Any other
// error is returned alone.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, Flatten(e)...)
		}
		return out
	}
	return []error{err}
}

// Fprint writes err to w, formatting every structured error in full.
func Fprint(w io.Writer, err error) {
	for _, e := range Flatten(err) {
		if ve, ok := e.(*Error); ok {
			fmt.Fprint(w, ve.Format())
			continue
		}
		fmt.Fprintf(w, "\n%s %s\n\n", paint(ansiRed+ansiBold, "ERROR:"), e.Error())
	}
}

// PrintError writes err to stderr.
func PrintError(err error) {
	Fprint(os.Stderr, err)
}
