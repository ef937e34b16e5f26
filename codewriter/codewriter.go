// Package codewriter accumulates generated source text with indentation,
// named scopes and language-specific comment decoration.
//
// A Writer is not safe for concurrent use; give each goroutine its own.
package codewriter

import (
	"bytes"
	"strings"

	"github.com/teranos/gircheck/errors"
)

// CommentStyle selects the comment brackets used by WriteComment and the
// scope markers.
type CommentStyle int

const (
	CommentC     CommentStyle = iota // /* ... */
	CommentOCaml                     // (* ... *)
	CommentCPP                       // // ...
	CommentHash                      // # ...
	CommentNone                      // no decoration
)

// DefaultIndentUnit is the number of indent characters added per scope.
const DefaultIndentUnit = 2

type commentTokens struct {
	begin, middle, end string
}

func (s CommentStyle) tokens() commentTokens {
	switch s {
	case CommentC:
		return commentTokens{"/* ", " * ", " */"}
	case CommentOCaml:
		return commentTokens{"(* ", " * ", " *)"}
	case CommentCPP:
		return commentTokens{"// ", "// ", ""}
	case CommentHash:
		return commentTokens{"# ", "# ", ""}
	default:
		return commentTokens{}
	}
}

// Writer is an append-only text buffer.
type Writer struct {
	buf        bytes.Buffer
	comment    commentTokens
	scopes     []string
	indent     int
	indentUnit int
	indentChar string
	newline    string
}

// Option configures a Writer.
type Option func(*Writer)

// WithIndentUnit sets how many indent characters a scope adds.
func WithIndentUnit(n int) Option {
	return func(w *Writer) {
		if n >= 0 {
			w.indentUnit = n
		}
	}
}

// WithBanner writes text as a comment block right after construction.
func WithBanner(text string) Option {
	return func(w *Writer) {
		if text != "" {
			w.WriteComment(text)
		}
	}
}

// WithoutWhitespace starts the writer in minified mode.
func WithoutWhitespace() Option {
	return func(w *Writer) { w.DisableWhitespace() }
}

// New creates a Writer for the given comment style.
func New(style CommentStyle, opts ...Option) *Writer {
	w := &Writer{
		comment:    style.tokens(),
		indentUnit: DefaultIndentUnit,
	}
	w.EnableWhitespace()
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// EnableWhitespace restores indentation and newlines.
func (w *Writer) EnableWhitespace() {
	w.indentChar = " "
	w.newline = "\n"
}

// DisableWhitespace turns indentation and newlines into empty strings.
// Structure is otherwise unchanged.
func (w *Writer) DisableWhitespace() {
	w.indentChar = ""
	w.newline = ""
}

// Depth returns the number of open scopes.
func (w *Writer) Depth() int {
	return len(w.scopes)
}

// Source returns the accumulated text.
func (w *Writer) Source() string {
	return w.buf.String()
}

// Bytes returns the accumulated text as UTF-8 bytes.
func (w *Writer) Bytes() []byte {
	return bytes.Clone(w.buf.Bytes())
}

// Write appends p verbatim. It lets a Writer be used as an io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// WriteNewline appends a newline (nothing when whitespace is disabled).
func (w *Writer) WriteNewline() {
	w.buf.WriteString(w.newline)
}

// WriteSource appends line prefixed by the current indentation, without a
// trailing newline.
func (w *Writer) WriteSource(line string) {
	w.buf.WriteString(strings.Repeat(w.indentChar, w.indent))
	w.buf.WriteString(line)
}

// WriteUnindented appends line as-is, without indentation or newline.
func (w *Writer) WriteUnindented(line string) {
	w.buf.WriteString(line)
}

// WriteLine appends an indented line followed by a newline.
func (w *Writer) WriteLine(line string) {
	w.WriteSource(line)
	w.WriteNewline()
}

// WriteLineUnindented appends line and a newline, ignoring indentation.
func (w *Writer) WriteLineUnindented(line string) {
	w.WriteUnindented(line)
	w.WriteNewline()
}

// WriteComment wraps text in the writer's comment style. Multi-line text
// becomes an open marker, one prefixed line per input line and a close
// marker; styles without a close token repeat the open token instead.
func (w *Writer) WriteComment(text string) {
	lines := splitLines(text)
	if len(lines) == 1 {
		w.WriteLine(w.comment.begin + lines[0] + w.comment.end)
		return
	}
	w.WriteLine(w.comment.begin)
	for _, line := range lines {
		w.WriteLine(w.comment.middle + line)
	}
	if w.comment.end != "" {
		w.WriteSource(w.comment.end)
	} else {
		w.WriteSource(w.comment.begin)
	}
	w.WriteNewline()
}

// PushScope writes an opening brace annotated with name and indents.
func (w *Writer) PushScope(name string) {
	w.WriteLine("{ " + w.comment.begin + name + w.comment.end)
	w.scopes = append(w.scopes, name)
	w.indent += w.indentUnit
}

// PopScope dedents and writes the closing brace of the innermost scope.
// It panics when no scope is open.
func (w *Writer) PopScope() string {
	if len(w.scopes) == 0 {
		panic(errors.AssertionFailedf("codewriter: PopScope with no open scope"))
	}
	w.indent -= w.indentUnit
	name := w.scopes[len(w.scopes)-1]
	w.scopes = w.scopes[:len(w.scopes)-1]
	w.WriteLine("} " + w.comment.begin + name + w.comment.end)
	return name
}

// Scope runs fn inside a named scope. The scope is closed on every exit
// path, including a panic in fn.
func (w *Writer) Scope(name string, fn func() error) error {
	w.PushScope(name)
	defer w.PopScope()
	return fn()
}

// splitLines mirrors line splitting of text editors: a trailing newline does
// not start an extra empty line, and \r\n counts as one break. Empty text
// has no lines, so an empty comment is written as a bare open/close pair.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
