// Package errors formats the translation errors the core reports to its
// caller: a single line of position-tagged text for upstream parse/resolve
// failures, with optional caret-pointed source context.
package errors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/citogo/internal/ast"
)

// CompilerError is a single translation failure: an upstream parse/resolve
// error. Backend unsupported-construct failures use UnsupportedConstruct.
type CompilerError struct {
	Message string
	Source  string
	File    string
	Pos     ast.Position
}

// NewCompilerError creates a compiler error at pos.
func NewCompilerError(pos ast.Position, message, source, file string) *CompilerError {
	return &CompilerError{Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface with the one-line form.
func (e *CompilerError) Error() string {
	return e.Format()
}

// Format renders "path(line): ERROR: msg", the single-line form required
// for upstream translation errors.
func (e *CompilerError) Format() string {
	file := e.File
	if file == "" {
		file = e.Pos.File
	}
	return fmt.Sprintf("%s(%d): ERROR: %s", file, e.Pos.Line, e.Message)
}

// FormatWithContext adds the source line and a caret pointing at the
// column, below the one-line message.
func (e *CompilerError) FormatWithContext() string {
	var sb strings.Builder
	sb.WriteString(e.Format())
	sb.WriteString("\n")

	line := e.sourceLine(e.Pos.Line)
	if line == "" {
		return sb.String()
	}

	prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
	sb.WriteString(prefix)
	sb.WriteString(line)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", len(prefix)+e.Pos.Column-1))
	sb.WriteString("^\n")
	return sb.String()
}

func (e *CompilerError) sourceLine(lineNum int) string {
	if e.Source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatErrors renders a batch of errors, one per line, for a single-pass
// upstream error report.
func FormatErrors(errs []*CompilerError) string {
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Format()
	}
	return strings.Join(lines, "\n")
}

// UnsupportedConstruct reports the second error class: a backend hitting a
// node kind it does not implement. This is a programmer-visible defect,
// never expected in normal use, so it carries no source position.
type UnsupportedConstruct struct {
	Backend string
	Kind    string
}

func (e *UnsupportedConstruct) Error() string {
	return fmt.Sprintf("%s: not implemented: %s", e.Backend, e.Kind)
}
