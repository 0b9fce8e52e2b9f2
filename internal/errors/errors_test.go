package errors

import (
	"strings"
	"testing"

	"github.com/cwbudde/citogo/internal/ast"
)

func TestFormatOneLine(t *testing.T) {
	e := NewCompilerError(ast.Position{Line: 12}, "unexpected token", "", "main.ci")
	got := e.Format()
	want := "main.ci(12): ERROR: unexpected token"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormatWithContextIncludesCaret(t *testing.T) {
	src := "var x = 1\nvar y = ;\n"
	e := NewCompilerError(ast.Position{Line: 2, Column: 9}, "expected expression", src, "main.ci")
	got := e.FormatWithContext()
	if !strings.Contains(got, "var y = ;") {
		t.Errorf("FormatWithContext() missing source line, got %q", got)
	}
	if !strings.Contains(got, "^") {
		t.Errorf("FormatWithContext() missing caret, got %q", got)
	}
}

func TestFormatErrorsJoinsLines(t *testing.T) {
	errs := []*CompilerError{
		NewCompilerError(ast.Position{Line: 1}, "first", "", "a.ci"),
		NewCompilerError(ast.Position{Line: 2}, "second", "", "a.ci"),
	}
	got := FormatErrors(errs)
	want := "a.ci(1): ERROR: first\na.ci(2): ERROR: second"
	if got != want {
		t.Errorf("FormatErrors() = %q, want %q", got, want)
	}
}

func TestUnsupportedConstructError(t *testing.T) {
	err := &UnsupportedConstruct{Backend: "javascript", Kind: "LockStmt"}
	want := "javascript: not implemented: LockStmt"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
