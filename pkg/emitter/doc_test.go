package emitter

import (
	"strings"
	"testing"

	"github.com/cwbudde/citogo/internal/ast"
)

func TestRenderDocLineStyle(t *testing.T) {
	w := New("")
	doc := &ast.CiCodeDoc{
		Summary: "Computes the checksum.",
		Blocks: []ast.DocBlock{
			{Paragraph: &ast.DocParagraph{Runs: []ast.DocRun{
				{Text: "Uses "},
				{Text: "crc32", Code: true},
				{Text: " internally."},
			}}},
		},
	}
	RenderDoc(w, doc, LineDocStyle)
	out := w.String()
	if !strings.Contains(out, "// Computes the checksum.") {
		t.Errorf("missing summary line, got %q", out)
	}
	if !strings.Contains(out, "`crc32`") {
		t.Errorf("missing code run, got %q", out)
	}
}

func TestRenderDocEmptyWritesNothing(t *testing.T) {
	w := New("")
	RenderDoc(w, &ast.CiCodeDoc{}, LineDocStyle)
	if w.String() != "" {
		t.Errorf("expected no output for empty doc, got %q", w.String())
	}
}
