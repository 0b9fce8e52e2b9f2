package emitter

import "github.com/cwbudde/citogo/internal/ast"

// DocStyle controls how RenderDoc delimits a comment block. Backends with
// no native doc-comment syntax can still use LineDocStyle for plain `//`.
type DocStyle struct {
	LinePrefix  string // e.g. "// " for a plain line comment
	BlockOpen   string // e.g. "/**" when a dedicated doc-comment form exists
	BlockClose  string // e.g. " */"
	BlockMiddle string // prefix for interior lines, e.g. " * "
}

// LineDocStyle renders every line with LinePrefix, the common case for
// targets without a dedicated doc-comment syntax.
var LineDocStyle = DocStyle{LinePrefix: "// "}

// RenderDoc writes doc as target-appropriate comments ahead of the
// declaration it documents. An empty doc writes nothing.
func RenderDoc(w *Writer, doc *ast.CiCodeDoc, style DocStyle) {
	if doc == nil || doc.IsEmpty() {
		return
	}

	open := style.BlockOpen != ""
	if open {
		w.WriteLine(style.BlockOpen)
	}
	linePrefix := style.LinePrefix
	if open {
		linePrefix = style.BlockMiddle
	}

	if doc.Summary != "" {
		w.WriteLine(linePrefix + doc.Summary)
	}
	for _, block := range doc.Blocks {
		w.WriteLine(linePrefix)
		switch {
		case block.Paragraph != nil:
			w.WriteLine(linePrefix + renderRuns(block.Paragraph.Runs))
		case block.List != nil:
			for _, item := range block.List.Items {
				w.WriteLine(linePrefix + "- " + renderRuns(item))
			}
		}
	}
	if open {
		w.WriteLine(style.BlockClose)
	}
}

func renderRuns(runs []ast.DocRun) string {
	var out string
	for _, r := range runs {
		if r.Code {
			out += "`" + r.Text + "`"
		} else {
			out += r.Text
		}
	}
	return out
}
