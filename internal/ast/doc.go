package ast

// DocRun is one inline run of documentation text: either plain prose or
// an inline-code span.
type DocRun struct {
	Text string
	Code bool
}

// DocParagraph is a sequence of inline runs.
type DocParagraph struct {
	Runs []DocRun
}

// DocList is a bullet list; each item is itself a run sequence.
type DocList struct {
	Items [][]DocRun
}

// DocBlock is either a DocParagraph or a DocList.
type DocBlock struct {
	Paragraph *DocParagraph // nil if this block is a list
	List      *DocList      // nil if this block is a paragraph
}

// CiCodeDoc is a documentation comment attached to a declaration: a
// one-line summary plus zero or more paragraph/list blocks, rendered by
// a backend through emitter.RenderDoc as target-appropriate comments.
type CiCodeDoc struct {
	Summary string
	Blocks  []DocBlock
}

// IsEmpty reports whether there is nothing to render.
func (d *CiCodeDoc) IsEmpty() bool {
	return d == nil || (d.Summary == "" && len(d.Blocks) == 0)
}
