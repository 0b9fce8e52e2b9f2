package javascript

import (
	"strconv"
	"strings"

	"github.com/cwbudde/citogo/internal/ast"
	"github.com/cwbudde/citogo/pkg/emitter"
)

// emitInterpolated writes an InterpolatedStringExpr as a backtick-delimited
// template literal. Literal runs escape backtick and "${"; argument parts
// with a width/format/precision are wrapped in the chained
// .toExponential/.toFixed/.toString/.padStart/.padEnd calls the format
// table describes.
func (b *Backend) emitInterpolated(n *ast.InterpolatedStringExpr) {
	b.w.WriteByte('`')
	for _, part := range n.Parts {
		if part.Arg == nil {
			b.w.WriteString(escapeTemplateLiteral(part.Literal))
			continue
		}
		b.w.WriteString("${")
		b.emitInterpArg(part)
		b.w.WriteString("}")
	}
	b.w.WriteByte('`')
}

func escapeTemplateLiteral(s string) string {
	r := strings.NewReplacer("`", "\\`", "${", "\\${")
	return r.Replace(s)
}

func (b *Backend) emitInterpArg(part ast.InterpPart) {
	if part.Format == 0 && part.Width == nil {
		emitter.EmitExpr(b, part.Arg, ast.PriorityAssign)
		return
	}

	saved := b.w
	b.w = emitter.New("")
	emitter.EmitExpr(b, part.Arg, ast.PriorityPostfix)
	chain := b.w.String()
	b.w = saved
	switch part.Format {
	case 'e', 'E':
		p := 6
		if part.Precision != nil {
			p = *part.Precision
		}
		chain += ".toExponential(" + strconv.Itoa(p) + ")"
		if part.Format == 'E' {
			chain += ".toUpperCase()"
		}
	case 'f', 'F':
		p := 6
		if part.Precision != nil {
			p = *part.Precision
		}
		chain += ".toFixed(" + strconv.Itoa(p) + ")"
	case 'x', 'X':
		chain += ".toString(16)"
		if part.Format == 'X' {
			chain += ".toUpperCase()"
		}
		if part.Precision != nil {
			chain += ".padStart(" + strconv.Itoa(*part.Precision) + `, "0")`
		}
	case 'd', 'D':
		chain += ".toString()"
		if part.Precision != nil {
			chain += ".padStart(" + strconv.Itoa(*part.Precision) + `, "0")`
		}
	}

	if part.Width != nil {
		w := *part.Width
		if w >= 0 {
			chain += ".padStart(" + strconv.Itoa(w) + ")"
		} else {
			chain += ".padEnd(" + strconv.Itoa(-w) + ")"
		}
	}

	b.w.WriteString(chain)
}
