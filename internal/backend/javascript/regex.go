package javascript

import (
	"strings"

	"github.com/cwbudde/citogo/internal/ast"
	"github.com/cwbudde/citogo/internal/errors"
	"github.com/cwbudde/citogo/pkg/emitter"
)

// regexFlags maps the source's flag-bit letters (i: case-insensitive,
// m: multi-line, s: dot-matches-newline) to JavaScript regex flags —
// these happen to already be JS's own letters.
func regexFlags(flags string) string {
	var b strings.Builder
	for _, f := range flags {
		switch f {
		case 'i', 'm', 's':
			b.WriteRune(f)
		}
	}
	return b.String()
}

// emitRegexLiteral writes a compile-time-constant pattern as a native
// regex literal `/pattern/flags`, unescaping the source's `\\` and
// escaping any literal `/` so it doesn't terminate the literal early.
func (b *Backend) emitRegexLiteral(pattern, flags string) {
	escaped := strings.ReplaceAll(pattern, `\\`, `\`)
	escaped = strings.ReplaceAll(escaped, "/", `\/`)
	b.w.WriteString("/" + escaped + "/" + regexFlags(flags))
}

// emitRegexDynamic writes `new RegExp(expr, "flags")` for a non-literal
// pattern source.
func (b *Backend) emitRegexDynamic(patternExpr ast.Expression, flags string) {
	b.w.WriteString("new RegExp(")
	emitter.EmitExpr(b, patternExpr, ast.PriorityAssign)
	b.w.WriteString(`, "` + regexFlags(flags) + `")`)
}

func (b *Backend) emitRegexStaticCall(method string, args []ast.Expression) bool {
	switch method {
	case "IsMatch":
		if len(args) < 2 {
			panic(&errors.UnsupportedConstruct{Backend: "javascript", Kind: "Regex.IsMatch arity"})
		}
		b.emitPatternArg(args[1], flagArg(args))
		b.w.WriteString(".test(")
		emitter.EmitExpr(b, args[0], ast.PriorityAssign)
		b.w.WriteByte(')')
		return true
	case "Escape":
		b.registerHelper("regexEscape")
		b.w.WriteString("Ci.regexEscape")
		b.emitArgs(args)
		return true
	}
	return false
}

func flagArg(args []ast.Expression) string {
	if len(args) >= 3 {
		if lit, ok := args[2].(*ast.StringLiteral); ok {
			return lit.Value
		}
	}
	return ""
}

// emitPatternArg writes patternExpr as a regex literal when it's a
// compile-time string constant, else as `new RegExp(...)`.
func (b *Backend) emitPatternArg(patternExpr ast.Expression, flags string) {
	if lit, ok := patternExpr.(*ast.StringLiteral); ok {
		b.emitRegexLiteral(lit.Value, flags)
		return
	}
	b.emitRegexDynamic(patternExpr, flags)
}

func (b *Backend) emitMatchCall(method string, args []ast.Expression) bool {
	if method != "Find" || len(args) < 3 {
		return false
	}
	// Match.Find(m, s, p, flags) -> (m = /p/flags.exec(s)) != null
	b.w.WriteByte('(')
	emitter.EmitExpr(b, args[0], ast.PriorityAssign)
	b.w.WriteString(" = ")
	b.emitPatternArg(args[2], flagArg(args[1:]))
	b.w.WriteString(".exec(")
	emitter.EmitExpr(b, args[1], ast.PriorityAssign)
	b.w.WriteString(")) != null")
	return true
}

func (b *Backend) emitUTF8Call(method string, args []ast.Expression) bool {
	switch method {
	case "GetByteCount":
		b.registerHelper("utf8Encoder")
		b.w.WriteString("Ci.utf8Encoder.encode(")
		emitter.EmitExpr(b, args[0], ast.PriorityAssign)
		b.w.WriteString(").length")
	case "GetBytes":
		b.registerHelper("utf8Encoder")
		b.w.WriteString("Ci.utf8Encoder.encodeInto(")
		emitter.EmitExpr(b, args[0], ast.PriorityAssign)
		b.w.WriteString(", ")
		if len(args) >= 3 {
			emitter.EmitExpr(b, args[1], ast.PriorityPostfix)
			b.w.WriteString(".subarray(")
			emitter.EmitExpr(b, args[2], ast.PriorityAssign)
			b.w.WriteByte(')')
		} else {
			emitter.EmitExpr(b, args[1], ast.PriorityAssign)
		}
		b.w.WriteByte(')')
	case "GetString":
		b.registerHelper("utf8Decoder")
		b.w.WriteString("Ci.utf8Decoder.decode(")
		emitter.EmitExpr(b, args[0], ast.PriorityPostfix)
		b.w.WriteString(".subarray(")
		emitter.EmitExpr(b, args[1], ast.PriorityAdditive)
		b.w.WriteString(", ")
		emitter.EmitExpr(b, args[1], ast.PriorityAdditive)
		b.w.WriteString(" + ")
		emitter.EmitExpr(b, args[2], ast.PriorityAdditive)
		b.w.WriteString("))")
	default:
		return false
	}
	return true
}
