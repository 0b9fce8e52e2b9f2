package javascript

import (
	"github.com/cwbudde/citogo/internal/ast"
	"github.com/cwbudde/citogo/internal/errors"
	"github.com/cwbudde/citogo/pkg/emitter"
)

func (b *Backend) VisitIntLiteral(n *ast.IntLiteral, parent ast.Priority) ast.Expression {
	b.w.WriteIntLiteral(n.Value)
	return n
}

func (b *Backend) VisitFloatLiteral(n *ast.FloatLiteral, parent ast.Priority) ast.Expression {
	b.w.WriteFloatLiteral(n.Value)
	return n
}

func (b *Backend) VisitStringLiteral(n *ast.StringLiteral, parent ast.Priority) ast.Expression {
	b.w.WriteStringLiteral(n.Value, emitter.DefaultLiteralBudget)
	return n
}

func (b *Backend) VisitCharLiteral(n *ast.CharLiteral, parent ast.Priority) ast.Expression {
	b.w.WriteStringLiteral(string(n.Value), emitter.DefaultLiteralBudget)
	return n
}

func (b *Backend) VisitBoolLiteral(n *ast.BoolLiteral, parent ast.Priority) ast.Expression {
	if n.Value {
		b.w.WriteString("true")
	} else {
		b.w.WriteString("false")
	}
	return n
}

func (b *Backend) VisitNullLiteral(n *ast.NullLiteral, parent ast.Priority) ast.Expression {
	b.w.WriteString("null")
	return n
}

// matchProperties maps the fixed Match member-access surface (Start,
// End, Value, Length) to the JS exec() result expression it reads from,
// keyed by the source property name.
var matchProperties = map[string]func(m string) string{
	"Start":  func(m string) string { return m + ".index" },
	"End":    func(m string) string { return m + ".index + " + m + "[0].length" },
	"Value":  func(m string) string { return m + "[0]" },
	"Length": func(m string) string { return m + "[0].length" },
}

func (b *Backend) VisitSymbolExpr(n *ast.SymbolExpr, parent ast.Priority) ast.Expression {
	if len(n.Chain) == 2 {
		if render, ok := matchProperties[n.Chain[1]]; ok {
			b.w.WriteString(render(memberName(n.Chain[0])))
			return n
		}
	}
	b.w.WriteString(b.resolveSymbol(n.Chain))
	return n
}

// resolveSymbol renders a qualified chain, special-casing the receiverless
// globals the backend maps onto JavaScript's own globals (Console, UTF8,
// Regex, Environment) and the "this"/"base" pseudo-variables. Everything
// else is a plain member-access chain with every segment, the leading one
// included, mangled through memberName.
func (b *Backend) resolveSymbol(chain []string) string {
	if len(chain) == 0 {
		return ""
	}
	head := chain[0]
	switch head {
	case "this":
		return b.joinThis(chain[1:])
	case "Console":
		return joinRaw(chain) // rewritten at the call site (Console.Write/WriteLine)
	case "UTF8", "Regex", "Match":
		return joinRaw(chain)
	case "Environment":
		out := "process.env"
		for _, seg := range chain[1:] {
			out += "." + memberName(seg)
		}
		return out
	}
	out := memberName(head)
	for _, seg := range chain[1:] {
		out += "." + memberName(seg)
	}
	return out
}

func (b *Backend) joinThis(rest []string) string {
	out := "this"
	for _, seg := range rest {
		out += "." + memberName(seg)
	}
	return out
}

func joinRaw(chain []string) string {
	out := chain[0]
	for _, seg := range chain[1:] {
		out += "." + seg
	}
	return out
}

func (b *Backend) VisitBinaryExpr(n *ast.BinaryExpr, parent ast.Priority) ast.Expression {
	emitter.WrapParen(b.w, n.Priority(), parent, func() {
		b.emitBinaryBody(n)
	})
	return n
}

func (b *Backend) emitBinaryBody(n *ast.BinaryExpr) {
	leftType := n.Left.ExprType()

	switch n.Op {
	case ast.OpShr:
		op := ">>"
		if is32BitUnsigned(leftType) {
			op = ">>>"
		}
		emitter.EmitExpr(b, n.Left, ast.PriorityShift)
		b.w.WriteString(" " + op + " ")
		emitter.EmitExpr(b, n.Right, ast.PriorityShift+1)
		return

	case ast.OpEq, ast.OpNotEq, ast.OpLess, ast.OpGreater, ast.OpLessEq, ast.OpGreaterEq:
		if is32BitUnsigned(leftType) {
			b.emitUnsignedOperand(n.Left)
			b.w.WriteString(" " + string(n.Op) + " ")
			b.emitUnsignedOperand(n.Right)
			return
		}
		emitter.EmitExpr(b, n.Left, ast.PriorityRel)
		b.w.WriteString(" " + string(n.Op) + " ")
		emitter.EmitExpr(b, n.Right, ast.PriorityRel+1)
		return

	case ast.OpMul, ast.OpDiv, ast.OpMod:
		if is32BitInteger(n.Type) {
			b.w.WriteByte('(')
			emitter.EmitExpr(b, n.Left, ast.PriorityMultiplicative)
			b.w.WriteString(" " + string(n.Op) + " ")
			emitter.EmitExpr(b, n.Right, ast.PriorityMultiplicative+1)
			b.w.WriteString(" | 0)")
			return
		}
	}

	emitter.EmitExpr(b, n.Left, n.Priority())
	b.w.WriteString(" " + jsOperator(n.Op) + " ")
	emitter.EmitExpr(b, n.Right, n.Priority()+1)
}

// emitUnsignedOperand wraps operand in "(expr >>> 0)" to recover an
// unsigned comparison view: every 32-bit arithmetic op normalizes through
// a signed `| 0`, so an unsigned comparison has to re-widen through
// `>>> 0` at the read site instead.
func (b *Backend) emitUnsignedOperand(operand ast.Expression) {
	b.w.WriteByte('(')
	emitter.EmitExpr(b, operand, ast.PriorityShift)
	b.w.WriteString(" >>> 0)")
}

func jsOperator(op ast.BinaryOp) string {
	switch op {
	case ast.OpCondAnd:
		return "&&"
	case ast.OpCondOr:
		return "||"
	default:
		return string(op)
	}
}

func (b *Backend) VisitUnaryExpr(n *ast.UnaryExpr, parent ast.Priority) ast.Expression {
	emitter.WrapParen(b.w, n.Priority(), parent, func() {
		if n.Postfix {
			emitter.EmitExpr(b, n.Operand, ast.PriorityPostfix)
			b.w.WriteString(postfixSymbol(n.Op))
			return
		}
		b.w.WriteString(prefixSymbol(n.Op))
		emitter.EmitExpr(b, n.Operand, ast.PriorityPrefix)
	})
	return n
}

func prefixSymbol(op ast.UnaryOp) string {
	switch op {
	case ast.OpPreInc:
		return "++"
	case ast.OpPreDec:
		return "--"
	default:
		return string(op)
	}
}

func postfixSymbol(op ast.UnaryOp) string {
	switch op {
	case ast.OpPostInc:
		return "++"
	case ast.OpPostDec:
		return "--"
	default:
		return string(op)
	}
}

func (b *Backend) VisitCondExpr(n *ast.CondExpr, parent ast.Priority) ast.Expression {
	emitter.WrapParen(b.w, n.Priority(), parent, func() {
		emitter.EmitExpr(b, n.Cond, ast.PriorityCondOr)
		b.w.WriteString(" ? ")
		emitter.EmitExpr(b, n.Then, ast.PriorityAssign)
		b.w.WriteString(" : ")
		emitter.EmitExpr(b, n.Else, ast.PriorityConditional)
	})
	return n
}

func (b *Backend) VisitIndexExpr(n *ast.IndexExpr, parent ast.Priority) ast.Expression {
	emitter.WrapParen(b.w, n.Priority(), parent, func() {
		emitter.EmitExpr(b, n.Target, ast.PriorityPostfix)
		b.w.WriteByte('[')
		emitter.EmitExpr(b, n.Index, ast.PriorityStatement)
		b.w.WriteByte(']')
	})
	return n
}

func (b *Backend) VisitArrayLiteralExpr(n *ast.ArrayLiteralExpr, parent ast.Priority) ast.Expression {
	b.w.WriteByte('[')
	for i, elem := range n.Elements {
		if i > 0 {
			b.w.WriteString(", ")
		}
		emitter.EmitExpr(b, elem, ast.PriorityAssign)
	}
	b.w.WriteByte(']')
	return n
}

func (b *Backend) VisitInterpolatedStringExpr(n *ast.InterpolatedStringExpr, parent ast.Priority) ast.Expression {
	b.emitInterpolated(n)
	return n
}

func (b *Backend) VisitCallExpr(n *ast.CallExpr, parent ast.Priority) ast.Expression {
	emitter.WrapParen(b.w, n.Priority(), parent, func() {
		b.emitCall(n)
	})
	return n
}

func (b *Backend) emitCall(n *ast.CallExpr) {
	sym, isSymbol := n.Callee.(*ast.SymbolExpr)
	if !isSymbol || len(sym.Chain) == 0 {
		emitter.EmitExpr(b, n.Callee, ast.PriorityPostfix)
		b.emitArgs(n.Args)
		return
	}

	if len(sym.Chain) >= 2 && sym.Chain[0] == "base" {
		b.emitBaseCall(sym.Chain[1:], n.Args)
		return
	}

	if len(sym.Chain) == 2 && sym.Chain[1] == "GetCapture" && len(n.Args) == 1 {
		b.w.WriteString(memberName(sym.Chain[0]))
		b.w.WriteByte('[')
		emitter.EmitExpr(b, n.Args[0], ast.PriorityStatement)
		b.w.WriteByte(']')
		return
	}

	if rewritten := b.emitKnownCall(sym.Chain, n); rewritten {
		return
	}

	if n.ReceiverType != nil && len(sym.Chain) >= 2 {
		method := sym.Chain[len(sym.Chain)-1]
		receiver := sym.Chain[:len(sym.Chain)-1]
		if b.emitCollectionCall(n.ReceiverType, receiver, method, n.Args) {
			return
		}
	}

	b.w.WriteString(b.resolveSymbol(sym.Chain))
	b.emitArgs(n.Args)
}

func (b *Backend) emitArgs(args []ast.Expression) {
	b.w.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			b.w.WriteString(", ")
		}
		emitter.EmitExpr(b, a, ast.PriorityAssign)
	}
	b.w.WriteByte(')')
}

// emitBaseCall renders `base.m(args)` as
// `ClassName.prototype.m.call(this, args...)`, the standard way to invoke
// a base-class method by name when the subclass has overridden it.
func (b *Backend) emitBaseCall(rest []string, args []ast.Expression) {
	if len(rest) == 0 {
		panic(&errors.UnsupportedConstruct{Backend: "javascript", Kind: "base call with no method"})
	}
	method := rest[len(rest)-1]
	b.w.WriteString(instanceMethodRef(b.currentClass, method) + ".call(this")
	for _, a := range args {
		b.w.WriteString(", ")
		emitter.EmitExpr(b, a, ast.PriorityAssign)
	}
	b.w.WriteByte(')')
}

// emitKnownCall rewrites calls to the fixed set of global helper-namespace
// functions (Console, UTF8, Regex, Match, Regex.Escape,
// Environment.GetEnvironmentVariable) that aren't
// collection methods. Returns false when chain doesn't match any of them,
// leaving normal symbol-call emission to handle it.
func (b *Backend) emitKnownCall(chain []string, n *ast.CallExpr) bool {
	if len(chain) < 2 {
		return false
	}
	ns, method := chain[0], chain[len(chain)-1]
	switch ns {
	case "Console":
		target := "console.log"
		if len(chain) >= 3 && chain[1] == "Error" {
			target = "console.error"
		}
		b.w.WriteString(target)
		b.emitArgs(n.Args)
		return true
	case "UTF8":
		return b.emitUTF8Call(method, n.Args)
	case "Regex":
		return b.emitRegexStaticCall(method, n.Args)
	case "Match":
		return b.emitMatchCall(method, n.Args)
	case "Environment":
		if method != "GetEnvironmentVariable" || len(n.Args) != 1 {
			return false
		}
		b.w.WriteString("process.env[")
		emitter.EmitExpr(b, n.Args[0], ast.PriorityStatement)
		b.w.WriteByte(']')
		return true
	}
	return false
}
