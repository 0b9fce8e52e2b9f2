package javascript

import (
	"github.com/cwbudde/citogo/internal/ast"
	"github.com/cwbudde/citogo/internal/errors"
	"github.com/cwbudde/citogo/pkg/emitter"
)

// stmtsOf normalizes a statement that may or may not already be a block
// into the slice of statements a brace pair should wrap, so if/while/for/
// foreach bodies don't double-wrap an already-braced block.
func stmtsOf(s ast.Statement) []ast.Statement {
	if block, ok := s.(*ast.BlockStmt); ok {
		return block.Stmts
	}
	return []ast.Statement{s}
}

// emitBlockNoTrailingNewline writes `{ <body> }`, leaving the cursor right
// after the closing brace with no newline, so a caller chaining `else` (or
// `while` for a do-while) can continue on the same line.
func (b *Backend) emitBlockNoTrailingNewline(body []ast.Statement) {
	b.w.OpenBlock("")
	for _, s := range body {
		s.AcceptStmt(b)
	}
	b.w.Dedent()
	b.w.WriteString("}")
}

func (b *Backend) VisitBlockStmt(n *ast.BlockStmt) {
	b.w.OpenBlock("")
	for _, s := range n.Stmts {
		s.AcceptStmt(b)
	}
	b.w.CloseBlock()
}

func (b *Backend) VisitVarStmt(n *ast.VarStmt) {
	name := memberName(n.Name)
	if n.Init != nil {
		b.w.WriteString("let " + name + " = ")
		emitter.EmitExpr(b, n.Init, ast.PriorityAssign)
		b.w.WriteLine(";")
		return
	}
	if arr, ok := n.Type.(*ast.ArrayType); ok {
		b.w.WriteLine("let " + name + ";")
		b.emitArrayStorageInit(name, arr, 0)
		return
	}
	b.w.WriteLine("let " + name + ";")
}

// arithCompoundOp names the bare JS arithmetic operator a `*=`/`/=`/`%=`
// compound assignment decomposes into, so the 32-bit `| 0` post-coercion
// can be spliced in — the same truncation a plain `*`/`/`/`%` expression
// needs, generalized to the compound-assignment form.
func arithCompoundOp(op ast.AssignOp) (string, bool) {
	switch op {
	case ast.AssignMul:
		return "*", true
	case ast.AssignDiv:
		return "/", true
	case ast.AssignMod:
		return "%", true
	default:
		return "", false
	}
}

func (b *Backend) VisitAssignStmt(n *ast.AssignStmt) {
	if n.Op == ast.AssignPlain {
		emitter.EmitExpr(b, n.Target, ast.PriorityAssign)
		b.w.WriteString(" = ")
		emitter.EmitExpr(b, n.Value, ast.PriorityAssign)
		b.w.WriteLine(";")
		return
	}

	targetType := n.Target.ExprType()

	if op, ok := arithCompoundOp(n.Op); ok && is32BitInteger(targetType) {
		emitter.EmitExpr(b, n.Target, ast.PriorityAssign)
		b.w.WriteString(" = (")
		emitter.EmitExpr(b, n.Target, ast.PriorityMultiplicative)
		b.w.WriteString(" " + op + " ")
		emitter.EmitExpr(b, n.Value, ast.PriorityMultiplicative+1)
		b.w.WriteString(" | 0);")
		b.w.Newline()
		return
	}

	if n.Op == ast.AssignShr {
		shiftOp := ">>"
		if is32BitUnsigned(targetType) {
			shiftOp = ">>>"
		}
		emitter.EmitExpr(b, n.Target, ast.PriorityAssign)
		b.w.WriteString(" = (")
		emitter.EmitExpr(b, n.Target, ast.PriorityShift)
		b.w.WriteString(" " + shiftOp + " ")
		emitter.EmitExpr(b, n.Value, ast.PriorityShift+1)
		b.w.WriteString(");")
		b.w.Newline()
		return
	}

	emitter.EmitExpr(b, n.Target, ast.PriorityAssign)
	b.w.WriteString(" " + string(n.Op) + " ")
	emitter.EmitExpr(b, n.Value, ast.PriorityAssign)
	b.w.WriteLine(";")
}

func (b *Backend) VisitIfStmt(n *ast.IfStmt) {
	b.emitIfChain(n)
	b.w.Newline()
}

func (b *Backend) emitIfChain(n *ast.IfStmt) {
	b.w.WriteString("if (")
	emitter.EmitExpr(b, n.Cond, ast.PriorityStatement)
	b.w.WriteString(") ")
	b.emitBlockNoTrailingNewline(stmtsOf(n.Then))
	if n.Else == nil {
		return
	}
	b.w.WriteString(" else ")
	if elseIf, ok := n.Else.(*ast.IfStmt); ok {
		b.emitIfChain(elseIf)
		return
	}
	b.emitBlockNoTrailingNewline(stmtsOf(n.Else))
}

// withLoop brackets body with the native-break-target depth counter, so a
// nested string-switch (see VisitSwitchStmt) can tell whether a bare
// `break` beneath it is directly in the switch's own case body (needs the
// ciafterswitchN label rewrite) or inside a further-nested loop that
// already consumes break/continue natively.
func (b *Backend) withLoop(body func()) {
	b.switchDepth++
	defer func() { b.switchDepth-- }()
	body()
}

func (b *Backend) VisitWhileStmt(n *ast.WhileStmt) {
	b.w.WriteString("while (")
	emitter.EmitExpr(b, n.Cond, ast.PriorityStatement)
	b.w.WriteString(") ")
	b.withLoop(func() { b.emitBlockNoTrailingNewline(stmtsOf(n.Body)) })
	b.w.Newline()
}

func (b *Backend) VisitDoWhileStmt(n *ast.DoWhileStmt) {
	b.w.WriteString("do ")
	b.withLoop(func() { b.emitBlockNoTrailingNewline(stmtsOf(n.Body)) })
	b.w.WriteString(" while (")
	emitter.EmitExpr(b, n.Cond, ast.PriorityStatement)
	b.w.WriteLine(");")
}

// emitForClause writes one of a for-loop's three header clauses inline
// (no trailing newline/semicolon beyond the loop header's own "; ").
func (b *Backend) emitForClause(s ast.Statement) {
	switch v := s.(type) {
	case *ast.VarStmt:
		b.w.WriteString("let " + memberName(v.Name))
		if v.Init != nil {
			b.w.WriteString(" = ")
			emitter.EmitExpr(b, v.Init, ast.PriorityAssign)
		}
	case *ast.AssignStmt:
		emitter.EmitExpr(b, v.Target, ast.PriorityAssign)
		b.w.WriteString(" " + string(v.Op) + " ")
		emitter.EmitExpr(b, v.Value, ast.PriorityAssign)
	case *ast.ExprStmt:
		emitter.EmitExpr(b, v.Expr, ast.PriorityAssign)
	default:
		panic(&errors.UnsupportedConstruct{Backend: "javascript", Kind: "for-loop init/post clause"})
	}
}

func (b *Backend) VisitForStmt(n *ast.ForStmt) {
	b.w.WriteString("for (")
	if n.Init != nil {
		b.emitForClause(n.Init)
	}
	b.w.WriteString("; ")
	if n.Cond != nil {
		emitter.EmitExpr(b, n.Cond, ast.PriorityStatement)
	}
	b.w.WriteString("; ")
	if n.Post != nil {
		b.emitForClause(n.Post)
	}
	b.w.WriteString(") ")
	b.withLoop(func() { b.emitBlockNoTrailingNewline(stmtsOf(n.Body)) })
	b.w.Newline()
}

// foreachKeyIsNumeric reports whether a two-variable foreach's key
// variable is a numeric type, which needs the `.map(e => [+e[0], e[1]])`
// coercion since Object.entries keys are always strings.
func foreachKeyIsNumeric(t ast.Type) bool {
	switch t.(type) {
	case *ast.PrimitiveType, *ast.RangeType:
		return true
	default:
		return false
	}
}

func (b *Backend) VisitForeachStmt(n *ast.ForeachStmt) {
	if !n.TwoVariable() {
		b.w.WriteString("for (const " + memberName(n.Var1) + " of ")
		emitter.EmitExpr(b, n.Collection, ast.PriorityAssign)
		b.w.WriteString(") ")
		b.withLoop(func() { b.emitBlockNoTrailingNewline(stmtsOf(n.Body)) })
		b.w.Newline()
		return
	}

	_, sorted := n.Collection.ExprType().(*ast.SortedDictionaryType)
	numericKey := foreachKeyIsNumeric(n.Var1Type)

	b.w.WriteString("for (const [" + memberName(n.Var1) + ", " + memberName(n.Var2) + "] of Object.entries(")
	emitter.EmitExpr(b, n.Collection, ast.PriorityAssign)
	b.w.WriteString(")")
	if numericKey {
		b.w.WriteString(".map(e => [+e[0], e[1]])")
	}
	if sorted {
		if numericKey {
			b.w.WriteString(".sort((a, b) => a[0] - b[0])")
		} else {
			b.w.WriteString(".sort((a, b) => a[0].localeCompare(b[0]))")
		}
	}
	b.w.WriteString(") ")
	b.withLoop(func() { b.emitBlockNoTrailingNewline(stmtsOf(n.Body)) })
	b.w.Newline()
}

// VisitSwitchStmt emits an int switch as a native `switch`, where `break`
// already means exactly what the source language means. A string switch
// has no native discriminant to switch on directly, so every case is
// rewritten to an if/else-if "===" chain instead; it's wrapped in a
// `ciafterswitchN:` labeled block whenever any case or default body
// contains a `break` that isn't already inside its own nested loop
// (which would consume the break natively) — that labeled block is what
// lets such a break escape the if-chain the way it would have escaped a
// real switch.
func (b *Backend) VisitSwitchStmt(n *ast.SwitchStmt) {
	if !n.IsString {
		b.emitIntSwitch(n)
		return
	}
	b.emitStringSwitch(n)
}

func (b *Backend) emitIntSwitch(n *ast.SwitchStmt) {
	b.w.WriteString("switch (")
	emitter.EmitExpr(b, n.Discriminant, ast.PriorityStatement)
	b.w.WriteString(") ")
	b.w.OpenBlock("")
	b.switchDepth++
	for _, c := range n.Cases {
		for _, v := range c.Values {
			b.w.WriteString("case ")
			emitter.EmitExpr(b, v, ast.PriorityAssign)
			b.w.WriteLine(":")
		}
		b.w.Indent()
		for _, s := range c.Body {
			s.AcceptStmt(b)
		}
		b.w.Dedent()
	}
	if n.Default != nil {
		b.w.WriteLine("default:")
		b.w.Indent()
		for _, s := range n.Default {
			s.AcceptStmt(b)
		}
		b.w.Dedent()
	}
	b.switchDepth--
	b.w.CloseBlock()
}

// switchLabelsNeedingBreak reports whether any of body's direct
// statements is a bare break (one not already inside a further nested
// loop) by walking with ast.Walk and refusing to descend into anything
// that supplies its own native break target.
func switchLabelsNeedingBreak(bodies ...[]ast.Statement) bool {
	found := false
	v := breakScanner{found: &found}
	for _, body := range bodies {
		for _, s := range body {
			ast.Walk(v, s)
		}
	}
	return found
}

// breakScanner is an ast.Visitor that stops descending into statements
// that would natively consume a break (loops, nested switches) and
// reports whether a bare break remains reachable from the scan roots.
type breakScanner struct{ found *bool }

func (v breakScanner) Visit(node ast.Node) ast.Visitor {
	switch node.(type) {
	case *ast.BreakStmt:
		*v.found = true
		return nil
	case *ast.WhileStmt, *ast.DoWhileStmt, *ast.ForStmt, *ast.ForeachStmt, *ast.SwitchStmt:
		return nil
	}
	return v
}

func (b *Backend) emitStringSwitch(n *ast.SwitchStmt) {
	bodies := make([][]ast.Statement, 0, len(n.Cases)+1)
	for _, c := range n.Cases {
		bodies = append(bodies, c.Body)
	}
	if n.Default != nil {
		bodies = append(bodies, n.Default)
	}
	needsLabel := switchLabelsNeedingBreak(bodies...)

	var label string
	if needsLabel {
		label = "ciafterswitch" + itoaSmall(b.labelCounter)
		b.labelCounter++
		b.w.WriteLine(label + ": {")
		b.w.Indent()
		b.switchLabels = append(b.switchLabels, switchLabel{name: label, depth: b.switchDepth})
	}

	for i, c := range n.Cases {
		if i == 0 {
			b.w.WriteString("if (")
		} else {
			b.w.WriteString(" else if (")
		}
		for j, v := range c.Values {
			if j > 0 {
				b.w.WriteString(" || ")
			}
			emitter.EmitExpr(b, n.Discriminant, ast.PriorityEquality)
			b.w.WriteString(" === ")
			emitter.EmitExpr(b, v, ast.PriorityEquality+1)
		}
		b.w.WriteString(") ")
		b.emitBlockNoTrailingNewline(c.Body)
	}
	if n.Default != nil {
		if len(n.Cases) == 0 {
			b.emitBlockNoTrailingNewline(n.Default)
		} else {
			b.w.WriteString(" else ")
			b.emitBlockNoTrailingNewline(n.Default)
		}
	}
	b.w.Newline()

	if needsLabel {
		b.switchLabels = b.switchLabels[:len(b.switchLabels)-1]
		b.w.Dedent()
		b.w.WriteLine("}")
	}
}

// itoaSmall formats a small non-negative counter without pulling in
// strconv for a single call site.
func itoaSmall(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

// switchLabel is one active ciafterswitchN frame: the label text, plus the
// native-break-target depth at the point the string switch was entered, so
// VisitBreakStmt can tell a bare break in the switch's own case body (depth
// unchanged since push) from one inside a further-nested loop (depth
// incremented, resolves to that loop's native break instead).
type switchLabel struct {
	name  string
	depth int
}

func (b *Backend) VisitBreakStmt(n *ast.BreakStmt) {
	if len(b.switchLabels) > 0 {
		top := b.switchLabels[len(b.switchLabels)-1]
		if b.switchDepth == top.depth {
			b.w.WriteLine("break " + top.name + ";")
			return
		}
	}
	b.w.WriteLine("break;")
}

func (b *Backend) VisitContinueStmt(n *ast.ContinueStmt) {
	b.w.WriteLine("continue;")
}

func (b *Backend) VisitReturnStmt(n *ast.ReturnStmt) {
	if n.Value == nil {
		b.w.WriteLine("return;")
		return
	}
	b.w.WriteString("return ")
	emitter.EmitExpr(b, n.Value, ast.PriorityAssign)
	b.w.WriteLine(";")
}

func (b *Backend) VisitThrowStmt(n *ast.ThrowStmt) {
	b.w.WriteString("throw ")
	emitter.EmitExpr(b, n.Value, ast.PriorityAssign)
	b.w.WriteLine(";")
}

// VisitLockStmt rejects lock outright: this is a single-threaded target
// with no mutual-exclusion primitive to translate the statement to.
func (b *Backend) VisitLockStmt(n *ast.LockStmt) {
	panic(&errors.UnsupportedConstruct{Backend: "javascript", Kind: "lock"})
}

func (b *Backend) VisitAssertStmt(n *ast.AssertStmt) {
	b.w.WriteString("console.assert(")
	emitter.EmitExpr(b, n.Cond, ast.PriorityAssign)
	if n.Message != nil {
		b.w.WriteString(", ")
		emitter.EmitExpr(b, n.Message, ast.PriorityAssign)
	}
	b.w.WriteLine(");")
}

func (b *Backend) VisitExprStmt(n *ast.ExprStmt) {
	emitter.EmitExpr(b, n.Expr, ast.PriorityStatement)
	b.w.WriteLine(";")
}

// VisitConstStmt renders a local constant as METHOD_NAME_CONSTANT_NAME, a
// plain `const` binding since JS has no separate class-scoped
// local-constant storage to model.
func (b *Backend) VisitConstStmt(n *ast.ConstStmt) {
	b.w.WriteString("const " + localConstName(b.currentMethod, n.Name) + " = ")
	emitter.EmitExpr(b, n.Value, ast.PriorityAssign)
	b.w.WriteLine(";")
}
