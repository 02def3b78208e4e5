// Package emit writes a design back out as Verilog source text.  A lowered
// primitive contains only variables, continuous assignments, and a procedural
// process, so it is emitted as an ordinary module; a primitive that still
// carries its table is emitted back as a primitive declaration.
package emit

import (
	"fmt"
	"io"
	"strings"

	"veric/ast"
	"veric/report"
)

// WriteDesign writes the Verilog source for the whole design to w.
func WriteDesign(w io.Writer, d *ast.Design) error {
	e := &emitter{w: w}
	for i, prim := range d.Primitives {
		if i > 0 {
			e.line("")
		}
		e.emitPrimitive(prim)
	}

	return e.err
}

// emitter accumulates the first write error so emission code can stay free of
// error plumbing.
type emitter struct {
	w   io.Writer
	err error
}

func (e *emitter) printf(format string, args ...interface{}) {
	if e.err == nil {
		_, e.err = fmt.Fprintf(e.w, format, args...)
	}
}

func (e *emitter) line(format string, args ...interface{}) {
	e.printf(format+"\n", args...)
}

// -----------------------------------------------------------------------------

func (e *emitter) emitPrimitive(prim *ast.Primitive) {
	lowered := prim.Table() == nil

	keyword, endKeyword := "primitive", "endprimitive"
	if lowered {
		keyword, endKeyword = "module", "endmodule"
	}

	e.printf("%s %s (", keyword, prim.Name)
	for i, v := range portVars(prim) {
		if i > 0 {
			e.printf(", ")
		}
		e.printf("%s", v.Name)
	}
	e.line(");")

	for _, item := range prim.Items {
		if v, ok := item.(*ast.Var); ok {
			e.emitVar(v, lowered)
		}
	}

	for _, item := range prim.Items {
		switch n := item.(type) {
		case *ast.UdpTable:
			e.emitTable(n)
		case *ast.AssignW:
			e.line("")
			e.line("  assign %s = %s;", n.Lhs.Target.Name, exprString(n.Rhs))
		case *ast.Always:
			e.emitAlways(n)
		}
	}

	e.line("%s", endKeyword)
}

func (e *emitter) emitVar(v *ast.Var, lowered bool) {
	switch {
	case v.Dir == ast.DirInput:
		e.line("  input %s;", v.Name)
	case v.Dir == ast.DirOutput && lowered:
		// The lowered process drives the output procedurally.
		e.line("  output reg %s;", v.Name)
	case v.Dir == ast.DirOutput:
		e.line("  output %s;", v.Name)
	case v.IsLogic:
		e.line("  reg %s;", v.Name)
	case v.Width > 1:
		e.line("  wire [%d:0] %s;", v.Width-1, v.Name)
	default:
		e.line("  wire %s;", v.Name)
	}
}

func (e *emitter) emitTable(table *ast.UdpTable) {
	e.line("  table")
	for _, row := range table.Rows {
		e.printf("    ")
		for _, sym := range row.Inputs {
			e.printf("%c ", sym.Char)
		}
		e.printf(":")
		for _, sym := range row.Outputs {
			e.printf(" %c", sym.Char)
		}
		e.line(" ;")
	}
	e.line("  endtable")
}

func (e *emitter) emitAlways(always *ast.Always) {
	e.line("")
	if always.Kind == ast.AlwaysLatch {
		e.line("  always_latch begin")
	} else {
		e.line("  always begin")
	}

	for _, stmt := range always.Stmts {
		e.emitStmt(stmt, "    ")
	}

	e.line("  end")
}

func (e *emitter) emitStmt(stmt ast.ASTNode, indent string) {
	switch n := stmt.(type) {
	case *ast.Assign:
		e.line("%s%s = %s;", indent, n.Lhs.Target.Name, exprString(n.Rhs))
	case *ast.IfStmt:
		e.emitIf(n, indent, "if")
	default:
		report.ReportICE("unemittable statement node %T", n)
	}
}

// emitIf emits an if statement, rendering a nested sole-if else branch as an
// `else if` chain.
func (e *emitter) emitIf(ifStmt *ast.IfStmt, indent string, keyword string) {
	// Binary conditions render with their own outer parentheses.
	cond := exprString(ifStmt.Cond)
	if !strings.HasPrefix(cond, "(") {
		cond = "(" + cond + ")"
	}

	e.line("%s%s %s begin", indent, keyword, cond)
	for _, stmt := range ifStmt.Then {
		e.emitStmt(stmt, indent+"  ")
	}
	e.line("%send", indent)

	if len(ifStmt.Else) == 1 {
		if next, ok := ifStmt.Else[0].(*ast.IfStmt); ok {
			e.emitIf(next, indent, "else if")
			return
		}
	}

	if ifStmt.Else != nil {
		e.line("%selse begin", indent)
		for _, stmt := range ifStmt.Else {
			e.emitStmt(stmt, indent+"  ")
		}
		e.line("%send", indent)
	}
}

// -----------------------------------------------------------------------------

// exprString renders an expression as Verilog source text.
func exprString(expr ast.ASTExpr) string {
	switch n := expr.(type) {
	case *ast.VarRef:
		return n.Target.Name
	case *ast.Concat:
		// Flatten right-nested concatenations into one brace list.
		parts := exprString(n.Lhs)
		rhs := n.Rhs
		for {
			if c, ok := rhs.(*ast.Concat); ok {
				parts += ", " + exprString(c.Lhs)
				rhs = c.Rhs
				continue
			}

			parts += ", " + exprString(rhs)
			break
		}
		return "{" + parts + "}"
	case *ast.BinaryExpr:
		op := "&"
		if n.Op == ast.OpEq {
			op = "=="
		}
		return fmt.Sprintf("(%s %s %s)", exprString(n.Lhs), op, exprString(n.Rhs))
	case *ast.ConstExpr:
		return n.Value.String()
	default:
		report.ReportICE("unemittable expression node %T", n)
		return ""
	}
}

// portVars returns the primitive's ports in declaration order.
func portVars(prim *ast.Primitive) []*ast.Var {
	var ports []*ast.Var
	for _, v := range prim.Vars() {
		if v.IsIO() {
			ports = append(ports, v)
		}
	}

	return ports
}
