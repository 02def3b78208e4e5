package ast

import (
	"fmt"
	"io"
)

// DumpTo writes an indented textual dump of the design's node graph to w.
// The dump is a debugging aid: its format is stable enough for tests but is
// not a compiler output surface.
func DumpTo(w io.Writer, d *Design) {
	for _, prim := range d.Primitives {
		fmt.Fprintf(w, "PRIMITIVE %s\n", prim.Name)
		for _, item := range prim.Items {
			dumpNode(w, item, 1)
		}
	}
}

func dumpNode(w io.Writer, node ASTNode, depth int) {
	indent := func(d int) {
		for i := 0; i < d; i++ {
			io.WriteString(w, "  ")
		}
	}

	indent(depth)
	switch n := node.(type) {
	case *Var:
		fmt.Fprintf(w, "VAR %s %s width=%d", n.Name, dirString(n.Dir), n.Width)
		if n.IsLogic {
			io.WriteString(w, " logic")
		}
		io.WriteString(w, "\n")
	case *UdpTable:
		fmt.Fprintf(w, "TABLE rows=%d\n", len(n.Rows))
		for _, row := range n.Rows {
			indent(depth + 1)
			io.WriteString(w, "ROW ")
			for _, sym := range row.Inputs {
				fmt.Fprintf(w, "%c", sym.Char)
			}
			io.WriteString(w, " :")
			for _, sym := range row.Outputs {
				fmt.Fprintf(w, " %c", sym.Char)
			}
			io.WriteString(w, "\n")
		}
	case *AssignW:
		io.WriteString(w, "ASSIGNW\n")
		dumpNode(w, n.Lhs, depth+1)
		dumpNode(w, n.Rhs, depth+1)
	case *Always:
		if n.Kind == AlwaysLatch {
			io.WriteString(w, "ALWAYS latch\n")
		} else {
			io.WriteString(w, "ALWAYS\n")
		}
		for _, stmt := range n.Stmts {
			dumpNode(w, stmt, depth+1)
		}
	case *Assign:
		io.WriteString(w, "ASSIGN\n")
		dumpNode(w, n.Lhs, depth+1)
		dumpNode(w, n.Rhs, depth+1)
	case *IfStmt:
		io.WriteString(w, "IF\n")
		dumpNode(w, n.Cond, depth+1)
		indent(depth + 1)
		io.WriteString(w, "THEN\n")
		for _, stmt := range n.Then {
			dumpNode(w, stmt, depth+2)
		}
		if n.Else != nil {
			indent(depth + 1)
			io.WriteString(w, "ELSE\n")
			for _, stmt := range n.Else {
				dumpNode(w, stmt, depth+2)
			}
		}
	case *VarRef:
		fmt.Fprintf(w, "VARREF %s\n", n.Target.Name)
	case *Concat:
		io.WriteString(w, "CONCAT\n")
		dumpNode(w, n.Lhs, depth+1)
		dumpNode(w, n.Rhs, depth+1)
	case *BinaryExpr:
		if n.Op == OpAnd {
			io.WriteString(w, "AND\n")
		} else {
			io.WriteString(w, "EQ\n")
		}
		dumpNode(w, n.Lhs, depth+1)
		dumpNode(w, n.Rhs, depth+1)
	case *ConstExpr:
		fmt.Fprintf(w, "CONST %s\n", n.Value)
	default:
		fmt.Fprintf(w, "%T\n", n)
	}
}

func dirString(dir int) string {
	switch dir {
	case DirInput:
		return "input"
	case DirOutput:
		return "output"
	default:
		return "local"
	}
}
