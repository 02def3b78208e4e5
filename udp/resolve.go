// Package udp lowers the declarative truth table of a user-defined primitive
// into procedural logic.  For a table such as
//
//	table
//	    x 0 1 : 1 ;
//	    0 ? 1 : 1 ;
//	    0 1 0 : 0 ;
//	endtable
//
// the pass synthesizes one field variable holding the concatenation of all
// input ports, and, per row, a mask/compare constant pair encoding the row's
// match condition as `(mask & field) == compare`: for the row `x 0 1 : 1` the
// mask is 011 and the compare value is 001 (a don't-care symbol clears the
// mask bit, excluding that input from the test).  The row conditionals are
// chained as nested else branches of a level-sensitive process in declaration
// order, so the earliest matching row wins and the output retains its previous
// value when no row matches.  This pass must run before inlining and tri-state
// resolution.
package udp

import (
	"veric/ast"
	"veric/report"
	"veric/vnum"
)

// IFieldVarName is the reserved name of the synthesized input field variable.
const IFieldVarName = "tableline__ifield__udptmp"

// Resolve lowers the table of every primitive in the design.  Diagnostics for
// malformed primitives are reported but never abort the pass: lowering
// proceeds best-effort, and the reporter's error count gates whether later
// phases run at all.
func Resolve(d *ast.Design) {
	for _, prim := range d.Primitives {
		r := &resolver{prim: prim}
		r.resolve()
	}
}

// resolver holds the lowering state for a single primitive.  A fresh resolver
// is created per primitive, so no state can leak between sibling primitives.
type resolver struct {
	prim *ast.Primitive

	// The primitive's ports split by direction, in declaration order.
	inputVars  []*ast.Var
	outputVars []*ast.Var

	// Whether the first classified IO port was an output.
	isFirstOutput bool

	// The synthesized input field variable.
	ifieldVar *ast.Var

	// The resolved output port of the table.
	ofieldVar *ast.Var

	// The level-sensitive process hosting the row conditionals.
	alwaysStmt *ast.Always

	// The tail of the conditional chain built so far.
	chainTail *ast.IfStmt
}

func (r *resolver) resolve() {
	table := r.prim.Table()
	if table == nil {
		return
	}

	r.classifyPorts()

	if !r.validateTable(table) {
		return
	}

	r.synthesizeField(table)

	for _, row := range table.Rows {
		r.compileRow(row)
	}
}

// -----------------------------------------------------------------------------

// classifyPorts splits the primitive's ports into the ordered input and output
// lists, recording whether the first port encountered was an output.  Local
// variables are not ports and are ignored.
func (r *resolver) classifyPorts() {
	for _, v := range r.prim.Vars() {
		if !v.IsIO() {
			continue
		}

		if v.Dir == ast.DirInput {
			r.inputVars = append(r.inputVars, v)
		} else {
			r.outputVars = append(r.outputVars, v)
		}

		if len(r.inputVars) == 0 && len(r.outputVars) == 1 {
			r.isFirstOutput = true
		}
	}
}

// validateTable checks the classified ports against the table's structural
// invariants, reporting a diagnostic for each violation.  It returns whether
// synthesis can proceed at all: with no output port there is nothing to
// assign, so the primitive is skipped; every other violation is non-fatal and
// lowering continues with the best available output candidate.
func (r *resolver) validateTable(table *ast.UdpTable) bool {
	outputNum := len(r.outputVars)

	if outputNum != 1 {
		// Attach the count diagnostic to the last classified output; with no
		// outputs at all the table itself is the only sensible target.
		span := table.Span()
		if outputNum > 0 {
			span = r.outputVars[outputNum-1].Span()
		}
		r.error(span, "%d output ports for udp table, there must be one output port", outputNum)
	}

	if !r.isFirstOutput && outputNum > 0 {
		// The diagnostic target is the first input port: when the output is
		// misplaced, the first declared port is an input.
		r.error(r.inputVars[0].Span(), "the first port must be the output port")
	}

	if outputNum == 0 {
		return false
	}
	r.ofieldVar = r.outputVars[0]

	if r.ofieldVar.IsLogic {
		r.error(r.ofieldVar.Span(), "sequential UDP is not supported currently")
	}

	// A table with no input ports has no field to synthesize.  Every row is
	// reported as malformed before the primitive is skipped.
	if len(r.inputVars) == 0 {
		for _, row := range table.Rows {
			r.error(row.Span(), "0 input values required, but there are %d inputs for the table row",
				len(row.Inputs))
		}
		return false
	}

	return true
}

// synthesizeField creates the input field variable and wires it to the
// concatenation of all input ports, then replaces the table construct with the
// field assignment followed by the empty level-sensitive process that will
// host the row logic.
func (r *resolver) synthesizeField(table *ast.UdpTable) {
	fl := table.Span()

	r.ifieldVar = &ast.Var{
		ASTBase: ast.NewASTBaseOn(fl),
		Name:    IFieldVarName,
		Dir:     ast.DirNone,
		Width:   len(r.inputVars),
	}

	lastInput := r.inputVars[len(r.inputVars)-1]
	r.prim.InsertItemAfter(r.prim.ItemIndex(lastInput), r.ifieldVar)

	// Build the concatenation input-port-list-order: the first declared input
	// lands in bit 0, each later input above it.
	var concat ast.ASTExpr = &ast.VarRef{
		ASTBase: ast.NewASTBaseOn(fl),
		Target:  r.inputVars[0],
	}
	for _, in := range r.inputVars[1:] {
		concat = &ast.Concat{
			ASTBase: ast.NewASTBaseOn(fl),
			Lhs:     &ast.VarRef{ASTBase: ast.NewASTBaseOn(fl), Target: in},
			Rhs:     concat,
		}
	}

	assignW := &ast.AssignW{
		ASTBase: ast.NewASTBaseOn(fl),
		Lhs:     &ast.VarRef{ASTBase: ast.NewASTBaseOn(fl), Target: r.ifieldVar},
		Rhs:     concat,
	}

	r.alwaysStmt = &ast.Always{
		ASTBase: ast.NewASTBaseOn(fl),
		Kind:    ast.AlwaysLatch,
	}

	r.prim.ReplaceItem(r.prim.ItemIndex(table), assignW, r.alwaysStmt)
}

// compileRow lowers one table row into a conditional assignment and threads it
// onto the row chain.
func (r *resolver) compileRow(row *ast.UdpTableRow) {
	fl := row.Span()
	inputNum := len(r.inputVars)

	if len(row.Inputs) != inputNum {
		r.error(fl, "%d input values required, but there are %d inputs for the table row",
			inputNum, len(row.Inputs))
	}

	// Build the row's mask/compare pair.  Bit i corresponds to the i-th
	// declared input port.
	mask := vnum.New(inputNum)
	cmp := vnum.New(inputNum)
	for i, sym := range row.Inputs {
		if i >= inputNum {
			break
		}

		switch sym.Kind {
		case ast.SymZero:
			mask.SetBit(i, vnum.Hi)
		case ast.SymOne:
			mask.SetBit(i, vnum.Hi)
			cmp.SetBit(i, vnum.Hi)
		}
	}

	// (mask & field) == compare
	cond := &ast.BinaryExpr{
		ASTBase: ast.NewASTBaseOn(fl),
		Op:      ast.OpEq,
		Lhs: &ast.BinaryExpr{
			ASTBase: ast.NewASTBaseOn(fl),
			Op:      ast.OpAnd,
			Lhs:     &ast.ConstExpr{ASTBase: ast.NewASTBaseOn(fl), Value: mask},
			Rhs:     &ast.VarRef{ASTBase: ast.NewASTBaseOn(fl), Target: r.ifieldVar},
		},
		Rhs: &ast.ConstExpr{ASTBase: ast.NewASTBaseOn(fl), Value: cmp},
	}

	// Resolve the row's output symbol to a 1-bit value.
	onum := vnum.New(1)
	switch row.Outputs[0].Kind {
	case ast.SymZero:
		onum.SetBit(0, vnum.Lo)
	case ast.SymOne:
		onum.SetBit(0, vnum.Hi)
	default:
		onum.SetBit(0, vnum.Undefined)
	}

	ifStmt := &ast.IfStmt{
		ASTBase: ast.NewASTBaseOn(fl),
		Cond:    cond,
		Then: []ast.ASTNode{
			&ast.Assign{
				ASTBase: ast.NewASTBaseOn(fl),
				Lhs:     &ast.VarRef{ASTBase: ast.NewASTBaseOn(fl), Target: r.ofieldVar},
				Rhs:     &ast.ConstExpr{ASTBase: ast.NewASTBaseOn(fl), Value: onum},
			},
		},
	}

	// The first row becomes the process body; every later row becomes the
	// else branch of the previous one.  There is never a trailing
	// unconditional branch: when no row matches, the level-sensitive process
	// leaves the output at its previous value.
	if r.chainTail == nil {
		r.alwaysStmt.Stmts = append(r.alwaysStmt.Stmts, ifStmt)
	} else {
		r.chainTail.Else = []ast.ASTNode{ifStmt}
	}
	r.chainTail = ifStmt
}

// -----------------------------------------------------------------------------

// error reports a diagnostic against the resolver's primitive.
func (r *resolver) error(span *report.TextSpan, msg string, args ...interface{}) {
	report.ReportCompileError(r.prim.AbsPath, r.prim.ReprPath, span, msg, args...)
}
