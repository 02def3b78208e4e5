package ast

// AssignW represents a continuous (always-active) assignment.
type AssignW struct {
	ASTBase

	// The variable being driven.
	Lhs *VarRef

	// The driving expression.
	Rhs ASTExpr
}

// Enumeration of procedural block kinds.
const (
	AlwaysPlain = iota // A plain `always` block.
	AlwaysLatch        // A level-sensitive `always_latch` block.
)

// Always represents a procedural always block.  A level-sensitive block with
// no assignment on some evaluation path holds its outputs at their previous
// driven values.
type Always struct {
	ASTBase

	// The kind of the block.  This must be one of the enumerated block kinds.
	Kind int

	// The statements of the block body.
	Stmts []ASTNode
}

// Assign represents a procedural (blocking) assignment.
type Assign struct {
	ASTBase

	// The variable being assigned.
	Lhs *VarRef

	// The assigned expression.
	Rhs ASTExpr
}

// IfStmt represents a procedural if statement.
type IfStmt struct {
	ASTBase

	// The condition of the statement.
	Cond ASTExpr

	// The statements of the then branch.
	Then []ASTNode

	// The statements of the else branch.  A nil else branch means the
	// statement falls through without effect when the condition fails.
	Else []ASTNode
}
