package ast

import "veric/vnum"

// ASTExpr is the abstract interface for all expression nodes.
type ASTExpr interface {
	ASTNode

	// Width is the bit width yielded by the expression.
	Width() int
}

// VarRef represents a reference to a variable.
type VarRef struct {
	ASTBase

	// The variable being referenced.
	Target *Var
}

func (vr *VarRef) Width() int {
	return vr.Target.Width
}

// Concat represents a two-operand bit concatenation.  The left operand
// occupies the more significant bits of the result.
type Concat struct {
	ASTBase

	Lhs, Rhs ASTExpr
}

func (c *Concat) Width() int {
	return c.Lhs.Width() + c.Rhs.Width()
}

// Enumeration of binary operator kinds.
const (
	OpAnd = iota // Bitwise AND.
	OpEq         // Logical equality.
)

// BinaryExpr represents a binary operator application.
type BinaryExpr struct {
	ASTBase

	// The operator kind.  This must be one of the enumerated operator kinds.
	Op int

	Lhs, Rhs ASTExpr
}

func (be *BinaryExpr) Width() int {
	if be.Op == OpEq {
		return 1
	}

	return be.Lhs.Width()
}

// ConstExpr represents a sized constant.
type ConstExpr struct {
	ASTBase

	// The value of the constant.
	Value *vnum.Number
}

func (ce *ConstExpr) Width() int {
	return ce.Value.Width()
}
