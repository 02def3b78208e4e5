package ast

// UdpTable represents a primitive's table construct: the declarative truth
// table the lowering pass rewrites into procedural logic.
type UdpTable struct {
	ASTBase

	// The rows of the table.  Row order is load-bearing: it becomes the
	// evaluation priority of the synthesized conditional chain.
	Rows []*UdpTableRow
}

// UdpTableRow represents a single line of a truth table.
type UdpTableRow struct {
	ASTBase

	// The input symbols of the row, in port declaration order.
	Inputs []*TableSymbol

	// The output symbols of the row.  A well-formed combinational row has
	// exactly one.
	Outputs []*TableSymbol
}

// -----------------------------------------------------------------------------

// Enumeration of table symbol kinds.
const (
	SymZero     = iota // The symbol `0`.
	SymOne             // The symbol `1`.
	SymDontCare        // Any other symbol: `x`, `?`, `b`, ...
)

// TableSymbol represents a single symbol of a table row.
type TableSymbol struct {
	ASTBase

	// The kind of the symbol.  This must be one of the enumerated symbol
	// kinds.
	Kind int

	// The source character the symbol was written as, kept for diagnostics.
	Char rune
}
