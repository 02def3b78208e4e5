package ast

// Design is the root of the node graph for one compilation: the parsed
// contents of all input source files.
type Design struct {
	// The primitives of the design, in declaration order.
	Primitives []*Primitive
}

// Primitive represents one user-defined primitive: a combinational logic unit
// described by a truth table.
type Primitive struct {
	ASTBase

	// The name of the primitive.
	Name string

	// The absolute and representative paths of the file declaring the
	// primitive, used to attach diagnostics.
	AbsPath, ReprPath string

	// The ordered items of the primitive body: port and local variables, the
	// table construct, and, after lowering, the statements that replace it.
	Items []ASTNode
}

// Vars returns the primitive's variables in declaration order.
func (p *Primitive) Vars() []*Var {
	var vars []*Var
	for _, item := range p.Items {
		if v, ok := item.(*Var); ok {
			vars = append(vars, v)
		}
	}

	return vars
}

// Table returns the primitive's table construct, or nil if it has none (eg.
// after lowering).
func (p *Primitive) Table() *UdpTable {
	for _, item := range p.Items {
		if tbl, ok := item.(*UdpTable); ok {
			return tbl
		}
	}

	return nil
}

// ReplaceItem replaces the item at index ndx with the given replacement nodes.
func (p *Primitive) ReplaceItem(ndx int, nodes ...ASTNode) {
	items := make([]ASTNode, 0, len(p.Items)+len(nodes)-1)
	items = append(items, p.Items[:ndx]...)
	items = append(items, nodes...)
	items = append(items, p.Items[ndx+1:]...)
	p.Items = items
}

// InsertItemAfter inserts a node immediately after the item at index ndx.
func (p *Primitive) InsertItemAfter(ndx int, node ASTNode) {
	items := make([]ASTNode, 0, len(p.Items)+1)
	items = append(items, p.Items[:ndx+1]...)
	items = append(items, node)
	items = append(items, p.Items[ndx+1:]...)
	p.Items = items
}

// ItemIndex returns the index of the given item in the primitive's body, or -1
// if the node is not an immediate child.
func (p *Primitive) ItemIndex(node ASTNode) int {
	for i, item := range p.Items {
		if item == node {
			return i
		}
	}

	return -1
}

// -----------------------------------------------------------------------------

// Enumeration of variable directions.
const (
	DirNone   = iota // A local variable: not part of the port list.
	DirInput         // An input port.
	DirOutput        // An output port.
)

// Var represents a variable declared inside a primitive: a port or a local.
type Var struct {
	ASTBase

	// The name of the variable.
	Name string

	// The direction of the variable.  This must be one of the enumerated
	// directions.
	Dir int

	// The declared bit width of the variable.
	Width int

	// Whether the variable was declared with a logic (reg) data type and is
	// therefore capable of holding state.
	IsLogic bool
}

// IsIO returns whether the variable is a port.
func (v *Var) IsIO() bool {
	return v.Dir != DirNone
}
