package syntax

import (
	"io"

	"veric/ast"
	"veric/report"
)

// Parser is the parser for a Verilog primitive source file.  It is a recursive
// descent parser: all parsing functions assume that they begin with the parser
// centered on the first token of their production and must consume all tokens
// (including the last) of their production, leaving the parser on the next
// token.  Parsers are created once per file.
type Parser struct {
	// The absolute and representative paths of the file being parsed.
	absPath, reprPath string

	// lexer is the Lexer this parser is using to lex the source file.
	lexer *Lexer

	// tok is the current token the parser is positioned on.
	tok *Token
}

// NewParser creates a new parser for the given source file.
func NewParser(absPath, reprPath string, r io.Reader) *Parser {
	return &Parser{
		absPath:  absPath,
		reprPath: reprPath,
		lexer:    NewLexer(r),
	}
}

// Parse parses the whole file and appends its primitives to the design.
// Syntax errors are reported through the global reporter; an erroneous
// primitive is dropped and parsing resumes at the next `primitive` keyword.
func (p *Parser) Parse(d *ast.Design) {
	// Catch lexical errors raised outside any primitive.
	defer report.CatchErrors(p.absPath, p.reprPath)

	p.next()

	for p.tok.Kind != TOK_EOF {
		if p.tok.Kind == TOK_PRIMITIVE {
			if prim := p.parsePrimitive(); prim != nil {
				d.Primitives = append(d.Primitives, prim)
			}
		} else {
			report.ReportCompileError(p.absPath, p.reprPath, p.tok.Span,
				"expected `primitive`, found %s", p.tokName())
			p.resync()
		}
	}
}

// -----------------------------------------------------------------------------

// parsePrimitive parses one primitive declaration.  It returns nil if the
// primitive was malformed, in which case the error has been reported and the
// parser has been resynchronized to the next `primitive` keyword.
//
// primitive := 'primitive' IDENT '(' IDENT {',' IDENT} ')' ';'
//              {port-decl | initial-stmt | table} 'endprimitive'
func (p *Parser) parsePrimitive() (prim *ast.Primitive) {
	defer func() {
		if x := recover(); x != nil {
			cerr, ok := x.(*report.LocalCompileError)
			if !ok {
				panic(x)
			}

			report.ReportCompileError(p.absPath, p.reprPath, cerr.Span, cerr.Message)

			prim = nil
			p.lexer.DisableTableMode()
			p.resync()
		}
	}()

	startSpan := p.tok.Span
	p.next()

	p.assert(TOK_IDENT)
	name := p.tok.Value
	p.next()

	// Parse the port list.  Port list order is the declaration order every
	// later rule (output placement, field bit indices) is defined against.
	p.assertAndNext(TOK_LPAREN)

	var vars []*ast.Var
	varsByName := make(map[string]*ast.Var)

	for {
		p.assert(TOK_IDENT)
		if _, ok := varsByName[p.tok.Value]; ok {
			p.reject("duplicate port `%s`", p.tok.Value)
		}

		v := &ast.Var{
			ASTBase: ast.NewASTBaseOn(p.tok.Span),
			Name:    p.tok.Value,
			Dir:     ast.DirNone,
			Width:   1,
		}
		vars = append(vars, v)
		varsByName[v.Name] = v

		p.next()
		if p.tok.Kind != TOK_COMMA {
			break
		}
		p.next()
	}

	p.assertAndNext(TOK_RPAREN)
	p.assertAndNext(TOK_SEMICOLON)

	portCount := len(vars)

	// Parse the primitive body.
	var table *ast.UdpTable
	for p.tok.Kind != TOK_ENDPRIMITIVE {
		switch p.tok.Kind {
		case TOK_INPUT, TOK_OUTPUT:
			p.parsePortDecl(varsByName)
		case TOK_REG:
			vars = p.parseRegDecl(vars, varsByName)
		case TOK_INITIAL:
			// The initial value of a sequential primitive.  The primitive
			// will be rejected during lowering for its reg output, so the
			// statement is consumed and discarded here.
			report.ReportCompileWarning(p.absPath, p.reprPath, p.tok.Span,
				"initial statement of primitive `%s` is ignored", name)
			for p.tok.Kind != TOK_SEMICOLON && p.tok.Kind != TOK_EOF {
				p.next()
			}
			p.assertAndNext(TOK_SEMICOLON)
		case TOK_TABLE:
			if table != nil {
				p.reject("primitive `%s` has more than one table", name)
			}
			table = p.parseTable()
		default:
			p.reject("expected port declaration or `table`, found %s", p.tokName())
		}
	}

	endSpan := p.tok.Span
	p.next()

	// Every header port must have received a direction from the body
	// declarations.
	for _, v := range vars[:portCount] {
		if !v.IsIO() {
			report.ReportCompileError(p.absPath, p.reprPath, v.Span(),
				"port `%s` has no direction declaration", v.Name)
		}
	}

	if table == nil {
		report.ReportCompileError(p.absPath, p.reprPath, startSpan,
			"primitive `%s` has no table", name)
	}

	prim = &ast.Primitive{
		ASTBase:  ast.NewASTBaseOver(startSpan, endSpan),
		Name:     name,
		AbsPath:  p.absPath,
		ReprPath: p.reprPath,
	}
	for _, v := range vars {
		prim.Items = append(prim.Items, v)
	}
	if table != nil {
		prim.Items = append(prim.Items, table)
	}

	return prim
}

// parsePortDecl parses an input or output direction declaration.
//
// port-decl := ('input' | 'output') IDENT {',' IDENT} ';'
func (p *Parser) parsePortDecl(varsByName map[string]*ast.Var) {
	dir := ast.DirInput
	if p.tok.Kind == TOK_OUTPUT {
		dir = ast.DirOutput
	}
	p.next()

	for {
		p.assert(TOK_IDENT)

		v, ok := varsByName[p.tok.Value]
		if !ok {
			p.reject("`%s` is not a port of the primitive", p.tok.Value)
		} else if v.Dir != ast.DirNone {
			p.reject("port `%s` already has a direction", v.Name)
		}
		v.Dir = dir

		p.next()
		if p.tok.Kind != TOK_COMMA {
			break
		}
		p.next()
	}

	p.assertAndNext(TOK_SEMICOLON)
}

// parseRegDecl parses a reg data type declaration.  A reg declaration names
// either a port, marking it logic-valued, or a new local variable.
//
// reg-decl := 'reg' IDENT {',' IDENT} ';'
func (p *Parser) parseRegDecl(vars []*ast.Var, varsByName map[string]*ast.Var) []*ast.Var {
	p.next()

	for {
		p.assert(TOK_IDENT)

		if v, ok := varsByName[p.tok.Value]; ok {
			v.IsLogic = true
		} else {
			v := &ast.Var{
				ASTBase: ast.NewASTBaseOn(p.tok.Span),
				Name:    p.tok.Value,
				Dir:     ast.DirNone,
				Width:   1,
				IsLogic: true,
			}
			vars = append(vars, v)
			varsByName[v.Name] = v
		}

		p.next()
		if p.tok.Kind != TOK_COMMA {
			break
		}
		p.next()
	}

	p.assertAndNext(TOK_SEMICOLON)
	return vars
}

// parseTable parses a table construct.
//
// table := 'table' {table-row} 'endtable'
func (p *Parser) parseTable() *ast.UdpTable {
	startSpan := p.tok.Span

	p.lexer.EnableTableMode()
	p.next()

	var rows []*ast.UdpTableRow
	for p.tok.Kind != TOK_ENDTABLE {
		if p.tok.Kind == TOK_EOF {
			p.reject("unterminated table")
		}

		rows = append(rows, p.parseTableRow())
	}

	p.lexer.DisableTableMode()
	endSpan := p.tok.Span
	p.next()

	return &ast.UdpTable{
		ASTBase: ast.NewASTBaseOver(startSpan, endSpan),
		Rows:    rows,
	}
}

// parseTableRow parses one row of a table.
//
// table-row := SYMBOL {SYMBOL} ':' SYMBOL {SYMBOL} ';'
func (p *Parser) parseTableRow() *ast.UdpTableRow {
	startSpan := p.tok.Span

	inputs := p.parseSymbols()
	if len(inputs) == 0 {
		p.reject("expected table symbol, found %s", p.tokName())
	}

	p.assertAndNext(TOK_COLON)

	outputs := p.parseSymbols()
	if len(outputs) == 0 {
		p.reject("expected output symbol, found %s", p.tokName())
	}

	endSpan := p.tok.Span
	p.assertAndNext(TOK_SEMICOLON)

	return &ast.UdpTableRow{
		ASTBase: ast.NewASTBaseOver(startSpan, endSpan),
		Inputs:  inputs,
		Outputs: outputs,
	}
}

// parseSymbols parses a run of consecutive table symbols.
func (p *Parser) parseSymbols() []*ast.TableSymbol {
	var syms []*ast.TableSymbol
	for {
		switch p.tok.Kind {
		case TOK_SYMBOL:
			char := rune(p.tok.Value[0])

			kind := ast.SymDontCare
			switch char {
			case '0':
				kind = ast.SymZero
			case '1':
				kind = ast.SymOne
			case 'r', 'R', 'f', 'F', 'p', 'P', 'n', 'N', '*':
				// Edge symbols mark an edge-sensitive row, the same as the
				// `(01)` form below.
				p.reject("edge-sensitive table rows are not supported")
			}

			syms = append(syms, &ast.TableSymbol{
				ASTBase: ast.NewASTBaseOn(p.tok.Span),
				Kind:    kind,
				Char:    char,
			})
			p.next()
		case TOK_LPAREN:
			// An `(01)` style entry marks an edge-sensitive row.
			p.reject("edge-sensitive table rows are not supported")
		default:
			return syms
		}
	}
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.
func (p *Parser) next() {
	p.tok = p.lexer.NextToken()
}

// assert checks that the parser is on a token of the given kind and rejects
// the token if not.
func (p *Parser) assert(kind int) {
	if p.tok.Kind != kind {
		p.reject("expected %s, found %s", tokKindNames[kind], p.tokName())
	}
}

// assertAndNext performs an assert operation and moves the parser forward.
func (p *Parser) assertAndNext(kind int) {
	p.assert(kind)
	p.next()
}

// reject raises a compile error on the current token, aborting the enclosing
// primitive.
func (p *Parser) reject(msg string, args ...interface{}) {
	panic(report.Raise(p.tok.Span, msg, args...))
}

// tokName returns the display name of the current token for error messages.
func (p *Parser) tokName() string {
	if p.tok.Kind == TOK_IDENT || p.tok.Kind == TOK_SYMBOL {
		return "`" + p.tok.Value + "`"
	}

	return tokKindNames[p.tok.Kind]
}

// resync advances the parser to the next `primitive` keyword or EOF so that
// parsing can continue after a syntax error.
func (p *Parser) resync() {
	for p.tok.Kind != TOK_PRIMITIVE && p.tok.Kind != TOK_EOF {
		p.next()
	}
}
