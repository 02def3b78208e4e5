package syntax

import "veric/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.
	Value string

	// The text span over which the token exists.
	Span *report.TextSpan
}

// Enumeration of token kinds.
const (
	TOK_PRIMITIVE = iota
	TOK_ENDPRIMITIVE
	TOK_TABLE
	TOK_ENDTABLE
	TOK_INPUT
	TOK_OUTPUT
	TOK_REG
	TOK_INITIAL

	TOK_IDENT
	TOK_NUMBER

	// A single table symbol character.  Only produced in table lexing mode.
	TOK_SYMBOL

	TOK_ASSIGN

	TOK_LPAREN
	TOK_RPAREN
	TOK_COMMA
	TOK_SEMICOLON
	TOK_COLON

	TOK_EOF
)

// keywordPatterns maps keyword strings to their token kind.
var keywordPatterns = map[string]int{
	"primitive":    TOK_PRIMITIVE,
	"endprimitive": TOK_ENDPRIMITIVE,
	"table":        TOK_TABLE,
	"endtable":     TOK_ENDTABLE,
	"input":        TOK_INPUT,
	"output":       TOK_OUTPUT,
	"reg":          TOK_REG,
	"initial":      TOK_INITIAL,
}

// tokKindNames maps token kinds to the names used in error messages.
var tokKindNames = map[int]string{
	TOK_PRIMITIVE:    "`primitive`",
	TOK_ENDPRIMITIVE: "`endprimitive`",
	TOK_TABLE:        "`table`",
	TOK_ENDTABLE:     "`endtable`",
	TOK_INPUT:        "`input`",
	TOK_OUTPUT:       "`output`",
	TOK_REG:          "`reg`",
	TOK_INITIAL:      "`initial`",
	TOK_IDENT:        "identifier",
	TOK_NUMBER:       "number",
	TOK_SYMBOL:       "table symbol",
	TOK_ASSIGN:       "`=`",
	TOK_LPAREN:       "`(`",
	TOK_RPAREN:       "`)`",
	TOK_COMMA:        "`,`",
	TOK_SEMICOLON:    "`;`",
	TOK_COLON:        "`:`",
	TOK_EOF:          "end of file",
}
