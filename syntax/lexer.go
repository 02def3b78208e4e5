package syntax

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"veric/report"
)

// Lexer is responsible for tokenizing a source file.
type Lexer struct {
	file    *bufio.Reader
	tokBuff *strings.Builder

	line, col           int
	startLine, startCol int

	// Whether the lexer is positioned inside a table construct.  Inside a
	// table, every non-punctuation character is its own symbol token: `01`
	// is two symbols, not an identifier.
	tableMode bool
}

// NewLexer creates a new lexer over the given reader.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		file:    bufio.NewReader(r),
		tokBuff: &strings.Builder{},
	}
}

// EnableTableMode tells the lexer to emit each table symbol character as its
// own token.  This is set while the parser is between `table` and `endtable`.
func (l *Lexer) EnableTableMode() {
	l.tableMode = true
}

// DisableTableMode returns the lexer to ordinary identifier lexing.
func (l *Lexer) DisableTableMode() {
	l.tableMode = false
}

// NextToken retrieves the next token from the input. If the input has ended,
// this will be an EOF token.  Malformed input raises a compile error.
func (l *Lexer) NextToken() *Token {
	for {
		c := l.peek()
		if c == -1 {
			break
		}

		switch c {
		case '\n', '\t', ' ', '\r', '\v', '\f':
			l.skip()
		case '/':
			if tok := l.lexComment(); tok != nil {
				return tok
			}
		case '(':
			return l.lexPunct(TOK_LPAREN)
		case ')':
			return l.lexPunct(TOK_RPAREN)
		case ',':
			return l.lexPunct(TOK_COMMA)
		case ';':
			return l.lexPunct(TOK_SEMICOLON)
		case ':':
			return l.lexPunct(TOK_COLON)
		case '=':
			return l.lexPunct(TOK_ASSIGN)
		default:
			if l.tableMode {
				return l.lexTableEntry(c)
			} else if isFirstIdentChar(c) {
				return l.lexIdentOrKeyword()
			} else if unicode.IsDigit(c) {
				return l.lexNumber()
			}

			l.mark()
			l.skip()
			panic(report.Raise(l.span(), "unexpected character: `%c`", c))
		}
	}

	return &Token{Kind: TOK_EOF, Value: "", Span: l.eofSpan()}
}

// -----------------------------------------------------------------------------

// lexComment lexes a line or block comment beginning with `/`.  It returns nil
// once the comment has been consumed: comments produce no tokens.
func (l *Lexer) lexComment() *Token {
	l.mark()
	l.skip()

	switch l.peek() {
	case '/':
		for c := l.peek(); c != '\n' && c != -1; c = l.peek() {
			l.skip()
		}
	case '*':
		l.skip()

		for {
			c := l.peek()
			if c == -1 {
				panic(report.Raise(l.span(), "unclosed block comment"))
			}

			l.skip()
			if c == '*' && l.peek() == '/' {
				l.skip()
				break
			}
		}
	default:
		panic(report.Raise(l.span(), "unexpected character: `/`"))
	}

	return nil
}

// lexPunct lexes a single punctuation character as the given token kind.
func (l *Lexer) lexPunct(kind int) *Token {
	l.mark()
	l.read()
	return l.makeToken(kind)
}

// lexTableEntry lexes one whitespace-delimited table entry.  A run of word
// characters is either the `endtable` keyword or a single-character symbol;
// any other character is a symbol on its own.
func (l *Lexer) lexTableEntry(c rune) *Token {
	l.mark()
	l.read()

	if !isIdentChar(c) {
		return l.makeToken(TOK_SYMBOL)
	}

	for c := l.peek(); isIdentChar(c); c = l.peek() {
		l.read()
	}

	tok := l.makeToken(TOK_SYMBOL)
	if kind, ok := keywordPatterns[tok.Value]; ok {
		tok.Kind = kind
	} else if len(tok.Value) > 1 {
		panic(report.Raise(tok.Span, "malformed table entry: `%s`", tok.Value))
	}

	return tok
}

// lexNumber lexes an unsigned number token.
func (l *Lexer) lexNumber() *Token {
	l.mark()
	l.read()

	for c := l.peek(); unicode.IsDigit(c); c = l.peek() {
		l.read()
	}

	return l.makeToken(TOK_NUMBER)
}

// lexIdentOrKeyword lexes an identifier or keyword token.
func (l *Lexer) lexIdentOrKeyword() *Token {
	l.mark()
	l.read()

	for c := l.peek(); isIdentChar(c); c = l.peek() {
		l.read()
	}

	tok := l.makeToken(TOK_IDENT)
	if kind, ok := keywordPatterns[tok.Value]; ok {
		tok.Kind = kind
	}

	return tok
}

// -----------------------------------------------------------------------------

// mark records the current position as the start of the token being lexed.
func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col
}

// peek returns the next character of input without consuming it, or -1 at EOF.
func (l *Lexer) peek() rune {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1
		}

		panic(err)
	}

	l.file.UnreadRune()
	return c
}

// read consumes the next character of input into the token buffer.
func (l *Lexer) read() {
	c, _, err := l.file.ReadRune()
	if err != nil {
		panic(err)
	}

	l.tokBuff.WriteRune(c)
	l.advance(c)
}

// skip consumes the next character of input without buffering it.
func (l *Lexer) skip() {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return
		}

		panic(err)
	}

	l.advance(c)
}

// advance updates the lexer's position over the given character.
func (l *Lexer) advance(c rune) {
	if c == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// makeToken produces a token of the given kind from the token buffer and the
// marked start position.
func (l *Lexer) makeToken(kind int) *Token {
	value := l.tokBuff.String()
	l.tokBuff.Reset()

	return &Token{Kind: kind, Value: value, Span: l.span()}
}

// span returns the text span from the marked start position to the current
// position.
func (l *Lexer) span() *report.TextSpan {
	return &report.TextSpan{
		StartLine: l.startLine,
		StartCol:  l.startCol,
		EndLine:   l.line,
		EndCol:    l.col,
	}
}

// eofSpan returns a zero-width span at the current position.
func (l *Lexer) eofSpan() *report.TextSpan {
	return &report.TextSpan{
		StartLine: l.line,
		StartCol:  l.col,
		EndLine:   l.line,
		EndCol:    l.col + 1,
	}
}

// -----------------------------------------------------------------------------

func isFirstIdentChar(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func isIdentChar(c rune) bool {
	return isFirstIdentChar(c) || unicode.IsDigit(c) || c == '$'
}
