package syntax

import (
	"strings"
	"testing"
)

func lexAll(t *testing.T, src string, tableMode bool) []*Token {
	t.Helper()

	l := NewLexer(strings.NewReader(src))
	if tableMode {
		l.EnableTableMode()
	}

	var toks []*Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == TOK_EOF {
			return toks
		}
	}
}

func TestLexDeclaration(t *testing.T) {
	toks := lexAll(t, "primitive mux (q, a);", false)

	wantKinds := []int{TOK_PRIMITIVE, TOK_IDENT, TOK_LPAREN, TOK_IDENT,
		TOK_COMMA, TOK_IDENT, TOK_RPAREN, TOK_SEMICOLON, TOK_EOF}
	if len(toks) != len(wantKinds) {
		t.Fatalf("expected %d tokens, got %d", len(wantKinds), len(toks))
	}
	for i, tok := range toks {
		if tok.Kind != wantKinds[i] {
			t.Errorf("token %d: expected kind %d, got %d (%q)", i, wantKinds[i], tok.Kind, tok.Value)
		}
	}

	if toks[1].Value != "mux" {
		t.Errorf("expected mux, got %q", toks[1].Value)
	}
}

func TestLexTableMode(t *testing.T) {
	toks := lexAll(t, "0 1 x ? b : 1 ;\nendtable", true)

	wantKinds := []int{TOK_SYMBOL, TOK_SYMBOL, TOK_SYMBOL, TOK_SYMBOL, TOK_SYMBOL,
		TOK_COLON, TOK_SYMBOL, TOK_SEMICOLON, TOK_ENDTABLE, TOK_EOF}
	if len(toks) != len(wantKinds) {
		t.Fatalf("expected %d tokens, got %d", len(wantKinds), len(toks))
	}
	for i, tok := range toks {
		if tok.Kind != wantKinds[i] {
			t.Errorf("token %d: expected kind %d, got %d (%q)", i, wantKinds[i], tok.Kind, tok.Value)
		}
	}
}

func TestLexMalformedTableEntry(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a raised error for a run-together table entry")
		}
	}()

	lexAll(t, "01 : 1 ;", true)
}

func TestLexComments(t *testing.T) {
	toks := lexAll(t, "input // trailing\n/* block\ncomment */ a;", false)

	wantKinds := []int{TOK_INPUT, TOK_IDENT, TOK_SEMICOLON, TOK_EOF}
	if len(toks) != len(wantKinds) {
		t.Fatalf("expected %d tokens, got %d", len(wantKinds), len(toks))
	}
	for i, tok := range toks {
		if tok.Kind != wantKinds[i] {
			t.Errorf("token %d: expected kind %d, got %d (%q)", i, wantKinds[i], tok.Kind, tok.Value)
		}
	}
}

func TestLexSpans(t *testing.T) {
	toks := lexAll(t, "output q;", false)

	q := toks[1]
	if q.Span.StartLine != 0 || q.Span.StartCol != 7 || q.Span.EndCol != 8 {
		t.Errorf("unexpected span for q: %+v", q.Span)
	}
}
