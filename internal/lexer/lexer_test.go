package lexer

import (
	"testing"

	"github.com/funvibe/hsfront/internal/token"
)

func tokenTypes(input string) []token.TokenType {
	var types []token.TokenType
	for _, tok := range New(input).Tokenize() {
		types = append(types, tok.Type)
	}
	return types
}

func expectTypes(t *testing.T, input string, want ...token.TokenType) {
	t.Helper()
	got := tokenTypes(input)
	want = append(want, token.EOF)
	if len(got) != len(want) {
		t.Fatalf("%q: got %d tokens %v, want %d %v", input, len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d is %s, want %s (all: %v)", input, i, got[i], want[i], got)
		}
	}
}

func TestSignatureTokens(t *testing.T) {
	expectTypes(t, "f :: Int -> [a] -> Maybe",
		token.IDENT_LOWER, token.DOUBLE_COLON, token.IDENT_UPPER, token.ARROW,
		token.LBRACKET, token.IDENT_LOWER, token.RBRACKET, token.ARROW, token.IDENT_UPPER)
}

func TestOperators(t *testing.T) {
	expectTypes(t, "$ || && <= >= < > == /= : ++ + - * / ^ ** . !!",
		token.APPLY, token.OR, token.AND, token.LTE, token.GTE, token.LT, token.GT,
		token.EQ, token.NOT_EQ, token.CONS, token.CONCAT, token.PLUS, token.MINUS,
		token.ASTERISK, token.SLASH, token.CARET, token.POWER, token.COMPOSE, token.INDEX)
	for _, tok := range New("$ || !!").Tokenize() {
		if tok.Type != token.EOF && !token.IsOperator(tok.Type) {
			t.Errorf("%s is not reported as an operator", tok)
		}
	}
}

func TestPunctuation(t *testing.T) {
	expectTypes(t, "data T = A | B\nf (x:xs) [y, z] _ = x",
		token.DATA, token.IDENT_UPPER, token.ASSIGN, token.IDENT_UPPER, token.PIPE, token.IDENT_UPPER,
		token.IDENT_LOWER, token.LPAREN, token.IDENT_LOWER, token.CONS, token.IDENT_LOWER, token.RPAREN,
		token.LBRACKET, token.IDENT_LOWER, token.COMMA, token.IDENT_LOWER, token.RBRACKET,
		token.UNDERSCORE, token.ASSIGN, token.IDENT_LOWER)
}

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		want  token.TokenType
	}{
		{"x", token.IDENT_LOWER},
		{"x'", token.IDENT_LOWER},
		{"_tmp", token.IDENT_LOWER},
		{"_", token.UNDERSCORE},
		{"Just", token.IDENT_UPPER},
		{"otherwise", token.OTHERWISE},
		{"data", token.DATA},
		{"True", token.TRUE},
		{"Falsey", token.IDENT_UPPER},
		{"Über", token.IDENT_UPPER},
		{"Ωmega", token.IDENT_UPPER},
		{"ärger", token.IDENT_LOWER},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := New(tt.input).Tokenize()
			if toks[0].Type != tt.want || toks[0].Lexeme != tt.input {
				t.Fatalf("got %s, want %s(%q)", toks[0], tt.want, tt.input)
			}
		})
	}
}

func TestLiterals(t *testing.T) {
	toks := New(`42 3.25 'a' '\n' '\'' True False`).Tokenize()
	want := []struct {
		typ     token.TokenType
		literal interface{}
	}{
		{token.INT, int64(42)},
		{token.FLOAT, 3.25},
		{token.CHAR, 'a'},
		{token.CHAR, '\n'},
		{token.CHAR, '\''},
		{token.TRUE, true},
		{token.FALSE, false},
	}
	for i, w := range want {
		if toks[i].Type != w.typ || toks[i].Literal != w.literal {
			t.Errorf("token %d: got %s literal %#v, want %s literal %#v", i, toks[i], toks[i].Literal, w.typ, w.literal)
		}
	}
}

func TestIntegerFollowedByCompose(t *testing.T) {
	// A dot not followed by a digit is composition, not a decimal point.
	expectTypes(t, "1.f", token.INT, token.COMPOSE, token.IDENT_LOWER)
}

func TestComments(t *testing.T) {
	toks := New("-- line\n{- outer {- inner -} still -} x").Tokenize()
	if toks[0].Type != token.COMMENT || toks[0].Lexeme != "-- line" {
		t.Fatalf("line comment: got %s", toks[0])
	}
	if toks[1].Type != token.COMMENT || toks[1].Lexeme != "{- outer {- inner -} still -}" {
		t.Fatalf("block comment: got %s", toks[1])
	}
	if toks[2].Type != token.IDENT_LOWER {
		t.Fatalf("after comments: got %s", toks[2])
	}
}

func TestIllegal(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated block comment", "{- open"},
		{"two chars in quotes", "'ab'"},
		{"empty char", "''"},
		{"unknown escape", `'\q'`},
		{"single ampersand", "&"},
		{"single bang", "!"},
		{"integer overflow", "99999999999999999999"},
		{"brace", "{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := New(tt.input).Tokenize()
			if toks[0].Type != token.ILLEGAL {
				t.Fatalf("got %s, want ILLEGAL", toks[0])
			}
		})
	}
}

func TestPositions(t *testing.T) {
	toks := New("f x\n  = 1").Tokenize()
	want := []struct{ line, col, offset int }{
		{1, 1, 0}, // f
		{1, 3, 2}, // x
		{2, 3, 6}, // =
		{2, 5, 8}, // 1
	}
	for i, w := range want {
		tok := toks[i]
		if tok.Line != w.line || tok.Column != w.col || tok.Offset != w.offset {
			t.Errorf("token %s: got %d:%d@%d, want %d:%d@%d", tok, tok.Line, tok.Column, tok.Offset, w.line, w.col, w.offset)
		}
	}
	if end := toks[1].End(); end != 3 {
		t.Errorf("End() of x: got %d, want 3", end)
	}
}
