package token

import (
	"fmt"
	"sort"
	"unicode"
	"unicode/utf8"
)

type TokenType string

type Token struct {
	Type    TokenType
	Lexeme  string      // Raw source text of the token
	Literal interface{} // Decoded value: int64, float64, rune, bool or string
	Line    int
	Column  int
	Offset  int // Byte offset of the first character
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at %d:%d", t.Type, t.Lexeme, t.Line, t.Column)
}

// End returns the byte offset just past the token.
func (t Token) End() int {
	return t.Offset + len(t.Lexeme)
}

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"
	COMMENT TokenType = "COMMENT"

	IDENT_LOWER TokenType = "IDENT_LOWER"
	IDENT_UPPER TokenType = "IDENT_UPPER"
	UNDERSCORE  TokenType = "_"

	INT   TokenType = "INT"
	FLOAT TokenType = "FLOAT"
	CHAR  TokenType = "CHAR"

	// Keywords
	DATA      TokenType = "DATA"
	OTHERWISE TokenType = "OTHERWISE"
	TRUE      TokenType = "TRUE"
	FALSE     TokenType = "FALSE"

	// Punctuation
	DOUBLE_COLON TokenType = "::"
	ARROW        TokenType = "->"
	ASSIGN       TokenType = "="
	PIPE         TokenType = "|"
	COMMA        TokenType = ","
	LPAREN       TokenType = "("
	RPAREN       TokenType = ")"
	LBRACKET     TokenType = "["
	RBRACKET     TokenType = "]"

	// Operators
	APPLY    TokenType = "$"
	OR       TokenType = "||"
	AND      TokenType = "&&"
	LTE      TokenType = "<="
	GTE      TokenType = ">="
	LT       TokenType = "<"
	GT       TokenType = ">"
	EQ       TokenType = "=="
	NOT_EQ   TokenType = "/="
	CONS     TokenType = ":"
	CONCAT   TokenType = "++"
	PLUS     TokenType = "+"
	MINUS    TokenType = "-"
	ASTERISK TokenType = "*"
	SLASH    TokenType = "/"
	CARET    TokenType = "^"
	POWER    TokenType = "**"
	COMPOSE  TokenType = "."
	INDEX    TokenType = "!!"
)

var keywords = map[string]TokenType{
	"data":      DATA,
	"otherwise": OTHERWISE,
	"True":      TRUE,
	"False":     FALSE,
}

// LookupIdent classifies an identifier as keyword, boolean or plain identifier.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	if ident == "_" {
		return UNDERSCORE
	}
	if r, _ := utf8.DecodeRuneInString(ident); unicode.IsUpper(r) {
		return IDENT_UPPER
	}
	return IDENT_LOWER
}

var operators = map[TokenType]bool{
	APPLY: true, OR: true, AND: true,
	LTE: true, GTE: true, LT: true, GT: true, EQ: true, NOT_EQ: true,
	CONS: true, CONCAT: true, PLUS: true, MINUS: true,
	ASTERISK: true, SLASH: true, CARET: true, POWER: true,
	COMPOSE: true, INDEX: true,
}

// IsOperator reports whether t can appear between two operands of an expression.
func IsOperator(t TokenType) bool {
	return operators[t]
}

// Operators returns the lexeme of every operator token, sorted.
func Operators() []string {
	ops := make([]string, 0, len(operators))
	for t := range operators {
		ops = append(ops, string(t))
	}
	sort.Strings(ops)
	return ops
}
