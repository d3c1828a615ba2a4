package lexer

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/hsfront/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = len(l.input)
		l.readPosition = len(l.input) + 1
		l.column++
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

// Tokenize lexes the whole input. The last token is always EOF.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	line, col, start := l.line, l.column, l.position
	emit := func(t token.TokenType) token.Token {
		lexeme := l.input[start:l.position]
		return token.Token{Type: t, Lexeme: lexeme, Literal: lexeme, Line: line, Column: col, Offset: start}
	}
	// two consumes the current char and the next one.
	two := func(t token.TokenType) token.Token {
		l.readChar()
		l.readChar()
		return emit(t)
	}
	one := func(t token.TokenType) token.Token {
		l.readChar()
		return emit(t)
	}

	if l.atEOF() {
		return token.Token{Type: token.EOF, Lexeme: "", Line: line, Column: col, Offset: len(l.input)}
	}

	switch l.ch {
	case '-':
		switch l.peekChar() {
		case '-':
			return l.readLineComment(line, col, start)
		case '>':
			return two(token.ARROW)
		}
		return one(token.MINUS)
	case '{':
		if l.peekChar() == '-' {
			return l.readBlockComment(line, col, start)
		}
		return one(token.ILLEGAL)
	case ':':
		if l.peekChar() == ':' {
			return two(token.DOUBLE_COLON)
		}
		return one(token.CONS)
	case '=':
		if l.peekChar() == '=' {
			return two(token.EQ)
		}
		return one(token.ASSIGN)
	case '|':
		if l.peekChar() == '|' {
			return two(token.OR)
		}
		return one(token.PIPE)
	case '&':
		if l.peekChar() == '&' {
			return two(token.AND)
		}
		return one(token.ILLEGAL)
	case '<':
		if l.peekChar() == '=' {
			return two(token.LTE)
		}
		return one(token.LT)
	case '>':
		if l.peekChar() == '=' {
			return two(token.GTE)
		}
		return one(token.GT)
	case '/':
		if l.peekChar() == '=' {
			return two(token.NOT_EQ)
		}
		return one(token.SLASH)
	case '+':
		if l.peekChar() == '+' {
			return two(token.CONCAT)
		}
		return one(token.PLUS)
	case '*':
		if l.peekChar() == '*' {
			return two(token.POWER)
		}
		return one(token.ASTERISK)
	case '!':
		if l.peekChar() == '!' {
			return two(token.INDEX)
		}
		return one(token.ILLEGAL)
	case '^':
		return one(token.CARET)
	case '$':
		return one(token.APPLY)
	case '.':
		return one(token.COMPOSE)
	case ',':
		return one(token.COMMA)
	case '(':
		return one(token.LPAREN)
	case ')':
		return one(token.RPAREN)
	case '[':
		return one(token.LBRACKET)
	case ']':
		return one(token.RBRACKET)
	case '\'':
		return l.readCharLiteral(line, col, start)
	}

	if isLetter(l.ch) {
		ident := l.readIdentifier()
		tok := emit(token.LookupIdent(ident))
		switch tok.Type {
		case token.TRUE:
			tok.Literal = true
		case token.FALSE:
			tok.Literal = false
		}
		return tok
	}
	if isDigit(l.ch) {
		return l.readNumber(line, col, start)
	}
	return one(token.ILLEGAL)
}

func (l *Lexer) readLineComment(line, col, start int) token.Token {
	for l.ch != '\n' && !l.atEOF() {
		l.readChar()
	}
	lexeme := l.input[start:l.position]
	return token.Token{Type: token.COMMENT, Lexeme: lexeme, Literal: lexeme, Line: line, Column: col, Offset: start}
}

// readBlockComment consumes a {- ... -} comment, honoring nesting.
func (l *Lexer) readBlockComment(line, col, start int) token.Token {
	depth := 0
	for !l.atEOF() {
		if l.ch == '{' && l.peekChar() == '-' {
			depth++
			l.readChar()
			l.readChar()
			continue
		}
		if l.ch == '-' && l.peekChar() == '}' {
			depth--
			l.readChar()
			l.readChar()
			if depth == 0 {
				lexeme := l.input[start:l.position]
				return token.Token{Type: token.COMMENT, Lexeme: lexeme, Literal: lexeme, Line: line, Column: col, Offset: start}
			}
			continue
		}
		l.readChar()
	}
	lexeme := l.input[start:l.position]
	return token.Token{Type: token.ILLEGAL, Lexeme: lexeme, Literal: "unterminated block comment", Line: line, Column: col, Offset: start}
}

func (l *Lexer) readCharLiteral(line, col, start int) token.Token {
	illegal := func(msg string) token.Token {
		return token.Token{Type: token.ILLEGAL, Lexeme: l.input[start:l.position], Literal: msg, Line: line, Column: col, Offset: start}
	}
	l.readChar() // opening quote
	if l.atEOF() || l.ch == '\n' || l.ch == '\'' {
		return illegal("malformed character literal")
	}
	value := l.ch
	if l.ch == '\\' {
		l.readChar()
		switch l.ch {
		case 'n':
			value = '\n'
		case 't':
			value = '\t'
		case '\\':
			value = '\\'
		case '\'':
			value = '\''
		case '0':
			value = 0
		default:
			return illegal("unknown escape sequence in character literal")
		}
	}
	l.readChar()
	if l.ch != '\'' {
		return illegal("unterminated character literal")
	}
	l.readChar()
	return token.Token{Type: token.CHAR, Lexeme: l.input[start:l.position], Literal: value, Line: line, Column: col, Offset: start}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '\'' {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readNumber(line, col, start int) token.Token {
	for isDigit(l.ch) {
		l.readChar()
	}
	tokType := token.INT
	if l.ch == '.' && isDigit(l.peekChar()) {
		tokType = token.FLOAT
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	lexeme := l.input[start:l.position]
	tok := token.Token{Type: tokType, Lexeme: lexeme, Line: line, Column: col, Offset: start}
	if tokType == token.INT {
		v, err := strconv.ParseInt(lexeme, 10, 64)
		if err != nil {
			tok.Type = token.ILLEGAL
			tok.Literal = "integer literal out of range"
			return tok
		}
		tok.Literal = v
	} else {
		v, _ := strconv.ParseFloat(lexeme, 64)
		tok.Literal = v
	}
	return tok
}

func isLetter(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}
