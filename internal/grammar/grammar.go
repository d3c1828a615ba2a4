// Package grammar turns source text into a rule-tagged parse tree.
//
// Layout is column based: a token in column 1 starts a new top-level
// statement and everything indented continues the current one. Comments
// starting in column 1 become comment statements; all other comments are
// skipped.
package grammar

import (
	"fmt"

	"github.com/funvibe/hsfront/internal/lexer"
	"github.com/funvibe/hsfront/internal/parsetree"
	"github.com/funvibe/hsfront/internal/token"
)

// Parse lexes and parses a whole source unit.
func Parse(src string) (*parsetree.Node, error) {
	return ParseTokens(src, lexer.New(src).Tokenize())
}

// ParseTokens parses an already lexed unit. tokens must end with EOF.
func ParseTokens(src string, tokens []token.Token) (tree *parsetree.Node, err error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != token.EOF {
		return nil, &SyntaxError{Message: "token stream is not terminated", Pos: parsetree.Pos{Line: 1, Column: 1}}
	}
	p := &Parser{src: src, tokens: tokens}
	defer func() {
		if r := recover(); r != nil {
			se, ok := r.(*SyntaxError)
			if !ok {
				panic(r)
			}
			tree, err = nil, se
		}
	}()
	return p.parseProgram(), nil
}

type Parser struct {
	src       string
	tokens    []token.Token
	pos       int
	stmtStart int // index of the first token of the current statement
	lastEnd   int // byte offset after the last consumed token
}

func (p *Parser) fail(tok token.Token, format string, args ...interface{}) {
	panic(&SyntaxError{
		Message: fmt.Sprintf(format, args...),
		Pos:     posOf(tok),
	})
}

func posOf(tok token.Token) parsetree.Pos {
	return parsetree.Pos{Line: tok.Line, Column: tok.Column, Offset: tok.Offset}
}

// cur returns the current token. A token in column 1 past the statement
// start is reported as EOF so that every rule stops at the statement end.
func (p *Parser) cur() token.Token {
	return p.at(p.pos)
}

func (p *Parser) at(i int) token.Token {
	tok := p.tokens[i]
	if tok.Type != token.EOF && i > p.stmtStart && tok.Column == 1 {
		return token.Token{Type: token.EOF, Line: tok.Line, Column: tok.Column, Offset: tok.Offset}
	}
	if tok.Type == token.ILLEGAL {
		msg, _ := tok.Literal.(string)
		if msg == "" || msg == tok.Lexeme {
			msg = "unexpected character"
		}
		p.fail(tok, "%s %q", msg, tok.Lexeme)
	}
	return tok
}

// peek returns the token after the current one.
func (p *Parser) peek() token.Token {
	if p.tokens[p.pos].Type == token.EOF {
		return p.tokens[p.pos]
	}
	return p.at(p.skipComments(p.pos + 1))
}

func (p *Parser) skipComments(i int) int {
	for i < len(p.tokens)-1 && p.tokens[i].Type == token.COMMENT && p.tokens[i].Column != 1 {
		i++
	}
	return i
}

func (p *Parser) curIs(t token.TokenType) bool {
	return p.cur().Type == t
}

func (p *Parser) advance() token.Token {
	tok := p.cur()
	if tok.Type == token.EOF {
		return tok
	}
	p.lastEnd = tok.End()
	p.pos = p.skipComments(p.pos + 1)
	return tok
}

func (p *Parser) expect(t token.TokenType, what string) token.Token {
	if !p.curIs(t) {
		p.unexpected(what)
	}
	return p.advance()
}

func (p *Parser) unexpected(what string) {
	tok := p.cur()
	if tok.Type == token.EOF {
		p.fail(tok, "expected %s, found end of statement", what)
	}
	p.fail(tok, "expected %s, found %q", what, tok.Lexeme)
}

// leaf wraps a single token in a node.
func (p *Parser) leaf(rule parsetree.Rule, tok token.Token) *parsetree.Node {
	return &parsetree.Node{Rule: rule, Text: tok.Lexeme, Pos: posOf(tok)}
}

// node builds an interior node spanning from start to the last consumed token.
func (p *Parser) node(rule parsetree.Rule, start token.Token, children ...*parsetree.Node) *parsetree.Node {
	end := p.lastEnd
	if end < start.Offset {
		end = start.Offset
	}
	return &parsetree.Node{Rule: rule, Text: p.src[start.Offset:end], Pos: posOf(start), Children: children}
}

func (p *Parser) parseProgram() *parsetree.Node {
	root := &parsetree.Node{Rule: parsetree.Program, Text: p.src, Pos: parsetree.Pos{Line: 1, Column: 1}}
	for p.tokens[p.pos].Type != token.EOF {
		p.stmtStart = p.pos
		root.Children = append(root.Children, p.parseStatement())
		if !p.curIs(token.EOF) {
			p.fail(p.cur(), "unexpected %q after statement", p.cur().Lexeme)
		}
	}
	root.Children = append(root.Children, p.leaf(parsetree.EOI, p.tokens[p.pos]))
	return root
}

func (p *Parser) parseStatement() *parsetree.Node {
	tok := p.cur()
	switch tok.Type {
	case token.COMMENT:
		p.advance()
		return p.leaf(parsetree.Comment, tok)
	case token.DATA:
		return p.parseTypeDeclaration()
	case token.IDENT_LOWER:
		if p.peek().Type == token.DOUBLE_COLON {
			return p.parseConstDeclaration()
		}
		return p.parseDefinition()
	}
	p.unexpected("a declaration, definition or comment")
	return nil
}

// name :: type
func (p *Parser) parseConstDeclaration() *parsetree.Node {
	start := p.cur()
	name := p.leaf(parsetree.IdentLower, p.advance())
	p.expect(token.DOUBLE_COLON, "'::'")
	ty := p.parseType()
	return p.node(parsetree.ConstDeclaration, start, name, ty)
}

// data Name = Ctor field* | ...
func (p *Parser) parseTypeDeclaration() *parsetree.Node {
	start := p.advance()
	name := p.leaf(parsetree.IdentUpper, p.expect(token.IDENT_UPPER, "a type name"))
	p.expect(token.ASSIGN, "'='")
	children := []*parsetree.Node{name, p.parseConstructorDecl()}
	for p.curIs(token.PIPE) {
		p.advance()
		children = append(children, p.parseConstructorDecl())
	}
	return p.node(parsetree.TypeDeclaration, start, children...)
}

func (p *Parser) parseConstructorDecl() *parsetree.Node {
	start := p.cur()
	children := []*parsetree.Node{p.leaf(parsetree.IdentUpper, p.expect(token.IDENT_UPPER, "a constructor name"))}
	for p.startsTypeAtom() {
		children = append(children, p.parseTypeAtom())
	}
	return p.node(parsetree.ConstructorDecl, start, children...)
}

// name pattern* = expression
// name pattern* | guard = expression ...
func (p *Parser) parseDefinition() *parsetree.Node {
	start := p.cur()
	name := p.leaf(parsetree.IdentLower, p.advance())

	argsStart := p.cur()
	var args []*parsetree.Node
	for !p.curIs(token.ASSIGN) && !p.curIs(token.PIPE) {
		args = append(args, p.parsePattern())
	}
	argsNode := p.node(parsetree.Args, argsStart, args...)
	if len(args) == 0 {
		argsNode.Text = ""
	}

	var body *parsetree.Node
	if p.curIs(token.PIPE) {
		body = p.parseGuards()
	} else {
		p.expect(token.ASSIGN, "'=' or '|'")
		body = p.parseExpression()
	}
	return p.node(parsetree.Definition, start, name, argsNode, body)
}

func (p *Parser) parseGuards() *parsetree.Node {
	start := p.cur()
	var guards []*parsetree.Node
	for p.curIs(token.PIPE) {
		guardStart := p.advance()
		var cond *parsetree.Node
		if p.curIs(token.OTHERWISE) {
			cond = p.leaf(parsetree.Otherwise, p.advance())
		} else {
			cond = p.parseExpression()
		}
		p.expect(token.ASSIGN, "'='")
		result := p.parseExpression()
		guards = append(guards, p.node(parsetree.Guard, guardStart, cond, result))
	}
	return p.node(parsetree.Guards, start, guards...)
}
