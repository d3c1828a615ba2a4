package grammar

import (
	"github.com/funvibe/hsfront/internal/parsetree"
	"github.com/funvibe/hsfront/internal/token"
)

var primitiveTypes = map[string]parsetree.Rule{
	"Int":   parsetree.IntType,
	"Float": parsetree.FloatType,
	"Char":  parsetree.CharType,
	"Bool":  parsetree.BoolType,
}

// parseType parses an arrow chain. The result is always a func_type node,
// even for a single atom; the builder collapses it.
func (p *Parser) parseType() *parsetree.Node {
	start := p.cur()
	children := []*parsetree.Node{p.parseTypeAtom()}
	for p.curIs(token.ARROW) {
		p.advance()
		children = append(children, p.parseTypeAtom())
	}
	return p.node(parsetree.FuncType, start, children...)
}

func (p *Parser) startsTypeAtom() bool {
	switch p.cur().Type {
	case token.IDENT_UPPER, token.IDENT_LOWER, token.LBRACKET, token.LPAREN:
		return true
	}
	return false
}

func (p *Parser) parseTypeAtom() *parsetree.Node {
	tok := p.cur()
	switch tok.Type {
	case token.IDENT_UPPER:
		p.advance()
		if rule, ok := primitiveTypes[tok.Lexeme]; ok {
			return p.leaf(rule, tok)
		}
		return p.leaf(parsetree.CustomType, tok)
	case token.IDENT_LOWER:
		p.advance()
		return p.leaf(parsetree.Generic, tok)
	case token.LBRACKET:
		p.advance()
		elem := p.parseType()
		p.expect(token.RBRACKET, "']'")
		return p.node(parsetree.ListType, tok, elem)
	case token.LPAREN:
		p.advance()
		inner := p.parseType()
		p.expect(token.RPAREN, "')'")
		return inner
	}
	p.unexpected("a type")
	return nil
}

// parsePattern parses one argument pattern.
func (p *Parser) parsePattern() *parsetree.Node {
	tok := p.cur()
	switch tok.Type {
	case token.IDENT_LOWER:
		p.advance()
		return p.leaf(parsetree.IdentLower, tok)
	case token.UNDERSCORE:
		p.advance()
		return p.leaf(parsetree.Wildcard, tok)
	case token.IDENT_UPPER:
		// A bare constructor takes no arguments outside parentheses.
		p.advance()
		ctor := p.node(parsetree.PrefixConstructor, tok, p.leaf(parsetree.IdentUpper, tok))
		return p.node(parsetree.Constructor, tok, ctor)
	case token.LPAREN:
		p.advance()
		pat := p.parseParenPattern()
		p.expect(token.RPAREN, "')'")
		return pat
	}
	if p.startsLiteral() {
		return p.parseLiteral()
	}
	p.unexpected("a pattern")
	return nil
}

// parseParenPattern parses the inside of a parenthesized pattern:
// a prefix constructor with arguments, or two patterns joined by ':'
// or ':Name:'. Chains nest to the right: (x:y:zs) is (x:(y:zs)).
func (p *Parser) parseParenPattern() *parsetree.Node {
	start := p.cur()
	var left *parsetree.Node
	if start.Type == token.IDENT_UPPER {
		p.advance()
		children := []*parsetree.Node{p.leaf(parsetree.IdentUpper, start)}
		for !p.curIs(token.RPAREN) && !p.curIs(token.CONS) && !p.curIs(token.EOF) {
			children = append(children, p.parsePattern())
		}
		left = p.node(parsetree.Constructor, start, p.node(parsetree.PrefixConstructor, start, children...))
	} else {
		left = p.parsePattern()
	}
	if !p.curIs(token.CONS) {
		return left
	}

	opTok := p.advance()
	op := p.leaf(parsetree.Infix, opTok)
	// ':Name:' is written without spaces; "x : Leaf : rest" is a cons chain.
	if name, next := p.cur(), p.peek(); name.Type == token.IDENT_UPPER && next.Type == token.CONS &&
		opTok.End() == name.Offset && name.End() == next.Offset {
		op = p.leaf(parsetree.IdentUpper, p.advance())
		p.advance()
	}
	right := p.parseParenPattern()
	bin := p.node(parsetree.BinConstructor, start, left, op, right)
	return p.node(parsetree.Constructor, start, bin)
}

func (p *Parser) startsLiteral() bool {
	switch p.cur().Type {
	case token.INT, token.FLOAT, token.CHAR, token.TRUE, token.FALSE, token.LBRACKET:
		return true
	}
	return false
}

func (p *Parser) startsAtom() bool {
	switch p.cur().Type {
	case token.IDENT_LOWER, token.IDENT_UPPER, token.LPAREN:
		return true
	}
	return p.startsLiteral()
}

func (p *Parser) parseLiteral() *parsetree.Node {
	tok := p.cur()
	var inner *parsetree.Node
	switch tok.Type {
	case token.INT:
		p.advance()
		inner = p.leaf(parsetree.Integer, tok)
	case token.FLOAT:
		p.advance()
		inner = p.leaf(parsetree.Decimal, tok)
	case token.CHAR:
		p.advance()
		inner = p.leaf(parsetree.Char, tok)
	case token.TRUE:
		p.advance()
		inner = p.node(parsetree.Bool, tok, p.leaf(parsetree.TrueLiteral, tok))
	case token.FALSE:
		p.advance()
		inner = p.node(parsetree.Bool, tok, p.leaf(parsetree.FalseLiteral, tok))
	case token.LBRACKET:
		p.advance()
		var elems []*parsetree.Node
		if !p.curIs(token.RBRACKET) {
			elems = append(elems, p.parseExpression())
			for p.curIs(token.COMMA) {
				p.advance()
				elems = append(elems, p.parseExpression())
			}
		}
		p.expect(token.RBRACKET, "',' or ']'")
		inner = p.node(parsetree.List, tok, elems...)
	default:
		p.unexpected("a literal")
	}
	return p.node(parsetree.Literal, tok, inner)
}

// parseExpression collects a flat operand/operator sequence; nesting is
// decided later by the precedence resolver.
func (p *Parser) parseExpression() *parsetree.Node {
	start := p.cur()
	var seq []*parsetree.Node
	for {
		for p.curIs(token.MINUS) {
			seq = append(seq, p.leaf(parsetree.Prefix, p.advance()))
		}
		seq = append(seq, p.parsePrimary())
		if !token.IsOperator(p.cur().Type) {
			break
		}
		seq = append(seq, p.leaf(parsetree.Infix, p.advance()))
	}
	return p.node(parsetree.Expression, start, seq...)
}

// parsePrimary parses a function call by juxtaposition or a single atom.
func (p *Parser) parsePrimary() *parsetree.Node {
	tok := p.cur()
	if tok.Type != token.IDENT_LOWER && tok.Type != token.IDENT_UPPER {
		return p.parseAtom()
	}
	name := p.parseAtom()
	if !p.startsAtom() {
		return name
	}
	children := []*parsetree.Node{name}
	for p.startsAtom() {
		children = append(children, p.parseAtom())
	}
	return p.node(parsetree.FuncPrefix, tok, children...)
}

func (p *Parser) parseAtom() *parsetree.Node {
	tok := p.cur()
	switch tok.Type {
	case token.IDENT_LOWER:
		p.advance()
		return p.leaf(parsetree.IdentLower, tok)
	case token.IDENT_UPPER:
		p.advance()
		return p.leaf(parsetree.IdentUpper, tok)
	case token.LPAREN:
		p.advance()
		inner := p.parseExpression()
		p.expect(token.RPAREN, "')'")
		return inner
	}
	if p.startsLiteral() {
		return p.parseLiteral()
	}
	p.unexpected("an expression")
	return nil
}
