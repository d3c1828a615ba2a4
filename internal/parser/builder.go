// Package parser builds the AST from the grammar's parse tree.
package parser

import (
	"github.com/funvibe/hsfront/internal/ast"
	"github.com/funvibe/hsfront/internal/config"
	"github.com/funvibe/hsfront/internal/parsetree"
	"github.com/funvibe/hsfront/internal/precedence"
	"github.com/funvibe/hsfront/internal/token"
)

type Builder struct {
	table    *precedence.Table
	resolver *precedence.Resolver
}

type Option func(*Builder)

// WithTable selects the operator table used for every expression.
func WithTable(t *precedence.Table) Option {
	return func(b *Builder) {
		b.table = t
	}
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{table: precedence.Complete(precedence.ApplicationLowest)}
	for _, opt := range opts {
		opt(b)
	}
	b.resolver = precedence.New(b.table, b.buildPrimary)
	return b
}

// BuildProgram maps a program parse tree to the AST. It panics with
// *UnexpectedRuleError when the tree contains a rule it does not know.
func BuildProgram(tree *parsetree.Node, opts ...Option) *ast.Program {
	return NewBuilder(opts...).Build(tree)
}

func (b *Builder) Build(tree *parsetree.Node) *ast.Program {
	if tree.Rule != parsetree.Program {
		unexpectedRule("program", tree)
	}
	program := &ast.Program{Statements: make([]ast.Statement, 0, len(tree.Children))}
	for _, n := range tree.Children {
		program.Statements = append(program.Statements, b.buildStatement(n))
	}
	return program
}

func tokenOf(n *parsetree.Node) token.Token {
	return tokenAt(n.Rule, n.Text, n.Pos)
}

// tokenAt rebuilds the token a node starts with. Nodes spanning several
// tokens keep their whole text and are typed by their first token; rules
// with no single leading token are ILLEGAL.
func tokenAt(rule parsetree.Rule, text string, pos parsetree.Pos) token.Token {
	tok := token.Token{Type: token.ILLEGAL, Lexeme: text, Literal: text, Line: pos.Line, Column: pos.Column, Offset: pos.Offset}
	switch rule {
	case parsetree.IdentLower:
		tok.Type = token.IDENT_LOWER
	case parsetree.IdentUpper:
		tok.Type = token.IDENT_UPPER
	case parsetree.Comment:
		tok.Type = token.COMMENT
	case parsetree.EOI:
		tok.Type = token.EOF
	case parsetree.TypeDeclaration:
		tok.Type = token.DATA
	case parsetree.Integer:
		tok.Type = token.INT
	case parsetree.Decimal:
		tok.Type = token.FLOAT
	case parsetree.Char:
		tok.Type = token.CHAR
	case parsetree.Infix, parsetree.Prefix:
		if op := token.TokenType(text); token.IsOperator(op) {
			tok.Type = op
		}
	}
	return tok
}

func (b *Builder) buildStatement(n *parsetree.Node) ast.Statement {
	switch n.Rule {
	case parsetree.ConstDeclaration:
		return b.buildDeclaration(n)
	case parsetree.TypeDeclaration:
		return b.buildTypeDeclaration(n)
	case parsetree.Definition:
		return b.buildDefinition(n)
	case parsetree.Comment:
		return &ast.Comment{Token: tokenOf(n), Text: n.Text}
	case parsetree.EOI:
		return &ast.Comment{Token: tokenOf(n), Text: config.EndOfInputComment}
	}
	unexpectedRule("statement", n)
	return nil
}

func (b *Builder) buildDeclaration(n *parsetree.Node) *ast.Declaration {
	name := child("declaration", n, 0)
	return &ast.Declaration{
		Token: tokenOf(name),
		Name:  name.Text,
		Type:  b.buildType(child("declaration", n, 1)),
	}
}

func (b *Builder) buildTypeDeclaration(n *parsetree.Node) *ast.TypeDeclaration {
	name := child("type declaration", n, 0).Text
	decl := &ast.TypeDeclaration{Token: tokenOf(n), Name: name}
	datatype := &ast.CustomType{Name: name}
	for _, c := range n.Children[1:] {
		decl.Constructors = append(decl.Constructors, b.buildConstructorDecl(c, datatype))
	}
	return decl
}

// buildConstructorDecl types a constructor as a function from its fields
// to the declared type, or as the bare type when it has no fields.
func (b *Builder) buildConstructorDecl(n *parsetree.Node, datatype ast.TypeExpr) *ast.Declaration {
	if n.Rule != parsetree.ConstructorDecl {
		unexpectedRule("constructor", n)
	}
	name := child("constructor", n, 0)
	types := make([]ast.TypeExpr, 0, len(n.Children))
	for _, field := range n.Children[1:] {
		types = append(types, b.buildType(field))
	}
	types = append(types, datatype)
	return &ast.Declaration{Token: tokenOf(name), Name: name.Text, Type: ast.NewFunc(types...)}
}

func (b *Builder) buildDefinition(n *parsetree.Node) *ast.Definition {
	name := child("definition", n, 0)
	args := child("definition", n, 1)
	def := &ast.Definition{
		Token: tokenOf(name),
		Name:  name.Text,
		Args:  make([]ast.Pattern, 0, len(args.Children)),
		Body:  b.buildBody(child("definition", n, 2)),
	}
	for _, a := range args.Children {
		def.Args = append(def.Args, b.buildPattern(a))
	}
	return def
}

func (b *Builder) buildBody(n *parsetree.Node) ast.Body {
	switch n.Rule {
	case parsetree.Expression:
		return &ast.ExpressionBody{Expression: b.buildExpression(n)}
	case parsetree.Guards:
		body := &ast.GuardedBody{Guards: make([]*ast.Guard, 0, len(n.Children))}
		for _, g := range n.Children {
			body.Guards = append(body.Guards, b.buildGuard(g))
		}
		return body
	}
	unexpectedRule("body", n)
	return nil
}

func (b *Builder) buildGuard(n *parsetree.Node) *ast.Guard {
	if n.Rule != parsetree.Guard {
		unexpectedRule("guard", n)
	}
	cond := child("guard", n, 0)
	guard := &ast.Guard{Result: b.buildExpression(child("guard", n, 1))}
	switch cond.Rule {
	case parsetree.Otherwise:
		guard.Condition = &ast.BooleanLiteral{Value: true}
	case parsetree.Expression:
		guard.Condition = b.buildExpression(cond)
	default:
		unexpectedRule("guard condition", cond)
	}
	return guard
}
