package ast

import (
	"github.com/funvibe/hsfront/internal/token"
)

// Statement is a top-level item of a Program.
type Statement interface {
	statementNode()
	GetToken() token.Token
}

// Program is the root node of every AST the builder produces.
type Program struct {
	File       string // Source file path
	Statements []Statement
}

// Declaration is a standalone type signature: name :: type.
// Constructors of a TypeDeclaration are Declarations too.
type Declaration struct {
	Token token.Token // The name token
	Name  string
	Type  TypeExpr
}

func (d *Declaration) statementNode() {}
func (d *Declaration) GetToken() token.Token {
	if d == nil {
		return token.Token{}
	}
	return d.Token
}

// Definition is one equation of a function or value. Several Definitions
// may share a Name; they stay separate statements until analysis.
type Definition struct {
	Token token.Token // The name token
	Name  string
	Args  []Pattern
	Body  Body
}

func (d *Definition) statementNode() {}
func (d *Definition) GetToken() token.Token {
	if d == nil {
		return token.Token{}
	}
	return d.Token
}

// TypeDeclaration is an algebraic data type: data Name = C1 .. | C2 ..
type TypeDeclaration struct {
	Token        token.Token // The 'data' token
	Name         string
	Constructors []*Declaration
}

func (td *TypeDeclaration) statementNode() {}
func (td *TypeDeclaration) GetToken() token.Token {
	if td == nil {
		return token.Token{}
	}
	return td.Token
}

// Comment carries source comments and the end-of-input marker.
type Comment struct {
	Token token.Token
	Text  string
}

func (c *Comment) statementNode()        {}
func (c *Comment) GetToken() token.Token { return c.Token }
