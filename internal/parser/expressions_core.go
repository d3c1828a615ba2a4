package parser

import (
	"github.com/funvibe/hsfront/internal/ast"
	"github.com/funvibe/hsfront/internal/parsetree"
)

// buildExpression hands the flat operand/operator run to the resolver.
func (b *Builder) buildExpression(n *parsetree.Node) ast.Expression {
	if n.Rule != parsetree.Expression {
		unexpectedRule("expression", n)
	}
	return b.resolver.Resolve(n.Children)
}

// buildPrimary recognizes juxtaposed calls before falling back to atoms.
func (b *Builder) buildPrimary(n *parsetree.Node) ast.Expression {
	if n.Rule != parsetree.FuncPrefix {
		return b.buildAtom(n)
	}
	call := &ast.FuncCall{
		Function: child("function call", n, 0).Text,
		Args:     make([]ast.Expression, 0, len(n.Children)-1),
	}
	for _, a := range n.Children[1:] {
		call.Args = append(call.Args, b.buildAtom(a))
	}
	return call
}

func (b *Builder) buildAtom(n *parsetree.Node) ast.Expression {
	switch n.Rule {
	case parsetree.Expression:
		return b.buildExpression(n)
	case parsetree.Literal:
		return b.buildLiteral(child("literal", n, 0))
	case parsetree.IdentLower, parsetree.IdentUpper:
		return &ast.Identifier{Name: n.Text}
	}
	unexpectedRule("atom", n)
	return nil
}
