package parser

import (
	"github.com/funvibe/hsfront/internal/ast"
	"github.com/funvibe/hsfront/internal/parsetree"
)

// buildType maps a type node. Casing is trusted: the grammar already
// routed uppercase names to custom_type and lowercase ones to generic.
func (b *Builder) buildType(n *parsetree.Node) ast.TypeExpr {
	switch n.Rule {
	case parsetree.IntType:
		return ast.Int
	case parsetree.FloatType:
		return ast.Float
	case parsetree.CharType:
		return ast.Char
	case parsetree.BoolType:
		return ast.Bool
	case parsetree.ListType:
		return &ast.ListType{Element: b.buildType(child("list type", n, 0))}
	case parsetree.FuncType:
		types := make([]ast.TypeExpr, 0, len(n.Children))
		for _, c := range n.Children {
			types = append(types, b.buildType(c))
		}
		if len(types) == 0 {
			unexpectedRule("function type", n)
		}
		return ast.NewFunc(types...)
	case parsetree.CustomType:
		return &ast.CustomType{Name: n.Text}
	case parsetree.Generic:
		return &ast.GenericType{Name: n.Text}
	}
	unexpectedRule("type", n)
	return nil
}

func (b *Builder) buildPattern(n *parsetree.Node) ast.Pattern {
	switch n.Rule {
	case parsetree.IdentLower:
		return &ast.IdentifierPattern{Name: n.Text}
	case parsetree.Literal:
		return &ast.LiteralPattern{Value: b.buildLiteral(child("literal pattern", n, 0))}
	case parsetree.Constructor:
		return b.buildConstructorPattern(child("constructor pattern", n, 0))
	case parsetree.Wildcard:
		return &ast.WildcardPattern{}
	}
	unexpectedRule("pattern", n)
	return nil
}

func (b *Builder) buildConstructorPattern(n *parsetree.Node) ast.Pattern {
	switch n.Rule {
	case parsetree.PrefixConstructor:
		pat := &ast.ConstructorPattern{
			Name: child("constructor pattern", n, 0).Text,
			Args: make([]ast.Pattern, 0, len(n.Children)-1),
		}
		for _, a := range n.Children[1:] {
			pat.Args = append(pat.Args, b.buildPattern(a))
		}
		return pat
	case parsetree.BinConstructor:
		first := child("binary constructor pattern", n, 0)
		op := child("binary constructor pattern", n, 1)
		last := child("binary constructor pattern", n, 2)
		return &ast.ConstructorPattern{
			Name: op.Text,
			Args: []ast.Pattern{b.buildPattern(first), b.buildPattern(last)},
		}
	}
	unexpectedRule("constructor pattern", n)
	return nil
}
