package parser

import (
	"fmt"
	"strconv"

	"github.com/funvibe/hsfront/internal/ast"
	"github.com/funvibe/hsfront/internal/parsetree"
)

func (b *Builder) buildLiteral(n *parsetree.Node) ast.Literal {
	switch n.Rule {
	case parsetree.Integer:
		v, err := strconv.ParseInt(n.Text, 10, 64)
		if err != nil {
			panic(&UnexpectedRuleError{Context: "integer literal", Rule: n.Rule, Text: n.Text, Pos: n.Pos, Err: err})
		}
		return &ast.IntegerLiteral{Value: v}
	case parsetree.Decimal:
		v, err := strconv.ParseFloat(n.Text, 64)
		if err != nil {
			panic(&UnexpectedRuleError{Context: "decimal literal", Rule: n.Rule, Text: n.Text, Pos: n.Pos, Err: err})
		}
		return &ast.DecimalLiteral{Value: v}
	case parsetree.Char:
		r, err := decodeChar(n.Text)
		if err != nil {
			panic(&UnexpectedRuleError{Context: "char literal", Rule: n.Rule, Text: n.Text, Pos: n.Pos, Err: err})
		}
		return &ast.CharLiteral{Value: r}
	case parsetree.Bool:
		switch v := child("bool literal", n, 0); v.Rule {
		case parsetree.TrueLiteral:
			return &ast.BooleanLiteral{Value: true}
		case parsetree.FalseLiteral:
			return &ast.BooleanLiteral{Value: false}
		default:
			unexpectedRule("bool literal", v)
		}
	case parsetree.List:
		list := &ast.ListLiteral{Elements: make([]ast.Expression, 0, len(n.Children))}
		for _, e := range n.Children {
			list.Elements = append(list.Elements, b.buildExpression(e))
		}
		return list
	}
	unexpectedRule("literal", n)
	return nil
}

var charEscapes = map[byte]rune{
	'n':  '\n',
	't':  '\t',
	'\\': '\\',
	'\'': '\'',
	'0':  0,
}

// decodeChar decodes a quoted character literal such as 'a' or '\n'.
func decodeChar(text string) (rune, error) {
	if len(text) < 3 || text[0] != '\'' || text[len(text)-1] != '\'' {
		return 0, fmt.Errorf("malformed character literal")
	}
	body := text[1 : len(text)-1]
	if body[0] == '\\' {
		if len(body) != 2 {
			return 0, fmt.Errorf("malformed escape sequence")
		}
		r, ok := charEscapes[body[1]]
		if !ok {
			return 0, fmt.Errorf("unknown escape sequence \\%c", body[1])
		}
		return r, nil
	}
	runes := []rune(body)
	if len(runes) != 1 {
		return 0, fmt.Errorf("character literal holds %d characters", len(runes))
	}
	return runes[0], nil
}
