package ast

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Expression is a right-hand side value. Operators and calls share one
// shape, FuncCall, so consumers never special-case infix syntax.
type Expression interface {
	expressionNode()
	String() string
}

// Literal is a constant usable both as an expression and inside a pattern.
type Literal interface {
	Expression
	literalNode()
}

type Identifier struct {
	Name string
}

func (i *Identifier) expressionNode() {}
func (i *Identifier) String() string  { return i.Name }

// FuncCall is an application: one argument for prefix operators, two for
// infix operators, any number for juxtaposed calls such as f x y.
type FuncCall struct {
	Function string
	Args     []Expression
}

func (fc *FuncCall) expressionNode() {}

// String renders the call as an S-expression, e.g. (+ 1 (* 2 3)).
func (fc *FuncCall) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(fc.Function)
	for _, arg := range fc.Args {
		sb.WriteString(" ")
		sb.WriteString(arg.String())
	}
	sb.WriteString(")")
	return sb.String()
}

type IntegerLiteral struct {
	Value int64
}

func (il *IntegerLiteral) expressionNode() {}
func (il *IntegerLiteral) literalNode()    {}
func (il *IntegerLiteral) String() string  { return strconv.FormatInt(il.Value, 10) }

type DecimalLiteral struct {
	Value float64
}

func (dl *DecimalLiteral) expressionNode() {}
func (dl *DecimalLiteral) literalNode()    {}
func (dl *DecimalLiteral) String() string {
	s := strconv.FormatFloat(dl.Value, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

type BooleanLiteral struct {
	Value bool
}

func (b *BooleanLiteral) expressionNode() {}
func (b *BooleanLiteral) literalNode()    {}
func (b *BooleanLiteral) String() string {
	if b.Value {
		return "True"
	}
	return "False"
}

type CharLiteral struct {
	Value rune
}

func (cl *CharLiteral) expressionNode() {}
func (cl *CharLiteral) literalNode()    {}
func (cl *CharLiteral) String() string  { return strconv.QuoteRune(cl.Value) }

// ListLiteral holds full expressions, so elements may be calls or nested lists.
type ListLiteral struct {
	Elements []Expression
}

func (ll *ListLiteral) expressionNode() {}
func (ll *ListLiteral) literalNode()    {}
func (ll *ListLiteral) String() string {
	parts := make([]string, len(ll.Elements))
	for i, e := range ll.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Body is the right-hand side of a Definition.
type Body interface {
	bodyNode()
}

// ExpressionBody is an unconditional right-hand side.
type ExpressionBody struct {
	Expression Expression
}

func (eb *ExpressionBody) bodyNode() {}

// GuardedBody holds guards in source order; the first true condition wins.
type GuardedBody struct {
	Guards []*Guard
}

func (gb *GuardedBody) bodyNode() {}

// Guard is one conditional right-hand side. The otherwise guard arrives
// here already normalized to a True literal condition.
type Guard struct {
	Condition Expression
	Result    Expression
}

// IsOtherwise reports whether the guard always matches.
func (g *Guard) IsOtherwise() bool {
	b, ok := g.Condition.(*BooleanLiteral)
	return ok && b.Value
}

// IsOperatorName reports whether name is symbolic, like "+" or "!!".
func IsOperatorName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return r != utf8.RuneError && !unicode.IsLetter(r) && r != '_'
}
