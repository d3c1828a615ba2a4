// Package parsetree defines the rule-tagged concrete syntax tree handed from
// the grammar to the AST builder.
package parsetree

import (
	"fmt"
	"strings"
)

type Rule int

const (
	Program Rule = iota
	EOI
	Comment

	ConstDeclaration
	TypeDeclaration
	ConstructorDecl
	Definition
	Args
	Guards
	Guard
	Otherwise

	// Types
	IntType
	FloatType
	CharType
	BoolType
	ListType
	FuncType
	CustomType
	Generic

	// Patterns
	Wildcard
	Constructor
	PrefixConstructor
	BinConstructor

	// Expressions
	Expression
	FuncPrefix
	Prefix
	Infix

	// Leaves shared by patterns and expressions
	IdentLower
	IdentUpper
	Literal
	Integer
	Decimal
	Char
	Bool
	TrueLiteral
	FalseLiteral
	List
)

var ruleNames = [...]string{
	Program:           "program",
	EOI:               "EOI",
	Comment:           "comment",
	ConstDeclaration:  "const_declaration",
	TypeDeclaration:   "type_declaration",
	ConstructorDecl:   "constructor_decl",
	Definition:        "definition",
	Args:              "args",
	Guards:            "guards",
	Guard:             "guard",
	Otherwise:         "otherwise",
	IntType:           "int_type",
	FloatType:         "float_type",
	CharType:          "char_type",
	BoolType:          "bool_type",
	ListType:          "list_type",
	FuncType:          "func_type",
	CustomType:        "custom_type",
	Generic:           "generic",
	Wildcard:          "wildcard",
	Constructor:       "constructor",
	PrefixConstructor: "prefix_constructor",
	BinConstructor:    "bin_constructor",
	Expression:        "expression",
	FuncPrefix:        "func_prefix",
	Prefix:            "prefix",
	Infix:             "infix",
	IdentLower:        "ident_lower",
	IdentUpper:        "ident_upper",
	Literal:           "literal",
	Integer:           "integer",
	Decimal:           "decimal",
	Char:              "char",
	Bool:              "bool",
	TrueLiteral:       "true_literal",
	FalseLiteral:      "false_literal",
	List:              "list",
}

func (r Rule) String() string {
	if r >= 0 && int(r) < len(ruleNames) && ruleNames[r] != "" {
		return ruleNames[r]
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

// Pos is a source position. Line and Column are 1-based.
type Pos struct {
	Line   int
	Column int
	Offset int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Node struct {
	Rule     Rule
	Text     string // Source text covered by the node
	Pos      Pos
	Children []*Node
}

// Child returns the i-th child, or nil when there is none.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Dump renders the tree one node per line, indented by depth.
func (n *Node) Dump() string {
	var sb strings.Builder
	n.dump(&sb, 0)
	return sb.String()
}

func (n *Node) dump(sb *strings.Builder, depth int) {
	fmt.Fprintf(sb, "%s%s %q\n", strings.Repeat("  ", depth), n.Rule, n.Text)
	for _, c := range n.Children {
		c.dump(sb, depth+1)
	}
}
