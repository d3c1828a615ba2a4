package ast

import (
	"strings"
)

// --- Type expressions ---

// TypeExpr is a type as written in a signature.
type TypeExpr interface {
	typeNode()
	String() string
}

// PrimitiveType is one of the built-in scalar types.
type PrimitiveType int

const (
	Int PrimitiveType = iota
	Float
	Char
	Bool
)

func (pt PrimitiveType) typeNode() {}
func (pt PrimitiveType) String() string {
	switch pt {
	case Int:
		return "Int"
	case Float:
		return "Float"
	case Char:
		return "Char"
	case Bool:
		return "Bool"
	}
	return "?"
}

type ListType struct {
	Element TypeExpr
}

func (lt *ListType) typeNode()      {}
func (lt *ListType) String() string { return "[" + lt.Element.String() + "]" }

// FuncType lists parameter types followed by the return type, flattened
// into one sequence of at least two entries. Build it with NewFunc.
type FuncType struct {
	Types []TypeExpr
}

func (ft *FuncType) typeNode() {}
func (ft *FuncType) String() string {
	parts := make([]string, len(ft.Types))
	for i, t := range ft.Types {
		s := t.String()
		if _, nested := t.(*FuncType); nested {
			s = "(" + s + ")"
		}
		parts[i] = s
	}
	return strings.Join(parts, " -> ")
}

// Params returns the parameter types, everything but the last slot.
func (ft *FuncType) Params() []TypeExpr {
	return ft.Types[:len(ft.Types)-1]
}

// Return returns the result type.
func (ft *FuncType) Return() TypeExpr {
	return ft.Types[len(ft.Types)-1]
}

// NewFunc builds a function type, collapsing a single entry to itself.
func NewFunc(types ...TypeExpr) TypeExpr {
	if len(types) == 1 {
		return types[0]
	}
	return &FuncType{Types: types}
}

// CustomType names a user-declared type.
type CustomType struct {
	Name string
}

func (ct *CustomType) typeNode()      {}
func (ct *CustomType) String() string { return ct.Name }

// GenericType is an unbound type variable.
type GenericType struct {
	Name string
}

func (gt *GenericType) typeNode()      {}
func (gt *GenericType) String() string { return gt.Name }

// --- Patterns ---

// Pattern appears in argument position and inside constructor patterns.
type Pattern interface {
	patternNode()
	String() string
}

type IdentifierPattern struct {
	Name string
}

func (ip *IdentifierPattern) patternNode()   {}
func (ip *IdentifierPattern) String() string { return ip.Name }

type LiteralPattern struct {
	Value Literal
}

func (lp *LiteralPattern) patternNode()   {}
func (lp *LiteralPattern) String() string { return lp.Value.String() }

type WildcardPattern struct{}

func (wp *WildcardPattern) patternNode()   {}
func (wp *WildcardPattern) String() string { return "_" }

// ConstructorPattern covers prefix forms (Just x) and binary forms
// (x:xs), (a :Pair: b); both store the operands in Args.
type ConstructorPattern struct {
	Name string
	Args []Pattern
}

func (cp *ConstructorPattern) patternNode() {}
func (cp *ConstructorPattern) String() string {
	if len(cp.Args) == 0 {
		return cp.Name
	}
	if IsOperatorName(cp.Name) && len(cp.Args) == 2 {
		return "(" + cp.Args[0].String() + cp.Name + cp.Args[1].String() + ")"
	}
	parts := make([]string, 0, len(cp.Args)+1)
	parts = append(parts, cp.Name)
	for _, a := range cp.Args {
		parts = append(parts, a.String())
	}
	return "(" + strings.Join(parts, " ") + ")"
}
