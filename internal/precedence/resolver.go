package precedence

import (
	"fmt"

	"github.com/funvibe/hsfront/internal/ast"
	"github.com/funvibe/hsfront/internal/parsetree"
)

// InvariantError reports a sequence the grammar should never have produced.
type InvariantError struct {
	Message string
	Node    *parsetree.Node
}

func (e *InvariantError) Error() string {
	if e.Node == nil {
		return "precedence: " + e.Message
	}
	return fmt.Sprintf("precedence: %s at %s: %q", e.Message, e.Node.Pos, e.Node.Text)
}

// PrimaryFunc maps a non-operator node of the sequence to an expression.
type PrimaryFunc func(*parsetree.Node) ast.Expression

type Resolver struct {
	table   *Table
	primary PrimaryFunc
}

func New(table *Table, primary PrimaryFunc) *Resolver {
	return &Resolver{table: table, primary: primary}
}

// Resolve nests seq, a flat run of primaries, infix and prefix nodes, into
// one expression. Prefix nodes become one-argument FuncCalls and infix
// nodes two-argument FuncCalls named after the operator.
//
// Malformed sequences panic with *InvariantError.
func (r *Resolver) Resolve(seq []*parsetree.Node) ast.Expression {
	if len(seq) == 0 {
		panic(&InvariantError{Message: "empty expression"})
	}
	s := &stream{seq: seq}
	expr := r.parse(s, 0)
	if s.pos != len(seq) {
		panic(&InvariantError{Message: "trailing operand", Node: seq[s.pos]})
	}
	return expr
}

type stream struct {
	seq []*parsetree.Node
	pos int
}

func (s *stream) done() bool { return s.pos >= len(s.seq) }

func (r *Resolver) parse(s *stream, minPrec int) ast.Expression {
	left := r.operand(s)
	for !s.done() {
		op := s.seq[s.pos]
		if op.Rule != parsetree.Infix {
			panic(&InvariantError{Message: "expected an operator", Node: op})
		}
		prec, assoc, ok := r.table.Infix(op.Text)
		if !ok {
			panic(&InvariantError{Message: "unknown operator", Node: op})
		}
		if prec <= minPrec {
			break
		}
		s.pos++
		next := prec
		if assoc == Right {
			next = prec - 1
		}
		right := r.parse(s, next)
		left = &ast.FuncCall{Function: op.Text, Args: []ast.Expression{left, right}}
	}
	return left
}

func (r *Resolver) operand(s *stream) ast.Expression {
	if s.done() {
		panic(&InvariantError{Message: "missing operand", Node: s.seq[len(s.seq)-1]})
	}
	n := s.seq[s.pos]
	s.pos++
	switch n.Rule {
	case parsetree.Prefix:
		prec, ok := r.table.Prefix(n.Text)
		if !ok {
			panic(&InvariantError{Message: "unknown prefix operator", Node: n})
		}
		operand := r.parse(s, prec)
		return &ast.FuncCall{Function: n.Text, Args: []ast.Expression{operand}}
	case parsetree.Infix:
		panic(&InvariantError{Message: "operator where an operand is expected", Node: n})
	}
	return r.primary(n)
}
