package parser

import (
	"fmt"

	"github.com/funvibe/hsfront/internal/parsetree"
)

// UnexpectedRuleError means the parse tree and the builder disagree about
// the grammar. It is raised with panic, never returned: well-formed input
// cannot trigger it.
type UnexpectedRuleError struct {
	Context string // What the builder was building
	Rule    parsetree.Rule
	Text    string
	Pos     parsetree.Pos
	Err     error // Set when a leaf could not be decoded
}

func (e *UnexpectedRuleError) Error() string {
	msg := fmt.Sprintf("%s: unexpected rule %s at %s: %q", e.Context, e.Rule, e.Pos, e.Text)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UnexpectedRuleError) Unwrap() error {
	return e.Err
}

func unexpectedRule(context string, n *parsetree.Node) {
	panic(&UnexpectedRuleError{Context: context, Rule: n.Rule, Text: n.Text, Pos: n.Pos})
}

// child returns n's i-th child or aborts when the tree is too short.
func child(context string, n *parsetree.Node, i int) *parsetree.Node {
	c := n.Child(i)
	if c == nil {
		panic(&UnexpectedRuleError{
			Context: context,
			Rule:    n.Rule,
			Text:    n.Text,
			Pos:     n.Pos,
			Err:     fmt.Errorf("missing child %d", i),
		})
	}
	return c
}
