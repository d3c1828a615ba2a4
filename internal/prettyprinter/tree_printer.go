package prettyprinter

import (
	"fmt"
	"io"
	"strings"

	"github.com/funvibe/hsfront/internal/ast"
	"github.com/funvibe/hsfront/internal/parsetree"
)

// TreePrinter writes an indented outline of the AST, one node per line.
// Expressions are shown as S-expressions so operator nesting is visible.
type TreePrinter struct {
	out   io.Writer
	style Style
	depth int
}

func NewTreePrinter(out io.Writer, style Style) *TreePrinter {
	return &TreePrinter{out: out, style: style}
}

func (tp *TreePrinter) line(format string, args ...interface{}) {
	fmt.Fprintf(tp.out, "%s%s\n", strings.Repeat("  ", tp.depth), fmt.Sprintf(format, args...))
}

func (tp *TreePrinter) nested(f func()) {
	tp.depth++
	f()
	tp.depth--
}

func (tp *TreePrinter) PrintProgram(prog *ast.Program) {
	tp.line("%s %s", tp.style.Keyword("Program"), prog.File)
	tp.nested(func() {
		for _, stmt := range prog.Statements {
			tp.printStatement(stmt)
		}
	})
}

func (tp *TreePrinter) printStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Declaration:
		tp.line("%s %s :: %s", tp.style.Keyword("Declaration"), tp.style.Name(s.Name), tp.style.Type(s.Type.String()))
	case *ast.TypeDeclaration:
		tp.line("%s %s", tp.style.Keyword("TypeDeclaration"), tp.style.Name(s.Name))
		tp.nested(func() {
			for _, c := range s.Constructors {
				tp.line("%s :: %s", tp.style.Name(c.Name), tp.style.Type(c.Type.String()))
			}
		})
	case *ast.Definition:
		tp.line("%s %s", tp.style.Keyword("Definition"), tp.style.Name(s.Name))
		tp.nested(func() {
			for _, a := range s.Args {
				tp.line("arg %s", a)
			}
			tp.printBody(s.Body)
		})
	case *ast.Comment:
		tp.line("%s %q", tp.style.Keyword("Comment"), s.Text)
	}
}

func (tp *TreePrinter) printBody(body ast.Body) {
	switch b := body.(type) {
	case *ast.ExpressionBody:
		tp.line("= %s", b.Expression)
	case *ast.GuardedBody:
		for _, g := range b.Guards {
			tp.line("| %s = %s", g.Condition, g.Result)
		}
	}
}

// PrintParseTree writes the raw parse tree with rule names and positions.
func PrintParseTree(out io.Writer, n *parsetree.Node, style Style) {
	var walk func(n *parsetree.Node, depth int)
	walk = func(n *parsetree.Node, depth int) {
		indent := strings.Repeat("  ", depth)
		if len(n.Children) == 0 {
			fmt.Fprintf(out, "%s%s %s %q\n", indent, style.Keyword(n.Rule.String()), n.Pos, n.Text)
			return
		}
		fmt.Fprintf(out, "%s%s %s\n", indent, style.Keyword(n.Rule.String()), n.Pos)
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(n, 0)
}
