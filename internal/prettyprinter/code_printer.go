package prettyprinter

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/funvibe/hsfront/internal/ast"
	"github.com/funvibe/hsfront/internal/config"
	"github.com/funvibe/hsfront/internal/precedence"
)

// --- Code Printer (Output looks like source code) ---

// unknownPrec is used for operators missing from the table, so that they
// print as if they bound tightest.
const unknownPrec = 1 << 20

// CodePrinter renders a Program back to source. Parentheses are added only
// where the operator table would otherwise nest the expression differently.
type CodePrinter struct {
	buf   bytes.Buffer
	table *precedence.Table
}

func NewCodePrinter(table *precedence.Table) *CodePrinter {
	if table == nil {
		table = precedence.Complete(precedence.ApplicationLowest)
	}
	return &CodePrinter{table: table}
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) writeln() {
	p.buf.WriteByte('\n')
}

// PrintProgram writes every statement on its own line. The end-of-input
// marker is not source text and is skipped.
func (p *CodePrinter) PrintProgram(prog *ast.Program) {
	for _, stmt := range prog.Statements {
		if c, ok := stmt.(*ast.Comment); ok && c.Text == config.EndOfInputComment {
			continue
		}
		p.PrintStatement(stmt)
		p.writeln()
	}
}

func (p *CodePrinter) PrintStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Declaration:
		p.write(s.Name + " :: " + s.Type.String())
	case *ast.TypeDeclaration:
		p.printTypeDeclaration(s)
	case *ast.Definition:
		p.printDefinition(s)
	case *ast.Comment:
		p.write(s.Text)
	}
}

func (p *CodePrinter) printTypeDeclaration(td *ast.TypeDeclaration) {
	p.write(config.DataKeyword + " " + td.Name + " =")
	for i, c := range td.Constructors {
		if i > 0 {
			p.write(" |")
		}
		p.write(" " + c.Name)
		ft, ok := c.Type.(*ast.FuncType)
		if !ok {
			continue
		}
		for _, field := range ft.Params() {
			s := field.String()
			if _, nested := field.(*ast.FuncType); nested {
				s = "(" + s + ")"
			}
			p.write(" " + s)
		}
	}
}

func (p *CodePrinter) printDefinition(def *ast.Definition) {
	p.write(def.Name)
	for _, arg := range def.Args {
		p.write(" ")
		p.printPattern(arg)
	}
	switch body := def.Body.(type) {
	case *ast.ExpressionBody:
		p.write(" = ")
		p.PrintExpression(body.Expression)
	case *ast.GuardedBody:
		for _, g := range body.Guards {
			p.writeln()
			p.write("  | ")
			if g.IsOtherwise() {
				p.write(config.OtherwiseKeyword)
			} else {
				p.PrintExpression(g.Condition)
			}
			p.write(" = ")
			p.PrintExpression(g.Result)
		}
	}
}

func (p *CodePrinter) printPattern(pat ast.Pattern) {
	switch pt := pat.(type) {
	case *ast.LiteralPattern:
		p.printExpr(pt.Value, 0, false)
	case *ast.ConstructorPattern:
		if len(pt.Args) == 0 {
			p.write(pt.Name)
			return
		}
		p.write("(")
		if ast.IsOperatorName(pt.Name) && len(pt.Args) == 2 {
			p.printPattern(pt.Args[0])
			p.write(pt.Name)
			p.printPattern(pt.Args[1])
		} else {
			p.write(pt.Name)
			for _, a := range pt.Args {
				p.write(" ")
				p.printPattern(a)
			}
		}
		p.write(")")
	default:
		p.write(pat.String())
	}
}

// PrintExpression writes expr in infix form.
func (p *CodePrinter) PrintExpression(expr ast.Expression) {
	p.printExpr(expr, 0, false)
}

func (p *CodePrinter) infixPrec(op string) (int, precedence.Assoc) {
	if prec, assoc, ok := p.table.Infix(op); ok {
		return prec, assoc
	}
	return unknownPrec, precedence.Left
}

func (p *CodePrinter) prefixPrec(op string) int {
	if prec, ok := p.table.Prefix(op); ok {
		return prec
	}
	return unknownPrec
}

// printExpr prints an expression, adding parentheses only if needed
func (p *CodePrinter) printExpr(expr ast.Expression, parentPrec int, isRight bool) {
	switch e := expr.(type) {
	case *ast.FuncCall:
		if !ast.IsOperatorName(e.Function) {
			p.printCall(e)
			return
		}
		switch len(e.Args) {
		case 1:
			prec := p.prefixPrec(e.Function)
			needParens := prec < parentPrec
			if needParens {
				p.write("(")
			}
			p.write(e.Function)
			if inner, ok := e.Args[0].(*ast.FuncCall); ok && len(inner.Args) == 1 && ast.IsOperatorName(inner.Function) {
				// A prefix operand is always accepted bare. The space keeps
				// "- -x" from reading as a line comment.
				p.write(" ")
				p.printExpr(inner, 0, false)
			} else {
				// The operand of a prefix operator stops at its own tier.
				p.printExpr(e.Args[0], prec+1, false)
			}
			if needParens {
				p.write(")")
			}
		case 2:
			prec, assoc := p.infixPrec(e.Function)
			needParens := prec < parentPrec
			// For same precedence, check associativity
			if prec == parentPrec {
				needParens = isRight != (assoc == precedence.Right)
			}
			if needParens {
				p.write("(")
			}
			p.printExpr(e.Args[0], prec, false)
			p.write(" " + e.Function + " ")
			p.printExpr(e.Args[1], prec, true)
			if needParens {
				p.write(")")
			}
		default:
			p.printCall(e)
		}
	case *ast.ListLiteral:
		p.write("[")
		for i, el := range e.Elements {
			if i > 0 {
				p.write(", ")
			}
			p.printExpr(el, 0, false)
		}
		p.write("]")
	case *ast.CharLiteral:
		p.write(quoteChar(e.Value))
	case *ast.DecimalLiteral:
		s := strconv.FormatFloat(e.Value, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		p.write(s)
	default:
		p.write(expr.String())
	}
}

// printCall prints a juxtaposed call. Arguments that are not atoms get
// parentheses; operator names used as callees are wrapped too.
func (p *CodePrinter) printCall(call *ast.FuncCall) {
	if ast.IsOperatorName(call.Function) {
		p.write("(" + call.Function + ")")
	} else {
		p.write(call.Function)
	}
	for _, arg := range call.Args {
		p.write(" ")
		if _, compound := arg.(*ast.FuncCall); compound {
			p.write("(")
			p.printExpr(arg, 0, false)
			p.write(")")
			continue
		}
		p.printExpr(arg, 0, false)
	}
}

func quoteChar(r rune) string {
	switch r {
	case '\n':
		return `'\n'`
	case '\t':
		return `'\t'`
	case '\\':
		return `'\\'`
	case '\'':
		return `'\''`
	case 0:
		return `'\0'`
	}
	return "'" + string(r) + "'"
}
