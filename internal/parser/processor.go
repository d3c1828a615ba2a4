package parser

import (
	"fmt"
	"log"

	"github.com/funvibe/hsfront/internal/ast"
	"github.com/funvibe/hsfront/internal/config"
	"github.com/funvibe/hsfront/internal/diagnostics"
	"github.com/funvibe/hsfront/internal/pipeline"
	"github.com/funvibe/hsfront/internal/precedence"
	"github.com/funvibe/hsfront/internal/token"
)

type ParserProcessor struct {
	Logger *log.Logger // Optional stage trace
}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.ParseTree == nil {
		return ctx
	}

	cfg := ctx.Config
	if cfg == nil {
		cfg = config.Default()
	}
	table := precedence.FromConfig(cfg.Precedence)
	program, err := buildRecovering(ctx, table)
	if err != nil {
		ctx.AddError(err)
		return ctx
	}
	program.File = ctx.FilePath
	ctx.AstRoot = program
	if pp.Logger != nil {
		pp.Logger.Printf("[%s] built %d statements", ctx.ID, len(program.Statements))
	}
	return ctx
}

// buildRecovering turns a builder abort into a diagnostic so the caller can
// report it next to the other errors of the unit.
func buildRecovering(ctx *pipeline.PipelineContext, table *precedence.Table) (program *ast.Program, diag *diagnostics.DiagnosticError) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var err error
		tok := token.Token{}
		switch e := r.(type) {
		case *UnexpectedRuleError:
			err = e
			tok = tokenAt(e.Rule, e.Text, e.Pos)
		case *precedence.InvariantError:
			err = e
			if e.Node != nil {
				tok = tokenOf(e.Node)
			}
		default:
			panic(r)
		}
		program = nil
		diag = diagnostics.Wrap(diagnostics.ErrP002, tok, fmt.Errorf("internal error: %w", err))
	}()
	return BuildProgram(ctx.ParseTree, WithTable(table)), nil
}
