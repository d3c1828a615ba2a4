package analyzer

import (
	"errors"
	"log"

	"github.com/funvibe/hsfront/internal/diagnostics"
	"github.com/funvibe/hsfront/internal/pipeline"
	"github.com/funvibe/hsfront/internal/token"
)

type SemanticAnalyzerProcessor struct {
	Logger *log.Logger // Optional stage trace
}

func (sap *SemanticAnalyzerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil {
		return ctx
	}

	var opts []Option
	if ctx.Config != nil && ctx.Config.Analysis.RegisterTypes {
		opts = append(opts, WithTypeRegistrar(ConstructorRegistrar{}))
	}
	tables, err := Analyze(ctx.AstRoot, opts...)
	if err != nil {
		ctx.AddError(toDiagnostic(err))
		return ctx
	}
	ctx.Tables = tables
	if sap.Logger != nil {
		sap.Logger.Printf("[%s] analyzed %d symbols, %d types", ctx.ID, tables.Symbols.Len(), tables.Types.Len())
	}
	return ctx
}

func toDiagnostic(err error) *diagnostics.DiagnosticError {
	var (
		reg   *TypeRegistrationError
		dup   *DuplicateDeclarationError
		undef *UndeclaredSymbolError
		arity *ArityMismatchError
	)
	switch {
	case errors.As(err, &reg):
		tok := reg.Token
		if errors.As(reg.Err, &dup) {
			tok = dup.Token
		}
		return diagnostics.Wrap(diagnostics.ErrA004, tok, err)
	case errors.As(err, &dup):
		return diagnostics.Wrap(diagnostics.ErrA001, dup.Token, err)
	case errors.As(err, &undef):
		return diagnostics.Wrap(diagnostics.ErrA002, undef.Token, err)
	case errors.As(err, &arity):
		return diagnostics.Wrap(diagnostics.ErrA003, arity.Token, err)
	}
	return diagnostics.Wrap(diagnostics.ErrA004, token.Token{}, err)
}
