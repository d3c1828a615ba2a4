package grammar

import (
	"errors"

	"github.com/funvibe/hsfront/internal/diagnostics"
	"github.com/funvibe/hsfront/internal/lexer"
	"github.com/funvibe/hsfront/internal/pipeline"
	"github.com/funvibe/hsfront/internal/token"
)

type GrammarProcessor struct{}

func (gp *GrammarProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.TokenStream == nil {
		ctx.TokenStream = lexer.New(ctx.SourceCode).Tokenize()
	}

	tree, err := ParseTokens(ctx.SourceCode, ctx.TokenStream)
	if err != nil {
		tok := token.Token{Line: 1, Column: 1}
		var se *SyntaxError
		if errors.As(err, &se) {
			tok = token.Token{Line: se.Pos.Line, Column: se.Pos.Column, Offset: se.Pos.Offset}
			diag := diagnostics.NewError(diagnostics.ErrP001, tok, se.Message)
			diag.Err = se
			ctx.AddError(diag)
			return ctx
		}
		ctx.AddError(diagnostics.Wrap(diagnostics.ErrP001, tok, err))
		return ctx
	}
	ctx.ParseTree = tree
	return ctx
}
