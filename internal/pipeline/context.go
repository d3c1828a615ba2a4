package pipeline

import (
	"github.com/google/uuid"

	"github.com/funvibe/hsfront/internal/ast"
	"github.com/funvibe/hsfront/internal/config"
	"github.com/funvibe/hsfront/internal/diagnostics"
	"github.com/funvibe/hsfront/internal/parsetree"
	"github.com/funvibe/hsfront/internal/symbols"
	"github.com/funvibe/hsfront/internal/token"
)

// Processor is one stage of the front-end.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries one compilation unit through every stage.
// Each stage owns the artifact it produces; nothing is shared between units.
type PipelineContext struct {
	ID         uuid.UUID // Run identifier, used to correlate log lines
	FilePath   string
	SourceCode string
	Config     *config.Config

	TokenStream []token.Token
	ParseTree   *parsetree.Node
	AstRoot     *ast.Program
	Tables      *symbols.Tables

	Errors []*diagnostics.DiagnosticError
}

// NewContext prepares a context for a single source unit.
func NewContext(filePath, source string, cfg *config.Config) *PipelineContext {
	if cfg == nil {
		cfg = config.Default()
	}
	return &PipelineContext{
		ID:         uuid.New(),
		FilePath:   filePath,
		SourceCode: source,
		Config:     cfg,
	}
}

// Failed reports whether any stage recorded a diagnostic.
func (ctx *PipelineContext) Failed() bool {
	return len(ctx.Errors) > 0
}

// AddError records err and stamps it with the unit's file path.
func (ctx *PipelineContext) AddError(err *diagnostics.DiagnosticError) {
	if err.File == "" {
		err.File = ctx.FilePath
	}
	ctx.Errors = append(ctx.Errors, err)
}
