// Package analyzer binds definitions to their declarations and produces the
// symbol, class and type tables of a program.
package analyzer

import (
	"github.com/funvibe/hsfront/internal/ast"
	"github.com/funvibe/hsfront/internal/symbols"
)

// Analyzer performs one forward pass over a Program. It stops at the first
// error and returns no tables in that case.
type Analyzer struct {
	registrar TypeRegistrar
	tables    *symbols.Tables
}

type Option func(*Analyzer)

// WithTypeRegistrar installs r to handle data declarations.
func WithTypeRegistrar(r TypeRegistrar) Option {
	return func(a *Analyzer) {
		a.registrar = r
	}
}

func New(opts ...Option) *Analyzer {
	a := &Analyzer{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs a fresh Analyzer over program.
func Analyze(program *ast.Program, opts ...Option) (*symbols.Tables, error) {
	return New(opts...).Analyze(program)
}

// Analyze builds new tables for program. The analyzer keeps no state
// between calls, so analyzing the same program twice gives equal tables.
func (a *Analyzer) Analyze(program *ast.Program) (*symbols.Tables, error) {
	a.tables = symbols.NewTables()
	defer func() { a.tables = nil }()

	for _, stmt := range program.Statements {
		if err := a.analyzeStatement(stmt); err != nil {
			return nil, err
		}
	}
	return a.tables, nil
}

func (a *Analyzer) analyzeStatement(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.Declaration:
		return a.declare(s)
	case *ast.Definition:
		return a.define(s)
	case *ast.TypeDeclaration:
		if a.registrar == nil {
			return nil
		}
		if err := a.registrar.RegisterType(a.tables, s); err != nil {
			return &TypeRegistrationError{Type: s.Name, Token: s.Token, Err: err}
		}
	case *ast.Comment:
		// Nothing to record.
	}
	return nil
}
