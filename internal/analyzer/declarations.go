package analyzer

import (
	"github.com/funvibe/hsfront/internal/ast"
	"github.com/funvibe/hsfront/internal/symbols"
)

func (a *Analyzer) declare(decl *ast.Declaration) error {
	sym := &symbols.Symbol{
		Name:      decl.Name,
		Type:      decl.Type,
		Explicit:  true,
		Token:     decl.Token,
		Instances: []*symbols.Instance{},
	}
	if !a.tables.Symbols.Define(sym) {
		return &DuplicateDeclarationError{Name: decl.Name, Token: decl.Token}
	}
	return nil
}

func (a *Analyzer) define(def *ast.Definition) error {
	sym, ok := a.tables.Symbols.Find(def.Name)
	if !ok {
		return &UndeclaredSymbolError{Name: def.Name, Token: def.Token}
	}
	scope, err := bindArgs(sym, def)
	if err != nil {
		return err
	}
	sym.Instances = append(sym.Instances, &symbols.Instance{
		Args:  def.Args,
		Scope: scope,
		Body:  def.Body,
		Token: def.Token,
	})
	return nil
}

// bindArgs zips the equation's patterns with the declared parameter types.
// Only plain identifiers are bound; wildcards, literals and constructor
// patterns introduce no names here, including names nested inside them.
func bindArgs(sym *symbols.Symbol, def *ast.Definition) (*symbols.LocalScope, error) {
	if len(def.Args) != sym.Arity() {
		return nil, &ArityMismatchError{
			Name:     def.Name,
			Expected: sym.Arity(),
			Got:      len(def.Args),
			Token:    def.Token,
		}
	}
	scope := symbols.NewLocalScope()
	if len(def.Args) == 0 {
		return scope, nil
	}
	params := sym.Type.(*ast.FuncType).Params()
	for i, arg := range def.Args {
		if id, ok := arg.(*ast.IdentifierPattern); ok {
			scope.Bind(id.Name, params[i])
		}
	}
	return scope, nil
}
