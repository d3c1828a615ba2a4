package analyzer

import (
	"github.com/hashicorp/go-set/v2"

	"github.com/funvibe/hsfront/internal/ast"
	"github.com/funvibe/hsfront/internal/symbols"
)

// TypeRegistrar is called for every data declaration. The analyzer itself
// never writes the Type or Class tables; a registrar may.
type TypeRegistrar interface {
	RegisterType(tables *symbols.Tables, decl *ast.TypeDeclaration) error
}

// ConstructorRegistrar records each data type and its constructor names in
// the Type table. A type name or constructor seen twice is a duplicate.
type ConstructorRegistrar struct{}

func (ConstructorRegistrar) RegisterType(tables *symbols.Tables, decl *ast.TypeDeclaration) error {
	if _, taken := tables.Types.Find(decl.Name); taken {
		return &DuplicateDeclarationError{Name: decl.Name, Token: decl.Token}
	}
	seen := set.New[string](len(decl.Constructors))
	for _, c := range decl.Constructors {
		_, taken := tables.Types.OwnerOf(c.Name)
		if taken || !seen.Insert(c.Name) {
			return &DuplicateDeclarationError{Name: c.Name, Token: c.Token}
		}
	}
	t := &symbols.Type{Name: decl.Name, Constructors: seen}
	tables.Types.Define(t)
	return nil
}
