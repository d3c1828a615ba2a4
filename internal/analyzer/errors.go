package analyzer

import (
	"fmt"

	"github.com/funvibe/hsfront/internal/token"
)

// DuplicateDeclarationError is returned when a name is declared twice.
// Token points at the second declaration.
type DuplicateDeclarationError struct {
	Name  string
	Token token.Token
}

func (e *DuplicateDeclarationError) Error() string {
	return fmt.Sprintf("duplicate declaration of %s", e.Name)
}

// UndeclaredSymbolError is returned for a definition with no prior signature.
type UndeclaredSymbolError struct {
	Name  string
	Token token.Token
}

func (e *UndeclaredSymbolError) Error() string {
	return fmt.Sprintf("definition of undeclared symbol %s", e.Name)
}

// ArityMismatchError is returned when an equation binds a different number
// of arguments than its declared type has parameters.
type ArityMismatchError struct {
	Name     string
	Expected int
	Got      int
	Token    token.Token
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("%s expects %d argument(s), equation has %d", e.Name, e.Expected, e.Got)
}

// TypeRegistrationError wraps a failure reported by a TypeRegistrar.
type TypeRegistrationError struct {
	Type  string
	Token token.Token
	Err   error
}

func (e *TypeRegistrationError) Error() string {
	return fmt.Sprintf("cannot register type %s: %v", e.Type, e.Err)
}

func (e *TypeRegistrationError) Unwrap() error {
	return e.Err
}
