package symbols

import (
	"github.com/funvibe/hsfront/internal/ast"
	"github.com/funvibe/hsfront/internal/token"
)

// Symbol is a declared top-level name together with its equations.
type Symbol struct {
	Name      string
	Type      ast.TypeExpr
	Explicit  bool        // Declared by a signature rather than inferred
	Token     token.Token // Where the declaration appeared
	Instances []*Instance // Equations in source order
}

// Arity is the number of parameters the declared type admits. Anything
// that is not a function type is a value and takes none.
func (s *Symbol) Arity() int {
	if ft, ok := s.Type.(*ast.FuncType); ok {
		return len(ft.Params())
	}
	return 0
}

// Instance is one equation of a Symbol.
type Instance struct {
	Args  []ast.Pattern
	Scope *LocalScope
	Body  ast.Body
	Token token.Token // The equation's name token
}

// LocalScope maps parameter names to types, keeping binding order.
type LocalScope struct {
	names []string
	types map[string]ast.TypeExpr
}

func NewLocalScope() *LocalScope {
	return &LocalScope{types: make(map[string]ast.TypeExpr)}
}

// Bind adds name to the scope. Binding a name twice keeps its first
// position and replaces its type.
func (s *LocalScope) Bind(name string, t ast.TypeExpr) {
	if _, ok := s.types[name]; !ok {
		s.names = append(s.names, name)
	}
	s.types[name] = t
}

func (s *LocalScope) Lookup(name string) (ast.TypeExpr, bool) {
	t, ok := s.types[name]
	return t, ok
}

// Names returns the bound names in binding order.
func (s *LocalScope) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s *LocalScope) Len() int {
	return len(s.names)
}
