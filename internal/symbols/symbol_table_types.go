package symbols

import (
	"sort"

	"github.com/hashicorp/go-set/v2"
)

// Type is a user-declared data type and the names of its constructors.
type Type struct {
	Name         string
	Constructors *set.Set[string]
}

func NewType(name string, constructors ...string) *Type {
	t := &Type{Name: name, Constructors: set.New[string](len(constructors))}
	for _, c := range constructors {
		t.Constructors.Insert(c)
	}
	return t
}

// HasConstructor reports whether c builds values of t.
func (t *Type) HasConstructor(c string) bool {
	return t.Constructors.Contains(c)
}

// ConstructorNames returns the constructors sorted by name.
func (t *Type) ConstructorNames() []string {
	names := t.Constructors.Slice()
	sort.Strings(names)
	return names
}

type TypeTable struct {
	types map[string]*Type
	order []string
}

func NewTypeTable() *TypeTable {
	return &TypeTable{types: make(map[string]*Type)}
}

// Define reports false when the name is taken.
func (tt *TypeTable) Define(t *Type) bool {
	if _, ok := tt.types[t.Name]; ok {
		return false
	}
	tt.types[t.Name] = t
	tt.order = append(tt.order, t.Name)
	return true
}

func (tt *TypeTable) Find(name string) (*Type, bool) {
	t, ok := tt.types[name]
	return t, ok
}

// OwnerOf returns the type that declares constructor c.
func (tt *TypeTable) OwnerOf(c string) (*Type, bool) {
	for _, name := range tt.order {
		if t := tt.types[name]; t.HasConstructor(c) {
			return t, true
		}
	}
	return nil, false
}

func (tt *TypeTable) All() []*Type {
	out := make([]*Type, 0, len(tt.order))
	for _, name := range tt.order {
		out = append(out, tt.types[name])
	}
	return out
}

func (tt *TypeTable) Len() int {
	return len(tt.order)
}
