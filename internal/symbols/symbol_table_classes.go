package symbols

import (
	"github.com/funvibe/hsfront/internal/ast"
)

// Method is a class member signature.
type Method struct {
	Name string
	Type ast.TypeExpr
}

// Class is a type class. The front-end never populates classes from
// source; the table exists so later stages have a place to put them.
type Class struct {
	Name    string
	Methods []Method
}

// Method returns the member called name.
func (c *Class) Method(name string) (Method, bool) {
	for _, m := range c.Methods {
		if m.Name == name {
			return m, true
		}
	}
	return Method{}, false
}

type ClassTable struct {
	classes map[string]*Class
	order   []string
}

func NewClassTable() *ClassTable {
	return &ClassTable{classes: make(map[string]*Class)}
}

// Define reports false when a class with the same name exists.
func (ct *ClassTable) Define(c *Class) bool {
	if _, ok := ct.classes[c.Name]; ok {
		return false
	}
	ct.classes[c.Name] = c
	ct.order = append(ct.order, c.Name)
	return true
}

func (ct *ClassTable) Find(name string) (*Class, bool) {
	c, ok := ct.classes[name]
	return c, ok
}

func (ct *ClassTable) All() []*Class {
	out := make([]*Class, 0, len(ct.order))
	for _, name := range ct.order {
		out = append(out, ct.classes[name])
	}
	return out
}

func (ct *ClassTable) Len() int {
	return len(ct.order)
}
