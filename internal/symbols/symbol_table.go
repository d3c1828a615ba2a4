// Package symbols holds the tables the semantic analyzer produces.
//
// The layout mirrors the three namespaces of a module:
//   - symbol_table_core.go: Symbol, Instance and LocalScope
//   - symbol_table_operations.go: the ordered SymbolTable
//   - symbol_table_classes.go: type classes and their methods
//   - symbol_table_types.go: user-declared data types
package symbols

// Tables is the result of analyzing one Program.
type Tables struct {
	Symbols *SymbolTable
	Classes *ClassTable
	Types   *TypeTable
}

// NewTables returns empty tables. Every analysis starts from a fresh set.
func NewTables() *Tables {
	return &Tables{
		Symbols: NewSymbolTable(),
		Classes: NewClassTable(),
		Types:   NewTypeTable(),
	}
}
