package symbols

// SymbolTable maps names to symbols and remembers declaration order so
// that printing and indexing are deterministic.
type SymbolTable struct {
	store map[string]*Symbol
	order []string
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{store: make(map[string]*Symbol)}
}

// Define inserts sym and reports false when its name is already taken.
// The existing entry is left untouched in that case.
func (st *SymbolTable) Define(sym *Symbol) bool {
	if _, ok := st.store[sym.Name]; ok {
		return false
	}
	st.store[sym.Name] = sym
	st.order = append(st.order, sym.Name)
	return true
}

func (st *SymbolTable) Find(name string) (*Symbol, bool) {
	sym, ok := st.store[name]
	return sym, ok
}

func (st *SymbolTable) IsDefined(name string) bool {
	_, ok := st.store[name]
	return ok
}

// All returns the symbols in declaration order.
func (st *SymbolTable) All() []*Symbol {
	out := make([]*Symbol, 0, len(st.order))
	for _, name := range st.order {
		out = append(out, st.store[name])
	}
	return out
}

func (st *SymbolTable) Names() []string {
	out := make([]string, len(st.order))
	copy(out, st.order)
	return out
}

func (st *SymbolTable) Len() int {
	return len(st.order)
}
