// Package precedence resolves flat operand/operator sequences into nested
// expressions using a table of operator levels.
package precedence

type Assoc int

const (
	Left Assoc = iota
	Right
)

func (a Assoc) String() string {
	if a == Right {
		return "right"
	}
	return "left"
}

// Level is one precedence tier. Operators on the same tier bind equally.
type Level struct {
	Infix  []string
	Prefix []string
	Assoc  Assoc
}

type binding struct {
	prec  int
	assoc Assoc
}

// Table maps operator names to binding power. Higher binds tighter.
type Table struct {
	infix  map[string]binding
	prefix map[string]int
	levels []Level
}

// NewTable builds a table from levels listed loosest first.
func NewTable(levels ...Level) *Table {
	t := &Table{
		infix:  make(map[string]binding),
		prefix: make(map[string]int),
		levels: levels,
	}
	for i, lvl := range levels {
		prec := (i + 1) * 10
		for _, op := range lvl.Infix {
			t.infix[op] = binding{prec: prec, assoc: lvl.Assoc}
		}
		for _, op := range lvl.Prefix {
			t.prefix[op] = prec
		}
	}
	return t
}

// Infix returns the binding power and associativity of a binary operator.
func (t *Table) Infix(op string) (int, Assoc, bool) {
	b, ok := t.infix[op]
	return b.prec, b.assoc, ok
}

// Prefix returns the binding power of a prefix operator.
func (t *Table) Prefix(op string) (int, bool) {
	p, ok := t.prefix[op]
	return p, ok
}

// Levels returns the tiers the table was built from, loosest first.
func (t *Table) Levels() []Level {
	return t.levels
}

// Application selects where the explicit application operator $ sits.
type Application int

const (
	ApplicationLowest Application = iota
	ApplicationHighest
)

// ApplyOp is the explicit application operator.
const ApplyOp = "$"

// Complete returns the full operator table:
//
//	$ ; || ; && ; comparisons ; : ++ ; + - ; prefix - ; * / ; ^ ** ; . !!
//
// with $ moved to the tightest tier for ApplicationHighest.
func Complete(app Application) *Table {
	levels := []Level{
		{Infix: []string{"||"}},
		{Infix: []string{"&&"}},
		{Infix: []string{"<=", ">=", "<", ">", "==", "/="}},
		{Infix: []string{":", "++"}},
		{Infix: []string{"+", "-"}},
		{Prefix: []string{"-"}},
		{Infix: []string{"*", "/"}},
		{Infix: []string{"^", "**"}},
		{Infix: []string{".", "!!"}},
	}
	apply := Level{Infix: []string{ApplyOp}}
	if app == ApplicationHighest {
		levels = append(levels, apply)
	} else {
		levels = append([]Level{apply}, levels...)
	}
	return NewTable(levels...)
}
