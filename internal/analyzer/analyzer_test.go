package analyzer

import (
	"errors"
	"strings"
	"testing"

	"github.com/kr/pretty"

	"github.com/funvibe/hsfront/internal/ast"
	"github.com/funvibe/hsfront/internal/grammar"
	"github.com/funvibe/hsfront/internal/parser"
	"github.com/funvibe/hsfront/internal/symbols"
)

// build parses and builds input, failing the test on syntax errors.
func build(t *testing.T, input string) *ast.Program {
	t.Helper()
	tree, err := grammar.Parse(input)
	if err != nil {
		t.Fatalf("parse: %v\ninput: %s", err, input)
	}
	return parser.BuildProgram(tree)
}

func analyzeOK(t *testing.T, input string, opts ...Option) *symbols.Tables {
	t.Helper()
	tables, err := Analyze(build(t, input), opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v\ninput: %s", err, input)
	}
	return tables
}

func analyzeErr(t *testing.T, input string, opts ...Option) error {
	t.Helper()
	tables, err := Analyze(build(t, input), opts...)
	if err == nil {
		t.Fatalf("expected an error\ninput: %s", input)
	}
	if tables != nil {
		t.Errorf("tables returned together with error %v", err)
	}
	return err
}

func symbol(t *testing.T, tables *symbols.Tables, name string) *symbols.Symbol {
	t.Helper()
	sym, ok := tables.Symbols.Find(name)
	if !ok {
		t.Fatalf("symbol %s not defined; have %v", name, tables.Symbols.Names())
	}
	return sym
}

func TestBindingScope(t *testing.T) {
	tables := analyzeOK(t, "f :: Int -> Int -> Int\nf x y = x")
	f := symbol(t, tables, "f")
	if !f.Explicit {
		t.Error("declared symbol not marked explicit")
	}
	if len(f.Instances) != 1 {
		t.Fatalf("got %d instances, want 1", len(f.Instances))
	}
	scope := f.Instances[0].Scope
	if diff := pretty.Diff(scope.Names(), []string{"x", "y"}); len(diff) > 0 {
		t.Fatalf("scope names: %v", diff)
	}
	for _, name := range []string{"x", "y"} {
		typ, ok := scope.Lookup(name)
		if !ok || typ != ast.Int {
			t.Errorf("%s bound to %v", name, typ)
		}
	}
}

func TestScopeBindsParameterTypesPositionally(t *testing.T) {
	tables := analyzeOK(t, "g :: [a] -> Bool -> Char -> Float\ng xs b c = 1.0")
	scope := symbol(t, tables, "g").Instances[0].Scope
	want := map[string]string{"xs": "[a]", "b": "Bool", "c": "Char"}
	for name, typ := range want {
		got, ok := scope.Lookup(name)
		if !ok || got.String() != typ {
			t.Errorf("%s: got %v, want %s", name, got, typ)
		}
	}
}

func TestOnlyIdentifierPatternsAreBound(t *testing.T) {
	tables := analyzeOK(t, "h :: [Int] -> Int -> Maybe -> Int -> Int\nh (x:xs) _ (Just y) 0 = x")
	inst := symbol(t, tables, "h").Instances[0]
	if inst.Scope.Len() != 0 {
		t.Errorf("non-identifier patterns bound names: %v", inst.Scope.Names())
	}
	if len(inst.Args) != 4 {
		t.Errorf("instance lost its patterns: %v", inst.Args)
	}

	tables = analyzeOK(t, "k :: Int -> Int -> Int\nk _ n = n")
	if names := symbol(t, tables, "k").Instances[0].Scope.Names(); len(names) != 1 || names[0] != "n" {
		t.Errorf("got %v, want [n]", names)
	}
}

func TestValueDeclaration(t *testing.T) {
	tables := analyzeOK(t, "answer :: Int\nanswer = 42")
	inst := symbol(t, tables, "answer").Instances[0]
	if inst.Scope.Len() != 0 {
		t.Errorf("value binding has scope %v", inst.Scope.Names())
	}
	if eb, ok := inst.Body.(*ast.ExpressionBody); !ok || eb.Expression.String() != "42" {
		t.Errorf("body %#v", inst.Body)
	}
}

func TestDuplicateDeclaration(t *testing.T) {
	err := analyzeErr(t, "f :: Int\nf :: Bool")
	var dup *DuplicateDeclarationError
	if !errors.As(err, &dup) {
		t.Fatalf("got %T %v, want *DuplicateDeclarationError", err, err)
	}
	if dup.Name != "f" || dup.Token.Line != 2 {
		t.Errorf("got %+v, want f on line 2", dup)
	}
}

func TestDuplicateLeavesFirstEntry(t *testing.T) {
	table := symbols.NewSymbolTable()
	first := &symbols.Symbol{Name: "f", Type: ast.Int}
	table.Define(first)
	if table.Define(&symbols.Symbol{Name: "f", Type: ast.Bool}) {
		t.Fatal("second definition accepted")
	}
	got, _ := table.Find("f")
	if got != first || got.Type != ast.Int {
		t.Error("first declaration was replaced")
	}
}

func TestUndeclaredSymbol(t *testing.T) {
	err := analyzeErr(t, "g x = x")
	var undef *UndeclaredSymbolError
	if !errors.As(err, &undef) || undef.Name != "g" {
		t.Fatalf("got %v, want UndeclaredSymbol{g}", err)
	}
}

func TestDefinitionBeforeDeclaration(t *testing.T) {
	// The pass is single and forward: a later signature does not help.
	err := analyzeErr(t, "g = 1\ng :: Int")
	var undef *UndeclaredSymbolError
	if !errors.As(err, &undef) {
		t.Fatalf("got %v", err)
	}
}

func TestArityMismatch(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		got      int
	}{
		{"too few", "h :: Int -> Int -> Int\nh x = x", 2, 1},
		{"too many", "h :: Int -> Int\nh x y = x", 1, 2},
		{"value with arguments", "h :: Int\nh x = x", 0, 1},
		{"function without arguments", "h :: Int -> Int\nh = 1", 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := analyzeErr(t, tt.input)
			var am *ArityMismatchError
			if !errors.As(err, &am) {
				t.Fatalf("got %v, want *ArityMismatchError", err)
			}
			if am.Name != "h" || am.Expected != tt.expected || am.Got != tt.got {
				t.Errorf("got %+v", am)
			}
		})
	}
}

func TestStopsAtFirstError(t *testing.T) {
	err := analyzeErr(t, "a :: Int\na :: Int\nb x = x")
	var dup *DuplicateDeclarationError
	if !errors.As(err, &dup) {
		t.Fatalf("got %v, want the duplicate reported first", err)
	}
}

func TestMultipleEquationsAccumulate(t *testing.T) {
	tables := analyzeOK(t, "fact :: Int -> Int\nfact 0 = 1\nfact n = n * fact (n - 1)")
	fact := symbol(t, tables, "fact")
	if len(fact.Instances) != 2 {
		t.Fatalf("got %d instances, want 2", len(fact.Instances))
	}
	if lit, ok := fact.Instances[0].Args[0].(*ast.LiteralPattern); !ok || lit.Value.String() != "0" {
		t.Errorf("first instance args %v", fact.Instances[0].Args)
	}
	if fact.Instances[1].Args[0].String() != "n" || fact.Instances[1].Token.Line != 3 {
		t.Errorf("second instance out of order: %v", fact.Instances[1].Args)
	}
}

func TestTypeDeclarationsAndCommentsLeaveTablesAlone(t *testing.T) {
	tables := analyzeOK(t, "-- shapes\ndata Shape = Circle Float | Square Float\narea :: Shape -> Float\narea s = 1.0")
	if tables.Types.Len() != 0 || tables.Classes.Len() != 0 {
		t.Errorf("type/class tables populated: %d types, %d classes", tables.Types.Len(), tables.Classes.Len())
	}
	if tables.Symbols.Len() != 1 {
		t.Errorf("symbols: %v", tables.Symbols.Names())
	}
}

func TestIdempotent(t *testing.T) {
	prog := build(t, "f :: Int -> Int -> Int\nf x y = x + y\nf 0 _ = 0\ng :: Bool\ng = True")
	first, err := Analyze(prog)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Analyze(prog)
	if err != nil {
		t.Fatal(err)
	}
	if first == second || first.Symbols == second.Symbols {
		t.Fatal("tables shared between runs")
	}
	if diff := pretty.Diff(first, second); len(diff) > 0 {
		t.Fatalf("runs differ:\n%s", strings.Join(diff, "\n"))
	}

	// Reusing one Analyzer must not leak state either.
	a := New()
	if _, err := a.Analyze(build(t, "x :: Int")); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Analyze(build(t, "x :: Int")); err != nil {
		t.Fatalf("second run saw the first run's symbols: %v", err)
	}
}

func TestConstructorRegistrar(t *testing.T) {
	tables := analyzeOK(t, "data Shape = Circle Float | Square Float\ndata Unit = Unit",
		WithTypeRegistrar(ConstructorRegistrar{}))
	shape, ok := tables.Types.Find("Shape")
	if !ok {
		t.Fatal("Shape not registered")
	}
	if diff := pretty.Diff(shape.ConstructorNames(), []string{"Circle", "Square"}); len(diff) > 0 {
		t.Errorf("constructors: %v", diff)
	}
	if owner, ok := tables.Types.OwnerOf("Unit"); !ok || owner.Name != "Unit" {
		t.Errorf("owner of Unit: %v", owner)
	}
	if tables.Symbols.Len() != 0 {
		t.Error("registrar leaked constructors into the symbol table")
	}
}

func TestConstructorRegistrarDuplicates(t *testing.T) {
	tests := []struct {
		name  string
		input string
		dup   string
	}{
		{"type twice", "data T = A\ndata T = B", "T"},
		{"constructor in two types", "data T = A\ndata U = A", "A"},
		{"constructor twice in one type", "data T = A | A", "A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := analyzeErr(t, tt.input, WithTypeRegistrar(ConstructorRegistrar{}))
			var reg *TypeRegistrationError
			var dup *DuplicateDeclarationError
			if !errors.As(err, &reg) || !errors.As(err, &dup) {
				t.Fatalf("got %v", err)
			}
			if dup.Name != tt.dup {
				t.Errorf("duplicate %s, want %s", dup.Name, tt.dup)
			}
		})
	}
}

type recordingRegistrar struct {
	seen []string
}

func (r *recordingRegistrar) RegisterType(tables *symbols.Tables, decl *ast.TypeDeclaration) error {
	r.seen = append(r.seen, decl.Name)
	tables.Classes.Define(&symbols.Class{Name: "Show" + decl.Name})
	return nil
}

func TestCustomRegistrar(t *testing.T) {
	r := &recordingRegistrar{}
	tables := analyzeOK(t, "data A = A\nx :: Int\ndata B = B", WithTypeRegistrar(r))
	if strings.Join(r.seen, ",") != "A,B" {
		t.Errorf("registrar saw %v", r.seen)
	}
	if _, ok := tables.Classes.Find("ShowB"); !ok {
		t.Error("registrar writes to the class table were dropped")
	}
}
