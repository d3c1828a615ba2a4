package prettyprinter

import (
	"fmt"
	"io"
	"strings"

	"github.com/funvibe/hsfront/internal/symbols"
)

// PrintTables writes the analysis result in declaration order:
//
//	f :: Int -> Int -> Int
//	  f x y  {x: Int, y: Int}
func PrintTables(out io.Writer, tables *symbols.Tables, style Style) {
	for _, sym := range tables.Symbols.All() {
		fmt.Fprintf(out, "%s :: %s\n", style.Name(sym.Name), style.Type(sym.Type.String()))
		for _, inst := range sym.Instances {
			parts := []string{sym.Name}
			for _, a := range inst.Args {
				parts = append(parts, a.String())
			}
			fmt.Fprintf(out, "  %s  %s\n", strings.Join(parts, " "), formatScope(inst.Scope, style))
		}
	}
	for _, t := range tables.Types.All() {
		fmt.Fprintf(out, "%s %s = %s\n", style.Keyword("data"), style.Name(t.Name), strings.Join(t.ConstructorNames(), " | "))
	}
	for _, c := range tables.Classes.All() {
		fmt.Fprintf(out, "%s %s\n", style.Keyword("class"), style.Name(c.Name))
		for _, m := range c.Methods {
			fmt.Fprintf(out, "  %s :: %s\n", m.Name, style.Type(m.Type.String()))
		}
	}
}

func formatScope(scope *symbols.LocalScope, style Style) string {
	names := scope.Names()
	parts := make([]string, 0, len(names))
	for _, name := range names {
		t, _ := scope.Lookup(name)
		parts = append(parts, name+": "+style.Type(t.String()))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
