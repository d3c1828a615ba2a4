package ast

// Flatten returns the operand/operator sequence an expression was built
// from, ignoring grouping. Operator calls are unfolded in order; any other
// node, including a juxtaposed call such as f x, is a single operand.
func Flatten(expr Expression) []string {
	var out []string
	var walk func(Expression)
	walk = func(e Expression) {
		call, ok := e.(*FuncCall)
		if !ok || !IsOperatorName(call.Function) {
			out = append(out, e.String())
			return
		}
		switch len(call.Args) {
		case 1:
			out = append(out, call.Function)
			walk(call.Args[0])
		case 2:
			walk(call.Args[0])
			out = append(out, call.Function)
			walk(call.Args[1])
		default:
			out = append(out, e.String())
		}
	}
	walk(expr)
	return out
}

// Identifiers returns every identifier referenced by expr, in order of
// appearance and with repeats. Callee names of calls are included.
func Identifiers(expr Expression) []string {
	var out []string
	var walk func(Expression)
	walk = func(e Expression) {
		switch n := e.(type) {
		case *Identifier:
			out = append(out, n.Name)
		case *FuncCall:
			if !IsOperatorName(n.Function) {
				out = append(out, n.Function)
			}
			for _, a := range n.Args {
				walk(a)
			}
		case *ListLiteral:
			for _, el := range n.Elements {
				walk(el)
			}
		}
	}
	walk(expr)
	return out
}
