package grammar

import (
	"fmt"

	"github.com/funvibe/hsfront/internal/parsetree"
)

// SyntaxError reports the first place where the source does not match the grammar.
type SyntaxError struct {
	Message string
	Pos     parsetree.Pos
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %s: %s", e.Pos, e.Message)
}
