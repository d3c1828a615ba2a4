package diagnostics

import (
	"fmt"

	"github.com/funvibe/hsfront/internal/token"
)

type ErrorCode string

const (
	ErrP001 ErrorCode = "P001" // Syntax error
	ErrP002 ErrorCode = "P002" // Parse tree does not match the AST builder
	ErrA001 ErrorCode = "A001" // Symbol declared more than once
	ErrA002 ErrorCode = "A002" // Definition without a declaration
	ErrA003 ErrorCode = "A003" // Argument count does not match the declared type
	ErrA004 ErrorCode = "A004" // Type declaration could not be registered
)

// DiagnosticError is a user-facing error tied to a position in a source file.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	File    string
	Message string
	Err     error // Underlying typed error, if any
}

func NewError(code ErrorCode, tok token.Token, msg string) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Message: msg}
}

// Wrap builds a diagnostic whose message comes from err; errors.As still reaches err.
func Wrap(code ErrorCode, tok token.Token, err error) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Message: err.Error(), Err: err}
}

func (e *DiagnosticError) Error() string {
	pos := ""
	if e.Token.Line > 0 {
		pos = fmt.Sprintf("%d:%d: ", e.Token.Line, e.Token.Column)
	}
	if e.File != "" {
		pos = e.File + ":" + pos
		if e.Token.Line == 0 {
			pos += " "
		}
	}
	return fmt.Sprintf("%serror [%s]: %s", pos, e.Code, e.Message)
}

func (e *DiagnosticError) Unwrap() error {
	return e.Err
}
