package pipeline

import (
	"errors"

	"nlsql/internal/generator"
	"nlsql/internal/lexer"
	"nlsql/internal/parser"
)

// Result is the success shape handed to every external caller.
type Result struct {
	SQL         string `json:"sql"`
	Explanation string `json:"explanation"`
}

// Error wraps a lexer or parser failure with the stage it came from. Kind
// is the variant name of the underlying error, machine-readable for
// callers that dispatch on it.
type Error struct {
	Stage   string
	Kind    string
	Message string
	err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.err
}

// Run sequences lexer, parser and generator over one sentence. It either
// fully succeeds or returns a single structured *Error; there is no
// partial-success mode and no failure outside the error taxonomy.
func Run(text string) (Result, error) {
	tokens, err := lexer.Tokenize(text)
	if err != nil {
		return Result{}, wrapLexError(err)
	}

	stmt, err := parser.Parse(tokens)
	if err != nil {
		return Result{}, wrapParseError(err)
	}

	return Result{
		SQL:         generator.Generate(stmt),
		Explanation: generator.Explain(stmt),
	}, nil
}

func wrapLexError(err error) *Error {
	kind := ""
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		kind = lexErr.Kind
	}
	return &Error{Stage: "lexer", Kind: kind, Message: err.Error(), err: err}
}

func wrapParseError(err error) *Error {
	kind := ""
	var parseErr *parser.Error
	if errors.As(err, &parseErr) {
		kind = string(parseErr.Kind)
	}
	return &Error{Stage: "parser", Kind: kind, Message: err.Error(), err: err}
}
