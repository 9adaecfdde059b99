package parser

import (
	"fmt"

	. "nlsql/internal/common"
)

type ErrorKind string

const (
	UnknownStatementKind ErrorKind = "UnknownStatementKind"
	ExpectedToken        ErrorKind = "ExpectedToken"
	InvalidCondition     ErrorKind = "InvalidCondition"
)

// Error carries the offending token alongside the message so callers can
// render a precise diagnostic without re-parsing the text.
type Error struct {
	Kind     ErrorKind
	Expected string
	Found    Token
	Message  string
}

func (e *Error) Error() string {
	return e.Message
}

func (p *Parser) expectedError(expected string) *Error {
	found := p.peekToken
	return &Error{
		Kind:     ExpectedToken,
		Expected: expected,
		Found:    found,
		Message:  fmt.Sprintf("expected %s, got %s", expected, describeToken(found)),
	}
}

func (p *Parser) invalidConditionError(expected string) *Error {
	found := p.curToken
	return &Error{
		Kind:     InvalidCondition,
		Expected: expected,
		Found:    found,
		Message:  fmt.Sprintf("invalid condition: expected %s, got %s", expected, describeToken(found)),
	}
}

func (p *Parser) expectedCurError(expected string) *Error {
	found := p.curToken
	return &Error{
		Kind:     ExpectedToken,
		Expected: expected,
		Found:    found,
		Message:  fmt.Sprintf("expected %s, got %s", expected, describeToken(found)),
	}
}

// asConditionError re-kinds an error raised inside a predicate so that
// every malformed predicate surfaces as InvalidCondition.
func asConditionError(err error) error {
	if perr, ok := err.(*Error); ok && perr.Kind == ExpectedToken {
		perr.Kind = InvalidCondition
		perr.Message = "invalid condition: " + perr.Message
	}
	return err
}

func (p *Parser) unknownStatementError() *Error {
	found := p.curToken
	return &Error{
		Kind:    UnknownStatementKind,
		Found:   found,
		Message: fmt.Sprintf("expected a statement keyword, got %s", describeToken(found)),
	}
}

func describeToken(tok Token) string {
	if tok.Type == EOF {
		return "end of input"
	}
	return tok.Literal
}
