package parser

import (
	. "nlsql/internal/common"
)

type Parser struct {
	tokens    []Token
	pos       int
	curToken  Token
	peekToken Token
}
