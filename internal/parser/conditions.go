package parser

import (
	"strings"

	"nlsql/internal/ast"
	. "nlsql/internal/common"
)

// parseConditionTree is entered with curToken on the first token of the
// condition. Predicates chain with AND/OR in a strict left-to-right fold:
// "a and b or c" builds ((a AND b) OR c). There is deliberately no
// precedence between the two combinators.
func (p *Parser) parseConditionTree() (ast.Condition, error) {
	left, err := p.parsePredicate()
	if err != nil {
		return nil, err
	}

	for p.peekTokenIs(AND) || p.peekTokenIs(OR) {
		op := p.peekToken.Type
		p.NextToken()
		p.NextToken()

		right, err := p.parsePredicate()
		if err != nil {
			return nil, err
		}

		if op == AND {
			left = &ast.And{Left: left, Right: right}
		} else {
			left = &ast.Or{Left: left, Right: right}
		}
	}

	return left, nil
}

func (p *Parser) parsePredicate() (ast.Condition, error) {
	if !p.curTokenIs(IDENT) {
		return nil, p.invalidConditionError("column name")
	}
	column := p.curToken.Literal

	switch {
	case ComparisonOperators[p.peekToken.Type]:
		op := string(p.peekToken.Type)
		p.NextToken()
		p.NextToken()
		value, ok := p.conditionValue()
		if !ok {
			return nil, p.invalidConditionError("value")
		}
		return &ast.Comparison{Column: column, Op: op, Value: value}, nil

	case p.peekTokenIs(BETWEEN):
		return p.parseBetweenPredicate(column)

	case p.peekTokenIs(IN):
		p.NextToken()
		p.NextToken()
		values, err := p.parseLiteralList()
		if err != nil {
			return nil, asConditionError(err)
		}
		return &ast.InList{Column: column, Values: values}, nil

	case p.peekTokenIs(LIKE):
		p.NextToken()
		p.NextToken()
		if !p.curTokenIs(STRING) && !p.curTokenIs(IDENT) {
			return nil, p.invalidConditionError("pattern")
		}
		return &ast.Like{Column: column, Pattern: likePattern(p.curToken.Literal)}, nil

	default:
		return nil, p.invalidConditionError("comparison operator")
	}
}

// parseBetweenPredicate consumes the AND between the bounds itself, so the
// condition loop never mistakes it for a combinator.
func (p *Parser) parseBetweenPredicate(column string) (ast.Condition, error) {
	p.NextToken()

	if !p.expectPeek(NUMBER) {
		p.NextToken()
		return nil, p.invalidConditionError("number")
	}
	low := ast.Literal{Value: p.curToken.Literal}

	if !p.expectPeek(AND) {
		p.NextToken()
		return nil, p.invalidConditionError("and")
	}

	if !p.expectPeek(NUMBER) {
		p.NextToken()
		return nil, p.invalidConditionError("number")
	}
	high := ast.Literal{Value: p.curToken.Literal}

	return &ast.Between{Column: column, Low: low, High: high}, nil
}

// parseLiteralList is entered with curToken on the first value or on an
// opening parenthesis; parentheses around the list are optional on input.
func (p *Parser) parseLiteralList() ([]ast.Literal, error) {
	parenthesized := false
	if p.curTokenIs(LPAREN) {
		parenthesized = true
		p.NextToken()
	}

	var values []ast.Literal

	value, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	values = append(values, value)

	for p.peekTokenIs(COMMA) {
		p.NextToken()
		p.NextToken()
		value, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	if parenthesized && !p.expectPeek(RPAREN) {
		return nil, p.expectedError(")")
	}

	return values, nil
}

// parseLiteral reads the value under curToken. Bare words are accepted and
// treated as strings, matching the lexer's default-to-identifier policy.
func (p *Parser) parseLiteral() (ast.Literal, error) {
	value, ok := p.conditionValue()
	if !ok {
		return ast.Literal{}, p.expectedCurError("value")
	}
	return value, nil
}

func (p *Parser) conditionValue() (ast.Literal, bool) {
	switch p.curToken.Type {
	case NUMBER:
		return ast.Literal{Value: p.curToken.Literal}, true
	case STRING, IDENT:
		return ast.Literal{Value: p.curToken.Literal, IsString: true}, true
	default:
		return ast.Literal{}, false
	}
}

// likePattern wraps bare patterns as a substring match; patterns that
// already carry a wildcard pass through untouched.
func likePattern(pattern string) string {
	if strings.Contains(pattern, "%") {
		return pattern
	}
	return "%" + pattern + "%"
}
