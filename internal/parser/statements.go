package parser

import (
	"nlsql/internal/ast"
	. "nlsql/internal/common"
)

// Parse tokenizes nothing itself; it consumes an already-lexed token stream
// and produces exactly one statement.
func Parse(tokens []Token) (ast.Statement, error) {
	return NewParser(tokens).ParseStatement()
}

func (p *Parser) ParseStatement() (ast.Statement, error) {
	switch p.curToken.Type {
	case SELECT:
		return p.parseSelectStatement()
	case COUNT_AGG, SUM_AGG, AVG_AGG, MIN_AGG, MAX_AGG:
		return p.parseAggregateStatement()
	case INSERT_INTO:
		return p.parseInsertStatement()
	case UPDATE:
		return p.parseUpdateStatement()
	case DELETE_FROM:
		return p.parseDeleteStatement()
	case ALTER_DROP_COLUMN:
		return p.parseDropColumnStatement()
	case ALTER_TABLE:
		return p.parseAlterTableStatement()
	default:
		return nil, p.unknownStatementError()
	}
}

func (p *Parser) parseSelectStatement() (*ast.SelectStatement, error) {
	stmt := &ast.SelectStatement{}

	if p.peekTokenIs(DISTINCT) {
		p.NextToken()
		stmt.Distinct = true
	}

	switch {
	case p.peekTokenIs(WILDCARD):
		p.NextToken()
		stmt.Projection = &ast.Wildcard{}
	case Aggregates[p.peekToken.Type]:
		p.NextToken()
		agg, err := p.parseAggregateProjection()
		if err != nil {
			return nil, err
		}
		if agg.Target == "" {
			agg.Target = "*"
		}
		stmt.Projection = agg
	case p.peekTokenIs(IDENT):
		p.NextToken()
		first := p.curToken.Literal

		switch p.peekToken.Type {
		case WHERE, ORDER_BY, GROUP_BY, EOF:
			// Table shorthand: "select users where ..." names the table
			// directly and implies a wildcard projection.
			stmt.Projection = &ast.Wildcard{}
			stmt.TableName = first
			return p.parseSelectTail(stmt)
		default:
			names := []string{first}
			for p.peekTokenIs(COMMA) {
				p.NextToken()
				if !p.expectPeek(IDENT) {
					return nil, p.expectedError("column name")
				}
				names = append(names, p.curToken.Literal)
			}
			stmt.Projection = &ast.Columns{Names: names}
		}
	default:
		return nil, p.expectedError("from")
	}

	if !p.expectPeek(FROM) {
		return nil, p.expectedError("from")
	}
	if !p.expectPeek(IDENT) {
		return nil, p.expectedError("table name")
	}
	stmt.TableName = p.curToken.Literal

	return p.parseSelectTail(stmt)
}

// parseAggregateStatement handles statements that open with an aggregate
// keyword, like "count users" or "sum salary from employees". When no FROM
// follows, the aggregate's target doubles as the table name.
func (p *Parser) parseAggregateStatement() (*ast.SelectStatement, error) {
	stmt := &ast.SelectStatement{}

	agg, err := p.parseAggregateProjection()
	if err != nil {
		return nil, err
	}

	if p.peekTokenIs(FROM) {
		p.NextToken()
		if !p.expectPeek(IDENT) {
			return nil, p.expectedError("table name")
		}
		stmt.TableName = p.curToken.Literal
	} else {
		if agg.Target == "" || agg.Target == "*" {
			return nil, p.expectedError("from")
		}
		if agg.Kind == ast.AggCount {
			stmt.TableName = agg.Target
			agg.Target = "*"
		} else {
			return nil, p.expectedError("from")
		}
	}

	if agg.Target == "" {
		agg.Target = "*"
	}
	stmt.Projection = agg

	return p.parseSelectTail(stmt)
}

// parseAggregateProjection is entered with curToken on the aggregate
// keyword. Parenthesized targets like count(*) are accepted, parentheses
// optional. The target may be absent; callers decide what that means.
func (p *Parser) parseAggregateProjection() (*ast.Aggregate, error) {
	agg := &ast.Aggregate{Kind: aggKindFor(p.curToken.Type)}

	switch {
	case p.peekTokenIs(LPAREN):
		p.NextToken()
		switch {
		case p.peekTokenIs(WILDCARD):
			p.NextToken()
			agg.Target = "*"
		case p.peekTokenIs(IDENT):
			p.NextToken()
			agg.Target = p.curToken.Literal
		default:
			return nil, p.expectedError("column name or *")
		}
		if !p.expectPeek(RPAREN) {
			return nil, p.expectedError(")")
		}
	case p.peekTokenIs(WILDCARD):
		p.NextToken()
		agg.Target = "*"
	case p.peekTokenIs(IDENT):
		p.NextToken()
		agg.Target = p.curToken.Literal
	}

	return agg, nil
}

// parseSelectTail consumes the optional WHERE, GROUP BY and ORDER BY
// clauses. GROUP BY and ORDER BY are accepted in either order; the
// generator always renders them canonically.
func (p *Parser) parseSelectTail(stmt *ast.SelectStatement) (*ast.SelectStatement, error) {
	if p.peekTokenIs(WHERE) {
		p.NextToken()
		p.NextToken()
		cond, err := p.parseConditionTree()
		if err != nil {
			return nil, err
		}
		stmt.Where = cond
	}

	for p.peekTokenIs(GROUP_BY) || p.peekTokenIs(ORDER_BY) {
		if p.peekTokenIs(GROUP_BY) {
			if stmt.GroupBy != "" {
				return nil, p.expectedError("end of input")
			}
			p.NextToken()
			if !p.expectPeek(IDENT) {
				return nil, p.expectedError("column name")
			}
			stmt.GroupBy = p.curToken.Literal
			continue
		}

		if stmt.OrderBy != nil {
			return nil, p.expectedError("end of input")
		}
		p.NextToken()
		if !p.expectPeek(IDENT) {
			return nil, p.expectedError("column name")
		}
		orderBy := &ast.OrderBy{Column: p.curToken.Literal, Direction: ast.Ascending}
		if p.peekTokenIs(ASC) {
			p.NextToken()
		} else if p.peekTokenIs(DESC) {
			p.NextToken()
			orderBy.Direction = ast.Descending
		}
		stmt.OrderBy = orderBy
	}

	if !p.peekTokenIs(EOF) {
		return nil, p.expectedError("end of input")
	}

	return stmt, nil
}

func (p *Parser) parseInsertStatement() (*ast.InsertStatement, error) {
	stmt := &ast.InsertStatement{}

	if !p.expectPeek(IDENT) {
		return nil, p.expectedError("table name")
	}
	stmt.TableName = p.curToken.Literal

	if !p.expectPeek(VALUES) {
		return nil, p.expectedError("values")
	}

	p.NextToken()
	values, err := p.parseLiteralList()
	if err != nil {
		return nil, err
	}
	stmt.Values = values

	if !p.peekTokenIs(EOF) {
		return nil, p.expectedError("end of input")
	}

	return stmt, nil
}

func (p *Parser) parseUpdateStatement() (*ast.UpdateStatement, error) {
	stmt := &ast.UpdateStatement{}

	if !p.expectPeek(IDENT) {
		return nil, p.expectedError("table name")
	}
	stmt.TableName = p.curToken.Literal

	if !p.expectPeek(SET) {
		return nil, p.expectedError("set")
	}

	for {
		if !p.expectPeek(IDENT) {
			return nil, p.expectedError("column name")
		}
		column := p.curToken.Literal

		if !p.expectPeek(EQ) {
			return nil, p.expectedError("=")
		}

		p.NextToken()
		value, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		stmt.Assignments = append(stmt.Assignments, ast.Assignment{Column: column, Value: value})

		if !p.peekTokenIs(COMMA) {
			break
		}
		p.NextToken()
	}

	if p.peekTokenIs(WHERE) {
		p.NextToken()
		p.NextToken()
		cond, err := p.parseConditionTree()
		if err != nil {
			return nil, err
		}
		stmt.Where = cond
	}

	if !p.peekTokenIs(EOF) {
		return nil, p.expectedError("end of input")
	}

	return stmt, nil
}

func (p *Parser) parseDeleteStatement() (*ast.DeleteStatement, error) {
	stmt := &ast.DeleteStatement{}

	if !p.expectPeek(IDENT) {
		return nil, p.expectedError("table name")
	}
	stmt.TableName = p.curToken.Literal

	if p.peekTokenIs(WHERE) {
		p.NextToken()
		p.NextToken()
		cond, err := p.parseConditionTree()
		if err != nil {
			return nil, err
		}
		stmt.Where = cond
	}

	if !p.peekTokenIs(EOF) {
		return nil, p.expectedError("end of input")
	}

	return stmt, nil
}

// parseDropColumnStatement handles the "delete column age from users"
// surface form.
func (p *Parser) parseDropColumnStatement() (*ast.AlterDropColumnStatement, error) {
	stmt := &ast.AlterDropColumnStatement{}

	if !p.expectPeek(IDENT) {
		return nil, p.expectedError("column name")
	}
	stmt.Column = p.curToken.Literal

	if !p.expectPeek(FROM) {
		return nil, p.expectedError("from")
	}
	if !p.expectPeek(IDENT) {
		return nil, p.expectedError("table name")
	}
	stmt.TableName = p.curToken.Literal

	if !p.peekTokenIs(EOF) {
		return nil, p.expectedError("end of input")
	}

	return stmt, nil
}

// parseAlterTableStatement handles the "alter table users drop column age"
// surface form; it normalizes to the same node as parseDropColumnStatement.
func (p *Parser) parseAlterTableStatement() (*ast.AlterDropColumnStatement, error) {
	stmt := &ast.AlterDropColumnStatement{}

	if !p.expectPeek(IDENT) {
		return nil, p.expectedError("table name")
	}
	stmt.TableName = p.curToken.Literal

	if !p.expectPeek(ALTER_DROP_COLUMN) {
		return nil, p.expectedError("drop column")
	}
	if !p.expectPeek(IDENT) {
		return nil, p.expectedError("column name")
	}
	stmt.Column = p.curToken.Literal

	if !p.peekTokenIs(EOF) {
		return nil, p.expectedError("end of input")
	}

	return stmt, nil
}

func aggKindFor(t TokenType) ast.AggKind {
	switch t {
	case COUNT_AGG:
		return ast.AggCount
	case SUM_AGG:
		return ast.AggSum
	case AVG_AGG:
		return ast.AggAvg
	case MIN_AGG:
		return ast.AggMin
	default:
		return ast.AggMax
	}
}
