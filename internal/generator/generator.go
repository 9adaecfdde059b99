package generator

import (
	"strings"

	"nlsql/internal/ast"
)

// Generate renders a statement as canonical SQL. It is pure and total:
// every statement the parser can produce renders, keywords uppercase,
// identifiers and literals keeping their input casing.
func Generate(stmt ast.Statement) string {
	switch s := stmt.(type) {
	case *ast.SelectStatement:
		return generateSelect(s)
	case *ast.InsertStatement:
		return generateInsert(s)
	case *ast.UpdateStatement:
		return generateUpdate(s)
	case *ast.DeleteStatement:
		return generateDelete(s)
	case *ast.AlterDropColumnStatement:
		return "ALTER TABLE " + s.TableName + " DROP COLUMN " + s.Column
	}
	return ""
}

func generateSelect(stmt *ast.SelectStatement) string {
	var sb strings.Builder

	sb.WriteString("SELECT ")
	if stmt.Distinct {
		sb.WriteString("DISTINCT ")
	}
	sb.WriteString(renderProjection(stmt.Projection))
	sb.WriteString(" FROM ")
	sb.WriteString(stmt.TableName)

	if stmt.Where != nil {
		sb.WriteString(" WHERE ")
		sb.WriteString(renderConditionTree(stmt.Where))
	}
	if stmt.GroupBy != "" {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(stmt.GroupBy)
	}
	if stmt.OrderBy != nil {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(stmt.OrderBy.Column)
		sb.WriteString(" ")
		sb.WriteString(string(stmt.OrderBy.Direction))
	}

	return sb.String()
}

func generateInsert(stmt *ast.InsertStatement) string {
	return "INSERT INTO " + stmt.TableName + " VALUES (" + renderLiteralList(stmt.Values) + ")"
}

func generateUpdate(stmt *ast.UpdateStatement) string {
	var sb strings.Builder

	sb.WriteString("UPDATE ")
	sb.WriteString(stmt.TableName)
	sb.WriteString(" SET ")
	for i, assignment := range stmt.Assignments {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(assignment.Column)
		sb.WriteString(" = ")
		sb.WriteString(renderLiteral(assignment.Value))
	}

	if stmt.Where != nil {
		sb.WriteString(" WHERE ")
		sb.WriteString(renderConditionTree(stmt.Where))
	}

	return sb.String()
}

func generateDelete(stmt *ast.DeleteStatement) string {
	sql := "DELETE FROM " + stmt.TableName
	if stmt.Where != nil {
		sql += " WHERE " + renderConditionTree(stmt.Where)
	}
	return sql
}

func renderProjection(projection ast.Projection) string {
	switch p := projection.(type) {
	case *ast.Wildcard:
		return "*"
	case *ast.Columns:
		return strings.Join(p.Names, ", ")
	case *ast.Aggregate:
		return string(p.Kind) + "(" + p.Target + ")"
	}
	return "*"
}

// renderConditionTree wraps the whole clause in exactly one pair of
// parentheses when it holds more than one predicate; a lone predicate
// renders bare.
func renderConditionTree(cond ast.Condition) string {
	switch cond.(type) {
	case *ast.And, *ast.Or:
		return "(" + renderCondition(cond) + ")"
	}
	return renderCondition(cond)
}

func renderCondition(cond ast.Condition) string {
	switch c := cond.(type) {
	case *ast.Comparison:
		return c.Column + " " + c.Op + " " + renderLiteral(c.Value)
	case *ast.Between:
		return c.Column + " BETWEEN " + renderLiteral(c.Low) + " AND " + renderLiteral(c.High)
	case *ast.InList:
		return c.Column + " IN (" + renderLiteralList(c.Values) + ")"
	case *ast.Like:
		return c.Column + " LIKE " + quote(c.Pattern)
	case *ast.And:
		return renderCondition(c.Left) + " AND " + renderCondition(c.Right)
	case *ast.Or:
		return renderCondition(c.Left) + " OR " + renderCondition(c.Right)
	}
	return ""
}

func renderLiteralList(values []ast.Literal) string {
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = renderLiteral(value)
	}
	return strings.Join(parts, ", ")
}

func renderLiteral(value ast.Literal) string {
	if value.IsString {
		return quote(value.Value)
	}
	return value.Value
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
