package generator

import (
	"fmt"
	"strings"

	"nlsql/internal/ast"
)

// Explain produces a short English description of what the statement does.
// Display only; the wording carries no contract beyond being non-empty.
func Explain(stmt ast.Statement) string {
	switch s := stmt.(type) {
	case *ast.SelectStatement:
		return explainSelect(s)
	case *ast.InsertStatement:
		return fmt.Sprintf("Inserts a row with %d value(s) into the %s table.", len(s.Values), s.TableName)
	case *ast.UpdateStatement:
		columns := make([]string, len(s.Assignments))
		for i, assignment := range s.Assignments {
			columns[i] = assignment.Column
		}
		explanation := fmt.Sprintf("Updates %s in the %s table", strings.Join(columns, ", "), s.TableName)
		if s.Where != nil {
			explanation += " for rows matching the condition"
		}
		return explanation + "."
	case *ast.DeleteStatement:
		if s.Where == nil {
			return fmt.Sprintf("Deletes every row from the %s table.", s.TableName)
		}
		return fmt.Sprintf("Deletes rows from the %s table matching the condition.", s.TableName)
	case *ast.AlterDropColumnStatement:
		return fmt.Sprintf("Removes the %s column from the %s table.", s.Column, s.TableName)
	}
	return ""
}

func explainSelect(stmt *ast.SelectStatement) string {
	var explanation string

	switch p := stmt.Projection.(type) {
	case *ast.Wildcard:
		explanation = fmt.Sprintf("Selects every column from the %s table", stmt.TableName)
	case *ast.Columns:
		explanation = fmt.Sprintf("Selects %s from the %s table", strings.Join(p.Names, ", "), stmt.TableName)
	case *ast.Aggregate:
		if p.Kind == ast.AggCount && p.Target == "*" {
			explanation = fmt.Sprintf("Counts the rows in the %s table", stmt.TableName)
		} else {
			explanation = fmt.Sprintf("Computes %s of %s in the %s table", strings.ToLower(string(p.Kind)), p.Target, stmt.TableName)
		}
	}

	if stmt.Distinct {
		explanation += ", keeping distinct results"
	}
	if stmt.Where != nil {
		explanation += ", filtered by the condition"
	}
	if stmt.GroupBy != "" {
		explanation += ", grouped by " + stmt.GroupBy
	}
	if stmt.OrderBy != nil {
		direction := "ascending"
		if stmt.OrderBy.Direction == ast.Descending {
			direction = "descending"
		}
		explanation += fmt.Sprintf(", ordered by %s %s", stmt.OrderBy.Column, direction)
	}

	return explanation + "."
}
