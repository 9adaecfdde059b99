package generator

import (
	"strings"
	"testing"

	"nlsql/internal/ast"
)

func assertSQL(t *testing.T, stmt ast.Statement, expected string) {
	t.Helper()
	sql := Generate(stmt)
	if sql != expected {
		t.Errorf("Generate() = %q, expected %q", sql, expected)
	}
}

func TestGenerateSelect(t *testing.T) {
	assertSQL(t, &ast.SelectStatement{
		Projection: &ast.Wildcard{},
		TableName:  "users",
	}, "SELECT * FROM users")

	assertSQL(t, &ast.SelectStatement{
		Distinct:   true,
		Projection: &ast.Columns{Names: []string{"name", "email"}},
		TableName:  "users",
		OrderBy:    &ast.OrderBy{Column: "name", Direction: ast.Ascending},
	}, "SELECT DISTINCT name, email FROM users ORDER BY name ASC")

	assertSQL(t, &ast.SelectStatement{
		Projection: &ast.Aggregate{Kind: ast.AggCount, Target: "*"},
		TableName:  "users",
	}, "SELECT COUNT(*) FROM users")

	assertSQL(t, &ast.SelectStatement{
		Projection: &ast.Aggregate{Kind: ast.AggSum, Target: "salary"},
		TableName:  "employees",
		GroupBy:    "department",
	}, "SELECT SUM(salary) FROM employees GROUP BY department")
}

func TestSinglePredicateUnparenthesized(t *testing.T) {
	assertSQL(t, &ast.SelectStatement{
		Projection: &ast.Wildcard{},
		TableName:  "users",
		Where:      &ast.Comparison{Column: "age", Op: ">", Value: ast.Literal{Value: "20"}},
	}, "SELECT * FROM users WHERE age > 20")
}

func TestMultiPredicateSingleOuterParens(t *testing.T) {
	assertSQL(t, &ast.SelectStatement{
		Projection: &ast.Wildcard{},
		TableName:  "users",
		Where: &ast.And{
			Left:  &ast.Comparison{Column: "age", Op: ">", Value: ast.Literal{Value: "20"}},
			Right: &ast.Comparison{Column: "salary", Op: "<", Value: ast.Literal{Value: "5000"}},
		},
	}, "SELECT * FROM users WHERE (age > 20 AND salary < 5000)")

	// Three chained predicates still get exactly one outer pair.
	assertSQL(t, &ast.SelectStatement{
		Projection: &ast.Wildcard{},
		TableName:  "users",
		Where: &ast.Or{
			Left: &ast.And{
				Left:  &ast.Comparison{Column: "a", Op: ">", Value: ast.Literal{Value: "1"}},
				Right: &ast.Comparison{Column: "b", Op: ">", Value: ast.Literal{Value: "2"}},
			},
			Right: &ast.Comparison{Column: "c", Op: ">", Value: ast.Literal{Value: "3"}},
		},
	}, "SELECT * FROM users WHERE (a > 1 AND b > 2 OR c > 3)")
}

func TestGenerateConditionForms(t *testing.T) {
	assertSQL(t, &ast.SelectStatement{
		Projection: &ast.Wildcard{},
		TableName:  "users",
		Where:      &ast.Between{Column: "age", Low: ast.Literal{Value: "20"}, High: ast.Literal{Value: "30"}},
	}, "SELECT * FROM users WHERE age BETWEEN 20 AND 30")

	assertSQL(t, &ast.SelectStatement{
		Projection: &ast.Wildcard{},
		TableName:  "users",
		Where:      &ast.InList{Column: "id", Values: []ast.Literal{{Value: "1"}, {Value: "2"}}},
	}, "SELECT * FROM users WHERE id IN (1, 2)")

	assertSQL(t, &ast.SelectStatement{
		Projection: &ast.Wildcard{},
		TableName:  "users",
		Where:      &ast.Like{Column: "name", Pattern: "%an%"},
	}, "SELECT * FROM users WHERE name LIKE '%an%'")
}

func TestGenerateInsert(t *testing.T) {
	assertSQL(t, &ast.InsertStatement{
		TableName: "users",
		Values: []ast.Literal{
			{Value: "Alice", IsString: true},
			{Value: "30"},
		},
	}, "INSERT INTO users VALUES ('Alice', 30)")
}

func TestGenerateUpdate(t *testing.T) {
	assertSQL(t, &ast.UpdateStatement{
		TableName: "users",
		Assignments: []ast.Assignment{
			{Column: "name", Value: ast.Literal{Value: "Bob", IsString: true}},
			{Column: "age", Value: ast.Literal{Value: "31"}},
		},
		Where: &ast.Comparison{Column: "id", Op: "=", Value: ast.Literal{Value: "7"}},
	}, "UPDATE users SET name = 'Bob', age = 31 WHERE id = 7")
}

func TestGenerateDelete(t *testing.T) {
	assertSQL(t, &ast.DeleteStatement{TableName: "sessions"}, "DELETE FROM sessions")

	assertSQL(t, &ast.DeleteStatement{
		TableName: "users",
		Where:     &ast.Comparison{Column: "age", Op: "<", Value: ast.Literal{Value: "18"}},
	}, "DELETE FROM users WHERE age < 18")
}

func TestGenerateAlterDropColumn(t *testing.T) {
	assertSQL(t, &ast.AlterDropColumnStatement{TableName: "users", Column: "age"},
		"ALTER TABLE users DROP COLUMN age")
}

func TestStringEscaping(t *testing.T) {
	assertSQL(t, &ast.UpdateStatement{
		TableName: "users",
		Assignments: []ast.Assignment{
			{Column: "name", Value: ast.Literal{Value: "O'Brien", IsString: true}},
		},
	}, "UPDATE users SET name = 'O''Brien'")
}

func TestIdentifierCasePreserved(t *testing.T) {
	sql := Generate(&ast.SelectStatement{
		Projection: &ast.Columns{Names: []string{"FirstName"}},
		TableName:  "Users",
	})
	if sql != "SELECT FirstName FROM Users" {
		t.Errorf("expected identifier casing to survive, got %q", sql)
	}
}

func TestExplainNonEmpty(t *testing.T) {
	statements := []ast.Statement{
		&ast.SelectStatement{Projection: &ast.Wildcard{}, TableName: "users"},
		&ast.SelectStatement{Projection: &ast.Aggregate{Kind: ast.AggCount, Target: "*"}, TableName: "users"},
		&ast.InsertStatement{TableName: "users", Values: []ast.Literal{{Value: "1"}}},
		&ast.UpdateStatement{TableName: "users", Assignments: []ast.Assignment{{Column: "age", Value: ast.Literal{Value: "1"}}}},
		&ast.DeleteStatement{TableName: "users"},
		&ast.AlterDropColumnStatement{TableName: "users", Column: "age"},
	}

	for _, stmt := range statements {
		explanation := Explain(stmt)
		if strings.TrimSpace(explanation) == "" {
			t.Errorf("Explain(%T) returned an empty explanation", stmt)
		}
	}
}
