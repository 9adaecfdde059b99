package integration

import (
	"errors"
	"testing"

	"nlsql/internal/pipeline"
)

func translate(t *testing.T, text string) pipeline.Result {
	t.Helper()
	result, err := pipeline.Run(text)
	if err != nil {
		t.Fatalf("Run(%q) failed: %v", text, err)
	}
	return result
}

func assertSQL(t *testing.T, text string, expected string) {
	t.Helper()
	result := translate(t, text)
	if result.SQL != expected {
		t.Errorf("Run(%q).SQL = %q, expected %q", text, result.SQL, expected)
	}
}

func TestSelectAll(t *testing.T) {
	assertSQL(t, "select all from users", "SELECT * FROM users")
}

func TestCountShorthand(t *testing.T) {
	assertSQL(t, "count users", "SELECT COUNT(*) FROM users")
}

func TestWhereChain(t *testing.T) {
	assertSQL(t, "select users where age > 20 and salary < 5000",
		"SELECT * FROM users WHERE (age > 20 AND salary < 5000)")
}

func TestBetween(t *testing.T) {
	assertSQL(t, "select users where age between 20 and 30",
		"SELECT * FROM users WHERE age BETWEEN 20 AND 30")
}

func TestContains(t *testing.T) {
	assertSQL(t, "find users where name contains 'an'",
		"SELECT * FROM users WHERE name LIKE '%an%'")
}

func TestDropColumn(t *testing.T) {
	assertSQL(t, "delete column age from users", "ALTER TABLE users DROP COLUMN age")
}

func TestSynonymSurfaces(t *testing.T) {
	assertSQL(t, "show everything from orders", "SELECT * FROM orders")
	assertSQL(t, "how many orders", "SELECT COUNT(*) FROM orders")
	assertSQL(t, "get name, email from customers sorted by name descending",
		"SELECT name, email FROM customers ORDER BY name DESC")
	assertSQL(t, "remove from sessions", "DELETE FROM sessions")
}

func TestOperatorPhrases(t *testing.T) {
	assertSQL(t, "select employees where salary greater than or equal to 50000",
		"SELECT * FROM employees WHERE salary >= 50000")
	assertSQL(t, "select users where status is 'active'",
		"SELECT * FROM users WHERE status = 'active'")
	assertSQL(t, "select users where role different from 'admin'",
		"SELECT * FROM users WHERE role != 'admin'")
}

func TestWriteStatements(t *testing.T) {
	assertSQL(t, "insert into users values ('Alice', 30)",
		"INSERT INTO users VALUES ('Alice', 30)")
	assertSQL(t, "update users set age = 31 where name = 'Alice'",
		"UPDATE users SET age = 31 WHERE name = 'Alice'")
	assertSQL(t, "delete from users where age < 18",
		"DELETE FROM users WHERE age < 18")
	assertSQL(t, "alter table users drop column age",
		"ALTER TABLE users DROP COLUMN age")
}

func TestMissingTableIsRejected(t *testing.T) {
	_, err := pipeline.Run("select where")
	if err == nil {
		t.Fatal("expected an error for a select with no table")
	}

	var pipelineErr *pipeline.Error
	if !errors.As(err, &pipelineErr) {
		t.Fatalf("expected *pipeline.Error, got %T", err)
	}
	if pipelineErr.Kind != "ExpectedToken" {
		t.Errorf("expected kind ExpectedToken, got %q", pipelineErr.Kind)
	}
}
