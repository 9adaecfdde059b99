package pipeline

import (
	"errors"
	"testing"
)

func run(t *testing.T, text string) Result {
	t.Helper()
	result, err := Run(text)
	if err != nil {
		t.Fatalf("Run(%q) failed: %v", text, err)
	}
	return result
}

func TestScenarios(t *testing.T) {
	cases := []struct {
		text string
		sql  string
	}{
		{"select all from users", "SELECT * FROM users"},
		{"count users", "SELECT COUNT(*) FROM users"},
		{"select users where age > 20 and salary < 5000", "SELECT * FROM users WHERE (age > 20 AND salary < 5000)"},
		{"select users where age between 20 and 30", "SELECT * FROM users WHERE age BETWEEN 20 AND 30"},
		{"find users where name contains 'an'", "SELECT * FROM users WHERE name LIKE '%an%'"},
		{"delete column age from users", "ALTER TABLE users DROP COLUMN age"},
	}

	for _, tc := range cases {
		result := run(t, tc.text)
		if result.SQL != tc.sql {
			t.Errorf("Run(%q).SQL = %q, expected %q", tc.text, result.SQL, tc.sql)
		}
		if result.Explanation == "" {
			t.Errorf("Run(%q) produced an empty explanation", tc.text)
		}
	}
}

func TestMissingFromIsStructured(t *testing.T) {
	_, err := Run("select where")
	if err == nil {
		t.Fatal("expected an error for a select with no table")
	}

	var pipelineErr *Error
	if !errors.As(err, &pipelineErr) {
		t.Fatalf("expected *pipeline.Error, got %T", err)
	}
	if pipelineErr.Stage != "parser" {
		t.Errorf("expected stage parser, got %q", pipelineErr.Stage)
	}
	if pipelineErr.Kind != "ExpectedToken" {
		t.Errorf("expected kind ExpectedToken, got %q", pipelineErr.Kind)
	}
}

func TestUnterminatedStringIsStructured(t *testing.T) {
	_, err := Run("find users where name contains 'an")
	if err == nil {
		t.Fatal("expected an error for an unterminated string")
	}

	var pipelineErr *Error
	if !errors.As(err, &pipelineErr) {
		t.Fatalf("expected *pipeline.Error, got %T", err)
	}
	if pipelineErr.Stage != "lexer" {
		t.Errorf("expected stage lexer, got %q", pipelineErr.Stage)
	}
	if pipelineErr.Kind != "UnterminatedString" {
		t.Errorf("expected kind UnterminatedString, got %q", pipelineErr.Kind)
	}
}

func TestDeterminism(t *testing.T) {
	inputs := []string{
		"select all from users",
		"select users where a > 1 or b > 2 and c > 3",
		"complete nonsense input here",
		"select where",
	}

	for _, input := range inputs {
		first, firstErr := Run(input)
		second, secondErr := Run(input)

		if first != second {
			t.Errorf("Run(%q) was not deterministic: %v vs %v", input, first, second)
		}
		if (firstErr == nil) != (secondErr == nil) {
			t.Errorf("Run(%q) error behavior was not deterministic", input)
		}
		if firstErr != nil && secondErr != nil && firstErr.Error() != secondErr.Error() {
			t.Errorf("Run(%q) errors differ: %v vs %v", input, firstErr, secondErr)
		}
	}
}

// Degenerate inputs must come back as structured errors, never a panic.
func TestTotality(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"????",
		"where where where",
		"select",
		"insert into",
		"update users set",
		"count",
		"select all from users where",
	}

	for _, input := range inputs {
		_, err := Run(input)
		if err == nil {
			continue
		}
		var pipelineErr *Error
		if !errors.As(err, &pipelineErr) {
			t.Errorf("Run(%q) returned %T outside the error taxonomy", input, err)
		}
	}
}
