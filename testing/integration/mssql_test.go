package integration

import (
	"testing"

	"github.com/zoobzio/qom"
)

func setupMSSQLSchema(t *testing.T, c *MSSQLContainer) {
	t.Helper()

	statements := []string{
		`IF OBJECT_ID('posts', 'U') IS NOT NULL DROP TABLE posts`,
		`IF OBJECT_ID('users', 'U') IS NOT NULL DROP TABLE users`,
		`CREATE TABLE users (
			id BIGINT PRIMARY KEY,
			username NVARCHAR(64) NOT NULL,
			email NVARCHAR(128),
			age INT,
			active BIT DEFAULT 1
		)`,
		`CREATE TABLE posts (
			id BIGINT PRIMARY KEY,
			user_id BIGINT REFERENCES users(id),
			title NVARCHAR(128) NOT NULL,
			published BIT DEFAULT 0
		)`,
		`INSERT INTO users (id, username, email, age, active) VALUES
			(1, 'alice', 'alice@example.com', 30, 1),
			(2, 'bob', 'bob@example.com', 25, 1),
			(3, 'charlie', NULL, 35, 0)`,
		`INSERT INTO posts (id, user_id, title, published) VALUES
			(1, 1, 'First Post', 1),
			(2, 1, 'Second Post', 0),
			(3, 2, 'Bobs Post', 1)`,
	}
	for _, stmt := range statements {
		if _, err := c.db.Exec(stmt); err != nil {
			t.Fatalf("Failed to execute setup SQL: %v\nSQL: %s", err, stmt)
		}
	}
}

// TestMSSQLIntegration_AtPlaceholders verifies @pN binds execute in order.
func TestMSSQLIntegration_AtPlaceholders(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	c := getMSSQLContainer(t)
	setupMSSQLSchema(t, c)

	users := qom.T("users", "u")
	q := qom.Select(users.Col("username")).From(users).
		Where(qom.And(
			qom.Eq(users.Col("active"), qom.Val(true)),
			qom.Gt(users.Col("age"), qom.Val(27)),
		))

	result, err := qom.Render(q, qom.SQLServer)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	rows, err := c.db.Query(result.SQL, result.Binds...)
	if err != nil {
		t.Fatalf("Query failed: %v\nSQL: %s", err, result.SQL)
	}
	defer rows.Close()

	var usernames []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		usernames = append(usernames, username)
	}

	if len(usernames) != 1 || usernames[0] != "alice" {
		t.Errorf("Expected [alice], got %v", usernames)
	}
}

// TestMSSQLIntegration_UsingEmulation runs a USING join against a server
// without USING support; the emulated ON chain must execute.
func TestMSSQLIntegration_UsingEmulation(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	c := getMSSQLContainer(t)
	setupMSSQLSchema(t, c)

	a := qom.T("users", "a")
	b := qom.T("users", "b")
	j := qom.Join(a, b, qom.InnerJoin)
	if err := j.Using(qom.Col("id")); err != nil {
		t.Fatalf("Using failed: %v", err)
	}

	result, err := qom.Render(qom.Select(a.Col("username")).From(j), qom.SQLServer)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	rows, err := c.db.Query(result.SQL)
	if err != nil {
		t.Fatalf("Query failed: %v\nSQL: %s", err, result.SQL)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		count++
	}
	if count != 3 {
		t.Errorf("Expected 3 rows, got %d", count)
	}
}

// TestMSSQLIntegration_CaseProjection runs a simple CASE against SQL Server.
func TestMSSQLIntegration_CaseProjection(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	c := getMSSQLContainer(t)
	setupMSSQLSchema(t, c)

	users := qom.T("users", "u")
	q := qom.Select(
		qom.Case(users.Col("active")).
			When(qom.Val(true), qom.Val("enabled")).
			Else(qom.Val("disabled")),
	).From(users).Where(qom.Eq(users.Col("username"), qom.Val("charlie")))

	result, err := qom.Render(q, qom.SQLServer)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	rows, err := c.db.Query(result.SQL, result.Binds...)
	if err != nil {
		t.Fatalf("Query failed: %v\nSQL: %s", err, result.SQL)
	}
	defer rows.Close()

	if !rows.Next() {
		t.Fatal("Expected one row")
	}
	var status string
	if err := rows.Scan(&status); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if status != "disabled" {
		t.Errorf("Expected 'disabled', got %q", status)
	}
}
