// Package testing provides test utilities for qom.
package testing

import (
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/qom"
)

// TestCatalog creates a fully-featured catalog for testing. Includes users,
// posts, comments, and orders tables with their foreign keys; orders carries
// two keys into users so disambiguation paths are reachable.
func TestCatalog(t *testing.T) *qom.Catalog {
	t.Helper()

	catalog, err := qom.NewCatalog(testSchema(), testForeignKeys()...)
	if err != nil {
		t.Fatalf("Failed to create test catalog: %v", err)
	}
	return catalog
}

func testSchema() *dbml.Project {
	project := dbml.NewProject("test")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	users.AddColumn(dbml.NewColumn("age", "int"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
	users.AddColumn(dbml.NewColumn("created_at", "timestamp"))
	project.AddTable(users)

	posts := dbml.NewTable("posts")
	posts.AddColumn(dbml.NewColumn("id", "bigint"))
	posts.AddColumn(dbml.NewColumn("user_id", "bigint"))
	posts.AddColumn(dbml.NewColumn("title", "varchar"))
	posts.AddColumn(dbml.NewColumn("body", "text"))
	posts.AddColumn(dbml.NewColumn("published", "boolean"))
	posts.AddColumn(dbml.NewColumn("created_at", "timestamp"))
	project.AddTable(posts)

	comments := dbml.NewTable("comments")
	comments.AddColumn(dbml.NewColumn("id", "bigint"))
	comments.AddColumn(dbml.NewColumn("post_id", "bigint"))
	comments.AddColumn(dbml.NewColumn("user_id", "bigint"))
	comments.AddColumn(dbml.NewColumn("body", "text"))
	comments.AddColumn(dbml.NewColumn("created_at", "timestamp"))
	project.AddTable(comments)

	orders := dbml.NewTable("orders")
	orders.AddColumn(dbml.NewColumn("id", "bigint"))
	orders.AddColumn(dbml.NewColumn("user_id", "bigint"))
	orders.AddColumn(dbml.NewColumn("approved_by", "bigint"))
	orders.AddColumn(dbml.NewColumn("total", "numeric"))
	orders.AddColumn(dbml.NewColumn("status", "varchar"))
	project.AddTable(orders)

	return project
}

func testForeignKeys() []qom.ForeignKey {
	return []qom.ForeignKey{
		{Table: "posts", Columns: []string{"user_id"}, RefTable: "users", RefColumns: []string{"id"}},
		{Table: "comments", Columns: []string{"post_id"}, RefTable: "posts", RefColumns: []string{"id"}},
		{Table: "comments", Columns: []string{"user_id"}, RefTable: "users", RefColumns: []string{"id"}},
		{Table: "orders", Columns: []string{"user_id"}, RefTable: "users", RefColumns: []string{"id"}},
		{Table: "orders", Columns: []string{"approved_by"}, RefTable: "users", RefColumns: []string{"id"}},
	}
}

// AssertSQL compares expected and actual SQL, reporting detailed differences.
func AssertSQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertBinds checks that bind values match in order.
func AssertBinds(t *testing.T, expected, actual []any) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Errorf("Bind count mismatch: expected %d, got %d\nExpected: %v\nActual: %v",
			len(expected), len(actual), expected, actual)
		return
	}
	for i := range expected {
		if expected[i] != actual[i] {
			t.Errorf("Bind %d mismatch: expected %v, got %v", i, expected[i], actual[i])
		}
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertPanics verifies that a function panics.
func AssertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic but function completed normally")
		}
	}()
	fn()
}
