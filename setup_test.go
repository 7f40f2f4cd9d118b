package qom

import (
	"testing"

	"github.com/zoobzio/dbml"
)

// testProject builds the schema shared by most tests: a small blog model plus
// an orders table with two distinct keys into users, for disambiguation tests.
func testProject() *dbml.Project {
	project := dbml.NewProject("test")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
	project.AddTable(users)

	posts := dbml.NewTable("posts")
	posts.AddColumn(dbml.NewColumn("id", "bigint"))
	posts.AddColumn(dbml.NewColumn("user_id", "bigint"))
	posts.AddColumn(dbml.NewColumn("title", "varchar"))
	posts.AddColumn(dbml.NewColumn("published", "boolean"))
	project.AddTable(posts)

	comments := dbml.NewTable("comments")
	comments.AddColumn(dbml.NewColumn("id", "bigint"))
	comments.AddColumn(dbml.NewColumn("post_id", "bigint"))
	comments.AddColumn(dbml.NewColumn("user_id", "bigint"))
	comments.AddColumn(dbml.NewColumn("body", "text"))
	project.AddTable(comments)

	orders := dbml.NewTable("orders")
	orders.AddColumn(dbml.NewColumn("id", "bigint"))
	orders.AddColumn(dbml.NewColumn("user_id", "bigint"))
	orders.AddColumn(dbml.NewColumn("approved_by", "bigint"))
	orders.AddColumn(dbml.NewColumn("total", "decimal"))
	project.AddTable(orders)

	return project
}

func testKeys() []ForeignKey {
	return []ForeignKey{
		{Table: "posts", Columns: []string{"user_id"}, RefTable: "users", RefColumns: []string{"id"}},
		{Table: "comments", Columns: []string{"post_id"}, RefTable: "posts", RefColumns: []string{"id"}},
		{Table: "comments", Columns: []string{"user_id"}, RefTable: "users", RefColumns: []string{"id"}},
		{Table: "orders", Columns: []string{"user_id"}, RefTable: "users", RefColumns: []string{"id"}},
		{Table: "orders", Columns: []string{"approved_by"}, RefTable: "users", RefColumns: []string{"id"}},
	}
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	catalog, err := NewCatalog(testProject(), testKeys()...)
	if err != nil {
		t.Fatalf("NewCatalog() unexpected error: %v", err)
	}
	return catalog
}

// assertSQL renders n for a dialect and compares the SQL text and bind list.
func assertSQL(t *testing.T, n Node, d Dialect, wantSQL string, wantBinds ...any) {
	t.Helper()
	result, err := Render(n, d)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if result.SQL != wantSQL {
		t.Errorf("SQL = %q, want %q", result.SQL, wantSQL)
	}
	if len(result.Binds) != len(wantBinds) {
		t.Fatalf("got %d binds, want %d: %v", len(result.Binds), len(wantBinds), result.Binds)
	}
	for i := range wantBinds {
		if result.Binds[i] != wantBinds[i] {
			t.Errorf("bind %d = %v, want %v", i, result.Binds[i], wantBinds[i])
		}
	}
}
