// Package qom models SQL statements as an immutable query object model: a
// tree of typed nodes that can be traversed, functionally rewritten, and
// rendered to dialect-specific SQL with an ordered list of bind values.
//
// # Building trees
//
// Nodes are created through validated constructors and composed bottom-up:
//
//	users := qom.T("users", "u")
//	posts := qom.T("posts", "p")
//
//	j := qom.Join(users, posts, qom.InnerJoin)
//	if err := j.OnKey(catalog); err != nil {
//		return err
//	}
//
//	q := qom.Select(
//		users.Col("username"),
//		qom.Case(posts.Col("published")).
//			When(qom.Val(1), qom.Val("live")).
//			Else(qom.Val("draft")),
//	).From(j)
//
// # Rendering
//
//	result, err := qom.Render(q, qom.Postgres)
//	// result.SQL:   SELECT u."username", CASE p."published" WHEN $1 THEN $2 ELSE $3 END FROM ...
//	// result.Binds: []any{1, "live", "draft"}
//
// Bind values appear in result.Binds in exactly the order their placeholders
// occur in result.SQL. Each Render call allocates fresh rendering state, so
// the same tree may be rendered concurrently for different dialects.
//
// # Traversal and rewriting
//
// Traverse folds a function over every node and argument value in a fixed
// pre-order. Rewrite produces a new tree with substituted children while
// sharing unchanged subtrees; a rewrite that changes nothing returns the
// original node references.
//
// # Schema metadata
//
// A Catalog wraps a DBML project plus declared foreign keys. It is built once,
// treated as read-only, and passed explicitly into join resolution.
package qom

// Kind identifies a node type in the query object model.
type Kind uint8

const (
	KindTable Kind = iota
	KindColumn
	KindBind
	KindComparison
	KindConditionGroup
	KindCaseSimple
	KindCaseSearched
	KindJoin
	KindSelect
)

// String returns the display name for a node kind.
func (k Kind) String() string {
	switch k {
	case KindTable:
		return "table"
	case KindColumn:
		return "column"
	case KindBind:
		return "bind"
	case KindComparison:
		return "comparison"
	case KindConditionGroup:
		return "condition group"
	case KindCaseSimple:
		return "case"
	case KindCaseSearched:
		return "searched case"
	case KindJoin:
		return "join"
	case KindSelect:
		return "select"
	default:
		return "unknown"
	}
}

// Node is one element of the query object model. Nodes are immutable after
// construction; their identity is the pair (kind, ordered argument values).
//
// The node set is closed: rendering dispatches on an unexported method, so
// every kind carries an explicit strategy (native or emulated) per dialect.
type Node interface {
	// Kind returns the node's type tag.
	Kind() Kind

	// Args returns the node's ordered argument values. Arguments may be
	// nodes, tuples, slices of either, or plain scalars; the order matches
	// source position in rendered output.
	Args() []any

	// Replace applies f to each directly held child node and returns a node
	// of the same kind with the substituted children. If f leaves every
	// child unchanged, the receiver itself is returned.
	Replace(f Replacer) Node

	render(ctx *Context) error
}

// Replacer maps a child node to its replacement. Returning the argument
// unchanged signals "no change"; substituting a value whose type does not fit
// the parent's argument slot is a caller error.
type Replacer func(Node) Node

// Expr is a node that yields a value (a column, a bind value, a CASE
// expression, ...).
type Expr interface {
	Node
	isExpr()
}

// ConditionItem is a node that yields a boolean predicate.
type ConditionItem interface {
	Node
	isConditionItem()
}
