package qom

import "fmt"

// AmbiguousKeyError reports that automatic foreign-key join resolution found
// zero or more than one candidate key between two tables. The join clause
// stays unresolved; the caller narrows the key or attaches an explicit
// condition instead.
type AmbiguousKeyError struct {
	Left       string
	Right      string
	Candidates int
}

func (e AmbiguousKeyError) Error() string {
	if e.Candidates == 0 {
		return fmt.Sprintf("no foreign key relates %q and %q", e.Left, e.Right)
	}
	return fmt.Sprintf("%d foreign keys relate %q and %q: narrow the key to disambiguate", e.Candidates, e.Left, e.Right)
}

// BindTypeError reports a bind value whose Go type cannot be passed to a SQL
// driver. Values are rejected at construction, never coerced.
type BindTypeError struct {
	Value any
}

func (e BindTypeError) Error() string {
	return fmt.Sprintf("unsupported bind value type %T", e.Value)
}
