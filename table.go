package qom

import "fmt"

// Table is a table reference, optionally aliased. Aliases are restricted to a
// single lowercase letter so they never need quoting.
type Table struct {
	name  string
	alias string
}

// TryT creates a table reference, returning an error if the name or alias is
// invalid.
func TryT(name string, alias ...string) (*Table, error) {
	if !isValidIdent(name) {
		return nil, fmt.Errorf("invalid table name: %q", name)
	}
	t := &Table{name: name}
	if len(alias) > 0 {
		if !isValidAlias(alias[0]) {
			return nil, fmt.Errorf("table alias must be single lowercase letter (a-z), got: %s", alias[0])
		}
		t.alias = alias[0]
	}
	return t, nil
}

// T creates a table reference.
func T(name string, alias ...string) *Table {
	t, err := TryT(name, alias...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Alias returns the table alias, or "" when unaliased.
func (t *Table) Alias() string { return t.alias }

// Col creates a column reference qualified by this table's alias (or name).
func (t *Table) Col(name string) *Column {
	return Col(name).WithTable(t.qualifier())
}

// qualifier is the prefix other nodes use to reference this table's columns.
func (t *Table) qualifier() string {
	if t.alias != "" {
		return t.alias
	}
	return t.name
}

// Kind returns KindTable.
func (t *Table) Kind() Kind { return KindTable }

// Args returns the table name and alias.
func (t *Table) Args() []any { return []any{t.name, t.alias} }

// Replace returns the receiver; tables hold no child nodes.
func (t *Table) Replace(_ Replacer) Node { return t }

func (t *Table) render(ctx *Context) error {
	ctx.Ident(t.name)
	if t.alias != "" {
		ctx.SQL(" ").SQL(t.alias)
	}
	return ctx.Err()
}

// isValidAlias checks for a single lowercase letter.
func isValidAlias(alias string) bool {
	return len(alias) == 1 && alias[0] >= 'a' && alias[0] <= 'z'
}

// isValidIdent accepts identifiers made of letters, digits and underscores,
// starting with a letter or underscore. Everything else must go through
// quoting at a higher layer and is rejected here.
func isValidIdent(s string) bool {
	if s == "" {
		return false
	}
	first := s[0]
	if !((first >= 'a' && first <= 'z') ||
		(first >= 'A' && first <= 'Z') ||
		first == '_') {
		return false
	}
	for i := 1; i < len(s); i++ {
		ch := s[i]
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '_') {
			return false
		}
	}
	return true
}
