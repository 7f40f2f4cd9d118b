package qom

import "fmt"

// Column is a column reference, optionally qualified by a table name or
// alias. The qualifier is rendered as-is; the column name is quoted for the
// target dialect.
type Column struct {
	table string
	name  string
}

// TryCol creates a column reference, returning an error if the name is
// invalid.
func TryCol(name string) (*Column, error) {
	if !isValidIdent(name) {
		return nil, fmt.Errorf("invalid column name: %q", name)
	}
	return &Column{name: name}, nil
}

// Col creates a column reference.
func Col(name string) *Column {
	c, err := TryCol(name)
	if err != nil {
		panic(err)
	}
	return c
}

// WithTable returns a copy of the column qualified by a table alias or name.
func (c *Column) WithTable(tableOrAlias string) *Column {
	if !isValidAlias(tableOrAlias) && !isValidIdent(tableOrAlias) {
		panic(fmt.Errorf("invalid column qualifier: %q", tableOrAlias))
	}
	return &Column{table: tableOrAlias, name: c.name}
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Table returns the qualifier, or "" when unqualified.
func (c *Column) Table() string { return c.table }

// Kind returns KindColumn.
func (c *Column) Kind() Kind { return KindColumn }

// Args returns the qualifier and column name.
func (c *Column) Args() []any { return []any{c.table, c.name} }

// Replace returns the receiver; columns hold no child nodes.
func (c *Column) Replace(_ Replacer) Node { return c }

func (c *Column) isExpr() {}

func (c *Column) render(ctx *Context) error {
	if c.table != "" {
		ctx.SQL(c.table).SQL(".")
	}
	return ctx.Ident(c.name).Err()
}
