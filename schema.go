package qom

import (
	"fmt"

	"github.com/zoobzio/dbml"
)

// ForeignKey declares a relationship between two catalog tables: Columns on
// Table reference RefColumns on RefTable, pairwise in order.
type ForeignKey struct {
	Table      string
	Columns    []string
	RefTable   string
	RefColumns []string
}

type tablePair struct {
	a, b string
}

func pairOf(a, b string) tablePair {
	if b < a {
		a, b = b, a
	}
	return tablePair{a: a, b: b}
}

// Catalog indexes a DBML project plus its foreign keys for join resolution.
// A catalog is immutable once constructed, so concurrent reads need no
// locking; Reload produces a successor with a bumped version, and queries
// resolved against an older version keep the conditions they resolved to.
type Catalog struct {
	version int
	project *dbml.Project
	tables  map[string]*dbml.Table
	columns map[string]map[string]*dbml.Column // table -> column name -> column
	keys    map[tablePair][]ForeignKey
}

// NewCatalog builds a catalog from a DBML project and its foreign keys. Every
// key must reference tables and columns the project declares, with matching
// column arity on both sides.
func NewCatalog(project *dbml.Project, keys ...ForeignKey) (*Catalog, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	c := &Catalog{
		version: 1,
		project: project,
		tables:  make(map[string]*dbml.Table),
		columns: make(map[string]map[string]*dbml.Column),
		keys:    make(map[tablePair][]ForeignKey),
	}

	for _, table := range project.Tables {
		c.tables[table.Name] = table
		c.columns[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			c.columns[table.Name][col.Name] = col
		}
	}

	for _, fk := range keys {
		if err := c.validateKey(fk); err != nil {
			return nil, err
		}
		p := pairOf(fk.Table, fk.RefTable)
		c.keys[p] = append(c.keys[p], fk)
	}

	return c, nil
}

func (c *Catalog) validateKey(fk ForeignKey) error {
	if len(fk.Columns) == 0 {
		return fmt.Errorf("foreign key %s -> %s has no columns", fk.Table, fk.RefTable)
	}
	if len(fk.Columns) != len(fk.RefColumns) {
		return fmt.Errorf("foreign key %s -> %s has %d columns but %d referenced columns",
			fk.Table, fk.RefTable, len(fk.Columns), len(fk.RefColumns))
	}
	for i := range fk.Columns {
		if !c.HasColumn(fk.Table, fk.Columns[i]) {
			return fmt.Errorf("foreign key column %s.%s not found in schema", fk.Table, fk.Columns[i])
		}
		if !c.HasColumn(fk.RefTable, fk.RefColumns[i]) {
			return fmt.Errorf("foreign key column %s.%s not found in schema", fk.RefTable, fk.RefColumns[i])
		}
	}
	return nil
}

// Reload builds a catalog for a changed schema, with the version bumped past
// the receiver's. The receiver is never modified and stays valid for
// concurrent readers; existing resolved queries are unaffected.
func (c *Catalog) Reload(project *dbml.Project, keys ...ForeignKey) (*Catalog, error) {
	next, err := NewCatalog(project, keys...)
	if err != nil {
		return nil, err
	}
	next.version = c.version + 1
	return next, nil
}

// Version returns the current schema version, starting at 1.
func (c *Catalog) Version() int { return c.version }

// HasTable reports whether the schema declares the table.
func (c *Catalog) HasTable(name string) bool {
	_, ok := c.tables[name]
	return ok
}

// HasColumn reports whether the schema declares the column on the table.
func (c *Catalog) HasColumn(table, column string) bool {
	cols, ok := c.columns[table]
	if !ok {
		return false
	}
	_, ok = cols[column]
	return ok
}

// KeysBetween returns every foreign key relating the two tables, in either
// direction, in registration order.
func (c *Catalog) KeysBetween(a, b string) []ForeignKey {
	found := c.keys[pairOf(a, b)]
	out := make([]ForeignKey, len(found))
	copy(out, found)
	return out
}
