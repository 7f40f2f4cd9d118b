package qom

import (
	"fmt"

	"github.com/zoobzio/qom/internal/render"
)

// JoinKind selects the join operator keyword.
type JoinKind string

const (
	InnerJoin      JoinKind = "JOIN"
	LeftOuterJoin  JoinKind = "LEFT OUTER JOIN"
	RightOuterJoin JoinKind = "RIGHT OUTER JOIN"
	FullOuterJoin  JoinKind = "FULL OUTER JOIN"
	CrossJoin      JoinKind = "CROSS JOIN"
)

// JoinClause joins two table references. A clause starts unresolved and
// accepts exactly one join criterion: an explicit condition, a USING column
// list, or a foreign key looked up in a catalog. Cross joins take no criterion
// and start resolved. Rendering an unresolved clause is an error.
type JoinClause struct {
	left     *Table
	right    *Table
	kind     JoinKind
	resolved bool
	on       ConditionItem
	using    []*Column
}

// Join creates a join clause between two tables.
func Join(left, right *Table, kind JoinKind) *JoinClause {
	return &JoinClause{
		left:     left,
		right:    right,
		kind:     kind,
		resolved: kind == CrossJoin,
	}
}

func (j *JoinClause) guard() error {
	if j.kind == CrossJoin {
		return fmt.Errorf("cross join takes no join criterion")
	}
	if j.resolved {
		return fmt.Errorf("join between %q and %q already has a criterion", j.left.Name(), j.right.Name())
	}
	return nil
}

// On resolves the clause with an explicit condition.
func (j *JoinClause) On(condition ConditionItem) error {
	if err := j.guard(); err != nil {
		return err
	}
	if condition == nil {
		return fmt.Errorf("join condition cannot be nil")
	}
	j.on = condition
	j.resolved = true
	return nil
}

// Using resolves the clause with a shared-column list.
func (j *JoinClause) Using(columns ...*Column) error {
	if err := j.guard(); err != nil {
		return err
	}
	if len(columns) == 0 {
		return fmt.Errorf("USING requires at least one column")
	}
	j.using = columns
	j.resolved = true
	return nil
}

// OnKey resolves the clause from the catalog's foreign keys relating the two
// tables. Passing columns narrows the candidates to keys whose referencing
// columns match exactly. Anything other than one surviving candidate leaves
// the clause unresolved and returns an AmbiguousKeyError.
func (j *JoinClause) OnKey(catalog *Catalog, columns ...*Column) error {
	if err := j.guard(); err != nil {
		return err
	}
	candidates := catalog.KeysBetween(j.left.Name(), j.right.Name())
	if len(columns) > 0 {
		names := make(map[string]bool, len(columns))
		for _, c := range columns {
			names[c.Name()] = true
		}
		var kept []ForeignKey
		for _, fk := range candidates {
			if matchesColumnSet(fk.Columns, names) {
				kept = append(kept, fk)
			}
		}
		candidates = kept
	}
	if len(candidates) != 1 {
		return AmbiguousKeyError{
			Left:       j.left.Name(),
			Right:      j.right.Name(),
			Candidates: len(candidates),
		}
	}
	return j.OnKeyMatch(candidates[0])
}

// OnKeyMatch resolves the clause with a specific foreign key.
func (j *JoinClause) OnKeyMatch(fk ForeignKey) error {
	if err := j.guard(); err != nil {
		return err
	}
	cond, err := j.keyCondition(fk)
	if err != nil {
		return err
	}
	j.on = cond
	j.resolved = true
	return nil
}

// keyCondition expands a foreign key into pairwise column equality, oriented
// by which side of the join the key's referencing table sits on.
func (j *JoinClause) keyCondition(fk ForeignKey) (ConditionItem, error) {
	var leftCols, rightCols []string
	switch {
	case fk.Table == j.left.Name() && fk.RefTable == j.right.Name():
		leftCols, rightCols = fk.Columns, fk.RefColumns
	case fk.Table == j.right.Name() && fk.RefTable == j.left.Name():
		leftCols, rightCols = fk.RefColumns, fk.Columns
	default:
		return nil, fmt.Errorf("foreign key %s -> %s does not relate %q and %q",
			fk.Table, fk.RefTable, j.left.Name(), j.right.Name())
	}
	conditions := make([]ConditionItem, len(leftCols))
	for i := range leftCols {
		conditions[i] = Eq(j.left.Col(leftCols[i]), j.right.Col(rightCols[i]))
	}
	if len(conditions) == 1 {
		return conditions[0], nil
	}
	return And(conditions...), nil
}

func matchesColumnSet(cols []string, names map[string]bool) bool {
	if len(cols) != len(names) {
		return false
	}
	for _, c := range cols {
		if !names[c] {
			return false
		}
	}
	return true
}

// Left returns the left table.
func (j *JoinClause) Left() *Table { return j.left }

// Right returns the right table.
func (j *JoinClause) Right() *Table { return j.right }

// Type returns the join kind.
func (j *JoinClause) Type() JoinKind { return j.kind }

// Resolved reports whether the clause has a join criterion.
func (j *JoinClause) Resolved() bool { return j.resolved }

// Condition returns the resolved ON condition, if any. USING and cross joins
// have none.
func (j *JoinClause) Condition() ConditionItem { return j.on }

// UsingColumns returns the USING column list, if any.
func (j *JoinClause) UsingColumns() []*Column {
	out := make([]*Column, len(j.using))
	copy(out, j.using)
	return out
}

// Kind returns KindJoin.
func (j *JoinClause) Kind() Kind { return KindJoin }

// Args returns the left table, right table, join kind, condition, and USING
// columns.
func (j *JoinClause) Args() []any {
	return []any{j.left, j.right, j.kind, j.on, j.using}
}

// Replace substitutes the joined tables, the condition, and the USING columns.
func (j *JoinClause) Replace(f Replacer) Node {
	left := applyTo(f, j.left)
	right := applyTo(f, j.right)
	on := applyTo(f, j.on)
	using, changed := replaceColumns(f, j.using)
	if sameNode(left, j.left) && sameNode(right, j.right) && sameNode(on, j.on) && !changed {
		return j
	}
	return &JoinClause{
		left:     left,
		right:    right,
		kind:     j.kind,
		resolved: j.resolved,
		on:       on,
		using:    using,
	}
}

func replaceColumns(f Replacer, in []*Column) ([]*Column, bool) {
	var out []*Column
	for i, c := range in {
		r := applyTo(f, c)
		if out == nil && r != c {
			out = make([]*Column, i, len(in))
			copy(out, in[:i])
		}
		if out != nil {
			out = append(out, r)
		}
	}
	if out == nil {
		return in, false
	}
	return out, true
}

func (j *JoinClause) render(ctx *Context) error {
	if !j.resolved {
		return fmt.Errorf("join between %q and %q has no join criterion", j.left.Name(), j.right.Name())
	}
	if j.kind == FullOuterJoin && !ctx.fullJoin() {
		return render.NewUnsupportedFeatureError(ctx.Dialect(), "FULL OUTER JOIN",
			"combine a LEFT and a RIGHT join with UNION")
	}
	ctx.Visit(j.left).Sep().Keyword(string(j.kind)).SQL(" ").Visit(j.right)
	switch {
	case j.on != nil:
		ctx.Sep().Keyword("ON").SQL(" ").Visit(j.on)
	case len(j.using) > 0:
		if ctx.joinUsing() {
			ctx.Sep().Keyword("USING").SQL(" (")
			for i, c := range j.using {
				if i > 0 {
					ctx.SQL(", ")
				}
				ctx.Ident(c.Name())
			}
			ctx.SQL(")")
		} else {
			// Dialects without USING get the equivalent qualified ON chain.
			cond, err := j.usingCondition()
			if err != nil {
				return err
			}
			ctx.Sep().Keyword("ON").SQL(" ").Visit(cond)
		}
	}
	return ctx.Err()
}

// usingCondition expands the USING column list into pairwise equality between
// both tables' qualified columns.
func (j *JoinClause) usingCondition() (ConditionItem, error) {
	conditions := make([]ConditionItem, len(j.using))
	for i, c := range j.using {
		conditions[i] = Eq(j.left.Col(c.Name()), j.right.Col(c.Name()))
	}
	if len(conditions) == 1 {
		return conditions[0], nil
	}
	return TryAnd(conditions...)
}
