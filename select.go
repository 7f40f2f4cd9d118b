package qom

// SelectQuery is a minimal SELECT: a projection, a source, and an optional
// filter. Builder methods return copies.
type SelectQuery struct {
	projection []Expr
	from       Node
	where      ConditionItem
}

// Select starts a query with the given projection. An empty projection renders
// as *.
func Select(exprs ...Expr) *SelectQuery {
	return &SelectQuery{projection: exprs}
}

// From sets the query source: a table or a join clause.
func (s *SelectQuery) From(source Node) *SelectQuery {
	return &SelectQuery{projection: s.projection, from: source, where: s.where}
}

// Where sets the filter condition.
func (s *SelectQuery) Where(condition ConditionItem) *SelectQuery {
	return &SelectQuery{projection: s.projection, from: s.from, where: condition}
}

// Projection returns the projected expressions in order.
func (s *SelectQuery) Projection() []Expr {
	out := make([]Expr, len(s.projection))
	copy(out, s.projection)
	return out
}

// Source returns the query source.
func (s *SelectQuery) Source() Node { return s.from }

// Filter returns the filter condition, or nil when absent.
func (s *SelectQuery) Filter() ConditionItem { return s.where }

// Kind returns KindSelect.
func (s *SelectQuery) Kind() Kind { return KindSelect }

// Args returns the projection, source, and filter.
func (s *SelectQuery) Args() []any { return []any{s.projection, s.from, s.where} }

// Replace substitutes the projection, source, and filter.
func (s *SelectQuery) Replace(f Replacer) Node {
	projection, changed := replaceExprs(f, s.projection)
	from := applyTo(f, s.from)
	where := applyTo(f, s.where)
	if !changed && sameNode(from, s.from) && sameNode(where, s.where) {
		return s
	}
	return &SelectQuery{projection: projection, from: from, where: where}
}

func (s *SelectQuery) render(ctx *Context) error {
	ctx.Keyword("SELECT").SQL(" ")
	if len(s.projection) == 0 {
		ctx.SQL("*")
	}
	for i, e := range s.projection {
		if i > 0 {
			ctx.SQL(", ")
		}
		ctx.Visit(e)
	}
	if s.from != nil {
		ctx.Sep().Keyword("FROM").SQL(" ").Visit(s.from)
	}
	if s.where != nil {
		ctx.Sep().Keyword("WHERE").SQL(" ").Visit(s.where)
	}
	return ctx.Err()
}
