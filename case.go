package qom

// CaseExpression is a simple CASE: one comparison value matched against a
// sequence of candidate expressions. Builder methods return copies; an
// expression already embedded in a tree is never mutated.
type CaseExpression struct {
	value Expr
	whens []Tuple2[Expr, Expr]
	els   Expr
}

// Case starts a simple CASE over a comparison value.
func Case(value Expr) *CaseExpression {
	return &CaseExpression{value: value}
}

// When appends a candidate/result pair.
func (c *CaseExpression) When(compare, result Expr) *CaseExpression {
	whens := make([]Tuple2[Expr, Expr], len(c.whens), len(c.whens)+1)
	copy(whens, c.whens)
	whens = append(whens, T2(compare, result))
	return &CaseExpression{value: c.value, whens: whens, els: c.els}
}

// Else sets the default result.
func (c *CaseExpression) Else(result Expr) *CaseExpression {
	return &CaseExpression{value: c.value, whens: c.whens, els: result}
}

// Value returns the comparison value.
func (c *CaseExpression) Value() Expr { return c.value }

// Whens returns the candidate/result pairs in order.
func (c *CaseExpression) Whens() []Tuple2[Expr, Expr] {
	out := make([]Tuple2[Expr, Expr], len(c.whens))
	copy(out, c.whens)
	return out
}

// ElseValue returns the default result, or nil when absent.
func (c *CaseExpression) ElseValue() Expr { return c.els }

// Kind returns KindCaseSimple.
func (c *CaseExpression) Kind() Kind { return KindCaseSimple }

// Args returns the comparison value, the when pairs, and the default result.
func (c *CaseExpression) Args() []any { return []any{c.value, c.whens, c.els} }

// Replace substitutes the comparison value, every when pair element, and the
// default result.
func (c *CaseExpression) Replace(f Replacer) Node {
	value := applyTo(f, c.value)
	els := applyTo(f, c.els)
	whens, changed := replaceExprPairs(f, c.whens)
	if sameNode(value, c.value) && sameNode(els, c.els) && !changed {
		return c
	}
	return &CaseExpression{value: value, whens: whens, els: els}
}

func (c *CaseExpression) isExpr() {}

// searched rewrites the simple form into the equivalent searched form, one
// equality comparison per candidate.
func (c *CaseExpression) searched() *SearchedCase {
	whens := make([]Tuple2[ConditionItem, Expr], len(c.whens))
	for i, w := range c.whens {
		whens[i] = T2[ConditionItem, Expr](Eq(c.value, w.V1()), w.V2())
	}
	return &SearchedCase{whens: whens, els: c.els}
}

func (c *CaseExpression) render(ctx *Context) error {
	if len(c.whens) == 0 {
		return renderEmptyCase(ctx, c.els)
	}
	if !ctx.simpleCase() {
		return c.searched().render(ctx)
	}
	ctx.Keyword("CASE").SQL(" ").Visit(c.value).IndentStart()
	for _, w := range c.whens {
		ctx.Sep().Keyword("WHEN").SQL(" ").Visit(w.V1()).
			SQL(" ").Keyword("THEN").SQL(" ").Visit(w.V2())
	}
	renderCaseElse(ctx, c.els)
	return ctx.IndentEnd().Sep().Keyword("END").Err()
}

// SearchedCase is a searched CASE: a sequence of condition/result pairs
// evaluated in order. Builder methods return copies.
type SearchedCase struct {
	whens []Tuple2[ConditionItem, Expr]
	els   Expr
}

// CaseWhen starts a searched CASE with an initial condition/result pair.
func CaseWhen(condition ConditionItem, result Expr) *SearchedCase {
	return (&SearchedCase{}).When(condition, result)
}

// When appends a condition/result pair.
func (c *SearchedCase) When(condition ConditionItem, result Expr) *SearchedCase {
	whens := make([]Tuple2[ConditionItem, Expr], len(c.whens), len(c.whens)+1)
	copy(whens, c.whens)
	whens = append(whens, T2(condition, result))
	return &SearchedCase{whens: whens, els: c.els}
}

// Else sets the default result.
func (c *SearchedCase) Else(result Expr) *SearchedCase {
	return &SearchedCase{whens: c.whens, els: result}
}

// Whens returns the condition/result pairs in order.
func (c *SearchedCase) Whens() []Tuple2[ConditionItem, Expr] {
	out := make([]Tuple2[ConditionItem, Expr], len(c.whens))
	copy(out, c.whens)
	return out
}

// ElseValue returns the default result, or nil when absent.
func (c *SearchedCase) ElseValue() Expr { return c.els }

// Kind returns KindCaseSearched.
func (c *SearchedCase) Kind() Kind { return KindCaseSearched }

// Args returns the when pairs and the default result.
func (c *SearchedCase) Args() []any { return []any{c.whens, c.els} }

// Replace substitutes every when pair element and the default result.
func (c *SearchedCase) Replace(f Replacer) Node {
	els := applyTo(f, c.els)
	whens, changed := replaceConditionPairs(f, c.whens)
	if sameNode(els, c.els) && !changed {
		return c
	}
	return &SearchedCase{whens: whens, els: els}
}

func (c *SearchedCase) isExpr() {}

func (c *SearchedCase) render(ctx *Context) error {
	if len(c.whens) == 0 {
		return renderEmptyCase(ctx, c.els)
	}
	ctx.Keyword("CASE").IndentStart()
	for _, w := range c.whens {
		ctx.Sep().Keyword("WHEN").SQL(" ").Visit(w.V1()).
			SQL(" ").Keyword("THEN").SQL(" ").Visit(w.V2())
	}
	renderCaseElse(ctx, c.els)
	return ctx.IndentEnd().Sep().Keyword("END").Err()
}

// renderEmptyCase handles a CASE without when pairs: the wrapper is elided and
// only the default result (or NULL) remains.
func renderEmptyCase(ctx *Context, els Expr) error {
	if els == nil {
		return ctx.Keyword("NULL").Err()
	}
	return ctx.Visit(els).Err()
}

func renderCaseElse(ctx *Context, els Expr) {
	switch {
	case els != nil:
		ctx.Sep().Keyword("ELSE").SQL(" ").Visit(els)
	case ctx.Data(DataForceCaseElseNull) != nil:
		ctx.Sep().Keyword("ELSE").SQL(" ").Keyword("NULL")
	}
}

func replaceExprPairs(f Replacer, in []Tuple2[Expr, Expr]) ([]Tuple2[Expr, Expr], bool) {
	var out []Tuple2[Expr, Expr]
	for i, w := range in {
		v1 := applyTo(f, w.V1())
		v2 := applyTo(f, w.V2())
		if out == nil && (!sameNode(v1, w.V1()) || !sameNode(v2, w.V2())) {
			out = make([]Tuple2[Expr, Expr], i, len(in))
			copy(out, in[:i])
		}
		if out != nil {
			out = append(out, T2(v1, v2))
		}
	}
	if out == nil {
		return in, false
	}
	return out, true
}

func replaceConditionPairs(f Replacer, in []Tuple2[ConditionItem, Expr]) ([]Tuple2[ConditionItem, Expr], bool) {
	var out []Tuple2[ConditionItem, Expr]
	for i, w := range in {
		v1 := applyTo(f, w.V1())
		v2 := applyTo(f, w.V2())
		if out == nil && (!sameNode(v1, w.V1()) || !sameNode(v2, w.V2())) {
			out = make([]Tuple2[ConditionItem, Expr], i, len(in))
			copy(out, in[:i])
		}
		if out != nil {
			out = append(out, T2(v1, v2))
		}
	}
	if out == nil {
		return in, false
	}
	return out, true
}
