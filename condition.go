package qom

import "fmt"

// Comparison is a binary predicate between two expressions, or a postfix
// predicate (IS NULL, IS NOT NULL) over one.
type Comparison struct {
	left  Expr
	op    Operator
	right Expr
}

// Cmp creates a comparison between two expressions.
func Cmp(left Expr, op Operator, right Expr) *Comparison {
	return &Comparison{left: left, op: op, right: right}
}

// Eq creates an equality comparison.
func Eq(left, right Expr) *Comparison { return Cmp(left, EQ, right) }

// Ne creates an inequality comparison.
func Ne(left, right Expr) *Comparison { return Cmp(left, NE, right) }

// Gt creates a greater-than comparison.
func Gt(left, right Expr) *Comparison { return Cmp(left, GT, right) }

// Ge creates a greater-or-equal comparison.
func Ge(left, right Expr) *Comparison { return Cmp(left, GE, right) }

// Lt creates a less-than comparison.
func Lt(left, right Expr) *Comparison { return Cmp(left, LT, right) }

// Le creates a less-or-equal comparison.
func Le(left, right Expr) *Comparison { return Cmp(left, LE, right) }

// Null creates an IS NULL predicate.
func Null(e Expr) *Comparison { return &Comparison{left: e, op: IsNull} }

// NotNull creates an IS NOT NULL predicate.
func NotNull(e Expr) *Comparison { return &Comparison{left: e, op: IsNotNull} }

// Left returns the left operand.
func (c *Comparison) Left() Expr { return c.left }

// Op returns the operator.
func (c *Comparison) Op() Operator { return c.op }

// Right returns the right operand; nil for postfix operators.
func (c *Comparison) Right() Expr { return c.right }

// Kind returns KindComparison.
func (c *Comparison) Kind() Kind { return KindComparison }

// Args returns the left operand, operator, and right operand.
func (c *Comparison) Args() []any { return []any{c.left, c.op, c.right} }

// Replace substitutes the operands.
func (c *Comparison) Replace(f Replacer) Node {
	return Replace2(c, c.left, c.right, func(l, r Expr) *Comparison {
		return &Comparison{left: l, op: c.op, right: r}
	}, f)
}

func (c *Comparison) isConditionItem() {}

func (c *Comparison) render(ctx *Context) error {
	ctx.Visit(c.left).SQL(" ").Keyword(string(c.op))
	if !c.op.postfix() {
		ctx.SQL(" ").Visit(c.right)
	}
	return ctx.Err()
}

// LogicOperator combines conditions in a group.
type LogicOperator string

const (
	AND LogicOperator = "AND"
	OR  LogicOperator = "OR"
)

// ConditionGroup is an ordered set of conditions combined with a single logic
// operator and rendered parenthesized.
type ConditionGroup struct {
	logic LogicOperator
	items []ConditionItem
}

// TryAnd creates an AND group, returning an error if no conditions are given.
func TryAnd(conditions ...ConditionItem) (*ConditionGroup, error) {
	if len(conditions) == 0 {
		return nil, fmt.Errorf("AND requires at least one condition")
	}
	return &ConditionGroup{logic: AND, items: conditions}, nil
}

// And creates an AND group.
func And(conditions ...ConditionItem) *ConditionGroup {
	g, err := TryAnd(conditions...)
	if err != nil {
		panic(err)
	}
	return g
}

// TryOr creates an OR group, returning an error if no conditions are given.
func TryOr(conditions ...ConditionItem) (*ConditionGroup, error) {
	if len(conditions) == 0 {
		return nil, fmt.Errorf("OR requires at least one condition")
	}
	return &ConditionGroup{logic: OR, items: conditions}, nil
}

// Or creates an OR group.
func Or(conditions ...ConditionItem) *ConditionGroup {
	g, err := TryOr(conditions...)
	if err != nil {
		panic(err)
	}
	return g
}

// Logic returns the group's logic operator.
func (g *ConditionGroup) Logic() LogicOperator { return g.logic }

// Items returns the group's conditions in order.
func (g *ConditionGroup) Items() []ConditionItem {
	out := make([]ConditionItem, len(g.items))
	copy(out, g.items)
	return out
}

// Kind returns KindConditionGroup.
func (g *ConditionGroup) Kind() Kind { return KindConditionGroup }

// Args returns the logic operator and the condition list.
func (g *ConditionGroup) Args() []any { return []any{g.logic, g.items} }

// Replace substitutes the grouped conditions.
func (g *ConditionGroup) Replace(f Replacer) Node {
	items, changed := replaceConditions(f, g.items)
	if !changed {
		return g
	}
	return &ConditionGroup{logic: g.logic, items: items}
}

func (g *ConditionGroup) isConditionItem() {}

func (g *ConditionGroup) render(ctx *Context) error {
	ctx.SQL("(")
	for i, item := range g.items {
		if i > 0 {
			ctx.SQL(" ").Keyword(string(g.logic)).SQL(" ")
		}
		ctx.Visit(item)
	}
	return ctx.SQL(")").Err()
}
