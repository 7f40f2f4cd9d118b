package qom

import "testing"

func TestComparison(t *testing.T) {
	col := Col("age")
	val := Val(21)

	tests := []struct {
		name string
		cond *Comparison
		op   Operator
	}{
		{"Eq", Eq(col, val), EQ},
		{"Ne", Ne(col, val), NE},
		{"Gt", Gt(col, val), GT},
		{"Ge", Ge(col, val), GE},
		{"Lt", Lt(col, val), LT},
		{"Le", Le(col, val), LE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.cond.Op() != tt.op {
				t.Errorf("Op() = %q, want %q", tt.cond.Op(), tt.op)
			}
			if tt.cond.Left() != Expr(col) {
				t.Error("Left() must return the left operand")
			}
			if tt.cond.Right() != Expr(val) {
				t.Error("Right() must return the right operand")
			}
		})
	}
}

func TestComparisonRender(t *testing.T) {
	tests := []struct {
		name string
		cond *Comparison
		want string
	}{
		{"eq", Eq(Col("age"), Val(21)), `"age" = $1`},
		{"like", Cmp(Col("name"), LIKE, Val("a%")), `"name" LIKE $1`},
		{"not like", Cmp(Col("name"), NotLike, Val("a%")), `"name" NOT LIKE $1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Render(tt.cond, Postgres)
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			if result.SQL != tt.want {
				t.Errorf("SQL = %q, want %q", result.SQL, tt.want)
			}
		})
	}
}

func TestNullConditions(t *testing.T) {
	cond := Null(Col("email"))
	if cond.Op() != IsNull {
		t.Errorf("Op() = %q, want IS NULL", cond.Op())
	}
	if cond.Right() != nil {
		t.Error("Right() must be nil for postfix operators")
	}
	assertSQL(t, cond, Postgres, `"email" IS NULL`)
	assertSQL(t, NotNull(Col("email")), Postgres, `"email" IS NOT NULL`)
}

func TestConditionGroup(t *testing.T) {
	cond1 := Eq(Col("id"), Val(1))
	cond2 := Gt(Col("age"), Val(18))

	t.Run("AND group", func(t *testing.T) {
		group := And(cond1, cond2)
		if group.Logic() != AND {
			t.Errorf("Logic() = %q, want AND", group.Logic())
		}
		if len(group.Items()) != 2 {
			t.Errorf("got %d items, want 2", len(group.Items()))
		}
		assertSQL(t, group, Postgres, `("id" = $1 AND "age" > $2)`, 1, 18)
	})

	t.Run("OR group", func(t *testing.T) {
		group := Or(cond1, cond2)
		if group.Logic() != OR {
			t.Errorf("Logic() = %q, want OR", group.Logic())
		}
		assertSQL(t, group, Postgres, `("id" = $1 OR "age" > $2)`, 1, 18)
	})

	t.Run("nested groups", func(t *testing.T) {
		nested := Or(And(cond1, cond2), Null(Col("email")))
		assertSQL(t, nested, Postgres, `(("id" = $1 AND "age" > $2) OR "email" IS NULL)`, 1, 18)
	})

	t.Run("single condition", func(t *testing.T) {
		assertSQL(t, And(cond1), Postgres, `("id" = $1)`, 1)
	})
}

func TestEmptyGroupsPanic(t *testing.T) {
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected And() with no conditions to panic")
			}
		}()
		And()
	}()

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected Or() with no conditions to panic")
			}
		}()
		Or()
	}()
}

func TestTryGroupFunctions(t *testing.T) {
	cond := Eq(Col("id"), Val(1))

	t.Run("TryAnd with conditions", func(t *testing.T) {
		group, err := TryAnd(cond)
		if err != nil {
			t.Errorf("TryAnd() unexpected error: %v", err)
		}
		if group.Logic() != AND {
			t.Errorf("Logic() = %q, want AND", group.Logic())
		}
	})

	t.Run("TryAnd with no conditions", func(t *testing.T) {
		_, err := TryAnd()
		if err == nil {
			t.Error("Expected TryAnd() with no conditions to return error")
		}
		if err.Error() != "AND requires at least one condition" {
			t.Errorf("Expected specific error message, got: %v", err)
		}
	})

	t.Run("TryOr with no conditions", func(t *testing.T) {
		_, err := TryOr()
		if err == nil {
			t.Error("Expected TryOr() with no conditions to return error")
		}
		if err.Error() != "OR requires at least one condition" {
			t.Errorf("Expected specific error message, got: %v", err)
		}
	})
}

func TestConditionItemInterface(t *testing.T) {
	var items []ConditionItem
	items = append(items, Eq(Col("id"), Val(1)))
	items = append(items, And(Gt(Col("id"), Val(0)), Lt(Col("id"), Val(10))))

	if len(items) != 2 {
		t.Errorf("Expected 2 ConditionItems, got %d", len(items))
	}
}
