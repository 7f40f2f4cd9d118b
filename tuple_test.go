package qom

import "testing"

func TestTupleAccessors(t *testing.T) {
	t.Run("Tuple1", func(t *testing.T) {
		tup := T1("a")
		if tup.V1() != "a" {
			t.Errorf("V1() = %q, want %q", tup.V1(), "a")
		}
	})

	t.Run("Tuple2", func(t *testing.T) {
		tup := T2("a", 2)
		if tup.V1() != "a" {
			t.Errorf("V1() = %q, want %q", tup.V1(), "a")
		}
		if tup.V2() != 2 {
			t.Errorf("V2() = %d, want 2", tup.V2())
		}
	})

	t.Run("Tuple3", func(t *testing.T) {
		tup := T3("a", 2, true)
		if tup.V1() != "a" || tup.V2() != 2 || tup.V3() != true {
			t.Errorf("got (%v, %v, %v), want (a, 2, true)", tup.V1(), tup.V2(), tup.V3())
		}
	})
}

func TestTupleWith(t *testing.T) {
	original := T2("a", 1)

	replaced := original.WithV2(9)
	if replaced.V1() != "a" || replaced.V2() != 9 {
		t.Errorf("WithV2: got (%v, %v), want (a, 9)", replaced.V1(), replaced.V2())
	}
	if original.V2() != 1 {
		t.Errorf("original mutated: V2() = %d, want 1", original.V2())
	}

	replaced = original.WithV1("b")
	if replaced.V1() != "b" || replaced.V2() != 1 {
		t.Errorf("WithV1: got (%v, %v), want (b, 1)", replaced.V1(), replaced.V2())
	}
	if original.V1() != "a" {
		t.Errorf("original mutated: V1() = %q, want %q", original.V1(), "a")
	}
}

func TestTuple3With(t *testing.T) {
	original := T3(1, 2, 3)
	if got := original.WithV1(9); got.V1() != 9 || got.V2() != 2 || got.V3() != 3 {
		t.Errorf("WithV1: got (%d, %d, %d)", got.V1(), got.V2(), got.V3())
	}
	if got := original.WithV2(9); got.V1() != 1 || got.V2() != 9 || got.V3() != 3 {
		t.Errorf("WithV2: got (%d, %d, %d)", got.V1(), got.V2(), got.V3())
	}
	if got := original.WithV3(9); got.V1() != 1 || got.V2() != 2 || got.V3() != 9 {
		t.Errorf("WithV3: got (%d, %d, %d)", got.V1(), got.V2(), got.V3())
	}
	if original.V1() != 1 || original.V2() != 2 || original.V3() != 3 {
		t.Error("original tuple mutated by With methods")
	}
}

func TestTupleValues(t *testing.T) {
	tests := []struct {
		name string
		tup  tuple
		want []any
	}{
		{"Tuple1", T1("x"), []any{"x"}},
		{"Tuple2", T2("x", 1), []any{"x", 1}},
		{"Tuple3", T3("x", 1, true), []any{"x", 1, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.tup.tupleValues()
			if len(got) != len(tt.want) {
				t.Fatalf("got %d values, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("value %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
