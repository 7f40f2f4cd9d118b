package qom

// Fixed-arity, heterogeneous value containers backing node argument lists.
// Arity is fixed by the type; element replacement returns a new tuple and
// leaves the original untouched, so tuples can be shared freely across trees.

// Tuple1 holds a single typed element.
type Tuple1[A any] struct {
	v1 A
}

// T1 constructs a Tuple1.
func T1[A any](v1 A) Tuple1[A] {
	return Tuple1[A]{v1: v1}
}

// V1 returns the first element.
func (t Tuple1[A]) V1() A { return t.v1 }

// WithV1 returns a copy of the tuple with the first element replaced.
func (t Tuple1[A]) WithV1(v A) Tuple1[A] {
	return Tuple1[A]{v1: v}
}

func (t Tuple1[A]) tupleValues() []any { return []any{t.v1} }

// Tuple2 holds two typed elements in order.
type Tuple2[A, B any] struct {
	v1 A
	v2 B
}

// T2 constructs a Tuple2.
func T2[A, B any](v1 A, v2 B) Tuple2[A, B] {
	return Tuple2[A, B]{v1: v1, v2: v2}
}

// V1 returns the first element.
func (t Tuple2[A, B]) V1() A { return t.v1 }

// V2 returns the second element.
func (t Tuple2[A, B]) V2() B { return t.v2 }

// WithV1 returns a copy of the tuple with the first element replaced.
func (t Tuple2[A, B]) WithV1(v A) Tuple2[A, B] {
	return Tuple2[A, B]{v1: v, v2: t.v2}
}

// WithV2 returns a copy of the tuple with the second element replaced.
func (t Tuple2[A, B]) WithV2(v B) Tuple2[A, B] {
	return Tuple2[A, B]{v1: t.v1, v2: v}
}

func (t Tuple2[A, B]) tupleValues() []any { return []any{t.v1, t.v2} }

// Tuple3 holds three typed elements in order.
type Tuple3[A, B, C any] struct {
	v1 A
	v2 B
	v3 C
}

// T3 constructs a Tuple3.
func T3[A, B, C any](v1 A, v2 B, v3 C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{v1: v1, v2: v2, v3: v3}
}

// V1 returns the first element.
func (t Tuple3[A, B, C]) V1() A { return t.v1 }

// V2 returns the second element.
func (t Tuple3[A, B, C]) V2() B { return t.v2 }

// V3 returns the third element.
func (t Tuple3[A, B, C]) V3() C { return t.v3 }

// WithV1 returns a copy of the tuple with the first element replaced.
func (t Tuple3[A, B, C]) WithV1(v A) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{v1: v, v2: t.v2, v3: t.v3}
}

// WithV2 returns a copy of the tuple with the second element replaced.
func (t Tuple3[A, B, C]) WithV2(v B) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{v1: t.v1, v2: v, v3: t.v3}
}

// WithV3 returns a copy of the tuple with the third element replaced.
func (t Tuple3[A, B, C]) WithV3(v C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{v1: t.v1, v2: t.v2, v3: v}
}

func (t Tuple3[A, B, C]) tupleValues() []any { return []any{t.v1, t.v2, t.v3} }

// tuple is satisfied by every tuple arity; Traverse uses it to walk elements.
type tuple interface {
	tupleValues() []any
}
