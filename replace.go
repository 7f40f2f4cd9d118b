package qom

// Generic child-substitution helpers backing each node's Replace method.
// Every helper preserves reference identity: when the replacer leaves all
// children untouched, the original node is returned so callers can detect
// no-op rewrites with a pointer comparison.

// applyTo runs f on a single child, preserving nil children and the child's
// declared type. Substituting a value of an incompatible type is a caller
// error and panics.
func applyTo[T Node](f Replacer, child T) T {
	if any(child) == nil {
		return child
	}
	r := f(child)
	if r == nil {
		return child
	}
	return any(r).(T)
}

func sameNode[T Node](a, b T) bool {
	return any(a) == any(b)
}

// Replace1 substitutes a single-child node, rebuilding it with ctor only when
// the child actually changed.
func Replace1[N Node, A Node](n N, a1 A, ctor func(A) N, f Replacer) Node {
	r1 := applyTo(f, a1)
	if sameNode(r1, a1) {
		return n
	}
	return ctor(r1)
}

// Replace2 substitutes a two-child node.
func Replace2[N Node, A Node, B Node](n N, a1 A, a2 B, ctor func(A, B) N, f Replacer) Node {
	r1 := applyTo(f, a1)
	r2 := applyTo(f, a2)
	if sameNode(r1, a1) && sameNode(r2, a2) {
		return n
	}
	return ctor(r1, r2)
}

// Replace3 substitutes a three-child node.
func Replace3[N Node, A Node, B Node, C Node](n N, a1 A, a2 B, a3 C, ctor func(A, B, C) N, f Replacer) Node {
	r1 := applyTo(f, a1)
	r2 := applyTo(f, a2)
	r3 := applyTo(f, a3)
	if sameNode(r1, a1) && sameNode(r2, a2) && sameNode(r3, a3) {
		return n
	}
	return ctor(r1, r2, r3)
}

// replaceExprs applies f to each element of a child slice, sharing the
// original slice when nothing changed.
func replaceExprs(f Replacer, in []Expr) ([]Expr, bool) {
	var out []Expr
	for i, e := range in {
		r := applyTo(f, e)
		if out == nil && !sameNode(r, e) {
			out = make([]Expr, i, len(in))
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

func replaceConditions(f Replacer, in []ConditionItem) ([]ConditionItem, bool) {
	var out []ConditionItem
	for i, c := range in {
		r := applyTo(f, c)
		if out == nil && !sameNode(r, c) {
			out = make([]ConditionItem, i, len(in))
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

// Rewrite applies f to every node in the tree, bottom-up, rebuilding each
// ancestor of a substituted node and sharing all untouched subtrees. An
// identity replacer returns n itself, reference-equal, at zero allocation
// beyond the walk.
func Rewrite(n Node, f Replacer) Node {
	if n == nil {
		return nil
	}
	r := n.Replace(func(child Node) Node {
		return Rewrite(child, f)
	})
	return f(r)
}
