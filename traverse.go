package qom

// Traverse folds f over n and everything reachable from its argument list:
// pre-order, depth-first, left to right. Nodes are visited before their
// arguments; tuples are visited before their elements; slices contribute
// their elements in order. Every node and leaf argument value is visited
// exactly once, so the same fold serves bind collection, reference counting,
// depth computation, or any other accumulator type.
//
// Traverse never mutates the tree and is safe to run concurrently with other
// traversals of the same tree.
func Traverse[R any](n Node, seed R, f func(R, any) R) R {
	if n == nil {
		return seed
	}
	acc := f(seed, n)
	for _, arg := range n.Args() {
		acc = traverseValue(acc, arg, f)
	}
	return acc
}

func traverseValue[R any](acc R, v any, f func(R, any) R) R {
	switch x := v.(type) {
	case nil:
		return acc
	case Node:
		return Traverse(x, acc, f)
	case tuple:
		acc = f(acc, x)
		for _, e := range x.tupleValues() {
			acc = traverseValue(acc, e, f)
		}
		return acc
	case []Expr:
		for _, e := range x {
			acc = traverseValue(acc, e, f)
		}
		return acc
	case []ConditionItem:
		for _, e := range x {
			acc = traverseValue(acc, e, f)
		}
		return acc
	case []*Column:
		for _, e := range x {
			acc = traverseValue(acc, e, f)
		}
		return acc
	case []Tuple2[Expr, Expr]:
		for _, e := range x {
			acc = traverseValue(acc, e, f)
		}
		return acc
	case []Tuple2[ConditionItem, Expr]:
		for _, e := range x {
			acc = traverseValue(acc, e, f)
		}
		return acc
	default:
		return f(acc, v)
	}
}

// CollectBinds gathers every bind value in the tree in visitation order. For
// trees rendered with a dialect's native syntax this matches placeholder
// order; emulated renderings may repeat or reorder binds.
func CollectBinds(n Node) []any {
	return Traverse(n, []any(nil), func(acc []any, v any) []any {
		if b, ok := v.(*BindValue); ok {
			return append(acc, b.Value())
		}
		return acc
	})
}
