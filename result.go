package qom

// Result contains rendered SQL text and its bind values. Binds[i] belongs to
// the i-th placeholder occurrence in SQL, regardless of the dialect's
// placeholder syntax.
type Result struct {
	SQL   string
	Binds []any
}
