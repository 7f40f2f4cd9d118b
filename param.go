package qom

import "time"

// BindValue is a literal rendered as a bind placeholder, never interpolated
// into the SQL text. The value itself is collected in placeholder order.
type BindValue struct {
	value any
}

// TryVal creates a bind value, rejecting types no SQL driver can bind.
func TryVal(v any) (*BindValue, error) {
	switch v.(type) {
	case nil,
		bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		string, []byte,
		time.Time:
		return &BindValue{value: v}, nil
	default:
		return nil, &BindTypeError{Value: v}
	}
}

// Val creates a bind value.
func Val(v any) *BindValue {
	b, err := TryVal(v)
	if err != nil {
		panic(err)
	}
	return b
}

// Value returns the bound value.
func (b *BindValue) Value() any { return b.value }

// Kind returns KindBind.
func (b *BindValue) Kind() Kind { return KindBind }

// Args returns the bound value.
func (b *BindValue) Args() []any { return []any{b.value} }

// Replace returns the receiver; bind values hold no child nodes.
func (b *BindValue) Replace(_ Replacer) Node { return b }

func (b *BindValue) isExpr() {}

func (b *BindValue) render(ctx *Context) error {
	return ctx.Bind(b.value).Err()
}
