package qom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zoobzio/qom/internal/render"
)

// DataKey identifies a render-scoped flag. Flags let a parent node adjust how
// descendants render without changing the tree itself.
type DataKey int

const (
	// DataForceCaseElseNull forces CASE expressions without a default branch
	// to emit an explicit ELSE NULL.
	DataForceCaseElseNull DataKey = iota
)

// RenderOption configures a single render call.
type RenderOption func(*Context)

// Pretty renders with newline separators and two-space indentation instead of
// single spaces.
func Pretty() RenderOption {
	return func(c *Context) { c.pretty = true }
}

// WithData seeds a render-scoped flag before rendering starts.
func WithData(k DataKey, v any) RenderOption {
	return func(c *Context) { c.data[k] = v }
}

// Context is the per-render mutable state: the text buffer, the ordered bind
// list, formatting counters, and render-scoped flags. A Context is single-use
// and owned by the Render call that allocated it; concurrent renders of the
// same tree each get their own.
type Context struct {
	dialect Dialect
	caps    render.Capabilities
	buf     strings.Builder
	binds   []any
	data    map[DataKey]any
	indent  int
	last    byte
	pretty  bool
	err     error
}

func newContext(d Dialect, opts ...RenderOption) (*Context, error) {
	caps, ok := render.CapabilitiesOf(d)
	if !ok {
		return nil, render.NewUnsupportedFeatureError(d, "rendering", "dialect has no capability entry")
	}
	c := &Context{
		dialect: d,
		caps:    caps,
		data:    make(map[DataKey]any),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Render walks the tree rooted at n and produces dialect-specific SQL text
// plus bind values in placeholder occurrence order. Dialect selection changes
// keywords and which of several legal renderings a node picks; it never
// changes the tree.
func Render(n Node, d Dialect, opts ...RenderOption) (*Result, error) {
	if n == nil {
		return nil, fmt.Errorf("cannot render nil node")
	}
	ctx, err := newContext(d, opts...)
	if err != nil {
		return nil, err
	}
	ctx.Visit(n)
	if ctx.err != nil {
		return nil, ctx.err
	}
	return &Result{SQL: ctx.buf.String(), Binds: ctx.binds}, nil
}

// Dialect returns the target dialect of this render.
func (c *Context) Dialect() Dialect {
	return c.dialect
}

// Err returns the first error raised during the walk, if any. Once set, all
// further writes are no-ops.
func (c *Context) Err() error {
	return c.err
}

func (c *Context) fail(err error) *Context {
	if c.err == nil {
		c.err = err
	}
	return c
}

// SQL appends raw text.
func (c *Context) SQL(s string) *Context {
	if c.err != nil || s == "" {
		return c
	}
	c.buf.WriteString(s)
	c.last = s[len(s)-1]
	return c
}

// Keyword appends a SQL keyword.
func (c *Context) Keyword(k string) *Context {
	return c.SQL(k)
}

// Ident appends an identifier quoted for the target dialect. Embedded quote
// characters are escaped by doubling.
func (c *Context) Ident(name string) *Context {
	if c.err != nil {
		return c
	}
	switch c.caps.Quote {
	case render.QuoteBacktick:
		return c.SQL("`" + strings.ReplaceAll(name, "`", "``") + "`")
	case render.QuoteBracket:
		return c.SQL("[" + strings.ReplaceAll(name, "]", "]]") + "]")
	default:
		return c.SQL(`"` + strings.ReplaceAll(name, `"`, `""`) + `"`)
	}
}

// Bind appends a placeholder for v and records v in the bind list. Placeholder
// syntax follows the dialect's capability entry.
func (c *Context) Bind(v any) *Context {
	if c.err != nil {
		return c
	}
	c.binds = append(c.binds, v)
	switch c.caps.Placeholder {
	case render.PlaceholderDollar:
		return c.SQL("$" + strconv.Itoa(len(c.binds)))
	case render.PlaceholderAt:
		return c.SQL("@p" + strconv.Itoa(len(c.binds)))
	default:
		return c.SQL("?")
	}
}

// Visit renders a child node in place.
func (c *Context) Visit(n Node) *Context {
	if c.err != nil {
		return c
	}
	if n == nil {
		return c.fail(fmt.Errorf("cannot render nil node"))
	}
	if err := n.render(c); err != nil {
		return c.fail(err)
	}
	return c
}

// Sep emits a clause separator: a single space, or a newline plus indentation
// in pretty mode. Redundant separators after whitespace or an opening paren
// are suppressed.
func (c *Context) Sep() *Context {
	if c.err != nil {
		return c
	}
	switch c.last {
	case 0, ' ', '\n', '(':
		return c
	}
	if c.pretty {
		return c.SQL("\n" + strings.Repeat("  ", c.indent))
	}
	return c.SQL(" ")
}

// IndentStart increases the indentation depth for subsequent separators.
func (c *Context) IndentStart() *Context {
	c.indent++
	return c
}

// IndentEnd decreases the indentation depth.
func (c *Context) IndentEnd() *Context {
	if c.indent > 0 {
		c.indent--
	}
	return c
}

// Data reads a render-scoped flag; nil when unset.
func (c *Context) Data(k DataKey) any {
	return c.data[k]
}

// SetData writes a render-scoped flag visible to all nodes rendered after the
// call.
func (c *Context) SetData(k DataKey, v any) *Context {
	c.data[k] = v
	return c
}

func (c *Context) simpleCase() bool { return c.caps.SimpleCase }
func (c *Context) joinUsing() bool  { return c.caps.JoinUsing }
func (c *Context) fullJoin() bool   { return c.caps.FullJoin }
