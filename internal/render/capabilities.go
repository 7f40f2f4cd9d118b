// Package render holds the per-dialect capability table consulted by node
// rendering, and the error type raised when a dialect has no strategy for a
// construct.
package render

// Dialect selects one target SQL variant. It is passed into every render call
// and never inferred.
type Dialect int

const (
	Postgres Dialect = iota
	MySQL
	MariaDB
	SQLite
	SQLServer
	Derby
)

// String returns the display name used in error messages.
func (d Dialect) String() string {
	switch d {
	case Postgres:
		return "Postgres"
	case MySQL:
		return "MySQL"
	case MariaDB:
		return "MariaDB"
	case SQLite:
		return "SQLite"
	case SQLServer:
		return "SQLServer"
	case Derby:
		return "Derby"
	default:
		return "unknown"
	}
}

// Dialects returns every supported dialect. Rendering a dialect absent from
// this list (and the capability table) fails with UnsupportedFeatureError.
func Dialects() []Dialect {
	return []Dialect{Postgres, MySQL, MariaDB, SQLite, SQLServer, Derby}
}

// PlaceholderStyle selects the bind placeholder syntax.
type PlaceholderStyle int

const (
	PlaceholderQuestion PlaceholderStyle = iota // ?
	PlaceholderDollar                           // $1, $2, ...
	PlaceholderAt                               // @p1, @p2, ...
)

// QuoteStyle selects the identifier quoting syntax.
type QuoteStyle int

const (
	QuoteDouble   QuoteStyle = iota // "ident"
	QuoteBacktick                   // `ident`
	QuoteBracket                    // [ident]
)

// Capabilities describes the SQL surface a dialect supports. A false flag
// means the construct is either emulated at render time or rejected loudly;
// it is never silently mis-rendered.
type Capabilities struct {
	SimpleCase  bool // CASE <expr> WHEN <value> ... (Derby: searched form only)
	JoinUsing   bool // JOIN ... USING (col, ...)
	FullJoin    bool // FULL OUTER JOIN
	Placeholder PlaceholderStyle
	Quote       QuoteStyle
}

var capabilities = map[Dialect]Capabilities{
	Postgres:  {SimpleCase: true, JoinUsing: true, FullJoin: true, Placeholder: PlaceholderDollar, Quote: QuoteDouble},
	MySQL:     {SimpleCase: true, JoinUsing: true, FullJoin: false, Placeholder: PlaceholderQuestion, Quote: QuoteBacktick},
	MariaDB:   {SimpleCase: true, JoinUsing: true, FullJoin: false, Placeholder: PlaceholderQuestion, Quote: QuoteBacktick},
	SQLite:    {SimpleCase: true, JoinUsing: true, FullJoin: true, Placeholder: PlaceholderQuestion, Quote: QuoteDouble},
	SQLServer: {SimpleCase: true, JoinUsing: false, FullJoin: true, Placeholder: PlaceholderAt, Quote: QuoteBracket},
	Derby:     {SimpleCase: false, JoinUsing: true, FullJoin: true, Placeholder: PlaceholderQuestion, Quote: QuoteDouble},
}

// CapabilitiesOf looks up the capability entry for a dialect.
func CapabilitiesOf(d Dialect) (Capabilities, bool) {
	caps, ok := capabilities[d]
	return caps, ok
}
