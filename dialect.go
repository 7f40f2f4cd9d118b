package qom

import "github.com/zoobzio/qom/internal/render"

// Dialect selects the target SQL variant for a render call.
type Dialect = render.Dialect

// Re-export dialect constants for public API.
const (
	Postgres  = render.Postgres
	MySQL     = render.MySQL
	MariaDB   = render.MariaDB
	SQLite    = render.SQLite
	SQLServer = render.SQLServer
	Derby     = render.Derby
)

// Dialects returns every supported dialect.
func Dialects() []Dialect {
	return render.Dialects()
}

// UnsupportedFeatureError reports a construct with no rendering strategy,
// native or emulated, for the requested dialect.
type UnsupportedFeatureError = render.UnsupportedFeatureError
