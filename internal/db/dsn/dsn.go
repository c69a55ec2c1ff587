// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"

	"github.com/gojira/gojira/internal/config"
)

// Create builds the Data Source Name for the configured engine.
// MySQL is the default. For SQLite, DB.Name is the database file.
func Create(cfg *config.Config) string {
	db := cfg.DB

	switch db.GormEngine {
	case config.EnginePostgres:
		out := fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
			db.User,
			db.Password,
			db.Host,
			db.Port,
			db.Name,
		)

		if db.Extras != "" {
			out += "?" + db.Extras
		}

		return out
	case config.EngineSQLite:
		return db.Name
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			db.User,
			db.Password,
			db.Host,
			db.Port,
			db.Name,
			db.Extras,
		)
	}
}
