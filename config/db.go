package config

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the configured database. MySQL in production; SQLite is
// the swappable adapter used for local development and tests.
func InitDB(cfg *Config) (*gorm.DB, error) {
	switch cfg.DB.Driver {
	case "mysql":
		return gorm.Open(mysql.Open(cfg.DB.DSN), &gorm.Config{})
	case "sqlite":
		dsn := cfg.DB.DSN
		if dsn == "" {
			dsn = "tipdesk.db"
		}
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
}
