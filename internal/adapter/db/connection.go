package db

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"teamboard/internal/config"
)

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	switch conf.DbDriver {
	case config.DriverMySQL:
		return connectMySQL(conf)
	case config.DriverSQLite:
		return ConnectSQLite(conf.SqlitePath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", conf.DbDriver)
	}
}

func connectMySQL(conf *config.Config) (*sqlx.DB, error) {
	params := conf.DbParams
	if params == "" {
		params = "parseTime=true&multiStatements=true"
	}

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// ConnectSQLite opens a SQLite database at path; ":memory:" gives a private
// in-memory database.
func ConnectSQLite(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Each pooled connection to ":memory:" would see its own empty database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not enable foreign keys: %w", err)
	}
	return db, nil
}
