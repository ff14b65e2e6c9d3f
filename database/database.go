package database

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"storefront/config"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

// Open connects to the configured database and verifies the connection.
func Open(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if driver == DriverSQLite {
		// an in-memory database exists per connection
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return db, nil
}

// InitDB opens the database from cfg and creates the schema.
func InitDB(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	db, err := Open(ctx, cfg.DBDriver, cfg.DSN())
	if err != nil {
		return nil, err
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func Migrate(ctx context.Context, db *sqlx.DB) error {
	var ddl string
	switch db.DriverName() {
	case DriverMySQL:
		ddl = `
		CREATE TABLE IF NOT EXISTS profile_blobs (
			profile_id VARCHAR(64) NOT NULL,
			blob_key   VARCHAR(64) NOT NULL,
			value      MEDIUMBLOB NOT NULL,
			updated_at DATETIME NOT NULL,
			PRIMARY KEY (profile_id, blob_key)
		) DEFAULT CHARSET = utf8mb4`
	case DriverSQLite:
		ddl = `
		CREATE TABLE IF NOT EXISTS profile_blobs (
			profile_id TEXT NOT NULL,
			blob_key   TEXT NOT NULL,
			value      BLOB NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			PRIMARY KEY (profile_id, blob_key)
		)`
	default:
		return fmt.Errorf("unsupported driver %q", db.DriverName())
	}

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create profile_blobs: %w", err)
	}
	return nil
}
