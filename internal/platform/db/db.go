package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Open a postgres pool via the pgx stdlib driver. Used by the dbtool
// provisioning binary; the server itself runs on sqlite by default.
func Open(databaseURL string) (*sql.DB, error) {
	pool, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open db: open postgres database: %w", err)
	}

	pool.SetMaxOpenConns(10)
	pool.SetMaxIdleConns(10)
	pool.SetConnMaxLifetime(30 * time.Minute)

	if err := pool.Ping(); err != nil {
		return nil, fmt.Errorf("open db: verify postgres connection: %w", err)
	}

	return pool, nil
}
