// Package db provides SQLite connectivity and migration support for the
// portal's storage layer.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"
)

type poolMode string

const (
	poolWrite poolMode = "write"
	poolRead  poolMode = "read"
)

// OpenSQLitePair opens a single-writer pool and a sized reader pool for
// the same SQLite file. SQLite allows one writer at a time, so the write
// pool is pinned to one connection with _txlock=immediate while reads
// fan out across readMaxOpen connections (0 defaults to 4).
func OpenSQLitePair(path string, readMaxOpen int) (writeDB, readDB *sql.DB, err error) {
	writeDB, err = openSQLite(path, poolWrite, 0)
	if err != nil {
		return nil, nil, err
	}

	readDB, err = openSQLite(path, poolRead, readMaxOpen)
	if err != nil {
		_ = writeDB.Close()
		return nil, nil, err
	}

	return writeDB, readDB, nil
}

// openSQLite opens one pool with WAL journaling, a 5s busy timeout,
// synchronous=NORMAL, and foreign keys enforced.
func openSQLite(path string, mode poolMode, maxOpen int) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", buildDSN(path, mode))
	if err != nil {
		return nil, fmt.Errorf("open sqlite (%s): %w", mode, err)
	}

	switch mode {
	case poolWrite:
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	case poolRead:
		if maxOpen <= 0 {
			maxOpen = 4
		}
		db.SetMaxOpenConns(maxOpen)
		db.SetMaxIdleConns(maxOpen)
	}
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite (%s): %w", mode, err)
	}

	return db, nil
}

func buildDSN(path string, mode poolMode) string {
	params := url.Values{}
	params.Set("_journal_mode", "WAL")
	params.Set("_busy_timeout", "5000")
	params.Set("_synchronous", "NORMAL")
	params.Set("_foreign_keys", "on")
	if mode == poolWrite {
		params.Set("_txlock", "immediate")
	}
	return path + "?" + params.Encode()
}
