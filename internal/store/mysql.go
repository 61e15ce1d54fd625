package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQL is a Store backed by a single key/value table.  It is the
// durable alternative to the Redis backend for installations that
// already run MySQL.
type MySQL struct {
	db *sql.DB
}

// OpenMySQL connects to MySQL, verifies the connection and makes sure
// the blobs table exists.
func OpenMySQL(user, pass, host, port, name string) (*MySQL, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime is irrelevant for blob storage but loc=UTC keeps any
	// server-side timestamps consistent.
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&loc=UTC", auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	const ddl = `CREATE TABLE IF NOT EXISTS blobs (
	    k VARCHAR(64) NOT NULL PRIMARY KEY,
	    v LONGTEXT NOT NULL
	)`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return nil, fmt.Errorf("create blobs table: %w", err)
	}
	return &MySQL{db: db}, nil
}

// Get returns the blob stored under key, or ErrNotFound.
func (m *MySQL) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT v FROM blobs WHERE k = ?`
	var v []byte
	err := m.db.QueryRowContext(ctx, q, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Set replaces the blob stored under key.
func (m *MySQL) Set(ctx context.Context, key string, data []byte) error {
	const q = `INSERT INTO blobs (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v = VALUES(v)`
	_, err := m.db.ExecContext(ctx, q, key, data)
	return err
}

// Clear removes the blob stored under key.
func (m *MySQL) Clear(ctx context.Context, key string) error {
	const q = `DELETE FROM blobs WHERE k = ?`
	_, err := m.db.ExecContext(ctx, q, key)
	return err
}

// Close releases the underlying connection pool.
func (m *MySQL) Close() error { return m.db.Close() }
