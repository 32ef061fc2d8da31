// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sarychelek/kiosk/internal/logger"
	"github.com/sarychelek/kiosk/migrations"
)

// SQLiteKV is the durable [KV] implementation backed by a single-table
// sqlite database on the kiosk device. Every slot is one row of the "slots"
// table; the schema is managed by goose migrations embedded in the binary.
//
// Backend errors are logged and swallowed so that callers keep the
// never-throws contract of [KV]: a failed read behaves like an absent key,
// a failed write leaves the previous value in place.
type SQLiteKV struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewSQLiteKV opens (creating if necessary) the sqlite database at dsn,
// verifies the connection and applies pending migrations.
func NewSQLiteKV(ctx context.Context, dsn string, log *logger.Logger) (*SQLiteKV, error) {
	log.Debug().Str("dsn", dsn).Msg("opening slot storage")

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite slot storage: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		return nil, errors.Join(fmt.Errorf("ping sqlite slot storage: %w", err), db.Close())
	}

	if err = migrations.Migrate(db); err != nil {
		return nil, errors.Join(fmt.Errorf("migrate slot storage: %w", err), db.Close())
	}

	return &SQLiteKV{db: db, logger: log}, nil
}

func (s *SQLiteKV) Get(key string) (string, bool) {
	query, args, err := selectSlot(key)
	if err != nil {
		s.logger.Err(err).Str("key", key).Msg("build slot select")
		return "", false
	}

	var value string
	if err = s.db.QueryRow(query, args...).Scan(&value); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Err(err).Str("key", key).Msg("read slot")
		}
		return "", false
	}

	return value, true
}

func (s *SQLiteKV) Set(key, value string) {
	query, args, err := upsertSlot(key, value)
	if err != nil {
		s.logger.Err(err).Str("key", key).Msg("build slot upsert")
		return
	}

	if _, err = s.db.Exec(query, args...); err != nil {
		s.logger.Err(err).Str("key", key).Msg("write slot")
	}
}

func (s *SQLiteKV) Remove(key string) {
	query, args, err := deleteSlot(key)
	if err != nil {
		s.logger.Err(err).Str("key", key).Msg("build slot delete")
		return
	}

	if _, err = s.db.Exec(query, args...); err != nil {
		s.logger.Err(err).Str("key", key).Msg("remove slot")
	}
}

// Close releases the underlying database handle.
func (s *SQLiteKV) Close() error {
	return s.db.Close()
}
