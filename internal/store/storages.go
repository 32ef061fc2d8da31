package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/sarychelek/kiosk/internal/config"
	"github.com/sarychelek/kiosk/internal/logger"
)

// Storages groups the kiosk's storage layer into a single value that can be
// passed around the service layer: the raw slot storage plus the user
// repository built on top of it.
type Storages struct {
	// KV is the durable slot storage shared by every component.
	KV KV

	// Users is the local collection of registered visitor records.
	Users *UserRepository

	closer func() error
}

// NewStorages initialises the storage layer from configuration. A DSN of
// ":memory:" (or empty) selects the volatile map-backed storage; anything
// else is treated as a sqlite file path, created and migrated on first use.
func NewStorages(ctx context.Context, cfg config.KioskStorage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating storages...")

	dsn := strings.TrimSpace(cfg.DB.DSN)
	if dsn == "" || dsn == ":memory:" || dsn == "memory" {
		kv := NewMemoryKV()
		return &Storages{
			KV:     kv,
			Users:  NewUserRepository(kv, log),
			closer: func() error { return nil },
		}, nil
	}

	kv, err := NewSQLiteKV(ctx, dsn, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &Storages{
		KV:     kv,
		Users:  NewUserRepository(kv, log),
		closer: kv.Close,
	}, nil
}

// Close releases the underlying storage backend.
func (s *Storages) Close() error {
	return s.closer()
}
