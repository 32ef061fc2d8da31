package store

import (
	"context"
	"testing"

	"github.com/sarychelek/kiosk/internal/config"
	"github.com/sarychelek/kiosk/internal/logger"
)

func TestNewStorages_MemoryDSN(t *testing.T) {
	for _, dsn := range []string{"", ":memory:", "memory", "  :memory:  "} {
		cfg := config.KioskStorage{DB: config.KioskDB{DSN: dsn}}

		storages, err := NewStorages(context.Background(), cfg, logger.Nop())
		if err != nil {
			t.Fatalf("dsn %q: unexpected error: %v", dsn, err)
		}

		if _, ok := storages.KV.(*MemoryKV); !ok {
			t.Errorf("dsn %q: expected map-backed storage, got %T", dsn, storages.KV)
		}
		if storages.Users == nil {
			t.Errorf("dsn %q: expected user repository to be wired", dsn)
		}
		if err = storages.Close(); err != nil {
			t.Errorf("dsn %q: close: %v", dsn, err)
		}
	}
}
