package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/iho/dualstream/internal/adapter/store"
)

func TestFileStore_SaveLoad(t *testing.T) {
	cfg := store.Config{StorageKey: "dualstream_finance_live", SchemaVersion: 1}

	s, err := store.NewFileStore(t.TempDir(), cfg)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	ctx := context.Background()

	if _, err := s.Load(ctx); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound before first save, got %v", err)
	}

	want := []byte(`{"wallets": []}`)
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("loaded %q, want %q", got, want)
	}

	// Overwrite
	want = []byte(`{"wallets": [{"id": "w1"}]}`)
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	got, err = s.Load(ctx)
	if err != nil {
		t.Fatalf("second load failed: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("loaded %q, want %q", got, want)
	}

	if err := s.Ping(ctx); err != nil {
		t.Errorf("ping failed: %v", err)
	}
}

func TestConfig_Key(t *testing.T) {
	cfg := store.Config{StorageKey: "dualstream_finance_live", SchemaVersion: 2}
	if got := cfg.Key(); got != "dualstream_finance_live_v2" {
		t.Errorf("unexpected key %q", got)
	}
}
