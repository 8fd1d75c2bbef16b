package persist

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"platechat/internal/domain"
	"platechat/internal/logger"
)

func TestSQLiteKV(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	kv, err := NewSQLiteKV(filepath.Join(t.TempDir(), "test.db"), log)
	if err != nil {
		t.Fatalf("sqlitekv: %v", err)
	}
	defer kv.Close()
	ctx := context.Background()

	if _, err := kv.Get(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := kv.Set(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("set: %v", err)
	}
	// Upsert.
	if err := kv.Set(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	raw, err := kv.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(raw) != "v2" {
		t.Errorf("got %q, want v2", raw)
	}

	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := kv.Get(ctx, "k"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}

func TestSQLiteKVReopen(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	kv, err := NewSQLiteKV(path, log)
	if err != nil {
		t.Fatalf("sqlitekv: %v", err)
	}
	if err := kv.Set(ctx, StateKey, []byte(`{"sessions": []}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	kv.Close()

	// Data survives process restart.
	kv, err = NewSQLiteKV(path, log)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer kv.Close()

	raw, err := kv.Get(ctx, StateKey)
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if string(raw) != `{"sessions": []}` {
		t.Errorf("got %q", raw)
	}
}
