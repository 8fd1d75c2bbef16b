package persist

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"platechat/internal/domain"
	"platechat/internal/logger"
)

// Compile-time interface check.
var _ domain.KeyValueStore = (*FileKV)(nil)

// FileKV stores each key as one file under a directory. Writes go through
// a temp file and rename so a crash mid-write never leaves a torn document.
type FileKV struct {
	dir string
	log *logger.Logger
}

// NewFileKV creates the directory if needed and returns the store.
func NewFileKV(dir string, log *logger.Logger) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filekv: create dir: %w", err)
	}
	return &FileKV{dir: dir, log: log}, nil
}

// path maps a key onto a filename. Keys may contain slashes; files may not.
func (f *FileKV) path(key string) string {
	name := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	name = strings.ReplaceAll(name, "/", "_")
	return filepath.Join(f.dir, name+".json")
}

// Get reads a key. Missing keys return domain.ErrNotFound.
func (f *FileKV) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("filekv: read %s: %w", key, err)
	}
	return raw, nil
}

// Set writes a key atomically.
func (f *FileKV) Set(ctx context.Context, key string, value []byte) error {
	target := f.path(key)
	tmp := target + ".tmp"

	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("filekv: write %s: %w", key, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("filekv: rename %s: %w", key, err)
	}

	f.log.Debug("filekv: wrote %s (%d bytes)", key, len(value))
	return nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (f *FileKV) Delete(ctx context.Context, key string) error {
	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("filekv: delete %s: %w", key, err)
	}
	return nil
}

// Close is a no-op; files are closed per-operation.
func (f *FileKV) Close() error { return nil }
