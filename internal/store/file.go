package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dotdb/internal/value"
)

// FileBackend persists the whole document as a single JSON object in one
// file. Every record access is a whole-file deserialize or rewrite, so
// each operation is O(document size) in I/O.
type FileBackend struct {
	path string
	log  *slog.Logger
}

// OpenFile creates or opens the document file at the given path.
//
// The path must have a ".json" suffix. The parent directory and the file
// are created if absent, and the file must be writable; both are checked
// here rather than at first operation. A missing or corrupt file is later
// treated as an empty document (with a warning), so an existing file is
// not validated at open time.
func OpenFile(path string, logger *slog.Logger) (*FileBackend, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !strings.HasSuffix(path, ".json") {
		return nil, fmt.Errorf("store file %q must have a .json suffix", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	// Create the file if absent and verify it is writable.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open store file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("open store file: %w", err)
	}

	return &FileBackend{path: path, log: logger}, nil
}

// Path returns the backing file path.
func (b *FileBackend) Path() string {
	return b.path
}

// load deserializes the whole document. A missing, empty, or corrupt file
// degrades to an empty document with a warning; the store self-heals on
// the next save.
func (b *FileBackend) load() (value.Object, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			b.log.Warn("store file missing, treating as empty document", "path", b.path)
			return value.Object{}, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	if len(data) == 0 {
		return value.Object{}, nil
	}

	doc, err := value.Unmarshal(data)
	if err != nil {
		b.log.Warn("store file corrupt, treating as empty document", "path", b.path, "error", err)
		return value.Object{}, nil
	}
	obj, ok := doc.(value.Object)
	if !ok {
		b.log.Warn("store file does not hold a JSON object, treating as empty document", "path", b.path)
		return value.Object{}, nil
	}
	return obj, nil
}

// save serializes and overwrites the whole document. Writes go through a
// temp file and rename so a crash mid-write cannot truncate the store.
func (b *FileBackend) save(doc value.Object) error {
	data, err := value.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}

// LoadRecord implements Backend.
func (b *FileBackend) LoadRecord(_ context.Context, key string) (value.Value, bool, error) {
	doc, err := b.load()
	if err != nil {
		return nil, false, err
	}
	v, ok := doc[key]
	return v, ok, nil
}

// SaveRecord implements Backend.
func (b *FileBackend) SaveRecord(_ context.Context, key string, v value.Value) error {
	doc, err := b.load()
	if err != nil {
		return err
	}
	doc[key] = v
	return b.save(doc)
}

// DeleteRecord implements Backend.
func (b *FileBackend) DeleteRecord(_ context.Context, key string) (bool, error) {
	doc, err := b.load()
	if err != nil {
		return false, err
	}
	if _, ok := doc[key]; !ok {
		return false, nil
	}
	delete(doc, key)
	if err := b.save(doc); err != nil {
		return false, err
	}
	return true, nil
}

// LoadAll implements Backend.
func (b *FileBackend) LoadAll(_ context.Context) (value.Object, error) {
	return b.load()
}

// Clear implements Backend.
func (b *FileBackend) Clear(_ context.Context) error {
	return b.save(value.Object{})
}

// Close implements Backend. The file backend holds no open handles.
func (b *FileBackend) Close() error {
	return nil
}
