package store

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// backendKinds lists the backends every semantic test runs against; the
// two must be observably identical through the operation layer.
var backendKinds = []string{"file", "sqlite"}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openBackend(t *testing.T, kind string) Backend {
	t.Helper()

	switch kind {
	case "file":
		b, err := OpenFile(filepath.Join(t.TempDir(), "store.json"), discardLogger())
		require.NoError(t, err)
		return b
	case "sqlite":
		b, err := OpenSQLite(filepath.Join(t.TempDir(), "store.db"))
		require.NoError(t, err)
		return b
	default:
		t.Fatalf("unknown backend kind %q", kind)
		return nil
	}
}

func newTestStore(t *testing.T, kind string) *Store {
	t.Helper()

	b := openBackend(t, kind)
	t.Cleanup(func() {
		if err := b.Close(); err != nil {
			t.Errorf("close backend: %v", err)
		}
	})
	return New(b, WithLogger(discardLogger()))
}
