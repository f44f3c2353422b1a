package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"dotdb/internal/value"
)

func TestOpenSQLite_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	b, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer b.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpenSQLite_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	for i := 0; i < 3; i++ {
		b, err := OpenSQLite(path)
		if err != nil {
			t.Fatalf("OpenSQLite() iteration %d failed: %v", i, err)
		}
		b.Close()
	}

	b, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("final OpenSQLite() failed: %v", err)
	}
	defer b.Close()

	var name string
	err = b.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='records'",
	).Scan(&name)
	if err != nil {
		t.Errorf("records table not found after idempotent opens: %v", err)
	}
}

func TestOpenSQLite_InvalidPath(t *testing.T) {
	_, err := OpenSQLite("/nonexistent/dir/store.db")
	if err == nil {
		t.Error("expected error for invalid path, got nil")
	}
}

func TestSQLiteBackend_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")
	ctx := context.Background()

	b1, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	if err := b1.SaveRecord(ctx, "user", value.Object{"age": value.Number(21)}); err != nil {
		t.Fatalf("SaveRecord() failed: %v", err)
	}
	b1.Close()

	b2, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("second OpenSQLite() failed: %v", err)
	}
	defer b2.Close()

	v, found, err := b2.LoadRecord(ctx, "user")
	if err != nil {
		t.Fatalf("LoadRecord() failed: %v", err)
	}
	if !found {
		t.Fatal("record not found after reopen")
	}
	want := value.Object{"age": value.Number(21)}
	if !value.DeepEqual(want, v) {
		t.Errorf("LoadRecord() = %v, want %v", v, want)
	}
}

func TestSQLiteBackend_UpsertKeepsSingleRow(t *testing.T) {
	b, err := OpenSQLite(filepath.Join(t.TempDir(), "store.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer b.Close()
	ctx := context.Background()

	if err := b.SaveRecord(ctx, "user", value.Number(1)); err != nil {
		t.Fatalf("first SaveRecord() failed: %v", err)
	}
	if err := b.SaveRecord(ctx, "user", value.Number(2)); err != nil {
		t.Fatalf("second SaveRecord() failed: %v", err)
	}

	var count int
	if err := b.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 1 {
		t.Errorf("records table has %d rows, want 1", count)
	}

	v, _, err := b.LoadRecord(ctx, "user")
	if err != nil {
		t.Fatalf("LoadRecord() failed: %v", err)
	}
	if !value.DeepEqual(value.Number(2), v) {
		t.Errorf("LoadRecord() = %v, want 2", v)
	}
}

func TestSQLiteBackend_NotConnected(t *testing.T) {
	// A zero-value backend was never opened; operations must fail with a
	// typed error rather than terminating the process.
	var b SQLiteBackend
	ctx := context.Background()

	_, _, err := b.LoadRecord(ctx, "a")
	if !IsNotConnected(err) {
		t.Errorf("LoadRecord() error = %v, want not-connected", err)
	}
	if err := b.SaveRecord(ctx, "a", value.Number(1)); !IsNotConnected(err) {
		t.Errorf("SaveRecord() error = %v, want not-connected", err)
	}

	// The operation layer surfaces the same condition with its code.
	st := New(&b, WithLogger(discardLogger()))
	_, err = st.Get(ctx, "a")
	if !IsNotConnected(err) {
		t.Errorf("Get() error = %v, want not-connected", err)
	}
}

func TestSQLiteBackend_UseAfterClose(t *testing.T) {
	b, err := OpenSQLite(filepath.Join(t.TempDir(), "store.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	_, _, err = b.LoadRecord(context.Background(), "a")
	if !IsNotConnected(err) {
		t.Errorf("LoadRecord() after close error = %v, want not-connected", err)
	}
}

func TestSQLiteBackend_CloseNilDB(t *testing.T) {
	var b *SQLiteBackend
	if err := b.Close(); err != nil {
		t.Errorf("Close() on nil backend should not error: %v", err)
	}

	b2 := &SQLiteBackend{}
	if err := b2.Close(); err != nil {
		t.Errorf("Close() on unopened backend should not error: %v", err)
	}
}
