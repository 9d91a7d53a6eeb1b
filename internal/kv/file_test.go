package kv_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Tiliavir/gym/internal/kv"
)

func TestFileStoreGetMissing(t *testing.T) {
	s, err := kv.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	v, ok, err := s.Get(context.Background(), "workout_monday")
	if err != nil {
		t.Fatalf("Get on missing key: %v", err)
	}
	if ok || v != "" {
		t.Errorf("Get on missing key = (%q, %v), want (\"\", false)", v, ok)
	}
}

func TestFileStoreSetAndGet(t *testing.T) {
	dir := t.TempDir()
	s, err := kv.NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if err := s.Set(ctx, "workout_monday", `[{"id":"a"}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, "workout_monday", `[]`); err != nil {
		t.Fatalf("Set (replace): %v", err)
	}

	v, ok, err := s.Get(ctx, "workout_monday")
	if err != nil {
		t.Fatalf("Get after set: %v", err)
	}
	if !ok || v != "[]" {
		t.Errorf("Get = (%q, %v), want (%q, true)", v, ok, "[]")
	}

	// Only the final file is left behind after a successful write.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "workout_monday.json" {
		t.Errorf("dir entries = %v, want only workout_monday.json", entries)
	}
}

func TestFileStoreSetErrorNamesKey(t *testing.T) {
	// A regular file where the data directory should be makes every write fail.
	dir := filepath.Join(t.TempDir(), "data")
	if err := os.WriteFile(dir, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := kv.NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	err = s.Set(context.Background(), "workout_friday", "[]")
	if err == nil {
		t.Fatal("Set into a file path succeeded, want error")
	}
	if !strings.Contains(err.Error(), "workout_friday") {
		t.Errorf("Set error = %q, want it to name the key", err)
	}
}

func TestFileStoreRejectsPathKeys(t *testing.T) {
	s, err := kv.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"../escape", "a/b", ""} {
		if err := s.Set(context.Background(), key, "x"); err == nil {
			t.Errorf("Set(%q) succeeded, want error", key)
		}
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := kv.Open(context.Background(), kv.Options{Backend: "floppy"}); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestOpenMemoryBackend(t *testing.T) {
	s, err := kv.Open(context.Background(), kv.Options{Backend: kv.BackendMemory})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if err := s.Set(ctx, "k", "v"); err != nil {
		t.Fatal(err)
	}
	v, ok, err := s.Get(ctx, "k")
	if err != nil || !ok || v != "v" {
		t.Errorf("Get = (%q, %v, %v), want (\"v\", true, nil)", v, ok, err)
	}
}
