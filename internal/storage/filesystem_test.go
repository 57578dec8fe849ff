package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStorePutAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}

	ctx := context.Background()
	err = store.Put(ctx, PutParams{Key: "uploads/abc.png", Data: []byte{0x89, 0x50}, ContentType: "image/png"})
	if err != nil {
		t.Fatalf("Put error: %v", err)
	}
	path := filepath.Join(dir, "uploads", "abc.png")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file at %s: %v", path, err)
	}

	if err := store.Delete(ctx, "uploads/abc.png"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file still present after delete: %v", err)
	}
}

func TestFileStoreDeleteMissingIsNoop(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}
	if err := store.Delete(context.Background(), "never-written.png"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestFileStoreRejectsTraversal(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}
	err = store.Put(context.Background(), PutParams{Key: "../escape.png", Data: []byte{1}})
	if err == nil {
		t.Fatal("expected error for traversal key")
	}
}

func TestNewFileStoreRequiresPath(t *testing.T) {
	if _, err := NewFileStore("  "); err == nil {
		t.Fatal("expected error for empty base path")
	}
}
