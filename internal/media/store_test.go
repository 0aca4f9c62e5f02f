package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveWritesPayload(t *testing.T) {
	store, err := NewStoreAt(t.TempDir())
	if err != nil {
		t.Fatalf("NewStoreAt: %v", err)
	}

	payload := []byte{0x89, 0x50, 0x4E, 0x47}
	path, err := store.Save(payload, "image/png")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasSuffix(path, ".png") {
		t.Errorf("expected .png suffix, got %q", path)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("payload mismatch")
	}
}

func TestSaveRejectsEmptyPayload(t *testing.T) {
	store, err := NewStoreAt(t.TempDir())
	if err != nil {
		t.Fatalf("NewStoreAt: %v", err)
	}
	if _, err := store.Save(nil, "video/mp4"); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestSaveUnknownMimeFallsBack(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStoreAt(dir)
	if err != nil {
		t.Fatalf("NewStoreAt: %v", err)
	}
	path, err := store.Save([]byte("x"), "application/octet-stream")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Ext(path) != ".bin" {
		t.Errorf("got ext %q, want .bin", filepath.Ext(path))
	}
}
