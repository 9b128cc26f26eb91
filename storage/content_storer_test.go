package storage

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/coreybb/storyboard/models"
)

func TestLocalFileStorer_StoreAndLoad(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalFileStorer(dir)

	rel, err := s.Store("pkg-1", []byte(`{"ok":true}`), models.ExportFormatJSON)
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if rel != filepath.Join("packages", "pkg-1.json") {
		t.Fatalf("relative path = %q", rel)
	}

	got, err := s.Load("pkg-1", models.ExportFormatJSON)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != `{"ok":true}` {
		t.Fatalf("Load = %q", got)
	}

	if _, err := s.Load("pkg-1", models.ExportFormatEPUB); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Load missing file error = %v", err)
	}
}

func TestLocalFileStorer_RejectsBadInput(t *testing.T) {
	s := NewLocalFileStorer(t.TempDir())
	if _, err := s.Store("", []byte("x"), models.ExportFormatJSON); err == nil {
		t.Fatalf("expected error for empty package id")
	}
	if _, err := s.Store("../escape", []byte("x"), models.ExportFormatJSON); err == nil {
		t.Fatalf("expected error for path traversal")
	}
	if _, err := s.Store("pkg", []byte("x"), models.ExportFormat("pdf")); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestNewLocalFileStorer_DefaultBase(t *testing.T) {
	if got := NewLocalFileStorer("").BasePath(); got != outputDirForStorage {
		t.Fatalf("BasePath = %q", got)
	}
}
