package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalFiles_Read(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "report.txt"), []byte("contents"), 0o644); err != nil {
		t.Fatal(err)
	}

	files := NewLocalFiles(root)

	data, err := files.Read(context.Background(), "report.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "contents" {
		t.Errorf("unexpected content: %q", data)
	}
}

func TestLocalFiles_Subdirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "inbox"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "inbox", "doc.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	files := NewLocalFiles(root)

	if _, err := files.Read(context.Background(), "inbox/doc.txt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLocalFiles_NotFound(t *testing.T) {
	files := NewLocalFiles(t.TempDir())

	_, err := files.Read(context.Background(), "ghost.txt")
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}

func TestLocalFiles_PathEscape(t *testing.T) {
	files := NewLocalFiles(t.TempDir())

	for _, name := range []string{
		"../secret.txt",
		"inbox/../../secret.txt",
		"/etc/passwd",
	} {
		_, err := files.Read(context.Background(), name)
		if !errors.Is(err, ErrPathOutsideRoot) {
			t.Errorf("%s: expected ErrPathOutsideRoot, got %v", name, err)
		}
	}
}
