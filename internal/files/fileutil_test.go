package files

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present")
	if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	if !FileExists(path) {
		t.Fatal("expected present file to exist")
	}
	if FileExists(filepath.Join(dir, "absent")) {
		t.Fatal("expected absent file not to exist")
	}
}

func TestSecureRemoveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.gpg")
	if err := os.WriteFile(path, []byte("secret mapping content"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := SecureRemove(path); err != nil {
		t.Fatalf("SecureRemove: %v", err)
	}
	if FileExists(path) {
		t.Fatal("expected file to be removed")
	}
}

func TestSecureRemoveDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "work")
	if err := os.Mkdir(dir, 0700); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a", "b"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0600); err != nil {
			t.Fatal(err)
		}
	}

	if err := SecureRemove(dir); err != nil {
		t.Fatalf("SecureRemove: %v", err)
	}
	if FileExists(dir) {
		t.Fatal("expected directory to be removed")
	}
}

func TestSecureRemoveMissing(t *testing.T) {
	if err := SecureRemove(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing path")
	}
}
