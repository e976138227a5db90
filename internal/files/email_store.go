package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EmailStore is the marker record at a fixed path. Its presence is what the
// gate checks; its content is the last submitted email or, after chaining,
// the chain status.
type EmailStore struct {
	filePath string
}

// NewEmailStore creates a store backed by filePath.
func NewEmailStore(filePath string) *EmailStore {
	return &EmailStore{filePath: filePath}
}

// Path returns the marker file path.
func (s *EmailStore) Path() string {
	return s.filePath
}

// Exists reports whether the marker file is present. A path that cannot be
// stat'ed counts as absent so the gate shows the form.
func (s *EmailStore) Exists() bool {
	_, err := os.Stat(s.filePath)
	return err == nil
}

// Save overwrites the marker file with value.
func (s *EmailStore) Save(value string) error {
	if err := os.WriteFile(s.filePath, []byte(value), 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(s.filePath), err)
	}
	return nil
}

// Load returns the marker content with surrounding whitespace removed.
func (s *EmailStore) Load() (string, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Owner returns the uid and gid of the marker file.
func (s *EmailStore) Owner() (uid, gid int, err error) {
	info, err := os.Stat(s.filePath)
	if err != nil {
		return 0, 0, err
	}
	return ownerOf(info)
}

// Chown restores the marker file's ownership.
func (s *EmailStore) Chown(uid, gid int) error {
	return os.Chown(s.filePath, uid, gid)
}
