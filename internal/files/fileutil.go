package files

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

const shredPasses = 5

// FileExists checks if the given file exists.
func FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return !errors.Is(err, fs.ErrNotExist)
}

// SecureRemove overwrites path with random data several times, then with
// zeros, and unlinks it. Directories have their regular files shredded and
// are then removed.
func SecureRemove(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return shred(path, info.Size())
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		child := filepath.Join(path, e.Name())
		ci, err := e.Info()
		if err != nil {
			return err
		}
		if err := shred(child, ci.Size()); err != nil {
			return err
		}
	}
	return os.Remove(path)
}

func shred(path string, size int64) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	for i := 0; i < shredPasses; i++ {
		if err := overwrite(f, io.LimitReader(rand.Reader, size)); err != nil {
			f.Close()
			return fmt.Errorf("shred pass %d: %w", i+1, err)
		}
	}
	if err := overwrite(f, io.LimitReader(zeroReader{}, size)); err != nil {
		f.Close()
		return fmt.Errorf("shred zero pass: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Remove(path)
}

func overwrite(f *os.File, src io.Reader) error {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if _, err := io.Copy(f, src); err != nil {
		return err
	}
	return f.Sync()
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}
