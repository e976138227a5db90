package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestLoggerLevelPrefixes(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf)

	l.Info("opened")
	l.Warnf("rejected %q", "x")
	l.Error("write failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), buf.String())
	}
	for i, want := range []string{"INFO: ", "WARN: ", "ERROR: "} {
		if !strings.HasPrefix(lines[i], want) {
			t.Fatalf("line %d = %q, want prefix %q", i, lines[i], want)
		}
	}
	if !strings.HasSuffix(lines[1], `rejected "x"`) {
		t.Fatalf("line 1 = %q", lines[1])
	}
}

func TestLoggerConcurrentWritesKeepPrefixes(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); l.Info("info") }()
		go func() { defer wg.Done(); l.Error("error") }()
	}
	wg.Wait()

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		switch {
		case strings.HasPrefix(line, "INFO: ") && strings.HasSuffix(line, " info"):
		case strings.HasPrefix(line, "ERROR: ") && strings.HasSuffix(line, " error"):
		default:
			t.Fatalf("mismatched line %q", line)
		}
	}
}

func TestNewLoggerAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l, err := NewLogger(path)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	l.Info("first")
	l.Close()

	l, err = NewLogger(path)
	if err != nil {
		t.Fatalf("NewLogger reopen: %v", err)
	}
	l.Info("second")
	l.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
		t.Fatalf("log = %q, want both entries", data)
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Info("ignored")
	l.Close()
}
