package config

import (
	"strings"
	"testing"
)

func TestLoadServerDefaults(t *testing.T) {
	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("load server: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":8080")
	}
	if cfg.EmailFile != DefaultEmailFile {
		t.Fatalf("EmailFile = %q, want %q", cfg.EmailFile, DefaultEmailFile)
	}
	if cfg.LogFile != "" {
		t.Fatalf("LogFile = %q, want empty", cfg.LogFile)
	}
	if cfg.Stylesheet != "/styles/midnight.css" {
		t.Fatalf("Stylesheet = %q", cfg.Stylesheet)
	}
}

func TestLoadServerOverrides(t *testing.T) {
	t.Setenv("CAFE_HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("CAFE_EMAIL_FILE", "/tmp/marker")
	t.Setenv("CAFE_LOG_FILE", "/tmp/cafe.log")

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("load server: %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9000" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.EmailFile != "/tmp/marker" {
		t.Fatalf("EmailFile = %q", cfg.EmailFile)
	}
	if cfg.LogFile != "/tmp/cafe.log" {
		t.Fatalf("LogFile = %q", cfg.LogFile)
	}
}

func TestLoadChainerDefaults(t *testing.T) {
	cfg, err := LoadChainer()
	if err != nil {
		t.Fatalf("load chainer: %v", err)
	}
	if cfg.MappingFile != "/root/mapping.gpg" {
		t.Fatalf("MappingFile = %q", cfg.MappingFile)
	}
	if cfg.Debug {
		t.Fatal("expected debug off by default")
	}
	if !cfg.SelfDestruct {
		t.Fatal("expected self destruct on by default")
	}
	if cfg.LogFile != "/tmp/chainer.log" {
		t.Fatalf("LogFile = %q", cfg.LogFile)
	}
}

func TestLoadChainerDebugFlag(t *testing.T) {
	t.Setenv("DEBUG_MODE", "true")
	t.Setenv("CHAINER_SELF_DESTRUCT", "false")

	cfg, err := LoadChainer()
	if err != nil {
		t.Fatalf("load chainer: %v", err)
	}
	if !cfg.Debug {
		t.Fatal("expected debug on")
	}
	if cfg.SelfDestruct {
		t.Fatal("expected self destruct off")
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("DEBUG_MODE", "sometimes")

	_, err := LoadChainer()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
