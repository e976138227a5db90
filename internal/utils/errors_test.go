package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestCustomErrorMessages(t *testing.T) {
	err := New(CodeInvalidEmail, "bad")
	if got := err.Error(); got != "Code: 1, Message: bad" {
		t.Fatalf("Error() = %q", got)
	}
	if got := UserMessage(err); got != "bad" {
		t.Fatalf("UserMessage = %q", got)
	}
	if !HasCode(err, CodeInvalidEmail) || HasCode(err, CodeSaveFailed) {
		t.Fatal("HasCode mismatch")
	}
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(CodeSaveFailed, "save", fs.ErrPermission)
	wrapped := fmt.Errorf("outer: %w", err)

	if !errors.Is(wrapped, fs.ErrPermission) {
		t.Fatal("expected cause to unwrap")
	}
	if !HasCode(wrapped, CodeSaveFailed) {
		t.Fatal("expected code through wrapping")
	}
	if got := UserMessage(wrapped); got != "save" {
		t.Fatalf("UserMessage = %q", got)
	}
}

func TestUserMessageOfPlainError(t *testing.T) {
	if got := UserMessage(errors.New("x")); got != "" {
		t.Fatalf("UserMessage = %q, want empty", got)
	}
	if got := UserMessage(nil); got != "" {
		t.Fatalf("UserMessage(nil) = %q", got)
	}
}
