package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap("catalog_error", "load synonyms", cause)

	if err.Error() != "load synonyms: connection refused" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be unwrapped")
	}
	if !IsCode(fmt.Errorf("startup: %w", err), "catalog_error") {
		t.Fatalf("expected code through wrapping")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(errors.New("plain")); got != "" {
		t.Fatalf("expected empty code got %q", got)
	}
	if IsCode(errors.New("plain"), "") {
		t.Fatalf("empty code should never match")
	}
	if got := CodeOf(Wrap("invalid_input", "bad", nil)); got != "invalid_input" {
		t.Fatalf("expected invalid_input got %q", got)
	}
}
