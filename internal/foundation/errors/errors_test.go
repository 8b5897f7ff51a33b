package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			WithSeverity(SeverityFatal).
			WithContext("file", "doctools.yaml").
			Build()

		if err.Category() != CategoryConfig {
			t.Errorf("expected category %s, got %s", CategoryConfig, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if err.Message() != "invalid configuration" {
			t.Errorf("expected message 'invalid configuration', got %s", err.Message())
		}

		file, exists := err.context.GetString("file")
		if !exists || file != "doctools.yaml" {
			t.Errorf("expected context file=doctools.yaml, got %v", file)
		}
	})

	t.Run("Error detection", func(t *testing.T) {
		err := NotFoundError("input file not found").WithPath("in.html").Build()

		if _, ok := AsClassified(fmt.Errorf("wrapped: %w", err)); !ok {
			t.Error("expected error to be classified")
		}
		if !HasCategory(err, CategoryNotFound) {
			t.Error("expected error to have not_found category")
		}
		if err.Severity() != SeverityFatal {
			t.Error("expected not-found error to be fatal")
		}
		if err.Path() != "in.html" {
			t.Errorf("expected path in.html, got %q", err.Path())
		}
	})

	t.Run("Wrapped chain", func(t *testing.T) {
		err := PermissionError("permission denied reading input file").
			WithCause(fs.ErrPermission).
			WithPath("/tmp/in.html").
			Build()
		wrapped := fmt.Errorf("minify: %w", err)

		if !errors.Is(wrapped, fs.ErrPermission) {
			t.Error("expected fs.ErrPermission in chain")
		}
		if !HasCategory(wrapped, CategoryPermission) {
			t.Error("expected permission category through the wrap")
		}
		if HasCategory(errors.New("plain"), CategoryPermission) {
			t.Error("expected unclassified error to have no category")
		}
	})
}

func TestErrorBuilder(t *testing.T) {
	original := errors.New("exec: \"doxygen\": executable file not found in $PATH")
	err := ExternalError("doxygen execution failed").WithCause(original).Build()

	if err.Severity() != SeverityWarning {
		t.Errorf("expected warning severity, got %s", err.Severity())
	}
	if !errors.Is(err, original) {
		t.Error("expected cause to be reachable through errors.Is")
	}
	want := "[external] doxygen execution failed: " + original.Error()
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestErrorIs(t *testing.T) {
	a := NotFoundError("input file not found").WithPath("a").Build()
	b := NotFoundError("input file not found").WithPath("b").Build()
	c := PermissionError("input file not found").Build()

	if !errors.Is(a, b) {
		t.Error("expected same category and message to match")
	}
	if errors.Is(a, c) {
		t.Error("expected different categories not to match")
	}
}
