package services

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestWrapKeepsMarkerAndCause(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrFilesystem, "organize", "move file", "could not move a.jpg", cause)
	if !errors.Is(err, ErrFilesystem) {
		t.Fatal("expected ErrFilesystem marker")
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be wrapped")
	}
	want := "filesystem error: organize: move file: could not move a.jpg: permission denied"
	if err.Error() != want {
		t.Fatalf("message = %q, want %q", err.Error(), want)
	}
}

func TestWrapDefaults(t *testing.T) {
	err := Wrap(nil, "", "", "", nil)
	if !errors.Is(err, ErrFilesystem) {
		t.Fatal("nil marker should default to ErrFilesystem")
	}
	if !strings.Contains(err.Error(), "operation failure") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestSeverityOf(t *testing.T) {
	tests := []struct {
		err  error
		want Severity
	}{
		{Wrap(ErrValidation, "organize", "", "no directory selected", nil), SeverityWarning},
		{Wrap(ErrBusy, "organize", "", "locked", nil), SeverityWarning},
		{Wrap(ErrFilesystem, "organize", "", "boom", nil), SeverityError},
		{Wrap(ErrConfiguration, "config", "", "bad", nil), SeverityError},
		{errors.New("plain"), SeverityError},
	}
	for _, tt := range tests {
		if got := SeverityOf(tt.err); got != tt.want {
			t.Errorf("SeverityOf(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	if _, ok := RunIDFromContext(ctx); ok {
		t.Fatal("expected no run id")
	}
	ctx = WithRunID(ctx, "run-1")
	ctx = WithDirectory(ctx, "/tmp/x")
	if id, ok := RunIDFromContext(ctx); !ok || id != "run-1" {
		t.Fatalf("run id = %q, %v", id, ok)
	}
	if dir, ok := DirectoryFromContext(ctx); !ok || dir != "/tmp/x" {
		t.Fatalf("directory = %q, %v", dir, ok)
	}
	if WithRunID(ctx, "") != ctx {
		t.Fatal("empty run id should return the same context")
	}
}
