package application

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"wikimap/internal/domain"
)

func TestDocumentError_Is(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		err := fmt.Errorf("read: %w", &DocumentError{ID: "a", Path: "a.wiki", Err: fs.ErrNotExist})

		if !errors.Is(err, ErrNotFound) {
			t.Error("expected missing file to match ErrNotFound")
		}
		if !errors.Is(err, ErrUnreadable) {
			t.Error("expected missing file to match ErrUnreadable")
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Error("expected cause to stay reachable")
		}
	})

	t.Run("permission denied", func(t *testing.T) {
		err := &DocumentError{Path: "secret.wiki", Err: fs.ErrPermission}

		if errors.Is(err, ErrNotFound) {
			t.Error("permission error must not match ErrNotFound")
		}
		if !errors.Is(err, ErrUnreadable) {
			t.Error("expected permission error to match ErrUnreadable")
		}
	})
}

func TestDocumentError_Error(t *testing.T) {
	withID := &DocumentError{ID: "a", Path: "/w/a.wiki", Err: fs.ErrNotExist}
	if got := withID.Error(); got != "cannot open a (/w/a.wiki): file does not exist" {
		t.Errorf("unexpected message %q", got)
	}

	byPath := &DocumentError{Path: "/w/b.md", Err: fs.ErrPermission}
	if got := byPath.Error(); got != "cannot open /w/b.md: permission denied" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestCycleError(t *testing.T) {
	err := &CycleError{ID: "index", Ancestry: domain.Ancestry{"index", "b"}}

	if !errors.Is(err, ErrCycle) {
		t.Error("expected CycleError to match ErrCycle")
	}
	want := "link index closes a circle: index -> b -> index"
	if got := err.Error(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestUsageError(t *testing.T) {
	err := &UsageError{Message: "unexpected argument"}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Error("expected UsageError to match ErrInvalidArgument")
	}
}
