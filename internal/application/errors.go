package application

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"wikimap/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound        = errors.New("not found")
	ErrUnreadable      = errors.New("unreadable")
	ErrCycle           = errors.New("cycle detected")
	ErrDecode          = errors.New("not valid UTF-8 text")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// DocumentError is a failure to read a wiki document or file.
// It always matches ErrUnreadable, and matches ErrNotFound when the file
// does not exist.
type DocumentError struct {
	ID   domain.DocumentID // Empty when the file was addressed by path
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("cannot open %s (%s): %v", e.ID, e.Path, e.Err)
	}
	return fmt.Sprintf("cannot open %s: %v", e.Path, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

func (e *DocumentError) Is(target error) bool {
	switch target {
	case ErrUnreadable:
		return true
	case ErrNotFound:
		return errors.Is(e.Err, fs.ErrNotExist)
	}
	return false
}

// CycleError describes a link that points back into its own path
type CycleError struct {
	ID       domain.DocumentID
	Ancestry domain.Ancestry
}

func (e *CycleError) Error() string {
	path := make([]string, 0, len(e.Ancestry)+1)
	for _, id := range e.Ancestry {
		path = append(path, string(id))
	}
	path = append(path, string(e.ID))
	return fmt.Sprintf("link %s closes a circle: %s", e.ID, strings.Join(path, " -> "))
}

func (e *CycleError) Is(target error) bool {
	return target == ErrCycle
}

// UsageError is an invocation mistake; the CLI prints help and exits 1
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

func (e *UsageError) Is(target error) bool {
	return target == ErrInvalidArgument
}
