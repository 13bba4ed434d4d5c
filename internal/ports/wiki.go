package ports

import (
	"context"

	"wikimap/internal/domain"
)

// DocumentReader resolves wiki documents to their text
type DocumentReader interface {
	// Read returns the document content. A missing document is reported with
	// an error matching application.ErrNotFound, any other failure with one
	// matching application.ErrUnreadable.
	Read(ctx context.Context, id domain.DocumentID) (string, error)
}

// Wiki is a document store rooted in a directory on disk
type Wiki interface {
	DocumentReader

	// Path returns the backing file of a document, whether or not it exists
	Path(id domain.DocumentID) string

	// Root returns the wiki directory
	Root() string
}

// TextSource loads arbitrary files by path, for the per-file utilities
type TextSource interface {
	ReadText(ctx context.Context, path string) (string, error)
}
