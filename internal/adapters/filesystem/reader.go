package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"wikimap/internal/application"
	"wikimap/internal/domain"
)

// DefaultExtension is appended to document IDs to find their files
const DefaultExtension = ".wiki"

// Reader implements ports.Wiki and ports.TextSource on the local filesystem
type Reader struct {
	root string
	ext  string
}

// NewReader creates a reader for the wiki in root. Document files are named
// after their ID plus ext.
func NewReader(root, ext string) *Reader {
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &Reader{root: ExpandHome(root), ext: ext}
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// Root returns the wiki directory
func (r *Reader) Root() string {
	return r.root
}

// Extension returns the document file extension, including the dot
func (r *Reader) Extension() string {
	return r.ext
}

// Path returns the file backing a document. IDs may contain forward slashes
// for documents in subdirectories.
func (r *Reader) Path(id domain.DocumentID) string {
	return filepath.Join(r.root, filepath.FromSlash(string(id))+r.ext)
}

// Read returns the content of a document
func (r *Reader) Read(ctx context.Context, id domain.DocumentID) (string, error) {
	path := r.Path(id)
	content, err := r.read(ctx, path)
	if err != nil {
		return "", &application.DocumentError{ID: id, Path: path, Err: err}
	}
	return content, nil
}

// ReadText returns the content of an arbitrary file
func (r *Reader) ReadText(ctx context.Context, path string) (string, error) {
	path = ExpandHome(path)
	content, err := r.read(ctx, path)
	if err != nil {
		return "", &application.DocumentError{Path: path, Err: err}
	}
	return content, nil
}

// DiaryPath returns the diary note for date, <root>/<dir>/<date>.<filetype>
func (r *Reader) DiaryPath(dir, date, filetype string) string {
	filetype = strings.TrimPrefix(filetype, ".")
	if filetype == "" {
		filetype = strings.TrimPrefix(r.ext, ".")
	}
	return filepath.Join(r.root, dir, date+"."+filetype)
}

func (r *Reader) read(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
