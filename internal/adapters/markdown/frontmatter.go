package markdown

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/adrg/frontmatter"
)

// FrontMatter is the metadata block some markdown documents open with
type FrontMatter struct {
	Title string   `yaml:"title" toml:"title" json:"title"`
	Tags  []string `yaml:"tags" toml:"tags" json:"tags"`
}

// IsZero reports whether no metadata was found
func (f FrontMatter) IsZero() bool {
	return f.Title == "" && len(f.Tags) == 0
}

// ParseFrontMatter splits src into its metadata and body. A document
// without front matter yields zero metadata and the whole of src.
func ParseFrontMatter(src []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(src), &meta)
	if errors.Is(err, frontmatter.ErrNotFound) {
		return FrontMatter{}, src, nil
	}
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse front matter: %w", err)
	}
	return meta, body, nil
}

var frontMatterDelimiters = []string{"---", "+++"}

// frontMatterLines returns how many leading lines of src belong to a
// front matter block, closing delimiter included. Zero when there is none
// or it is never closed.
func frontMatterLines(src []byte) int {
	lines := bytes.Split(src, []byte("\n"))
	if len(lines) == 0 {
		return 0
	}

	first := string(bytes.TrimSpace(bytes.TrimPrefix(lines[0], []byte("\uFEFF"))))
	for _, delim := range frontMatterDelimiters {
		if first != delim {
			continue
		}
		for i := 1; i < len(lines); i++ {
			if string(bytes.TrimSpace(lines[i])) == delim {
				return i + 1
			}
		}
	}
	return 0
}

// SkipLines returns a predicate for the lines of src that hold no
// headings: front matter and fenced code.
func SkipLines(src []byte) func(line int) bool {
	fences := NewFenceIndex(src)
	head := frontMatterLines(src)
	if head > 0 {
		if _, _, err := ParseFrontMatter(src); err != nil {
			head = 0
		}
	}
	return func(line int) bool {
		return line <= head || fences.Contains(line)
	}
}
