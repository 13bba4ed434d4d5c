package commands

import (
	"context"
	"fmt"
	"strings"

	"wikimap/internal/application"
	"wikimap/internal/domain"
	"wikimap/internal/ports"
)

// FenceFinder reports the lines of a markdown document that cannot hold
// headings, such as fenced code or front matter
type FenceFinder func(src []byte) func(line int) bool

// TagsResult contains the heading tags of one file
type TagsResult struct {
	File string
	Tags []domain.Tag
}

// String renders the tags as ctags records, one per line
func (r *TagsResult) String() string {
	var sb strings.Builder
	for _, tag := range r.Tags {
		sb.WriteString(tag.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// TagsCommand extracts heading tags from a wiki file
type TagsCommand struct {
	source ports.TextSource
	fences FenceFinder
	Syntax domain.Syntax
	File   string
}

// NewTagsCommand creates a new TagsCommand. fences is consulted for the
// markdown syntax only and may be nil.
func NewTagsCommand(source ports.TextSource, fences FenceFinder, syntax domain.Syntax, file string) *TagsCommand {
	return &TagsCommand{
		source: source,
		fences: fences,
		Syntax: syntax,
		File:   file,
	}
}

// Validate checks the command arguments
func (c *TagsCommand) Validate() error {
	return application.ValidateRequired("file", c.File)
}

// Execute reads the file and returns its tags
func (c *TagsCommand) Execute(ctx context.Context) (*TagsResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	content, err := c.source.ReadText(ctx, c.File)
	if err != nil {
		return nil, fmt.Errorf("failed to read tags source: %w", err)
	}

	var skip func(int) bool
	if c.Syntax == domain.SyntaxMarkdown && c.fences != nil {
		skip = c.fences([]byte(content))
	}

	lines := strings.Split(content, "\n")
	return &TagsResult{
		File: c.File,
		Tags: domain.ExtractTags(c.File, lines, c.Syntax, skip),
	}, nil
}
