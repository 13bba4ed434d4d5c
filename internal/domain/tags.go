package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Syntax is a wiki markup dialect understood by the tag extractor
type Syntax string

const (
	SyntaxDefault  Syntax = "default"
	SyntaxMedia    Syntax = "media"
	SyntaxMarkdown Syntax = "markdown"
	SyntaxAll      Syntax = "all"
)

// ParseSyntax maps a dialect name to a Syntax. Unknown names fall back to
// SyntaxAll, which accepts headings of every dialect.
func ParseSyntax(name string) Syntax {
	switch s := Syntax(strings.ToLower(strings.TrimSpace(name))); s {
	case SyntaxDefault, SyntaxMedia, SyntaxMarkdown:
		return s
	default:
		return SyntaxAll
	}
}

// MaxHeadingLevel is the deepest heading level tracked for scopes
const MaxHeadingLevel = 6

// ScopeSeparator joins ancestor heading titles in a tag scope
const ScopeSeparator = "&&&"

// TagKindHeader is the ctags kind used for headings
const TagKindHeader = "h"

var (
	// Opening and closing runs must match; RE2 has no backreferences so the
	// comparison happens in matchHeading.
	wikiHeadingPattern     = regexp.MustCompile(`^\s*(={1,6})([^=].*[^=])(={1,6})\s*$`)
	markdownHeadingPattern = regexp.MustCompile(`^\s*(#{1,6})([^#].*)$`)
)

// Tag is one ctags-compatible heading record
type Tag struct {
	Name  string
	File  string
	Line  int    // 1-based
	Text  string // Full heading line, used as the search pattern
	Level int
	Scope []string // Titles of enclosing headings, outermost first
}

// String formats the tag as a tab separated ctags line
func (t Tag) String() string {
	record := fmt.Sprintf("%s\t%s\t/^%s$/;\"\t%s\tline:%d", t.Name, t.File, t.Text, TagKindHeader, t.Line)
	if len(t.Scope) > 0 {
		record += "\theader:" + strings.Join(t.Scope, ScopeSeparator)
	}
	return record
}

// ExtractTags returns a tag per heading line in lines.
// skip, when non-nil, reports 1-based line numbers to ignore, such as lines
// inside fenced code.
func ExtractTags(file string, lines []string, syntax Syntax, skip func(line int) bool) []Tag {
	var (
		tags  []Tag
		state [MaxHeadingLevel]string
	)

	for i, raw := range lines {
		lineNo := i + 1
		if skip != nil && skip(lineNo) {
			continue
		}

		line := strings.TrimRight(raw, "\r\n")
		level, title, ok := matchHeading(line, syntax)
		if !ok {
			continue
		}

		state[level-1] = title
		for j := level; j < MaxHeadingLevel; j++ {
			state[j] = ""
		}

		var scope []string
		for j := 0; j < level-1; j++ {
			if state[j] != "" {
				scope = append(scope, state[j])
			}
		}

		tags = append(tags, Tag{
			Name:  title,
			File:  file,
			Line:  lineNo,
			Text:  line,
			Level: level,
			Scope: scope,
		})
	}

	return tags
}

func matchHeading(line string, syntax Syntax) (level int, title string, ok bool) {
	if syntax != SyntaxMarkdown {
		if m := wikiHeadingPattern.FindStringSubmatch(line); m != nil && m[1] == m[3] {
			return len(m[1]), strings.TrimSpace(m[2]), true
		}
	}
	if syntax == SyntaxMarkdown || syntax == SyntaxAll {
		if m := markdownHeadingPattern.FindStringSubmatch(line); m != nil {
			return len(m[1]), strings.TrimSpace(m[2]), true
		}
	}
	return 0, "", false
}
