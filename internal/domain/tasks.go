package domain

import (
	"strings"
	"unicode/utf8"
)

// DefaultBullets are the list markers recognised when none are configured
var DefaultBullets = []string{"-", "*"}

// UnfinishedMarker follows a bullet on a task that is not done yet
const UnfinishedMarker = " [ ]"

// MissingSectionPolicy decides what a section filter that matches nothing
// selects.
type MissingSectionPolicy int

const (
	// MissingSectionEmpty selects no text, so the count is zero
	MissingSectionEmpty MissingSectionPolicy = iota
	// MissingSectionWholeDocument falls back to the whole document
	MissingSectionWholeDocument
)

// ParseMissingSectionPolicy accepts "empty" and "all"
func ParseMissingSectionPolicy(s string) (MissingSectionPolicy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "empty", "none":
		return MissingSectionEmpty, true
	case "all", "document", "whole":
		return MissingSectionWholeDocument, true
	default:
		return MissingSectionEmpty, false
	}
}

// TaskCounter counts unfinished tasks in wiki text
type TaskCounter struct {
	// Section restricts counting to the text from this heading line up to the
	// next occurrence of its leading token. Empty means the whole text.
	Section string
	// Bullets are the list markers; DefaultBullets when empty.
	Bullets []string
	// IgnoreSublists counts only tasks that start exactly at IndentationLevel.
	IgnoreSublists bool
	// IndentationLevel is the number of characters before top-level tasks.
	IndentationLevel int
	MissingSection   MissingSectionPolicy
}

// SectionText returns the part of text the counter looks at.
//
// The section ends at the next occurrence of the section's leading token
// (for example "==" or "##") after the section heading. That token may also
// occur in body text or inside a deeper heading marker and end the section
// early.
func (c TaskCounter) SectionText(text string) (string, bool) {
	section := strings.TrimSpace(c.Section)
	if section == "" {
		return text, true
	}

	start := strings.Index(text, section)
	if start < 0 {
		if c.MissingSection == MissingSectionWholeDocument {
			return text, false
		}
		return "", false
	}

	level := strings.Fields(section)[0]
	bodyStart := start + len(section)
	end := strings.Index(text[bodyStart:], level)
	if end < 0 {
		return text[start:], true
	}
	return text[start : bodyStart+end], true
}

// UnfinishedTasks returns the matching task lines, trimmed as compared
func (c TaskCounter) UnfinishedTasks(text string) []string {
	section, _ := c.SectionText(text)
	if section == "" {
		return nil
	}

	markers := c.markers()
	var tasks []string
	for _, line := range strings.Split(section, "\n") {
		line = dropRunes(line, c.IndentationLevel)
		if !c.IgnoreSublists {
			line = strings.TrimSpace(line)
		}
		for _, m := range markers {
			if strings.HasPrefix(line, m) {
				tasks = append(tasks, line)
				break
			}
		}
	}
	return tasks
}

// Count returns the number of unfinished tasks in text
func (c TaskCounter) Count(text string) int {
	return len(c.UnfinishedTasks(text))
}

func (c TaskCounter) markers() []string {
	bullets := c.Bullets
	if len(bullets) == 0 {
		bullets = DefaultBullets
	}
	markers := make([]string, 0, len(bullets))
	for _, b := range bullets {
		if b == "" {
			continue
		}
		markers = append(markers, b+UnfinishedMarker)
	}
	return markers
}

// ParseBullets splits a run of bullet characters such as "*-" into bullets
func ParseBullets(s string) []string {
	var bullets []string
	for _, r := range s {
		bullets = append(bullets, string(r))
	}
	return bullets
}

func dropRunes(s string, n int) string {
	for i := 0; i < n && s != ""; i++ {
		_, size := utf8.DecodeRuneInString(s)
		s = s[size:]
	}
	return s
}
