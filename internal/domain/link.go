package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// A link body never crosses a line and never holds brackets.
var linkPattern = regexp.MustCompile(`\[\[([^\[\]\r\n]*)\]\]`)

const byteOrderMark = "\uFEFF"

// ExtractLinks returns the wiki links in text in order of appearance.
//
// Supported forms are [[target]], [[target|name]] and either of those with a
// #anchor suffix on the target. Anchors are dropped, and bodies whose target
// is empty are skipped. Text that is not valid UTF-8 yields no links.
func ExtractLinks(text string) []Link {
	if !utf8.ValidString(text) {
		return nil
	}

	var links []Link
	for _, match := range linkPattern.FindAllStringSubmatch(text, -1) {
		if link, ok := parseLinkBody(match[1]); ok {
			links = append(links, link)
		}
	}
	return links
}

// ExtractDocumentLinks extracts links line by line so that a single
// undecodable line only loses its own links. It also reports how many
// lines were skipped for that reason.
func ExtractDocumentLinks(content string) (links []Link, undecodable int) {
	content = strings.TrimPrefix(content, byteOrderMark)
	for line := range strings.Lines(content) {
		if !utf8.ValidString(line) {
			undecodable++
			continue
		}
		links = append(links, ExtractLinks(line)...)
	}
	return links, undecodable
}

func parseLinkBody(body string) (Link, bool) {
	target, name, hasName := strings.Cut(body, "|")
	target, _, _ = strings.Cut(target, "#")
	target = strings.TrimSpace(target)
	if target == "" {
		return Link{}, false
	}

	name = strings.TrimSpace(name)
	if !hasName || name == "" {
		name = target
	}
	return Link{Target: DocumentID(target), Name: name}, true
}
