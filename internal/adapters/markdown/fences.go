package markdown

import (
	"bytes"
	"slices"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FenceIndex records which lines of a markdown document sit inside fenced
// code blocks. Line numbers are 1-based.
//
// A fence that is never closed runs to the end of the document.
type FenceIndex struct {
	lines map[int]struct{}
}

// NewFenceIndex parses src and indexes the content lines of every fenced
// code block, including fences nested in lists and block quotes.
func NewFenceIndex(src []byte) *FenceIndex {
	idx := &FenceIndex{lines: make(map[int]struct{})}

	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	starts := lineStarts(src)

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		block, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		segments := block.Lines()
		for i := 0; i < segments.Len(); i++ {
			idx.lines[lineOf(starts, segments.At(i).Start)] = struct{}{}
		}
		return ast.WalkSkipChildren, nil
	})

	return idx
}

// Contains reports whether line is code inside a fence
func (f *FenceIndex) Contains(line int) bool {
	_, ok := f.lines[line]
	return ok
}

// Len returns the number of fenced code lines
func (f *FenceIndex) Len() int {
	return len(f.lines)
}

// lineStarts returns the byte offset of the first byte of every line
func lineStarts(src []byte) []int {
	starts := []int{0}
	for i := 0; ; {
		j := bytes.IndexByte(src[i:], '\n')
		if j < 0 {
			return starts
		}
		i += j + 1
		starts = append(starts, i)
	}
}

func lineOf(starts []int, offset int) int {
	i, found := slices.BinarySearch(starts, offset)
	if found {
		return i + 1
	}
	return i
}
