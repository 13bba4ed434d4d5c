package domain

import "slices"

// DocumentID names a wiki document. It is both the graph key and, with the
// wiki extension appended, the path of the backing file.
type DocumentID string

// Link is one [[target|name]] occurrence found in a document
type Link struct {
	Target DocumentID
	Name   string // Display name, equal to Target when the link has none
}

// Ancestry is the chain of documents between the traversal root and a frame.
// It is never mutated in place: Extend returns a fresh copy.
type Ancestry []DocumentID

// Contains reports whether id is already on the path
func (a Ancestry) Contains(id DocumentID) bool {
	return slices.Contains(a, id)
}

// Extend returns a new ancestry with id appended
func (a Ancestry) Extend(id DocumentID) Ancestry {
	next := make(Ancestry, len(a), len(a)+1)
	copy(next, a)
	return append(next, id)
}

// Frame is a pending visit discovered from a parent's links
type Frame struct {
	ID       DocumentID
	Name     string
	Ancestry Ancestry
}

// RootFrame returns the frame the traversal starts from
func RootFrame(id DocumentID) Frame {
	return Frame{ID: id, Name: string(id)}
}

// IsCycle reports whether the frame points back into its own path
func (f Frame) IsCycle() bool {
	return f.Ancestry.Contains(f.ID)
}

// Visit converts the frame into the node emitted for it
func (f Frame) Visit() VisitedNode {
	return VisitedNode{ID: f.ID, Name: f.Name, Depth: len(f.Ancestry)}
}

// Children builds the frames for the links found in this frame's document
func (f Frame) Children(links []Link) []Frame {
	if len(links) == 0 {
		return nil
	}
	ancestry := f.Ancestry.Extend(f.ID)
	frames := make([]Frame, 0, len(links))
	for _, l := range links {
		name := l.Name
		if name == "" {
			name = string(l.Target)
		}
		frames = append(frames, Frame{ID: l.Target, Name: name, Ancestry: ancestry})
	}
	return frames
}

// VisitedNode is a document placed in the site map
type VisitedNode struct {
	ID    DocumentID
	Name  string
	Depth int // Number of ancestors on the path from the root
}
