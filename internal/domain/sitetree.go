package domain

import "iter"

// TreeNode is a site map entry rebuilt for interactive navigation
type TreeNode struct {
	ID         DocumentID
	Name       string
	Children   []*TreeNode
	IsExpanded bool
	Parent     *TreeNode
}

// BuildSiteTree folds a pre-order stream of visited nodes back into a tree.
// The first node becomes the root; nil is returned for an empty stream.
func BuildSiteTree(nodes iter.Seq[VisitedNode]) *TreeNode {
	var root *TreeNode
	// path[d] is the most recent node seen at depth d
	var path []*TreeNode

	for v := range nodes {
		node := &TreeNode{ID: v.ID, Name: v.Name}
		if root == nil {
			root = node
			path = append(path[:0], node)
			continue
		}

		depth := min(max(v.Depth, 1), len(path))
		parent := path[depth-1]
		node.Parent = parent
		parent.Children = append(parent.Children, node)
		path = append(path[:depth], node)
	}

	if root != nil {
		root.Expand()
	}
	return root
}

// Nodes yields the whole tree in pre-order as visited nodes
func (n *TreeNode) Nodes() iter.Seq[VisitedNode] {
	return func(yield func(VisitedNode) bool) {
		n.walk(0, yield)
	}
}

func (n *TreeNode) walk(depth int, yield func(VisitedNode) bool) bool {
	if !yield(VisitedNode{ID: n.ID, Name: n.Name, Depth: depth}) {
		return false
	}
	for _, child := range n.Children {
		if !child.walk(depth+1, yield) {
			return false
		}
	}
	return true
}

// Flatten returns all visible nodes in the tree (for list rendering)
func (n *TreeNode) Flatten() []*TreeNode {
	var result []*TreeNode
	n.flattenRecursive(&result)
	return result
}

func (n *TreeNode) flattenRecursive(result *[]*TreeNode) {
	*result = append(*result, n)
	if n.IsExpanded {
		for _, child := range n.Children {
			child.flattenRecursive(result)
		}
	}
}

// Depth returns the depth of this node in the tree
func (n *TreeNode) Depth() int {
	depth := 0
	current := n.Parent
	for current != nil {
		depth++
		current = current.Parent
	}
	return depth
}

// IsLeaf reports whether the node has no children to expand
func (n *TreeNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// Toggle expands or collapses the node
func (n *TreeNode) Toggle() {
	n.IsExpanded = !n.IsExpanded
}

// Expand sets the node as expanded
func (n *TreeNode) Expand() {
	n.IsExpanded = true
}

// Collapse sets the node as collapsed
func (n *TreeNode) Collapse() {
	n.IsExpanded = false
}

// ExpandAll expands the node and every descendant
func (n *TreeNode) ExpandAll() {
	n.Expand()
	for _, child := range n.Children {
		child.ExpandAll()
	}
}

// All returns every node under n in pre-order, collapsed or not
func (n *TreeNode) All() []*TreeNode {
	var result []*TreeNode
	var visit func(*TreeNode)
	visit = func(node *TreeNode) {
		result = append(result, node)
		for _, child := range node.Children {
			visit(child)
		}
	}
	visit(n)
	return result
}

// Reveal expands every ancestor so the node shows up in Flatten
func (n *TreeNode) Reveal() {
	for p := n.Parent; p != nil; p = p.Parent {
		p.Expand()
	}
}
