package domain

import "strings"

// IndentUnit is the indentation added per tree level
const IndentUnit = "    "

// RenderNode formats one site map line without a trailing newline.
//
// Interactive output is the indented display name. Otherwise the name is
// written as wiki link markup so the output can be saved as a wiki page.
func RenderNode(node VisitedNode, interactive bool) string {
	prefix := strings.Repeat(IndentUnit, max(node.Depth, 0))
	if interactive {
		return prefix + node.Name
	}
	return prefix + LinkMarkup(node.ID, node.Name)
}

// LinkMarkup returns [[id]] or [[id|name]]
func LinkMarkup(id DocumentID, name string) string {
	if string(id) == name || name == "" {
		return "[[" + string(id) + "]]"
	}
	return "[[" + string(id) + "|" + name + "]]"
}
