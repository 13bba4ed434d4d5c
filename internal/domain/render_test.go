package domain

import "testing"

func TestRenderNode(t *testing.T) {
	tests := []struct {
		name        string
		node        VisitedNode
		interactive bool
		want        string
	}{
		{
			name:        "root interactive",
			node:        VisitedNode{ID: "index", Name: "index", Depth: 0},
			interactive: true,
			want:        "index",
		},
		{
			name:        "root to file",
			node:        VisitedNode{ID: "index", Name: "index", Depth: 0},
			interactive: false,
			want:        "[[index]]",
		},
		{
			name:        "named node interactive",
			node:        VisitedNode{ID: "abc", Name: "123", Depth: 2},
			interactive: true,
			want:        "        123",
		},
		{
			name:        "named node to file",
			node:        VisitedNode{ID: "abc", Name: "123", Depth: 2},
			interactive: false,
			want:        "        [[abc|123]]",
		},
		{
			name:        "same name to file uses single form",
			node:        VisitedNode{ID: "abc", Name: "abc", Depth: 1},
			interactive: false,
			want:        "    [[abc]]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderNode(tt.node, tt.interactive)
			if got != tt.want {
				t.Errorf("RenderNode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderNode_ModesDiffer(t *testing.T) {
	node := VisitedNode{ID: "projects", Name: "My Projects", Depth: 1}

	plain := RenderNode(node, true)
	markup := RenderNode(node, false)

	if plain == markup {
		t.Fatalf("expected different output per mode, both %q", plain)
	}
	if plain != "    My Projects" {
		t.Errorf("unexpected interactive line %q", plain)
	}
	if markup != "    [[projects|My Projects]]" {
		t.Errorf("unexpected file line %q", markup)
	}
}
