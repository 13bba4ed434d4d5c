package commands

import (
	"context"
	"errors"
	"slices"
	"testing"

	"wikimap/internal/application"
	"wikimap/internal/domain"
)

func TestFuzzyScore(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		query     string
		wantScore int
		wantMin   int
	}{
		{name: "exact match", target: "Garden", query: "Garden", wantScore: 150},
		{name: "prefix match", target: "Garden plans", query: "garden", wantScore: 150},
		{name: "substring match", target: "My Garden", query: "garden", wantScore: 100},
		{name: "fuzzy in order", target: "projects/garden", query: "pgd", wantMin: 1},
		{name: "no match", target: "Garden", query: "xyz", wantScore: 0},
		{name: "empty query", target: "Garden", query: "", wantScore: 0},
		{name: "out of order", target: "abc", query: "cba", wantScore: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := FuzzyScore(tt.target, tt.query)
			switch {
			case tt.wantMin > 0:
				if score < tt.wantMin {
					t.Errorf("expected score >= %d, got %d", tt.wantMin, score)
				}
			default:
				if score != tt.wantScore {
					t.Errorf("expected score %d, got %d", tt.wantScore, score)
				}
			}
		})
	}
}

func TestFuzzyScore_SeparatorBonus(t *testing.T) {
	segment := FuzzyScore("projects/garden", "pg")
	inner := FuzzyScore("pxxxxxxgarden", "pg")
	if segment <= inner {
		t.Errorf("expected a path segment start to score higher (%d vs %d)", segment, inner)
	}
}

func TestFindCommand_Execute(t *testing.T) {
	root := domain.BuildSiteTree(slices.Values([]domain.VisitedNode{
		{ID: "index", Name: "index", Depth: 0},
		{ID: "projects", Name: "My Projects", Depth: 1},
		{ID: "projects/garden", Name: "Garden", Depth: 2},
		{ID: "garden-log", Name: "garden-log", Depth: 1},
	}))

	results, err := NewFindCommand(root, "garden").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Node.ID != "projects/garden" || results[1].Node.ID != "garden-log" {
		t.Errorf("expected equal scores in site map order, got %s, %s", results[0].Node.ID, results[1].Node.ID)
	}

	_, err = NewFindCommand(root, " ").Execute(context.Background())
	if !errors.Is(err, application.ErrInvalidArgument) {
		t.Errorf("expected invalid argument for blank query, got %v", err)
	}

	results, err = NewFindCommand(nil, "x").Execute(context.Background())
	if err != nil || results != nil {
		t.Errorf("expected nothing for an empty tree, got %v, %v", results, err)
	}
}
