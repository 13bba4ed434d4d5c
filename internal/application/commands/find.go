package commands

import (
	"context"
	"sort"
	"strings"

	"wikimap/internal/application"
	"wikimap/internal/domain"
)

// FindResult is a site tree node matching a query
type FindResult struct {
	Node  *domain.TreeNode
	Score int
}

// FindCommand searches a site tree by document name and ID
type FindCommand struct {
	root  *domain.TreeNode
	Query string
}

// NewFindCommand creates a new FindCommand
func NewFindCommand(root *domain.TreeNode, query string) *FindCommand {
	return &FindCommand{
		root:  root,
		Query: query,
	}
}

// Execute returns the matching nodes, best first. Ties keep site map order.
func (c *FindCommand) Execute(ctx context.Context) ([]FindResult, error) {
	if err := application.ValidateRequired("query", c.Query); err != nil {
		return nil, err
	}
	if c.root == nil {
		return nil, nil
	}

	var results []FindResult
	for _, node := range c.root.All() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		score := max(FuzzyScore(node.Name, c.Query), FuzzyScore(string(node.ID), c.Query))
		if score > 0 {
			results = append(results, FindResult{Node: node, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}

// FuzzyScore calculates a fuzzy match score between target and query.
// Returns 0 if no match, higher scores indicate better matches.
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] != query[queryIdx] {
			continue
		}
		if prevMatchIdx == i-1 {
			score += 10 // consecutive chars
		}
		if i == 0 {
			score += 15
		}
		if i > 0 && isSeparator(target[i-1]) {
			score += 10 // start of a word or path segment
		}
		score++
		prevMatchIdx = i
		queryIdx++
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

func isSeparator(b byte) bool {
	switch b {
	case ' ', '/', '-', '_', '.':
		return true
	}
	return false
}
