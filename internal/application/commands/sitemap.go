package commands

import (
	"context"
	"errors"
	"iter"
	"log/slog"

	"wikimap/internal/application"
	"wikimap/internal/domain"
	"wikimap/internal/ports"
)

// SitemapStats summarises one traversal
type SitemapStats struct {
	Visited     int
	Cycles      int
	Unreadable  int
	Undecodable int // Lines skipped because they were not valid UTF-8
}

// SitemapCommand walks the link graph from a root document
type SitemapCommand struct {
	reader ports.DocumentReader
	log    *slog.Logger
	Root   domain.DocumentID

	stats SitemapStats
}

// NewSitemapCommand creates a new SitemapCommand. A nil logger discards
// diagnostics.
func NewSitemapCommand(reader ports.DocumentReader, log *slog.Logger, root domain.DocumentID) *SitemapCommand {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &SitemapCommand{
		reader: reader,
		log:    log,
		Root:   root,
	}
}

// Validate checks the command can run
func (c *SitemapCommand) Validate() error {
	if c.reader == nil {
		return errors.New("sitemap command has no document reader")
	}
	return application.ValidateRequired("root", string(c.Root))
}

// Execute returns the site map as a lazy pre-order sequence of nodes.
//
// Each node is yielded before its document is read, so output appears as
// the walk progresses. A link back into its own path is reported and
// dropped; a document that cannot be read is a leaf. Neither stops the
// walk. Cancelling ctx ends the sequence at the next frame.
func (c *SitemapCommand) Execute(ctx context.Context) iter.Seq[domain.VisitedNode] {
	return func(yield func(domain.VisitedNode) bool) {
		c.stats = SitemapStats{}
		if err := c.Validate(); err != nil {
			c.log.Error("sitemap not started", "error", err)
			return
		}

		stack := domain.NewFrameStack(domain.RootFrame(c.Root))
		for {
			if err := ctx.Err(); err != nil {
				c.log.Debug("sitemap cancelled", "error", err, "pending", stack.Len())
				return
			}

			frame, ok := stack.Pop()
			if !ok {
				return
			}

			if frame.IsCycle() {
				c.stats.Cycles++
				err := &application.CycleError{ID: frame.ID, Ancestry: frame.Ancestry}
				c.log.Warn("cycle detected", "id", string(frame.ID), "error", err)
				continue
			}

			c.stats.Visited++
			if !yield(frame.Visit()) {
				return
			}

			content, err := c.reader.Read(ctx, frame.ID)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				c.stats.Unreadable++
				c.log.Warn("document unreadable", "id", string(frame.ID), "error", err)
				continue
			}

			links, undecodable := domain.ExtractDocumentLinks(content)
			if undecodable > 0 {
				c.stats.Undecodable += undecodable
				c.log.Debug("skipped undecodable lines", "id", string(frame.ID), "lines", undecodable,
					"error", application.ErrDecode)
			}

			stack.PushBlock(frame.Children(links))
		}
	}
}

// Collect runs the traversal to completion and returns every node
func (c *SitemapCommand) Collect(ctx context.Context) []domain.VisitedNode {
	var nodes []domain.VisitedNode
	for node := range c.Execute(ctx) {
		nodes = append(nodes, node)
	}
	return nodes
}

// Stats reports the counts of the last traversal
func (c *SitemapCommand) Stats() SitemapStats {
	return c.stats
}
