package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"wikimap/internal/adapters/markdown"
	"wikimap/internal/application/commands"
	"wikimap/internal/domain"
	"wikimap/internal/ports"
)

// Wiki is everything the tools need from the document store
type Wiki interface {
	ports.Wiki
	ports.TextSource
	commands.DiaryResolver
}

// Options holds the defaults tool calls fall back to
type Options struct {
	Root     domain.DocumentID
	DiaryDir string
	Filetype string
}

// RegisterReadTools adds all read-only wiki tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, wiki Wiki, log *slog.Logger, opts Options) {
	s.AddTool(sitemapTool(), sitemapHandler(wiki, log, opts))
	s.AddTool(readDocumentTool(), readDocumentHandler(wiki))
	s.AddTool(documentInfoTool(), documentInfoHandler(wiki))
	s.AddTool(tagsTool(), tagsHandler(wiki))
	s.AddTool(unfinishedTool(), unfinishedHandler(wiki, opts))
}

// --- sitemap ---

func sitemapTool() mcp.Tool {
	return mcp.NewTool("sitemap",
		mcp.WithDescription("Site map of the wiki: every document reachable by [[links]] from the root, depth first, indented four spaces per level. Links back into their own path are dropped."),
		mcp.WithString("root",
			mcp.Description("Document ID to start from (e.g. index, diary/diary). Defaults to the configured root."),
		),
		mcp.WithString("format",
			mcp.Description("wiki for [[id|name]] lines (default), plain for display names only"),
			mcp.Enum("wiki", "plain"),
		),
	)
}

func sitemapHandler(wiki Wiki, log *slog.Logger, opts Options) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root := domain.DocumentID(req.GetString("root", string(opts.Root)))
		format := req.GetString("format", "wiki")
		if format != "wiki" && format != "plain" {
			return toolError(fmt.Errorf("invalid format: %s (expected wiki or plain)", format))
		}

		cmd := commands.NewSitemapCommand(wiki, log, root)
		if err := cmd.Validate(); err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for node := range cmd.Execute(ctx) {
			sb.WriteString(domain.RenderNode(node, format == "plain"))
			sb.WriteByte('\n')
		}
		if err := ctx.Err(); err != nil {
			return toolError(err)
		}

		stats := cmd.Stats()
		if stats.Cycles > 0 || stats.Unreadable > 0 {
			fmt.Fprintf(&sb, "\n(%d documents, %d circular links dropped, %d unreadable)\n",
				stats.Visited, stats.Cycles, stats.Unreadable)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- read_document ---

func readDocumentTool() mcp.Tool {
	return mcp.NewTool("read_document",
		mcp.WithDescription("Read the raw text of a wiki document by its ID."),
		mcp.WithString("id",
			mcp.Description("Document ID, the file name without extension (e.g. index, projects/garden)"),
			mcp.Required(),
		),
	)
}

func readDocumentHandler(wiki Wiki) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		content, err := wiki.Read(ctx, domain.DocumentID(id))
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(content), nil
	}
}

// --- document_info ---

func documentInfoTool() mcp.Tool {
	return mcp.NewTool("document_info",
		mcp.WithDescription("Summary of one wiki document: backing file, front matter title and tags, outgoing links and headings."),
		mcp.WithString("id",
			mcp.Description("Document ID, the file name without extension"),
			mcp.Required(),
		),
	)
}

func documentInfoHandler(wiki Wiki) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := domain.DocumentID(req.GetString("id", ""))
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		content, err := wiki.Read(ctx, id)
		if err != nil {
			return toolError(err)
		}
		meta, _, err := markdown.ParseFrontMatter([]byte(content))
		if err != nil {
			return toolError(err)
		}
		links, _ := domain.ExtractDocumentLinks(content)
		path := wiki.Path(id)
		headings := domain.ExtractTags(path, strings.Split(content, "\n"), domain.SyntaxAll, markdown.SkipLines([]byte(content)))

		var sb strings.Builder
		fmt.Fprintf(&sb, "id: %s\n", id)
		fmt.Fprintf(&sb, "file: %s\n", path)
		if meta.Title != "" {
			fmt.Fprintf(&sb, "title: %s\n", meta.Title)
		}
		if len(meta.Tags) > 0 {
			fmt.Fprintf(&sb, "tags: %s\n", strings.Join(meta.Tags, ", "))
		}
		fmt.Fprintf(&sb, "links: %d\n", len(links))
		for _, link := range links {
			fmt.Fprintf(&sb, "  %s\n", domain.LinkMarkup(link.Target, link.Name))
		}
		fmt.Fprintf(&sb, "headings: %d\n", len(headings))
		for _, h := range headings {
			fmt.Fprintf(&sb, "  %s%s\n", strings.Repeat("  ", h.Level-1), h.Name)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- tags ---

func tagsTool() mcp.Tool {
	return mcp.NewTool("tags",
		mcp.WithDescription("Headings of a wiki file as ctags records (name, file, pattern, kind, line, parent headers)."),
		mcp.WithString("file",
			mcp.Description("File path, relative to the wiki root unless absolute"),
			mcp.Required(),
		),
		mcp.WithString("syntax",
			mcp.Description("Heading syntax: default, media, markdown or all (default all)"),
		),
	)
}

func tagsHandler(wiki Wiki) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		file := req.GetString("file", "")
		if file == "" {
			return toolError(fmt.Errorf("file is required"))
		}
		syntax := domain.ParseSyntax(req.GetString("syntax", string(domain.SyntaxAll)))

		cmd := commands.NewTagsCommand(wiki, markdown.SkipLines, syntax, resolveFile(wiki, file))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(result.Tags) == 0 {
			return mcp.NewToolResultText("No headings found."), nil
		}
		return mcp.NewToolResultText(result.String()), nil
	}
}

// --- unfinished ---

func unfinishedTool() mcp.Tool {
	return mcp.NewTool("unfinished",
		mcp.WithDescription("Count unfinished tasks ('* [ ]' and '- [ ]' bullets) in a wiki file or a diary entry."),
		mcp.WithString("path",
			mcp.Description("File path, relative to the wiki root unless absolute. Wins over date."),
		),
		mcp.WithString("date",
			mcp.Description("Diary date in YYYY-MM-DD format, or 'today'"),
		),
		mcp.WithString("section",
			mcp.Description("Count only in this section, given as its heading line (e.g. '== Todo ==')"),
		),
		mcp.WithString("bullets",
			mcp.Description("Bullet symbols to accept (e.g. '*-')"),
		),
		mcp.WithBoolean("ignore_sublists",
			mcp.Description("Count top-level tasks only"),
		),
		mcp.WithNumber("indentation_level",
			mcp.Description("Characters before top-level tasks"),
		),
		mcp.WithString("missing_section",
			mcp.Description("When the section is absent: empty counts nothing (default), all counts the whole file"),
			mcp.Enum("empty", "all"),
		),
	)
}

func unfinishedHandler(wiki Wiki, opts Options) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		missingName := req.GetString("missing_section", "empty")
		policy, ok := domain.ParseMissingSectionPolicy(missingName)
		if !ok {
			return toolError(fmt.Errorf("invalid missing_section: %s (expected empty or all)", missingName))
		}

		path := req.GetString("path", "")
		if path != "" {
			path = resolveFile(wiki, path)
		}
		date := req.GetString("date", "")
		if date == "today" {
			date = commands.Today()
		}

		cmd := commands.NewUnfinishedCommand(wiki, wiki, commands.UnfinishedOptions{
			Path:             path,
			Date:             date,
			DiaryDir:         opts.DiaryDir,
			Filetype:         opts.Filetype,
			Section:          req.GetString("section", ""),
			Bullets:          domain.ParseBullets(req.GetString("bullets", "")),
			IgnoreSublists:   req.GetBool("ignore_sublists", false),
			IndentationLevel: req.GetInt("indentation_level", 0),
			MissingSection:   policy,
		})
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		text := fmt.Sprintf("%d unfinished tasks in %s", result.Count, result.Path)
		if result.SectionMissing {
			text += " (section not found)"
		}
		if len(result.Tasks) > 0 {
			text += "\n\n" + strings.Join(result.Tasks, "\n")
		}
		return mcp.NewToolResultText(text), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

// resolveFile anchors relative paths at the wiki root
func resolveFile(wiki ports.Wiki, path string) string {
	if filepath.IsAbs(path) || strings.HasPrefix(path, "~") {
		return path
	}
	return filepath.Join(wiki.Root(), path)
}
