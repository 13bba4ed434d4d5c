package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"wikimap/internal/adapters/filesystem"
	mcpadapter "wikimap/internal/adapters/mcp"
	"wikimap/internal/config"
	"wikimap/internal/domain"
	"wikimap/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("wikimap-mcp: %v", err)
	}

	wikiFlag := flag.String("wiki", cfg.WikiPath, "path to the wiki")
	rootFlag := flag.String("root", cfg.Root, "root document ID")
	flag.Parse()

	// stdout carries the protocol, diagnostics go to stderr
	logger := logging.New(logging.Config{Level: cfg.LogLevel, JSON: cfg.LogJSON, Output: os.Stderr})
	wiki := filesystem.NewReader(*wikiFlag, cfg.Extension)

	mcpServer := server.NewMCPServer(
		"wikimap-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, wiki, logger, mcpadapter.Options{
		Root:     domain.DocumentID(*rootFlag),
		DiaryDir: cfg.DiaryDir,
		Filetype: cfg.Filetype,
	})

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("wikimap-mcp: %v", err)
	}
}
