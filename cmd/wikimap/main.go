package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"wikimap/internal/adapters/editor"
	"wikimap/internal/adapters/filesystem"
	"wikimap/internal/adapters/launcher"
	"wikimap/internal/adapters/tui"
	"wikimap/internal/adapters/watcher"
	"wikimap/internal/config"
	"wikimap/internal/domain"
	"wikimap/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	wikiFlag := flag.String("wiki", cfg.WikiPath, "path to the wiki")
	rootFlag := flag.String("root", cfg.Root, "root document ID")
	editorFlag := flag.String("editor", "", "editor command, defaults to $EDITOR")
	watchFlag := flag.Bool("watch", true, "reload the map when wiki documents change")
	flag.Parse()

	// The alternate screen owns the terminal; only errors reach stderr
	logger := logging.New(logging.Config{Level: "error", JSON: cfg.LogJSON, Output: os.Stderr})

	// Initialize adapters
	wiki := filesystem.NewReader(*wikiFlag, cfg.Extension)
	editorOpener := editor.NewOpener(*editorFlag)
	desktop := launcher.NewLauncher(wiki.Root())

	// Create and run TUI app
	app := tui.NewApp(wiki, editorOpener, desktop, logger, domain.DocumentID(*rootFlag), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *watchFlag {
		w, err := watcher.New(wiki.Root(), wiki.Extension(), logger)
		if err != nil {
			logger.Error("watch disabled", "error", err)
		} else {
			defer w.Close()
			if err := w.Start(ctx); err != nil {
				logger.Error("watch disabled", "error", err)
			} else {
				app.WatchChanges(w.Changes())
			}
		}
	}

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
