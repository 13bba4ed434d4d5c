package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"wikimap/internal/adapters/filesystem"
	"wikimap/internal/adapters/terminal"
	"wikimap/internal/application/commands"
	"wikimap/internal/config"
	"wikimap/internal/logging"
)

const helpText = `dfsvw prints the site map of the vimwiki in the current directory.

It starts at index.wiki and follows [[links]] depth first. On a terminal
each line is the document's display name; when stdout is redirected the
lines are wiki links, so the map can be saved as a page:

  dfsvw
  dfsvw > map.wiki`

func main() {
	log := logging.New(logging.Config{Level: os.Getenv("WIKIMAP_LOG_LEVEL"), Output: os.Stderr})

	root := &cobra.Command{
		Use:                "dfsvw",
		Short:              "Print the site map of the wiki in the current directory",
		Long:               helpText,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Every argument, -h included, is an invocation error
			if len(args) > 0 {
				fmt.Fprintln(os.Stderr, helpText)
				os.Exit(1)
			}

			wiki := filesystem.NewReader(".", config.DefaultExtension)
			sitemap := commands.NewSitemapCommand(wiki, log, config.DefaultRoot)
			interactive := terminal.IsTerminal(os.Stdout)
			_, err := terminal.WriteSitemap(os.Stdout, sitemap.Execute(cmd.Context()), interactive)
			return err
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
