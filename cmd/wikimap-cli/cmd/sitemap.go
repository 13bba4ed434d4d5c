package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"wikimap/internal/adapters/filesystem"
	"wikimap/internal/adapters/terminal"
	"wikimap/internal/application"
	"wikimap/internal/application/commands"
	"wikimap/internal/domain"
)

var (
	sitemapRoot   string
	sitemapExt    string
	sitemapFormat string
)

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Print the site map of the wiki",
	Long: `Follow [[links]] depth first from the root document and print every
visited document indented by its depth.

On a terminal the display names are printed. When stdout is redirected the
output is a nested list of wiki links, ready to save as a wiki page.

Examples:
  wikimap-cli sitemap
  wikimap-cli sitemap --root diary/diary > map.wiki`,
	Args: usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := terminal.ParseFormat(sitemapFormat)
		if err != nil {
			return &application.UsageError{Message: err.Error()}
		}

		wiki := GetReader()
		if cmd.Flags().Changed("ext") {
			wiki = filesystem.NewReader(cfg.WikiPath, sitemapExt)
		}
		root := cfg.Root
		if cmd.Flags().Changed("root") {
			root = sitemapRoot
		}

		log := GetLogger()
		sitemap := commands.NewSitemapCommand(wiki, log, domain.DocumentID(root))
		if err := sitemap.Validate(); err != nil {
			return err
		}

		interactive := format.Interactive(os.Stdout)
		if _, err := terminal.WriteSitemap(cmd.OutOrStdout(), sitemap.Execute(cmd.Context()), interactive); err != nil {
			return err
		}

		stats := sitemap.Stats()
		log.Debug("sitemap done", "root", root, "visited", stats.Visited,
			"cycles", stats.Cycles, "unreadable", stats.Unreadable, "undecodable", stats.Undecodable)
		return nil
	},
}

func init() {
	sitemapCmd.Flags().StringVarP(&sitemapRoot, "root", "r", "index", "root document ID")
	sitemapCmd.Flags().StringVar(&sitemapExt, "ext", filesystem.DefaultExtension, "document file extension")
	sitemapCmd.Flags().StringVarP(&sitemapFormat, "format", "f", string(terminal.FormatAuto), "output format (auto, plain, wiki)")
	rootCmd.AddCommand(sitemapCmd)
}
