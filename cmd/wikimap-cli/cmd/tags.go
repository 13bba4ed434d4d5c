package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wikimap/internal/adapters/markdown"
	"wikimap/internal/application/commands"
	"wikimap/internal/domain"
)

var tagsCmd = &cobra.Command{
	Use:   "tags <default|media|markdown|all> <file>",
	Short: "Print ctags records for the headings of a file",
	Long: `Extract headings from a wiki file as ctags records for Tagbar.

The first argument is the wiki syntax. Use 'all' when wikis with different
syntaxes share one Tagbar setup.

Tagbar configuration:

  let g:tagbar_type_vimwiki = {
        \   'ctagstype':'vimwiki'
        \ , 'kinds':['h:header']
        \ , 'sro':'&&&'
        \ , 'kind2scope':{'h':'header'}
        \ , 'sort':0
        \ , 'ctagsbin':'wikimap-cli'
        \ , 'ctagsargs': 'tags default'
        \ }`,
	Args: usageArgs(cobra.ExactArgs(2)),
	RunE: func(cmd *cobra.Command, args []string) error {
		tags := commands.NewTagsCommand(GetReader(), markdown.SkipLines, domain.ParseSyntax(args[0]), args[1])
		result, err := tags.Execute(cmd.Context())
		if err != nil {
			return err
		}

		GetLogger().Debug("tags extracted", "file", result.File, "count", len(result.Tags))
		_, err = fmt.Fprint(cmd.OutOrStdout(), result.String())
		return err
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}
