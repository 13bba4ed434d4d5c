package cmd

import (
	"github.com/spf13/cobra"

	"wikimap/internal/adapters/editor"
	"wikimap/internal/domain"
)

var editEditor string

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Open a wiki document in your editor",
	Long: `Open a document in $EDITOR, falling back to $VISUAL and then to vim,
nvim, vi or nano. Without an ID the root document is opened.

Examples:
  wikimap-cli edit
  wikimap-cli edit projects/garden --editor "code --wait"`,
	Args: usageArgs(cobra.MaximumNArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := domain.DocumentID(cfg.Root)
		if len(args) == 1 {
			id = domain.DocumentID(args[0])
		}

		path := GetReader().Path(id)
		GetLogger().Debug("opening document", "id", string(id), "path", path)
		return editor.NewOpener(editEditor).OpenFile(path)
	},
}

func init() {
	editCmd.Flags().StringVar(&editEditor, "editor", "", "editor command, defaults to $EDITOR")
	rootCmd.AddCommand(editCmd)
}
