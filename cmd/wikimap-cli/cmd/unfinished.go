package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wikimap/internal/application"
	"wikimap/internal/application/commands"
	"wikimap/internal/domain"
)

// exitIOError is the status for a document that cannot be read
const exitIOError = 11

var (
	unfinishedPath           string
	unfinishedDate           string
	unfinishedToday          bool
	unfinishedSection        string
	unfinishedBullets        string
	unfinishedIgnoreSublists bool
	unfinishedIndentation    int
	unfinishedDiaryDir       string
	unfinishedFiletype       string
	unfinishedMissing        string
)

var unfinishedCmd = &cobra.Command{
	Use:   "unfinished",
	Short: "Count unfinished tasks",
	Long: `Count the "- [ ]" and "* [ ]" tasks of a wiki file or diary entry.

Examples:
  wikimap-cli unfinished --today --section "== Todo =="
  wikimap-cli unfinished --date 2024-03-01 --ignore-sublists
  wikimap-cli unfinished --path ~/vimwiki/projects.wiki --bullets "*"`,
	Args: usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		policy, ok := domain.ParseMissingSectionPolicy(unfinishedMissing)
		if !ok {
			return &application.ValidationError{
				Field:   "missingSection",
				Message: fmt.Sprintf("expected empty or all, got: %s", unfinishedMissing),
			}
		}
		filetype := cfg.Filetype
		if cmd.Flags().Changed("filetype") {
			filetype = unfinishedFiletype
		}
		if err := application.ValidateOneOf("filetype", filetype, "wiki", "md"); err != nil {
			return err
		}

		date := unfinishedDate
		if unfinishedToday {
			date = commands.Today()
		}
		diaryDir := cfg.DiaryDir
		if cmd.Flags().Changed("diary-dir") {
			diaryDir = unfinishedDiaryDir
		}

		opts := commands.UnfinishedOptions{
			Path:             unfinishedPath,
			Date:             date,
			DiaryDir:         diaryDir,
			Filetype:         filetype,
			Section:          unfinishedSection,
			Bullets:          domain.ParseBullets(unfinishedBullets),
			IgnoreSublists:   unfinishedIgnoreSublists,
			IndentationLevel: unfinishedIndentation,
			MissingSection:   policy,
		}

		unfinished := commands.NewUnfinishedCommand(GetReader(), GetReader(), opts)
		result, err := unfinished.Execute(cmd.Context())
		if err != nil {
			if errors.Is(err, application.ErrUnreadable) {
				return &exitError{code: exitIOError, err: err}
			}
			return err
		}

		if result.SectionMissing {
			GetLogger().Info("section not found", "section", unfinishedSection, "path", result.Path)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Count)
		return err
	},
}

func init() {
	f := unfinishedCmd.Flags()
	f.StringVar(&unfinishedPath, "path", "", "path to a wiki file")
	f.StringVar(&unfinishedDate, "date", "", "use the diary entry for this date (YYYY-MM-DD)")
	f.BoolVar(&unfinishedToday, "today", false, "use the diary entry for today")
	f.StringVar(&unfinishedSection, "section", "", "count only in this section (e.g. '== Todo ==')")
	f.StringVar(&unfinishedBullets, "bullets", "", "bullet symbols (e.g. '*-')")
	f.BoolVar(&unfinishedIgnoreSublists, "ignore-sublists", false, "count top-level tasks only")
	f.IntVar(&unfinishedIndentation, "indentation-level", 0, "characters before top-level tasks")
	f.StringVar(&unfinishedDiaryDir, "diary-dir", "diary", "diary directory inside the wiki")
	f.StringVar(&unfinishedFiletype, "filetype", "wiki", "diary file type (wiki or md)")
	f.StringVar(&unfinishedMissing, "missing-section", "empty", "when the section is absent count nothing (empty) or the whole file (all)")

	unfinishedCmd.MarkFlagsMutuallyExclusive("date", "today")
	unfinishedCmd.MarkFlagsOneRequired("path", "date", "today")
	rootCmd.AddCommand(unfinishedCmd)
}
