package commands

import (
	"context"
	"fmt"
	"time"

	"wikimap/internal/application"
	"wikimap/internal/domain"
	"wikimap/internal/ports"
)

// DiaryResolver maps a diary date to the file holding that day's note
type DiaryResolver interface {
	DiaryPath(dir, date, filetype string) string
}

// UnfinishedOptions selects the document and the counting rules
type UnfinishedOptions struct {
	Path     string // Explicit file; wins over Date
	Date     string // Diary date, YYYY-MM-DD
	DiaryDir string
	Filetype string

	Section          string
	Bullets          []string
	IgnoreSublists   bool
	IndentationLevel int
	MissingSection   domain.MissingSectionPolicy
}

// UnfinishedResult contains the unfinished task count of a document
type UnfinishedResult struct {
	Path           string
	Count          int
	Tasks          []string
	SectionMissing bool
}

// UnfinishedCommand counts unchecked tasks in a document or diary note
type UnfinishedCommand struct {
	source  ports.TextSource
	diary   DiaryResolver
	Options UnfinishedOptions
}

// NewUnfinishedCommand creates a new UnfinishedCommand
func NewUnfinishedCommand(source ports.TextSource, diary DiaryResolver, opts UnfinishedOptions) *UnfinishedCommand {
	return &UnfinishedCommand{
		source:  source,
		diary:   diary,
		Options: opts,
	}
}

// Today returns the local date in diary format
func Today() string {
	return time.Now().Format(application.DateLayout)
}

// Validate checks the options
func (c *UnfinishedCommand) Validate() error {
	o := c.Options
	if err := application.ValidateNonNegative("indentationLevel", o.IndentationLevel); err != nil {
		return err
	}
	if o.Path != "" {
		return nil
	}
	if o.Date == "" {
		return &application.ValidationError{
			Field:   "path",
			Message: "either a path or a diary date is required",
		}
	}
	if err := application.ValidateDate("date", o.Date); err != nil {
		return err
	}
	if err := application.ValidateRequired("diaryDir", o.DiaryDir); err != nil {
		return err
	}
	return application.ValidateRequired("filetype", o.Filetype)
}

// ResolvePath returns the file the command reads
func (c *UnfinishedCommand) ResolvePath() string {
	if c.Options.Path != "" {
		return c.Options.Path
	}
	return c.diary.DiaryPath(c.Options.DiaryDir, c.Options.Date, c.Options.Filetype)
}

// Counter returns the task counter configured from the options
func (c *UnfinishedCommand) Counter() domain.TaskCounter {
	return domain.TaskCounter{
		Section:          c.Options.Section,
		Bullets:          c.Options.Bullets,
		IgnoreSublists:   c.Options.IgnoreSublists,
		IndentationLevel: c.Options.IndentationLevel,
		MissingSection:   c.Options.MissingSection,
	}
}

// Execute runs the unfinished command
func (c *UnfinishedCommand) Execute(ctx context.Context) (*UnfinishedResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	path := c.ResolvePath()
	content, err := c.source.ReadText(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}

	counter := c.Counter()
	_, found := counter.SectionText(content)
	tasks := counter.UnfinishedTasks(content)

	return &UnfinishedResult{
		Path:           path,
		Count:          len(tasks),
		Tasks:          tasks,
		SectionMissing: counter.Section != "" && !found,
	}, nil
}
