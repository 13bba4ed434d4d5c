package tui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"wikimap/internal/adapters/tui/views"
	"wikimap/internal/domain"
	"wikimap/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewSearch
	ViewHelp
)

// App is the main TUI application model
type App struct {
	editor   ports.EditorOpener
	launcher ports.Launcher
	changes  <-chan []string

	state   ViewState
	browser *views.BrowserModel
	search  *views.SearchModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application for the site map rooted at root.
// A nil copy function uses the system clipboard.
func NewApp(wiki ports.Wiki, ed ports.EditorOpener, launcher ports.Launcher, log *slog.Logger, root domain.DocumentID, copyFn views.CopyFunc) *App {
	return &App{
		editor:   ed,
		launcher: launcher,
		state:    ViewBrowser,
		browser:  views.NewBrowserModel(wiki, log, root, copyFn),
		search:   views.NewSearchModel(copyFn),
		help:     views.NewHelpModel(),
	}
}

// WatchChanges reloads the site map whenever a batch arrives on changes.
func (a *App) WatchChanges(changes <-chan []string) *App {
	a.changes = changes
	return a
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	if a.changes == nil {
		return a.browser.Init()
	}
	return tea.Batch(a.browser.Init(), waitForChange(a.changes))
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.search.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToSearchMsg:
		a.state = ViewSearch
		a.search.Reset(a.browser.Root())
		return a, a.search.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, nil

	case views.SearchSelectMsg:
		a.state = ViewBrowser
		a.browser.Select(msg.Node)
		return a, nil

	case views.OpenEditorMsg:
		a.state = ViewBrowser
		return a, a.openEditor(msg.Path)

	case views.OpenExternalMsg:
		return a, a.launch(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			a.browser.SetMessage(fmt.Sprintf("Editor: %v", msg.err), true)
			return a, nil
		}
		// The document may have gained or lost links
		return a, a.browser.Reload()

	case documentsChangedMsg:
		a.browser.SetMessage(fmt.Sprintf("%d document(s) changed", len(msg.paths)), false)
		return a, tea.Batch(a.browser.Reload(), waitForChange(a.changes))
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

type documentsChangedMsg struct{ paths []string }

func waitForChange(changes <-chan []string) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		paths, ok := <-changes
		if !ok {
			return nil
		}
		return documentsChangedMsg{paths: paths}
	}
}

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

func (a *App) launch(path string) tea.Cmd {
	if a.launcher == nil {
		return nil
	}
	return func() tea.Msg {
		return views.LaunchedMsg{Path: path, Err: a.launcher.Open(path)}
	}
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewSearch:
		return a.search.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}
