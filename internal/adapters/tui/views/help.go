package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	return NewViewBuilder().
		Title("wikimap help").
		Subtitle("Site map of the documents reachable from the wiki index").
		Section("Navigation").
		KeyLine("j / k / ↑ / ↓", "Move up/down").
		KeyLine("h / ←", "Collapse / go to linking document").
		KeyLine("l / →", "Expand").
		KeyLine("E", "Expand everything").
		BlankLine().
		Section("Actions").
		KeyLine("enter", "Open document in $EDITOR").
		KeyLine("o", "Open document with the desktop default app").
		KeyLine("y", "Copy [[link]] to the clipboard").
		KeyLine("/", "Find a document").
		KeyLine("r", "Walk the wiki again").
		BlankLine().
		Section("General").
		KeyLine("?", "Toggle help").
		KeyLine("q / Ctrl+C", "Quit").
		BlankLine().
		Section("Site map").
		Muted("  Documents are listed depth first in link order. A document may").
		Muted("  appear under several parents; links back into their own path are").
		Muted("  dropped and counted in the status line.").
		BlankLine().
		Help(HelpKeys.Close).
		String()
}
