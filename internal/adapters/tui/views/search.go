package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wikimap/internal/adapters/tui/styles"
	"wikimap/internal/application/commands"
	"wikimap/internal/domain"
)

// maxResults is how many matches the search view lists
const maxResults = 10

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Copy   key.Binding
	Cancel key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "go to"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy link"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// SearchModel finds documents in the loaded site tree
type SearchModel struct {
	ViewState

	input   textinput.Model
	root    *domain.TreeNode
	copy    CopyFunc
	results []commands.FindResult
	cursor  int
}

// NewSearchModel creates a new search view model
func NewSearchModel(copyFn CopyFunc) *SearchModel {
	if copyFn == nil {
		copyFn = SystemClipboard
	}
	input := textinput.New()
	input.Placeholder = "Find a document..."
	input.Focus()

	return &SearchModel{
		input: input,
		copy:  copyFn,
	}
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears the query and searches the given tree from now on
func (m *SearchModel) Reset(root *domain.TreeNode) {
	m.root = root
	m.input.SetValue("")
	m.results = nil
	m.cursor = 0
	m.ClearMessage()
	m.input.Focus()
}

// SearchSelectMsg is sent when a search result is selected
type SearchSelectMsg struct {
	Node *domain.TreeNode
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SearchKeys.Cancel):
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}

		case key.Matches(msg, SearchKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			if m.cursor < min(len(m.results), maxResults)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Select):
			if node := m.selected(); node != nil {
				return m, func() tea.Msg {
					return SearchSelectMsg{Node: node}
				}
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Copy):
			if node := m.selected(); node != nil {
				link := domain.LinkMarkup(node.ID, node.Name)
				if err := m.copy(link); err != nil {
					m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
				} else {
					m.SetMessage(fmt.Sprintf("Copied %s", link), false)
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.search(m.input.Value())
	return m, cmd
}

// search runs synchronously; the tree is already in memory
func (m *SearchModel) search(query string) {
	if strings.TrimSpace(query) == "" {
		m.results = nil
		m.cursor = 0
		return
	}
	results, err := commands.NewFindCommand(m.root, query).Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.results = results
	if m.cursor >= min(len(results), maxResults) {
		m.cursor = 0
	}
}

func (m *SearchModel) selected() *domain.TreeNode {
	if m.cursor >= 0 && m.cursor < len(m.results) {
		return m.results[m.cursor].Node
	}
	return nil
}

// View renders the search view
func (m *SearchModel) View() string {
	v := NewViewBuilder().Title("Find")
	v.Line(styles.InputFocused.Render(m.input.View())).BlankLine()

	switch {
	case len(m.results) == 0 && m.input.Value() != "":
		v.Muted("No documents found")
	case len(m.results) == 0:
		v.Muted("Type to search document names and IDs")
	default:
		v.Subtitle(fmt.Sprintf("%d results", len(m.results)))
		shown := min(len(m.results), maxResults)
		for i := 0; i < shown; i++ {
			v.Line(m.renderResult(m.results[i].Node, i == m.cursor))
		}
		if len(m.results) > maxResults {
			v.Muted(fmt.Sprintf("... and %d more", len(m.results)-maxResults))
		}
	}

	v.BlankLine().Message(m.Message, m.MessageErr)
	v.Help(SearchKeys.Down, SearchKeys.Select, SearchKeys.Copy, SearchKeys.Cancel)
	return v.String()
}

func (m *SearchModel) renderResult(node *domain.TreeNode, selected bool) string {
	text := node.Name
	if node.Name != string(node.ID) {
		text = fmt.Sprintf("%s (%s)", node.Name, node.ID)
	}
	text = fmt.Sprintf("%s%s", strings.Repeat("  ", node.Depth()), text)

	if selected {
		return styles.NodeSelected.Render(text)
	}
	return text
}
