package views

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"wikimap/internal/adapters/tui/styles"
	"wikimap/internal/application/commands"
	"wikimap/internal/domain"
	"wikimap/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Open      key.Binding
	External  key.Binding
	Copy      key.Binding
	ExpandAll key.Binding
	Reload    key.Binding
	Search    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "edit"),
	),
	External: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open externally"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy link"),
	),
	ExpandAll: key.NewBinding(
		key.WithKeys("E"),
		key.WithHelp("E", "expand all"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "find"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// BrowserModel is the model for the site tree browser view
type BrowserModel struct {
	ViewState

	wiki   ports.Wiki
	log    *slog.Logger
	rootID domain.DocumentID
	copy   CopyFunc

	root      *domain.TreeNode
	flatNodes []*domain.TreeNode
	cursor    int
	stats     commands.SitemapStats
}

// NewBrowserModel creates a new browser model for the map rooted at rootID
func NewBrowserModel(wiki ports.Wiki, log *slog.Logger, rootID domain.DocumentID, copyFn CopyFunc) *BrowserModel {
	if copyFn == nil {
		copyFn = SystemClipboard
	}
	return &BrowserModel{
		wiki:   wiki,
		log:    log,
		rootID: rootID,
		copy:   copyFn,
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadTree
}

func (m *BrowserModel) loadTree() tea.Msg {
	cmd := commands.NewSitemapCommand(m.wiki, m.log, m.rootID)
	if err := cmd.Validate(); err != nil {
		return errMsg{err}
	}
	root := domain.BuildSiteTree(cmd.Execute(context.Background()))
	return treeLoadedMsg{root: root, stats: cmd.Stats()}
}

type treeLoadedMsg struct {
	root  *domain.TreeNode
	stats commands.SitemapStats
}

type errMsg struct {
	err error
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case treeLoadedMsg:
		m.replaceTree(msg.root)
		m.stats = msg.stats
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case LaunchedMsg:
		if msg.Err != nil {
			m.SetMessage(fmt.Sprintf("Open failed: %v", msg.Err), true)
		} else {
			m.SetMessage(fmt.Sprintf("Opened %s", filepath.Base(msg.Path)), false)
		}
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			if m.cursor < len(m.flatNodes)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Left):
			if node := m.selectedNode(); node != nil {
				if node.IsExpanded && !node.IsLeaf() {
					node.Collapse()
					m.refreshFlatNodes()
				} else if node.Parent != nil {
					m.Select(node.Parent)
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Right):
			if node := m.selectedNode(); node != nil && !node.IsLeaf() {
				node.Expand()
				m.refreshFlatNodes()
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Open):
			if node := m.selectedNode(); node != nil {
				path := m.wiki.Path(node.ID)
				return m, func() tea.Msg {
					return OpenEditorMsg{Path: path}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.External):
			if node := m.selectedNode(); node != nil {
				path := m.wiki.Path(node.ID)
				return m, func() tea.Msg {
					return OpenExternalMsg{Path: path}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Copy):
			if node := m.selectedNode(); node != nil {
				link := domain.LinkMarkup(node.ID, node.Name)
				if err := m.copy(link); err != nil {
					m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
				} else {
					m.SetMessage(fmt.Sprintf("Copied %s", link), false)
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.ExpandAll):
			if m.root != nil {
				m.root.ExpandAll()
				m.refreshFlatNodes()
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Reload):
			return m, m.Reload()

		case key.Matches(msg, BrowserKeys.Search):
			return m, func() tea.Msg {
				return SwitchToSearchMsg{}
			}

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

// Select reveals node and moves the cursor onto it
func (m *BrowserModel) Select(node *domain.TreeNode) {
	node.Reveal()
	m.refreshFlatNodes()
	for i, n := range m.flatNodes {
		if n == node {
			m.cursor = i
			return
		}
	}
}

// replaceTree swaps in a freshly loaded tree, keeping expanded nodes and
// the cursor where the same path still exists
func (m *BrowserModel) replaceTree(next *domain.TreeNode) {
	if m.root == nil || next == nil {
		m.root = next
		m.refreshFlatNodes()
		return
	}

	expanded := make(map[string]bool)
	for _, n := range m.root.All() {
		if n.IsExpanded {
			expanded[treeKey(n)] = true
		}
	}
	var selected string
	if n := m.selectedNode(); n != nil {
		selected = treeKey(n)
	}

	for _, n := range next.All() {
		if expanded[treeKey(n)] {
			n.Expand()
		}
	}
	m.root = next
	m.refreshFlatNodes()

	for i, n := range m.flatNodes {
		if treeKey(n) == selected {
			m.cursor = i
			return
		}
	}
}

// treeKey identifies a node by its path from the root, since an ID may
// appear in several places
func treeKey(n *domain.TreeNode) string {
	var ids []string
	for p := n; p != nil; p = p.Parent {
		ids = append(ids, string(p.ID))
	}
	return strings.Join(ids, "\x00")
}

// Root returns the loaded site tree, nil until the first load finishes
func (m *BrowserModel) Root() *domain.TreeNode {
	return m.root
}

func (m *BrowserModel) selectedNode() *domain.TreeNode {
	if m.cursor >= 0 && m.cursor < len(m.flatNodes) {
		return m.flatNodes[m.cursor]
	}
	return nil
}

func (m *BrowserModel) refreshFlatNodes() {
	if m.root == nil {
		return
	}
	m.flatNodes = m.root.Flatten()
	// Clamp cursor
	if m.cursor >= len(m.flatNodes) {
		m.cursor = len(m.flatNodes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	if m.root == nil {
		if m.Message != "" {
			return styles.App.Render(RenderMessage(m.Message, m.MessageErr))
		}
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("wikimap"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.wiki.Root()))
	b.WriteString("\n\n")

	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		b.WriteString(m.renderNode(m.flatNodes[i], i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderStats(m.stats))
	b.WriteString("\n")

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(
		BrowserKeys.Down, BrowserKeys.Right, BrowserKeys.Open,
		BrowserKeys.Copy, BrowserKeys.Search, BrowserKeys.Help, BrowserKeys.Quit,
	))

	return styles.App.Render(b.String())
}

// visibleRange keeps the cursor on screen when the tree is taller than
// the terminal
func (m *BrowserModel) visibleRange() (int, int) {
	rows := m.Height - 10
	if rows <= 0 || len(m.flatNodes) <= rows {
		return 0, len(m.flatNodes)
	}
	start := max(0, m.cursor-rows/2)
	end := min(len(m.flatNodes), start+rows)
	return end - rows, end
}

func (m *BrowserModel) renderNode(node *domain.TreeNode, selected bool) string {
	indent := strings.Repeat("  ", node.Depth())

	var prefix string
	switch {
	case node.IsLeaf():
		prefix = styles.TreeLeaf
	case node.IsExpanded:
		prefix = styles.TreeExpanded
	default:
		prefix = styles.TreeCollapsed
	}

	text := node.Name
	if selected {
		text = styles.NodeSelected.Render(text)
	} else {
		switch {
		case node.Parent == nil:
			text = styles.NodeRoot.Render(text)
		case node.IsLeaf():
			text = styles.NodeLeaf.Render(text)
		default:
			text = styles.NodeBranch.Render(text)
		}
	}
	if node.Name != string(node.ID) {
		text += " " + styles.NodeID.Render(string(node.ID))
	}

	return fmt.Sprintf("%s%s%s", indent, styles.TreeBranch.Render(prefix), text)
}

// Reload walks the wiki again
func (m *BrowserModel) Reload() tea.Cmd {
	return m.loadTree
}
