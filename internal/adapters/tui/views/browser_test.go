package views

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"wikimap/internal/adapters/filesystem"
	"wikimap/internal/domain"
)

func setupWiki(t *testing.T) *filesystem.Reader {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"index.wiki":    "[[projects|Projects]] [[journal]]",
		"projects.wiki": "[[garden]] [[index]]",
		"garden.wiki":   "",
		"journal.wiki":  "",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return filesystem.NewReader(root, ".wiki")
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loadedBrowser returns a browser with the tree already loaded
func loadedBrowser(t *testing.T, copyFn CopyFunc) (*BrowserModel, *filesystem.Reader) {
	t.Helper()
	wiki := setupWiki(t)
	m := NewBrowserModel(wiki, nil, "index", copyFn)
	msg := m.Init()()
	if _, ok := msg.(treeLoadedMsg); !ok {
		t.Fatalf("expected treeLoadedMsg, got %T", msg)
	}
	m.Update(msg)
	return m, wiki
}

func TestBrowser_LoadsSiteTree(t *testing.T) {
	m, _ := loadedBrowser(t, nil)

	if m.Root() == nil || m.Root().ID != "index" {
		t.Fatalf("expected root index, got %+v", m.Root())
	}
	// Root is expanded, children are collapsed
	if len(m.flatNodes) != 3 {
		t.Errorf("expected 3 visible nodes, got %d", len(m.flatNodes))
	}
	if m.stats.Cycles != 1 {
		t.Errorf("expected the link back to index to count as a cycle, got %d", m.stats.Cycles)
	}

	view := m.View()
	if !strings.Contains(view, "Projects") || !strings.Contains(view, "journal") {
		t.Errorf("expected documents in view:\n%s", view)
	}
	if !strings.Contains(view, "1 circular links") {
		t.Errorf("expected cycle count in status line:\n%s", view)
	}
}

func TestBrowser_Navigation(t *testing.T) {
	m, _ := loadedBrowser(t, nil)

	m.Update(runes("j"))
	if node := m.selectedNode(); node.ID != "projects" {
		t.Fatalf("expected projects selected, got %s", node.ID)
	}

	m.Update(runes("l"))
	if len(m.flatNodes) != 4 {
		t.Errorf("expected garden to appear after expand, got %d nodes", len(m.flatNodes))
	}

	m.Update(runes("j"))
	if node := m.selectedNode(); node.ID != "garden" {
		t.Fatalf("expected garden selected, got %s", node.ID)
	}

	// Leaf: go to the linking document
	m.Update(runes("h"))
	if node := m.selectedNode(); node.ID != "projects" {
		t.Errorf("expected cursor back on projects, got %s", node.ID)
	}

	m.Update(runes("h"))
	if len(m.flatNodes) != 3 {
		t.Errorf("expected projects collapsed, got %d nodes", len(m.flatNodes))
	}

	m.Update(runes("k"))
	m.Update(runes("k"))
	if m.cursor != 0 {
		t.Errorf("expected cursor clamped at 0, got %d", m.cursor)
	}
}

func TestBrowser_OpenEditor(t *testing.T) {
	m, wiki := loadedBrowser(t, nil)
	m.Update(runes("j"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(OpenEditorMsg)
	if !ok {
		t.Fatalf("expected OpenEditorMsg, got %T", cmd())
	}
	if msg.Path != wiki.Path("projects") {
		t.Errorf("expected %s, got %s", wiki.Path("projects"), msg.Path)
	}
}

func TestBrowser_CopyLink(t *testing.T) {
	var copied string
	m, _ := loadedBrowser(t, func(text string) error {
		copied = text
		return nil
	})

	m.Update(runes("j"))
	m.Update(runes("y"))
	if copied != "[[projects|Projects]]" {
		t.Errorf("expected named link markup, got %q", copied)
	}
	if m.MessageErr || !strings.Contains(m.Message, "Copied") {
		t.Errorf("expected success message, got %q", m.Message)
	}

	m.Update(runes("j"))
	m.Update(runes("y"))
	if copied != "[[journal]]" {
		t.Errorf("expected plain link markup, got %q", copied)
	}
}

func TestBrowser_CopyFailure(t *testing.T) {
	m, _ := loadedBrowser(t, func(string) error { return errors.New("no clipboard") })

	m.Update(runes("y"))
	if !m.MessageErr || !strings.Contains(m.Message, "no clipboard") {
		t.Errorf("expected error message, got %q", m.Message)
	}
}

func TestBrowser_ExpandAllAndSelect(t *testing.T) {
	m, _ := loadedBrowser(t, nil)

	m.Update(runes("E"))
	if len(m.flatNodes) != 4 {
		t.Errorf("expected every node visible, got %d", len(m.flatNodes))
	}

	m.Root().Children[0].Collapse()
	m.refreshFlatNodes()

	var garden *domain.TreeNode
	for _, n := range m.Root().All() {
		if n.ID == "garden" {
			garden = n
		}
	}
	m.Select(garden)
	if m.selectedNode() != garden {
		t.Error("expected Select to reveal and focus garden")
	}
}

func TestBrowser_SwitchMessages(t *testing.T) {
	m, _ := loadedBrowser(t, nil)

	_, cmd := m.Update(runes("/"))
	if _, ok := cmd().(SwitchToSearchMsg); !ok {
		t.Error("expected / to switch to search")
	}
	_, cmd = m.Update(runes("?"))
	if _, ok := cmd().(SwitchToHelpMsg); !ok {
		t.Error("expected ? to switch to help")
	}
}

func TestSearch_FindAndSelect(t *testing.T) {
	m, _ := loadedBrowser(t, nil)
	m.Root().ExpandAll()

	s := NewSearchModel(func(string) error { return nil })
	s.Reset(m.Root())

	for _, r := range "gard" {
		s.Update(runes(string(r)))
	}
	if len(s.results) == 0 || s.results[0].Node.ID != "garden" {
		t.Fatalf("expected garden as best match, got %v", s.results)
	}

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg, ok := cmd().(SearchSelectMsg)
	if !ok || msg.Node.ID != "garden" {
		t.Errorf("expected selection of garden, got %#v", cmd())
	}

	_, cmd = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := cmd().(SwitchToBrowserMsg); !ok {
		t.Error("expected esc to return to the browser")
	}
}

func TestBrowser_ReloadKeepsExpansionAndCursor(t *testing.T) {
	m, wiki := loadedBrowser(t, func(string) error { return nil })

	m.Update(runes("j"))
	m.Update(runes("l"))
	m.Update(runes("j"))
	if node := m.selectedNode(); node.ID != "garden" {
		t.Fatalf("expected garden selected, got %s", node.ID)
	}

	if err := os.WriteFile(wiki.Path("journal"), []byte("[[2024]]"), 0o644); err != nil {
		t.Fatal(err)
	}
	m.Update(m.Reload()())

	if node := m.selectedNode(); node == nil || node.ID != "garden" {
		t.Fatalf("expected cursor to stay on garden, got %+v", node)
	}
	if !m.Root().Children[0].IsExpanded {
		t.Error("expected projects to stay expanded")
	}
	journal := m.Root().Children[1]
	if len(journal.Children) != 1 || journal.IsExpanded {
		t.Errorf("expected journal to gain a collapsed child, got %+v", journal)
	}
}
