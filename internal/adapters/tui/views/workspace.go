package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tabnav/internal/adapters/memdom"
	"tabnav/internal/adapters/sim"
	"tabnav/internal/adapters/tui/styles"
	"tabnav/internal/domain"
	"tabnav/internal/ports"
	"tabnav/internal/resolver"
	"tabnav/internal/router"
)

// WorkspaceKeyMap defines key bindings for the workspace simulator.
type WorkspaceKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Click     key.Binding
	CtrlClick key.Binding
	MetaClick key.Binding
	Copy      key.Binding
	Search    key.Binding
	NewTab    key.Binding
	CloseTab  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var WorkspaceKeys = WorkspaceKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Click: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "click"),
	),
	CtrlClick: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "ctrl-click"),
	),
	MetaClick: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "meta-click"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	NewTab: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "new empty tab"),
	),
	CloseTab: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "close tab"),
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

// clickRow is one clickable element of the rendered workspace.
type clickRow struct {
	section string
	label   string
	ignored bool
	node    *memdom.Node
}

// WorkspaceModel drives the simulated workspace: every row maps to a
// DOM element, and "clicking" dispatches a real event through the
// capture chain with the router installed.
type WorkspaceModel struct {
	vault ports.Vault
	ws    *sim.Workspace
	doc   *memdom.Document
	res   *resolver.Resolver
	rt    *router.Router

	rows    []clickRow
	cursor  int
	query   string
	input   textinput.Model
	typing  bool
	logLine string
	width   int
	height  int
}

// NewWorkspaceModel wires the full engine against a simulated host.
func NewWorkspaceModel(vault ports.Vault, ws *sim.Workspace, doc *memdom.Document, res *resolver.Resolver, rt *router.Router) *WorkspaceModel {
	input := textinput.New()
	input.Placeholder = "search the vault"
	input.CharLimit = 64

	m := &WorkspaceModel{
		vault: vault,
		ws:    ws,
		doc:   doc,
		res:   res,
		rt:    rt,
		input: input,
	}
	m.rebuild()
	return m
}

// Init implements tea.Model.
func (m *WorkspaceModel) Init() tea.Cmd { return nil }

// SetSize stores the window dimensions.
func (m *WorkspaceModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Update handles messages for the workspace view.
func (m *WorkspaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case VaultReloadedMsg:
		m.logLine = "vault changed on disk, listing reloaded"
		m.rebuild()
		return m, nil

	case tea.KeyMsg:
		if m.typing {
			switch msg.String() {
			case "enter":
				m.query = m.input.Value()
				m.typing = false
				m.input.Blur()
				m.rebuild()
				return m, nil
			case "esc":
				m.typing = false
				m.input.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, WorkspaceKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, WorkspaceKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, WorkspaceKeys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}

		case key.Matches(msg, WorkspaceKeys.Click):
			m.click(ports.Modifiers{})

		case key.Matches(msg, WorkspaceKeys.CtrlClick):
			m.click(ports.Modifiers{Ctrl: true})

		case key.Matches(msg, WorkspaceKeys.MetaClick):
			m.click(ports.Modifiers{Meta: true})

		case key.Matches(msg, WorkspaceKeys.Copy):
			m.copyPath()

		case key.Matches(msg, WorkspaceKeys.Search):
			m.typing = true
			m.input.SetValue(m.query)
			m.input.Focus()
			return m, textinput.Blink

		case key.Matches(msg, WorkspaceKeys.NewTab):
			m.ws.AddEmptyLeaf()
			m.logLine = "opened an empty tab"
			m.rebuild()

		case key.Matches(msg, WorkspaceKeys.CloseTab):
			if active := m.ws.Active(); active != nil {
				m.ws.CloseLeaf(active)
				m.logLine = "closed the active tab"
				m.rebuild()
			}

		case key.Matches(msg, WorkspaceKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }
		}
	}
	return m, nil
}

func (m *WorkspaceModel) click(mods ports.Modifiers) {
	if m.cursor >= len(m.rows) {
		return
	}
	row := m.rows[m.cursor]
	before := len(m.ws.Leaves())

	ev := &ports.ClickEvent{Target: row.node, Mods: mods}
	src := router.Classify(row.node)
	m.doc.Dispatch(ev)

	delta := len(m.ws.Leaves()) - before
	verdict := "deferred to host"
	if ev.DefaultPrevented() {
		verdict = "suppressed"
	}
	active := "(empty)"
	if path, ok := m.ws.ActiveFile(); ok {
		active = path
	}
	m.logLine = fmt.Sprintf("%s click on %q: %s, %+d tab(s), active %s",
		src, row.label, verdict, delta, active)
	m.rebuild()
}

func (m *WorkspaceModel) copyPath() {
	if m.cursor >= len(m.rows) {
		return
	}
	row := m.rows[m.cursor]
	src := router.Classify(row.node)
	raw, ok := m.res.Resolve(src, row.node)
	if !ok {
		m.logLine = "nothing to copy: target does not resolve"
		return
	}
	path := m.res.Normalize(raw)
	if err := clipboard.WriteAll(path); err != nil {
		m.logLine = "clipboard: " + err.Error()
		return
	}
	m.logLine = "copied " + path
}

// rebuild re-renders the simulated DOM from the vault listing, the
// current search query, and the active leaf, then flattens it into
// clickable rows.
func (m *WorkspaceModel) rebuild() {
	files := m.vault.Files()
	m.rows = m.rows[:0]

	// File explorer.
	explorer := sim.ExplorerTree(files)
	for _, el := range collectClass(explorer, domain.ClassCollapseIcon) {
		if title := ports.ClosestClass(el, "nav-folder-title"); title != nil {
			path, _ := title.Attr(domain.AttrPath)
			m.addRow("explorer", "▶ "+domain.LastSegment(path), true, el)
		}
	}
	for _, el := range collectClass(explorer, "nav-file-title-content") {
		m.addRow("explorer", el.Text(), false, el)
	}

	// Search results.
	var entries []sim.SearchEntry
	var paths []string
	if m.query != "" {
		for _, f := range files {
			if !strings.Contains(strings.ToLower(f.Basename), strings.ToLower(m.query)) {
				continue
			}
			entries = append(entries, sim.SearchEntry{
				Path:    f.Path,
				Title:   f.Basename,
				Matches: []string{fmt.Sprintf("…%s appears here…", m.query)},
			})
			paths = append(paths, f.Path)
		}
	}
	m.ws.SetSearchResultPaths(paths)
	search := sim.SearchPane(entries)
	for _, result := range collectClass(search, domain.ClassSearchResult) {
		title := ports.FindClass(result, domain.ClassSearchTitle)
		if title == nil {
			continue
		}
		if inner := ports.FindClass(title, "tree-item-inner"); inner != nil {
			m.addRow("search", inner.Text(), false, inner)
		}
		if btn := ports.FindClass(title, domain.ClassHoverButton); btn != nil {
			m.addRow("search", "(hover button)", true, btn)
		}
		for _, match := range collectClass(result, domain.ClassSearchMatch) {
			m.addRow("search", "match: "+match.Text(), false, match)
		}
	}

	// Bookmarks: root-level notes plus one folder bookmark per folder.
	bookmarks := buildBookmarks(files)
	pane := sim.BookmarksPane(bookmarks)
	for _, el := range collectClass(pane, "tree-item-inner") {
		item := ports.ClosestClass(el, domain.ClassTreeItem)
		folder := item != nil && item.HasClass(domain.ClassCollapsible)
		label := el.Text()
		if folder {
			label = "▶ " + label
		}
		m.addRow("bookmarks", label, folder, el)
	}

	// Note content: links to the active file's folder siblings plus a
	// same-document anchor.
	if active, ok := m.ws.ActiveFile(); ok {
		var links []sim.Link
		dir := domain.Dir(active)
		for _, f := range files {
			if f.Path != active && domain.Dir(f.Path) == dir && strings.HasSuffix(f.Path, domain.MarkdownExt) {
				links = append(links, sim.Link{Href: f.Basename, Text: f.Basename})
			}
			if len(links) == 6 {
				break
			}
		}
		links = append(links, sim.Link{Href: "#Overview", Text: "#Overview (same doc)"})
		note := sim.NoteView(links)
		for _, el := range collectClass(note, domain.ClassInternalLink) {
			m.addRow("note: "+active, "[["+el.Text()+"]]", false, el)
		}
	}

	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *WorkspaceModel) addRow(section, label string, ignored bool, el ports.Element) {
	node, ok := el.(*memdom.Node)
	if !ok {
		return
	}
	m.rows = append(m.rows, clickRow{section: section, label: label, ignored: ignored, node: node})
}

// View renders the workspace.
func (m *WorkspaceModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("tabnav workspace simulator"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	section := ""
	for i, row := range m.rows {
		if row.section != section {
			section = row.section
			b.WriteString(styles.SectionHeader.Render(section))
			b.WriteString("\n")
		}
		label := "  " + row.label
		switch {
		case i == m.cursor:
			label = styles.RowSelected.Render("> " + row.label)
		case row.ignored:
			label = styles.RowIgnored.Render(label)
		}
		b.WriteString(label)
		b.WriteString("\n")
	}

	if m.typing {
		b.WriteString("\n")
		b.WriteString(styles.InputFocused.Render(m.input.View()))
		b.WriteString("\n")
	}

	if m.logLine != "" {
		b.WriteString("\n")
		b.WriteString(styles.LogLine.Render(m.logLine))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return styles.App.Render(b.String())
}

func (m *WorkspaceModel) renderTabs() string {
	var tabs []string
	for _, l := range m.ws.Leaves() {
		vs := l.ViewState()
		switch {
		case l == m.ws.Active() && vs.File != "":
			tabs = append(tabs, styles.TabActive.Render(domain.LastSegment(vs.File)))
		case l == m.ws.Active():
			tabs = append(tabs, styles.TabActive.Render("new tab"))
		case vs.File != "":
			tabs = append(tabs, styles.TabInactive.Render(domain.LastSegment(vs.File)))
		default:
			tabs = append(tabs, styles.TabEmpty.Render("new tab"))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *WorkspaceModel) renderStatus() string {
	parts := []string{
		styles.HelpKey.Render("enter") + styles.HelpDesc.Render(" click"),
		styles.HelpKey.Render("c/m") + styles.HelpDesc.Render(" ctrl/meta click"),
		styles.HelpKey.Render("/") + styles.HelpDesc.Render(" search"),
		styles.HelpKey.Render("y") + styles.HelpDesc.Render(" copy path"),
		styles.HelpKey.Render("e/x") + styles.HelpDesc.Render(" new/close tab"),
		styles.HelpKey.Render("?") + styles.HelpDesc.Render(" help"),
	}
	return styles.StatusBar.Render(strings.Join(parts, "  "))
}

// buildBookmarks derives a plausible bookmark set from the listing.
func buildBookmarks(files []ports.VaultFile) []sim.BookmarkEntry {
	var out []sim.BookmarkEntry
	folders := map[string]bool{}
	for _, f := range files {
		if dir := domain.Dir(f.Path); dir != "" && !folders[dir] {
			folders[dir] = true
			out = append(out, sim.BookmarkEntry{Path: dir, Title: domain.LastSegment(dir), Folder: true})
		}
		if domain.Dir(f.Path) == "" && strings.HasSuffix(f.Path, domain.MarkdownExt) && len(out) < 8 {
			// Bookmarks are stored extension-less, like the host does.
			out = append(out, sim.BookmarkEntry{Path: f.Basename, Title: f.Basename})
		}
	}
	return out
}

// collectClass gathers every descendant of root carrying the class.
func collectClass(root ports.Element, class string) []ports.Element {
	var out []ports.Element
	var walk func(el ports.Element)
	walk = func(el ports.Element) {
		for _, c := range el.Children() {
			if c.HasClass(class) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}
