package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tabnav/internal/adapters/tui/styles"
)

// HelpModel is the full-screen help view.
type HelpModel struct {
	width  int
	height int
}

// NewHelpModel creates the help view.
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init implements tea.Model.
func (m *HelpModel) Init() tea.Cmd { return nil }

// SetSize stores the window dimensions.
func (m *HelpModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Update returns to the workspace on any key.
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, func() tea.Msg { return SwitchToWorkspaceMsg{} }
	}
	return m, nil
}

// View renders the help screen.
func (m *HelpModel) View() string {
	rows := [][2]string{
		{"j/k, ↓/↑", "move between clickable elements"},
		{"enter", "plain click (routed through the engine)"},
		{"c", "ctrl-click (platform new-pane gesture, engine defers)"},
		{"m", "meta-click (platform new-pane gesture, engine defers)"},
		{"/", "set the search query"},
		{"y", "copy the resolved path of the element under the cursor"},
		{"e", "open an empty tab"},
		{"x", "close the active tab"},
		{"?", "this help"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("tabnav simulator help"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("every row is a DOM element; clicking dispatches a capture-phase event through the router"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(styles.HelpKey.Render(r[0]))
		b.WriteString("  ")
		b.WriteString(styles.HelpDesc.Render(r[1]))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("press any key to go back"))
	return styles.App.Render(b.String())
}
