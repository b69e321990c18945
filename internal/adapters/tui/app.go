package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tabnav/internal/adapters/memdom"
	"tabnav/internal/adapters/sim"
	"tabnav/internal/adapters/tui/views"
	"tabnav/internal/navpatch"
	"tabnav/internal/ports"
	"tabnav/internal/resolver"
	"tabnav/internal/router"
)

// ViewState represents the current view.
type ViewState int

const (
	ViewWorkspace ViewState = iota
	ViewHelp
)

// App is the main TUI application model. It owns the whole engine
// stack: simulated workspace, in-memory document, resolver, router,
// and the installed same-file navigation patch.
type App struct {
	state     ViewState
	workspace *views.WorkspaceModel
	help      *views.HelpModel
	restore   func()

	width  int
	height int
}

// NewApp wires the engine against a simulated host workspace over the
// given vault listing.
func NewApp(vault ports.Vault) *App {
	ws := sim.NewWorkspace(vault)
	doc := memdom.NewDocument()

	res := resolver.New(vault, ws)
	res.SetSearchResults(ws)
	ws.SetNormalizer(res)

	rt := router.New(ws, res, doc, doc)
	doc.AddCaptureListener(rt.OnClick)
	doc.AddDefaultAction(ws.DefaultClickAction(res))

	restore := navpatch.Install(ws, res)

	return &App{
		state:     ViewWorkspace,
		workspace: views.NewWorkspaceModel(vault, ws, doc, res, rt),
		help:      views.NewHelpModel(),
		restore:   restore,
	}
}

// Init initializes the application.
func (a *App) Init() tea.Cmd {
	return a.workspace.Init()
}

// Update handles messages for the application.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.workspace.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToWorkspaceMsg:
		a.state = ViewWorkspace
		return a, nil

	case views.VaultReloadedMsg:
		// The workspace rows mirror the listing; refresh them even
		// while the help view is up.
		_, cmd := a.workspace.Update(msg)
		return a, cmd
	}

	switch a.state {
	case ViewHelp:
		_, cmd := a.help.Update(msg)
		return a, cmd
	default:
		_, cmd := a.workspace.Update(msg)
		return a, cmd
	}
}

// View renders the current view.
func (a *App) View() string {
	if a.state == ViewHelp {
		return a.help.View()
	}
	return a.workspace.View()
}

// Close restores the patched link-opening primitive.
func (a *App) Close() {
	if a.restore != nil {
		a.restore()
	}
}
