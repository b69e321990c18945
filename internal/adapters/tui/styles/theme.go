package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Row styles
	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	RowIgnored = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	SectionHeader = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Tab strip
	TabActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1).
			Bold(true)

	TabInactive = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(Muted).
			Padding(0, 1)

	TabEmpty = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1).
			Italic(true)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	// Input styles
	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Decision log line
	LogLine = lipgloss.NewStyle().
		Foreground(Warning)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)
