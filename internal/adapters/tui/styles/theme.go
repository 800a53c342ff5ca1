package styles

import "github.com/charmbracelet/lipgloss"

var (
	Primary   = lipgloss.Color("#3DDC84")
	Secondary = lipgloss.Color("#4FC3F7")
	Muted     = lipgloss.Color("#8A8F98")
	Amber     = lipgloss.Color("#FFB300")
	Red       = lipgloss.Color("#E53935")
	Ink       = lipgloss.Color("#0B1F12")

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

	// Plan entries
	EntryRemove = lipgloss.NewStyle().
			Foreground(Red)

	EntryRewrite = lipgloss.NewStyle().
			Foreground(Amber)

	EntrySelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Ink).
			Bold(true)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	Label = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	WarningText = lipgloss.NewStyle().
			Foreground(Amber)

	ErrorText = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	Spinner = lipgloss.NewStyle().
		Foreground(Primary)

	// Summary line segments
	SummaryName = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			Width(11)

	SummaryValue = lipgloss.NewStyle().
			Bold(true)
)
