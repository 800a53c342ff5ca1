package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"resprune/internal/adapters/tui/styles"
)

var closeHelp = key.NewBinding(
	key.WithKeys("esc", "q", "?"),
	key.WithHelp("esc/q/?", "close"),
)

// helpSections pairs each heading with its key/description rows
var helpSections = []struct {
	heading string
	rows    [][2]string
}{
	{"Navigation", [][2]string{
		{"j / k / ↑ / ↓", "Move up/down"},
		{"pgup / pgdown", "Move one page"},
	}},
	{"Plan", [][2]string{
		{"x", "Keep the selected file"},
		{"e", "Open the file (or its rewritten copy) in the editor"},
		{"c", "Copy the path to the clipboard"},
		{"a", "Apply the plan"},
		{"q / Ctrl+C", "Quit without changes"},
	}},
}

// HelpModel lists the review key bindings
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update returns to the review on any close key
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, closeHelp) {
		return m, func() tea.Msg { return SwitchToReviewMsg{} }
	}
	return m, nil
}

func (m *HelpModel) View() string {
	var sc screen
	sc.add(styles.Title.Render("resprune"), styles.Subtitle.Render("Review unused resources before they are deleted"), "")

	for _, section := range helpSections {
		sc.add(styles.Label.Render(section.heading))
		for _, row := range section.rows {
			sc.add("  " + styles.HelpKey.Render(fmt.Sprintf("%-20s", row[0])) + styles.HelpDesc.Render(row[1]))
		}
		sc.add("")
	}

	sc.add(styles.Label.Render("Legend"),
		"  "+styles.EntryRemove.Render("delete ")+" "+styles.HelpDesc.Render("file is removed"),
		"  "+styles.EntryRewrite.Render("rewrite")+" "+styles.HelpDesc.Render("unused declarations are cut out"),
		"",
		helpBar(closeHelp))
	return sc.String()
}
