package views

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"resprune/internal/adapters/tui/styles"
	"resprune/internal/domain"
	"resprune/internal/ports"
)

// ReviewKeyMap defines key bindings for the plan review
type ReviewKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Exclude  key.Binding
	Edit     key.Binding
	Copy     key.Binding
	Apply    key.Binding
	Help     key.Binding
	Quit     key.Binding

	// Only active while the apply prompt is shown
	Confirm key.Binding
	Back    key.Binding
}

var ReviewKeys = ReviewKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdown", "page down"),
	),
	Exclude: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "keep"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy path"),
	),
	Apply: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "apply"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "apply"),
	),
	Back: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "back"),
	),
}

// chrome is the number of screen rows not used by the entry list
const chrome = 9

// ReviewModel lists the staged operations of a plan and lets the user keep
// files before the plan is applied.
type ReviewModel struct {
	ViewState
	plan       ports.ReviewablePlan
	root       string
	entries    []domain.PlanEntry
	pager      *Paginator
	confirming bool
	copyText   func(string) error
}

// NewReviewModel creates a review over plan. Paths are shown relative to root.
func NewReviewModel(plan ports.ReviewablePlan, root string) *ReviewModel {
	m := &ReviewModel{
		plan:     plan,
		root:     root,
		pager:    NewPaginator(10),
		copyText: clipboard.WriteAll,
	}
	m.reload()
	return m
}

// SetSize updates dimensions and the visible page
func (m *ReviewModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.SetPageSize(height - chrome)
}

// Root returns the directory paths are shown relative to
func (m *ReviewModel) Root() string {
	return m.root
}

// Entries returns the operations still staged
func (m *ReviewModel) Entries() []domain.PlanEntry {
	return m.entries
}

// Selected returns the entry under the cursor
func (m *ReviewModel) Selected() (domain.PlanEntry, bool) {
	if len(m.entries) == 0 {
		return domain.PlanEntry{}, false
	}
	return m.entries[m.pager.Cursor()], true
}

func (m *ReviewModel) reload() {
	m.entries = m.plan.Entries()
	m.pager.SetTotal(len(m.entries))
}

// Init initializes the review
func (m *ReviewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the review
func (m *ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirming {
		switch {
		case key.Matches(keyMsg, ReviewKeys.Confirm):
			m.confirming = false
			return m, func() tea.Msg { return CommitPlanMsg{} }
		case key.Matches(keyMsg, ReviewKeys.Back):
			m.confirming = false
		}
		return m, nil
	}

	m.Message = ""
	switch {
	case key.Matches(keyMsg, ReviewKeys.Up):
		m.pager.Move(-1)
	case key.Matches(keyMsg, ReviewKeys.Down):
		m.pager.Move(1)
	case key.Matches(keyMsg, ReviewKeys.PageUp):
		m.pager.Move(-max(1, m.Height-chrome))
	case key.Matches(keyMsg, ReviewKeys.PageDown):
		m.pager.Move(max(1, m.Height-chrome))
	case key.Matches(keyMsg, ReviewKeys.Exclude):
		if entry, ok := m.Selected(); ok {
			m.plan.Exclude(entry.Path)
			m.reload()
			m.SetMessage("kept "+m.display(entry.Path), false)
		}
	case key.Matches(keyMsg, ReviewKeys.Edit):
		if entry, ok := m.Selected(); ok {
			path := entry.Path
			if entry.Rewrite() {
				path = entry.TempPath
			}
			return m, func() tea.Msg { return OpenEditorMsg{Path: path} }
		}
	case key.Matches(keyMsg, ReviewKeys.Copy):
		if entry, ok := m.Selected(); ok {
			if err := m.copyText(entry.Path); err != nil {
				m.SetMessage(fmt.Sprintf("clipboard: %v", err), true)
			} else {
				m.SetMessage("copied "+m.display(entry.Path), false)
			}
		}
	case key.Matches(keyMsg, ReviewKeys.Apply):
		if len(m.entries) == 0 {
			m.SetMessage("nothing to apply", true)
			return m, nil
		}
		m.confirming = true
	case key.Matches(keyMsg, ReviewKeys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }
	case key.Matches(keyMsg, ReviewKeys.Quit):
		return m, func() tea.Msg { return CancelPlanMsg{} }
	}
	return m, nil
}

func (m *ReviewModel) display(path string) string {
	if rel, err := filepath.Rel(m.root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

// View renders the review
func (m *ReviewModel) View() string {
	var sc screen
	sc.title("Review unused resources")

	removals := 0
	for _, e := range m.entries {
		if !e.Rewrite() {
			removals++
		}
	}
	sc.muted(fmt.Sprintf("%d files to delete, %d documents to rewrite", removals, len(m.entries)-removals))
	sc.add("")

	if len(m.entries) == 0 {
		sc.muted("Nothing staged.")
	}
	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		sc.add(m.renderEntry(i))
	}
	sc.add("")

	if m.confirming {
		sc.add(fmt.Sprintf("Apply %d operations? ", len(m.entries)) + helpBar(ReviewKeys.Confirm, ReviewKeys.Back))
		return sc.String()
	}

	if m.Message != "" {
		sc.add(status(m.Message, m.MessageErr), "")
	}
	sc.add(helpBar(ReviewKeys.Up, ReviewKeys.Down, ReviewKeys.Exclude, ReviewKeys.Edit,
		ReviewKeys.Copy, ReviewKeys.Apply, ReviewKeys.Help, ReviewKeys.Quit))
	return sc.String()
}

func (m *ReviewModel) renderEntry(i int) string {
	entry := m.entries[i]
	tag := styles.EntryRemove.Render("delete ")
	if entry.Rewrite() {
		tag = styles.EntryRewrite.Render("rewrite")
	}
	path := m.display(entry.Path)
	if i == m.pager.Cursor() {
		return "> " + tag + " " + styles.EntrySelected.Render(path)
	}
	return "  " + tag + " " + path
}
