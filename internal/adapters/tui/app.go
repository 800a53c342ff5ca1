package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"resprune/internal/adapters/tui/styles"
	"resprune/internal/adapters/tui/views"
	"resprune/internal/application/commands"
	"resprune/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewLoading ViewState = iota
	ViewReview
	ViewHelp
	ViewDone
)

// RunFunc performs the prune pass, leaving its plan staged
type RunFunc func(ctx context.Context) (*commands.RemoveUnusedResult, error)

type (
	passDoneMsg struct {
		result *commands.RemoveUnusedResult
		err    error
	}
	commitDoneMsg     struct{ err error }
	editorFinishedMsg struct{ err error }
)

// Outcome is what the session ended with
type Outcome struct {
	Result    *commands.RemoveUnusedResult
	Applied   bool
	Cancelled bool
	Err       error
}

// App is the main TUI application model
type App struct {
	ctx    context.Context
	run    RunFunc
	plan   ports.ReviewablePlan
	editor ports.EditorOpener

	state   ViewState
	spinner spinner.Model
	review  *views.ReviewModel
	help    *views.HelpModel
	outcome Outcome

	width  int
	height int
}

// NewApp creates a new TUI application. run must stage into plan.
func NewApp(ctx context.Context, run RunFunc, plan ports.ReviewablePlan, root string, ed ports.EditorOpener) *App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	return &App{
		ctx:     ctx,
		run:     run,
		plan:    plan,
		editor:  ed,
		state:   ViewLoading,
		spinner: s,
		review:  views.NewReviewModel(plan, root),
		help:    views.NewHelpModel(),
	}
}

// Outcome returns how the session ended. Valid after the program exits.
func (a *App) Outcome() Outcome {
	return a.outcome
}

// State returns the current view
func (a *App) State() ViewState {
	return a.state
}

// Init starts the pass
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.runPass())
}

func (a *App) runPass() tea.Cmd {
	return func() tea.Msg {
		result, err := a.run(a.ctx)
		return passDoneMsg{result: result, err: err}
	}
}

func (a *App) commit() tea.Cmd {
	return func() tea.Msg {
		return commitDoneMsg{err: a.plan.Commit()}
	}
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.review.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if a.state == ViewLoading && msg.Type == tea.KeyCtrlC {
			a.outcome.Cancelled = true
			return a, tea.Quit
		}

	case spinner.TickMsg:
		if a.state == ViewLoading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case passDoneMsg:
		a.outcome.Result = msg.result
		if msg.err != nil {
			a.outcome.Err = msg.err
			a.state = ViewDone
			return a, tea.Quit
		}
		a.review = views.NewReviewModel(a.plan, a.reviewRoot())
		a.review.SetSize(a.width, a.height)
		if len(a.review.Entries()) == 0 {
			a.state = ViewDone
			return a, tea.Quit
		}
		a.state = ViewReview
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToReviewMsg:
		a.state = ViewReview
		return a, nil

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			a.review.SetMessage(msg.err.Error(), true)
		}
		return a, nil

	case views.CommitPlanMsg:
		return a, a.commit()

	case commitDoneMsg:
		a.outcome.Applied = msg.err == nil
		a.outcome.Err = msg.err
		a.state = ViewDone
		return a, tea.Quit

	case views.CancelPlanMsg:
		a.plan.Discard()
		a.outcome.Cancelled = true
		a.state = ViewDone
		return a, tea.Quit
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewReview:
		_, cmd = a.review.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}
	return a, cmd
}

// reviewRoot keeps the root the review was created with
func (a *App) reviewRoot() string {
	return a.review.Root()
}

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewLoading:
		return styles.App.Render(fmt.Sprintf("%s Refreshing index and looking for unused resources...", a.spinner.View()))
	case ViewHelp:
		return a.help.View()
	case ViewDone:
		return ""
	default:
		return a.review.View()
	}
}

// Summary renders the outcome for printing after the program exits
func (o Outcome) Summary() string {
	var b strings.Builder
	if o.Result != nil {
		for _, r := range o.Result.Reports {
			b.WriteString(styles.FormatSummary(r.Detector, r.Total, r.Count))
			b.WriteString("\n")
		}
	}
	switch {
	case o.Err != nil:
		b.WriteString(styles.ErrorText.Render("Error: " + o.Err.Error()))
	case o.Applied:
		b.WriteString(styles.Success.Render("Plan applied"))
	case o.Cancelled:
		b.WriteString(styles.WarningText.Render("Cancelled, nothing was changed"))
	default:
		b.WriteString(styles.MutedText.Render("No unused resources found"))
	}
	return b.String()
}
