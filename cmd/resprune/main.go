package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"resprune/internal/adapters/editor"
	"resprune/internal/adapters/filesystem"
	"resprune/internal/adapters/tui"
	"resprune/internal/adapters/tui/styles"
	"resprune/internal/application/commands"
	"resprune/internal/bootstrap"
	"resprune/internal/config"
)

var (
	cfgFile   string
	full      bool
	detectors []string
)

var rootCmd = &cobra.Command{
	Use:   "resprune",
	Short: "Review and remove unused Android resources interactively",
	Long: `resprune refreshes the reference index, stages the deletion of every
unused resource and opens a review screen. Nothing is deleted until the plan
is applied from the review.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	config.InitFlags(rootCmd, &cfgFile)
	rootCmd.Flags().BoolVar(&full, "full", false, "run every resource detector")
	rootCmd.Flags().StringSliceVarP(&detectors, "detector", "d", nil, "run only the named detectors")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorText.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd, cfgFile)
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal; debug logs go to a file
	var logOut io.Writer = io.Discard
	if cfg.Verbose {
		if err := os.MkdirAll(cfg.IndexDir, 0755); err != nil {
			return err
		}
		f, err := os.Create(filepath.Join(cfg.IndexDir, "resprune.log"))
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger := bootstrap.NewLogger(logOut, cfg.Verbose)

	ws, err := bootstrap.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer ws.Close()

	plan := filesystem.NewDeletionPlan()
	removeCmd, err := ws.RemoveUnusedCommand(plan, false, bootstrap.DetectorNames(full, detectors)...)
	if err != nil {
		return err
	}
	removeCmd.Stage = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pass := func(ctx context.Context) (*commands.RemoveUnusedResult, error) {
		return removeCmd.Execute(ctx)
	}
	app := tui.NewApp(ctx, pass, plan, cfg.Project, editor.NewOpener(cfg.Editor))

	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	cancel()
	if err != nil {
		plan.Discard()
		return err
	}

	outcome := app.Outcome()
	if !outcome.Applied {
		plan.Discard()
	}
	if outcome.Err != nil {
		return outcome.Err
	}
	fmt.Println(outcome.Summary())
	return nil
}
