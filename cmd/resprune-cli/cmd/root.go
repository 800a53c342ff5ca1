package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"resprune/internal/adapters/tui/styles"
	"resprune/internal/bootstrap"
	"resprune/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *pterm.Logger
)

var rootCmd = &cobra.Command{
	Use:   "resprune-cli",
	Short: "Find and remove unused Android resources",
	Long: `resprune-cli keeps a reference index over an application module's sources,
refreshed incrementally from git, and uses it to find drawables, raw assets,
layouts, navigation destinations, colors and dimens nothing references.

Unused files are deleted and unused XML declarations are cut out of their
documents. Every destructive command supports --dry-run.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		loaded, err := config.Load(cmd, cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		logger = bootstrap.NewLogger(os.Stderr, cfg.Verbose)
		return nil
	},
}

// Execute runs the root command. Errors carrying an exit code, such as a
// failed git invocation, exit the process with that code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorText.Render("Error: "+err.Error()))

		var coded interface{ ExitCode() int }
		if errors.As(err, &coded) && coded.ExitCode() > 0 {
			os.Exit(coded.ExitCode())
		}
		os.Exit(1)
	}
}

func init() {
	config.InitFlags(rootCmd, &cfgFile)
}

// openWorkspace opens the configured module and its index
func openWorkspace() (*bootstrap.Workspace, error) {
	return bootstrap.Open(cfg, logger)
}

// withSpinner shows a spinner while fn runs
func withSpinner(text string, fn func() error) error {
	spinner, _ := pterm.DefaultSpinner.
		WithStyle(pterm.NewStyle(pterm.FgCyan)).
		WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").
		WithDelay(100).
		WithRemoveWhenDone(true).
		Start(text)

	err := fn()
	if spinner != nil {
		_ = spinner.Stop()
	}
	return err
}
