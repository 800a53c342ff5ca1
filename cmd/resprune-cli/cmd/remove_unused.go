package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"resprune/internal/adapters/filesystem"
	"resprune/internal/adapters/tui/styles"
	"resprune/internal/application/commands"
	"resprune/internal/bootstrap"
)

var (
	removeDryRun    bool
	removeFull      bool
	removeDetectors []string
)

var removeUnusedCmd = &cobra.Command{
	Use:   "remove-unused",
	Short: "Delete resources nothing references",
	Long: `Refresh the reference index, then run detectors in order and delete what
they find unused. Without --full only the static-analysis report is read.

Examples:
  resprune-cli remove-unused --full --dry-run
  resprune-cli remove-unused --detector drawable --detector raw`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		defer ws.Close()

		plan := filesystem.NewDeletionPlan()
		names := bootstrap.DetectorNames(removeFull, removeDetectors)
		removeCmd, err := ws.RemoveUnusedCommand(plan, removeDryRun, names...)
		if err != nil {
			return err
		}

		var result *commands.RemoveUnusedResult
		err = withSpinner("Pruning "+cfg.Module, func() error {
			result, err = removeCmd.Execute(ctx)
			return err
		})
		if err != nil {
			return err
		}

		printRemoveSummary(result)
		return nil
	},
}

func printRemoveSummary(result *commands.RemoveUnusedResult) {
	if result.DryRun {
		fmt.Println(styles.WarningText.Render("[DRY RUN] nothing was deleted"))
	}
	for _, report := range result.Reports {
		fmt.Println(styles.FormatSummary(report.Detector, report.Total, report.Count))
	}
	if len(result.Reports) > 1 {
		fmt.Println(styles.FormatSummary("all", result.Candidates, result.Total))
	}
}

func init() {
	removeUnusedCmd.Flags().BoolVarP(&removeDryRun, "dry-run", "n", false, "list what would be deleted without deleting")
	removeUnusedCmd.Flags().BoolVar(&removeFull, "full", false, "run every resource detector")
	removeUnusedCmd.Flags().StringSliceVarP(&removeDetectors, "detector", "d", nil, "run only the named detectors")
	rootCmd.AddCommand(removeUnusedCmd)
}
