package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"resprune/internal/adapters/tui/styles"
	"resprune/internal/application/commands"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Inspect or refresh the reference index",
}

var indexStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the indexed revision and index size",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		defer ws.Close()

		result, err := commands.NewIndexStatusCommand(ws.Index, ws.State, ws.VCS, logger).Execute(ctx)
		if err != nil {
			return err
		}

		revision := result.State.Revision
		if revision == "" {
			revision = "(never indexed)"
		}
		fmt.Printf("index:     %s\n", cfg.IndexDir)
		fmt.Printf("revision:  %s\n", revision)
		fmt.Printf("checkout:  %s\n", result.CurrentRevision)
		fmt.Printf("documents: %d\n", result.Stats.Documents)
		fmt.Printf("tokens:    %d\n", result.Stats.Tokens)
		switch {
		case result.NeedsRebuild:
			fmt.Println(styles.WarningText.Render("index format is outdated, the next refresh rebuilds it"))
		case result.UpToDate:
			fmt.Println(styles.Success.Render("up to date"))
		default:
			fmt.Println(styles.WarningText.Render("stale, run 'resprune-cli index refresh'"))
		}
		return nil
	},
}

var indexRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Bring the index up to the checked-out revision",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		defer ws.Close()

		var result *commands.RefreshIndexResult
		err = withSpinner("Refreshing index", func() error {
			result, err = ws.RefreshCommand().Execute(ctx)
			return err
		})
		if err != nil {
			return err
		}

		if result.Skipped {
			fmt.Println("Index not changed")
			return nil
		}
		fmt.Printf("%d added, %d updated, %d deleted, %d missing\n",
			result.Stats.Added, result.Stats.Updated, result.Stats.Deleted, result.Stats.Missing)
		return nil
	},
}

func init() {
	indexCmd.AddCommand(indexStatusCmd)
	indexCmd.AddCommand(indexRefreshCmd)
	rootCmd.AddCommand(indexCmd)
}
