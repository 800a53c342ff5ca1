package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"resprune/internal/adapters/tui/styles"
	"resprune/internal/application/commands"
)

var cleanRebuild bool

var cleanIndexCmd = &cobra.Command{
	Use:   "clean-index",
	Short: "Delete the reference index",
	Long: `Delete the reference index directory. With --rebuild the index is rebuilt
from every source file right away.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		defer ws.Close()

		cleanCmd := commands.NewCleanIndexCommand(ws.Index, ws.RefreshCommand(), cfg.Project, cfg.IndexDir, cleanRebuild)

		var result *commands.CleanIndexResult
		err = withSpinner("Cleaning index", func() error {
			result, err = cleanCmd.Execute(ctx)
			return err
		})
		if err != nil {
			return err
		}

		fmt.Println(styles.Success.Render("Removed " + result.IndexDir))
		if result.Rebuild != nil && result.Rebuild.Stats != nil {
			fmt.Printf("Indexed %d files at %s\n", result.Rebuild.Stats.Added, result.Rebuild.NewRevision)
		}
		return nil
	},
}

func init() {
	cleanIndexCmd.Flags().BoolVar(&cleanRebuild, "rebuild", false, "rebuild the index after deleting it")
	rootCmd.AddCommand(cleanIndexCmd)
}
