package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"resprune/internal/adapters/tui/styles"
	"resprune/internal/application/commands"
)

var queryCmd = &cobra.Command{
	Use:   "query <term>",
	Short: "Check whether a term is referenced",
	Long: `Look a term up in the reference index and list the files containing every
one of its tokens. The index is queried as of the last refresh.

Examples:
  resprune-cli query R.drawable.ic_logo
  resprune-cli query 'ActivityMainBinding\:\:inflate'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		defer ws.Close()

		result, err := commands.NewQueryCommand(ws.Index, args[0]).Execute(ctx)
		if err != nil {
			return err
		}

		if !result.Referenced {
			fmt.Println(styles.WarningText.Render("not referenced"))
			return nil
		}
		fmt.Println(styles.Success.Render(fmt.Sprintf("referenced by %d files", len(result.Sources))))
		for _, path := range result.Sources {
			fmt.Println("  " + path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
