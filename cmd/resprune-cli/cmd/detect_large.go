package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"resprune/internal/adapters/tui/styles"
	"resprune/internal/application/commands"
)

var largeThreshold int64

var detectLargeCmd = &cobra.Command{
	Use:   "detect-large",
	Short: "List oversized drawables",
	Long: `List drawables whose pixel count (width × height) exceeds a threshold,
largest first.

Example:
  resprune-cli detect-large --threshold 1048576`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		defer ws.Close()

		threshold := cfg.LargeThreshold
		if cmd.Flags().Changed("threshold") {
			threshold = largeThreshold
		}

		detectCmd := commands.NewDetectLargeCommand(ws.Layout, ws.Images, logger, threshold)
		result, err := detectCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if len(result.Images) == 0 {
			fmt.Println("No large images found")
			return nil
		}
		for _, img := range result.Images {
			fmt.Printf("%s %s\n", styles.MutedText.Render(fmt.Sprintf("%5dx%-5d", img.Width, img.Height)), img.Path)
		}
		fmt.Println(styles.Subtitle.Render(fmt.Sprintf("%d of %d images above %d pixels", len(result.Images), result.Inspected, threshold)))
		return nil
	},
}

func init() {
	detectLargeCmd.Flags().Int64VarP(&largeThreshold, "threshold", "t", commands.DefaultLargeThreshold, "pixel count above which an image is reported")
	rootCmd.AddCommand(detectLargeCmd)
}
