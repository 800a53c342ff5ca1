package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"resprune/internal/adapters/tui/styles"
	"resprune/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage resprune.yaml",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default resprune.yaml to the project root",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(cfg.Project, config.FileName)
		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		defaults := config.DefaultConfig()
		defaults.Module = cfg.Module
		if err := config.SaveConfig(path, defaults); err != nil {
			return err
		}
		fmt.Println(styles.Success.Render("Wrote " + path))
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
