package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tabnav/internal/adapters/filesystem"
	"tabnav/internal/config"
)

var (
	vaultPath string
	vault     *filesystem.Vault
)

var rootCmd = &cobra.Command{
	Use:   "tabnav-cli",
	Short: "Inspect and drive tab-aware navigation for a markdown vault",
	Long: `tabnav-cli exposes the navigation engine from the command line:
resolve raw link targets to canonical vault paths, list the vault
file listing the engine scans, open notes in a running Obsidian
instance, and maintain the SQLite listing cache.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		vault = filesystem.NewVault(vaultPath)
		return vault.Load()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&vaultPath, "vault", "v", config.VaultPath(), "path to the vault")
}
