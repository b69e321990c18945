package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tabnav/internal/adapters/sqlite"
	"tabnav/internal/domain"
)

var syncFull bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Refresh the SQLite listing cache for the vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		idx := sqlite.NewIndex()
		if err := idx.Open(vaultPath); err != nil {
			return err
		}
		defer idx.Close()

		var err error
		var stats *domain.SyncStats
		if syncFull || idx.NeedsFullRebuild() {
			stats, err = idx.SyncFull()
		} else {
			stats, err = idx.SyncIncremental()
		}
		if err != nil {
			return err
		}
		fmt.Printf("scanned %d files, indexed %d in %s\n",
			stats.FilesScanned, stats.FilesIndexed, stats.Duration.Round(time.Millisecond))
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVarP(&syncFull, "full", "f", false, "force a full rebuild")
	rootCmd.AddCommand(syncCmd)
}
