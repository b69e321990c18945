package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var filesPrefix string

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List the vault file listing the engine scans",
	RunE: func(cmd *cobra.Command, args []string) error {
		n := 0
		for _, f := range vault.Files() {
			if filesPrefix != "" && !strings.HasPrefix(f.Path, filesPrefix) {
				continue
			}
			fmt.Println(f.Path)
			n++
		}
		if n == 0 {
			fmt.Println("(no files)")
		}
		return nil
	},
}

func init() {
	filesCmd.Flags().StringVarP(&filesPrefix, "prefix", "p", "", "only list paths under this prefix")
	rootCmd.AddCommand(filesCmd)
}
