package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tabnav/internal/adapters/editor"
	"tabnav/internal/adapters/obsidian"
	"tabnav/internal/ports"
	"tabnav/internal/resolver"
)

var (
	openNewPane  bool
	openInEditor bool
)

var openCmd = &cobra.Command{
	Use:   "open <path>",
	Short: "Open a note in the running Obsidian instance or $EDITOR",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res := resolver.New(vault, activeFile(""))
		path := res.Normalize(args[0])

		var opener ports.NoteOpener
		if openInEditor {
			opener = editor.NewOpener(vault.Root())
		} else {
			opener = obsidian.NewOpener(vault.Root())
		}
		if err := opener.OpenFile(path, openNewPane); err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		fmt.Println("opened", path)
		return nil
	},
}

func init() {
	openCmd.Flags().BoolVarP(&openNewPane, "new-pane", "n", false, "hint the host to use a new pane")
	openCmd.Flags().BoolVarP(&openInEditor, "editor", "e", false, "open in $EDITOR instead of Obsidian")
	rootCmd.AddCommand(openCmd)
}
