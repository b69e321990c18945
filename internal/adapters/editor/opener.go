// Package editor opens vault files in the user's terminal editor, for
// workflows that bypass the Obsidian URI handler.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"tabnav/internal/ports"
)

// Opener implements ports.NoteOpener by launching $EDITOR on the
// resolved absolute path. Editors have no pane model, so newPane is
// ignored.
type Opener struct {
	vaultRoot string
}

// NewOpener creates an opener for the vault rooted at vaultRoot. A
// leading ~ expands to the user's home directory.
func NewOpener(vaultRoot string) *Opener {
	if strings.HasPrefix(vaultRoot, "~") {
		home, _ := os.UserHomeDir()
		vaultRoot = filepath.Join(home, vaultRoot[1:])
	}
	return &Opener{vaultRoot: vaultRoot}
}

// OpenFile opens a vault-relative file in the user's preferred editor.
func (o *Opener) OpenFile(relPath string, newPane bool) error {
	editor := findEditor()
	if editor == "" {
		return fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	cmd := exec.Command(editor, filepath.Join(o.vaultRoot, filepath.FromSlash(relPath)))
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// findEditor returns the editor to use
func findEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	// Try common editors
	editors := []string{"nvim", "vim", "vi", "nano", "code"}
	for _, editor := range editors {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}
	return ""
}

var _ ports.NoteOpener = (*Opener)(nil)
