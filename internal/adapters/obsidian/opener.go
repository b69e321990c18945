// Package obsidian opens vault files in a running Obsidian instance
// through the obsidian:// URI scheme.
package obsidian

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"tabnav/internal/ports"
)

// Opener launches obsidian:// URIs for vault-relative paths.
type Opener struct {
	vaultName string
}

// NewOpener creates an Opener for the vault at vaultPath; the vault
// name Obsidian expects is the directory's base name.
func NewOpener(vaultPath string) *Opener {
	return &Opener{vaultName: filepath.Base(strings.TrimRight(vaultPath, "/"))}
}

// OpenFile opens a vault-relative file in Obsidian. When newPane is
// set, the newpane parameter is added for hosts with the advanced URI
// handler installed; plain hosts ignore it.
func (o *Opener) OpenFile(relPath string, newPane bool) error {
	return openURI(o.BuildURI(relPath, newPane))
}

// BuildURI constructs the obsidian:// URI for a vault-relative path.
func (o *Opener) BuildURI(relPath string, newPane bool) string {
	uri := fmt.Sprintf("obsidian://open?vault=%s&file=%s",
		url.QueryEscape(o.vaultName),
		url.QueryEscape(filepath.ToSlash(relPath)),
	)
	if newPane {
		uri += "&newpane=true"
	}
	return uri
}

var _ ports.NoteOpener = (*Opener)(nil)

func openURI(uri string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", uri)
	case "linux":
		cmd = exec.Command("xdg-open", uri)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", uri)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	return cmd.Run()
}
