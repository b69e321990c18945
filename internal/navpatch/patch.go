// Package navpatch wraps the host's link-opening primitive so that
// same-document anchor and block links never force a new pane, while
// cross-document links are reconciled against the open pane set before
// delegation.
package navpatch

import (
	"tabnav/internal/domain"
	"tabnav/internal/ports"
)

// Normalizer applies extension policy to a path before pane-matching
// comparisons.
type Normalizer interface {
	Normalize(path string) string
}

// Patchable is a workspace whose link-opening primitive can be swapped
// out and restored.
type Patchable interface {
	ports.Workspace
	OpenLinkFunc() ports.OpenLinkFunc
	SetOpenLinkFunc(fn ports.OpenLinkFunc)
}

// Patch decorates an OpenLinkFunc. It never swallows errors: whatever
// the original primitive returns propagates to the caller.
type Patch struct {
	ws   ports.Workspace
	norm Normalizer
	orig ports.OpenLinkFunc
}

// New creates a Patch delegating to orig.
func New(ws ports.Workspace, norm Normalizer, orig ports.OpenLinkFunc) *Patch {
	return &Patch{ws: ws, norm: norm, orig: orig}
}

// Install wraps the workspace's current link-opening primitive and
// returns a restore function. Install once at activation; call restore
// at deactivation.
func Install(ws Patchable, norm Normalizer) (restore func()) {
	orig := ws.OpenLinkFunc()
	p := New(ws, norm, orig)
	ws.SetOpenLinkFunc(p.OpenLinkText)
	return func() { ws.SetOpenLinkFunc(orig) }
}

// OpenLinkText is the wrapped primitive. Same-document targets keep
// the caller's newLeaf flag untouched, preserving middle-click and
// ctrl-click semantics for in-page anchors. Cross-document targets
// already open in a pane activate that pane and clear the flag, so the
// original call only performs in-pane work (scroll, highlight).
func (p *Patch) OpenLinkText(linkText, sourcePath string, newLeaf bool) error {
	if !sameDocument(linkText, sourcePath) {
		target := p.norm.Normalize(linkText)
		found := false
		p.ws.IterateLeaves(func(leaf ports.Leaf) {
			vs := leaf.ViewState()
			if vs.File != "" && p.norm.Normalize(vs.File) == target {
				p.ws.SetActiveLeaf(leaf)
				found = true
			}
		})
		if found {
			newLeaf = false
		}
	}
	return p.orig(linkText, sourcePath, newLeaf)
}

func sameDocument(linkText, sourcePath string) bool {
	return linkText == "" || linkText+domain.MarkdownExt == sourcePath
}
