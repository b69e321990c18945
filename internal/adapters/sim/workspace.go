// Package sim is a simulated host workspace: leaves with view states,
// a patchable link-opening primitive, and host-like default click
// handling. It exists so the engine can be exercised end to end
// without the real host application.
package sim

import (
	"fmt"
	"strings"

	"tabnav/internal/domain"
	"tabnav/internal/ports"
	"tabnav/internal/resolver"
	"tabnav/internal/router"
)

// Leaf is a simulated pane.
type Leaf struct {
	vs ports.ViewState
}

// ViewState returns the leaf's current view state.
func (l *Leaf) ViewState() ports.ViewState { return l.vs }

func (l *Leaf) setFile(path string) {
	l.vs = ports.ViewState{Type: "markdown", File: path}
}

// Workspace implements ports.Workspace and navpatch.Patchable over an
// in-memory leaf list.
type Workspace struct {
	vault       ports.Vault
	leaves      []*Leaf
	active      *Leaf
	openFn      ports.OpenLinkFunc
	norm        *resolver.Resolver
	searchPaths []string
}

// NewWorkspace creates a workspace over the vault listing, with a
// single empty leaf the way the host starts up.
func NewWorkspace(vault ports.Vault) *Workspace {
	w := &Workspace{vault: vault}
	w.openFn = w.hostOpenLinkText
	w.AddEmptyLeaf()
	return w
}

// SetNormalizer wires the resolver used to canonicalize paths before
// they land in view states.
func (w *Workspace) SetNormalizer(res *resolver.Resolver) { w.norm = res }

// IterateLeaves visits every leaf in order.
func (w *Workspace) IterateLeaves(fn func(ports.Leaf)) {
	for _, l := range w.leaves {
		fn(l)
	}
}

// SetActiveLeaf focuses the given leaf.
func (w *Workspace) SetActiveLeaf(leaf ports.Leaf) {
	if l, ok := leaf.(*Leaf); ok {
		w.active = l
	}
}

// LeavesOfType returns all leaves whose view type matches.
func (w *Workspace) LeavesOfType(typ string) []ports.Leaf {
	var out []ports.Leaf
	for _, l := range w.leaves {
		if l.vs.Type == typ {
			out = append(out, l)
		}
	}
	return out
}

// ActiveFile returns the path shown by the active leaf.
func (w *Workspace) ActiveFile() (string, bool) {
	if w.active == nil || w.active.vs.File == "" {
		return "", false
	}
	return w.active.vs.File, true
}

// OpenLinkText invokes the (possibly patched) link-opening primitive.
func (w *Workspace) OpenLinkText(linkText, sourcePath string, newLeaf bool) error {
	return w.openFn(linkText, sourcePath, newLeaf)
}

// OpenLinkFunc returns the currently installed primitive.
func (w *Workspace) OpenLinkFunc() ports.OpenLinkFunc { return w.openFn }

// SetOpenLinkFunc swaps the primitive; used by the navigation patch.
func (w *Workspace) SetOpenLinkFunc(fn ports.OpenLinkFunc) { w.openFn = fn }

// hostOpenLinkText is the unpatched host primitive: same-document
// targets only reposition within the active leaf; otherwise the target
// goes into a new leaf or the active one depending on newLeaf.
func (w *Workspace) hostOpenLinkText(linkText, sourcePath string, newLeaf bool) error {
	if linkText == "" {
		// Anchor navigation within the current document.
		return nil
	}
	path := w.hostResolve(linkText)
	if newLeaf {
		w.openInNewLeaf(path)
		return nil
	}
	w.openInActiveLeaf(path)
	return nil
}

// hostResolve mimics the host's own link resolution: normalize, prefer
// an exact listing match, then fall back to basename lookup the way
// the host resolves bare wiki links.
func (w *Workspace) hostResolve(linkText string) string {
	path := linkText
	if w.norm != nil {
		path = w.norm.Normalize(path)
	}
	if w.vault == nil {
		return path
	}
	for _, f := range w.vault.Files() {
		if f.Path == path {
			return path
		}
	}
	base := strings.TrimSuffix(domain.LastSegment(path), domain.MarkdownExt)
	for _, f := range w.vault.Files() {
		if f.Basename == base {
			return f.Path
		}
	}
	return path
}

// AddEmptyLeaf appends a blank pane and focuses it.
func (w *Workspace) AddEmptyLeaf() *Leaf {
	l := &Leaf{vs: ports.ViewState{Type: ports.LeafTypeEmpty}}
	w.leaves = append(w.leaves, l)
	w.active = l
	return l
}

// OpenFile places a file directly into a new leaf, bypassing the
// primitive. Test and TUI setup helper.
func (w *Workspace) OpenFile(path string) *Leaf {
	w.openInNewLeaf(path)
	return w.active
}

func (w *Workspace) openInNewLeaf(path string) {
	l := &Leaf{}
	l.setFile(path)
	w.leaves = append(w.leaves, l)
	w.active = l
}

func (w *Workspace) openInActiveLeaf(path string) {
	if w.active == nil {
		w.AddEmptyLeaf()
	}
	w.active.setFile(path)
}

// Leaves returns the simulated panes in order.
func (w *Workspace) Leaves() []*Leaf { return w.leaves }

// Active returns the focused pane.
func (w *Workspace) Active() *Leaf { return w.active }

// CloseLeaf removes a leaf from the set.
func (w *Workspace) CloseLeaf(l *Leaf) {
	for i, cur := range w.leaves {
		if cur == l {
			w.leaves = append(w.leaves[:i], w.leaves[i+1:]...)
			break
		}
	}
	if w.active == l {
		w.active = nil
		if len(w.leaves) > 0 {
			w.active = w.leaves[len(w.leaves)-1]
		}
	}
}

// SetSearchResultPaths records the search plugin's current result
// list, in rendered order.
func (w *Workspace) SetSearchResultPaths(paths []string) { w.searchPaths = paths }

// ResultPaths implements ports.SearchResults.
func (w *Workspace) ResultPaths() []string { return w.searchPaths }

// DefaultClickAction returns the host's own click handling: navigate
// to the clicked target, reusing the active pane unless a platform
// new-pane modifier (ctrl/meta) is held. This is the behavior the
// router suppresses and overrides.
func (w *Workspace) DefaultClickAction(res *resolver.Resolver) func(*ports.ClickEvent) {
	return func(ev *ports.ClickEvent) {
		src := router.Classify(ev.Target)
		if !src.Navigational() {
			return
		}
		raw, ok := res.Resolve(src, ev.Target)
		if !ok {
			return
		}
		path := w.hostResolve(res.Normalize(raw))
		if ev.Mods.Ctrl || ev.Mods.Meta {
			w.openInNewLeaf(path)
			return
		}
		w.openInActiveLeaf(path)
	}
}

// Describe renders the pane set for logs and tests.
func (w *Workspace) Describe() string {
	out := ""
	for i, l := range w.leaves {
		marker := " "
		if l == w.active {
			marker = "*"
		}
		file := l.vs.File
		if file == "" {
			file = "(" + l.vs.Type + ")"
		}
		out += fmt.Sprintf("%s[%d] %s\n", marker, i, file)
	}
	return out
}

var _ ports.Workspace = (*Workspace)(nil)
var _ ports.SearchResults = (*Workspace)(nil)
