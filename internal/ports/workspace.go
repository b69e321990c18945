package ports

// ViewState is a leaf's serializable description of what it displays.
// File is empty when the leaf shows no file (an empty "new tab").
type ViewState struct {
	Type string
	File string
}

// Leaf is a single pane in the host workspace.
type Leaf interface {
	ViewState() ViewState
}

// OpenLinkFunc is the signature of the host's link-opening primitive.
// linkText is a vault-relative target (possibly extension-less, empty
// for same-document anchors), sourcePath the document the link lives
// in, and newLeaf forces the target into a brand-new pane.
type OpenLinkFunc func(linkText, sourcePath string, newLeaf bool) error

// Workspace is the slice of the host workspace API this engine
// consumes. The pane set is queried, never owned: iteration order is
// whatever the host provides.
type Workspace interface {
	IterateLeaves(fn func(Leaf))
	SetActiveLeaf(leaf Leaf)
	LeavesOfType(typ string) []Leaf
	OpenLinkText(linkText, sourcePath string, newLeaf bool) error
	ActiveFile() (path string, ok bool)
}

// LeafTypeEmpty is the view type of a blank pane.
const LeafTypeEmpty = "empty"

// SearchResults exposes the host search plugin's current result list,
// in the order the results are rendered. Positional recovery through
// it is fragile (DOM order must match result order) and is only used
// as a late fallback.
type SearchResults interface {
	ResultPaths() []string
}
