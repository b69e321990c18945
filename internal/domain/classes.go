package domain

// Host UI class names and attributes the engine keys off. These track
// the host's rendered markup and are the only coupling to it outside
// the element-resolver chain.
const (
	ClassInternalLink = "internal-link"
	ClassNavFileTitle = "nav-file-title"
	ClassSearchResult = "search-result"
	ClassSearchTitle  = "search-result-file-title"
	ClassSearchMatch  = "search-result-file-match"
	ClassBookmark     = "bookmark"
	ClassTreeItem     = "tree-item"
	ClassCollapseIcon = "collapse-icon"
	ClassHoverButton  = "search-result-hover-button"
	ClassCollapsible  = "mod-collapsible"

	AttrHref = "data-href"
	AttrPath = "data-path"
)
