package domain

// Source classifies where in the workspace UI a navigation click
// originated. Exactly one source (or none) is assigned per click.
type Source int

const (
	SourceNone Source = iota
	SourceInternalLink
	SourceFileExplorer
	SourceSearchTitle
	SourceSearchMatch
	SourceBookmark
	// SourceIgnored covers collapse carets and inline hover buttons:
	// clicks that live inside a navigational container but are not
	// navigation themselves.
	SourceIgnored
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case SourceInternalLink:
		return "internal-link"
	case SourceFileExplorer:
		return "file-explorer"
	case SourceSearchTitle:
		return "search-title"
	case SourceSearchMatch:
		return "search-match"
	case SourceBookmark:
		return "bookmark"
	case SourceIgnored:
		return "ignored"
	default:
		return "none"
	}
}

// Navigational reports whether the source is one of the recognized
// navigation categories (as opposed to none/ignored).
func (s Source) Navigational() bool {
	switch s {
	case SourceInternalLink, SourceFileExplorer, SourceSearchTitle, SourceSearchMatch, SourceBookmark:
		return true
	default:
		return false
	}
}
