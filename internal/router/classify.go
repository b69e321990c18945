package router

import (
	"tabnav/internal/domain"
	"tabnav/internal/ports"
)

// Classify assigns a navigation source to a click target from its DOM
// ancestry alone. Collapse carets and hover buttons are checked first
// so they can never be misread as their containing category; the
// remaining checks are mutually exclusive by markup.
func Classify(el ports.Element) domain.Source {
	if el == nil {
		return domain.SourceNone
	}
	if ports.ClosestClass(el, domain.ClassCollapseIcon) != nil ||
		ports.ClosestClass(el, domain.ClassHoverButton) != nil {
		return domain.SourceIgnored
	}
	switch {
	case ports.ClosestClass(el, domain.ClassInternalLink) != nil:
		return domain.SourceInternalLink
	case ports.ClosestClass(el, domain.ClassNavFileTitle) != nil:
		return domain.SourceFileExplorer
	case ports.ClosestClass(el, domain.ClassSearchTitle) != nil:
		return domain.SourceSearchTitle
	case ports.ClosestClass(el, domain.ClassSearchMatch) != nil:
		return domain.SourceSearchMatch
	case ports.ClosestClass(el, domain.ClassBookmark) != nil:
		return domain.SourceBookmark
	}
	return domain.SourceNone
}
