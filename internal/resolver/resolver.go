package resolver

import (
	"net/url"
	"strings"

	"tabnav/internal/domain"
	"tabnav/internal/ports"
)

// ActiveFileSource tells the resolver which document is currently
// active, for resolving relative link targets.
type ActiveFileSource interface {
	ActiveFile() (path string, ok bool)
}

// Resolver turns clicked UI elements into vault-relative file paths.
// Every heuristic is best-effort: a step that cannot confidently
// produce a path falls through to the next, and exhausting all of them
// yields absent, which callers treat as "defer to the host".
type Resolver struct {
	vault   ports.Vault
	active  ActiveFileSource
	probers []ports.ElementFileResolver
	search  ports.SearchResults
}

// New creates a Resolver over the given vault listing, with the
// default element-resolver chain installed.
func New(vault ports.Vault, active ActiveFileSource) *Resolver {
	return &Resolver{
		vault:   vault,
		active:  active,
		probers: DefaultProbers(),
	}
}

// SetSearchResults wires the host search plugin's result list, used
// for positional recovery when a search result element carries no file
// reference of its own.
func (r *Resolver) SetSearchResults(sr ports.SearchResults) { r.search = sr }

// SetProbers replaces the element-resolver chain. Probers run in slice
// order; earlier entries win.
func (r *Resolver) SetProbers(probers []ports.ElementFileResolver) { r.probers = probers }

// Resolve extracts a best-guess vault-relative path for a click on el,
// specialized per navigation source. ok is false when no heuristic
// produced a target.
func (r *Resolver) Resolve(src domain.Source, el ports.Element) (string, bool) {
	if el == nil {
		return "", false
	}
	switch src {
	case domain.SourceInternalLink:
		return r.resolveInternalLink(el)
	case domain.SourceFileExplorer:
		return r.resolveExplorerEntry(el)
	case domain.SourceSearchTitle, domain.SourceSearchMatch:
		return r.resolveSearchResult(el)
	case domain.SourceBookmark:
		return r.resolveBookmark(el)
	}
	return "", false
}

// Normalize applies extension policy to a resolved path: extensioned
// input is returned unchanged; otherwise the vault listing is checked
// for path.md, then for an exact extension-less match, defaulting to
// path.md when neither exists. Normalization never fails.
func (r *Resolver) Normalize(path string) string {
	if path == "" || domain.HasExtension(path) {
		return path
	}
	withExt := path + domain.MarkdownExt
	exact := false
	for _, f := range r.vault.Files() {
		if f.Path == withExt {
			return withExt
		}
		if f.Path == path {
			exact = true
		}
	}
	if exact {
		return path
	}
	return withExt
}

func (r *Resolver) resolveInternalLink(el ports.Element) (string, bool) {
	if link := ports.ClosestClass(el, domain.ClassInternalLink); link != nil {
		el = link
	}
	if href, ok := el.Attr(domain.AttrHref); ok && href != "" {
		// A bare fragment is a same-document anchor; the host (and the
		// same-file patch) handle those.
		if strings.HasPrefix(href, "#") {
			return "", false
		}
		dec := href
		if u, err := url.PathUnescape(href); err == nil {
			dec = u
		}
		dec = domain.StripLinkMarkers(dec)
		if strings.Contains(dec, "../") {
			base := ""
			if active, ok := r.active.ActiveFile(); ok {
				base = domain.Dir(active)
			}
			dec = domain.ResolveParentHops(dec, base)
		}
		// Extension comes back in Normalize.
		dec = strings.TrimSuffix(dec, domain.MarkdownExt)
		if dec != "" {
			return dec, true
		}
	}
	if path, ok := r.probe(el); ok {
		return path, true
	}
	return r.scanByName(strings.TrimSpace(el.Text()))
}

func (r *Resolver) resolveExplorerEntry(el ports.Element) (string, bool) {
	if entry := ports.ClosestClass(el, domain.ClassNavFileTitle); entry != nil {
		el = entry
	}
	if raw, ok := el.Attr(domain.AttrPath); ok && raw != "" {
		return raw, true
	}
	if path, ok := r.probe(el); ok {
		return path, true
	}
	return r.scanByName(strings.TrimSpace(el.Text()))
}

func (r *Resolver) resolveSearchResult(el ports.Element) (string, bool) {
	result := ports.ClosestClass(el, domain.ClassSearchResult)
	title := ports.ClosestClass(el, domain.ClassSearchTitle)
	if title == nil {
		title = ports.FindClass(result, domain.ClassSearchTitle)
	}

	// Fixed probe order: the clicked element, its tree-item wrapper,
	// the result's title element.
	for _, loc := range []ports.Element{el, ports.ClosestClass(el, domain.ClassTreeItem), title} {
		if loc == nil {
			continue
		}
		if path, ok := r.probe(loc); ok {
			if !domain.HasExtension(path) && !strings.Contains(path, "/") {
				path += domain.MarkdownExt
			}
			return path, true
		}
	}

	// Positional recovery against the search plugin's result list.
	// Fragile: assumes DOM order matches result-array order.
	if r.search != nil && result != nil {
		if i := ports.IndexAmong(result, domain.ClassSearchResult); i >= 0 {
			if paths := r.search.ResultPaths(); i < len(paths) {
				return paths[i], true
			}
		}
	}

	text := ""
	if title != nil {
		text = strings.TrimSpace(title.Text())
	}
	if text == "" {
		text = strings.TrimSpace(el.Text())
	}
	if text == "" {
		return "", false
	}
	if path, ok := r.scanByName(text); ok {
		return path, true
	}
	if !strings.Contains(text, ".") {
		return text + domain.MarkdownExt, true
	}
	return text, true
}

func (r *Resolver) resolveBookmark(el ports.Element) (string, bool) {
	item := ports.ClosestClass(el, domain.ClassTreeItem)
	if item == nil {
		return "", false
	}
	// Collapsible bookmarks are folders, never navigation targets.
	if item.HasClass(domain.ClassCollapsible) {
		return "", false
	}
	raw, ok := item.Attr(domain.AttrPath)
	if !ok || raw == "" {
		return "", false
	}
	if domain.HasExtension(raw) {
		return raw, true
	}

	files := r.vault.Files()
	withExt := raw + domain.MarkdownExt
	for _, f := range files {
		if f.Path == withExt {
			return withExt, true
		}
	}
	for _, f := range files {
		if f.Path == raw || strings.HasPrefix(f.Path, raw+".") {
			return f.Path, true
		}
	}
	last := domain.LastSegment(raw)
	for _, f := range files {
		if f.Basename == last {
			return f.Path, true
		}
	}
	return withExt, true
}

// probe runs the element-resolver chain against el in confidence
// order.
func (r *Resolver) probe(el ports.Element) (string, bool) {
	for _, p := range r.probers {
		if path, ok := p.FileFor(el); ok {
			return path, true
		}
	}
	return "", false
}

// scanByName linearly scans the vault listing for a file whose
// basename or full name equals text. First match in listing order
// wins; listing adapters keep that order lexicographic so the
// tie-break is deterministic.
func (r *Resolver) scanByName(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	for _, f := range r.vault.Files() {
		if f.Basename == text || f.Name == text {
			return f.Path, true
		}
	}
	return "", false
}
