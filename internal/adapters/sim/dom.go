package sim

import (
	"strings"

	"tabnav/internal/adapters/memdom"
	"tabnav/internal/domain"
	"tabnav/internal/ports"
)

// SearchEntry is one file-level result in the simulated search pane.
// Path may be empty to simulate results whose DOM carries no file
// reference, forcing the resolver down its fallback cascade.
type SearchEntry struct {
	Path    string
	Title   string
	Matches []string
}

// BookmarkEntry is one row of the simulated bookmarks pane.
type BookmarkEntry struct {
	Path   string
	Title  string
	Folder bool
}

// Link is an internal link rendered into simulated note content.
type Link struct {
	Href string
	Text string
}

// ExplorerTree renders a file-explorer pane for the given listing:
// folder rows (with collapse carets) derived from the paths, and one
// titled row per file carrying the host's data-path attribute.
func ExplorerTree(files []ports.VaultFile) *memdom.Node {
	root := memdom.NewNode("nav-files-container")
	seen := map[string]bool{}
	for _, f := range files {
		if dir := domain.Dir(f.Path); dir != "" && !seen[dir] {
			seen[dir] = true
			folder := memdom.NewNode(domain.ClassTreeItem, "nav-folder")
			title := memdom.NewNode("tree-item-self", "nav-folder-title").
				SetAttr(domain.AttrPath, dir)
			title.Append(
				memdom.NewNode(domain.ClassCollapseIcon),
				memdom.NewNode("tree-item-inner").SetText(domain.LastSegment(dir)),
			)
			folder.Append(title)
			root.Append(folder)
		}

		item := memdom.NewNode(domain.ClassTreeItem, "nav-file")
		title := memdom.NewNode("tree-item-self", domain.ClassNavFileTitle).
			SetAttr(domain.AttrPath, f.Path)
		title.Append(memdom.NewNode("tree-item-inner", "nav-file-title-content").SetText(f.Basename))
		item.Append(title)
		root.Append(item)
	}
	return root
}

// SearchPane renders search results the way the host does: one
// tree-item per file with a title row (hover button included) and one
// child row per text match.
func SearchPane(entries []SearchEntry) *memdom.Node {
	root := memdom.NewNode("search-results-children")
	for _, e := range entries {
		result := memdom.NewNode(domain.ClassTreeItem, domain.ClassSearchResult)
		if e.Path != "" {
			result.SetInternal("file", ports.VaultFile{
				Path:     e.Path,
				Name:     domain.LastSegment(e.Path),
				Basename: strings.TrimSuffix(domain.LastSegment(e.Path), domain.MarkdownExt),
			})
		}

		title := memdom.NewNode("tree-item-self", domain.ClassSearchTitle)
		title.Append(
			memdom.NewNode(domain.ClassCollapseIcon),
			memdom.NewNode("tree-item-inner").SetText(e.Title),
			memdom.NewNode(domain.ClassHoverButton),
		)
		result.Append(title)

		matches := memdom.NewNode("search-result-file-matches")
		for _, m := range e.Matches {
			matches.Append(memdom.NewNode(domain.ClassSearchMatch).SetText(m))
		}
		result.Append(matches)
		root.Append(result)
	}
	return root
}

// BookmarksPane renders the bookmarks pane. Folder bookmarks carry the
// collapsible marker and are never navigation targets.
func BookmarksPane(entries []BookmarkEntry) *memdom.Node {
	root := memdom.NewNode("bookmark-container")
	for _, e := range entries {
		item := memdom.NewNode(domain.ClassTreeItem, domain.ClassBookmark).
			SetAttr(domain.AttrPath, e.Path)
		if e.Folder {
			item.AddClass(domain.ClassCollapsible)
		}
		self := memdom.NewNode("tree-item-self")
		if e.Folder {
			self.Append(memdom.NewNode(domain.ClassCollapseIcon))
		}
		self.Append(memdom.NewNode("tree-item-inner").SetText(e.Title))
		item.Append(self)
		root.Append(item)
	}
	return root
}

// NoteView renders note content containing internal links.
func NoteView(links []Link) *memdom.Node {
	root := memdom.NewNode("markdown-preview")
	for _, l := range links {
		root.Append(memdom.NewNode(domain.ClassInternalLink).
			SetAttr(domain.AttrHref, l.Href).
			SetText(l.Text))
	}
	return root
}
