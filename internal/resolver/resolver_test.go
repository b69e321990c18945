package resolver

import (
	"testing"

	"tabnav/internal/adapters/memdom"
	"tabnav/internal/domain"
	"tabnav/internal/ports"
)

type vaultStub []ports.VaultFile

func (v vaultStub) Files() []ports.VaultFile { return v }

type activeStub string

func (a activeStub) ActiveFile() (string, bool) { return string(a), a != "" }

type searchStub []string

func (s searchStub) ResultPaths() []string { return s }

func file(path, name, base string) ports.VaultFile {
	return ports.VaultFile{Path: path, Name: name, Basename: base}
}

func testVault() vaultStub {
	return vaultStub{
		file("A/Folder/Page.md", "Page.md", "Page"),
		file("Notes/Demo.md", "Demo.md", "Demo"),
		file("Notes/Other.md", "Other.md", "Other"),
		file("Plain", "Plain", "Plain"),
		file("assets/pic.png", "pic.png", "pic"),
	}
}

func TestNormalize(t *testing.T) {
	r := New(testVault(), activeStub(""))

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"extensioned path unchanged", "Notes/Demo.md", "Notes/Demo.md"},
		{"non-markdown extension unchanged", "assets/pic.png", "assets/pic.png"},
		{"md match preferred", "Notes/Demo", "Notes/Demo.md"},
		{"exact extension-less match kept", "Plain", "Plain"},
		{"no match defaults to md", "Missing/Note", "Missing/Note.md"},
		{"empty passes through", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	r := New(testVault(), activeStub(""))
	once := r.Normalize("Notes/Demo")
	if got := r.Normalize(once); got != once {
		t.Errorf("Normalize(Normalize(x)) = %q, want %q", got, once)
	}
}

func TestResolveInternalLink(t *testing.T) {
	tests := []struct {
		name   string
		href   string
		active string
		want   string
		wantOK bool
	}{
		{
			name:   "plain target",
			href:   "Demo",
			want:   "Demo",
			wantOK: true,
		},
		{
			name:   "url-encoded target",
			href:   "Notes/Some%20Page",
			want:   "Notes/Some Page",
			wantOK: true,
		},
		{
			name:   "relative marker stripped",
			href:   "./Demo",
			want:   "Demo",
			wantOK: true,
		},
		{
			name:   "trailing extension stripped",
			href:   "Notes/Demo.md",
			want:   "Notes/Demo",
			wantOK: true,
		},
		{
			name:   "bare fragment defers to host",
			href:   "#Heading 1",
			wantOK: false,
		},
		{
			name:   "parent hops resolved against active folder",
			href:   "../../Folder/Page",
			active: "A/B/C/doc.md",
			want:   "A/Folder/Page",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(testVault(), activeStub(tt.active))
			el := memdom.NewNode(domain.ClassInternalLink).SetAttr(domain.AttrHref, tt.href)

			got, ok := r.Resolve(domain.SourceInternalLink, el)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.href, got, tt.want)
			}
		})
	}
}

func TestResolveInternalLinkFallbacks(t *testing.T) {
	r := New(testVault(), activeStub(""))

	t.Run("internal file handle", func(t *testing.T) {
		el := memdom.NewNode(domain.ClassInternalLink).
			SetInternal("file", ports.VaultFile{Path: "Notes/Demo.md"})
		got, ok := r.Resolve(domain.SourceInternalLink, el)
		if !ok || got != "Notes/Demo.md" {
			t.Errorf("got %q, %v; want Notes/Demo.md", got, ok)
		}
	})

	t.Run("internal path object", func(t *testing.T) {
		el := memdom.NewNode(domain.ClassInternalLink).
			SetInternal("dataFile", map[string]any{"path": "Notes/Other.md"})
		got, ok := r.Resolve(domain.SourceInternalLink, el)
		if !ok || got != "Notes/Other.md" {
			t.Errorf("got %q, %v; want Notes/Other.md", got, ok)
		}
	})

	t.Run("visible text scan", func(t *testing.T) {
		el := memdom.NewNode(domain.ClassInternalLink).SetText("Other")
		got, ok := r.Resolve(domain.SourceInternalLink, el)
		if !ok || got != "Notes/Other.md" {
			t.Errorf("got %q, %v; want Notes/Other.md", got, ok)
		}
	})

	t.Run("nothing resolves", func(t *testing.T) {
		el := memdom.NewNode(domain.ClassInternalLink).SetText("No Such Note")
		if _, ok := r.Resolve(domain.SourceInternalLink, el); ok {
			t.Error("expected absent resolution")
		}
	})
}

func TestResolveSearchResult(t *testing.T) {
	t.Run("tree item file handle", func(t *testing.T) {
		r := New(testVault(), activeStub(""))
		result := memdom.NewNode(domain.ClassTreeItem, domain.ClassSearchResult).
			SetInternal("file", ports.VaultFile{Path: "Notes/Demo.md"})
		match := memdom.NewNode(domain.ClassSearchMatch)
		result.Append(memdom.NewNode("search-result-file-matches").Append(match))

		got, ok := r.Resolve(domain.SourceSearchMatch, match)
		if !ok || got != "Notes/Demo.md" {
			t.Errorf("got %q, %v; want Notes/Demo.md", got, ok)
		}
	})

	t.Run("bare name gets extension", func(t *testing.T) {
		r := New(testVault(), activeStub(""))
		title := memdom.NewNode(domain.ClassSearchTitle).SetInternal("file", "Demo")
		got, ok := r.Resolve(domain.SourceSearchTitle, title)
		if !ok || got != "Demo.md" {
			t.Errorf("got %q, %v; want Demo.md", got, ok)
		}
	})

	t.Run("positional recovery", func(t *testing.T) {
		r := New(testVault(), activeStub(""))
		r.SetSearchResults(searchStub{"Notes/Demo.md", "Notes/Other.md"})

		container := memdom.NewNode("search-results-children")
		first := memdom.NewNode(domain.ClassTreeItem, domain.ClassSearchResult)
		second := memdom.NewNode(domain.ClassTreeItem, domain.ClassSearchResult)
		title := memdom.NewNode(domain.ClassSearchTitle)
		second.Append(title)
		container.Append(first, second)

		got, ok := r.Resolve(domain.SourceSearchTitle, title)
		if !ok || got != "Notes/Other.md" {
			t.Errorf("got %q, %v; want Notes/Other.md", got, ok)
		}
	})

	t.Run("title text scan", func(t *testing.T) {
		r := New(testVault(), activeStub(""))
		result := memdom.NewNode(domain.ClassTreeItem, domain.ClassSearchResult)
		title := memdom.NewNode(domain.ClassSearchTitle).SetText("Other")
		result.Append(title)

		got, ok := r.Resolve(domain.SourceSearchTitle, title)
		if !ok || got != "Notes/Other.md" {
			t.Errorf("got %q, %v; want Notes/Other.md", got, ok)
		}
	})

	t.Run("unknown dotless title assumed markdown", func(t *testing.T) {
		r := New(testVault(), activeStub(""))
		title := memdom.NewNode(domain.ClassSearchTitle).SetText("Unknown Note")
		got, ok := r.Resolve(domain.SourceSearchTitle, title)
		if !ok || got != "Unknown Note.md" {
			t.Errorf("got %q, %v; want Unknown Note.md", got, ok)
		}
	})
}

func TestResolveBookmark(t *testing.T) {
	vault := vaultStub{
		file("Notes/Demo.md", "Demo.md", "Demo"),
		file("Archive/Old.canvas", "Old.canvas", "Old"),
		file("Deep/Nested/Unique.md", "Unique.md", "Unique"),
	}

	tests := []struct {
		name   string
		attr   string
		folder bool
		want   string
		wantOK bool
	}{
		{
			name:   "extension-less bookmark finds md file",
			attr:   "Notes/Demo",
			want:   "Notes/Demo.md",
			wantOK: true,
		},
		{
			name:   "extensioned bookmark unchanged",
			attr:   "Archive/Old.canvas",
			want:   "Archive/Old.canvas",
			wantOK: true,
		},
		{
			name:   "prefix match on other extension",
			attr:   "Archive/Old",
			want:   "Archive/Old.canvas",
			wantOK: true,
		},
		{
			name:   "basename of last segment",
			attr:   "Somewhere/Unique",
			want:   "Deep/Nested/Unique.md",
			wantOK: true,
		},
		{
			name:   "no match defaults to md",
			attr:   "Missing/Note",
			want:   "Missing/Note.md",
			wantOK: true,
		},
		{
			name:   "folder bookmark never resolves",
			attr:   "Notes",
			folder: true,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(vault, activeStub(""))

			item := memdom.NewNode(domain.ClassTreeItem, domain.ClassBookmark).
				SetAttr(domain.AttrPath, tt.attr)
			if tt.folder {
				item.AddClass(domain.ClassCollapsible)
			}
			inner := memdom.NewNode("tree-item-inner")
			item.Append(memdom.NewNode("tree-item-self").Append(inner))

			got, ok := r.Resolve(domain.SourceBookmark, inner)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveExplorerEntry(t *testing.T) {
	r := New(testVault(), activeStub(""))

	title := memdom.NewNode("tree-item-self", domain.ClassNavFileTitle).
		SetAttr(domain.AttrPath, "Notes/Demo.md")
	inner := memdom.NewNode("tree-item-inner").SetText("Demo")
	title.Append(inner)

	got, ok := r.Resolve(domain.SourceFileExplorer, inner)
	if !ok || got != "Notes/Demo.md" {
		t.Errorf("got %q, %v; want Notes/Demo.md", got, ok)
	}
}
