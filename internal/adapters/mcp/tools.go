// Package mcp exposes the resolution engine over the Model Context
// Protocol: link resolution, path normalization, vault listing, and
// opening notes in the host.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tabnav/internal/adapters/memdom"
	"tabnav/internal/domain"
	"tabnav/internal/ports"
	"tabnav/internal/resolver"
)

// RegisterTools adds all tabnav tools to the MCP server. opener may be
// nil, in which case open_note is not registered.
func RegisterTools(s *server.MCPServer, vault ports.Vault, opener ports.NoteOpener) {
	s.AddTool(resolveLinkTool(), resolveLinkHandler(vault))
	s.AddTool(normalizePathTool(), normalizePathHandler(vault))
	s.AddTool(listFilesTool(), listFilesHandler(vault))
	if opener != nil {
		s.AddTool(openNoteTool(), openNoteHandler(vault, opener))
	}
}

// staticActive pins the resolver's active document for one call.
type staticActive struct {
	path string
}

func (a staticActive) ActiveFile() (string, bool) {
	return a.path, a.path != ""
}

// --- resolve_link ---

func resolveLinkTool() mcp.Tool {
	return mcp.NewTool("resolve_link",
		mcp.WithDescription("Resolve a raw wiki-link target (as found in a note) to a canonical vault-relative file path."),
		mcp.WithString("link",
			mcp.Description("Raw link target, e.g. 'Demo', 'Notes/Demo', '../Other/Page'"),
			mcp.Required(),
		),
		mcp.WithString("source_path",
			mcp.Description("Vault-relative path of the note containing the link; required for relative (../) targets."),
		),
	)
}

func resolveLinkHandler(vault ports.Vault) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		link := req.GetString("link", "")
		if link == "" {
			return toolError(fmt.Errorf("link is required"))
		}
		source := req.GetString("source_path", "")

		res := resolver.New(vault, staticActive{path: source})
		el := memdom.NewNode(domain.ClassInternalLink).SetAttr(domain.AttrHref, link)
		raw, ok := res.Resolve(domain.SourceInternalLink, el)
		if !ok {
			return mcp.NewToolResultText("unresolved: the host would handle this link itself"), nil
		}
		return mcp.NewToolResultText(res.Normalize(raw)), nil
	}
}

// --- normalize_path ---

func normalizePathTool() mcp.Tool {
	return mcp.NewTool("normalize_path",
		mcp.WithDescription("Apply extension policy to a vault-relative path, consulting the vault listing."),
		mcp.WithString("path",
			mcp.Description("Vault-relative path, possibly extension-less"),
			mcp.Required(),
		),
	)
}

func normalizePathHandler(vault ports.Vault) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(fmt.Errorf("path is required"))
		}
		res := resolver.New(vault, staticActive{})
		return mcp.NewToolResultText(res.Normalize(path)), nil
	}
}

// --- list_files ---

func listFilesTool() mcp.Tool {
	return mcp.NewTool("list_files",
		mcp.WithDescription("List the vault's files, one vault-relative path per line."),
		mcp.WithString("prefix",
			mcp.Description("Only list paths under this prefix"),
		),
	)
}

func listFilesHandler(vault ports.Vault) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		prefix := req.GetString("prefix", "")

		var sb strings.Builder
		for _, f := range vault.Files() {
			if prefix != "" && !strings.HasPrefix(f.Path, prefix) {
				continue
			}
			sb.WriteString(f.Path)
			sb.WriteByte('\n')
		}
		if sb.Len() == 0 {
			return mcp.NewToolResultText("No files found."), nil
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- open_note ---

func openNoteTool() mcp.Tool {
	return mcp.NewTool("open_note",
		mcp.WithDescription("Open a note in the running Obsidian instance. The path is normalized against the vault listing first."),
		mcp.WithString("path",
			mcp.Description("Vault-relative path, possibly extension-less"),
			mcp.Required(),
		),
		mcp.WithBoolean("new_pane",
			mcp.Description("Hint the host to open the note in a new pane"),
		),
	)
}

func openNoteHandler(vault ports.Vault, opener ports.NoteOpener) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(fmt.Errorf("path is required"))
		}
		newPane := req.GetBool("new_pane", false)

		res := resolver.New(vault, staticActive{})
		normalized := res.Normalize(path)
		if err := opener.OpenFile(normalized, newPane); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText("opened " + normalized), nil
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
