package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tabnav/internal/adapters/filesystem"
	mcpadapter "tabnav/internal/adapters/mcp"
	"tabnav/internal/adapters/obsidian"
	"tabnav/internal/config"
)

func main() {
	vaultFlag := flag.String("vault", config.VaultPath(), "path to the vault")
	flag.Parse()

	vault := filesystem.NewVault(*vaultFlag)
	if err := vault.Load(); err != nil {
		log.Fatalf("tabnav-mcp: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"tabnav-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterTools(mcpServer, vault, obsidian.NewOpener(vault.Root()))

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("tabnav-mcp: %v", err)
	}
}
