package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tabnav/internal/adapters/filesystem"
	"tabnav/internal/adapters/tui"
	"tabnav/internal/adapters/tui/views"
	"tabnav/internal/config"
)

func main() {
	vaultFlag := flag.String("vault", config.VaultPath(), "path to the vault")
	flag.Parse()

	vault := filesystem.NewVault(*vaultFlag)
	if err := vault.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app := tui.NewApp(vault)
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	logger := watchLogger()
	go func() {
		err := filesystem.Watch(ctx, vault, logger, func() {
			p.Send(views.VaultReloadedMsg{})
		})
		if err != nil {
			logger.Error("watcher failed", slog.String("error", err.Error()))
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// watchLogger logs to $TABNAV_LOG when set; stderr would tear the
// alternate screen.
func watchLogger() *slog.Logger {
	if path := os.Getenv("TABNAV_LOG"); path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			return slog.New(slog.NewTextHandler(f, nil))
		}
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
