package main

import (
	stdlog "log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flavono123/curio/internal/config"
	"github.com/flavono123/curio/internal/log"
	"github.com/flavono123/curio/internal/ui"
)

func main() {
	closer, err := log.Setup()
	if err != nil {
		stdlog.Fatalf("failed to set up logging: %v", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("failed to load config: %v", err)
	}

	program := tea.NewProgram(
		ui.InitModel(cfg),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		stdlog.Fatalf("failed to run program: %v", err)
	}
}
