package main

import (
	"fmt"
	"os"

	"github.com/Mshel/junction/internal/game"
	"github.com/Mshel/junction/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := game.LoadConfig(game.ConfigPath())
	if err != nil {
		return err
	}

	// the alt screen owns stdout, so logs only go to a file when one is configured
	if cfg.Logging.File == "" {
		cfg.Logging.File = "junction.log"
	}
	closeLog, err := game.ConfigureLogging(cfg.Logging)
	if err != nil {
		return err
	}
	defer closeLog()

	var journal *game.JournalService
	if cfg.Journal.Enabled {
		journal, err = game.NewJournalService(cfg.Journal.Path)
		if err != nil {
			return err
		}
		defer journal.Close()
	}

	log.Info("Starting local walk", "width", cfg.World.Width, "height", cfg.World.Height)
	p := tea.NewProgram(ui.NewControllerModel(cfg, journal, 0, 0), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
