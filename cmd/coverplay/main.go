// Command coverplay runs the interactive terminal version of the
// cover-dance career game.
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/talgya/cover-life/internal/config"
	"github.com/talgya/cover-life/internal/entropy"
	"github.com/talgya/cover-life/internal/persistence"
	"github.com/talgya/cover-life/internal/sim"
	"github.com/talgya/cover-life/internal/ui"
)

func main() {
	// Log to a file so slog output does not fight the TUI for the terminal.
	logFile, err := os.OpenFile("coverplay.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open log file:", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "bad configuration:", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = entropy.Seed(entropy.NewClient(cfg.RandomOrgKey))
	}

	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open database:", err)
		os.Exit(1)
	}
	defer db.Close()

	game := sim.New(cfg.PlayerName, seed, logger)
	if blob, err := db.LoadSnapshot(persistence.DefaultSaveKey); err == nil && blob != nil {
		if err := game.Restore(blob); err != nil {
			slog.Warn("corrupt save, starting fresh", "error", err)
			game = sim.New(cfg.PlayerName, seed, logger)
		}
	}

	p := tea.NewProgram(ui.New(game, cfg.Speed), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "tui error:", err)
		os.Exit(1)
	}

	// Save on the way out.
	if blob, err := game.Snapshot(); err == nil {
		if err := db.SaveSnapshot(persistence.DefaultSaveKey, blob); err != nil {
			slog.Error("exit save failed", "error", err)
		}
	}
}
