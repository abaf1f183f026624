// Command coversim runs the cover-dance career simulation headless: it
// drives days as fast as configured, auto-resolves popups with a simple
// policy, logs a daily report and autosaves.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"

	"github.com/talgya/cover-life/internal/config"
	"github.com/talgya/cover-life/internal/costume"
	"github.com/talgya/cover-life/internal/engine"
	"github.com/talgya/cover-life/internal/entropy"
	"github.com/talgya/cover-life/internal/persistence"
	"github.com/talgya/cover-life/internal/project"
	"github.com/talgya/cover-life/internal/sim"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("bad configuration", "error", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = entropy.Seed(entropy.NewClient(cfg.RandomOrgKey))
	}
	slog.Info("K-Cover Dance Life — headless run",
		"player", cfg.PlayerName,
		"seed", seed,
		"speed", cfg.Speed)

	// ── Database ──────────────────────────────────────────────────────
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	// ── Simulation (restore or fresh) ─────────────────────────────────
	game := sim.New(cfg.PlayerName, seed, logger)
	if blob, err := db.LoadSnapshot(persistence.DefaultSaveKey); err != nil {
		slog.Error("load failed, starting fresh", "error", err)
	} else if blob != nil {
		if err := game.Restore(blob); err != nil {
			slog.Warn("corrupt save, starting fresh", "error", err)
			game = sim.New(cfg.PlayerName, seed, logger)
		} else {
			slog.Info("resumed from save", "day", game.State.Time.String())
		}
	}
	db.SaveMeta("seed", fmt.Sprintf("%d", seed))

	// ── Engine ────────────────────────────────────────────────────────
	chronicled := len(game.State.Inbox.Messages)
	eng := engine.New()
	eng.SetSpeed(cfg.Speed)
	eng.OnDay = func() {
		game.AdvanceDay()
		autoResolve(game)
		dailyReport(game)
		chronicled = recordChronicle(game, db, chronicled)
		autosave(game, db)
		if game.State.Ended {
			eng.Stop()
		}
	}

	if cfg.Days > 0 {
		eng.AdvanceDays(cfg.Days)
		slog.Info("run complete", "days", cfg.Days)
		return
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		slog.Info("shutting down")
		eng.Stop()
	}()

	eng.Run()
}

// autoResolve plays the popups a human would click through: acknowledge
// events and results, auto-pick costumes.
func autoResolve(game *sim.Simulation) {
	for i := 0; i < 4; i++ {
		st := game.State
		switch st.Phase {
		case sim.PhaseShowingEvent:
			game.AcknowledgeEvent()
		case sim.PhaseShowingResult:
			game.AcknowledgeResult()
		case sim.PhaseShowingCostume:
			id := st.PendingCostumeProjectID
			var prj *project.Project
			for _, p := range st.ActiveProjects {
				if p.ID == id {
					prj = p
					break
				}
			}
			if prj == nil {
				return
			}
			sel := costume.AutoSelect(prj.RequiredStyle, st.Inventory.Clothes, st.Player.Money)
			if err := game.SubmitCostumeSelection(id, sel); err != nil {
				// No affordable outfit: take the one-week extension.
				game.SubmitCostumeSelection(id, costume.Selection{})
			}
		default:
			return
		}
	}
}

func dailyReport(game *sim.Simulation) {
	st := game.State
	slog.Info("daily report",
		"day", st.Time.String(),
		"money", humanize.Comma(int64(st.Player.Money)),
		"rep", st.Player.Reputation,
		"pop", st.Player.Popularity,
		"tired", st.Player.Tiredness,
		"active", len(st.ActiveProjects),
		"offers", len(st.AvailableProjects),
		"unread", st.Inbox.Unread())
}

// recordChronicle appends inbox messages past the high-water mark to the
// run chronicle and returns the new mark.
func recordChronicle(game *sim.Simulation, db *persistence.DB, mark int) int {
	msgs := game.State.Inbox.Messages
	if mark >= len(msgs) {
		return len(msgs)
	}
	entries := make([]persistence.ChronicleEntry, 0, len(msgs)-mark)
	for _, m := range msgs[mark:] {
		entries = append(entries, persistence.ChronicleEntry{
			AbsDay:      m.AbsDay,
			Category:    string(m.Kind),
			Description: m.Title,
		})
	}
	if err := db.AppendChronicle(entries); err != nil {
		slog.Error("chronicle append failed", "error", err)
	}
	return len(msgs)
}

func autosave(game *sim.Simulation, db *persistence.DB) {
	blob, err := game.Snapshot()
	if err != nil {
		slog.Error("snapshot failed", "error", err)
		return
	}
	if err := db.SaveSnapshot(persistence.DefaultSaveKey, blob); err != nil {
		slog.Error("autosave failed", "error", err)
	}
}
