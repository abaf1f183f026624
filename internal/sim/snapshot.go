package sim

import (
	"encoding/json"
	"fmt"

	"github.com/talgya/cover-life/internal/calendar"
	"github.com/talgya/cover-life/internal/player"
	"github.com/talgya/cover-life/internal/project"
	"github.com/talgya/cover-life/internal/shop"
)

// Snapshot is the persisted slice of the simulation: the player and the
// project boards. The NPC roster, teams and completed history regenerate
// each session rather than being saved.
type Snapshot struct {
	Version int `json:"version"`

	Time  calendar.GameTime `json:"time"`
	Ended bool              `json:"ended"`

	Player            *player.Player     `json:"player"`
	AvailableProjects []*project.Project `json:"available_projects"`
	ActiveProjects    []*project.Project `json:"active_projects"`

	Inventory *shop.Inventory `json:"inventory"`
	Expenses  shop.ExpenseLog `json:"expenses"`

	LastTeamFormedAbsDay int     `json:"last_team_formed_abs_day"`
	DecayCarryF          float64 `json:"decay_carry_f"`
	DecayCarryM          float64 `json:"decay_carry_m"`
	TiredCarry           float64 `json:"tired_carry"`
}

const snapshotVersion = 1

// Snapshot captures the persistable state as a JSON blob.
func (s *Simulation) Snapshot() ([]byte, error) {
	st := s.State
	snap := Snapshot{
		Version:              snapshotVersion,
		Time:                 st.Time,
		Ended:                st.Ended,
		Player:               st.Player,
		AvailableProjects:    st.AvailableProjects,
		ActiveProjects:       st.ActiveProjects,
		Inventory:            st.Inventory,
		Expenses:             st.Expenses,
		LastTeamFormedAbsDay: st.LastTeamFormedAbsDay,
		DecayCarryF:          st.DecayCarryF,
		DecayCarryM:          st.DecayCarryM,
		TiredCarry:           st.TiredCarry,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// Restore replaces the in-memory state from a snapshot blob. The player's
// team reference cannot survive a reload (teams regenerate), so membership
// is cleared; active team projects are dropped the same way leaving a team
// drops them.
func (s *Simulation) Restore(data []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if snap.Player == nil {
		return fmt.Errorf("snapshot has no player")
	}

	st := s.State
	st.Time = snap.Time
	st.Ended = snap.Ended
	st.Player = snap.Player
	st.AvailableProjects = snap.AvailableProjects
	st.ActiveProjects = nil
	for _, prj := range snap.ActiveProjects {
		if prj.IsTeamProject {
			continue
		}
		st.ActiveProjects = append(st.ActiveProjects, prj)
	}
	if snap.Inventory != nil {
		st.Inventory = snap.Inventory
	}
	st.Expenses = snap.Expenses
	st.LastTeamFormedAbsDay = snap.LastTeamFormedAbsDay
	st.DecayCarryF = snap.DecayCarryF
	st.DecayCarryM = snap.DecayCarryM
	st.TiredCarry = snap.TiredCarry

	st.Player.TeamID = ""
	st.CompletedProjects = nil
	st.Phase = PhaseIdle
	st.PendingEvent = nil
	st.PendingResult = nil
	st.PendingCostumeProjectID = ""

	// The costume popup does not survive a reload. Re-open the request on
	// the next tick for any project that was waiting on it.
	for _, prj := range st.ActiveProjects {
		if prj.CostumeRequested && !prj.CostumePaid && !prj.CostumeLocked {
			prj.CostumeRequested = false
		}
	}

	s.log.Info("state restored", "day", st.Time.String(), "money", st.Player.Money)
	return nil
}
