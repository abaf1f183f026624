// Package events implements the daily narrative-event oracle: a long
// ordered chain of probabilistic rules evaluated once per simulated day,
// where the first rule whose condition and roll both pass wins.
package events

import (
	"github.com/talgya/cover-life/internal/effects"
	"github.com/talgya/cover-life/internal/project"
)

// Kind classifies an event for presentation.
type Kind string

const (
	KindInfo       Kind = "info"
	KindGood       Kind = "good"
	KindBad        Kind = "bad"
	KindChoice     Kind = "choice"
	KindFestival   Kind = "festival"
	KindCollab     Kind = "collab_offer"
	KindTeamInvite Kind = "team_invite"
)

// Effect is the typed payload an event applies to the simulation. Zero
// values mean no change.
type Effect struct {
	Money      int
	FSkill     int
	MSkill     int
	Popularity int
	Reputation int
	Tired      int

	// Timed buffs and debuffs, already stamped with their expiry day.
	Buffs []effects.Effect

	// Structural consequences.
	CancelProjectID   string
	JoinTeamID        string
	RefuseTeamID      string
	TeamProject       *project.Project
	RefuseTeamProject string // team id whose offer was declined
	ExpelFromTeamID   string
	CollabNPCID       string
	FestivalWin       bool
}

// Empty reports whether the effect changes nothing.
func (e Effect) Empty() bool {
	return e.Money == 0 && e.FSkill == 0 && e.MSkill == 0 &&
		e.Popularity == 0 && e.Reputation == 0 && e.Tired == 0 &&
		len(e.Buffs) == 0 && e.CancelProjectID == "" && e.JoinTeamID == "" &&
		e.RefuseTeamID == "" && e.TeamProject == nil && e.RefuseTeamProject == "" &&
		e.ExpelFromTeamID == "" && e.CollabNPCID == "" && !e.FestivalWin
}

// Choice is one option on a choice event.
type Choice struct {
	Text   string
	Effect Effect
}

// FestivalSize buckets a festival by participant count.
type FestivalSize string

const (
	FestivalSmall  FestivalSize = "small"
	FestivalMedium FestivalSize = "medium"
	FestivalLarge  FestivalSize = "large"
)

// FestivalData describes a scheduled or resolved festival.
type FestivalData struct {
	Participants  int
	Size          FestivalSize
	PrizePool     int
	HasCategories bool
	PlayerWins    bool
	TeamID        string
}

// Event is one narrative beat proposed by the generator. Choice events
// carry their options; everything else applies Effect directly.
type Event struct {
	ID       string
	Kind     Kind
	Title    string
	Text     string
	NPCID    string
	NPCName  string
	Effect   Effect
	Choices  []Choice
	Festival *FestivalData
}
