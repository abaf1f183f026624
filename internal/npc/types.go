// Package npc provides the NPC data model, behavior archetypes, the
// weighted generator, and the per-NPC relationship ledger.
package npc

import (
	"github.com/talgya/cover-life/internal/catalog"
)

// Gender of a generated NPC.
type Gender string

const (
	GenderFemale Gender = "F"
	GenderMale   Gender = "M"
)

// BehaviorModel is one of the eight NPC personality archetypes. Each has a
// distinct monthly stat-growth profile.
type BehaviorModel string

const (
	ModelBurner        BehaviorModel = "Burner"
	ModelDreamer       BehaviorModel = "Dreamer"
	ModelPerfectionist BehaviorModel = "Perfectionist"
	ModelSunshine      BehaviorModel = "Sunshine"
	ModelMachine       BehaviorModel = "Machine"
	ModelWildcard      BehaviorModel = "Wildcard"
	ModelFox           BehaviorModel = "Fox"
	ModelSilentPro     BehaviorModel = "SilentPro"
)

// NPC is one member of the cover-dance community roster. NPCs are created at
// game start and monthly after that, and are never deleted, only
// deactivated or moved between teams.
type NPC struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Gender Gender `json:"gender"`
	FaceID int    `json:"face_id"`

	FSkill     int `json:"f_skill"` // 0–1000
	MSkill     int `json:"m_skill"` // 0–1000
	Popularity int `json:"popularity"`
	Reputation int `json:"reputation"`

	FavoriteStyle catalog.StyleTag `json:"favorite_style"`
	BehaviorModel BehaviorModel    `json:"behavior_model"`

	TeamID string `json:"team_id,omitempty"`
	Active bool   `json:"active"`

	// Birth date on the real-calendar overlay (month 1-12, day 1-31).
	BirthMonth int `json:"birth_month"`
	BirthDay   int `json:"birth_day"`

	// Relationship ledger (see relationship.go).
	Relationship          int  `json:"relationship"`
	MinAcquaintanceLocked bool `json:"min_acquaintance_locked"`
	EnemyBadge            bool `json:"enemy_badge"`

	// One-shot timestamps on the absolute day axis. -1 means never.
	LastTeamChangeAbsDay   int `json:"last_team_change_abs_day"`
	BirthdayRemindedAbsDay int `json:"birthday_reminded_abs_day"`
	BirthdayGreetedAbsDay  int `json:"birthday_greeted_abs_day"`
	NewYearGreetedYear     int `json:"new_year_greeted_year"`
	CreatedAbsDay          int `json:"created_abs_day"`
}

// DominantSkill returns the higher of the two skill tracks.
func (n *NPC) DominantSkill() int {
	if n.FSkill >= n.MSkill {
		return n.FSkill
	}
	return n.MSkill
}

// DominantStyle returns which track is stronger, or Both when tied.
func (n *NPC) DominantStyle() catalog.StyleTag {
	switch {
	case n.FSkill > n.MSkill:
		return catalog.StyleFemale
	case n.MSkill > n.FSkill:
		return catalog.StyleMale
	default:
		return catalog.StyleBoth
	}
}

// AvgSkill returns the mean of the two skill tracks.
func (n *NPC) AvgSkill() float64 {
	return float64(n.FSkill+n.MSkill) / 2
}

// Roster is the full NPC population with an id index.
type Roster struct {
	All   []*NPC
	byID  map[string]*NPC
}

// NewRoster builds a roster from a list of NPCs.
func NewRoster(all []*NPC) *Roster {
	r := &Roster{All: all, byID: make(map[string]*NPC, len(all))}
	for _, n := range all {
		r.byID[n.ID] = n
	}
	return r
}

// ByID returns the NPC with the given id, or nil.
func (r *Roster) ByID(id string) *NPC {
	return r.byID[id]
}

// Add appends a new NPC to the roster.
func (r *Roster) Add(n *NPC) {
	r.All = append(r.All, n)
	r.byID[n.ID] = n
}

// ActiveCount returns how many NPCs are still active.
func (r *Roster) ActiveCount() int {
	count := 0
	for _, n := range r.All {
		if n.Active {
			count++
		}
	}
	return count
}
