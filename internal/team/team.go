// Package team provides the team data model, the formation generator, and
// the derived-stat recompute that runs in the monthly batch.
package team

import (
	"errors"
	"math/rand"

	"github.com/talgya/cover-life/internal/catalog"
	"github.com/talgya/cover-life/internal/npc"
)

// Team size bounds. A team that drops below MinMembers disbands immediately.
const (
	MinMembers = 3
	MaxMembers = 20
)

// DominantStyleCooldown is the minimum number of days between dominant-style
// changes, so a team's identity does not flicker month to month.
const DominantStyleCooldown = 180

// Level buckets teams by average dominant skill.
type Level string

const (
	LevelRookie Level = "Rookie"
	LevelMid    Level = "Mid"
	LevelPro    Level = "Pro"
)

// LevelForSkill buckets an average skill value.
func LevelForSkill(avg float64) Level {
	switch {
	case avg <= 300:
		return LevelRookie
	case avg <= 700:
		return LevelMid
	default:
		return LevelPro
	}
}

var (
	ErrTeamFull      = errors.New("team is full")
	ErrTooFewMembers = errors.New("team below minimum size")
)

// Team is a named group of NPCs the player can join.
type Team struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	MemberIDs []string `json:"member_ids"`
	LeaderID  string   `json:"leader_id"`

	// Derived from members; recomputed monthly and on membership changes.
	Skill         int              `json:"skill"`
	Popularity    int              `json:"popularity"`
	Rating        int              `json:"rating"`
	Level         Level            `json:"level"`
	DominantStyle catalog.StyleTag `json:"dominant_style"`

	LastStyleChangeAbsDay int `json:"last_style_change_abs_day"`

	// Invitation and project-offer bookkeeping.
	InviteRefusals        int `json:"invite_refusals"`
	LastInviteAbsDay      int `json:"last_invite_abs_day"`
	OfferRefusals         int `json:"offer_refusals"`
	NextProjectOfferAbsDay int `json:"next_project_offer_abs_day"`

	PlayerIsMember bool `json:"player_is_member"`
	CreatedAbsDay  int  `json:"created_abs_day"`
	Disbanded      bool `json:"disbanded"`
}

// HasMember reports whether the NPC id is on the team.
func (t *Team) HasMember(id string) bool {
	for _, m := range t.MemberIDs {
		if m == id {
			return true
		}
	}
	return false
}

// Size returns the member count, counting the player when joined.
func (t *Team) Size() int {
	size := len(t.MemberIDs)
	if t.PlayerIsMember {
		size++
	}
	return size
}

// AddMember appends an NPC to the team.
func (t *Team) AddMember(id string) error {
	if t.Size() >= MaxMembers {
		return ErrTeamFull
	}
	if t.HasMember(id) {
		return nil
	}
	t.MemberIDs = append(t.MemberIDs, id)
	return nil
}

// RemoveMember drops an NPC from the team. Returns ErrTooFewMembers when the
// departure leaves the team below the floor; the caller must then disband it
// within the same tick.
func (t *Team) RemoveMember(id string) error {
	for i, m := range t.MemberIDs {
		if m == id {
			t.MemberIDs = append(t.MemberIDs[:i], t.MemberIDs[i+1:]...)
			break
		}
	}
	if t.Size() < MinMembers {
		return ErrTooFewMembers
	}
	if t.LeaderID == id {
		t.LeaderID = ""
	}
	return nil
}

// Recompute re-derives skill, popularity, rating, level, leader, and the
// dominant style (honoring the style-change cooldown) from current members.
func (t *Team) Recompute(roster *npc.Roster, absDay int) {
	members := t.members(roster)
	if len(members) == 0 {
		return
	}

	totalDominant := 0
	totalPop := 0
	styleCounts := map[catalog.StyleTag]int{}
	for _, m := range members {
		totalDominant += m.DominantSkill()
		totalPop += m.Popularity
		styleCounts[m.DominantStyle()]++
	}

	t.Skill = totalDominant / len(members)
	t.Popularity = totalPop / len(members)
	t.Rating = int(float64(t.Skill)*0.7 + float64(t.Popularity)*0.3)
	t.Level = LevelForSkill(float64(t.Skill))
	t.LeaderID = electLeader(members)

	style := dominantFromCounts(styleCounts)
	if t.DominantStyle == "" {
		t.DominantStyle = style
		t.LastStyleChangeAbsDay = absDay
	} else if style != t.DominantStyle && absDay-t.LastStyleChangeAbsDay >= DominantStyleCooldown {
		t.DominantStyle = style
		t.LastStyleChangeAbsDay = absDay
	}
}

func (t *Team) members(roster *npc.Roster) []*npc.NPC {
	out := make([]*npc.NPC, 0, len(t.MemberIDs))
	for _, id := range t.MemberIDs {
		if n := roster.ByID(id); n != nil {
			out = append(out, n)
		}
	}
	return out
}

// AvgDominantSkill returns the mean dominant skill across members.
func (t *Team) AvgDominantSkill(roster *npc.Roster) float64 {
	members := t.members(roster)
	if len(members) == 0 {
		return 0
	}
	total := 0
	for _, m := range members {
		total += m.DominantSkill()
	}
	return float64(total) / float64(len(members))
}

func dominantFromCounts(counts map[catalog.StyleTag]int) catalog.StyleTag {
	f, m, both := counts[catalog.StyleFemale], counts[catalog.StyleMale], counts[catalog.StyleBoth]
	switch {
	case f > m && f >= both:
		return catalog.StyleFemale
	case m > f && m >= both:
		return catalog.StyleMale
	default:
		return catalog.StyleBoth
	}
}

// electLeader scores each member: dominant skill, +20 for a Both-style
// dancer, +15 for a drive-heavy archetype.
func electLeader(members []*npc.NPC) string {
	best := ""
	bestScore := -1
	for _, m := range members {
		score := m.DominantSkill()
		if m.FavoriteStyle == catalog.StyleBoth {
			score += 20
		}
		if npc.LeaderBehaviorBonus(m.BehaviorModel) {
			score += 15
		}
		if score > bestScore {
			bestScore = score
			best = m.ID
		}
	}
	return best
}

// Index is the live team list with an id index.
type Index struct {
	All  []*Team
	byID map[string]*Team
}

// NewIndex builds a team index.
func NewIndex(all []*Team) *Index {
	idx := &Index{All: all, byID: make(map[string]*Team, len(all))}
	for _, t := range all {
		idx.byID[t.ID] = t
	}
	return idx
}

// ByID returns the team with the given id, or nil.
func (idx *Index) ByID(id string) *Team {
	t := idx.byID[id]
	if t == nil || t.Disbanded {
		return nil
	}
	return t
}

// Add appends a new team.
func (idx *Index) Add(t *Team) {
	idx.All = append(idx.All, t)
	idx.byID[t.ID] = t
}

// Active returns all non-disbanded teams.
func (idx *Index) Active() []*Team {
	out := make([]*Team, 0, len(idx.All))
	for _, t := range idx.All {
		if !t.Disbanded {
			out = append(out, t)
		}
	}
	return out
}

// Disband marks a team dead and clears its members' team references.
// Reports whether the player was a member, so the caller can detach them
// too; the index does not hold the player's side of the link.
func (idx *Index) Disband(t *Team, roster *npc.Roster) bool {
	playerWasMember := t.PlayerIsMember
	t.Disbanded = true
	for _, id := range t.MemberIDs {
		if n := roster.ByID(id); n != nil && n.TeamID == t.ID {
			n.TeamID = ""
		}
	}
	t.MemberIDs = nil
	t.PlayerIsMember = false
	return playerWasMember
}

// PickCompatible returns a random active team whose dominant style fits the
// NPC, or nil.
func (idx *Index) PickCompatible(n *npc.NPC, rng *rand.Rand) *Team {
	var fits []*Team
	for _, t := range idx.Active() {
		if t.Size() >= MaxMembers {
			continue
		}
		if npc.StyleCompatible(n.FavoriteStyle, t.DominantStyle) {
			fits = append(fits, t)
		}
	}
	if len(fits) == 0 {
		return nil
	}
	return fits[rng.Intn(len(fits))]
}
