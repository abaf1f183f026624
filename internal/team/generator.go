package team

import (
	"math"
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"github.com/talgya/cover-life/internal/catalog"
	"github.com/talgya/cover-life/internal/npc"
)

// Generator forms teams out of the NPC roster. Roughly 35% of NPCs stay
// teamless so the community always has free agents.
type Generator struct {
	rng           *rand.Rand
	availableNames []string
}

// NewGenerator creates a team generator with the full name pool.
func NewGenerator(rng *rand.Rand) *Generator {
	names := make([]string, len(catalog.TeamNames))
	copy(names, catalog.TeamNames)
	return &Generator{rng: rng, availableNames: names}
}

// TeamlessShare is the fraction of NPCs deliberately kept out of teams.
const TeamlessShare = 0.35

// compatible checks whether two NPCs can share a team at the given level:
// average-skill distance within the level's tolerance, and no pure-F dancer
// with a pure-M dancer at mid/pro level.
func compatible(a, b *npc.NPC, level Level) bool {
	diff := math.Abs(a.AvgSkill() - b.AvgSkill())
	switch level {
	case LevelRookie:
		return diff <= 40
	case LevelMid:
		if diff > 25 {
			return false
		}
	default:
		if diff > 15 {
			return false
		}
	}
	pureF := func(n *npc.NPC) bool { return n.FavoriteStyle == catalog.StyleFemale }
	pureM := func(n *npc.NPC) bool { return n.FavoriteStyle == catalog.StyleMale }
	if (pureF(a) && pureM(b)) || (pureM(a) && pureF(b)) {
		return false
	}
	return true
}

// GenerateInitial forms the starting team landscape: teamCount attempts
// split 40% rookie, 40% mid, 20% pro, bounded by unique names.
func (g *Generator) GenerateInitial(roster *npc.Roster, teamCount, absDay int) *Index {
	if teamCount > len(g.availableNames) {
		teamCount = len(g.availableNames)
	}

	sorted := make([]*npc.NPC, len(roster.All))
	copy(sorted, roster.All)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].AvgSkill() < sorted[j].AvgSkill() })

	// Reserve a random 35% slice of the roster as free agents.
	exclude := make(map[string]bool)
	excludeCount := int(math.Ceil(float64(len(sorted)) * TeamlessShare))
	for len(exclude) < excludeCount && len(exclude) < len(sorted) {
		exclude[sorted[g.rng.Intn(len(sorted))].ID] = true
	}

	var levels []Level
	for i := 0; i < int(float64(teamCount)*0.4); i++ {
		levels = append(levels, LevelRookie)
	}
	for i := 0; i < int(float64(teamCount)*0.4); i++ {
		levels = append(levels, LevelMid)
	}
	for i := 0; i < int(float64(teamCount)*0.2); i++ {
		levels = append(levels, LevelPro)
	}

	used := make(map[string]bool)
	idx := NewIndex(nil)
	for _, level := range levels {
		size := g.rng.Intn(MaxMembers-MinMembers+1) + MinMembers
		memberIDs := g.pickMembers(sorted, level, size, used, exclude)
		if len(memberIDs) < MinMembers {
			continue
		}
		t := g.assemble(roster, memberIDs, absDay)
		idx.Add(t)
		for _, id := range memberIDs {
			if n := roster.ByID(id); n != nil {
				n.TeamID = t.ID
			}
		}
	}
	return idx
}

// FormTeam builds one new team out of current free agents, used by the
// monthly batch. Returns nil when not enough compatible NPCs are free.
func (g *Generator) FormTeam(roster *npc.Roster, idx *Index, absDay int) *Team {
	var free []*npc.NPC
	for _, n := range roster.All {
		if n.Active && n.TeamID == "" {
			free = append(free, n)
		}
	}
	if len(free) < MinMembers {
		return nil
	}
	sort.Slice(free, func(i, j int) bool { return free[i].AvgSkill() < free[j].AvgSkill() })

	seed := free[g.rng.Intn(len(free))]
	level := LevelForSkill(seed.AvgSkill())
	memberIDs := []string{seed.ID}
	for _, cand := range free {
		if len(memberIDs) >= MinMembers+g.rng.Intn(5) {
			break
		}
		if cand.ID == seed.ID {
			continue
		}
		ok := true
		for _, id := range memberIDs {
			if m := roster.ByID(id); m != nil && !compatible(m, cand, level) {
				ok = false
				break
			}
		}
		if ok {
			memberIDs = append(memberIDs, cand.ID)
		}
	}
	if len(memberIDs) < MinMembers {
		return nil
	}

	t := g.assemble(roster, memberIDs, absDay)
	idx.Add(t)
	for _, id := range memberIDs {
		if n := roster.ByID(id); n != nil {
			n.TeamID = t.ID
			n.LastTeamChangeAbsDay = absDay
		}
	}
	return t
}

func (g *Generator) pickMembers(sorted []*npc.NPC, level Level, size int, used, exclude map[string]bool) []string {
	var available []*npc.NPC
	for _, n := range sorted {
		if !used[n.ID] && !exclude[n.ID] {
			available = append(available, n)
		}
	}
	if len(available) == 0 {
		return nil
	}

	// Seed the team from the skill segment matching the level.
	var first int
	switch level {
	case LevelRookie:
		first = g.rng.Intn(min(3, len(available)))
	case LevelMid:
		start := len(available) / 3
		span := max(1, min(3, len(available)/3))
		first = min(start+g.rng.Intn(span), len(available)-1)
	default:
		first = max(0, len(available)-1-g.rng.Intn(min(3, len(available))))
	}

	chosen := []string{available[first].ID}
	used[available[first].ID] = true

	for len(chosen) < size {
		found := false
		for _, cand := range available {
			if used[cand.ID] {
				continue
			}
			ok := true
			for _, id := range chosen {
				for _, m := range available {
					if m.ID == id && !compatible(m, cand, level) {
						ok = false
						break
					}
				}
				if !ok {
					break
				}
			}
			if ok {
				chosen = append(chosen, cand.ID)
				used[cand.ID] = true
				found = true
				break
			}
		}
		if !found {
			break
		}
	}

	if len(chosen) < MinMembers {
		for _, id := range chosen {
			delete(used, id)
		}
		return nil
	}
	return chosen
}

func (g *Generator) assemble(roster *npc.Roster, memberIDs []string, absDay int) *Team {
	t := &Team{
		ID:            "team_" + uuid.NewString(),
		Name:          g.takeName(),
		MemberIDs:     memberIDs,
		CreatedAbsDay: absDay,
		// New teams start with low popularity regardless of member fame.
		Popularity:       g.rng.Intn(21),
		LastInviteAbsDay: -1,
	}
	t.Recompute(roster, absDay)
	t.Popularity = min(t.Popularity, 20)
	t.Rating = int(float64(t.Skill)*0.7 + float64(t.Popularity)*0.3)
	return t
}

func (g *Generator) takeName() string {
	if len(g.availableNames) == 0 {
		return "Team " + uuid.NewString()[:4]
	}
	i := g.rng.Intn(len(g.availableNames))
	name := g.availableNames[i]
	g.availableNames = append(g.availableNames[:i], g.availableNames[i+1:]...)
	return name
}
