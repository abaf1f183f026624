package npc

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/talgya/cover-life/internal/calendar"
	"github.com/talgya/cover-life/internal/catalog"
)

// Generator produces NPCs from the weighted distributions and name pools.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates an NPC generator backed by the given RNG.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// InitialRosterSize is the NPC population at game start. One more NPC joins
// the community every simulated month.
const InitialRosterSize = 40

// Generate produces one NPC. Skill tier split: 70% beginner (100-400),
// 20% middle (401-700), 10% pro (701-1000).
func (g *Generator) Generate(createdAbsDay int) *NPC {
	gender := GenderFemale
	if g.rng.Float64() >= 0.9 {
		gender = GenderMale
	}

	var style catalog.StyleTag
	switch roll := g.rng.Float64(); {
	case roll < 0.33:
		style = catalog.StyleFemale
	case roll < 0.66:
		style = catalog.StyleMale
	default:
		style = catalog.StyleBoth
	}

	var fSkill, mSkill int
	switch tier := g.rng.Float64(); {
	case tier < 0.7:
		fSkill = randRange(g.rng, 100, 400)
		mSkill = randRange(g.rng, 100, 400)
	case tier < 0.9:
		fSkill = randRange(g.rng, 401, 700)
		mSkill = randRange(g.rng, 401, 700)
	default:
		fSkill = randRange(g.rng, 701, 1000)
		mSkill = randRange(g.rng, 701, 1000)
	}

	birthMonth := g.rng.Intn(12) + 1
	birthDay := g.rng.Intn(calendar.DaysInRealMonth(birthMonth)) + 1

	return &NPC{
		ID:            "npc_" + uuid.NewString(),
		Name:          g.pickName(gender),
		Gender:        gender,
		FaceID:        g.rng.Intn(24),
		FSkill:        fSkill,
		MSkill:        mSkill,
		Popularity:    g.rng.Intn(501),
		Reputation:    randRange(g.rng, -500, 500),
		FavoriteStyle: style,
		BehaviorModel: PickModel(g.rng),
		Active:        true,
		BirthMonth:    birthMonth,
		BirthDay:      birthDay,

		LastTeamChangeAbsDay:   -1,
		BirthdayRemindedAbsDay: -1,
		BirthdayGreetedAbsDay:  -1,
		NewYearGreetedYear:     -1,
		CreatedAbsDay:          createdAbsDay,
	}
}

// GenerateRoster produces the initial population.
func (g *Generator) GenerateRoster(count, createdAbsDay int) *Roster {
	all := make([]*NPC, 0, count)
	for i := 0; i < count; i++ {
		all = append(all, g.Generate(createdAbsDay))
	}
	return NewRoster(all)
}

func (g *Generator) pickName(gender Gender) string {
	pool := catalog.FemaleNames
	if gender == GenderMale {
		pool = catalog.MaleNames
	}
	return pool[g.rng.Intn(len(pool))]
}

// TeamSwitchInterval and TeamSwitchChance govern organic NPC team movement:
// every 60 days an NPC has a 30% chance to move to a random style-compatible
// team.
const (
	TeamSwitchInterval = 60
	TeamSwitchChance   = 0.3
)

// WantsTeamSwitch rolls whether this NPC moves teams this month.
func WantsTeamSwitch(n *NPC, absDay int, rng *rand.Rand) bool {
	last := n.LastTeamChangeAbsDay
	if last < 0 {
		last = n.CreatedAbsDay
	}
	if absDay-last < TeamSwitchInterval {
		return false
	}
	return rng.Float64() < TeamSwitchChance
}

// StyleCompatible reports whether an NPC's favorite style fits a team's
// dominant style.
func StyleCompatible(npcStyle, teamStyle catalog.StyleTag) bool {
	if teamStyle == catalog.StyleBoth || npcStyle == catalog.StyleBoth {
		return true
	}
	return npcStyle == teamStyle
}
