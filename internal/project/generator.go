package project

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/talgya/cover-life/internal/calendar"
	"github.com/talgya/cover-life/internal/catalog"
)

// Offer pool tuning. New offers arrive in batches and stale ones age out,
// so the board stays fresh without ever going empty.
const (
	InitialPoolSize = 7
	PoolCap         = 20
	RefillBatch     = 5
	RefillInterval  = 21 // days
)

// Duration and cadence rolls.
const (
	fastMinWeeks = 2
	fastMaxWeeks = 8
	longMinWeeks = 9
	longMaxWeeks = 20

	trainingCostMin = 150
	trainingCostMax = 400

	costumeCostFast = 3000
	costumeCostLong = 5000

	// CollabWeeks is the fixed duration of a joint project with an NPC.
	CollabWeeks = 2
)

// PlayerSkills is the slice of player state the generator needs to scale
// offer difficulty.
type PlayerSkills struct {
	FSkill int
	MSkill int
}

func (s PlayerSkills) avg() int {
	return (s.FSkill + s.MSkill + 1) / 2
}

// Generator rolls project offers against the player's current skill level.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// FromTemplate rolls one offer from a template. Duration is 50/50 fast
// (2-8 weeks) or long (9-20 weeks); cadence is 2 trainings per week 60% of
// the time, 3 otherwise; the required total leaves a one-week slack so the
// deadline is reachable at the rolled cadence.
func (g *Generator) FromTemplate(tpl catalog.ProjectTemplate, player PlayerSkills, absDay int) *Project {
	fast := g.rng.Float64() < 0.5
	var weeks int
	if fast {
		weeks = fastMinWeeks + g.rng.Intn(fastMaxWeeks-fastMinWeeks+1)
	} else {
		weeks = longMinWeeks + g.rng.Intn(longMaxWeeks-longMinWeeks+1)
	}

	perWeek := 3
	if g.rng.Float64() < 0.6 {
		perWeek = 2
	}
	effectiveWeeks := weeks - 1
	if effectiveWeeks < 1 {
		effectiveWeeks = 1
	}

	p := &Project{
		ID:              "prj_" + uuid.NewString(),
		Name:            tpl.Name,
		Description:     tpl.Description,
		RequiredStyle:   tpl.Style,
		DurationWeeks:   weeks,
		TrainingPerWeek: perWeek,
		TrainingNeeded:  effectiveWeeks * perWeek,
		TrainingCost:    trainingCostMin + g.rng.Intn(trainingCostMax-trainingCostMin+1),
		CostumeCost:     costumeCostFast,
		Status:          StatusAvailable,
		CreatedAbsDay:   absDay,
		AcceptedAbsDay:  -1,
		CompletedAbsDay: -1,
	}
	if !fast {
		p.CostumeCost = costumeCostLong
	}

	base := g.rollRequiredBase(player)
	g.assignMinSkill(p, base, player)
	return p
}

// rollRequiredBase distributes offer difficulty around the player: 50%
// within ±7% of the player's average, 20% a tier below, 30% a tier above,
// staying inside the tier ladder at its ends.
func (g *Generator) rollRequiredBase(player PlayerSkills) int {
	avg := player.avg()
	tier := skillTier(avg)

	roll := g.rng.Float64()
	switch {
	case roll < 0.5:
		pct := g.rng.Float64() * 0.07
		delta := int(float64(avg)*pct + 0.5)
		if g.rng.Float64() < 0.5 {
			delta = -delta
		}
		return maxInt(0, avg+delta)
	case roll < 0.7:
		switch tier {
		case tierRookie:
			return maxInt(0, avg-g.rng.Intn(51))
		case tierPro:
			return 300 + g.rng.Intn(401)
		default:
			return g.rng.Intn(301)
		}
	default:
		switch tier {
		case tierPro:
			return minInt(1000, avg+g.rng.Intn(51))
		case tierRookie:
			return 300 + g.rng.Intn(401)
		default:
			return 700 + g.rng.Intn(301)
		}
	}
}

// assignMinSkill maps the rolled base onto the project's style tracks. For
// single-style offers the requirement follows the player's split on that
// track rather than the flat average, so a female-heavy player sees
// female-style offers scaled to her actual female skill.
func (g *Generator) assignMinSkill(p *Project, base int, player PlayerSkills) {
	avg := maxInt(1, player.avg())
	switch p.RequiredStyle {
	case catalog.StyleBoth:
		ratioF := 30 + g.rng.Intn(41)
		p.StyleMix = ratioF
		p.MinSkillF = int(float64(base)*float64(ratioF)/100 + 0.5)
		p.MinSkillM = int(float64(base)*float64(100-ratioF)/100 + 0.5)
		p.MinSkill = maxInt(p.MinSkillF, p.MinSkillM)
	case catalog.StyleFemale:
		v := int(float64(player.FSkill)*float64(base)/float64(avg) + 0.5)
		p.MinSkillF = v
		p.MinSkill = v
	default:
		v := int(float64(player.MSkill)*float64(base)/float64(avg) + 0.5)
		p.MinSkillM = v
		p.MinSkill = v
	}
}

// GeneratePool samples count offers from the template library at a 40%
// female / 40% male / 20% mixed split, without replacement per style while
// the library lasts.
func (g *Generator) GeneratePool(count int, player PlayerSkills, absDay int) []*Project {
	femaleTarget := count * 40 / 100
	maleTarget := count * 40 / 100
	mixedTarget := count - femaleTarget - maleTarget

	out := make([]*Project, 0, count)
	for _, pick := range []struct {
		style catalog.StyleTag
		n     int
	}{
		{catalog.StyleFemale, femaleTarget},
		{catalog.StyleMale, maleTarget},
		{catalog.StyleBoth, mixedTarget},
	} {
		tpls := catalog.TemplatesByStyle(pick.style)
		if len(tpls) == 0 {
			continue
		}
		order := g.rng.Perm(len(tpls))
		for i := 0; i < pick.n; i++ {
			tpl := tpls[order[i%len(order)]]
			out = append(out, g.FromTemplate(tpl, player, absDay))
		}
	}
	return out
}

// AgePool drops stale offers. Offers survive their first three weeks on the
// board, then face an 80%, 90% and 100% removal roll in weeks 3, 4 and 5.
func (g *Generator) AgePool(pool []*Project, absDay int) []*Project {
	kept := pool[:0]
	for _, p := range pool {
		weeksOn := (absDay - p.CreatedAbsDay) / calendar.DaysPerWeek
		remove := false
		switch {
		case weeksOn < 3:
		case weeksOn == 3:
			remove = g.rng.Float64() < 0.8
		case weeksOn == 4:
			remove = g.rng.Float64() < 0.9
		default:
			remove = true
		}
		if !remove {
			kept = append(kept, p)
		}
	}
	return kept
}

// TeamProject rolls an offer tailored to a team: a template matching the
// team's dominant style, with the minimum skill pinned to the team's average
// dominant skill (60% per track for mixed pieces).
func (g *Generator) TeamProject(teamID string, dominantStyle catalog.StyleTag, avgDominant int, player PlayerSkills, absDay int) *Project {
	var candidates []catalog.ProjectTemplate
	switch dominantStyle {
	case catalog.StyleFemale:
		candidates = append(catalog.TemplatesByStyle(catalog.StyleFemale), catalog.TemplatesByStyle(catalog.StyleBoth)...)
	case catalog.StyleMale:
		candidates = append(catalog.TemplatesByStyle(catalog.StyleMale), catalog.TemplatesByStyle(catalog.StyleBoth)...)
	default:
		candidates = catalog.ProjectTemplates
	}
	if len(candidates) == 0 {
		candidates = catalog.ProjectTemplates
	}
	tpl := candidates[g.rng.Intn(len(candidates))]

	p := g.FromTemplate(tpl, player, absDay)
	p.IsTeamProject = true
	p.TeamID = teamID
	if avgDominant < 0 {
		avgDominant = 0
	}
	switch p.RequiredStyle {
	case catalog.StyleBoth:
		v := int(float64(avgDominant)*0.6 + 0.5)
		p.MinSkillF = v
		p.MinSkillM = v
		p.MinSkill = v
	case catalog.StyleFemale:
		p.MinSkillF = avgDominant
		p.MinSkill = avgDominant
	default:
		p.MinSkillM = avgDominant
		p.MinSkill = avgDominant
	}
	return p
}

// CollabProject builds the fixed-shape joint project created when an NPC
// accepts a collab proposal. Costs scale with the partner's popularity.
func (g *Generator) CollabProject(npcID, npcName string, style catalog.StyleTag, npcSkill, npcPopularity, absDay int) *Project {
	if npcPopularity < 1 {
		npcPopularity = 1
	}
	return &Project{
		ID:              "prj_" + uuid.NewString(),
		Name:            catalog.CollabProjectName(npcName),
		Description:     "A two-week joint stage with " + npcName + ".",
		RequiredStyle:   style,
		MinSkill:        npcSkill,
		DurationWeeks:   CollabWeeks,
		TrainingPerWeek: 2,
		TrainingNeeded:  2,
		TrainingCost:    npcPopularity * 10,
		CostumeCost:     npcPopularity * 15,
		IsCollab:        true,
		ContactNPCID:    npcID,
		Status:          StatusAvailable,
		CreatedAbsDay:   absDay,
		AcceptedAbsDay:  -1,
		CompletedAbsDay: -1,
	}
}

type tier int

const (
	tierRookie tier = iota
	tierMid
	tierPro
)

func skillTier(avg int) tier {
	switch {
	case avg <= 300:
		return tierRookie
	case avg <= 700:
		return tierMid
	default:
		return tierPro
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
