package project

import (
	"github.com/talgya/cover-life/internal/catalog"
	"github.com/talgya/cover-life/internal/effects"
)

// Success roll shape. The base chance is generous; the skill gap between
// what the project asks for and what the player brings steps it down.
const baseSuccessChance = 0.95

// ResolveInput carries the player-side values a completion roll needs.
type ResolveInput struct {
	PlayerFSkill int
	PlayerMSkill int
	Reputation   int
	Popularity   int

	// Raw modifier products from active effects. Resolve clamps them.
	RepModifier float64
	PopModifier float64

	// Hype scales public engagement on a success.
	Hype float64
}

// ResolveResult is the terminal outcome of a project.
type ResolveResult struct {
	Success         bool
	ReputationDelta int
	PopularityDelta int
	CostumeRefund   int
	Likes           int
	Dislikes        int
	Comments        []Comment
}

func (p *Project) comparableSkill(in ResolveInput) int {
	switch p.RequiredStyle {
	case catalog.StyleFemale:
		return in.PlayerFSkill
	case catalog.StyleMale:
		return in.PlayerMSkill
	default:
		return (in.PlayerFSkill + in.PlayerMSkill) / 2
	}
}

func gapPenalty(gap int) float64 {
	switch {
	case gap > 20:
		return 0.7
	case gap > 10:
		return 0.85
	case gap > 0:
		return 0.95
	default:
		return 1.0
	}
}

// Resolve rolls the terminal outcome at full progress and writes it onto the
// project. A success generates a public reaction; a failure stays silent and
// refunds any unspent costume savings.
func (g *Generator) Resolve(p *Project, in ResolveInput) ResolveResult {
	p.Status = StatusCompleted

	gap := p.MinSkill - p.comparableSkill(in)
	chance := baseSuccessChance * gapPenalty(gap)

	res := ResolveResult{}
	if g.rng.Float64() >= chance {
		// Failed covers never go public. Unspent costume money comes back.
		if !p.CostumePaid {
			res.CostumeRefund = p.CostumeSavedMoney
			p.CostumeSavedMoney = 0
		}
		p.Success = false
		return res
	}

	p.Success = true
	res.Success = true
	res.ReputationDelta = scaleDelta(10+g.rng.Intn(31), effects.ClampRepPopModifier(in.RepModifier))
	res.PopularityDelta = scaleDelta(20+g.rng.Intn(61), effects.ClampRepPopModifier(in.PopModifier))

	g.react(p, in, &res)
	p.Likes = res.Likes
	p.Dislikes = res.Dislikes
	p.Comments = res.Comments
	return res
}

// react generates the comment thread under a successful cover. Comment
// volume follows popularity, sentiment follows reputation, and a strong
// costume tilts the thread further.
func (g *Generator) react(p *Project, in ResolveInput, res *ResolveResult) {
	pop := in.Popularity
	if pop < 30 {
		pop = 30
	}
	count := pop / 10
	if count < 3 {
		count = 3
	}

	// Clamp before the costume skew so a strong costume can still lift a
	// bottomed-out chance.
	positiveChance := 0.5 + float64(in.Reputation)/200
	if positiveChance < 0.05 {
		positiveChance = 0.05
	}
	if positiveChance > 0.95 {
		positiveChance = 0.95
	}
	switch {
	case p.CostumeMatchPercent >= 81:
		positiveChance *= 1.1
	case p.CostumeMatchPercent >= 51:
		positiveChance *= 0.9
	}

	hype := in.Hype
	if hype <= 0 {
		hype = 1
	}

	res.Comments = make([]Comment, 0, count)
	for i := 0; i < count; i++ {
		if g.rng.Float64() < positiveChance {
			text := catalog.PositiveComments[g.rng.Intn(len(catalog.PositiveComments))]
			res.Comments = append(res.Comments, Comment{Text: text, Positive: true})
			res.Likes += int(float64(1+g.rng.Intn(11))*hype + 0.5)
		} else {
			text := catalog.NegativeComments[g.rng.Intn(len(catalog.NegativeComments))]
			res.Comments = append(res.Comments, Comment{Text: text, Positive: false})
			res.Dislikes += int(float64(g.rng.Intn(4))*hype + 0.5)
		}
	}
}

// Abandon drops a project. Costume savings come back only when less than
// half the work is done.
func (p *Project) Abandon() (refund int) {
	if p.Progress() < 50 && !p.CostumePaid {
		refund = p.CostumeSavedMoney
		p.CostumeSavedMoney = 0
	}
	p.Status = StatusAbandoned
	p.Success = false
	return refund
}

func scaleDelta(base int, mod float64) int {
	return int(float64(base)*mod + 0.5)
}
