// Behavior archetypes: the 8 personality templates that drive monthly NPC
// stat growth and generation weighting.
package npc

import "math/rand"

// GrowthTemplate holds the bounded monthly random deltas for an archetype.
type GrowthTemplate struct {
	SkillMin, SkillMax int // applied to both tracks independently
	PopMin, PopMax     int
	RepMin, RepMax     int
}

// growthTemplates maps each behavior model to its monthly growth profile.
var growthTemplates = map[BehaviorModel]GrowthTemplate{
	ModelBurner:        {SkillMin: 40, SkillMax: 80, PopMin: 0, PopMax: 20, RepMin: 10, RepMax: 30},
	ModelDreamer:       {SkillMin: -30, SkillMax: 100, PopMin: -20, PopMax: 60, RepMin: -30, RepMax: 40},
	ModelPerfectionist: {SkillMin: 20, SkillMax: 40, PopMin: -20, PopMax: 10, RepMin: -50, RepMax: 60},
	ModelSunshine:      {SkillMin: 10, SkillMax: 30, PopMin: 40, PopMax: 100, RepMin: 30, RepMax: 80},
	ModelMachine:       {SkillMin: 30, SkillMax: 60, PopMin: -10, PopMax: 10, RepMin: 10, RepMax: 30},
	ModelWildcard:      {SkillMin: -60, SkillMax: 120, PopMin: -200, PopMax: 200, RepMin: -150, RepMax: 150},
	ModelFox:           {SkillMin: -10, SkillMax: 20, PopMin: 50, PopMax: 180, RepMin: -80, RepMax: 40},
	ModelSilentPro:     {SkillMin: 30, SkillMax: 70, PopMin: 0, PopMax: 20, RepMin: 10, RepMax: 40},
}

// modelWeights are the generation probabilities, evaluated in order.
var modelWeights = []struct {
	Model  BehaviorModel
	Weight float64
}{
	{ModelBurner, 0.18},
	{ModelDreamer, 0.14},
	{ModelPerfectionist, 0.12},
	{ModelSunshine, 0.20},
	{ModelMachine, 0.10},
	{ModelWildcard, 0.08},
	{ModelFox, 0.10},
	{ModelSilentPro, 0.08},
}

// PickModel draws a behavior model from the generation weights.
func PickModel(rng *rand.Rand) BehaviorModel {
	roll := rng.Float64()
	sum := 0.0
	for _, mw := range modelWeights {
		sum += mw.Weight
		if roll <= sum {
			return mw.Model
		}
	}
	return ModelBurner
}

// randRange returns a uniform int in [min, max].
func randRange(rng *rand.Rand, min, max int) int {
	return rng.Intn(max-min+1) + min
}

// ApplyMonthlyGrowth advances one NPC's stats by its archetype profile,
// clamped to stat bounds.
func ApplyMonthlyGrowth(n *NPC, rng *rand.Rand) {
	tmpl, ok := growthTemplates[n.BehaviorModel]
	if !ok {
		return
	}
	n.FSkill = clampInt(n.FSkill+randRange(rng, tmpl.SkillMin, tmpl.SkillMax), 0, 1000)
	n.MSkill = clampInt(n.MSkill+randRange(rng, tmpl.SkillMin, tmpl.SkillMax), 0, 1000)
	n.Popularity = clampInt(n.Popularity+randRange(rng, tmpl.PopMin, tmpl.PopMax), 0, 1000)
	n.Reputation = clampInt(n.Reputation+randRange(rng, tmpl.RepMin, tmpl.RepMax), -1000, 1000)
}

// LeaderBehaviorBonus reports whether a model carries the +15 leader score
// bonus (drive-heavy archetypes).
func LeaderBehaviorBonus(m BehaviorModel) bool {
	return m == ModelBurner || m == ModelPerfectionist || m == ModelMachine
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
