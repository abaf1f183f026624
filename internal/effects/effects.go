// Package effects tracks transient player modifiers keyed by kind.
// At most one effect of a kind is active: applying a duplicate merges into
// the existing entry instead of stacking.
package effects

import "math"

// Kind is the closed set of effect kinds.
type Kind string

const (
	KindTrainingEfficiency Kind = "training_efficiency"
	KindDailyTiredDelta    Kind = "daily_tired_delta"
	KindTrainingCostMult   Kind = "training_cost_mult"
	KindProjectRejectAdd   Kind = "project_reject_add"
	KindReputationMult     Kind = "reputation_mult"
	KindPopularityMult     Kind = "popularity_mult"
	KindSkillMult          Kind = "skill_mult"
	KindEventTag           Kind = "event_tag"
)

// Effect is one transient modifier with an expiry on the absolute day axis.
type Effect struct {
	Kind          Kind    `json:"kind"`
	Label         string  `json:"label"`
	Magnitude     float64 `json:"magnitude"`
	ExpiresAbsDay int     `json:"expires_abs_day"`
}

// Set holds the player's active effects, one per kind.
type Set map[Kind]Effect

// NewSet creates an empty effect set.
func NewSet() Set {
	return make(Set)
}

// Apply merges an effect into the set. Same-kind merge policy: expiry extends
// to the later day, magnitude keeps whichever is stronger (further from the
// kind's neutral value).
func (s Set) Apply(e Effect) {
	cur, ok := s[e.Kind]
	if !ok {
		s[e.Kind] = e
		return
	}
	if e.ExpiresAbsDay > cur.ExpiresAbsDay {
		cur.ExpiresAbsDay = e.ExpiresAbsDay
	}
	if strength(e.Kind, e.Magnitude) > strength(cur.Kind, cur.Magnitude) {
		cur.Magnitude = e.Magnitude
		cur.Label = e.Label
	}
	s[e.Kind] = cur
}

// strength measures distance from the kind's neutral magnitude.
func strength(k Kind, magnitude float64) float64 {
	neutral := 0.0
	switch k {
	case KindTrainingEfficiency, KindTrainingCostMult,
		KindReputationMult, KindPopularityMult, KindSkillMult:
		neutral = 1.0
	}
	return math.Abs(magnitude - neutral)
}

// ExpireThrough removes effects whose expiry day has passed and returns the
// labels of what expired.
func (s Set) ExpireThrough(absDay int) []string {
	var expired []string
	for k, e := range s {
		if e.ExpiresAbsDay <= absDay {
			expired = append(expired, e.Label)
			delete(s, k)
		}
	}
	return expired
}

// TrainingEfficiencyCap bounds stacked efficiency so buffs cannot run away.
const TrainingEfficiencyCap = 1.9

// TrainingEfficiency returns the combined training multiplier for the given
// tiredness, capped at TrainingEfficiencyCap.
func (s Set) TrainingEfficiency(tiredness float64) float64 {
	mult := tiredFactor(tiredness)
	if e, ok := s[KindTrainingEfficiency]; ok {
		mult *= e.Magnitude
	}
	if mult > TrainingEfficiencyCap {
		mult = TrainingEfficiencyCap
	}
	if mult < 0 {
		mult = 0
	}
	return mult
}

func tiredFactor(tiredness float64) float64 {
	switch {
	case tiredness >= 90:
		return 0.5
	case tiredness >= 70:
		return 0.8
	default:
		return 1.0
	}
}

// TrainingCostMultiplier returns the active training cost scale (1.0 when no
// effect is present).
func (s Set) TrainingCostMultiplier() float64 {
	if e, ok := s[KindTrainingCostMult]; ok {
		return e.Magnitude
	}
	return 1.0
}

// ProjectRejectAdd returns the additional rejection chance from penalties.
func (s Set) ProjectRejectAdd() float64 {
	if e, ok := s[KindProjectRejectAdd]; ok {
		return e.Magnitude
	}
	return 0
}

// DailyTiredDelta returns today's passive tiredness delta from buffs.
func (s Set) DailyTiredDelta() float64 {
	if e, ok := s[KindDailyTiredDelta]; ok {
		return e.Magnitude
	}
	return 0
}

// ReputationModifier is the bounded multiplier applied to reputation
// rewards and penalties from events.
func (s Set) ReputationModifier() float64 {
	if e, ok := s[KindReputationMult]; ok {
		return ClampRepPopModifier(e.Magnitude)
	}
	return 1.0
}

// PopularityModifier is the bounded multiplier for popularity payloads.
func (s Set) PopularityModifier() float64 {
	if e, ok := s[KindPopularityMult]; ok {
		return ClampRepPopModifier(e.Magnitude)
	}
	return 1.0
}

// SkillModifier is the bounded multiplier for skill payloads.
func (s Set) SkillModifier() float64 {
	if e, ok := s[KindSkillMult]; ok {
		return ClampSkillModifier(e.Magnitude)
	}
	return 1.0
}

// Reward modifier caps: event payloads scale by these bounded multipliers.
const (
	RepPopModifierMin = 0.5
	RepPopModifierMax = 3.0
	SkillModifierMin  = 0.5
	SkillModifierMax  = 2.0
)

// ClampRepPopModifier bounds a reputation/popularity reward multiplier.
func ClampRepPopModifier(m float64) float64 {
	return clamp(m, RepPopModifierMin, RepPopModifierMax)
}

// ClampSkillModifier bounds a skill reward multiplier.
func ClampSkillModifier(m float64) float64 {
	return clamp(m, SkillModifierMin, SkillModifierMax)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
