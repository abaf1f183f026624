// Package player holds the player profile and its clamped stat mutations.
// Money never goes negative; skills, popularity, reputation and tiredness
// stay inside their ranges on every write.
package player

import (
	"github.com/talgya/cover-life/internal/catalog"
	"github.com/talgya/cover-life/internal/effects"
	"github.com/talgya/cover-life/internal/shop"
)

// Stat ranges.
const (
	SkillMin      = 0
	SkillMax      = 1000
	PopularityMin = 0
	PopularityMax = 1000
	ReputationMin = -1000
	ReputationMax = 1000
	TirednessMin  = 0
	TirednessMax  = 100
)

// Weekly counters, reset on every week boundary.
type Weekly struct {
	TrainingsF int                 `json:"trainings_f"`
	TrainingsM int                 `json:"trainings_m"`
	Shop       shop.WeeklyCounters `json:"shop"`
}

func (w *Weekly) Reset() {
	w.TrainingsF = 0
	w.TrainingsM = 0
	w.Shop.Reset()
}

// Player is the singleton profile the whole simulation revolves around.
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	AvatarID string `json:"avatar_id"`

	Money      int `json:"money"`
	Reputation int `json:"reputation"`
	Popularity int `json:"popularity"`
	Tiredness  int `json:"tiredness"`
	FSkill     int `json:"f_skill"`
	MSkill     int `json:"m_skill"`

	TeamID string `json:"team_id,omitempty"`

	Effects effects.Set `json:"effects"`
	Weekly  Weekly      `json:"weekly"`

	// Trackers on the absolute-day axis. -1 means never.
	LastTrainedAbsDay     int `json:"last_trained_abs_day"`
	LastPositivePopAbsDay int `json:"last_positive_pop_abs_day"`
	LastPostedAbsDay      int `json:"last_posted_abs_day"`
	LastTeamJoinAbsDay    int `json:"last_team_join_abs_day"`
	LastTeamInviteAbsDay  int `json:"last_team_invite_abs_day"`
	LastEventAbsDay       int `json:"last_event_abs_day"`
	StagnationWarnedAbsDay int `json:"stagnation_warned_abs_day"`
	TrainerAwayFUntil     int `json:"trainer_away_f_until"`
	TrainerAwayMUntil     int `json:"trainer_away_m_until"`

	AtRiskOfExpulsion bool `json:"at_risk_of_expulsion"`

	TeamJoinHistory []string `json:"team_join_history,omitempty"`
	FestivalWins    int      `json:"festival_wins"`

	// Shared limiter for deadline penalties and cancellation events.
	AcceptedSinceFailure int `json:"accepted_since_failure"`
}

// New creates a fresh profile with default funds and a clean slate.
func New(id, name string) *Player {
	return &Player{
		ID:      id,
		Name:    name,
		Money:   5000,
		FSkill:  100,
		MSkill:  100,
		Effects: effects.NewSet(),

		LastTrainedAbsDay:      -1,
		LastPositivePopAbsDay:  -1,
		LastPostedAbsDay:       -1,
		LastTeamJoinAbsDay:     -1,
		LastTeamInviteAbsDay:   -1,
		LastEventAbsDay:        -999,
		StagnationWarnedAbsDay: -1,
		TrainerAwayFUntil:      -1,
		TrainerAwayMUntil:      -1,
	}
}

// AvgSkill is the midpoint of the two style tracks.
func (p *Player) AvgSkill() int {
	return (p.FSkill + p.MSkill) / 2
}

// ComparableSkill picks the track matching a required style, or the average
// for mixed requirements.
func (p *Player) ComparableSkill(style catalog.StyleTag) int {
	switch style {
	case catalog.StyleFemale:
		return p.FSkill
	case catalog.StyleMale:
		return p.MSkill
	default:
		return p.AvgSkill()
	}
}

// AddMoney mutates the balance, clamping at zero. Returns the amount
// actually applied.
func (p *Player) AddMoney(delta int) int {
	before := p.Money
	p.Money += delta
	if p.Money < 0 {
		p.Money = 0
	}
	return p.Money - before
}

// Spend deducts an exact amount, refusing overdrafts.
func (p *Player) Spend(amount int) bool {
	if amount < 0 || amount > p.Money {
		return false
	}
	p.Money -= amount
	return true
}

func (p *Player) AddReputation(delta int) {
	p.Reputation = clampInt(p.Reputation+delta, ReputationMin, ReputationMax)
}

func (p *Player) AddPopularity(delta int, absDay int) {
	p.Popularity = clampInt(p.Popularity+delta, PopularityMin, PopularityMax)
	if delta > 0 {
		p.LastPositivePopAbsDay = absDay
	}
}

func (p *Player) AddTiredness(delta int) {
	p.Tiredness = clampInt(p.Tiredness+delta, TirednessMin, TirednessMax)
}

func (p *Player) AddFSkill(delta int) {
	p.FSkill = clampInt(p.FSkill+delta, SkillMin, SkillMax)
}

func (p *Player) AddMSkill(delta int) {
	p.MSkill = clampInt(p.MSkill+delta, SkillMin, SkillMax)
}

// OnTeam reports team membership.
func (p *Player) OnTeam() bool {
	return p.TeamID != ""
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
