// Package project provides the project data model, the offer generator, and
// the daily lifecycle tick.
package project

import (
	"math"

	"github.com/talgya/cover-life/internal/calendar"
	"github.com/talgya/cover-life/internal/catalog"
	"github.com/talgya/cover-life/internal/costume"
)

// Status is the lifecycle state of a project.
type Status string

const (
	StatusAvailable Status = "available"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusAbandoned Status = "abandoned"
)

// Comment is one public reaction to a finished cover.
type Comment struct {
	Text     string `json:"text"`
	Positive bool   `json:"positive"`
}

// Project is one time-boxed cover job.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	RequiredStyle catalog.StyleTag `json:"required_style"`
	StyleMix      int              `json:"style_mix"` // percent of female-style content
	MinSkill      int              `json:"min_skill"`
	MinSkillF     int              `json:"min_skill_f"`
	MinSkillM     int              `json:"min_skill_m"`
	MinReputation int              `json:"min_reputation"`

	DurationWeeks   int `json:"duration_weeks"`
	TrainingPerWeek int `json:"training_per_week"`
	TrainingNeeded  int `json:"training_needed"`
	TrainingCost    int `json:"training_cost"` // per training
	CostumeCost     int `json:"costume_cost"`

	IsTeamProject bool   `json:"is_team_project"`
	IsCollab      bool   `json:"is_collab"`
	TeamID        string `json:"team_id,omitempty"`
	ContactNPCID  string `json:"contact_npc_id,omitempty"`

	// Player commitment, set at acceptance.
	BaseTraining  int `json:"base_training"`
	ExtraTraining int `json:"extra_training"`

	Status             Status  `json:"status"`
	DaysActive         int     `json:"days_active"`
	TrainingsCompleted float64 `json:"trainings_completed"`

	NeedsFunding       bool `json:"needs_funding"`
	FundingNoticeShown bool `json:"funding_notice_shown"`

	// Costume sub-workflow.
	CostumePaid         bool              `json:"costume_paid"`
	CostumeLocked       bool              `json:"costume_locked"`
	CostumeMatchPercent int               `json:"costume_match_percent"`
	CostumeSavedMoney   int               `json:"costume_saved_money"`
	CostumeRequested    bool              `json:"costume_requested"`
	CostumeRetryAbsDay  int               `json:"costume_retry_abs_day"`
	BestSelection       costume.Selection `json:"best_selection"`
	DeadlineExtension   int               `json:"deadline_extension"`

	// Terminal outcome.
	Success         bool      `json:"success"`
	Likes           int       `json:"likes"`
	Dislikes        int       `json:"dislikes"`
	Comments        []Comment `json:"comments"`
	CompletedAbsDay int       `json:"completed_abs_day"`

	CreatedAbsDay  int `json:"created_abs_day"`
	AcceptedAbsDay int `json:"accepted_abs_day"`
}

// WeeklyCommitment is how many trainings the player attempts per week.
func (p *Project) WeeklyCommitment() int {
	return p.BaseTraining + p.ExtraTraining
}

// Progress returns completion in percent.
func (p *Project) Progress() float64 {
	if p.TrainingNeeded <= 0 {
		return 100
	}
	pct := p.TrainingsCompleted / float64(p.TrainingNeeded) * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

// DeadlineDays is the day budget including any costume-failure extension.
func (p *Project) DeadlineDays() int {
	return p.DurationWeeks*calendar.DaysPerWeek + p.DeadlineExtension
}

// CostumeRequired reports whether this project carries a costume budget.
func (p *Project) CostumeRequired() bool {
	return p.CostumeCost > 0
}

// OutcomeKind is what a daily tick asks the scheduler to do next.
type OutcomeKind int

const (
	// OutcomeContinue means the project keeps running.
	OutcomeContinue OutcomeKind = iota
	// OutcomeRequestCostume suspends the flow until the player submits a
	// costume selection.
	OutcomeRequestCostume
	// OutcomeCompleted means the project hit a terminal state this tick.
	OutcomeCompleted
)

// FailureReason explains a terminal failure.
type FailureReason int

const (
	FailureNone FailureReason = iota
	FailureDeadline
	FailureCostumeUnpaid
	FailureSkillGap
)

// TickInput carries the player-side values a daily tick needs. The caller
// resolves effects and tiredness into the efficiency and cost multiplier.
type TickInput struct {
	AbsDay         int
	Efficiency     float64
	CostMultiplier float64
	Money          int
}

// TickResult is the outcome of one daily tick for one project.
type TickResult struct {
	Outcome         OutcomeKind
	Failure         FailureReason
	MoneySpent      int
	SessionsAccrued float64 // training sessions credited this day
	FundingNotice   bool    // one-shot: surfaced only the day funding first ran out
}

// Tick advances an active project by one day. Completion rolls (success
// chance, public reaction) are the caller's job via Resolve; a Completed
// outcome here only marks the terminal condition.
func (p *Project) Tick(in TickInput) TickResult {
	if p.Status != StatusActive {
		return TickResult{Outcome: OutcomeContinue}
	}

	p.DaysActive++

	if p.DaysActive > p.DeadlineDays() {
		return TickResult{Outcome: OutcomeCompleted, Failure: FailureDeadline}
	}

	// A finished or training-free project waits for external resolution.
	if p.TrainingsCompleted >= float64(p.TrainingNeeded) {
		return p.maybeComplete(in)
	}

	if p.NeedsFunding {
		notice := !p.FundingNoticeShown
		p.FundingNoticeShown = true
		return TickResult{Outcome: OutcomeContinue, FundingNotice: notice}
	}

	daily := float64(p.WeeklyCommitment()) / float64(calendar.DaysPerWeek)
	cost := int(math.Ceil(daily * float64(p.TrainingCost) * in.CostMultiplier))
	if cost > in.Money {
		p.NeedsFunding = true
		notice := !p.FundingNoticeShown
		p.FundingNoticeShown = true
		return TickResult{Outcome: OutcomeContinue, FundingNotice: notice}
	}

	accrued := daily * in.Efficiency
	p.TrainingsCompleted += accrued
	if p.TrainingsCompleted > float64(p.TrainingNeeded) {
		p.TrainingsCompleted = float64(p.TrainingNeeded)
	}

	res := TickResult{Outcome: OutcomeContinue, MoneySpent: cost, SessionsAccrued: accrued}

	// First crossing of 50% with the costume still open suspends the flow
	// for a costume choice.
	if p.CostumeRequired() && !p.CostumePaid && !p.CostumeLocked && !p.CostumeRequested &&
		p.Progress() >= 50 && in.AbsDay >= p.CostumeRetryAbsDay {
		p.CostumeRequested = true
		res.Outcome = OutcomeRequestCostume
		return res
	}

	if p.TrainingsCompleted >= float64(p.TrainingNeeded) {
		done := p.maybeComplete(in)
		done.MoneySpent = res.MoneySpent
		done.SessionsAccrued = res.SessionsAccrued
		return done
	}
	return res
}

// maybeComplete checks the terminal condition at full progress. A pending
// costume choice blocks completion; an unpaid required costume forces a
// failure.
func (p *Project) maybeComplete(in TickInput) TickResult {
	if p.CostumeRequired() && !p.CostumePaid {
		if p.CostumeRequested || in.AbsDay < p.CostumeRetryAbsDay {
			// Choice outstanding or in the retry cool-off: hold.
			return TickResult{Outcome: OutcomeContinue}
		}
		if !p.CostumeLocked {
			p.CostumeRequested = true
			return TickResult{Outcome: OutcomeRequestCostume}
		}
		return TickResult{Outcome: OutcomeCompleted, Failure: FailureCostumeUnpaid}
	}
	return TickResult{Outcome: OutcomeCompleted}
}

// FundTraining clears the funding block after an explicit payment. Returns
// the cost deducted, or -1 when money does not cover one day of training.
func (p *Project) FundTraining(money int, costMultiplier float64) int {
	daily := float64(p.WeeklyCommitment()) / float64(calendar.DaysPerWeek)
	cost := int(math.Ceil(daily * float64(p.TrainingCost) * costMultiplier))
	if cost > money {
		return -1
	}
	p.NeedsFunding = false
	p.FundingNoticeShown = false
	return cost
}

// ExtraTrainingLimit caps extra weekly trainings by how many projects run in
// parallel.
func ExtraTrainingLimit(activeProjects int) int {
	switch activeProjects {
	case 0, 1:
		return 7
	case 2:
		return 5
	case 3:
		return 3
	case 4:
		return 1
	default:
		return 0
	}
}
