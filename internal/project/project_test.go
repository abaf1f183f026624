package project

import (
	"math"
	"math/rand"
	"testing"

	"github.com/talgya/cover-life/internal/catalog"
)

func testProject() *Project {
	return &Project{
		ID:              "prj_test",
		Name:            "Test Cover",
		RequiredStyle:   catalog.StyleFemale,
		MinSkill:        300,
		MinSkillF:       300,
		DurationWeeks:   4,
		TrainingPerWeek: 2,
		TrainingNeeded:  6,
		TrainingCost:    200,
		CostumeCost:     0,
		BaseTraining:    2,
		Status:          StatusActive,
		CostumeRetryAbsDay: 0,
	}
}

func TestTickAccrualAndCost(t *testing.T) {
	p := testProject()

	spent := 0
	for day := 1; day <= 7; day++ {
		res := p.Tick(TickInput{AbsDay: day, Efficiency: 1.0, CostMultiplier: 1.0, Money: 100000})
		if res.Outcome != OutcomeContinue {
			t.Fatalf("day %d: outcome = %v, want continue", day, res.Outcome)
		}
		spent += res.MoneySpent
	}

	// One week at 2 trainings/week accrues 2.0 trainings of the 6 needed.
	if math.Abs(p.TrainingsCompleted-2.0) > 1e-9 {
		t.Fatalf("trainings completed = %v, want 2.0", p.TrainingsCompleted)
	}
	if pct := p.Progress(); math.Abs(pct-100.0/3) > 0.01 {
		t.Fatalf("progress = %v, want ~33.33", pct)
	}

	// Daily cost is ceil((2/7)*200) = 58.
	if want := 7 * 58; spent != want {
		t.Fatalf("money spent = %d, want %d", spent, want)
	}
}

func TestTickDeadline(t *testing.T) {
	p := testProject()
	p.DaysActive = p.DurationWeeks * 7

	res := p.Tick(TickInput{AbsDay: 100, Efficiency: 1.0, CostMultiplier: 1.0, Money: 1000})
	if res.Outcome != OutcomeCompleted || res.Failure != FailureDeadline {
		t.Fatalf("outcome = %v failure = %v, want completed/deadline", res.Outcome, res.Failure)
	}
}

func TestTickFundingBlock(t *testing.T) {
	p := testProject()

	res := p.Tick(TickInput{AbsDay: 1, Efficiency: 1.0, CostMultiplier: 1.0, Money: 10})
	if !p.NeedsFunding {
		t.Fatal("expected needsFunding after unaffordable day")
	}
	if !res.FundingNotice {
		t.Fatal("expected a funding notice on the first blocked day")
	}
	if p.TrainingsCompleted != 0 {
		t.Fatalf("trainings accrued while unfunded: %v", p.TrainingsCompleted)
	}

	// The notice is one-shot.
	res = p.Tick(TickInput{AbsDay: 2, Efficiency: 1.0, CostMultiplier: 1.0, Money: 10})
	if res.FundingNotice {
		t.Fatal("funding notice repeated")
	}

	if cost := p.FundTraining(10, 1.0); cost != -1 {
		t.Fatalf("FundTraining with thin wallet = %d, want -1", cost)
	}
	if cost := p.FundTraining(1000, 1.0); cost != 58 {
		t.Fatalf("FundTraining = %d, want 58", cost)
	}
	if p.NeedsFunding {
		t.Fatal("needsFunding not cleared by funding")
	}
}

func TestTickCostumeRequest(t *testing.T) {
	p := testProject()
	p.CostumeCost = 3000
	p.TrainingsCompleted = 2.9 // next tick crosses 50% of 6

	res := p.Tick(TickInput{AbsDay: 10, Efficiency: 1.0, CostMultiplier: 1.0, Money: 100000})
	if res.Outcome != OutcomeRequestCostume {
		t.Fatalf("outcome = %v, want costume request", res.Outcome)
	}
	if !p.CostumeRequested {
		t.Fatal("costumeRequested not set")
	}

	// While the choice is pending the project holds at full progress.
	p.TrainingsCompleted = float64(p.TrainingNeeded)
	res = p.Tick(TickInput{AbsDay: 11, Efficiency: 1.0, CostMultiplier: 1.0, Money: 100000})
	if res.Outcome != OutcomeContinue {
		t.Fatalf("outcome with pending costume = %v, want continue", res.Outcome)
	}

	// A locked, unpaid costume at full progress is a forced failure.
	p.CostumeRequested = false
	p.CostumeLocked = true
	res = p.Tick(TickInput{AbsDay: 12, Efficiency: 1.0, CostMultiplier: 1.0, Money: 100000})
	if res.Outcome != OutcomeCompleted || res.Failure != FailureCostumeUnpaid {
		t.Fatalf("outcome = %v failure = %v, want completed/costume-unpaid", res.Outcome, res.Failure)
	}
}

func TestGeneratorBounds(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(7)))
	player := PlayerSkills{FSkill: 120, MSkill: 80}

	for i := 0; i < 300; i++ {
		p := g.FromTemplate(catalog.ProjectTemplates[i%len(catalog.ProjectTemplates)], player, 0)
		if p.DurationWeeks < 2 || p.DurationWeeks > 20 {
			t.Fatalf("duration %d out of range", p.DurationWeeks)
		}
		if p.TrainingPerWeek != 2 && p.TrainingPerWeek != 3 {
			t.Fatalf("training cadence %d", p.TrainingPerWeek)
		}
		if want := (p.DurationWeeks - 1) * p.TrainingPerWeek; p.TrainingNeeded != want {
			t.Fatalf("trainingNeeded = %d, want %d", p.TrainingNeeded, want)
		}
		if p.TrainingCost < 150 || p.TrainingCost > 400 {
			t.Fatalf("training cost %d out of range", p.TrainingCost)
		}
		wantCostume := 3000
		if p.DurationWeeks > 8 {
			wantCostume = 5000
		}
		if p.CostumeCost != wantCostume {
			t.Fatalf("costume cost %d for %d weeks", p.CostumeCost, p.DurationWeeks)
		}
		if p.RequiredStyle == catalog.StyleBoth {
			if p.StyleMix < 30 || p.StyleMix > 70 {
				t.Fatalf("style mix %d out of range", p.StyleMix)
			}
		}
		if p.MinSkill < 0 {
			t.Fatalf("negative min skill %d", p.MinSkill)
		}
	}
}

func TestGeneratePoolSplit(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(3)))
	pool := g.GeneratePool(20, PlayerSkills{FSkill: 100, MSkill: 100}, 0)
	if len(pool) != 20 {
		t.Fatalf("pool size = %d, want 20", len(pool))
	}

	counts := map[catalog.StyleTag]int{}
	for _, p := range pool {
		counts[p.RequiredStyle]++
	}
	if counts[catalog.StyleFemale] != 8 || counts[catalog.StyleMale] != 8 || counts[catalog.StyleBoth] != 4 {
		t.Fatalf("style split = %v, want 8/8/4", counts)
	}
}

func TestAgePool(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)))

	fresh := &Project{ID: "a", CreatedAbsDay: 100}
	stale := &Project{ID: "b", CreatedAbsDay: 100}

	kept := g.AgePool([]*Project{fresh}, 100+14)
	if len(kept) != 1 {
		t.Fatal("offer under three weeks old removed")
	}
	kept = g.AgePool([]*Project{stale}, 100+35)
	if len(kept) != 0 {
		t.Fatal("offer past week five survived")
	}
}

func TestTeamProject(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(9)))
	p := g.TeamProject("team_1", catalog.StyleFemale, 400, PlayerSkills{FSkill: 350, MSkill: 250}, 50)
	if !p.IsTeamProject || p.TeamID != "team_1" {
		t.Fatal("team project flags not set")
	}
	switch p.RequiredStyle {
	case catalog.StyleBoth:
		if p.MinSkillF != 240 || p.MinSkillM != 240 {
			t.Fatalf("mixed team min skill = %d/%d, want 240/240", p.MinSkillF, p.MinSkillM)
		}
	case catalog.StyleFemale:
		if p.MinSkill != 400 {
			t.Fatalf("team min skill = %d, want 400", p.MinSkill)
		}
	default:
		t.Fatalf("style %q does not match an F-dominant team", p.RequiredStyle)
	}
}

func TestCollabProject(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(2)))
	p := g.CollabProject("npc_1", "Yuna", catalog.StyleFemale, 500, 120, 30)
	if p.DurationWeeks != 2 || p.TrainingNeeded != 2 {
		t.Fatalf("collab shape = %d weeks / %d trainings", p.DurationWeeks, p.TrainingNeeded)
	}
	if p.TrainingCost != 1200 || p.CostumeCost != 1800 {
		t.Fatalf("collab costs = %d/%d, want 1200/1800", p.TrainingCost, p.CostumeCost)
	}
	if !p.IsCollab || p.ContactNPCID != "npc_1" {
		t.Fatal("collab identity fields not set")
	}
}

func TestGapPenalty(t *testing.T) {
	cases := []struct {
		gap  int
		want float64
	}{
		{30, 0.7},
		{15, 0.85},
		{5, 0.95},
		{0, 1.0},
		{-50, 1.0},
	}
	for _, c := range cases {
		if got := gapPenalty(c.gap); got != c.want {
			t.Fatalf("gapPenalty(%d) = %v, want %v", c.gap, got, c.want)
		}
	}
}

func TestResolveReaction(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(4)))

	sawSuccess := false
	sawFailure := false
	for i := 0; i < 200 && !(sawSuccess && sawFailure); i++ {
		p := testProject()
		p.MinSkill = 400 // gap 100 against the test player
		p.CostumeSavedMoney = 500
		res := g.Resolve(p, ResolveInput{
			PlayerFSkill: 300, PlayerMSkill: 300,
			Reputation: 100, Popularity: 250,
			RepModifier: 1, PopModifier: 1, Hype: 1,
		})
		if res.Success {
			sawSuccess = true
			if len(res.Comments) < 3 {
				t.Fatalf("success with %d comments, want >= 3", len(res.Comments))
			}
			if len(res.Comments) != 25 {
				t.Fatalf("comment count = %d, want popularity/10 = 25", len(res.Comments))
			}
			if res.ReputationDelta < 10 || res.ReputationDelta > 40 {
				t.Fatalf("reputation delta %d out of range", res.ReputationDelta)
			}
			if res.PopularityDelta < 20 || res.PopularityDelta > 80 {
				t.Fatalf("popularity delta %d out of range", res.PopularityDelta)
			}
		} else {
			sawFailure = true
			if len(res.Comments) != 0 || res.Likes != 0 {
				t.Fatal("failed cover generated a public reaction")
			}
			if res.CostumeRefund != 500 {
				t.Fatalf("costume refund = %d, want 500", res.CostumeRefund)
			}
		}
	}
	if !sawSuccess || !sawFailure {
		t.Fatalf("wanted both outcomes over 200 rolls, success=%v failure=%v", sawSuccess, sawFailure)
	}
}

func TestReactionCeilingWithMatchedCostume(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(11)))
	p := testProject()
	p.CostumeMatchPercent = 90

	res := ResolveResult{}
	g.react(p, ResolveInput{Reputation: 200, Popularity: 3000, Hype: 1}, &res)

	if len(res.Comments) != 300 {
		t.Fatalf("comment count = %d, want popularity/10 = 300", len(res.Comments))
	}
	// Reputation pins the chance at the 0.95 ceiling and the matched
	// costume lifts it past certainty, so the whole thread is positive.
	for _, c := range res.Comments {
		if !c.Positive {
			t.Fatal("negative comment in a pinned-positive thread")
		}
	}
	if res.Dislikes != 0 {
		t.Fatalf("dislikes = %d, want 0", res.Dislikes)
	}
}

func TestAbandonRefund(t *testing.T) {
	p := testProject()
	p.CostumeSavedMoney = 900
	p.TrainingsCompleted = 1 // under 50%
	if refund := p.Abandon(); refund != 900 {
		t.Fatalf("refund = %d, want 900", refund)
	}

	p = testProject()
	p.CostumeSavedMoney = 900
	p.TrainingsCompleted = 4 // over 50%
	if refund := p.Abandon(); refund != 0 {
		t.Fatalf("refund = %d, want 0", refund)
	}
}

func TestExtraTrainingLimit(t *testing.T) {
	cases := map[int]int{1: 7, 2: 5, 3: 3, 4: 1, 5: 0, 9: 0}
	for active, want := range cases {
		if got := ExtraTrainingLimit(active); got != want {
			t.Fatalf("ExtraTrainingLimit(%d) = %d, want %d", active, got, want)
		}
	}
}
