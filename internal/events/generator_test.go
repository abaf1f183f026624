package events

import (
	"math/rand"
	"testing"

	"github.com/talgya/cover-life/internal/catalog"
	"github.com/talgya/cover-life/internal/npc"
	"github.com/talgya/cover-life/internal/player"
	"github.com/talgya/cover-life/internal/project"
	"github.com/talgya/cover-life/internal/team"
)

func testInput(absDay int) Input {
	p := player.New("p1", "Mina")
	return Input{
		AbsDay: absDay,
		Player: p,
		NPCs:   npc.NewRoster(nil),
		Teams:  team.NewIndex(nil),
	}
}

func newTestGenerator(seed int64) *Generator {
	rng := rand.New(rand.NewSource(seed))
	return NewGenerator(rng, project.NewGenerator(rng))
}

func TestQuietOpeningDays(t *testing.T) {
	g := newTestGenerator(1)
	for day := 0; day < quietOpeningDays; day++ {
		in := testInput(day)
		// Force an otherwise guaranteed rule.
		in.Player.LastTrainedAbsDay = 0
		if evt := g.Generate(in); evt != nil {
			t.Fatalf("day %d: event %q during the quiet opening", day, evt.Title)
		}
	}
}

func TestGlobalRateLimit(t *testing.T) {
	g := newTestGenerator(1)
	in := testInput(50)
	in.Player.LastTrainedAbsDay = 10 // 40 idle days: stagnation fires

	evt := g.Generate(in)
	if evt == nil {
		t.Fatal("expected a stagnation event")
	}

	// The next day is inside the 2-day window; even a guaranteed rule must
	// stay quiet.
	in.AbsDay = 51
	in.Player.StagnationWarnedAbsDay = -1
	if evt := g.Generate(in); evt != nil {
		t.Fatalf("event %q inside the rate-limit window", evt.Title)
	}
}

func TestStagnation(t *testing.T) {
	g := newTestGenerator(1)
	in := testInput(60)
	in.Player.FSkill = 200
	in.Player.MSkill = 100
	in.Player.LastTrainedAbsDay = 20

	evt := g.Generate(in)
	if evt == nil || evt.Title != "Out of Shape" {
		t.Fatalf("evt = %+v, want stagnation", evt)
	}
	if evt.Effect.FSkill != -20 || evt.Effect.MSkill != -10 {
		t.Fatalf("skill hit = %d/%d, want -20/-10", evt.Effect.FSkill, evt.Effect.MSkill)
	}

	// It does not repeat until the player trains again.
	in.AbsDay = 70
	if evt := g.Generate(in); evt != nil && evt.Title == "Out of Shape" {
		t.Fatal("stagnation fired twice for one idle streak")
	}
}

func TestProjectCancellationLimiter(t *testing.T) {
	in := testInput(100)
	in.ActiveProjects = []*project.Project{{ID: "prj_1", Name: "Test Cover", Status: project.StatusActive}}
	in.Player.AcceptedSinceFailure = 3

	// Below the shared limiter the rule never fires, whatever the roll.
	for seed := int64(0); seed < 30; seed++ {
		g := newTestGenerator(seed)
		if evt := g.projectCancellation(in); evt != nil {
			t.Fatalf("seed %d: cancellation below the accepted floor", seed)
		}
	}

	in.Player.AcceptedSinceFailure = 7
	fired := false
	for seed := int64(0); seed < 200 && !fired; seed++ {
		g := newTestGenerator(seed)
		if evt := g.projectCancellation(in); evt != nil {
			fired = true
			if evt.Effect.CancelProjectID != "prj_1" {
				t.Fatalf("cancelled %q", evt.Effect.CancelProjectID)
			}
			if in.Player.AcceptedSinceFailure != 0 {
				t.Fatal("limiter not reset after cancellation")
			}
		}
	}
	if !fired {
		t.Fatal("cancellation never fired over 200 seeds")
	}
}

func TestTeamInvitationGates(t *testing.T) {
	mkTeam := func(skill int) *team.Team {
		return &team.Team{
			ID: "team_1", Name: "Nova", Skill: skill, Rating: skill,
			DominantStyle:    catalog.StyleFemale,
			MemberIDs:        []string{"a", "b", "c"},
			LastInviteAbsDay: -1,
		}
	}

	t.Run("skill gap filter", func(t *testing.T) {
		g := newTestGenerator(3)
		in := testInput(100)
		in.Player.FSkill = 100
		in.Player.MSkill = 100
		in.Teams = team.NewIndex([]*team.Team{mkTeam(200)}) // gap 100 > 18

		for day := 100; day < 400; day += 31 {
			in.AbsDay = day
			if evt := g.teamInvitation(in); evt != nil {
				t.Fatalf("invite from a team %d points stronger", 100)
			}
		}
	})

	t.Run("invite within gap", func(t *testing.T) {
		in := testInput(100)
		in.Player.FSkill = 100
		in.Player.MSkill = 100
		in.Teams = team.NewIndex([]*team.Team{mkTeam(110)}) // gap 10 <= 18

		fired := false
		for seed := int64(0); seed < 50 && !fired; seed++ {
			g := newTestGenerator(seed)
			if evt := g.teamInvitation(in); evt != nil {
				fired = true
				if evt.Choices[0].Effect.JoinTeamID != "team_1" {
					t.Fatalf("accept choice joins %q", evt.Choices[0].Effect.JoinTeamID)
				}
				if in.Player.LastTeamInviteAbsDay != 100 {
					t.Fatal("global invite tracker not stamped")
				}
			}
			in.Player.LastTeamInviteAbsDay = -1 // reset for the next seed
		}
		if !fired {
			t.Fatal("no invite over 50 seeds")
		}
	})

	t.Run("two refusals stop invites", func(t *testing.T) {
		in := testInput(100)
		in.Player.FSkill = 100
		in.Player.MSkill = 100
		refused := mkTeam(110)
		refused.InviteRefusals = 2
		in.Teams = team.NewIndex([]*team.Team{refused})

		for seed := int64(0); seed < 50; seed++ {
			g := newTestGenerator(seed)
			if evt := g.teamInvitation(in); evt != nil {
				t.Fatal("invite after two refusals")
			}
		}
	})

	t.Run("in-team tenure gate", func(t *testing.T) {
		in := testInput(200)
		in.Player.FSkill = 100
		in.Player.MSkill = 100
		current := mkTeam(110)
		current.ID = "team_current"
		in.PlayerTeam = current
		in.Player.TeamID = current.ID
		in.Player.LastTeamJoinAbsDay = 100 // 100 days on the team, needs 180
		rival := mkTeam(110)
		rival.ID = "team_rival"
		in.Teams = team.NewIndex([]*team.Team{current, rival})

		for seed := int64(0); seed < 50; seed++ {
			g := newTestGenerator(seed)
			if evt := g.teamInvitation(in); evt != nil {
				t.Fatal("rival invite before six months of membership")
			}
		}
	})
}

func TestTeamConflictTwoStrike(t *testing.T) {
	in := testInput(100)
	roster := npc.NewRoster(nil)
	in.NPCs = roster
	in.PlayerTeam = &team.Team{
		ID: "team_1", Name: "Nova", OfferRefusals: 2,
		MemberIDs: []string{},
	}
	in.Player.TeamID = "team_1"

	var g *Generator
	warned := false
	for seed := int64(0); seed < 300 && !warned; seed++ {
		g = newTestGenerator(seed)
		if evt := g.teamConflict(in); evt != nil {
			if evt.Effect.ExpelFromTeamID != "" {
				t.Fatal("expelled without a prior warning")
			}
			if evt.Title == "Serious Team Conflict" {
				warned = true
				if !in.Player.AtRiskOfExpulsion {
					t.Fatal("warning did not flag the player")
				}
			} else {
				continue
			}
		}
	}
	if !warned {
		t.Fatal("serious conflict never fired")
	}

	// Flagged player: the next qualifying trigger executes the expulsion.
	expelled := false
	for i := 0; i < 300 && !expelled; i++ {
		if evt := g.teamConflict(in); evt != nil {
			expelled = true
			if evt.Effect.ExpelFromTeamID != "team_1" {
				t.Fatalf("expulsion targets %q", evt.Effect.ExpelFromTeamID)
			}
			if in.Player.AtRiskOfExpulsion {
				t.Fatal("risk flag not cleared by the expulsion")
			}
		}
	}
	if !expelled {
		t.Fatal("expulsion never fired for a flagged player")
	}
}

func TestTeamProjectOfferScheduling(t *testing.T) {
	g := newTestGenerator(11)
	in := testInput(100)
	in.Player.FSkill = 100
	in.Player.MSkill = 100

	roster := npc.NewRoster(nil)
	in.NPCs = roster
	in.PlayerTeam = &team.Team{
		ID: "team_1", Name: "Nova",
		DominantStyle:          catalog.StyleFemale,
		NextProjectOfferAbsDay: 105,
	}

	if evt := g.teamProjectOffer(in); evt != nil {
		t.Fatal("offer before its scheduled day")
	}

	in.AbsDay = 105
	evt := g.teamProjectOffer(in)
	if evt == nil {
		t.Fatal("no offer on the scheduled day")
	}
	if evt.Choices[0].Effect.TeamProject == nil || !evt.Choices[0].Effect.TeamProject.IsTeamProject {
		t.Fatal("accept choice carries no team project")
	}
	if in.PlayerTeam.NextProjectOfferAbsDay != -1 {
		t.Fatal("schedule not cleared after the offer")
	}
}

func TestFestivalLifecycle(t *testing.T) {
	g := newTestGenerator(21)
	in := testInput(300)
	in.NPCs = npc.NewRoster(nil)
	in.PlayerTeam = &team.Team{ID: "team_1", Name: "Nova", Skill: 300}
	in.Player.TeamID = "team_1"

	// Past the max gap the announcement is forced.
	evt := g.festivalAnnouncement(in)
	if evt == nil || evt.Title != "Festival Announcement" {
		t.Fatalf("evt = %+v, want an announcement", evt)
	}
	if !g.festivalScheduled || g.festivalAbsDay != 307 {
		t.Fatalf("festival scheduled for day %d, want 307", g.festivalAbsDay)
	}

	// Nothing resolves before the scheduled day.
	in.AbsDay = 305
	if evt := g.festivalResolution(in); evt != nil {
		t.Fatal("festival resolved early")
	}

	in.AbsDay = 307
	evt = g.festivalResolution(in)
	if evt == nil || evt.Kind != KindFestival {
		t.Fatalf("evt = %+v, want a festival resolution", evt)
	}
	if evt.Festival == nil || evt.Festival.PrizePool <= 0 {
		t.Fatal("festival data missing")
	}
	if evt.Effect.FestivalWin != evt.Festival.PlayerWins {
		t.Fatal("win flag mismatch")
	}
}

func TestFestivalCancelledOnTeamChange(t *testing.T) {
	g := newTestGenerator(21)
	in := testInput(300)
	in.NPCs = npc.NewRoster(nil)
	in.PlayerTeam = &team.Team{ID: "team_1", Name: "Nova", Skill: 300}

	if evt := g.festivalAnnouncement(in); evt == nil {
		t.Fatal("no announcement")
	}

	in.AbsDay = 307
	in.PlayerTeam = nil
	if evt := g.festivalResolution(in); evt != nil {
		t.Fatal("festival resolved after the player left the team")
	}
	if g.festivalScheduled {
		t.Fatal("festival still scheduled after cancel")
	}
}
