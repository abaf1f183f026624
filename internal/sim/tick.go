package sim

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/talgya/cover-life/internal/calendar"
	"github.com/talgya/cover-life/internal/effects"
	"github.com/talgya/cover-life/internal/events"
	"github.com/talgya/cover-life/internal/inbox"
	"github.com/talgya/cover-life/internal/npc"
	"github.com/talgya/cover-life/internal/project"
	"github.com/talgya/cover-life/internal/shop"
	"github.com/talgya/cover-life/internal/team"
)

// Daily decay and monthly batch tuning. Skill decay carries its fraction
// between days and never drops a track below its tier floor.
const (
	dailyTirednessRecovery = 1
	tiredPerSession        = 2.0 / 3.0
	dailySkillDecay        = 0.05

	tierFloorMid = 31
	tierFloorPro = 85

	npcSwitchCheckGapDays = 60
)

// AdvanceDay runs one simulated day. It is a no-op while a popup phase is
// pending; the caller drives it from the engine's day callback.
func (s *Simulation) AdvanceDay() {
	st := s.State
	if st.Ended || st.Phase != PhaseIdle {
		return
	}

	st.Time = st.Time.Next()
	st.TodayParticipants = st.TodayParticipants[:0]
	abs := st.Time.AbsDay()

	if st.Time.AtHorizon() {
		s.endGame()
		return
	}

	s.runStep("decay", func() { s.applyDecay() })
	s.runStep("effects", func() { s.expireEffects(abs) })
	s.runStep("projects", func() { s.tickProjects(abs) })
	s.runStep("tiredness", func() { s.applyTiredness(abs) })
	s.runStep("events", func() { s.proposeEvent(abs) })
	s.runStep("queues", func() { s.resolveQueues(abs) })
	if st.Time.Day == 0 {
		s.runStep("monthly", func() { s.monthlyBatch(abs) })
	}
	if abs%calendar.DaysPerWeek == 0 {
		st.Player.Weekly.Reset()
	}
	s.runStep("greetings", func() { s.calendarMessages(abs) })
	if abs > 0 && abs%project.RefillInterval == 0 {
		s.runStep("pool", func() { s.maintainPool(abs) })
	}
}

// runStep contains a panic to the failing subsystem so one bad day step
// cannot take the whole game down.
func (s *Simulation) runStep(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("day step failed", "step", name, "panic", r)
		}
	}()
	fn()
}

func (s *Simulation) applyDecay() {
	p := s.State.Player

	s.State.DecayCarryF += dailySkillDecay
	s.State.DecayCarryM += dailySkillDecay
	firstYear := s.State.Time.Year == 0
	if s.State.DecayCarryF >= 1 {
		drop := int(s.State.DecayCarryF)
		s.State.DecayCarryF -= float64(drop)
		p.FSkill = maxIntSim(p.FSkill-drop, tierFloor(p.FSkill, firstYear))
	}
	if s.State.DecayCarryM >= 1 {
		drop := int(s.State.DecayCarryM)
		s.State.DecayCarryM -= float64(drop)
		p.MSkill = maxIntSim(p.MSkill-drop, tierFloor(p.MSkill, firstYear))
	}
}

// tierFloor is the lowest value decay can reach. The first year is
// forgiving: a track never decays out of its tier. After that decay is
// unbounded.
func tierFloor(skill int, firstYear bool) int {
	if !firstYear {
		return 0
	}
	switch {
	case skill >= tierFloorPro:
		return tierFloorPro
	case skill >= tierFloorMid:
		return tierFloorMid
	default:
		return 0
	}
}

func (s *Simulation) expireEffects(abs int) {
	p := s.State.Player
	expired := p.Effects.ExpireThrough(abs)
	for _, label := range expired {
		s.log.Info("effect expired", "label", label, "day", s.State.Time.String())
	}
	if delta := p.Effects.DailyTiredDelta(); delta != 0 {
		p.AddTiredness(int(delta))
	}
}

func (s *Simulation) tickProjects(abs int) {
	st := s.State
	p := st.Player

	for _, prj := range append([]*project.Project(nil), st.ActiveProjects...) {
		in := project.TickInput{
			AbsDay:         abs,
			Efficiency:     p.Effects.TrainingEfficiency(float64(p.Tiredness)),
			CostMultiplier: p.Effects.TrainingCostMultiplier(),
			Money:          p.Money,
		}
		res := prj.Tick(in)
		if res.SessionsAccrued > 0 {
			st.TiredCarry += tiredPerSession * res.SessionsAccrued
		}
		if res.MoneySpent > 0 {
			p.Spend(res.MoneySpent)
			st.Expenses.Add(shop.ExpenseTraining, res.MoneySpent, abs)
			if p.LastTrainedAbsDay != abs {
				p.LastTrainedAbsDay = abs
				s.recordSharedTraining()
			}
		}
		if res.FundingNotice {
			st.Inbox.Post(inbox.Message{
				Kind:  inbox.KindChat,
				Title: "Training On Hold",
				Body:  fmt.Sprintf("Not enough money to keep training for %q. Top up or the deadline will catch you.", prj.Name),
			})
		}

		switch res.Outcome {
		case project.OutcomeRequestCostume:
			st.Phase = PhaseShowingCostume
			st.PendingCostumeProjectID = prj.ID
			return
		case project.OutcomeCompleted:
			s.finishProject(prj, res.Failure, abs)
			if st.Phase != PhaseIdle {
				return
			}
		}
	}
}

// applyTiredness settles the day's fatigue. A training day accrues
// tiredness per session plus one point per active project; a rest day
// recovers one point.
func (s *Simulation) applyTiredness(abs int) {
	st := s.State
	p := st.Player
	if p.LastTrainedAbsDay == abs {
		st.TiredCarry += float64(len(st.ActiveProjects))
		if gain := int(st.TiredCarry); gain > 0 {
			st.TiredCarry -= float64(gain)
			p.AddTiredness(gain)
		}
		return
	}
	p.AddTiredness(-dailyTirednessRecovery)
}

// finishProject runs the terminal roll for a project that hit completion or
// a hard failure this tick.
func (s *Simulation) finishProject(prj *project.Project, failure project.FailureReason, abs int) {
	st := s.State
	p := st.Player
	s.removeActive(prj.ID)
	prj.CompletedAbsDay = abs
	s.refillAfterCompletion(abs)

	if failure != project.FailureNone {
		prj.Status = project.StatusFailed
		if !prj.CostumePaid && prj.CostumeSavedMoney > 0 {
			p.AddMoney(prj.CostumeSavedMoney)
			prj.CostumeSavedMoney = 0
		}
		// The penalty only lands on a player who has been coasting on a
		// long accepted streak.
		if p.AcceptedSinceFailure >= 7 {
			p.AddReputation(-5)
			p.Effects.Apply(effects.Effect{
				Kind:          effects.KindProjectRejectAdd,
				Label:         "Shaken Confidence",
				Magnitude:     0.3,
				ExpiresAbsDay: abs + 15,
			})
			p.AcceptedSinceFailure = 0
		}
		st.CompletedProjects = append(st.CompletedProjects, prj)
		st.Inbox.Post(inbox.Message{
			Kind:  inbox.KindChat,
			Title: "Cover Shelved",
			Body:  fmt.Sprintf("%q did not make it out. %s", prj.Name, failureText(failure)),
		})
		s.log.Info("project failed", "project", prj.Name, "reason", failure)
		return
	}

	res := s.projGen.Resolve(prj, project.ResolveInput{
		PlayerFSkill: p.FSkill,
		PlayerMSkill: p.MSkill,
		Reputation:   p.Reputation,
		Popularity:   p.Popularity,
		RepModifier:  p.Effects.ReputationModifier(),
		PopModifier:  p.Effects.PopularityModifier(),
		Hype:         s.hype.Hype(abs),
	})
	if res.CostumeRefund > 0 {
		p.AddMoney(res.CostumeRefund)
	}
	if res.Success {
		p.AddReputation(res.ReputationDelta)
		p.AddPopularity(res.PopularityDelta, abs)
		p.LastPostedAbsDay = abs
	}
	st.CompletedProjects = append(st.CompletedProjects, prj)

	st.Phase = PhaseShowingResult
	st.PendingResult = prj
	s.log.Info("project resolved",
		"project", prj.Name,
		"success", res.Success,
		"likes", res.Likes,
		"comments", len(res.Comments))
}

func failureText(reason project.FailureReason) string {
	switch reason {
	case project.FailureDeadline:
		return "The deadline passed before the routine was ready."
	case project.FailureCostumeUnpaid:
		return "No costume, no stage."
	case project.FailureSkillGap:
		return "The choreography was out of reach."
	default:
		return "It just fell apart."
	}
}

func (s *Simulation) proposeEvent(abs int) {
	st := s.State
	if st.Phase != PhaseIdle {
		return
	}
	evt := s.evtGen.Generate(events.Input{
		AbsDay:            abs,
		Player:            st.Player,
		NPCs:              st.NPCs,
		Teams:             st.Teams,
		PlayerTeam:        s.PlayerTeam(),
		ActiveProjects:    st.ActiveProjects,
		CompletedProjects: st.CompletedProjects,
		TodayParticipants: st.TodayParticipants,
	})
	if evt == nil {
		return
	}
	st.Phase = PhaseShowingEvent
	st.PendingEvent = evt
	s.log.Info("event fired", "kind", evt.Kind, "title", evt.Title)
}

func (s *Simulation) resolveQueues(abs int) {
	st := s.State
	p := st.Player

	apps, collabs := st.Queues.ResolveDue(abs, func(teamID string) bool {
		t := st.Teams.ByID(teamID)
		if t == nil || t.Disbanded {
			return false
		}
		gap := t.Skill - p.ComparableSkill(t.DominantStyle)
		return gap <= inbox.MaxApplicationSkillGap
	})

	for _, app := range apps {
		t := st.Teams.ByID(app.TeamID)
		name := app.TeamID
		if t != nil {
			name = t.Name
		}
		switch {
		case app.Accepted && t != nil && !p.OnTeam():
			s.joinTeam(t, abs)
			st.Inbox.Post(inbox.Message{
				Kind:  inbox.KindApplicationResult,
				Title: "Application Accepted",
				Body:  fmt.Sprintf("%s took you in. First team project offer is on its way.", name),
			})
		case app.Accepted && t != nil:
			st.Inbox.Post(inbox.Message{
				Kind:  inbox.KindApplicationResult,
				Title: "Offer Lapsed",
				Body:  fmt.Sprintf("%s would have taken you, but you are already on a team.", name),
			})
		default:
			st.Inbox.Post(inbox.Message{
				Kind:  inbox.KindApplicationResult,
				Title: "Application Declined",
				Body:  fmt.Sprintf("%s passed on your application this time.", name),
			})
		}
	}

	for _, c := range collabs {
		n := st.NPCs.ByID(c.NPCID)
		if n == nil {
			continue
		}
		if c.Accepted {
			s.startCollab(n, abs)
			st.Inbox.Post(inbox.Message{
				Kind:  inbox.KindCollabResponse,
				Title: "Collab Accepted",
				Body:  fmt.Sprintf("%s is in. Two weeks to pull the joint cover together.", n.Name),
			})
		} else {
			st.Inbox.Post(inbox.Message{
				Kind:  inbox.KindCollabResponse,
				Title: "Collab Declined",
				Body:  fmt.Sprintf("%s is too busy right now.", n.Name),
			})
		}
	}
}

// recordSharedTraining notes which teammates shared the studio today and
// applies the small relationship bump.
func (s *Simulation) recordSharedTraining() {
	t := s.PlayerTeam()
	if t == nil || len(t.MemberIDs) == 0 {
		return
	}
	count := 1 + s.rng.Intn(2)
	perm := s.rng.Perm(len(t.MemberIDs))
	for i := 0; i < count && i < len(perm); i++ {
		n := s.State.NPCs.ByID(t.MemberIDs[perm[i]])
		if n == nil || !n.Active {
			continue
		}
		s.State.TodayParticipants = append(s.State.TodayParticipants, n.ID)
		npc.AddRelationshipPoints(n, npc.BonusSharedTraining)
	}
}

// startCollab creates the joint project and puts it straight into the
// active list.
func (s *Simulation) startCollab(n *npc.NPC, abs int) {
	prj := s.projGen.CollabProject(n.ID, n.Name, n.DominantStyle(), n.DominantSkill(), n.Popularity, abs)
	prj.Status = project.StatusActive
	prj.AcceptedAbsDay = abs
	prj.BaseTraining = 2
	s.State.ActiveProjects = append(s.State.ActiveProjects, prj)
	npc.AddRelationshipPoints(n, npc.BonusCollabStart)
}

func (s *Simulation) monthlyBatch(abs int) {
	st := s.State

	// The community keeps growing one dancer a month.
	st.NPCs.Add(s.npcGen.Generate(abs))

	if abs-st.LastTeamFormedAbsDay >= newTeamMinGapDays &&
		(abs-st.LastTeamFormedAbsDay >= newTeamMaxGapDays || s.rng.Float64() < newTeamChance) {
		if t := s.teamGen.FormTeam(st.NPCs, st.Teams, abs); t != nil {
			st.LastTeamFormedAbsDay = abs
			s.log.Info("new team formed", "team", t.Name, "members", len(t.MemberIDs))
		}
	}

	for _, n := range st.NPCs.All {
		if !n.Active {
			continue
		}
		npc.ApplyMonthlyGrowth(n, s.rng)
		if abs-n.LastTeamChangeAbsDay >= npcSwitchCheckGapDays && npc.WantsTeamSwitch(n, abs, s.rng) {
			s.switchNPCTeam(n, abs)
		}
	}

	for _, t := range st.Teams.Active() {
		t.Recompute(st.NPCs, abs)
	}

	if st.Player.OnTeam() {
		st.Player.AddMoney(MonthlySalary)
		st.Inbox.Post(inbox.Message{
			Kind:  inbox.KindChat,
			Title: "Monthly Payout",
			Body:  fmt.Sprintf("Team activities brought in %s this month.", humanize.Comma(int64(MonthlySalary))),
		})
	}
}

func (s *Simulation) switchNPCTeam(n *npc.NPC, abs int) {
	st := s.State
	if n.TeamID != "" {
		if old := st.Teams.ByID(n.TeamID); old != nil {
			if err := old.RemoveMember(n.ID); err != nil {
				if st.Teams.Disband(old, st.NPCs) {
					s.leaveTeam()
					st.Inbox.Post(inbox.Message{
						Kind:   inbox.KindChat,
						TeamID: old.ID,
						Title:  "Team Disbanded",
						Body:   fmt.Sprintf("%s has fallen apart. You are on your own again.", old.Name),
					})
				}
			} else {
				old.Recompute(st.NPCs, abs)
			}
		}
		n.TeamID = ""
	}
	if t := st.Teams.PickCompatible(n, s.rng); t != nil {
		if t.AddMember(n.ID) == nil {
			n.TeamID = t.ID
			t.Recompute(st.NPCs, abs)
		}
	}
	n.LastTeamChangeAbsDay = abs
}

// calendarMessages posts birthday reminders and the New Year note.
func (s *Simulation) calendarMessages(abs int) {
	st := s.State

	for _, n := range st.NPCs.All {
		if !n.Active || !n.Acquainted() {
			continue
		}
		if calendar.IsBirthday(st.Time, n.BirthMonth, n.BirthDay) && n.BirthdayRemindedAbsDay != abs {
			n.BirthdayRemindedAbsDay = abs
			st.Inbox.Post(inbox.Message{
				Kind:      inbox.KindBirthday,
				Title:     "Birthday Today",
				Body:      fmt.Sprintf("It's %s's birthday. A greeting or a gift would not go unnoticed.", n.Name),
				FromNPCID: n.ID,
			})
		}
	}

	if calendar.IsNewYear(st.Time) && st.LastNewYearMsgYear != st.Time.Year {
		st.LastNewYearMsgYear = st.Time.Year
		st.Inbox.Post(inbox.Message{
			Kind:  inbox.KindNewYear,
			Title: "Happy New Year",
			Body:  "The whole scene is celebrating. New year, new covers.",
		})
	}
}

func (s *Simulation) maintainPool(abs int) {
	st := s.State
	st.AvailableProjects = s.projGen.AgePool(st.AvailableProjects, abs)

	room := project.PoolCap - len(st.AvailableProjects)
	batch := project.RefillBatch
	if batch > room {
		batch = room
	}
	if batch > 0 {
		fresh := s.projGen.GeneratePool(batch, s.playerSkills(), abs)
		st.AvailableProjects = append(st.AvailableProjects, fresh...)
	}
}

// refillAfterCompletion tops the board back up when a project leaves it.
func (s *Simulation) refillAfterCompletion(abs int) {
	st := s.State
	want := project.PoolCap - len(st.AvailableProjects)
	if want > project.RefillBatch {
		want = project.RefillBatch
	}
	if floor := 3 - len(st.AvailableProjects); floor > want {
		want = floor
	}
	if want > 0 {
		fresh := s.projGen.GeneratePool(want, s.playerSkills(), abs)
		st.AvailableProjects = append(st.AvailableProjects, fresh...)
	}
}

// endGame marks the horizon and posts the career summary.
func (s *Simulation) endGame() {
	st := s.State
	st.Ended = true
	p := st.Player

	succeeded := 0
	for _, prj := range st.CompletedProjects {
		if prj.Success {
			succeeded++
		}
	}

	st.Inbox.Post(inbox.Message{
		Kind:  inbox.KindCommunityNews,
		Title: "Five Years In The Scene",
		Body: fmt.Sprintf(
			"Career wrap: %d covers released (%d landed), %s saved up, reputation %d, %s followers. Festival wins: %d.",
			len(st.CompletedProjects), succeeded,
			humanize.Comma(int64(p.Money)),
			p.Reputation,
			humanize.Comma(int64(p.Popularity)),
			p.FestivalWins),
	})
	s.log.Info("game ended at horizon",
		"covers", len(st.CompletedProjects),
		"money", p.Money,
		"reputation", p.Reputation)
}

func maxIntSim(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// joinTeam wires the player into a team and schedules the first project
// offer a few days out.
func (s *Simulation) joinTeam(t *team.Team, abs int) {
	p := s.State.Player
	p.TeamID = t.ID
	p.LastTeamJoinAbsDay = abs
	p.AtRiskOfExpulsion = false
	p.TeamJoinHistory = append(p.TeamJoinHistory, t.ID)
	t.PlayerIsMember = true
	t.OfferRefusals = 0
	t.NextProjectOfferAbsDay = abs + firstTeamOfferMinDelay + s.rng.Intn(firstTeamOfferMaxDelay-firstTeamOfferMinDelay+1)

	for _, id := range t.MemberIDs {
		if n := s.State.NPCs.ByID(id); n != nil {
			npc.AddRelationshipPoints(n, npc.BonusTeamJoin)
		}
	}
}

// leaveTeam detaches the player; the team itself carries on.
func (s *Simulation) leaveTeam() {
	p := s.State.Player
	if t := s.PlayerTeam(); t != nil {
		t.PlayerIsMember = false
		t.NextProjectOfferAbsDay = -1
	}
	p.TeamID = ""
	p.AtRiskOfExpulsion = false

	// Team projects cannot continue without the team.
	for _, prj := range append([]*project.Project(nil), s.State.ActiveProjects...) {
		if prj.IsTeamProject {
			s.removeActive(prj.ID)
			prj.Status = project.StatusAbandoned
		}
	}
}
