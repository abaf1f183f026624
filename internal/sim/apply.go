package sim

import (
	"fmt"

	"github.com/talgya/cover-life/internal/events"
	"github.com/talgya/cover-life/internal/inbox"
	"github.com/talgya/cover-life/internal/project"
)

// AcknowledgeEvent closes the pending event popup, applying its direct
// effect. Choice events must go through ChooseEventOption instead.
func (s *Simulation) AcknowledgeEvent() error {
	st := s.State
	if st.Phase != PhaseShowingEvent || st.PendingEvent == nil {
		return ErrNoPendingPopup
	}
	evt := st.PendingEvent
	if len(evt.Choices) > 0 {
		// Closing a choice popup without picking counts as the last option,
		// which by convention is the decline.
		return s.ChooseEventOption(len(evt.Choices) - 1)
	}
	s.applyEffect(evt.Effect)
	st.PendingEvent = nil
	st.Phase = PhaseIdle
	return nil
}

// ChooseEventOption resolves a choice event with the picked option.
func (s *Simulation) ChooseEventOption(idx int) error {
	st := s.State
	if st.Phase != PhaseShowingEvent || st.PendingEvent == nil {
		return ErrNoPendingPopup
	}
	evt := st.PendingEvent
	if idx < 0 || idx >= len(evt.Choices) {
		return fmt.Errorf("choice %d out of range", idx)
	}
	s.applyEffect(evt.Choices[idx].Effect)
	st.PendingEvent = nil
	st.Phase = PhaseIdle
	return nil
}

// AcknowledgeResult dismisses the project-outcome popup.
func (s *Simulation) AcknowledgeResult() error {
	st := s.State
	if st.Phase != PhaseShowingResult {
		return ErrNoPendingPopup
	}
	st.PendingResult = nil
	st.Phase = PhaseIdle
	return nil
}

// applyEffect writes an event payload onto the simulation. Stat deltas are
// scaled by the matching active modifier effects before landing.
func (s *Simulation) applyEffect(e events.Effect) {
	st := s.State
	p := st.Player
	abs := s.AbsDay()

	if e.Money != 0 {
		p.AddMoney(e.Money)
	}
	if e.FSkill != 0 {
		p.AddFSkill(scaleByModifier(e.FSkill, p.Effects.SkillModifier()))
	}
	if e.MSkill != 0 {
		p.AddMSkill(scaleByModifier(e.MSkill, p.Effects.SkillModifier()))
	}
	if e.Reputation != 0 {
		p.AddReputation(scaleByModifier(e.Reputation, p.Effects.ReputationModifier()))
	}
	if e.Popularity != 0 {
		p.AddPopularity(scaleByModifier(e.Popularity, p.Effects.PopularityModifier()), abs)
	}
	if e.Tired != 0 {
		p.AddTiredness(e.Tired)
	}
	for _, buff := range e.Buffs {
		p.Effects.Apply(buff)
	}

	if e.CancelProjectID != "" {
		s.cancelProject(e.CancelProjectID, abs)
	}
	if e.JoinTeamID != "" {
		if t := st.Teams.ByID(e.JoinTeamID); t != nil && !t.Disbanded && !p.OnTeam() {
			s.joinTeam(t, abs)
		}
	}
	if e.RefuseTeamID != "" {
		if t := st.Teams.ByID(e.RefuseTeamID); t != nil {
			t.InviteRefusals++
		}
	}
	if e.TeamProject != nil {
		prj := e.TeamProject
		prj.Status = project.StatusActive
		prj.AcceptedAbsDay = abs
		if prj.BaseTraining == 0 {
			prj.BaseTraining = 2
		}
		st.ActiveProjects = append(st.ActiveProjects, prj)
		p.AcceptedSinceFailure++
	}
	if e.RefuseTeamProject != "" {
		s.refuseTeamProject(e.RefuseTeamProject, abs)
	}
	if e.ExpelFromTeamID != "" && p.TeamID == e.ExpelFromTeamID {
		s.leaveTeam()
	}
	if e.CollabNPCID != "" {
		if n := st.NPCs.ByID(e.CollabNPCID); n != nil {
			s.startCollab(n, abs)
		}
	}
	if e.FestivalWin {
		p.FestivalWins++
	}
}

// cancelProject pulls an active project without the failure penalty chain;
// the cancellation event is its own consequence.
func (s *Simulation) cancelProject(id string, abs int) {
	prj := s.activeProjectByID(id)
	if prj == nil {
		return
	}
	s.removeActive(id)
	prj.Status = project.StatusFailed
	prj.CompletedAbsDay = abs
	if !prj.CostumePaid && prj.CostumeSavedMoney > 0 {
		s.State.Player.AddMoney(prj.CostumeSavedMoney)
		prj.CostumeSavedMoney = 0
	}
	s.State.CompletedProjects = append(s.State.CompletedProjects, prj)
	s.refillAfterCompletion(abs)
}

// refuseTeamProject books a refusal; the third one in a row gets the player
// expelled.
func (s *Simulation) refuseTeamProject(teamID string, abs int) {
	st := s.State
	p := st.Player
	t := st.Teams.ByID(teamID)
	if t == nil {
		return
	}
	t.OfferRefusals++
	if t.OfferRefusals < 3 {
		return
	}
	s.leaveTeam()
	p.AddReputation(-(8 + s.rng.Intn(8)))
	p.AddPopularity(-(5 + s.rng.Intn(6)), abs)
	st.Inbox.Post(inbox.Message{
		Kind:  inbox.KindChat,
		Title: "Removed From The Team",
		Body:  fmt.Sprintf("%s had enough of refused projects. You are out.", t.Name),
	})
	s.log.Info("player expelled", "team", t.Name, "refusals", t.OfferRefusals)
}

func scaleByModifier(delta int, mod float64) int {
	scaled := int(float64(delta)*mod + 0.5)
	if delta < 0 {
		scaled = int(float64(delta)*mod - 0.5)
	}
	return scaled
}
