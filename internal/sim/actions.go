package sim

import (
	"errors"
	"fmt"

	"github.com/talgya/cover-life/internal/calendar"
	"github.com/talgya/cover-life/internal/costume"
	"github.com/talgya/cover-life/internal/inbox"
	"github.com/talgya/cover-life/internal/npc"
	"github.com/talgya/cover-life/internal/project"
	"github.com/talgya/cover-life/internal/shop"
)

// Guard errors the UI branches on. Every action either completes or
// degrades to a no-op plus one of these.
var (
	ErrUnknownProject     = errors.New("project not found")
	ErrUnknownNPC         = errors.New("npc not found")
	ErrUnknownTeam        = errors.New("team not found")
	ErrAlreadyOnTeam      = errors.New("already on a team")
	ErrNotOnTeam          = errors.New("not on a team")
	ErrPendingApplication = errors.New("application already pending")
	ErrPendingCollab      = errors.New("collab proposal already pending")
	ErrSkillGapTooWide    = errors.New("team is out of your league")
	ErrOfferWithdrawn     = errors.New("the offer was withdrawn")
	ErrCostumeLocked      = errors.New("costume is locked")
	ErrNoPendingPopup     = errors.New("nothing pending")
	ErrInsufficientFunds  = shop.ErrInsufficientFunds
	ErrAlreadyGreeted     = errors.New("already greeted")
	ErrNotBirthday        = errors.New("not their birthday")
	ErrNotNewYear         = errors.New("not the new year season")
	ErrNotAcquainted      = errors.New("not acquainted with this npc")
	ErrGameOver           = errors.New("the run is over")
)

// Refusal roll for reputation-gated offers.
const baseRejectChance = 0.30

// AcceptOptions tunes an acceptance.
type AcceptOptions struct {
	BaseTraining   int
	ExtraTraining  int
	ReserveCostume bool
}

// AcceptProject moves an available offer into the active list. A project
// whose reputation bar the player does not clear may refuse outright, in
// which case the offer disappears from the board.
func (s *Simulation) AcceptProject(id string, opts AcceptOptions) error {
	st := s.State
	if st.Ended {
		return ErrGameOver
	}
	prj := s.availableProjectByID(id)
	if prj == nil {
		return ErrUnknownProject
	}
	abs := s.AbsDay()
	p := st.Player

	if prj.MinReputation > p.Reputation {
		chance := baseRejectChance + p.Effects.ProjectRejectAdd()
		if chance > 1 {
			chance = 1
		}
		if s.rng.Float64() < chance {
			s.removeAvailable(id)
			st.Inbox.Post(inbox.Message{
				Kind:  inbox.KindChat,
				Title: "Offer Withdrawn",
				Body:  fmt.Sprintf("The organizers of %q went with someone with a cleaner record.", prj.Name),
			})
			return ErrOfferWithdrawn
		}
	}

	base := opts.BaseTraining
	if base < 1 {
		base = 1
	}
	if base > 3 {
		base = 3
	}
	extra := opts.ExtraTraining
	if limit := project.ExtraTrainingLimit(len(st.ActiveProjects) + 1); extra > limit {
		extra = limit
	}
	if extra < 0 {
		extra = 0
	}

	if opts.ReserveCostume && prj.CostumeRequired() {
		if !p.Spend(prj.CostumeCost) {
			return ErrInsufficientFunds
		}
		prj.CostumeSavedMoney = prj.CostumeCost
		st.Expenses.Add(shop.ExpenseCostume, prj.CostumeCost, abs)
	}

	s.removeAvailable(id)
	prj.Status = project.StatusActive
	prj.AcceptedAbsDay = abs
	prj.BaseTraining = base
	prj.ExtraTraining = extra
	if prj.ContactNPCID == "" {
		if n := s.randomActiveNPC(); n != nil {
			prj.ContactNPCID = n.ID
		}
	}
	st.ActiveProjects = append(st.ActiveProjects, prj)
	p.AcceptedSinceFailure++

	s.log.Info("project accepted",
		"project", prj.Name,
		"weekly", prj.WeeklyCommitment(),
		"deadline_days", prj.DeadlineDays())
	return nil
}

// AbandonProject drops an active project. Costume money only comes back
// below the halfway mark.
func (s *Simulation) AbandonProject(id string) error {
	prj := s.activeProjectByID(id)
	if prj == nil {
		return ErrUnknownProject
	}
	refund := prj.Abandon()
	if refund > 0 {
		s.State.Player.AddMoney(refund)
	}
	s.removeActive(id)
	s.State.CompletedProjects = append(s.State.CompletedProjects, prj)
	s.refillAfterCompletion(s.AbsDay())
	s.log.Info("project abandoned", "project", prj.Name, "refund", refund)
	return nil
}

// FundProjectTraining clears a funding block with an explicit payment of
// one day's training cost.
func (s *Simulation) FundProjectTraining(id string) error {
	prj := s.activeProjectByID(id)
	if prj == nil {
		return ErrUnknownProject
	}
	p := s.State.Player
	cost := prj.FundTraining(p.Money, p.Effects.TrainingCostMultiplier())
	if cost < 0 {
		return ErrInsufficientFunds
	}
	p.Spend(cost)
	s.State.Expenses.Add(shop.ExpenseTraining, cost, s.AbsDay())
	return nil
}

// SubmitCostumeSelection scores an outfit for the pending costume choice
// and applies the tier policy.
func (s *Simulation) SubmitCostumeSelection(projectID string, sel costume.Selection) error {
	st := s.State
	prj := s.activeProjectByID(projectID)
	if prj == nil {
		return ErrUnknownProject
	}
	if prj.CostumeLocked {
		return ErrCostumeLocked
	}
	abs := s.AbsDay()
	p := st.Player

	_, percent := costume.Score(sel, prj.RequiredStyle)
	tier := costume.TierFor(percent)

	if tier == costume.TierFail {
		prj.CostumeRequested = false
		prj.CostumeRetryAbsDay = abs + 7
		prj.DeadlineExtension += 7
		if prj.CostumeSavedMoney > 0 {
			p.AddMoney(prj.CostumeSavedMoney)
			prj.CostumeSavedMoney = 0
		}
		s.clearCostumePopup(projectID)
		st.Inbox.Post(inbox.Message{
			Kind:  inbox.KindChat,
			Title: "Costume Rejected",
			Body:  fmt.Sprintf("The look for %q missed the mark (%d%% match). One more week to fix it.", prj.Name, percent),
		})
		return nil
	}

	// A revision never replaces a strictly better accepted outfit.
	if prj.CostumePaid && percent <= prj.CostumeMatchPercent {
		s.clearCostumePopup(projectID)
		return nil
	}

	cost := costume.PurchaseCost(sel, st.Inventory.Clothes)
	charge := cost - prj.CostumeSavedMoney
	if charge < 0 {
		charge = 0
	}
	if charge > 0 {
		if !p.Spend(charge) {
			return ErrInsufficientFunds
		}
		st.Expenses.Add(shop.ExpenseCostume, charge, abs)
	}
	prj.CostumeSavedMoney = 0

	for _, itemID := range sel.Items() {
		st.Inventory.Clothes[itemID] = true
	}
	prj.CostumePaid = true
	prj.CostumeMatchPercent = percent
	prj.BestSelection = sel
	prj.CostumeRequested = false
	if tier == costume.TierLocked {
		prj.CostumeLocked = true
	}
	s.clearCostumePopup(projectID)
	s.log.Info("costume accepted", "project", prj.Name, "match", percent, "locked", prj.CostumeLocked)
	return nil
}

func (s *Simulation) clearCostumePopup(projectID string) {
	if s.State.PendingCostumeProjectID == projectID {
		s.State.PendingCostumeProjectID = ""
		if s.State.Phase == PhaseShowingCostume {
			s.State.Phase = PhaseIdle
		}
	}
}

// SendTeamApplication queues an application with a randomized resolution
// delay.
func (s *Simulation) SendTeamApplication(teamID string) error {
	st := s.State
	if st.Player.OnTeam() {
		return ErrAlreadyOnTeam
	}
	t := st.Teams.ByID(teamID)
	if t == nil || t.Disbanded {
		return ErrUnknownTeam
	}
	if st.Queues.HasPendingApplication(teamID) {
		return ErrPendingApplication
	}
	st.Queues.SubmitApplication(teamID, s.AbsDay())
	st.Inbox.Post(inbox.Message{
		Kind:  inbox.KindChat,
		Title: "Application Sent",
		Body:  fmt.Sprintf("You applied to %s. They will get back to you.", t.Name),
	})
	return nil
}

// ProposeCollab queues a collab proposal to an NPC.
func (s *Simulation) ProposeCollab(npcID string) error {
	st := s.State
	n := st.NPCs.ByID(npcID)
	if n == nil || !n.Active {
		return ErrUnknownNPC
	}
	if st.Queues.HasPendingCollab(npcID) {
		return ErrPendingCollab
	}
	st.Queues.ProposeCollab(npcID, s.AbsDay())
	return nil
}

// JoinTeam is the direct join path; the skill-gap bar still applies.
func (s *Simulation) JoinTeam(teamID string) error {
	st := s.State
	if st.Player.OnTeam() {
		return ErrAlreadyOnTeam
	}
	t := st.Teams.ByID(teamID)
	if t == nil || t.Disbanded {
		return ErrUnknownTeam
	}
	if t.Skill-st.Player.ComparableSkill(t.DominantStyle) > inbox.MaxApplicationSkillGap {
		return ErrSkillGapTooWide
	}
	s.joinTeam(t, s.AbsDay())
	return nil
}

// LeaveTeam detaches the player voluntarily.
func (s *Simulation) LeaveTeam() error {
	if !s.State.Player.OnTeam() {
		return ErrNotOnTeam
	}
	s.leaveTeam()
	return nil
}

// GreetBirthday sends a birthday greeting, once per NPC per year.
func (s *Simulation) GreetBirthday(npcID string) error {
	n := s.State.NPCs.ByID(npcID)
	if n == nil {
		return ErrUnknownNPC
	}
	if !calendar.IsBirthday(s.State.Time, n.BirthMonth, n.BirthDay) {
		return ErrNotBirthday
	}
	abs := s.AbsDay()
	if n.BirthdayGreetedAbsDay == abs {
		return ErrAlreadyGreeted
	}
	n.BirthdayGreetedAbsDay = abs
	npc.AddRelationshipPoints(n, npc.BonusBirthdayGreeting)
	return nil
}

// GreetNewYear sends a New Year greeting during the holiday window, once
// per NPC per year.
func (s *Simulation) GreetNewYear(npcID string) error {
	n := s.State.NPCs.ByID(npcID)
	if n == nil {
		return ErrUnknownNPC
	}
	if !calendar.InNewYearSeason(s.State.Time) {
		return ErrNotNewYear
	}
	if n.NewYearGreetedYear == s.State.Time.Year+1 {
		return ErrAlreadyGreeted
	}
	n.NewYearGreetedYear = s.State.Time.Year + 1
	npc.AddRelationshipPoints(n, npc.BonusNewYearGreeting)
	return nil
}

// BuyTonic purchases one tonic within the weekly limit.
func (s *Simulation) BuyTonic() error {
	st := s.State
	cost, err := shop.BuyTonic(st.Player.Money, st.Inventory, &st.Player.Weekly.Shop)
	if err != nil {
		return err
	}
	st.Player.Spend(cost)
	st.Expenses.Add(shop.ExpenseShop, cost, s.AbsDay())
	return nil
}

// UseTonic drinks a tonic for a tiredness drop.
func (s *Simulation) UseTonic() error {
	st := s.State
	relief, err := shop.UseTonic(st.Inventory, &st.Player.Weekly.Shop)
	if err != nil {
		return err
	}
	st.Player.AddTiredness(-relief)
	return nil
}

// BuyGift stocks a gift in the inventory.
func (s *Simulation) BuyGift(giftID string) error {
	st := s.State
	cost, err := shop.BuyGift(st.Player.Money, st.Inventory, giftID)
	if err != nil {
		return err
	}
	st.Player.Spend(cost)
	st.Expenses.Add(shop.ExpenseGift, cost, s.AbsDay())
	return nil
}

// GiveGift hands a stocked gift to an NPC. A gift matching the NPC's
// personality lands much better.
func (s *Simulation) GiveGift(npcID, giftID string) error {
	st := s.State
	n := st.NPCs.ByID(npcID)
	if n == nil || !n.Active {
		return ErrUnknownNPC
	}
	matched, err := shop.GiveGift(st.Inventory, giftID, string(n.BehaviorModel))
	if err != nil {
		return err
	}
	bonus := npc.BonusGiftUnmatched
	if matched {
		bonus = npc.BonusGiftMatched
	}
	npc.AddRelationshipPoints(n, bonus)
	return nil
}

// BuyClothing adds a catalog item to the wardrobe, one-time.
func (s *Simulation) BuyClothing(itemID string) error {
	st := s.State
	cost, err := shop.BuyClothing(st.Player.Money, st.Inventory, itemID)
	if err != nil {
		return err
	}
	st.Player.Spend(cost)
	st.Expenses.Add(shop.ExpenseClothes, cost, s.AbsDay())
	return nil
}

// AdvanceDays runs the daily sequence n times, stopping early when a popup
// needs the player.
func (s *Simulation) AdvanceDays(n int) {
	for i := 0; i < n; i++ {
		if s.State.Ended || s.State.Phase != PhaseIdle {
			return
		}
		s.AdvanceDay()
	}
}

func (s *Simulation) randomActiveNPC() *npc.NPC {
	active := make([]*npc.NPC, 0, len(s.State.NPCs.All))
	for _, n := range s.State.NPCs.All {
		if n.Active {
			active = append(active, n)
		}
	}
	if len(active) == 0 {
		return nil
	}
	return active[s.rng.Intn(len(active))]
}
