package events

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"github.com/talgya/cover-life/internal/catalog"
	"github.com/talgya/cover-life/internal/effects"
	"github.com/talgya/cover-life/internal/npc"
	"github.com/talgya/cover-life/internal/player"
	"github.com/talgya/cover-life/internal/project"
	"github.com/talgya/cover-life/internal/team"
)

// Global gates.
const (
	quietOpeningDays = 10 // no events at all in the first days of a run
	minDaysBetween   = 2

	stagnationAfterDays = 30

	festivalMinGapDays   = 90
	festivalMaxGapDays   = 180
	festivalDailyChance  = 0.05
	festivalNoticeDays   = 7
	masterClassNoticeDays = 30

	trainerVacationDays = 14

	inviteInTeamAfterDays  = 180 // six game months on a team before rivals may call
	inviteGlobalGapDays    = 45
	invitePerTeamGapDays   = 70
	inviteMaxRefusals      = 2
	inviteChance           = 0.85
	inviteMaxSkillGap      = 18

	cancellationAcceptedFloor = 7
)

// Cooldown keys, tracked as last-fired absolute day per event type.
const (
	cdTrainerVacation = "trainer_vacation"
	cdMasterClass     = "master_class"
	cdProjectSuccess  = "project_success"
	cdRecommendation  = "project_recommendation"
	cdTrainingPraise  = "training_praise"
	cdPerfectFlow     = "perfect_flow"
	cdInspiration     = "inspiration"
	cdMotivationDrop  = "motivation_drop"
	cdBadDay          = "bad_day"
	cdProjectCancel   = "project_cancel"
	cdStudioDiscount  = "studio_discount"
	cdPriceIncrease   = "studio_price_increase"
	cdTeamOffer       = "team_project_offer"
)

// Input is the slice of simulation state one generation pass reads.
// Bookkeeping fields on Player and Team are updated in place when a rule
// fires; the returned Event's Effect is the caller's to apply.
type Input struct {
	AbsDay int

	Player     *player.Player
	NPCs       *npc.Roster
	Teams      *team.Index
	PlayerTeam *team.Team // nil when teamless

	ActiveProjects    []*project.Project
	CompletedProjects []*project.Project

	// NPC ids the player trained with today.
	TodayParticipants []string
}

// Generator is the daily event oracle. It owns the per-type cooldown table
// and the multi-day scheduling state for festivals and master classes.
type Generator struct {
	rng      *rand.Rand
	projects *project.Generator

	cooldowns map[string]int

	festivalScheduled bool
	festivalAbsDay    int
	festivalTeamID    string
	festivalData      *FestivalData
	lastFestivalAbsDay int

	masterClassScheduled bool
	masterClassAbsDay    int
	masterClassPrice     int
	masterClassStyle     catalog.StyleTag

	lastTeamStyle catalog.StyleTag
}

func NewGenerator(rng *rand.Rand, projects *project.Generator) *Generator {
	return &Generator{
		rng:                rng,
		projects:           projects,
		cooldowns:          map[string]int{},
		lastFestivalAbsDay: -999,
	}
}

func (g *Generator) canFire(key string, in Input, cooldownDays int) bool {
	last, ok := g.cooldowns[key]
	return !ok || in.AbsDay-last >= cooldownDays
}

func (g *Generator) fired(key string, in Input) {
	g.cooldowns[key] = in.AbsDay
}

func (g *Generator) roll(p float64) bool {
	return g.rng.Float64() < p
}

func (g *Generator) randInt(min, max int) int {
	return min + g.rng.Intn(max-min+1)
}

func eventID() string {
	return "evt_" + uuid.NewString()
}

// Generate runs the rule chain for one day. The first rule that passes both
// its condition and its roll wins; later rules are not evaluated. Returns
// nil on a quiet day.
func (g *Generator) Generate(in Input) *Event {
	if in.AbsDay < quietOpeningDays {
		return nil
	}
	if in.AbsDay-in.Player.LastEventAbsDay < minDaysBetween {
		return nil
	}

	for _, rule := range []func(Input) *Event{
		g.stagnation,
		g.festivalAnnouncement,
		g.festivalResolution,
		g.trainerVacation,
		g.masterClassAnnouncement,
		g.masterClassDay,
		g.projectFlavor,
		g.trainingFlavor,
		g.npcInteraction,
		g.injury,
		g.audienceGrowth,
		g.teamStyleChange,
		g.teamConflict,
		g.negativeComments,
		g.selfCriticism,
		g.fatigue,
		g.studioPricing,
		g.projectCancellation,
		g.teamInvitation,
		g.teamProjectOffer,
	} {
		if evt := rule(in); evt != nil {
			in.Player.LastEventAbsDay = in.AbsDay
			return evt
		}
	}
	return nil
}

// stagnation fires once per idle streak when the player has not trained for
// a month, shaving 10% off both skill tracks.
func (g *Generator) stagnation(in Input) *Event {
	p := in.Player
	if p.LastTrainedAbsDay < 0 || in.AbsDay-p.LastTrainedAbsDay < stagnationAfterDays {
		return nil
	}
	if p.StagnationWarnedAbsDay >= p.LastTrainedAbsDay {
		return nil
	}
	p.StagnationWarnedAbsDay = in.AbsDay
	return &Event{
		ID:    eventID(),
		Kind:  KindBad,
		Title: "Out of Shape",
		Text:  "You have been resting far too long. The body recovered, but the moves got rusty.",
		Effect: Effect{
			FSkill: -(p.FSkill + 5) / 10,
			MSkill: -(p.MSkill + 5) / 10,
		},
	}
}

func (g *Generator) festivalAnnouncement(in Input) *Event {
	if in.PlayerTeam == nil || g.festivalScheduled {
		return nil
	}
	gap := in.AbsDay - g.lastFestivalAbsDay
	if gap < festivalMinGapDays {
		return nil
	}
	if gap < festivalMaxGapDays && !g.roll(festivalDailyChance) {
		return nil
	}

	g.festivalScheduled = true
	g.festivalAbsDay = in.AbsDay + festivalNoticeDays
	g.festivalTeamID = in.PlayerTeam.ID
	g.festivalData = g.rollFestival(in)

	text := "Your team signed up for a festival one week from now."
	if g.festivalData.HasCategories {
		text += " Teams compete in skill-level categories."
	} else {
		text += " Everyone competes in one open bracket."
	}
	return &Event{
		ID:      eventID(),
		Kind:    KindChoice,
		Title:   "Festival Announcement",
		Text:    text,
		Choices: []Choice{{Text: "OK"}},
	}
}

func (g *Generator) festivalResolution(in Input) *Event {
	if !g.festivalScheduled {
		return nil
	}
	// Leaving or switching teams cancels the entry.
	if in.PlayerTeam == nil || in.PlayerTeam.ID != g.festivalTeamID {
		g.festivalScheduled = false
		g.festivalData = nil
		g.festivalTeamID = ""
		return nil
	}
	if in.AbsDay < g.festivalAbsDay {
		return nil
	}

	data := g.festivalData
	g.festivalScheduled = false
	g.festivalData = nil
	g.festivalTeamID = ""
	g.lastFestivalAbsDay = in.AbsDay

	if data.PlayerWins {
		return &Event{
			ID:    eventID(),
			Kind:  KindFestival,
			Title: "Festival Victory",
			Text:  fmt.Sprintf("Your team took first place and a %d prize. The crowd wants more.", data.PrizePool),
			Effect: Effect{
				Money:       data.PrizePool,
				Reputation:  g.randInt(2, 7),
				Popularity:  g.randInt(5, 15),
				FestivalWin: true,
			},
			Festival: data,
		}
	}
	return &Event{
		ID:    eventID(),
		Kind:  KindFestival,
		Title: "Festival Wrapped",
		Text:  "The festival is over. Another team took the stage this time.",
		Effect: Effect{
			Reputation: g.randInt(-3, 2),
			Popularity: g.randInt(2, 5),
		},
		Festival: data,
	}
}

// rollFestival pre-generates festival shape and the player's result so the
// announcement and the resolution describe the same contest.
func (g *Generator) rollFestival(in Input) *FestivalData {
	participants := g.randInt(20, 500)
	data := &FestivalData{
		Participants:  participants,
		HasCategories: g.roll(0.9),
		TeamID:        in.PlayerTeam.ID,
	}
	switch {
	case participants <= 20:
		data.Size = FestivalSmall
		data.PrizePool = g.randInt(10, 20) * 100
	case participants <= 100:
		data.Size = FestivalMedium
		data.PrizePool = g.randInt(25, 50) * 100
	default:
		data.Size = FestivalLarge
		data.PrizePool = g.randInt(50, 200) * 100
	}

	// Competitor pool: stronger NPCs are likelier to enter.
	var maxSkill float64 = 50
	entered := 0
	for _, n := range in.NPCs.All {
		if !n.Active {
			continue
		}
		avg := float64(n.AvgSkill())
		chance := avg * 0.6 / 1000 * 0.93
		if g.rng.Float64() < chance {
			entered++
			if avg > maxSkill {
				maxSkill = avg
			}
		}
	}
	if entered < 3 {
		for _, n := range in.NPCs.All {
			if avg := float64(n.AvgSkill()); avg > maxSkill {
				maxSkill = avg
			}
		}
	}

	teamSkill := float64(in.PlayerTeam.Skill)
	if teamSkill >= maxSkill {
		data.PlayerWins = g.roll(0.95)
	} else {
		data.PlayerWins = g.roll(0.06 + teamSkill/maxSkill*0.5)
	}
	return data
}

func (g *Generator) trainerVacation(in Input) *Event {
	p := in.Player
	if p.TrainerAwayFUntil >= in.AbsDay || p.TrainerAwayMUntil >= in.AbsDay {
		return nil
	}
	if !g.canFire(cdTrainerVacation, in, 60) || !g.roll(0.003) {
		return nil
	}
	g.fired(cdTrainerVacation, in)
	if g.roll(0.5) {
		p.TrainerAwayFUntil = in.AbsDay + trainerVacationDays
		return &Event{
			ID:    eventID(),
			Kind:  KindInfo,
			Title: "Trainer on Vacation",
			Text:  "The female-style trainer left for a two-week vacation. Female-style sessions are off until she returns.",
		}
	}
	p.TrainerAwayMUntil = in.AbsDay + trainerVacationDays
	return &Event{
		ID:    eventID(),
		Kind:  KindInfo,
		Title: "Trainer on Vacation",
		Text:  "The male-style trainer left for a two-week vacation. Male-style sessions are off until he returns.",
	}
}

func (g *Generator) masterClassAnnouncement(in Input) *Event {
	if g.masterClassScheduled || !g.canFire(cdMasterClass, in, 60) || !g.roll(0.01) {
		return nil
	}
	g.masterClassScheduled = true
	g.masterClassAbsDay = in.AbsDay + masterClassNoticeDays
	g.masterClassPrice = g.randInt(20, 50) * 100
	g.masterClassStyle = catalog.StyleFemale
	styleText := "female style"
	if g.roll(0.5) {
		g.masterClassStyle = catalog.StyleMale
		styleText = "male style"
	}
	g.fired(cdMasterClass, in)
	return &Event{
		ID:    eventID(),
		Kind:  KindInfo,
		Title: "Master Class Announced",
		Text:  fmt.Sprintf("A %s master class runs one month from now. Entry: %d.", styleText, g.masterClassPrice),
	}
}

func (g *Generator) masterClassDay(in Input) *Event {
	if !g.masterClassScheduled || in.AbsDay < g.masterClassAbsDay {
		return nil
	}
	g.masterClassScheduled = false
	boost := g.randInt(8, 15)
	attend := Effect{Money: -g.masterClassPrice}
	styleText := "female style"
	if g.masterClassStyle == catalog.StyleFemale {
		attend.FSkill = boost
	} else {
		attend.MSkill = boost
		styleText = "male style"
	}
	return &Event{
		ID:    eventID(),
		Kind:  KindChoice,
		Title: "Master Class Today",
		Text:  fmt.Sprintf("The %s master class is today. Attending costs %d and sharpens your technique considerably.", styleText, g.masterClassPrice),
		Choices: []Choice{
			{Text: "Attend", Effect: attend},
			{Text: "Skip"},
		},
	}
}

func (g *Generator) projectFlavor(in Input) *Event {
	if len(in.CompletedProjects) == 0 {
		return nil
	}
	last := in.CompletedProjects[len(in.CompletedProjects)-1]
	if last.CompletedAbsDay < 0 {
		return nil
	}
	daysSince := in.AbsDay - last.CompletedAbsDay

	if daysSince == 1 && g.canFire(cdProjectSuccess, in, 30) && g.roll(0.12) {
		g.fired(cdProjectSuccess, in)
		return &Event{
			ID:     eventID(),
			Kind:   KindGood,
			Title:  "Community Loves It",
			Text:   "The community took well to your new cover. Popularity is climbing.",
			Effect: Effect{Popularity: g.randInt(3, 7)},
		}
	}
	if daysSince >= 2 && daysSince <= 10 && g.canFire(cdRecommendation, in, 30) && g.roll(0.04) {
		g.fired(cdRecommendation, in)
		return &Event{
			ID:     eventID(),
			Kind:   KindGood,
			Title:  "Picked Up by Recommendations",
			Text:   "Your cover landed on recommendation feeds. A sharp spike in views.",
			Effect: Effect{Popularity: g.randInt(15, 35)},
		}
	}
	return nil
}

func (g *Generator) trainingFlavor(in Input) *Event {
	trainedToday := in.Player.LastTrainedAbsDay == in.AbsDay

	if trainedToday && g.canFire(cdTrainingPraise, in, 60) && g.roll(0.015) {
		g.fired(cdTrainingPraise, in)
		return &Event{
			ID:     eventID(),
			Kind:   KindGood,
			Title:  "Praise from the Choreographer",
			Text:   "The choreographer singled out your progress in front of the class.",
			Effect: Effect{Reputation: g.randInt(2, 4)},
		}
	}

	if trainedToday && g.canFire(cdPerfectFlow, in, 30) && g.roll(0.02) {
		g.fired(cdPerfectFlow, in)
		e := Effect{}
		if g.roll(0.5) {
			e.FSkill = g.randInt(1, 3)
		}
		if g.roll(0.5) {
			e.MSkill = g.randInt(1, 3)
		}
		return &Event{
			ID:     eventID(),
			Kind:   KindGood,
			Title:  "Perfect Flow",
			Text:   "Everything clicks today. The moves land on the first try.",
			Effect: e,
		}
	}

	if g.canFire(cdInspiration, in, 60) && g.roll(0.01) {
		g.fired(cdInspiration, in)
		return &Event{
			ID:    eventID(),
			Kind:  KindGood,
			Title: "Inspired",
			Text:  "A wave of inspiration hits. Training pays off more for a while.",
			Effect: Effect{Buffs: []effects.Effect{{
				Kind: effects.KindTrainingEfficiency, Label: "Inspired",
				Magnitude: 1.3, ExpiresAbsDay: in.AbsDay + 30,
			}}},
		}
	}

	// Peer support only lands when no efficiency buff is already running.
	if _, buffed := in.Player.Effects[effects.KindTrainingEfficiency]; !buffed && g.roll(0.02) {
		return &Event{
			ID:    eventID(),
			Kind:  KindGood,
			Title: "Support from Friends",
			Text:  "Your friends cheer you on. Training feels lighter this week.",
			Effect: Effect{Buffs: []effects.Effect{
				{Kind: effects.KindTrainingEfficiency, Label: "Cheered On", Magnitude: 1.2, ExpiresAbsDay: in.AbsDay + 7},
				{Kind: effects.KindDailyTiredDelta, Label: "Cheered On", Magnitude: -2, ExpiresAbsDay: in.AbsDay + 7},
			}},
		}
	}

	if trainedToday && g.roll(0.02) {
		e := Effect{Tired: g.randInt(5, 10)}
		if g.roll(0.5) {
			e.FSkill = 1
		}
		if g.roll(0.5) {
			e.MSkill = 1
		}
		return &Event{
			ID:     eventID(),
			Kind:   KindInfo,
			Title:  "Experimental Session",
			Text:   "An unusual training format. Draining, but you picked something up.",
			Effect: e,
		}
	}
	return nil
}

func (g *Generator) npcInteraction(in Input) *Event {
	if len(in.TodayParticipants) == 0 {
		return nil
	}
	present := make([]*npc.NPC, 0, len(in.TodayParticipants))
	for _, id := range in.TodayParticipants {
		if n := in.NPCs.ByID(id); n != nil && n.Active {
			present = append(present, n)
		}
	}
	if len(present) == 0 {
		return nil
	}

	playerAvg := float64(in.Player.AvgSkill())

	// Advice from a stronger dancer at the session.
	if g.roll(0.03) {
		for _, n := range present {
			if n.AvgSkill() <= playerAvg {
				continue
			}
			e := Effect{}
			if g.roll(0.5) {
				e.FSkill = g.randInt(0, 2)
			}
			if g.roll(0.5) {
				e.MSkill = g.randInt(0, 2)
			}
			return &Event{
				ID:      eventID(),
				Kind:    KindGood,
				Title:   "A Tip from " + n.Name,
				Text:    n.Name + " shared a pointer at practice. Progress came easier today.",
				NPCID:   n.ID,
				NPCName: n.Name,
				Effect:  e,
			}
		}
	}

	if g.roll(0.05) {
		partner := present[g.rng.Intn(len(present))]
		rep := 4
		if partner.Reputation < 0 {
			rep = -2
		}
		return &Event{
			ID:      eventID(),
			Kind:    KindGood,
			Title:   "Photo with " + partner.Name,
			Text:    "You posted a photo together after practice. The fans noticed.",
			NPCID:   partner.ID,
			NPCName: partner.Name,
			Effect: Effect{
				Popularity: g.randInt(5, 15),
				Reputation: rep,
			},
		}
	}

	if g.roll(0.035) {
		partner := present[g.rng.Intn(len(present))]
		phrase := catalog.Phrase(string(partner.BehaviorModel), catalog.PhraseCollabAsk, g.rng.Intn)
		return &Event{
			ID:      eventID(),
			Kind:    KindCollab,
			Title:   "Collab Offer from " + partner.Name,
			Text:    partner.Name + ": " + phrase,
			NPCID:   partner.ID,
			NPCName: partner.Name,
			Choices: []Choice{
				{Text: "Accept", Effect: Effect{CollabNPCID: partner.ID}},
				{Text: "Decline"},
			},
		}
	}
	return nil
}

func (g *Generator) injury(in Input) *Event {
	if in.Player.Tiredness <= 65 || !g.roll(0.015) {
		return nil
	}
	return &Event{
		ID:    eventID(),
		Kind:  KindBad,
		Title: "Feeling Unwell",
		Text:  "Weakness caught up with you. The body demands rest.",
		Effect: Effect{
			Tired: g.randInt(10, 20),
			Buffs: []effects.Effect{{
				Kind: effects.KindTrainingEfficiency, Label: "Under the Weather",
				Magnitude: 0.4, ExpiresAbsDay: in.AbsDay + 5,
			}},
		},
	}
}

func (g *Generator) audienceGrowth(in Input) *Event {
	p := in.Player
	if p.LastPositivePopAbsDay >= 0 && in.AbsDay-p.LastPositivePopAbsDay <= 3 && g.roll(0.04) {
		return &Event{
			ID:     eventID(),
			Kind:   KindGood,
			Title:  "New Subscribers",
			Text:   "Your channel picked up a batch of new subscribers.",
			Effect: Effect{Popularity: g.randInt(3, 8)},
		}
	}

	anySuccess := false
	for _, pr := range in.CompletedProjects {
		if pr.Success {
			anySuccess = true
			break
		}
	}
	if !anySuccess {
		return nil
	}
	for _, n := range in.NPCs.All {
		if n.Active && n.Popularity >= 400 {
			if g.roll(0.03) {
				return &Event{
					ID:      eventID(),
					Kind:    KindGood,
					Title:   "Repost from " + n.Name,
					Text:    n.Name + " shared your video on their channel.",
					NPCID:   n.ID,
					NPCName: n.Name,
					Effect:  Effect{Popularity: g.randInt(10, 25)},
				}
			}
			break
		}
	}
	return nil
}

func (g *Generator) teamStyleChange(in Input) *Event {
	if in.PlayerTeam == nil {
		g.lastTeamStyle = ""
		return nil
	}
	cur := in.PlayerTeam.DominantStyle
	if g.lastTeamStyle == "" {
		g.lastTeamStyle = cur
		return nil
	}
	if g.lastTeamStyle == cur {
		return nil
	}
	old := g.lastTeamStyle
	g.lastTeamStyle = cur
	return &Event{
		ID:    eventID(),
		Kind:  KindInfo,
		Title: "Team Changed Direction",
		Text:  fmt.Sprintf("%s shifted its dominant style from %s to %s.", in.PlayerTeam.Name, styleLabel(old), styleLabel(cur)),
	}
}

// teamConflict is the two-strike escalation: a serious conflict flags the
// player, and the next qualifying trigger executes the expulsion.
func (g *Generator) teamConflict(in Input) *Event {
	t := in.PlayerTeam
	if t == nil || !g.roll(0.02) {
		return nil
	}
	p := in.Player

	if p.AtRiskOfExpulsion {
		p.AtRiskOfExpulsion = false
		return &Event{
			ID:    eventID(),
			Kind:  KindBad,
			Title: "Expelled from the Team",
			Text:  "After the drawn-out conflicts the team voted you out. Solo again, or time to find a new crew.",
			Effect: Effect{
				ExpelFromTeamID: t.ID,
				Reputation:      -g.randInt(8, 15),
				Popularity:      -g.randInt(5, 10),
			},
		}
	}

	if t.OfferRefusals >= 2 || g.teamAvgReputation(in, t) < -20 {
		p.AtRiskOfExpulsion = true
		return &Event{
			ID:    eventID(),
			Kind:  KindBad,
			Title: "Serious Team Conflict",
			Text:  "A serious argument split the practice room. One more incident and you are out.",
			Effect: Effect{
				Reputation: -g.randInt(5, 10),
				Popularity: -g.randInt(3, 7),
			},
		}
	}

	return &Event{
		ID:     eventID(),
		Kind:   KindBad,
		Title:  "Team Friction",
		Text:   "A quarrel broke out in the team. The mood soured.",
		Effect: Effect{Reputation: -g.randInt(2, 5)},
	}
}

func (g *Generator) teamAvgReputation(in Input, t *team.Team) int {
	sum, n := 0, 0
	for _, id := range t.MemberIDs {
		if member := in.NPCs.ByID(id); member != nil {
			sum += member.Reputation
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / n
}

func (g *Generator) negativeComments(in Input) *Event {
	if in.Player.LastPostedAbsDay != in.AbsDay || !g.roll(0.06) {
		return nil
	}
	return &Event{
		ID:    eventID(),
		Kind:  KindBad,
		Title: "Comment Section Turns",
		Text:  "An argument under your post hurt your standing, but the noise made you more visible.",
		Effect: Effect{
			Reputation: -g.randInt(3, 7),
			Popularity: g.randInt(2, 5),
		},
	}
}

func (g *Generator) selfCriticism(in Input) *Event {
	if in.Player.Reputation <= 100 || !g.roll(0.02) {
		return nil
	}
	return &Event{
		ID:    eventID(),
		Kind:  KindBad,
		Title: "Too Hard on Yourself",
		Text:  "You keep replaying every mistake. Training slows down for a while.",
		Effect: Effect{Buffs: []effects.Effect{{
			Kind: effects.KindTrainingEfficiency, Label: "Self-Critical",
			Magnitude: 0.7, ExpiresAbsDay: in.AbsDay + 7,
		}}},
	}
}

func (g *Generator) fatigue(in Input) *Event {
	if in.Player.Tiredness > 50 && g.canFire(cdMotivationDrop, in, 30) && g.roll(0.03) {
		g.fired(cdMotivationDrop, in)
		return &Event{
			ID:    eventID(),
			Kind:  KindBad,
			Title: "Motivation Dip",
			Text:  "Motivation is down. Sessions drag.",
			Effect: Effect{Buffs: []effects.Effect{{
				Kind: effects.KindTrainingEfficiency, Label: "Low Motivation",
				Magnitude: 0.6, ExpiresAbsDay: in.AbsDay + 7,
			}}},
		}
	}

	if in.Player.LastTrainedAbsDay == in.AbsDay && g.canFire(cdBadDay, in, 30) && g.roll(0.03) {
		g.fired(cdBadDay, in)
		return &Event{
			ID:     eventID(),
			Kind:   KindBad,
			Title:  "Off Day",
			Text:   "Nothing lands today. Practice left you drained.",
			Effect: Effect{Tired: g.randInt(3, 8)},
		}
	}

	if in.Player.LastTrainedAbsDay == in.AbsDay && g.roll(0.04) {
		return &Event{
			ID:    eventID(),
			Kind:  KindBad,
			Title: "Packed Studio",
			Text:  "The hall was overcrowded. Hardly any floor time.",
			Effect: Effect{Buffs: []effects.Effect{{
				Kind: effects.KindTrainingEfficiency, Label: "Crowded Session",
				Magnitude: 0.3, ExpiresAbsDay: in.AbsDay + 1,
			}}},
		}
	}
	return nil
}

func (g *Generator) studioPricing(in Input) *Event {
	if g.canFire(cdStudioDiscount, in, 180) && g.roll(0.02) {
		g.fired(cdStudioDiscount, in)
		pct := g.randInt(2, 4) * 10
		return &Event{
			ID:    eventID(),
			Kind:  KindGood,
			Title: "Studio Promotion",
			Text:  fmt.Sprintf("The studio announced a %d%% discount. Sessions are cheaper for a month.", pct),
			Effect: Effect{Buffs: []effects.Effect{{
				Kind: effects.KindTrainingCostMult, Label: "Studio Promotion",
				Magnitude: 1 - float64(pct)/100, ExpiresAbsDay: in.AbsDay + 30,
			}}},
		}
	}

	if g.canFire(cdPriceIncrease, in, 360) && g.roll(0.01) {
		g.fired(cdPriceIncrease, in)
		pct := g.randInt(1, 3) * 10
		return &Event{
			ID:    eventID(),
			Kind:  KindBad,
			Title: "Studio Price Hike",
			Text:  fmt.Sprintf("Session prices went up by %d%%.", pct),
			Effect: Effect{Buffs: []effects.Effect{{
				Kind: effects.KindTrainingCostMult, Label: "Price Hike",
				Magnitude: 1 + float64(pct)/100, ExpiresAbsDay: in.AbsDay + 1,
			}}},
		}
	}
	return nil
}

// projectCancellation shares its limiter with deadline penalties: it only
// fires after seven projects accepted since the last failure, then resets
// the counter.
func (g *Generator) projectCancellation(in Input) *Event {
	if len(in.ActiveProjects) == 0 || !g.canFire(cdProjectCancel, in, 30) || !g.roll(0.04) {
		return nil
	}
	if in.Player.AcceptedSinceFailure < cancellationAcceptedFloor {
		return nil
	}
	g.fired(cdProjectCancel, in)
	in.Player.AcceptedSinceFailure = 0
	proj := in.ActiveProjects[g.rng.Intn(len(in.ActiveProjects))]
	return &Event{
		ID:     eventID(),
		Kind:   KindBad,
		Title:  "Project Cancelled",
		Text:   fmt.Sprintf("%q was cancelled by its lead. The money and time put in are gone.", proj.Name),
		Effect: Effect{CancelProjectID: proj.ID},
	}
}

func (g *Generator) teamInvitation(in Input) *Event {
	p := in.Player

	if in.PlayerTeam != nil {
		// While on a team, rival invitations only start after six game
		// months of membership, and never within 45 days of the last one.
		if p.LastTeamJoinAbsDay < 0 || in.AbsDay-p.LastTeamJoinAbsDay < inviteInTeamAfterDays {
			return nil
		}
		if p.LastTeamInviteAbsDay >= 0 && in.AbsDay-p.LastTeamInviteAbsDay < inviteGlobalGapDays {
			return nil
		}
	} else {
		// Teamless players hear from teams at most once a month, never in
		// the opening month.
		if in.AbsDay < 30 {
			return nil
		}
		if p.LastTeamInviteAbsDay >= 0 && p.LastTeamInviteAbsDay/30 == in.AbsDay/30 {
			return nil
		}
	}

	if p.FSkill < 6 && p.MSkill < 6 {
		return nil
	}
	if !g.roll(inviteChance) {
		return nil
	}

	var candidates []*team.Team
	for _, t := range in.Teams.Active() {
		if in.PlayerTeam != nil && t.ID == in.PlayerTeam.ID {
			continue
		}
		if t.InviteRefusals >= inviteMaxRefusals {
			continue
		}
		if t.LastInviteAbsDay >= 0 && in.AbsDay-t.LastInviteAbsDay < invitePerTeamGapDays {
			continue
		}
		comparable := p.ComparableSkill(t.DominantStyle)
		if t.Skill-comparable > inviteMaxSkillGap {
			continue
		}
		candidates = append(candidates, t)
	}
	if len(candidates) == 0 {
		return nil
	}

	t := candidates[g.rng.Intn(len(candidates))]
	p.LastTeamInviteAbsDay = in.AbsDay
	t.LastInviteAbsDay = in.AbsDay

	rank := g.teamRank(in, t)
	text := fmt.Sprintf("%s invites you to join.\nTeam rating: #%d. Style: %s. Average skill: %d.",
		t.Name, rank, styleLabel(t.DominantStyle), t.Skill)
	if t.InviteRefusals == 1 {
		text = fmt.Sprintf("%s is asking one last time. Refuse again and they stop calling.\nTeam rating: #%d. Style: %s. Average skill: %d.",
			t.Name, rank, styleLabel(t.DominantStyle), t.Skill)
	}
	return &Event{
		ID:    eventID(),
		Kind:  KindTeamInvite,
		Title: "Team Invitation",
		Text:  text,
		Choices: []Choice{
			{Text: "Accept", Effect: Effect{JoinTeamID: t.ID}},
			{Text: "Refuse", Effect: Effect{RefuseTeamID: t.ID}},
		},
	}
}

func (g *Generator) teamRank(in Input, t *team.Team) int {
	teams := in.Teams.Active()
	sorted := make([]*team.Team, len(teams))
	copy(sorted, teams)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	for i, cand := range sorted {
		if cand.ID == t.ID {
			return i + 1
		}
	}
	return len(sorted)
}

func (g *Generator) teamProjectOffer(in Input) *Event {
	t := in.PlayerTeam
	if t == nil || t.NextProjectOfferAbsDay <= 0 || in.AbsDay < t.NextProjectOfferAbsDay {
		return nil
	}
	t.NextProjectOfferAbsDay = -1
	g.fired(cdTeamOffer, in)

	avg := int(t.AvgDominantSkill(in.NPCs) + 0.5)
	proj := g.projects.TeamProject(t.ID, t.DominantStyle, avg,
		project.PlayerSkills{FSkill: in.Player.FSkill, MSkill: in.Player.MSkill}, in.AbsDay)

	text := fmt.Sprintf("Your team wants to stage %q. Are you in?", proj.Name)
	if t.OfferRefusals == 2 {
		text = fmt.Sprintf("This is the third offer in recent months and the team remembers both refusals. One more and you are out.\n\nThe team wants to stage %q. Are you in?", proj.Name)
	}
	return &Event{
		ID:    eventID(),
		Kind:  KindChoice,
		Title: "Team Project",
		Text:  text,
		Choices: []Choice{
			{Text: "Accept", Effect: Effect{TeamProject: proj}},
			{Text: "Refuse", Effect: Effect{RefuseTeamProject: t.ID}},
		},
	}
}

func styleLabel(s catalog.StyleTag) string {
	switch s {
	case catalog.StyleFemale:
		return "female"
	case catalog.StyleMale:
		return "male"
	default:
		return "mixed"
	}
}
