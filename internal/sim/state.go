// Package sim composes the whole game: it owns the simulation state, runs
// the fixed per-day sequence, and exposes every player action. All mutation
// happens synchronously inside a tick or an action handler; there is exactly
// one logical writer at a time.
package sim

import (
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/talgya/cover-life/internal/calendar"
	"github.com/talgya/cover-life/internal/events"
	"github.com/talgya/cover-life/internal/inbox"
	"github.com/talgya/cover-life/internal/npc"
	"github.com/talgya/cover-life/internal/player"
	"github.com/talgya/cover-life/internal/project"
	"github.com/talgya/cover-life/internal/shop"
	"github.com/talgya/cover-life/internal/team"
	"github.com/talgya/cover-life/internal/trend"
)

// Phase is the popup state machine. Exactly one variant is active; the
// scheduler only advances time and proposes events while Idle.
type Phase string

const (
	PhaseIdle            Phase = "idle"
	PhaseShowingEvent    Phase = "showing_event"
	PhaseShowingResult   Phase = "showing_result"
	PhaseShowingCostume  Phase = "showing_costume"
)

// Tuning constants for the monthly batch and the offer board.
const (
	InitialNPCCount = 40
	InitialTeams    = 8

	MonthlySalary = 15000

	newTeamMinGapDays = 90
	newTeamMaxGapDays = 240
	newTeamChance     = 0.25

	firstTeamOfferMinDelay = 2
	firstTeamOfferMaxDelay = 10
)

// State is the full simulation aggregate.
type State struct {
	Time  calendar.GameTime `json:"time"`
	Ended bool              `json:"ended"`

	Player *player.Player `json:"player"`
	NPCs   *npc.Roster    `json:"-"`
	Teams  *team.Index    `json:"-"`

	AvailableProjects []*project.Project `json:"available_projects"`
	ActiveProjects    []*project.Project `json:"active_projects"`
	CompletedProjects []*project.Project `json:"-"`

	Inbox     inbox.Inbox     `json:"inbox"`
	Queues    *inbox.Queues   `json:"queues"`
	Inventory *shop.Inventory `json:"inventory"`
	Expenses  shop.ExpenseLog `json:"expenses"`

	Phase                   Phase          `json:"phase"`
	PendingEvent            *events.Event  `json:"-"`
	PendingResult           *project.Project `json:"-"`
	PendingCostumeProjectID string         `json:"pending_costume_project_id"`

	// NPC ids the player trained with today; cleared each day.
	TodayParticipants []string `json:"-"`

	LastTeamFormedAbsDay int `json:"last_team_formed_abs_day"`
	LastNewYearMsgYear   int `json:"last_new_year_msg_year"`

	// Fractional skill decay and training-tiredness carried between days.
	DecayCarryF float64 `json:"decay_carry_f"`
	DecayCarryM float64 `json:"decay_carry_m"`
	TiredCarry  float64 `json:"tired_carry"`
}

// Simulation binds the state to its generators and the day driver.
type Simulation struct {
	State *State

	rng     *rand.Rand
	log     *slog.Logger
	npcGen  *npc.Generator
	teamGen *team.Generator
	projGen *project.Generator
	evtGen  *events.Generator
	hype    *trend.Curve
}

// New builds a fresh game world: the player, the initial NPC roster, its
// teams, the opening offer board and a welcome message.
func New(playerName string, seed int64, log *slog.Logger) *Simulation {
	if log == nil {
		log = slog.Default()
	}
	rng := rand.New(rand.NewSource(seed))

	s := &Simulation{
		rng:     rng,
		log:     log,
		npcGen:  npc.NewGenerator(rng),
		teamGen: team.NewGenerator(rng),
		projGen: project.NewGenerator(rng),
		hype:    trend.NewCurve(seed),
	}
	s.evtGen = events.NewGenerator(rng, s.projGen)

	p := player.New("player_"+uuid.NewString(), playerName)
	roster := s.npcGen.GenerateRoster(InitialNPCCount, 0)
	teams := s.teamGen.GenerateInitial(roster, InitialTeams, 0)

	st := &State{
		Player:    p,
		NPCs:      roster,
		Teams:     teams,
		Queues:    inbox.NewQueues(rng),
		Inventory: shop.NewInventory(),
		Phase:     PhaseIdle,
	}
	st.AvailableProjects = s.projGen.GeneratePool(project.InitialPoolSize,
		project.PlayerSkills{FSkill: p.FSkill, MSkill: p.MSkill}, 0)
	st.Inbox.Post(inbox.Message{
		Kind:  inbox.KindCommunityNews,
		Title: "Welcome to the Scene",
		Body:  "The cover dance community is watching. Train, join a crew, put out covers.",
	})

	s.State = st
	log.Info("new game initialized",
		"player", playerName,
		"npcs", roster.ActiveCount(),
		"teams", len(teams.Active()),
		"offers", len(st.AvailableProjects))
	return s
}

// AbsDay is the current absolute day index.
func (s *Simulation) AbsDay() int {
	return s.State.Time.AbsDay()
}

// Paused reports whether a pending popup blocks time advance.
func (s *Simulation) Paused() bool {
	return s.State.Phase != PhaseIdle
}

// PlayerTeam resolves the player's current team, nil when teamless.
func (s *Simulation) PlayerTeam() *team.Team {
	if s.State.Player.TeamID == "" {
		return nil
	}
	return s.State.Teams.ByID(s.State.Player.TeamID)
}

func (s *Simulation) playerSkills() project.PlayerSkills {
	return project.PlayerSkills{FSkill: s.State.Player.FSkill, MSkill: s.State.Player.MSkill}
}

func (s *Simulation) activeProjectByID(id string) *project.Project {
	for _, p := range s.State.ActiveProjects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *Simulation) availableProjectByID(id string) *project.Project {
	for _, p := range s.State.AvailableProjects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *Simulation) removeAvailable(id string) {
	for i, p := range s.State.AvailableProjects {
		if p.ID == id {
			s.State.AvailableProjects = append(s.State.AvailableProjects[:i], s.State.AvailableProjects[i+1:]...)
			return
		}
	}
}

func (s *Simulation) removeActive(id string) {
	for i, p := range s.State.ActiveProjects {
		if p.ID == id {
			s.State.ActiveProjects = append(s.State.ActiveProjects[:i], s.State.ActiveProjects[i+1:]...)
			return
		}
	}
}
