// Package inbox holds the player's message feed and the two pending-response
// queues (team applications and collab proposals).
package inbox

import (
	"math/rand"
	"sort"

	"github.com/google/uuid"
)

// MessageKind classifies an inbox entry.
type MessageKind string

const (
	KindChat              MessageKind = "chat"
	KindApplicationResult MessageKind = "application_result"
	KindTeamInvite        MessageKind = "team_invite"
	KindTeamProjectOffer  MessageKind = "team_project_offer"
	KindCollabOffer       MessageKind = "collab_offer"
	KindCollabResponse    MessageKind = "collab_response"
	KindBirthday          MessageKind = "birthday"
	KindNewYear           MessageKind = "new_year"
	KindCommunityNews     MessageKind = "community_news"
)

// Message is one inbox entry. The feed is append-only; marking a message
// read is the only mutation.
type Message struct {
	ID        string      `json:"id"`
	Kind      MessageKind `json:"kind"`
	FromNPCID string      `json:"from_npc_id,omitempty"`
	TeamID    string      `json:"team_id,omitempty"`
	ProjectID string      `json:"project_id,omitempty"`
	Title     string      `json:"title"`
	Body      string      `json:"body"`
	AbsDay    int         `json:"abs_day"`
	Read      bool        `json:"read"`
}

// Inbox is the player's message feed.
type Inbox struct {
	Messages []Message `json:"messages"`
}

// Post appends a message and returns its id.
func (b *Inbox) Post(m Message) string {
	if m.ID == "" {
		m.ID = "msg_" + uuid.NewString()
	}
	b.Messages = append(b.Messages, m)
	return m.ID
}

// MarkRead flags a message as read. Unknown ids are ignored.
func (b *Inbox) MarkRead(id string) {
	for i := range b.Messages {
		if b.Messages[i].ID == id {
			b.Messages[i].Read = true
			return
		}
	}
}

// Unread counts messages not yet opened.
func (b *Inbox) Unread() int {
	n := 0
	for i := range b.Messages {
		if !b.Messages[i].Read {
			n++
		}
	}
	return n
}

// MaxApplicationSkillGap is the widest skill shortfall a team tolerates when
// resolving a player application: team average dominant skill minus the
// player's comparable skill.
const MaxApplicationSkillGap = 18

// TeamApplication is a pending request to join a team.
type TeamApplication struct {
	ID               string `json:"id"`
	TeamID           string `json:"team_id"`
	CreatedAbsDay    int    `json:"created_abs_day"`
	ResolutionAbsDay int    `json:"resolution_abs_day"`
	Attempted        bool   `json:"attempted"`
	Accepted         bool   `json:"accepted"`
}

// CollabProposal is a pending joint-project proposal to an NPC.
type CollabProposal struct {
	ID               string `json:"id"`
	NPCID            string `json:"npc_id"`
	CreatedAbsDay    int    `json:"created_abs_day"`
	ResolutionAbsDay int    `json:"resolution_abs_day"`
	Attempted        bool   `json:"attempted"`
	Accepted         bool   `json:"accepted"`
}

// Queues holds both pending-response queues, ordered by resolution day.
type Queues struct {
	Applications []*TeamApplication `json:"applications"`
	Collabs      []*CollabProposal  `json:"collabs"`

	rng *rand.Rand
}

func NewQueues(rng *rand.Rand) *Queues {
	return &Queues{rng: rng}
}

// SetRand re-attaches a random source after a load.
func (q *Queues) SetRand(rng *rand.Rand) {
	q.rng = rng
}

// SubmitApplication enqueues a team application. The team answers after a
// random 1-7 day delay.
func (q *Queues) SubmitApplication(teamID string, absDay int) *TeamApplication {
	app := &TeamApplication{
		ID:               "app_" + uuid.NewString(),
		TeamID:           teamID,
		CreatedAbsDay:    absDay,
		ResolutionAbsDay: absDay + 1 + q.rng.Intn(7),
	}
	q.Applications = append(q.Applications, app)
	sort.SliceStable(q.Applications, func(i, j int) bool {
		return q.Applications[i].ResolutionAbsDay < q.Applications[j].ResolutionAbsDay
	})
	return app
}

// HasPendingApplication reports an unresolved application for a team.
func (q *Queues) HasPendingApplication(teamID string) bool {
	for _, app := range q.Applications {
		if app.TeamID == teamID && !app.Attempted {
			return true
		}
	}
	return false
}

// ProposeCollab enqueues a collab proposal with the same 1-7 day delay.
func (q *Queues) ProposeCollab(npcID string, absDay int) *CollabProposal {
	c := &CollabProposal{
		ID:               "collab_" + uuid.NewString(),
		NPCID:            npcID,
		CreatedAbsDay:    absDay,
		ResolutionAbsDay: absDay + 1 + q.rng.Intn(7),
	}
	q.Collabs = append(q.Collabs, c)
	sort.SliceStable(q.Collabs, func(i, j int) bool {
		return q.Collabs[i].ResolutionAbsDay < q.Collabs[j].ResolutionAbsDay
	})
	return c
}

// HasPendingCollab reports an unresolved proposal to an NPC.
func (q *Queues) HasPendingCollab(npcID string) bool {
	for _, c := range q.Collabs {
		if c.NPCID == npcID && !c.Attempted {
			return true
		}
	}
	return false
}

// CollabAcceptChance decays with how long a proposal sat unanswered.
func CollabAcceptChance(elapsedDays int) float64 {
	switch {
	case elapsedDays <= 5:
		return 0.7
	case elapsedDays <= 10:
		return 0.5
	case elapsedDays <= 15:
		return 0.3
	default:
		return 0.1
	}
}

// ResolveDue resolves every entry with resolutionDay <= today that has not
// been attempted. Each entry resolves exactly once: the attempted flag is
// set before any outcome is applied, so a re-scan never double-applies.
// applicationAccepts answers whether a team takes the player in.
func (q *Queues) ResolveDue(absDay int, applicationAccepts func(teamID string) bool) (apps []*TeamApplication, collabs []*CollabProposal) {
	for _, app := range q.Applications {
		if app.Attempted || app.ResolutionAbsDay > absDay {
			continue
		}
		app.Attempted = true
		app.Accepted = applicationAccepts(app.TeamID)
		apps = append(apps, app)
	}
	for _, c := range q.Collabs {
		if c.Attempted || c.ResolutionAbsDay > absDay {
			continue
		}
		c.Attempted = true
		elapsed := absDay - c.CreatedAbsDay
		c.Accepted = q.rng.Float64() < CollabAcceptChance(elapsed)
		collabs = append(collabs, c)
	}
	return apps, collabs
}
