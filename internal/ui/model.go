// Package ui is the interactive terminal front-end: a status header, the
// offer board, active projects and the inbox, with modal popups for events,
// project results and costume choices. It drives the same action surface
// any presentation layer would.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/talgya/cover-life/internal/costume"
	"github.com/talgya/cover-life/internal/sim"
)

type tickMsg time.Time

// Tab is the focused main pane.
type tab int

const (
	tabOffers tab = iota
	tabActive
	tabInbox
	tabCount
)

// Model is the bubbletea model wrapping the simulation.
type Model struct {
	game  *sim.Simulation
	speed int

	tab    tab
	cursor int
	width  int
	height int
}

// New builds the TUI model.
func New(game *sim.Simulation, speed int) Model {
	if speed < 1 {
		speed = 1
	}
	return Model{game: game, speed: speed}
}

// interval is the real time per simulated day at the current speed.
func (m Model) interval() time.Duration {
	return time.Second / time.Duration(m.speed)
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.speed > 0 && !m.game.Paused() && !m.game.State.Ended {
			m.game.AdvanceDay()
		}
		return m, m.tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.game.State

	// Popups capture all input.
	switch st.Phase {
	case sim.PhaseShowingEvent:
		return m.handleEventKey(msg)
	case sim.PhaseShowingResult:
		if msg.String() == "enter" || msg.String() == " " {
			m.game.AcknowledgeResult()
		}
		return m, nil
	case sim.PhaseShowingCostume:
		return m.handleCostumeKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.tab = (m.tab + 1) % tabCount
		m.cursor = 0
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}
	case "1":
		m.speed = 1
	case "2":
		m.speed = 2
	case "5":
		m.speed = 5
	case "0":
		m.speed = 10
	case "n":
		if !st.Ended {
			m.game.AdvanceDay()
		}
	case "enter", " ":
		m.activate()
	case "a":
		if m.tab == tabActive && m.cursor < len(st.ActiveProjects) {
			m.game.AbandonProject(st.ActiveProjects[m.cursor].ID)
			m.cursor = 0
		}
	case "f":
		if m.tab == tabActive && m.cursor < len(st.ActiveProjects) {
			m.game.FundProjectTraining(st.ActiveProjects[m.cursor].ID)
		}
	case "t":
		m.game.BuyTonic()
	case "u":
		m.game.UseTonic()
	}
	return m, nil
}

func (m *Model) activate() {
	st := m.game.State
	switch m.tab {
	case tabOffers:
		if m.cursor < len(st.AvailableProjects) {
			m.game.AcceptProject(st.AvailableProjects[m.cursor].ID, sim.AcceptOptions{BaseTraining: 2})
			m.cursor = 0
		}
	case tabInbox:
		if m.cursor < len(st.Inbox.Messages) {
			st.Inbox.MarkRead(st.Inbox.Messages[len(st.Inbox.Messages)-1-m.cursor].ID)
		}
	}
}

func (m Model) handleEventKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	evt := m.game.State.PendingEvent
	if evt == nil {
		return m, nil
	}
	if len(evt.Choices) > 0 {
		switch msg.String() {
		case "1":
			m.game.ChooseEventOption(0)
		case "2":
			if len(evt.Choices) > 1 {
				m.game.ChooseEventOption(1)
			}
		case "esc":
			m.game.AcknowledgeEvent()
		}
		return m, nil
	}
	if msg.String() == "enter" || msg.String() == " " {
		m.game.AcknowledgeEvent()
	}
	return m, nil
}

func (m Model) handleCostumeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.game.State
	switch msg.String() {
	case "enter", " ":
		id := st.PendingCostumeProjectID
		for _, p := range st.ActiveProjects {
			if p.ID == id {
				sel := costume.AutoSelect(p.RequiredStyle, st.Inventory.Clothes, st.Player.Money)
				if err := m.game.SubmitCostumeSelection(id, sel); err != nil {
					m.game.SubmitCostumeSelection(id, costume.Selection{})
				}
				break
			}
		}
	case "esc":
		// Skip: submit nothing and take the extension.
		m.game.SubmitCostumeSelection(st.PendingCostumeProjectID, costume.Selection{})
	}
	return m, nil
}

func (m Model) listLen() int {
	st := m.game.State
	switch m.tab {
	case tabOffers:
		return len(st.AvailableProjects)
	case tabActive:
		return len(st.ActiveProjects)
	case tabInbox:
		return len(st.Inbox.Messages)
	}
	return 0
}

func (m Model) View() string {
	st := m.game.State
	var b strings.Builder

	b.WriteString(titleStyle.Render("K-Cover Dance Life"))
	b.WriteString("\n")
	b.WriteString(m.statusBar())
	b.WriteString("\n\n")

	switch st.Phase {
	case sim.PhaseShowingEvent:
		b.WriteString(m.eventPopup())
	case sim.PhaseShowingResult:
		b.WriteString(m.resultPopup())
	case sim.PhaseShowingCostume:
		b.WriteString(m.costumePopup())
	default:
		b.WriteString(m.mainPane())
	}

	b.WriteString("\n")
	b.WriteString(m.helpLine())
	return b.String()
}

func (m Model) statusBar() string {
	p := m.game.State.Player
	team := "solo"
	if t := m.game.PlayerTeam(); t != nil {
		team = t.Name
	}
	return statusStyle.Render(fmt.Sprintf(
		"%s · %s₽ · rep %d · pop %s · tired %d · F %d / M %d · %s · x%d",
		m.game.State.Time.String(),
		humanize.Comma(int64(p.Money)),
		p.Reputation,
		humanize.Comma(int64(p.Popularity)),
		p.Tiredness,
		p.FSkill, p.MSkill,
		team,
		m.speed,
	))
}

func (m Model) mainPane() string {
	st := m.game.State
	var lines []string

	switch m.tab {
	case tabOffers:
		lines = append(lines, keyStyle.Render("OFFERS"))
		for i, p := range st.AvailableProjects {
			marker := "  "
			if i == m.cursor {
				marker = "> "
			}
			lines = append(lines, fmt.Sprintf("%s%s (%s, %dw, skill %d, %s₽/training)",
				marker, p.Name, p.RequiredStyle, p.DurationWeeks, p.MinSkill,
				humanize.Comma(int64(p.TrainingCost))))
		}
	case tabActive:
		lines = append(lines, keyStyle.Render("ACTIVE"))
		for i, p := range st.ActiveProjects {
			marker := "  "
			if i == m.cursor {
				marker = "> "
			}
			flags := ""
			if p.NeedsFunding {
				flags = badStyle.Render(" [needs funding]")
			}
			lines = append(lines, fmt.Sprintf("%s%s %.0f%% (day %d/%d)%s",
				marker, p.Name, p.Progress(), p.DaysActive, p.DeadlineDays(), flags))
		}
	case tabInbox:
		lines = append(lines, keyStyle.Render(fmt.Sprintf("INBOX (%d unread)", st.Inbox.Unread())))
		msgs := st.Inbox.Messages
		for i := len(msgs) - 1; i >= 0 && len(lines) < 16; i-- {
			msg := msgs[i]
			marker := "  "
			if len(msgs)-1-i == m.cursor {
				marker = "> "
			}
			title := msg.Title
			if !msg.Read {
				title = goodStyle.Render("● " + title)
			}
			lines = append(lines, fmt.Sprintf("%s%s %s", marker, title, dimStyle.Render(msg.Body)))
		}
	}

	if len(lines) == 1 {
		lines = append(lines, dimStyle.Render("  (empty)"))
	}
	return paneStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) eventPopup() string {
	evt := m.game.State.PendingEvent
	if evt == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(keyStyle.Render(evt.Title))
	b.WriteString("\n\n" + evt.Text + "\n")
	if len(evt.Choices) > 0 {
		b.WriteString("\n")
		for i, c := range evt.Choices {
			b.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render(fmt.Sprintf("[%d]", i+1)), c.Text))
		}
	} else {
		b.WriteString("\n" + dimStyle.Render("enter to continue"))
	}
	return popupStyle.Render(b.String())
}

func (m Model) resultPopup() string {
	prj := m.game.State.PendingResult
	if prj == nil {
		return ""
	}
	var b strings.Builder
	if prj.Success {
		b.WriteString(goodStyle.Render("COVER RELEASED — " + prj.Name))
		b.WriteString(fmt.Sprintf("\n\n%d likes · %d dislikes · %d comments\n",
			prj.Likes, prj.Dislikes, len(prj.Comments)))
		for i, c := range prj.Comments {
			if i >= 5 {
				b.WriteString(dimStyle.Render(fmt.Sprintf("…and %d more\n", len(prj.Comments)-5)))
				break
			}
			b.WriteString(dimStyle.Render("· "+c.Text) + "\n")
		}
	} else {
		b.WriteString(badStyle.Render("COVER SHELVED — " + prj.Name))
		b.WriteString("\n\n" + dimStyle.Render("It never went public."))
	}
	b.WriteString("\n" + dimStyle.Render("enter to continue"))
	return popupStyle.Render(b.String())
}

func (m Model) costumePopup() string {
	st := m.game.State
	var name string
	for _, p := range st.ActiveProjects {
		if p.ID == st.PendingCostumeProjectID {
			name = p.Name
			break
		}
	}
	var b strings.Builder
	b.WriteString(keyStyle.Render("COSTUME TIME — " + name))
	b.WriteString("\n\nThe halfway mark. The cover needs a look.\n")
	b.WriteString("\n" + dimStyle.Render("enter: auto-pick the best affordable outfit · esc: postpone a week"))
	return popupStyle.Render(b.String())
}

func (m Model) helpLine() string {
	return dimStyle.Render("tab: pane · ↑/↓: move · enter: accept/read · a: abandon · f: fund · t/u: tonic · 1/2/5/0: speed · n: next day · q: quit")
}
