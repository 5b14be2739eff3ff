package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/dedededepepi/koala/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = min(msg.Width-8, 50)

	case tickMsg:
		now := time.Time(msg)
		if m.session.Done(now) {
			m.session.Stop()
			m.status = "You rode it out. The urge passed. 🌊"
			return m, nil
		}
		if m.session.Active(now) {
			return m, tick()
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.status = ""
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.status = ""
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Resist):
			return m.logTrigger(true), nil
		case key.Matches(msg, m.keys.GiveIn):
			return m.logTrigger(false), nil
		case key.Matches(msg, m.keys.Check):
			if _, err := m.achievements.CheckAndUpdate(); err != nil {
				m.status = fmt.Sprintf("Achievement check failed: %v", err)
			}
			m.refresh()
		case key.Matches(msg, m.keys.Surf):
			now := time.Now()
			if m.session.Active(now) {
				m.session.Stop()
				m.status = "Surf stopped."
				return m, nil
			}
			m.state = StateSurf
			m.status = ""
			m.session.Start(now)
			return m, tick()
		}
	}

	return m, nil
}

// logTrigger records a quick resist/give-in entry and refreshes the view,
// announcing any newly earned achievement in the status line.
func (m Model) logTrigger(resisted bool) Model {
	before := m.badges
	trigger := models.Trigger{
		ID:         uuid.New().String(),
		Timestamp:  time.Now().Format(time.RFC3339),
		IsResisted: resisted,
	}
	if err := m.triggers.Add(trigger); err != nil {
		m.status = fmt.Sprintf("Failed to log: %v", err)
		return m
	}

	after, err := m.achievements.CheckAndUpdate()
	if err != nil {
		m.status = fmt.Sprintf("Logged, but achievement check failed: %v", err)
		m.refresh()
		return m
	}

	if resisted {
		m.status = "Logged a resisted urge. ✓"
	} else {
		m.status = "Logged. Tomorrow is another chance."
	}
	for _, earned := range newlyEarned(before, after) {
		m.status += fmt.Sprintf("  %s %s earned!", earned.Icon, earned.Title)
	}

	m.refresh()
	return m
}

func newlyEarned(before, after []models.Achievement) []models.Achievement {
	wasEarned := map[string]bool{}
	for _, a := range before {
		if a.Earned {
			wasEarned[a.ID] = true
		}
	}
	var fresh []models.Achievement
	for _, a := range after {
		if a.Earned && !wasEarned[a.ID] {
			fresh = append(fresh, a)
		}
	}
	return fresh
}
