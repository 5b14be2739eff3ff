package tui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dedededepepi/koala/internal/analytics"
	"github.com/dedededepepi/koala/internal/constants"
	"github.com/dedededepepi/koala/internal/models"
	"github.com/dedededepepi/koala/internal/storage"
	"github.com/dedededepepi/koala/internal/urgesurf"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateStats
	StateAchievements
	StateSurf
)

const tabCount = 4

type tickMsg time.Time

// Model is the dashboard TUI. All displayed numbers are recomputed from the
// stores on every refresh; nothing is cached across refreshes.
type Model struct {
	triggers     *storage.TriggerStore
	settings     *storage.SettingsStore
	achievements *storage.AchievementStore

	state    SessionState
	keys     KeyMap
	help     help.Model
	progress progress.Model
	session  *urgesurf.Session
	rng      *rand.Rand

	today        analytics.PeriodStats
	week         analytics.PeriodStats
	month        analytics.PeriodStats
	allTime      analytics.PeriodStats
	streak       int
	top          []analytics.TriggerCount
	trend        analytics.Trend
	forecast     int
	badges       []models.Achievement
	userSettings models.Settings

	status   string
	quitting bool
	width    int
	height   int
}

func NewModel(triggers *storage.TriggerStore, settings *storage.SettingsStore, achievements *storage.AchievementStore, start SessionState) Model {
	m := Model{
		triggers:     triggers,
		settings:     settings,
		achievements: achievements,
		state:        start,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		progress:     progress.New(progress.WithDefaultGradient()),
		session:      urgesurf.New(urgesurf.DefaultDuration),
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	m.refresh()
	if start == StateSurf {
		m.session.Start(time.Now())
	}
	return m
}

// refresh re-reads the stores and recomputes every displayed statistic.
func (m *Model) refresh() {
	now := time.Now()
	all := m.triggers.GetAll()

	m.today = analytics.DayStats(all, now)
	m.week = analytics.WeekStats(all, now)
	m.month = analytics.MonthStats(all, now)
	m.allTime = analytics.AllTimeStats(all)
	m.streak = analytics.Streak(all, now)
	m.top = analytics.TopTriggers(all, constants.TopTriggersLimit)
	m.trend = analytics.WeeklyTrend(all, now)
	m.forecast = analytics.Forecast(m.allTime.Rate, m.rng)
	m.badges = m.achievements.GetAll()
	m.userSettings = m.settings.Get()
}

func (m Model) Init() tea.Cmd {
	if m.session.Active(time.Now()) {
		return tick()
	}
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
