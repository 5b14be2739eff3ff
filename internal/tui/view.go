package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dedededepepi/koala/internal/analytics"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateStats:
		content = m.viewStats()
	case StateAchievements:
		content = m.viewAchievements()
	case StateSurf:
		content = m.viewSurf()
	}

	sections := []string{m.viewTabs(), docStyle.Render(content)}
	if m.status != "" {
		sections = append(sections, statusStyle.Render("  "+m.status))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Stats", "Achievements", "Surf"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Today") + "\n\n")
	fmt.Fprintf(&b, "  Urges:    %d / %d target\n", m.today.Total, m.userSettings.DailyTarget)
	fmt.Fprintf(&b, "  Resisted: %s\n", resistedStyle.Render(fmt.Sprintf("%d (%d%%)", m.today.Resisted, m.today.Rate)))
	fmt.Fprintf(&b, "  Gave in:  %s\n", gaveInStyle.Render(fmt.Sprintf("%d", m.today.Total-m.today.Resisted)))
	fmt.Fprintf(&b, "  Streak:   %d day(s)\n", m.streak)
	b.WriteString("\n" + labelStyle.Render("  [r] resisted an urge   [g] gave in"))
	return b.String()
}

func (m Model) viewStats() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Statistics") + "\n\n")

	row := func(label string, stats analytics.PeriodStats) {
		fmt.Fprintf(&b, "  %-10s %3d urges, %3d resisted (%d%%)\n", label, stats.Total, stats.Resisted, stats.Rate)
	}
	row("This week", m.week)
	row("This month", m.month)
	row("All time", m.allTime)

	fmt.Fprintf(&b, "\n  Streak: %d day(s)   Trend: %s   Forecast: %d%%\n", m.streak, m.trend, m.forecast)

	if len(m.top) > 0 {
		b.WriteString("\n" + titleStyle.Render("Top triggers") + "\n")
		for _, tc := range m.top {
			fmt.Fprintf(&b, "  %-20s %d\n", tc.Type, tc.Count)
		}
	}
	return b.String()
}

func (m Model) viewAchievements() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Achievements") + "\n\n")
	for _, a := range m.badges {
		check := " "
		if a.Earned {
			check = "✓"
		}
		fmt.Fprintf(&b, "  %s %s %s — %s\n", check, a.Icon, a.Title, labelStyle.Render(a.Description))
		if a.Target > 1 {
			pct := float64(a.Progress) / float64(a.Target)
			fmt.Fprintf(&b, "      %s %d/%d\n", m.progress.ViewAs(pct), a.Progress, a.Target)
		}
	}
	b.WriteString("\n" + labelStyle.Render("  [c] recheck"))
	return b.String()
}

func (m Model) viewSurf() string {
	now := time.Now()
	var b strings.Builder
	b.WriteString(titleStyle.Render("Urge Surf") + "\n\n")

	if m.session.Active(now) {
		remaining := m.session.Remaining(now).Round(time.Second)
		fmt.Fprintf(&b, "  Ride it out. %s left.\n\n", remaining)
		b.WriteString("  " + m.progress.ViewAs(m.session.Progress(now)) + "\n")
		b.WriteString("\n" + labelStyle.Render("  Urges crest and fall like waves. [s] stop"))
	} else {
		b.WriteString("  No ride in progress.\n")
		b.WriteString("\n" + labelStyle.Render("  [s] start a 5-minute urge surf"))
	}
	return b.String()
}
