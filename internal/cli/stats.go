package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dedededepepi/koala/internal/analytics"
	"github.com/dedededepepi/koala/internal/constants"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	now := time.Now()
	triggers := ctx.Triggers.GetAll()
	today := analytics.DayStats(triggers, now)
	settings := ctx.Settings.Get()

	fmt.Printf("Today (%s)\n", now.Format("Monday, Jan 2"))
	fmt.Printf("  Urges:    %d / %d target\n", today.Total, settings.DailyTarget)
	fmt.Printf("  Resisted: %d (%d%%)\n", today.Resisted, today.Rate)
	fmt.Printf("  Streak:   %d day(s)\n", analytics.Streak(triggers, now))
	return nil
}

type StatsCmd struct {
	Summary bool `help:"Show the extended summary (averages, best/worst day)."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	now := time.Now()
	triggers := ctx.Triggers.GetAll()

	periods := []struct {
		label string
		stats analytics.PeriodStats
	}{
		{"Today", analytics.DayStats(triggers, now)},
		{"This week", analytics.WeekStats(triggers, now)},
		{"This month", analytics.MonthStats(triggers, now)},
		{"All time", analytics.AllTimeStats(triggers)},
	}

	fmt.Println("Period stats:")
	for _, p := range periods {
		fmt.Printf("  %-10s %4d urges, %4d resisted (%d%%)\n", p.label, p.stats.Total, p.stats.Resisted, p.stats.Rate)
	}

	allTime := analytics.AllTimeStats(triggers)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	fmt.Printf("\nStreak:   %d day(s)\n", analytics.Streak(triggers, now))
	fmt.Printf("Trend:    %s\n", analytics.WeeklyTrend(triggers, now))
	fmt.Printf("Forecast: %d%%\n", analytics.Forecast(allTime.Rate, rng))

	if top := analytics.TopTriggers(triggers, constants.TopTriggersLimit); len(top) > 0 {
		fmt.Println("\nTop triggers:")
		for _, tc := range top {
			fmt.Printf("  %-20s %d\n", tc.Type, tc.Count)
		}
	}

	if c.Summary {
		s := analytics.Summarize(triggers, now)
		fmt.Println("\nSummary:")
		fmt.Printf("  Average per day:  %d\n", s.AveragePerDay)
		if s.MostCommonType != "" {
			fmt.Printf("  Most common type: %s\n", s.MostCommonType)
		}
		if s.BestDay != "" {
			fmt.Printf("  Best day:         %s\n", s.BestDay)
			fmt.Printf("  Worst day:        %s\n", s.WorstDay)
		}
	}
	return nil
}
