package analytics

import (
	"math/rand"
	"testing"
	"time"

	"github.com/dedededepepi/koala/internal/models"
)

func trig(ts time.Time, resisted bool, compulsionType string) models.Trigger {
	return models.Trigger{
		ID:             "t-" + ts.Format("20060102150405.000000000"),
		Timestamp:      ts.Format(time.RFC3339),
		IsResisted:     resisted,
		CompulsionType: compulsionType,
	}
}

// onDay places n triggers at noon of the given day, the first `resisted` of
// them resisted.
func onDay(day time.Time, n, resisted int) []models.Trigger {
	noon := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, time.Local)
	out := make([]models.Trigger, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, trig(noon.Add(time.Duration(i)*time.Minute), i < resisted, ""))
	}
	return out
}

func TestDayStats(t *testing.T) {
	now := time.Date(2026, 8, 20, 15, 30, 0, 0, time.Local)
	var triggers []models.Trigger
	triggers = append(triggers, onDay(now, 3, 2)...)
	triggers = append(triggers, onDay(now.AddDate(0, 0, -1), 4, 4)...)

	got := DayStats(triggers, now)
	if got.Total != 3 || got.Resisted != 2 {
		t.Errorf("got %+v, want 3 total / 2 resisted", got)
	}
	if got.Rate != 67 {
		t.Errorf("2/3 should round to 67, got %d", got.Rate)
	}
}

func TestDayStatsEmptyWindowRateIsZero(t *testing.T) {
	now := time.Date(2026, 8, 20, 15, 30, 0, 0, time.Local)
	if got := DayStats(nil, now); got.Rate != 0 || got.Total != 0 {
		t.Errorf("empty window should be all zero, got %+v", got)
	}
}

func TestStatsBetweenSkipsUnparseable(t *testing.T) {
	now := time.Now()
	triggers := []models.Trigger{
		{ID: "bad", Timestamp: "yesterday-ish", IsResisted: true},
		trig(now, true, ""),
	}
	got := DayStats(triggers, now)
	if got.Total != 1 {
		t.Errorf("unparseable timestamps should be skipped, got total %d", got.Total)
	}
}

func TestWeekStatsSundayBoundary(t *testing.T) {
	// 2026-08-19 is a Wednesday; the containing week starts Sunday 08-16.
	now := time.Date(2026, 8, 19, 10, 0, 0, 0, time.Local)
	sunday := time.Date(2026, 8, 16, 0, 0, 0, 0, time.Local)

	triggers := []models.Trigger{
		trig(sunday, true, ""),                 // first instant of the week
		trig(sunday.Add(-time.Second), true, ""), // saturday before, excluded
		trig(now, false, ""),
	}
	got := WeekStats(triggers, now)
	if got.Total != 2 || got.Resisted != 1 {
		t.Errorf("got %+v, want 2 total / 1 resisted", got)
	}
}

func TestMonthStats(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.Local)
	triggers := []models.Trigger{
		trig(time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local), true, ""),
		trig(time.Date(2026, 8, 31, 23, 59, 59, 0, time.Local), false, ""),
		trig(time.Date(2026, 7, 31, 23, 59, 59, 0, time.Local), true, ""),
		trig(time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local), true, ""),
	}
	got := MonthStats(triggers, now)
	if got.Total != 2 {
		t.Errorf("expected 2 in-month triggers, got %d", got.Total)
	}
}

func TestStreak(t *testing.T) {
	now := time.Date(2026, 8, 20, 18, 0, 0, 0, time.Local)

	// Today 2/2 (100%), yesterday 1/3 (33%), day before 2/2 (100%).
	// The low-rate day breaks the walk, so only today counts.
	var triggers []models.Trigger
	triggers = append(triggers, onDay(now, 2, 2)...)
	triggers = append(triggers, onDay(now.AddDate(0, 0, -1), 3, 1)...)
	triggers = append(triggers, onDay(now.AddDate(0, 0, -2), 2, 2)...)

	if got := Streak(triggers, now); got != 1 {
		t.Errorf("expected streak 1, got %d", got)
	}
}

func TestStreakBreaksOnEmptyDay(t *testing.T) {
	now := time.Date(2026, 8, 20, 18, 0, 0, 0, time.Local)

	var triggers []models.Trigger
	triggers = append(triggers, onDay(now, 1, 1)...)
	triggers = append(triggers, onDay(now.AddDate(0, 0, -1), 1, 1)...)
	// Gap at -2.
	triggers = append(triggers, onDay(now.AddDate(0, 0, -3), 1, 1)...)

	if got := Streak(triggers, now); got != 2 {
		t.Errorf("expected streak 2 across the gap, got %d", got)
	}
}

func TestStreakExactlyHalfCounts(t *testing.T) {
	now := time.Date(2026, 8, 20, 18, 0, 0, 0, time.Local)
	triggers := onDay(now, 2, 1) // exactly 50%

	if got := Streak(triggers, now); got != 1 {
		t.Errorf("50%% day should count toward the streak, got %d", got)
	}
}

func TestStreakZeroWhenTodayEmpty(t *testing.T) {
	now := time.Date(2026, 8, 20, 18, 0, 0, 0, time.Local)
	triggers := onDay(now.AddDate(0, 0, -1), 3, 3)

	if got := Streak(triggers, now); got != 0 {
		t.Errorf("streak should be 0 when today has no triggers, got %d", got)
	}
}

func TestStreakCappedAtWindow(t *testing.T) {
	now := time.Date(2026, 8, 20, 18, 0, 0, 0, time.Local)
	var triggers []models.Trigger
	for i := 0; i < 45; i++ {
		triggers = append(triggers, onDay(now.AddDate(0, 0, -i), 1, 1)...)
	}

	if got := Streak(triggers, now); got != 30 {
		t.Errorf("streak should cap at 30, got %d", got)
	}
}

func TestTopTriggers(t *testing.T) {
	now := time.Now()
	var triggers []models.Trigger
	add := func(label string, n int) {
		for i := 0; i < n; i++ {
			triggers = append(triggers, trig(now.Add(time.Duration(len(triggers))*time.Minute), true, label))
		}
	}
	add("Handwashing", 2)
	add("Contamination", 3)
	add("Doubt", 3)
	add("Cleaning", 1)
	add("Handwashing", 3) // 5 total

	got := TopTriggers(triggers, 5)
	want := []TriggerCount{
		{"Handwashing", 5},
		{"Contamination", 3},
		{"Doubt", 3}, // ties keep first-seen order
		{"Cleaning", 1},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rank %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTopTriggersDefaultsUntypedToGeneral(t *testing.T) {
	now := time.Now()
	triggers := []models.Trigger{
		trig(now, true, ""),
		trig(now, false, ""),
		trig(now, true, "Checking"),
	}

	got := TopTriggers(triggers, 5)
	if len(got) != 2 || got[0].Type != "general" || got[0].Count != 2 {
		t.Errorf("untyped triggers should group under general: %+v", got)
	}
}

func TestTopTriggersLimit(t *testing.T) {
	now := time.Now()
	var triggers []models.Trigger
	for _, label := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		triggers = append(triggers, trig(now, true, label))
	}

	if got := TopTriggers(triggers, 5); len(got) != 5 {
		t.Errorf("expected ranking capped at 5, got %d", len(got))
	}
}

func TestWeeklyTrend(t *testing.T) {
	now := time.Date(2026, 8, 19, 12, 0, 0, 0, time.Local)
	lastWeek := now.AddDate(0, 0, -7)

	cases := []struct {
		name                   string
		thisN, thisR, lastN, lastR int
		want                   Trend
	}{
		{"improving", 4, 4, 4, 1, TrendImproving},
		{"declining", 4, 1, 4, 4, TrendDeclining},
		{"within threshold", 4, 2, 4, 2, TrendStable},
		{"no data", 0, 0, 0, 0, TrendStable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var triggers []models.Trigger
			triggers = append(triggers, onDay(now, tc.thisN, tc.thisR)...)
			triggers = append(triggers, onDay(lastWeek, tc.lastN, tc.lastR)...)
			if got := WeeklyTrend(triggers, now); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestForecastBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, rate := range []int{0, 3, 50, 97, 100} {
		for i := 0; i < 200; i++ {
			got := Forecast(rate, rng)
			if got < 0 || got > 100 {
				t.Fatalf("forecast %d out of [0,100] for rate %d", got, rate)
			}
			if diff := got - rate; diff < -5 || diff > 4 {
				t.Fatalf("forecast %d strayed beyond jitter from rate %d", got, rate)
			}
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil, time.Now())
	if got.TotalTriggers != 0 || got.WeeklyTrend != TrendStable || got.MostCommonType != "" {
		t.Errorf("empty collection should yield zero summary, got %+v", got)
	}
}

func TestSummarize(t *testing.T) {
	now := time.Date(2026, 8, 20, 18, 0, 0, 0, time.Local)

	var triggers []models.Trigger
	triggers = append(triggers, onDay(now, 2, 2)...)
	triggers = append(triggers, onDay(now.AddDate(0, 0, -1), 2, 1)...)
	for i := range triggers {
		triggers[i].CompulsionType = "Checking"
	}

	got := Summarize(triggers, now)
	if got.TotalTriggers != 4 || got.TotalResisted != 3 {
		t.Errorf("totals wrong: %+v", got)
	}
	if got.ResistanceRate != 75 {
		t.Errorf("expected rate 75, got %d", got.ResistanceRate)
	}
	if got.MostCommonType != "Checking" {
		t.Errorf("expected most common type Checking, got %q", got.MostCommonType)
	}
	if got.StreakDays != 2 {
		t.Errorf("expected streak 2, got %d", got.StreakDays)
	}
	if got.BestDay != "Thursday" {
		t.Errorf("expected best day Thursday, got %q", got.BestDay)
	}
}
