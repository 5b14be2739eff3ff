// Package analytics derives display statistics from a trigger collection
// snapshot. Every function is a pure transform of (triggers, now); nothing
// here caches, so correctness only depends on callers re-reading the store.
package analytics

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/dedededepepi/koala/internal/constants"
	"github.com/dedededepepi/koala/internal/models"
)

// PeriodStats aggregates one calendar window.
type PeriodStats struct {
	Total    int
	Resisted int
	Rate     int // rounded percentage, 0 for an empty window
}

// StatsBetween aggregates the triggers whose timestamp falls within
// [start, end] inclusive. Triggers with unparseable timestamps are skipped.
func StatsBetween(triggers []models.Trigger, start, end time.Time) PeriodStats {
	var stats PeriodStats
	for _, t := range triggers {
		ts, err := t.Time()
		if err != nil {
			continue
		}
		if ts.Before(start) || ts.After(end) {
			continue
		}
		stats.Total++
		if t.IsResisted {
			stats.Resisted++
		}
	}
	stats.Rate = ratePct(stats.Resisted, stats.Total)
	return stats
}

func ratePct(resisted, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(resisted) / float64(total) * 100))
}

func startOfDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// DayStats aggregates the calendar day containing now.
func DayStats(triggers []models.Trigger, now time.Time) PeriodStats {
	start := startOfDay(now)
	return StatsBetween(triggers, start, start.AddDate(0, 0, 1).Add(-time.Nanosecond))
}

// WeekStats aggregates the Sunday-based calendar week containing now.
func WeekStats(triggers []models.Trigger, now time.Time) PeriodStats {
	start := startOfDay(now).AddDate(0, 0, -int(now.Local().Weekday()))
	return StatsBetween(triggers, start, start.AddDate(0, 0, 7).Add(-time.Nanosecond))
}

// MonthStats aggregates the calendar month containing now.
func MonthStats(triggers []models.Trigger, now time.Time) PeriodStats {
	local := now.Local()
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, time.Local)
	return StatsBetween(triggers, start, start.AddDate(0, 1, 0).Add(-time.Nanosecond))
}

// AllTimeStats aggregates the full collection.
func AllTimeStats(triggers []models.Trigger) PeriodStats {
	var stats PeriodStats
	for _, t := range triggers {
		stats.Total++
		if t.IsResisted {
			stats.Resisted++
		}
	}
	stats.Rate = ratePct(stats.Resisted, stats.Total)
	return stats
}

func bucketByDay(triggers []models.Trigger) map[string][]models.Trigger {
	buckets := map[string][]models.Trigger{}
	for _, t := range triggers {
		day := t.Day()
		if day == "" {
			continue
		}
		buckets[day] = append(buckets[day], t)
	}
	return buckets
}

// Streak counts consecutive calendar days, walking backward from today,
// each with at least one trigger and a resistance rate of at least 50%.
// The first day with zero triggers or a sub-50% rate stops the walk; the
// scan window is capped at 30 days.
func Streak(triggers []models.Trigger, now time.Time) int {
	buckets := bucketByDay(triggers)

	streak := 0
	for i := 0; i < constants.StreakWindowDays; i++ {
		day := now.AddDate(0, 0, -i).Local().Format(constants.DateFormat)
		dayTriggers := buckets[day]
		if len(dayTriggers) == 0 {
			break
		}
		resisted := 0
		for _, t := range dayTriggers {
			if t.IsResisted {
				resisted++
			}
		}
		// rate >= 50% without the float round-trip
		if resisted*100 < len(dayTriggers)*constants.StreakMinRatePct {
			break
		}
		streak++
	}
	return streak
}

// TriggerCount is one entry in the top-trigger ranking.
type TriggerCount struct {
	Type  string
	Count int
}

// TopTriggers groups the collection by compulsion type and returns the most
// frequent types, capped at limit. The sort is stable: types with equal
// counts keep their first-seen order.
func TopTriggers(triggers []models.Trigger, limit int) []TriggerCount {
	counts := map[string]int{}
	var order []string
	for _, t := range triggers {
		label := t.Type()
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	ranked := make([]TriggerCount, 0, len(order))
	for _, label := range order {
		ranked = append(ranked, TriggerCount{Type: label, Count: counts[label]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Trend describes the week-over-week resistance rate direction.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// WeeklyTrend compares this week's resistance rate against last week's.
// A delta beyond ±5 points reads as improving or declining.
func WeeklyTrend(triggers []models.Trigger, now time.Time) Trend {
	thisWeek := WeekStats(triggers, now)
	lastWeek := WeekStats(triggers, now.AddDate(0, 0, -7))

	diff := thisWeek.Rate - lastWeek.Rate
	switch {
	case diff > constants.TrendThresholdPct:
		return TrendImproving
	case diff < -constants.TrendThresholdPct:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// Forecast nudges the all-time rate by a bounded random jitter in [-5, +4]
// and clamps the result to [0, 100]. Purely decorative: this is a morale
// number for the stats screen, not a statistical model.
func Forecast(allTimeRate int, rng *rand.Rand) int {
	predicted := allTimeRate + rng.Intn(10) - 5
	if predicted < 0 {
		return 0
	}
	if predicted > 100 {
		return 100
	}
	return predicted
}

// Summary is the full derived-statistics surface for the stats screen.
type Summary struct {
	TotalTriggers  int
	TotalResisted  int
	ResistanceRate int
	StreakDays     int
	AveragePerDay  int
	MostCommonType string
	BestDay        string // weekday name over the trailing 7 days
	WorstDay       string
	WeeklyTrend    Trend
}

// Summarize computes the summary in a single pass over the collection.
// A nil or empty collection yields the zero summary with a stable trend.
func Summarize(triggers []models.Trigger, now time.Time) Summary {
	if len(triggers) == 0 {
		return Summary{WeeklyTrend: TrendStable}
	}

	all := AllTimeStats(triggers)
	summary := Summary{
		TotalTriggers:  all.Total,
		TotalResisted:  all.Resisted,
		ResistanceRate: all.Rate,
		StreakDays:     Streak(triggers, now),
		WeeklyTrend:    WeeklyTrend(triggers, now),
	}

	if top := TopTriggers(triggers, 1); len(top) > 0 {
		summary.MostCommonType = top[0].Type
	}

	summary.AveragePerDay = averagePerDay(triggers, now)
	summary.BestDay, summary.WorstDay = bestAndWorstDay(triggers, now)
	return summary
}

func averagePerDay(triggers []models.Trigger, now time.Time) int {
	var first time.Time
	for _, t := range triggers {
		ts, err := t.Time()
		if err != nil {
			continue
		}
		if first.IsZero() || ts.Before(first) {
			first = ts
		}
	}
	if first.IsZero() {
		return 0
	}

	days := int(math.Ceil(now.Sub(first).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return int(math.Round(float64(len(triggers)) / float64(days)))
}

// bestAndWorstDay ranks the trailing seven calendar days by resistance rate
// and returns their weekday names. Days without triggers count as 0%.
func bestAndWorstDay(triggers []models.Trigger, now time.Time) (best, worst string) {
	bestRate, worstRate := -1, 101
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, -i)
		stats := DayStats(triggers, day)
		if stats.Rate > bestRate {
			bestRate = stats.Rate
			best = day.Local().Weekday().String()
		}
		if stats.Rate < worstRate {
			worstRate = stats.Rate
			worst = day.Local().Weekday().String()
		}
	}
	return best, worst
}
