package constants

const (
	AppName           = "koala"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.local/share/koala/koala.db"

	// Storage keys. Each key holds one serialized blob; the three blobs are
	// independent resources and are never written together.
	TriggersKey     = "koala.triggers"
	SettingsKey     = "koala.settings"
	AchievementsKey = "koala.achievements"

	// DateFormat is the standard calendar-date format used throughout the
	// application (YYYY-MM-DD). All day bucketing uses local time.
	DateFormat = "2006-01-02"

	// ClockFormat is the wall-clock format used for reminder times (HH:MM)
	ClockFormat = "15:04"

	// ExportVersion is the version field written into backup documents
	ExportVersion = "1.0"
)

// Default settings values
const (
	DefaultThemeMode     = "system"
	DefaultNotifications = true
	DefaultHaptics       = true
	DefaultDailyTarget   = 15
)

// Achievement ids. The catalog is a fixed set; ids are stable across
// releases because they appear in exported backup documents.
const (
	AchievementFirstResistance     = "first_resistance"
	AchievementPerfectDay          = "perfect_day"
	AchievementWeekWarrior         = "week_warrior"
	AchievementConsistencyChampion = "consistency_champion"
	AchievementMilestone10         = "milestone_10"
	AchievementMilestone50         = "milestone_50"
)

// Analytics constants
const (
	// StreakWindowDays caps how far back the streak scan walks
	StreakWindowDays = 30

	// StreakMinRatePct is the minimum daily resistance rate for a day to
	// extend the streak
	StreakMinRatePct = 50

	// TopTriggersLimit caps the top-trigger ranking length
	TopTriggersLimit = 5

	// TrendThresholdPct is the week-over-week rate delta beyond which the
	// trend reads as improving or declining rather than stable
	TrendThresholdPct = 5

	// DefaultCompulsionType labels triggers logged without a type
	DefaultCompulsionType = "general"
)
