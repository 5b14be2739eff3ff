package models

import "github.com/dedededepepi/koala/internal/constants"

// ThemeMode selects the UI color scheme
type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

// Valid reports whether m is one of the known theme modes.
func (m ThemeMode) Valid() bool {
	return m == ThemeLight || m == ThemeDark || m == ThemeSystem
}

// Settings is the single user configuration record.
//
// DarkMode is a legacy mirror of ThemeMode kept for records written before
// ThemeMode existed; ThemeMode is authoritative and DarkMode is re-derived
// from it on every write.
type Settings struct {
	ThemeMode     ThemeMode `json:"themeMode,omitempty"`
	DarkMode      bool      `json:"darkMode"`
	Notifications bool      `json:"notifications"`
	Haptics       bool      `json:"haptics"`
	DailyTarget   int       `json:"dailyTarget"`
	ReminderTime  string    `json:"reminderTime,omitempty"` // HH:MM, empty disables the reminder
}

// DefaultSettings returns the record used when no settings have been stored.
func DefaultSettings() Settings {
	return Settings{
		ThemeMode:     constants.DefaultThemeMode,
		Notifications: constants.DefaultNotifications,
		Haptics:       constants.DefaultHaptics,
		DailyTarget:   constants.DefaultDailyTarget,
	}
}

// SettingsPatch carries partial settings updates. Nil fields are left
// untouched.
type SettingsPatch struct {
	ThemeMode     *ThemeMode
	Notifications *bool
	Haptics       *bool
	DailyTarget   *int
	ReminderTime  *string
}

// Apply merges the patch onto the settings, re-deriving the legacy DarkMode
// mirror, and returns the result.
func (s Settings) Apply(p SettingsPatch) Settings {
	if p.ThemeMode != nil {
		s.ThemeMode = *p.ThemeMode
	}
	if p.Notifications != nil {
		s.Notifications = *p.Notifications
	}
	if p.Haptics != nil {
		s.Haptics = *p.Haptics
	}
	if p.DailyTarget != nil {
		s.DailyTarget = *p.DailyTarget
	}
	if p.ReminderTime != nil {
		s.ReminderTime = *p.ReminderTime
	}
	s.DarkMode = s.ThemeMode == ThemeDark
	return s
}
