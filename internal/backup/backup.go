// Package backup implements the versioned export/import document that moves
// all three stores in and out of the app as a single JSON file.
package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dedededepepi/koala/internal/constants"
	"github.com/dedededepepi/koala/internal/models"
	"github.com/dedededepepi/koala/internal/storage"
)

// Manager bundles the three stores behind the export/import surface.
type Manager struct {
	triggers     *storage.TriggerStore
	settings     *storage.SettingsStore
	achievements *storage.AchievementStore
}

func NewManager(triggers *storage.TriggerStore, settings *storage.SettingsStore, achievements *storage.AchievementStore) *Manager {
	return &Manager{
		triggers:     triggers,
		settings:     settings,
		achievements: achievements,
	}
}

// Export serializes all three stores into an indented backup document.
func (m *Manager) Export() ([]byte, error) {
	doc := models.ExportDocument{
		Version:      constants.ExportVersion,
		ExportDate:   time.Now().Format(time.RFC3339),
		Triggers:     m.triggers.GetAll(),
		Settings:     m.settings.Get(),
		Achievements: m.achievements.GetAll(),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to export data: %w", err)
	}
	return data, nil
}

// rawDocument defers per-section decoding so each record can be shape-checked
// before anything is written.
type rawDocument struct {
	Version      string            `json:"version"`
	Triggers     []json.RawMessage `json:"triggers"`
	Settings     json.RawMessage   `json:"settings"`
	Achievements []json.RawMessage `json:"achievements"`
}

// Import parses and validates a backup document, then overwrites the stores.
// Validation happens entirely before the first write: a malformed document
// fails the whole import and leaves stored state untouched. Within the
// trigger and achievement sections, records missing required fields are
// dropped rather than failing the import.
func (m *Manager) Import(data []byte) error {
	var doc rawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to import data - invalid format: %w", err)
	}

	triggers := validTriggers(doc.Triggers)
	achievements := validAchievements(doc.Achievements)

	var settings *models.Settings
	if len(doc.Settings) > 0 {
		coerced := coerceSettings(doc.Settings)
		settings = &coerced
	}

	// Validation is done; apply the writes.
	if doc.Triggers != nil {
		if err := m.triggers.ReplaceAll(triggers); err != nil {
			return err
		}
	}
	if settings != nil {
		if err := m.settings.Save(*settings); err != nil {
			return err
		}
	}
	if doc.Achievements != nil {
		if err := m.achievements.ReplaceAll(achievements); err != nil {
			return err
		}
	}
	return nil
}

func validTriggers(raw []json.RawMessage) []models.Trigger {
	triggers := make([]models.Trigger, 0, len(raw))
	for _, entry := range raw {
		fields := map[string]any{}
		if err := json.Unmarshal(entry, &fields); err != nil {
			continue
		}
		if !hasString(fields, "id") || !hasString(fields, "timestamp") || !hasBool(fields, "isResisted") {
			continue
		}
		var t models.Trigger
		if err := json.Unmarshal(entry, &t); err != nil {
			continue
		}
		triggers = append(triggers, t)
	}
	return triggers
}

func validAchievements(raw []json.RawMessage) []models.Achievement {
	achievements := make([]models.Achievement, 0, len(raw))
	for _, entry := range raw {
		fields := map[string]any{}
		if err := json.Unmarshal(entry, &fields); err != nil {
			continue
		}
		required := []string{"id", "title", "description", "icon"}
		valid := hasBool(fields, "earned")
		for _, key := range required {
			if !hasString(fields, key) {
				valid = false
				break
			}
		}
		if !valid {
			continue
		}
		var a models.Achievement
		if err := json.Unmarshal(entry, &a); err != nil {
			continue
		}
		achievements = append(achievements, a)
	}
	return achievements
}

// coerceSettings rebuilds a settings record field by field, substituting
// defaults for missing or mistyped values.
func coerceSettings(raw json.RawMessage) models.Settings {
	fields := map[string]any{}
	settings := models.DefaultSettings()
	if err := json.Unmarshal(raw, &fields); err != nil {
		return settings
	}

	if mode, ok := fields["themeMode"].(string); ok && models.ThemeMode(mode).Valid() {
		settings.ThemeMode = models.ThemeMode(mode)
	} else if dark, ok := fields["darkMode"].(bool); ok {
		// Legacy documents predate themeMode.
		if dark {
			settings.ThemeMode = models.ThemeDark
		} else {
			settings.ThemeMode = models.ThemeLight
		}
	}
	if v, ok := fields["notifications"].(bool); ok {
		settings.Notifications = v
	}
	if v, ok := fields["haptics"].(bool); ok {
		settings.Haptics = v
	}
	if v, ok := fields["dailyTarget"].(float64); ok {
		settings.DailyTarget = int(v)
	}
	if v, ok := fields["reminderTime"].(string); ok {
		settings.ReminderTime = v
	}
	settings.DarkMode = settings.ThemeMode == models.ThemeDark
	return settings
}

func hasString(fields map[string]any, key string) bool {
	_, ok := fields[key].(string)
	return ok
}

func hasBool(fields map[string]any, key string) bool {
	_, ok := fields[key].(bool)
	return ok
}
